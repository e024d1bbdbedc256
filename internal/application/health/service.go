package health

import (
	"context"
	"time"

	"3tcapital/bluegreen/internal/core/deployment"
	corehealth "3tcapital/bluegreen/internal/core/health"
)

// Service exposes health-check use cases to adapters.
type Service struct {
	identity  deployment.Identity
	startedAt time.Time
	now       func() time.Time
}

// NewService builds the health service. startedAt should come straight from
// time.Now so it carries a monotonic clock reading.
func NewService(identity deployment.Identity, startedAt time.Time) *Service {
	return &Service{
		identity:  identity,
		startedAt: startedAt,
		now:       time.Now,
	}
}

// Status returns the current availability snapshot.
func (s *Service) Status(_ context.Context) corehealth.Status {
	now := s.now()
	uptime := now.Sub(s.startedAt)
	if uptime < 0 {
		uptime = 0
	}

	return corehealth.Status{
		Status:        "healthy (" + s.identity.Stage + ")",
		Timestamp:     now.UTC(),
		Revision:      s.identity.RevisionName,
		Version:       s.identity.CommitID,
		UptimeSeconds: int64(uptime / time.Second),
	}
}
