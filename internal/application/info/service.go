package info

import (
	"context"
	"time"

	"3tcapital/bluegreen/internal/core/deployment"
	coreinfo "3tcapital/bluegreen/internal/core/info"
)

// Metadata contains immutable process settings reported by the info endpoint.
type Metadata struct {
	Port           int
	RuntimeVersion string
}

// Service builds the deployment information record.
type Service struct {
	identity deployment.Identity
	meta     Metadata
	now      func() time.Time
}

func NewService(identity deployment.Identity, meta Metadata) *Service {
	return &Service{
		identity: identity,
		meta:     meta,
		now:      time.Now,
	}
}

// Info returns the deployment information as of now.
func (s *Service) Info(_ context.Context) coreinfo.Info {
	return coreinfo.Info{
		AppName:         coreinfo.AppName,
		CommitID:        s.identity.CommitID,
		Revision:        s.identity.RevisionName,
		DeploymentStage: s.identity.Stage,
		Timestamp:       s.now().UTC(),
		Environment: coreinfo.Environment{
			Port:           s.meta.Port,
			RuntimeVersion: s.meta.RuntimeVersion,
		},
	}
}
