package health

import (
	"context"
	"strings"
	"testing"
	"time"

	"3tcapital/bluegreen/internal/core/deployment"
)

func TestNewService(t *testing.T) {
	identity := deployment.Resolve("web--abc123", deployment.Unknown)
	startedAt := time.Now()

	service := NewService(identity, startedAt)

	if service == nil {
		t.Fatal("expected service to be created, got nil")
	}

	if service.identity != identity {
		t.Error("expected service to have the provided identity")
	}

	if !service.startedAt.Equal(startedAt) {
		t.Error("expected startedAt to match the provided timestamp")
	}

	// Uptime must come from the monotonic clock, not the wall clock.
	if !strings.Contains(service.startedAt.String(), "m=") {
		t.Errorf("expected startedAt to keep its monotonic reading, got %s", service.startedAt)
	}
}

func TestService_Status_TimestampIsUTC(t *testing.T) {
	service := NewService(deployment.Resolve("web--abc", deployment.Unknown), time.Now())

	status := service.Status(context.Background())

	if status.Timestamp.Location() != time.UTC {
		t.Errorf("expected UTC timestamp, got %v", status.Timestamp.Location())
	}
	if status.UptimeSeconds != 0 {
		t.Errorf("expected zero uptime right after start, got %d", status.UptimeSeconds)
	}
}

func TestService_Status(t *testing.T) {
	identity := deployment.Resolve("web--deadbeef", deployment.Unknown)
	startedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	service := NewService(identity, startedAt)
	service.now = func() time.Time { return startedAt.Add(90*time.Second + 900*time.Millisecond) }

	status := service.Status(context.Background())

	if status.Status != "healthy (blue)" {
		t.Errorf("expected status 'healthy (blue)', got %q", status.Status)
	}

	if status.Revision != "web--deadbeef" {
		t.Errorf("expected revision %q, got %q", "web--deadbeef", status.Revision)
	}

	if status.Version != "deadbeef" {
		t.Errorf("expected version %q, got %q", "deadbeef", status.Version)
	}

	if status.UptimeSeconds != 90 {
		t.Errorf("expected uptime to be floored to 90 seconds, got %d", status.UptimeSeconds)
	}

	if status.Timestamp.IsZero() {
		t.Error("expected timestamp to be set")
	}
}

func TestService_Status_ClockBeforeStartup(t *testing.T) {
	startedAt := time.Now()
	service := NewService(deployment.Resolve(deployment.Unknown, deployment.Unknown), startedAt)
	service.now = func() time.Time { return startedAt.Add(-5 * time.Second) }

	status := service.Status(context.Background())

	if status.UptimeSeconds != 0 {
		t.Errorf("expected uptime clamped to 0, got %d", status.UptimeSeconds)
	}
}

func TestService_Status_UptimeNonDecreasing(t *testing.T) {
	service := NewService(deployment.Resolve("web--abc", deployment.StageGreen), time.Now())

	first := service.Status(context.Background())
	time.Sleep(10 * time.Millisecond)
	second := service.Status(context.Background())

	if first.UptimeSeconds < 0 {
		t.Errorf("expected uptime >= 0, got %d", first.UptimeSeconds)
	}

	if second.UptimeSeconds < first.UptimeSeconds {
		t.Errorf("expected uptime to be non-decreasing, got %d then %d", first.UptimeSeconds, second.UptimeSeconds)
	}

	if second.Status != "healthy (green)" {
		t.Errorf("expected status 'healthy (green)', got %q", second.Status)
	}
}
