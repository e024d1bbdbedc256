package info

import (
	"net/http"
	"net/http/httptest"
	"testing"

	appinfo "3tcapital/bluegreen/internal/application/info"
	"3tcapital/bluegreen/internal/core/deployment"
	coreinfo "3tcapital/bluegreen/internal/core/info"
	"3tcapital/bluegreen/internal/testutil"
)

func TestHandler_GetInfo(t *testing.T) {
	identity := deployment.Resolve("web--deadbeef", deployment.Unknown)
	service := appinfo.NewService(identity, appinfo.Metadata{Port: 9000, RuntimeVersion: "go1.25.5"})
	handler := NewHandler(service, testutil.NewNullLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/info", nil)
	w := httptest.NewRecorder()

	handler.GetInfo(w, req)

	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type application/json, got %s", ct)
	}

	var got coreinfo.Info
	testutil.ReadJSONResponse(t, w, &got)

	if got.Environment.Port != 9000 {
		t.Errorf("expected environment.port 9000, got %d", got.Environment.Port)
	}
	if got.CommitID != "deadbeef" {
		t.Errorf("expected commit_id %q, got %q", "deadbeef", got.CommitID)
	}
	if got.DeploymentStage != "blue" {
		t.Errorf("expected deployment_stage 'blue', got %q", got.DeploymentStage)
	}
}

func TestHandler_GetInfo_WireFormat(t *testing.T) {
	service := appinfo.NewService(deployment.Resolve(deployment.Unknown, deployment.Unknown), appinfo.Metadata{Port: 8000})
	handler := NewHandler(service, nil)

	w := httptest.NewRecorder()
	handler.GetInfo(w, httptest.NewRequest(http.MethodGet, "/api/info", nil))

	var raw map[string]any
	testutil.ReadJSONResponse(t, w, &raw)

	for _, key := range []string{"app_name", "commit_id", "revision", "deployment_stage", "timestamp", "environment"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("expected key %q in response", key)
		}
	}

	env, ok := raw["environment"].(map[string]any)
	if !ok {
		t.Fatalf("expected environment to be an object, got %T", raw["environment"])
	}
	if env["port"] != float64(8000) {
		t.Errorf("expected environment.port 8000, got %v", env["port"])
	}
	if _, ok := env["runtime_version"]; !ok {
		t.Error("expected environment.runtime_version in response")
	}
}
