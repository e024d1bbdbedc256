package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

// ReadJSONResponse asserts a 200 response and decodes its JSON body into v.
func ReadJSONResponse(t testing.TB, w *httptest.ResponseRecorder, v any) {
	t.Helper()

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
}

// ReadErrorResponse decodes a JSON error response from a ResponseRecorder.
func ReadErrorResponse(t testing.TB, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var response map[string]any
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	return response
}

// CreateRequest creates an HTTP request with optional JSON body and headers.
func CreateRequest(method, path string, body any, headers map[string]string) *http.Request {
	var payload []byte
	if body != nil {
		payload, _ = json.Marshal(body)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}
