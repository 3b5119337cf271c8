package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

// envelope mirrors dto.Envelope with a raw data payload for assertions.
type envelope struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return env
}

func TestHandler_Hello(t *testing.T) {
	h := New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	h.Hello(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}

	contentType := rec.Header().Get("Content-Type")
	if contentType != "application/json" {
		t.Errorf("expected Content-Type application/json, got %s", contentType)
	}

	env := decodeEnvelope(t, rec)
	if env.Message != "Contactbook API" {
		t.Errorf("unexpected message: %s", env.Message)
	}

	var data map[string]string
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("failed to decode data: %v", err)
	}
	if data["version"] != "0.1.0" {
		t.Errorf("unexpected version: %s", data["version"])
	}
}

func TestHandler_NotFound(t *testing.T) {
	h := New()

	req := httptest.NewRequest(http.MethodGet, "/nonexistent", nil)
	rec := httptest.NewRecorder()

	h.NotFound(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rec.Code)
	}

	env := decodeEnvelope(t, rec)
	if env.Message != "Resource not found" {
		t.Errorf("unexpected message: %s", env.Message)
	}
	if string(env.Data) != "{}" {
		t.Errorf("expected empty data object, got %s", env.Data)
	}
}

func TestHandler_MethodNotAllowed(t *testing.T) {
	h := New()

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()

	h.MethodNotAllowed(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected status 405, got %d", rec.Code)
	}

	env := decodeEnvelope(t, rec)
	if env.Message != "Method not allowed" {
		t.Errorf("unexpected message: %s", env.Message)
	}
}
