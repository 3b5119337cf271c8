package middleware

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/contactbook/contactbook/internal/auth"
)

type stubAuthenticator struct {
	userID int64
	err    error

	lastToken string
}

func (s *stubAuthenticator) Authenticate(_ context.Context, token string) (int64, error) {
	s.lastToken = token
	if s.err != nil {
		return 0, s.err
	}
	return s.userID, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAuth_ValidToken(t *testing.T) {
	stub := &stubAuthenticator{userID: 17}
	mw := Auth(AuthConfig{Logger: discardLogger(), Auth: stub})

	var gotID int64
	var gotOK bool
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, gotOK = auth.UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/user", nil)
	req.Header.Set("Authorization", "Bearer some.jwt.token")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if !gotOK || gotID != 17 {
		t.Errorf("expected user id 17 in context, got %d (ok=%v)", gotID, gotOK)
	}
	if stub.lastToken != "some.jwt.token" {
		t.Errorf("authenticator received token %q", stub.lastToken)
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	mw := Auth(AuthConfig{Logger: discardLogger(), Auth: &stubAuthenticator{userID: 1}})

	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/user", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
	if rec.Body.String() != `{"message":"Authentication failed","data":{}}` {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestAuth_NonBearerScheme(t *testing.T) {
	mw := Auth(AuthConfig{Logger: discardLogger(), Auth: &stubAuthenticator{userID: 1}})

	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/user", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

func TestAuth_RejectedToken(t *testing.T) {
	stub := &stubAuthenticator{err: errors.New("bad token")}
	mw := Auth(AuthConfig{Logger: discardLogger(), Auth: stub})

	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/user", nil)
	req.Header.Set("Authorization", "Bearer expired.jwt.token")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"bearer token", "Bearer abc123", "abc123"},
		{"empty header", "", ""},
		{"wrong scheme", "Basic abc123", ""},
		{"bearer with padding", "Bearer  abc123 ", "abc123"},
		{"bearer only", "Bearer ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if got := extractBearerToken(req); got != tt.want {
				t.Errorf("extractBearerToken() = %q, want %q", got, tt.want)
			}
		})
	}
}
