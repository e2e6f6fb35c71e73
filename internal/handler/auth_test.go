package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/medrecord/medrecord/internal/auth"
	"github.com/medrecord/medrecord/internal/service"
)

func newTestAuthHandler() *AuthHandler {
	issuer := auth.NewTokenIssuer("handler-test-secret", 15*time.Minute, 24*time.Hour)
	svc := service.NewAuthService(nil, nil, issuer)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewAuthHandler(svc, logger)
}

func TestAuthHandler_Register_InvalidJSON(t *testing.T) {
	h := newTestAuthHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register/", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rec.Code)
	}
	assertErrorCode(t, rec, "INVALID_JSON")
}

func TestAuthHandler_Register_ValidationError(t *testing.T) {
	h := newTestAuthHandler()

	testCases := []struct {
		name string
		body string
	}{
		{
			name: "short password",
			body: `{"name":"Asha","email":"asha@example.com","password":"short"}`,
		},
		{
			name: "missing name",
			body: `{"email":"asha@example.com","password":"longenough1"}`,
		},
		{
			name: "bad email",
			body: `{"name":"Asha","email":"not-an-email","password":"longenough1"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/auth/register/", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()

			h.Register(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected status 400, got %d", rec.Code)
			}
			assertErrorCode(t, rec, "VALIDATION_ERROR")
		})
	}
}

func TestAuthHandler_Refresh_InvalidToken(t *testing.T) {
	h := newTestAuthHandler()

	body := `{"refresh":"not.a.token"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/refresh/", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Refresh(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", rec.Code)
	}
	assertErrorCode(t, rec, "INVALID_REFRESH_TOKEN")
}

func TestAuthHandler_Refresh_AccessTokenRejected(t *testing.T) {
	issuer := auth.NewTokenIssuer("handler-test-secret", 15*time.Minute, 24*time.Hour)
	svc := service.NewAuthService(nil, nil, issuer)
	h := NewAuthHandler(svc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	pair, err := issuer.IssuePair(1, "asha@example.com")
	if err != nil {
		t.Fatalf("IssuePair failed: %v", err)
	}

	body := `{"refresh":"` + pair.Access + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/refresh/", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Refresh(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", rec.Code)
	}
	assertErrorCode(t, rec, "INVALID_REFRESH_TOKEN")
}

func assertErrorCode(t *testing.T, rec *httptest.ResponseRecorder, want string) {
	t.Helper()
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["code"] != want {
		t.Errorf("code = %q, want %q", body["code"], want)
	}
}
