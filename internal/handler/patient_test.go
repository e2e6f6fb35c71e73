package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/medrecord/medrecord/internal/service"
)

func newTestPatientRouter() *chi.Mux {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewPatientHandler(&service.PatientService{}, logger)

	r := chi.NewRouter()
	r.Get("/api/patients/{id}", h.Get)
	r.Post("/api/patients", h.Create)
	r.Put("/api/patients/{id}", h.Update)
	r.Delete("/api/patients/{id}", h.Delete)
	return r
}

func TestPatientHandler_Get_InvalidID(t *testing.T) {
	router := newTestPatientRouter()

	testCases := []string{"abc", "0", "-5", "1.5"}
	for _, raw := range testCases {
		t.Run(raw, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/patients/"+raw, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != http.StatusNotFound {
				t.Errorf("expected status 404, got %d", rec.Code)
			}
			assertErrorCode(t, rec, "PATIENT_NOT_FOUND")
		})
	}
}

func TestPatientHandler_Create_InvalidJSON(t *testing.T) {
	router := newTestPatientRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/patients", strings.NewReader("{broken"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rec.Code)
	}
	assertErrorCode(t, rec, "INVALID_JSON")
}

func TestPatientHandler_Create_ValidationError(t *testing.T) {
	router := newTestPatientRouter()

	// Missing age fails validation before any storage access.
	body := `{"name":"Ravi Mehta","gender":"M"}`
	req := httptest.NewRequest(http.MethodPost, "/api/patients", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rec.Code)
	}
	assertErrorCode(t, rec, "VALIDATION_ERROR")
}

func TestPatientHandler_Update_InvalidID(t *testing.T) {
	router := newTestPatientRouter()

	req := httptest.NewRequest(http.MethodPut, "/api/patients/notanid", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rec.Code)
	}
	assertErrorCode(t, rec, "PATIENT_NOT_FOUND")
}

func TestPatientHandler_Delete_InvalidID(t *testing.T) {
	router := newTestPatientRouter()

	req := httptest.NewRequest(http.MethodDelete, "/api/patients/notanid", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rec.Code)
	}
	assertErrorCode(t, rec, "PATIENT_NOT_FOUND")
}
