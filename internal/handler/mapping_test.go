package handler

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/medrecord/medrecord/internal/service"
)

func newTestMappingHandler() *MappingHandler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewMappingHandler(&service.MappingService{}, logger)
}

func newTestMappingRouter() *chi.Mux {
	h := newTestMappingHandler()

	r := chi.NewRouter()
	r.Get("/api/mappings/{id}", h.ListForPatient)
	r.Delete("/api/mappings/{id}", h.Delete)
	return r
}

func TestMappingHandler_CreateErrorMapping(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "missing patient is a bad request",
			err:        service.ErrPatientNotFound,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
		},
		{
			name:       "missing doctor is a bad request",
			err:        service.ErrDoctorNotFound,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
		},
		{
			name:       "duplicate pair",
			err:        service.ErrMappingExists,
			wantStatus: http.StatusBadRequest,
			wantCode:   "MAPPING_EXISTS",
		},
		{
			name:       "unknown error",
			err:        errors.New("connection reset"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	h := newTestMappingHandler()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.handleCreateError(rec, tc.err)

			if rec.Code != tc.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tc.wantStatus)
			}
			assertErrorCode(t, rec, tc.wantCode)
		})
	}
}

func TestMappingHandler_ListForPatient_InvalidID(t *testing.T) {
	router := newTestMappingRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/mappings/notanid", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rec.Code)
	}
	assertErrorCode(t, rec, "NOT_FOUND")
}

func TestMappingHandler_Delete_InvalidID(t *testing.T) {
	router := newTestMappingRouter()

	req := httptest.NewRequest(http.MethodDelete, "/api/mappings/notanid", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rec.Code)
	}
	assertErrorCode(t, rec, "MAPPING_NOT_FOUND")
}
