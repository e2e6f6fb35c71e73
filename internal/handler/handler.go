// Package handler provides HTTP request handlers.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/medrecord/medrecord/internal/handler/dto"
	"github.com/medrecord/medrecord/internal/service"
)

// Handler provides handlers for routes not tied to any entity.
type Handler struct{}

// New creates a new Handler instance.
func New() *Handler {
	return &Handler{}
}

// Hello is the root info endpoint.
// GET /
func (h *Handler) Hello(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"message": "Clinical Records API",
		"version": "0.1.0",
	}
	writeJSON(w, http.StatusOK, response)
}

// NotFound handles 404 responses.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "NOT_FOUND", "resource not found")
}

// MethodNotAllowed handles 405 responses.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		_ = err
	}
}

// writeError writes a structured JSON error response.
func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// parseID parses a positive decimal id from a URL parameter.
func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}

// mapServiceError maps shared service errors to HTTP responses.
// Returns false when the error needs handler-specific treatment.
func mapServiceError(w http.ResponseWriter, err error) bool {
	switch {
	case service.IsValidationError(err):
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, service.ErrPatientNotFound):
		writeError(w, http.StatusNotFound, "PATIENT_NOT_FOUND", err.Error())
	case errors.Is(err, service.ErrDoctorNotFound):
		writeError(w, http.StatusNotFound, "DOCTOR_NOT_FOUND", err.Error())
	case errors.Is(err, service.ErrMappingNotFound):
		writeError(w, http.StatusNotFound, "MAPPING_NOT_FOUND", err.Error())
	case errors.Is(err, service.ErrMappingExists):
		writeError(w, http.StatusBadRequest, "MAPPING_EXISTS", err.Error())
	default:
		return false
	}
	return true
}
