package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/medrecord/medrecord/internal/auth"
	"github.com/medrecord/medrecord/internal/handler/dto"
	"github.com/medrecord/medrecord/internal/service"
)

// MappingHandler handles HTTP requests for patient-doctor assignments.
type MappingHandler struct {
	svc    *service.MappingService
	logger *slog.Logger
}

// NewMappingHandler creates a new MappingHandler.
func NewMappingHandler(svc *service.MappingService, logger *slog.Logger) *MappingHandler {
	return &MappingHandler{
		svc:    svc,
		logger: logger,
	}
}

// List handles GET /api/mappings/.
func (h *MappingHandler) List(w http.ResponseWriter, r *http.Request) {
	mappings, err := h.svc.List(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToMappingListResponse(mappings))
}

// Create handles POST /api/mappings/.
func (h *MappingHandler) Create(w http.ResponseWriter, r *http.Request) {
	callerID := auth.UserIDFromContext(r.Context())

	var req dto.CreateMappingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "invalid request body")
		return
	}

	mapping, err := h.svc.Create(r.Context(), callerID, req.Patient, req.Doctor)
	if err != nil {
		h.handleCreateError(w, err)
		return
	}

	h.logger.Info("mapping_created",
		"mapping_id", mapping.ID,
		"patient_id", mapping.PatientID,
		"doctor_id", mapping.DoctorID,
		"user_id", callerID,
	)

	writeJSON(w, http.StatusCreated, dto.ToMappingResponse(mapping))
}

// ListForPatient handles GET /api/mappings/{id}/ where the path
// segment is a patient id. A patient with no mappings yields an empty
// list, not a 404.
func (h *MappingHandler) ListForPatient(w http.ResponseWriter, r *http.Request) {
	patientID, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "resource not found")
		return
	}

	mappings, err := h.svc.ListForPatient(r.Context(), patientID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToMappingListResponse(mappings))
}

// Delete handles DELETE /api/mappings/{id}/ where the path segment is
// the mapping's own id.
func (h *MappingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "MAPPING_NOT_FOUND", "mapping not found")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("mapping_deleted", "mapping_id", id)

	w.WriteHeader(http.StatusNoContent)
}

// handleCreateError maps mapping creation errors to HTTP responses.
// On create, a missing patient or doctor id is a request-body problem,
// so it maps to 400 rather than the 404 of the CRUD routes.
func (h *MappingHandler) handleCreateError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrPatientNotFound), errors.Is(err, service.ErrDoctorNotFound):
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	h.handleServiceError(w, err)
}

// handleServiceError maps mapping service errors to HTTP responses.
func (h *MappingHandler) handleServiceError(w http.ResponseWriter, err error) {
	if mapServiceError(w, err) {
		return
	}
	h.logger.Error("internal_error", "error", err)
	writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred")
}
