package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/medrecord/medrecord/internal/auth"
	"github.com/medrecord/medrecord/internal/handler/dto"
	"github.com/medrecord/medrecord/internal/service"
)

// PatientHandler handles HTTP requests for patient records.
type PatientHandler struct {
	svc    *service.PatientService
	logger *slog.Logger
}

// NewPatientHandler creates a new PatientHandler.
func NewPatientHandler(svc *service.PatientService, logger *slog.Logger) *PatientHandler {
	return &PatientHandler{
		svc:    svc,
		logger: logger,
	}
}

// List handles GET /api/patients/.
func (h *PatientHandler) List(w http.ResponseWriter, r *http.Request) {
	callerID := auth.UserIDFromContext(r.Context())

	patients, err := h.svc.List(r.Context(), callerID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToPatientListResponse(patients))
}

// Create handles POST /api/patients/.
func (h *PatientHandler) Create(w http.ResponseWriter, r *http.Request) {
	callerID := auth.UserIDFromContext(r.Context())

	var req dto.CreatePatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "invalid request body")
		return
	}

	patient, err := h.svc.Create(r.Context(), callerID, service.CreatePatientInput{
		Name:           req.Name,
		Age:            req.Age,
		Gender:         req.Gender,
		Phone:          req.Phone,
		Email:          req.Email,
		Address:        req.Address,
		MedicalHistory: req.MedicalHistory,
	})
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("patient_created", "patient_id", patient.ID, "user_id", callerID)

	writeJSON(w, http.StatusCreated, dto.ToPatientResponse(patient))
}

// Get handles GET /api/patients/{id}/.
func (h *PatientHandler) Get(w http.ResponseWriter, r *http.Request) {
	callerID := auth.UserIDFromContext(r.Context())

	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "PATIENT_NOT_FOUND", "patient not found")
		return
	}

	patient, err := h.svc.Get(r.Context(), callerID, id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToPatientResponse(patient))
}

// Update handles PUT and PATCH /api/patients/{id}/.
func (h *PatientHandler) Update(w http.ResponseWriter, r *http.Request) {
	callerID := auth.UserIDFromContext(r.Context())

	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "PATIENT_NOT_FOUND", "patient not found")
		return
	}

	var req dto.UpdatePatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "invalid request body")
		return
	}

	patient, err := h.svc.Update(r.Context(), callerID, id, service.UpdatePatientInput{
		Name:           req.Name,
		Age:            req.Age,
		Gender:         req.Gender,
		Phone:          req.Phone,
		Email:          req.Email,
		Address:        req.Address,
		MedicalHistory: req.MedicalHistory,
	})
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("patient_updated", "patient_id", patient.ID, "user_id", callerID)

	writeJSON(w, http.StatusOK, dto.ToPatientResponse(patient))
}

// Delete handles DELETE /api/patients/{id}/.
func (h *PatientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	callerID := auth.UserIDFromContext(r.Context())

	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "PATIENT_NOT_FOUND", "patient not found")
		return
	}

	if err := h.svc.Delete(r.Context(), callerID, id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("patient_deleted", "patient_id", id, "user_id", callerID)

	w.WriteHeader(http.StatusNoContent)
}

// handleServiceError maps patient service errors to HTTP responses.
func (h *PatientHandler) handleServiceError(w http.ResponseWriter, err error) {
	if mapServiceError(w, err) {
		return
	}
	h.logger.Error("internal_error", "error", err)
	writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred")
}
