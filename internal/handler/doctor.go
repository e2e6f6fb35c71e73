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

// DoctorHandler handles HTTP requests for the shared doctor directory.
type DoctorHandler struct {
	svc    *service.DoctorService
	logger *slog.Logger
}

// NewDoctorHandler creates a new DoctorHandler.
func NewDoctorHandler(svc *service.DoctorService, logger *slog.Logger) *DoctorHandler {
	return &DoctorHandler{
		svc:    svc,
		logger: logger,
	}
}

// List handles GET /api/doctors/.
func (h *DoctorHandler) List(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.svc.List(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToDoctorListResponse(doctors))
}

// Create handles POST /api/doctors/.
func (h *DoctorHandler) Create(w http.ResponseWriter, r *http.Request) {
	callerID := auth.UserIDFromContext(r.Context())

	var req dto.CreateDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "invalid request body")
		return
	}

	doctor, err := h.svc.Create(r.Context(), callerID, service.CreateDoctorInput{
		Name:            req.Name,
		Specialization:  req.Specialization,
		Phone:           req.Phone,
		Email:           req.Email,
		ExperienceYears: req.ExperienceYears,
	})
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("doctor_created", "doctor_id", doctor.ID, "user_id", callerID)

	writeJSON(w, http.StatusCreated, dto.ToDoctorResponse(doctor))
}

// Get handles GET /api/doctors/{id}/.
func (h *DoctorHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "DOCTOR_NOT_FOUND", "doctor not found")
		return
	}

	doctor, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToDoctorResponse(doctor))
}

// Update handles PUT and PATCH /api/doctors/{id}/.
func (h *DoctorHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "DOCTOR_NOT_FOUND", "doctor not found")
		return
	}

	var req dto.UpdateDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "invalid request body")
		return
	}

	doctor, err := h.svc.Update(r.Context(), id, service.UpdateDoctorInput{
		Name:            req.Name,
		Specialization:  req.Specialization,
		Phone:           req.Phone,
		Email:           req.Email,
		ExperienceYears: req.ExperienceYears,
	})
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("doctor_updated", "doctor_id", doctor.ID)

	writeJSON(w, http.StatusOK, dto.ToDoctorResponse(doctor))
}

// Delete handles DELETE /api/doctors/{id}/.
func (h *DoctorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "DOCTOR_NOT_FOUND", "doctor not found")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("doctor_deleted", "doctor_id", id)

	w.WriteHeader(http.StatusNoContent)
}

// handleServiceError maps doctor service errors to HTTP responses.
func (h *DoctorHandler) handleServiceError(w http.ResponseWriter, err error) {
	if mapServiceError(w, err) {
		return
	}
	h.logger.Error("internal_error", "error", err)
	writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred")
}
