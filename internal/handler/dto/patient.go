package dto

import (
	"time"

	"github.com/medrecord/medrecord/internal/model"
)

// CreatePatientRequest represents the request body for creating a patient.
// Age is a pointer so a missing field is distinguishable from zero.
type CreatePatientRequest struct {
	Name           string `json:"name"`
	Age            *int   `json:"age"`
	Gender         string `json:"gender"`
	Phone          string `json:"phone,omitempty"`
	Email          string `json:"email,omitempty"`
	Address        string `json:"address,omitempty"`
	MedicalHistory string `json:"medical_history,omitempty"`
}

// UpdatePatientRequest represents a partial patient update.
type UpdatePatientRequest struct {
	Name           *string `json:"name,omitempty"`
	Age            *int    `json:"age,omitempty"`
	Gender         *string `json:"gender,omitempty"`
	Phone          *string `json:"phone,omitempty"`
	Email          *string `json:"email,omitempty"`
	Address        *string `json:"address,omitempty"`
	MedicalHistory *string `json:"medical_history,omitempty"`
}

// PatientResponse represents a patient in API responses.
type PatientResponse struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Age            int       `json:"age"`
	Gender         string    `json:"gender"`
	Phone          string    `json:"phone"`
	Email          string    `json:"email"`
	Address        string    `json:"address"`
	MedicalHistory string    `json:"medical_history"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ToPatientResponse converts a Patient model to its response DTO.
func ToPatientResponse(patient *model.Patient) *PatientResponse {
	return &PatientResponse{
		ID:             patient.ID,
		Name:           patient.Name,
		Age:            patient.Age,
		Gender:         patient.Gender,
		Phone:          patient.Phone,
		Email:          patient.Email,
		Address:        patient.Address,
		MedicalHistory: patient.MedicalHistory,
		CreatedAt:      patient.CreatedAt,
		UpdatedAt:      patient.UpdatedAt,
	}
}

// ToPatientListResponse converts a slice of Patient models.
func ToPatientListResponse(patients []*model.Patient) []PatientResponse {
	responses := make([]PatientResponse, len(patients))
	for i, patient := range patients {
		responses[i] = *ToPatientResponse(patient)
	}
	return responses
}
