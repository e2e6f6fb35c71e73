package dto

import (
	"time"

	"github.com/medrecord/medrecord/internal/model"
)

// CreateDoctorRequest represents the request body for creating a doctor.
type CreateDoctorRequest struct {
	Name            string `json:"name"`
	Specialization  string `json:"specialization"`
	Phone           string `json:"phone,omitempty"`
	Email           string `json:"email,omitempty"`
	ExperienceYears int    `json:"experience_years,omitempty"`
}

// UpdateDoctorRequest represents a partial doctor update.
type UpdateDoctorRequest struct {
	Name            *string `json:"name,omitempty"`
	Specialization  *string `json:"specialization,omitempty"`
	Phone           *string `json:"phone,omitempty"`
	Email           *string `json:"email,omitempty"`
	ExperienceYears *int    `json:"experience_years,omitempty"`
}

// DoctorResponse represents a doctor in API responses.
type DoctorResponse struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Specialization  string    `json:"specialization"`
	Phone           string    `json:"phone"`
	Email           string    `json:"email"`
	ExperienceYears int       `json:"experience_years"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ToDoctorResponse converts a Doctor model to its response DTO.
func ToDoctorResponse(doctor *model.Doctor) *DoctorResponse {
	return &DoctorResponse{
		ID:              doctor.ID,
		Name:            doctor.Name,
		Specialization:  doctor.Specialization,
		Phone:           doctor.Phone,
		Email:           doctor.Email,
		ExperienceYears: doctor.ExperienceYears,
		CreatedAt:       doctor.CreatedAt,
		UpdatedAt:       doctor.UpdatedAt,
	}
}

// ToDoctorListResponse converts a slice of Doctor models.
func ToDoctorListResponse(doctors []*model.Doctor) []DoctorResponse {
	responses := make([]DoctorResponse, len(doctors))
	for i, doctor := range doctors {
		responses[i] = *ToDoctorResponse(doctor)
	}
	return responses
}
