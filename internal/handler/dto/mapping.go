package dto

import (
	"time"

	"github.com/medrecord/medrecord/internal/model"
)

// CreateMappingRequest represents the request body for assigning a
// doctor to a patient.
type CreateMappingRequest struct {
	Patient int64 `json:"patient"`
	Doctor  int64 `json:"doctor"`
}

// MappingResponse represents a mapping in API responses. Patient and
// doctor names are included for list readability.
type MappingResponse struct {
	ID          int64     `json:"id"`
	Patient     int64     `json:"patient"`
	Doctor      int64     `json:"doctor"`
	PatientName string    `json:"patient_name,omitempty"`
	DoctorName  string    `json:"doctor_name,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToMappingResponse converts a Mapping model to its response DTO.
func ToMappingResponse(mapping *model.Mapping) *MappingResponse {
	return &MappingResponse{
		ID:          mapping.ID,
		Patient:     mapping.PatientID,
		Doctor:      mapping.DoctorID,
		PatientName: mapping.PatientName,
		DoctorName:  mapping.DoctorName,
		CreatedAt:   mapping.CreatedAt,
	}
}

// ToMappingListResponse converts a slice of Mapping models.
func ToMappingListResponse(mappings []*model.Mapping) []MappingResponse {
	responses := make([]MappingResponse, len(mappings))
	for i, mapping := range mappings {
		responses[i] = *ToMappingResponse(mapping)
	}
	return responses
}
