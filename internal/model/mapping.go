package model

import "time"

// Mapping assigns one doctor to one patient. The (PatientID, DoctorID)
// pair is unique; deleting either side deletes the mapping.
// PatientName and DoctorName are denormalized for list responses and
// are not stored.
type Mapping struct {
	ID          int64     `json:"id"`
	PatientID   int64     `json:"patient"`
	DoctorID    int64     `json:"doctor"`
	CreatedBy   int64     `json:"-"`
	PatientName string    `json:"patient_name,omitempty"`
	DoctorName  string    `json:"doctor_name,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
