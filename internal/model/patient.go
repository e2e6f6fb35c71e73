package model

import "time"

// Patient is a clinical record owned by exactly one user.
// All reads and writes are scoped to CreatedBy; other users cannot
// observe that the record exists.
type Patient struct {
	ID             int64     `json:"id"`
	CreatedBy      int64     `json:"-"`
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
