package model

import "time"

// Doctor is a shared directory entry. CreatedBy records who added it,
// but any authenticated user may read, update, or delete any doctor.
type Doctor struct {
	ID              int64     `json:"id"`
	CreatedBy       int64     `json:"-"`
	Name            string    `json:"name"`
	Specialization  string    `json:"specialization"`
	Phone           string    `json:"phone"`
	Email           string    `json:"email"`
	ExperienceYears int       `json:"experience_years"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
