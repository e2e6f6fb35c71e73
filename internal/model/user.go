// Package model defines domain entities for the application.
package model

import "time"

// User represents a registered account that owns clinical records.
// Immutable after registration except for the password hash.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// AuthContext carries the verified caller identity through a request.
// Populated by the bearer auth middleware from a validated access token.
type AuthContext struct {
	UserID  int64
	Email   string
	TokenID string
}
