// Package service provides business logic for the application.
package service

import (
	"errors"
	"net/mail"
	"strings"
)

// Field validation errors. All of them surface to clients as 400s.
var (
	ErrNameRequired           = errors.New("name is required")
	ErrNameTooLong            = errors.New("name exceeds maximum length")
	ErrInvalidEmail           = errors.New("invalid email address")
	ErrInvalidAge             = errors.New("age must be between 0 and 150")
	ErrInvalidGender          = errors.New("gender must be one of M, F or O")
	ErrPhoneTooLong           = errors.New("phone exceeds maximum length")
	ErrSpecializationRequired = errors.New("specialization is required")
	ErrSpecializationTooLong  = errors.New("specialization exceeds maximum length")
	ErrInvalidExperience      = errors.New("experience_years must be between 0 and 80")
	ErrPasswordTooShort       = errors.New("password must be at least 8 characters")
	ErrPasswordTooLong        = errors.New("password exceeds maximum length")
)

// validationErrors lists every sentinel that maps to a 400 response.
var validationErrors = []error{
	ErrNameRequired,
	ErrNameTooLong,
	ErrInvalidEmail,
	ErrInvalidAge,
	ErrInvalidGender,
	ErrPhoneTooLong,
	ErrSpecializationRequired,
	ErrSpecializationTooLong,
	ErrInvalidExperience,
	ErrPasswordTooShort,
	ErrPasswordTooLong,
}

// IsValidationError reports whether err is a field validation failure.
func IsValidationError(err error) bool {
	for _, verr := range validationErrors {
		if errors.Is(err, verr) {
			return true
		}
	}
	return false
}

// Field length limits, matching the stored column sizes.
const (
	maxNameLength     = 200
	maxEmailLength    = 254
	maxPhoneLength    = 15
	maxAge            = 150
	maxExperience     = 80
	minPasswordLength = 8
	maxPasswordLength = 128
)

// validateName checks a person or doctor name.
func validateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameRequired
	}
	if len(name) > maxNameLength {
		return ErrNameTooLong
	}
	return nil
}

// validateEmail checks a required email address.
func validateEmail(email string) error {
	if email == "" || len(email) > maxEmailLength {
		return ErrInvalidEmail
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrInvalidEmail
	}
	return nil
}

// validateOptionalEmail accepts an empty email, otherwise validates it.
func validateOptionalEmail(email string) error {
	if email == "" {
		return nil
	}
	return validateEmail(email)
}

// validateAge checks a patient age.
func validateAge(age int) error {
	if age < 0 || age > maxAge {
		return ErrInvalidAge
	}
	return nil
}

// normalizeGender maps accepted gender inputs to their stored single
// letter form: M, F or O.
func normalizeGender(gender string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(gender)) {
	case "m", "male":
		return "M", nil
	case "f", "female":
		return "F", nil
	case "o", "other":
		return "O", nil
	default:
		return "", ErrInvalidGender
	}
}

// validatePhone checks an optional phone number.
func validatePhone(phone string) error {
	if len(phone) > maxPhoneLength {
		return ErrPhoneTooLong
	}
	return nil
}

// validateExperience checks a doctor's experience in years.
func validateExperience(years int) error {
	if years < 0 || years > maxExperience {
		return ErrInvalidExperience
	}
	return nil
}

// validatePassword checks password length bounds. Content rules are
// deliberately not enforced; length is the only requirement.
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return ErrPasswordTooShort
	}
	if len(password) > maxPasswordLength {
		return ErrPasswordTooLong
	}
	return nil
}
