package service

import (
	"context"
	"errors"
	"testing"
)

func intPtr(v int) *int { return &v }

func TestPatientCreate_ValidationErrors(t *testing.T) {
	// Validation runs before any repository access, so a nil repo is fine.
	svc := &PatientService{}

	tests := []struct {
		name    string
		input   CreatePatientInput
		wantErr error
	}{
		{
			name:    "missing_name",
			input:   CreatePatientInput{Age: intPtr(30), Gender: "M"},
			wantErr: ErrNameRequired,
		},
		{
			name:    "missing_age",
			input:   CreatePatientInput{Name: "Bob", Gender: "M"},
			wantErr: ErrInvalidAge,
		},
		{
			name:    "negative_age",
			input:   CreatePatientInput{Name: "Bob", Age: intPtr(-5), Gender: "M"},
			wantErr: ErrInvalidAge,
		},
		{
			name:    "bad_gender",
			input:   CreatePatientInput{Name: "Bob", Age: intPtr(30), Gender: "unknown"},
			wantErr: ErrInvalidGender,
		},
		{
			name:    "long_phone",
			input:   CreatePatientInput{Name: "Bob", Age: intPtr(30), Gender: "M", Phone: "0123456789012345"},
			wantErr: ErrPhoneTooLong,
		},
		{
			name:    "bad_email",
			input:   CreatePatientInput{Name: "Bob", Age: intPtr(30), Gender: "M", Email: "nope"},
			wantErr: ErrInvalidEmail,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), 1, test.input)
			if !errors.Is(err, test.wantErr) {
				t.Fatalf("expected %v, got %v", test.wantErr, err)
			}
			if !IsValidationError(err) {
				t.Errorf("%v should be a validation error", err)
			}
		})
	}
}

func TestDoctorCreate_ValidationErrors(t *testing.T) {
	svc := &DoctorService{}

	tests := []struct {
		name    string
		input   CreateDoctorInput
		wantErr error
	}{
		{
			name:    "missing_name",
			input:   CreateDoctorInput{Specialization: "Cardiology"},
			wantErr: ErrNameRequired,
		},
		{
			name:    "missing_specialization",
			input:   CreateDoctorInput{Name: "Dr. A"},
			wantErr: ErrSpecializationRequired,
		},
		{
			name:    "bad_experience",
			input:   CreateDoctorInput{Name: "Dr. A", Specialization: "Cardiology", ExperienceYears: 99},
			wantErr: ErrInvalidExperience,
		},
		{
			name:    "bad_email",
			input:   CreateDoctorInput{Name: "Dr. A", Specialization: "Cardiology", Email: "nope"},
			wantErr: ErrInvalidEmail,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), 1, test.input)
			if !errors.Is(err, test.wantErr) {
				t.Fatalf("expected %v, got %v", test.wantErr, err)
			}
		})
	}
}

func TestAuthRegister_ValidationErrors(t *testing.T) {
	svc := &AuthService{}

	tests := []struct {
		name    string
		input   RegisterInput
		wantErr error
	}{
		{
			name:    "missing_name",
			input:   RegisterInput{Email: "a@x.com", Password: "password1"},
			wantErr: ErrNameRequired,
		},
		{
			name:    "bad_email",
			input:   RegisterInput{Name: "A", Email: "nope", Password: "password1"},
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "short_password",
			input:   RegisterInput{Name: "A", Email: "a@x.com", Password: "seven77"},
			wantErr: ErrPasswordTooShort,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), test.input)
			if !errors.Is(err, test.wantErr) {
				t.Fatalf("expected %v, got %v", test.wantErr, err)
			}
		})
	}
}
