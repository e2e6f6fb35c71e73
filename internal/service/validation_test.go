package service

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"empty", "", ErrNameRequired},
		{"whitespace_only", "   ", ErrNameRequired},
		{"too_long", strings.Repeat("a", 201), ErrNameTooLong},
		{"valid", "Bob", nil},
		{"valid_max", strings.Repeat("a", 200), nil},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if err := validateName(test.input); !errors.Is(err, test.wantErr) {
				t.Fatalf("expected %v, got %v", test.wantErr, err)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"empty", "", ErrInvalidEmail},
		{"no_at", "notanemail", ErrInvalidEmail},
		{"no_domain", "a@", ErrInvalidEmail},
		{"display_name", "A <a@x.com>", ErrInvalidEmail},
		{"too_long", strings.Repeat("a", 250) + "@x.com", ErrInvalidEmail},
		{"valid", "a@x.com", nil},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if err := validateEmail(test.input); !errors.Is(err, test.wantErr) {
				t.Fatalf("expected %v, got %v", test.wantErr, err)
			}
		})
	}
}

func TestValidateOptionalEmail_EmptyAllowed(t *testing.T) {
	if err := validateOptionalEmail(""); err != nil {
		t.Fatalf("empty optional email should pass, got %v", err)
	}
	if err := validateOptionalEmail("bad"); !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}
}

func TestNormalizeGender(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{"upper_m", "M", "M", nil},
		{"lower_f", "f", "F", nil},
		{"word_male", "male", "M", nil},
		{"word_female", "Female", "F", nil},
		{"word_other", "other", "O", nil},
		{"padded", " O ", "O", nil},
		{"empty", "", "", ErrInvalidGender},
		{"unknown", "x", "", ErrInvalidGender},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := normalizeGender(test.input)
			if !errors.Is(err, test.wantErr) {
				t.Fatalf("expected %v, got %v", test.wantErr, err)
			}
			if got != test.want {
				t.Errorf("expected %q, got %q", test.want, got)
			}
		})
	}
}

func TestValidateAge(t *testing.T) {
	if err := validateAge(-1); !errors.Is(err, ErrInvalidAge) {
		t.Errorf("expected ErrInvalidAge for -1, got %v", err)
	}
	if err := validateAge(151); !errors.Is(err, ErrInvalidAge) {
		t.Errorf("expected ErrInvalidAge for 151, got %v", err)
	}
	if err := validateAge(0); err != nil {
		t.Errorf("expected nil for 0, got %v", err)
	}
	if err := validateAge(150); err != nil {
		t.Errorf("expected nil for 150, got %v", err)
	}
}

func TestValidatePassword(t *testing.T) {
	if err := validatePassword("short"); !errors.Is(err, ErrPasswordTooShort) {
		t.Errorf("expected ErrPasswordTooShort, got %v", err)
	}
	if err := validatePassword(strings.Repeat("a", 129)); !errors.Is(err, ErrPasswordTooLong) {
		t.Errorf("expected ErrPasswordTooLong, got %v", err)
	}
	if err := validatePassword("password1"); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

func TestIsValidationError(t *testing.T) {
	if !IsValidationError(ErrInvalidGender) {
		t.Error("ErrInvalidGender should be a validation error")
	}
	if IsValidationError(ErrPatientNotFound) {
		t.Error("ErrPatientNotFound should not be a validation error")
	}
	if IsValidationError(errors.New("other")) {
		t.Error("arbitrary errors should not be validation errors")
	}
}
