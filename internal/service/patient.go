package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/medrecord/medrecord/internal/model"
	"github.com/medrecord/medrecord/internal/repository"
)

// ErrPatientNotFound is returned when a patient does not exist or is
// owned by another user. The two cases are deliberately
// indistinguishable so record existence never leaks across tenants.
var ErrPatientNotFound = errors.New("patient not found")

// PatientService handles patient business logic. Every operation is
// scoped to the calling user's own records.
type PatientService struct {
	repo *repository.Repository
}

// NewPatientService creates a new PatientService.
func NewPatientService(repo *repository.Repository) *PatientService {
	return &PatientService{repo: repo}
}

// CreatePatientInput defines input for creating a patient.
type CreatePatientInput struct {
	Name           string
	Age            *int
	Gender         string
	Phone          string
	Email          string
	Address        string
	MedicalHistory string
}

// UpdatePatientInput defines a partial patient update. Nil fields are
// left unchanged.
type UpdatePatientInput struct {
	Name           *string
	Age            *int
	Gender         *string
	Phone          *string
	Email          *string
	Address        *string
	MedicalHistory *string
}

// List returns all patients created by the caller, in creation order.
func (s *PatientService) List(ctx context.Context, callerID int64) ([]*model.Patient, error) {
	return s.repo.ListPatients(ctx, callerID)
}

// Create validates the input and persists a new patient owned by the caller.
func (s *PatientService) Create(ctx context.Context, callerID int64, input CreatePatientInput) (*model.Patient, error) {
	if err := validateName(input.Name); err != nil {
		return nil, err
	}
	if input.Age == nil {
		return nil, ErrInvalidAge
	}
	if err := validateAge(*input.Age); err != nil {
		return nil, err
	}
	gender, err := normalizeGender(input.Gender)
	if err != nil {
		return nil, err
	}
	if err := validatePhone(input.Phone); err != nil {
		return nil, err
	}
	if err := validateOptionalEmail(input.Email); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	patient := &model.Patient{
		CreatedBy:      callerID,
		Name:           strings.TrimSpace(input.Name),
		Age:            *input.Age,
		Gender:         gender,
		Phone:          input.Phone,
		Email:          input.Email,
		Address:        input.Address,
		MedicalHistory: input.MedicalHistory,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.CreatePatient(ctx, patient); err != nil {
		return nil, fmt.Errorf("failed to create patient: %w", err)
	}

	return patient, nil
}

// Get returns one of the caller's patients by id.
func (s *PatientService) Get(ctx context.Context, callerID, id int64) (*model.Patient, error) {
	patient, err := s.repo.GetPatient(ctx, callerID, id)
	if err != nil {
		if errors.Is(err, repository.ErrPatientNotFound) {
			return nil, ErrPatientNotFound
		}
		return nil, err
	}
	return patient, nil
}

// Update applies a partial update to one of the caller's patients.
func (s *PatientService) Update(ctx context.Context, callerID, id int64, input UpdatePatientInput) (*model.Patient, error) {
	patient, err := s.Get(ctx, callerID, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if err := validateName(*input.Name); err != nil {
			return nil, err
		}
		patient.Name = strings.TrimSpace(*input.Name)
	}
	if input.Age != nil {
		if err := validateAge(*input.Age); err != nil {
			return nil, err
		}
		patient.Age = *input.Age
	}
	if input.Gender != nil {
		gender, err := normalizeGender(*input.Gender)
		if err != nil {
			return nil, err
		}
		patient.Gender = gender
	}
	if input.Phone != nil {
		if err := validatePhone(*input.Phone); err != nil {
			return nil, err
		}
		patient.Phone = *input.Phone
	}
	if input.Email != nil {
		if err := validateOptionalEmail(*input.Email); err != nil {
			return nil, err
		}
		patient.Email = *input.Email
	}
	if input.Address != nil {
		patient.Address = *input.Address
	}
	if input.MedicalHistory != nil {
		patient.MedicalHistory = *input.MedicalHistory
	}

	patient.UpdatedAt = time.Now().UTC()

	if err := s.repo.UpdatePatient(ctx, patient); err != nil {
		if errors.Is(err, repository.ErrPatientNotFound) {
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("failed to update patient: %w", err)
	}

	return patient, nil
}

// Delete removes one of the caller's patients. Dependent mappings are
// removed by the database cascade.
func (s *PatientService) Delete(ctx context.Context, callerID, id int64) error {
	if err := s.repo.DeletePatient(ctx, callerID, id); err != nil {
		if errors.Is(err, repository.ErrPatientNotFound) {
			return ErrPatientNotFound
		}
		return fmt.Errorf("failed to delete patient: %w", err)
	}
	return nil
}
