package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/medrecord/medrecord/internal/model"
	"github.com/medrecord/medrecord/internal/repository"
)

// Mapping service errors.
var (
	// ErrMappingExists is returned when the (patient, doctor) pair is
	// already assigned.
	ErrMappingExists = errors.New("this doctor is already assigned to this patient")
	// ErrMappingNotFound is returned when no mapping has the requested id.
	ErrMappingNotFound = errors.New("mapping not found")
)

// MappingService handles patient-doctor assignment logic.
type MappingService struct {
	repo *repository.Repository
}

// NewMappingService creates a new MappingService.
func NewMappingService(repo *repository.Repository) *MappingService {
	return &MappingService{repo: repo}
}

// List returns all mappings with patient and doctor names.
func (s *MappingService) List(ctx context.Context) ([]*model.Mapping, error) {
	return s.repo.ListMappings(ctx)
}

// ListForPatient returns all mappings for one patient. A patient with
// no mappings yields an empty slice, not an error.
func (s *MappingService) ListForPatient(ctx context.Context, patientID int64) ([]*model.Mapping, error) {
	return s.repo.ListMappingsForPatient(ctx, patientID)
}

// Create assigns a doctor to a patient. Both referenced records must
// exist and the pair must not already be assigned. The database
// constraints are authoritative; the explicit existence checks only
// produce precise errors for the common case.
func (s *MappingService) Create(ctx context.Context, callerID, patientID, doctorID int64) (*model.Mapping, error) {
	exists, err := s.repo.PatientExists(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrPatientNotFound
	}

	exists, err = s.repo.DoctorExists(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrDoctorNotFound
	}

	mapping := &model.Mapping{
		PatientID: patientID,
		DoctorID:  doctorID,
		CreatedBy: callerID,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.CreateMapping(ctx, mapping); err != nil {
		switch {
		case errors.Is(err, repository.ErrMappingExists):
			return nil, ErrMappingExists
		case errors.Is(err, repository.ErrPatientNotFound):
			return nil, ErrPatientNotFound
		case errors.Is(err, repository.ErrDoctorNotFound):
			return nil, ErrDoctorNotFound
		}
		return nil, fmt.Errorf("failed to create mapping: %w", err)
	}

	return mapping, nil
}

// Delete removes a mapping by its own id, regardless of creator.
func (s *MappingService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.DeleteMapping(ctx, id); err != nil {
		if errors.Is(err, repository.ErrMappingNotFound) {
			return ErrMappingNotFound
		}
		return fmt.Errorf("failed to delete mapping: %w", err)
	}
	return nil
}
