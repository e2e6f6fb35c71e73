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

// ErrDoctorNotFound is returned when no doctor has the requested id.
var ErrDoctorNotFound = errors.New("doctor not found")

// DoctorService handles doctor business logic. Doctors form a shared
// directory: creation records the caller, but reads and writes are not
// scoped to it.
type DoctorService struct {
	repo *repository.Repository
}

// NewDoctorService creates a new DoctorService.
func NewDoctorService(repo *repository.Repository) *DoctorService {
	return &DoctorService{repo: repo}
}

// CreateDoctorInput defines input for creating a doctor.
type CreateDoctorInput struct {
	Name            string
	Specialization  string
	Phone           string
	Email           string
	ExperienceYears int
}

// UpdateDoctorInput defines a partial doctor update. Nil fields are
// left unchanged.
type UpdateDoctorInput struct {
	Name            *string
	Specialization  *string
	Phone           *string
	Email           *string
	ExperienceYears *int
}

// List returns all doctors in creation order.
func (s *DoctorService) List(ctx context.Context) ([]*model.Doctor, error) {
	return s.repo.ListDoctors(ctx)
}

// Create validates the input and persists a new doctor. The caller is
// recorded as creator but gains no special rights over the record.
func (s *DoctorService) Create(ctx context.Context, callerID int64, input CreateDoctorInput) (*model.Doctor, error) {
	if err := validateName(input.Name); err != nil {
		return nil, err
	}
	if err := validateSpecialization(input.Specialization); err != nil {
		return nil, err
	}
	if err := validatePhone(input.Phone); err != nil {
		return nil, err
	}
	if err := validateOptionalEmail(input.Email); err != nil {
		return nil, err
	}
	if err := validateExperience(input.ExperienceYears); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	doctor := &model.Doctor{
		CreatedBy:       callerID,
		Name:            strings.TrimSpace(input.Name),
		Specialization:  strings.TrimSpace(input.Specialization),
		Phone:           input.Phone,
		Email:           input.Email,
		ExperienceYears: input.ExperienceYears,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.CreateDoctor(ctx, doctor); err != nil {
		return nil, fmt.Errorf("failed to create doctor: %w", err)
	}

	return doctor, nil
}

// Get returns a doctor by id.
func (s *DoctorService) Get(ctx context.Context, id int64) (*model.Doctor, error) {
	doctor, err := s.repo.GetDoctor(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDoctorNotFound) {
			return nil, ErrDoctorNotFound
		}
		return nil, err
	}
	return doctor, nil
}

// Update applies a partial update to a doctor.
func (s *DoctorService) Update(ctx context.Context, id int64, input UpdateDoctorInput) (*model.Doctor, error) {
	doctor, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if err := validateName(*input.Name); err != nil {
			return nil, err
		}
		doctor.Name = strings.TrimSpace(*input.Name)
	}
	if input.Specialization != nil {
		if err := validateSpecialization(*input.Specialization); err != nil {
			return nil, err
		}
		doctor.Specialization = strings.TrimSpace(*input.Specialization)
	}
	if input.Phone != nil {
		if err := validatePhone(*input.Phone); err != nil {
			return nil, err
		}
		doctor.Phone = *input.Phone
	}
	if input.Email != nil {
		if err := validateOptionalEmail(*input.Email); err != nil {
			return nil, err
		}
		doctor.Email = *input.Email
	}
	if input.ExperienceYears != nil {
		if err := validateExperience(*input.ExperienceYears); err != nil {
			return nil, err
		}
		doctor.ExperienceYears = *input.ExperienceYears
	}

	doctor.UpdatedAt = time.Now().UTC()

	if err := s.repo.UpdateDoctor(ctx, doctor); err != nil {
		if errors.Is(err, repository.ErrDoctorNotFound) {
			return nil, ErrDoctorNotFound
		}
		return nil, fmt.Errorf("failed to update doctor: %w", err)
	}

	return doctor, nil
}

// Delete removes a doctor. Dependent mappings are removed by the
// database cascade.
func (s *DoctorService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.DeleteDoctor(ctx, id); err != nil {
		if errors.Is(err, repository.ErrDoctorNotFound) {
			return ErrDoctorNotFound
		}
		return fmt.Errorf("failed to delete doctor: %w", err)
	}
	return nil
}

// validateSpecialization checks a doctor's specialization field.
func validateSpecialization(specialization string) error {
	specialization = strings.TrimSpace(specialization)
	if specialization == "" {
		return ErrSpecializationRequired
	}
	if len(specialization) > maxNameLength {
		return ErrSpecializationTooLong
	}
	return nil
}
