package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/medrecord/medrecord/internal/model"
)

// Common errors for mapping repository operations.
var (
	ErrMappingNotFound = errors.New("mapping not found")
	ErrMappingExists   = errors.New("mapping already exists")
)

// CreateMapping inserts a new patient-doctor mapping and assigns its id.
// The unique (patient_id, doctor_id) index rejects duplicates; foreign
// key constraints reject dangling references. Both are mapped to typed
// errors so callers need no pre-insert racing checks.
func (r *Repository) CreateMapping(ctx context.Context, mapping *model.Mapping) error {
	query := `
		INSERT INTO patient_doctor_mappings (patient_id, doctor_id, created_by, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.pool.QueryRow(ctx, query,
		mapping.PatientID,
		mapping.DoctorID,
		mapping.CreatedBy,
		mapping.CreatedAt,
	).Scan(&mapping.ID)

	if err != nil {
		if isUniqueViolation(err) {
			return ErrMappingExists
		}
		if constraint := foreignKeyConstraint(err); constraint != "" {
			// Constraint names carry the referencing column name.
			if strings.Contains(constraint, "patient_id") {
				return ErrPatientNotFound
			}
			if strings.Contains(constraint, "doctor_id") {
				return ErrDoctorNotFound
			}
		}
		return fmt.Errorf("failed to create mapping: %w", err)
	}

	return nil
}

const mappingSelect = `
	SELECT m.id, m.patient_id, m.doctor_id, m.created_by, p.name, d.name, m.created_at
	FROM patient_doctor_mappings m
	JOIN patients p ON p.id = m.patient_id
	JOIN doctors d ON d.id = m.doctor_id
`

// ListMappings retrieves all mappings with patient and doctor names,
// in creation order.
func (r *Repository) ListMappings(ctx context.Context) ([]*model.Mapping, error) {
	query := mappingSelect + ` ORDER BY m.created_at, m.id`

	return r.queryMappings(ctx, query)
}

// ListMappingsForPatient retrieves all mappings for one patient.
// Returns an empty slice when the patient has none or does not exist.
func (r *Repository) ListMappingsForPatient(ctx context.Context, patientID int64) ([]*model.Mapping, error) {
	query := mappingSelect + ` WHERE m.patient_id = $1 ORDER BY m.created_at, m.id`

	return r.queryMappings(ctx, query, patientID)
}

// DeleteMapping removes a mapping by its own id.
func (r *Repository) DeleteMapping(ctx context.Context, id int64) error {
	query := `DELETE FROM patient_doctor_mappings WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete mapping: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrMappingNotFound
	}

	return nil
}

func (r *Repository) queryMappings(ctx context.Context, query string, args ...any) ([]*model.Mapping, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list mappings: %w", err)
	}
	defer rows.Close()

	mappings := make([]*model.Mapping, 0)
	for rows.Next() {
		var mapping model.Mapping
		err := rows.Scan(
			&mapping.ID,
			&mapping.PatientID,
			&mapping.DoctorID,
			&mapping.CreatedBy,
			&mapping.PatientName,
			&mapping.DoctorName,
			&mapping.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan mapping: %w", err)
		}
		mappings = append(mappings, &mapping)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating mappings: %w", err)
	}

	return mappings, nil
}
