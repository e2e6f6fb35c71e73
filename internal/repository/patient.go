package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/medrecord/medrecord/internal/model"
)

// ErrPatientNotFound is returned when no patient matches the id within
// the caller's scope. Cross-tenant reads surface this same error.
var ErrPatientNotFound = errors.New("patient not found")

const patientColumns = `id, created_by, name, age, gender, phone, email, address, medical_history, created_at, updated_at`

// CreatePatient inserts a new patient and assigns its id.
func (r *Repository) CreatePatient(ctx context.Context, patient *model.Patient) error {
	query := `
		INSERT INTO patients (created_by, name, age, gender, phone, email, address, medical_history, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	err := r.pool.QueryRow(ctx, query,
		patient.CreatedBy,
		patient.Name,
		patient.Age,
		patient.Gender,
		patient.Phone,
		patient.Email,
		patient.Address,
		patient.MedicalHistory,
		patient.CreatedAt,
		patient.UpdatedAt,
	).Scan(&patient.ID)

	if err != nil {
		return fmt.Errorf("failed to create patient: %w", err)
	}

	return nil
}

// ListPatients retrieves all patients created by the given owner, in
// creation order.
func (r *Repository) ListPatients(ctx context.Context, ownerID int64) ([]*model.Patient, error) {
	query := `
		SELECT ` + patientColumns + `
		FROM patients
		WHERE created_by = $1
		ORDER BY created_at, id
	`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	defer rows.Close()

	patients := make([]*model.Patient, 0)
	for rows.Next() {
		patient, err := scanPatient(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan patient: %w", err)
		}
		patients = append(patients, patient)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating patients: %w", err)
	}

	return patients, nil
}

// GetPatient retrieves a patient by id, scoped to its owner.
func (r *Repository) GetPatient(ctx context.Context, ownerID, id int64) (*model.Patient, error) {
	query := `
		SELECT ` + patientColumns + `
		FROM patients
		WHERE id = $1 AND created_by = $2
	`

	patient, err := scanPatient(r.pool.QueryRow(ctx, query, id, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}

	return patient, nil
}

// UpdatePatient persists a patient's mutable fields, scoped to its owner.
func (r *Repository) UpdatePatient(ctx context.Context, patient *model.Patient) error {
	query := `
		UPDATE patients
		SET name = $3, age = $4, gender = $5, phone = $6, email = $7,
		    address = $8, medical_history = $9, updated_at = $10
		WHERE id = $1 AND created_by = $2
	`

	result, err := r.pool.Exec(ctx, query,
		patient.ID,
		patient.CreatedBy,
		patient.Name,
		patient.Age,
		patient.Gender,
		patient.Phone,
		patient.Email,
		patient.Address,
		patient.MedicalHistory,
		patient.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to update patient: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrPatientNotFound
	}

	return nil
}

// DeletePatient removes a patient, scoped to its owner. Dependent
// mappings are removed by the cascade constraint.
func (r *Repository) DeletePatient(ctx context.Context, ownerID, id int64) error {
	query := `DELETE FROM patients WHERE id = $1 AND created_by = $2`

	result, err := r.pool.Exec(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete patient: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrPatientNotFound
	}

	return nil
}

// PatientExists reports whether any patient has the given id,
// regardless of owner. Used only for mapping referential checks.
func (r *Repository) PatientExists(ctx context.Context, id int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM patients WHERE id = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check patient existence: %w", err)
	}

	return exists, nil
}

// scanPatient scans a row into a Patient model.
func scanPatient(row pgx.Row) (*model.Patient, error) {
	var patient model.Patient
	err := row.Scan(
		&patient.ID,
		&patient.CreatedBy,
		&patient.Name,
		&patient.Age,
		&patient.Gender,
		&patient.Phone,
		&patient.Email,
		&patient.Address,
		&patient.MedicalHistory,
		&patient.CreatedAt,
		&patient.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &patient, nil
}
