package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/medrecord/medrecord/internal/model"
)

// ErrDoctorNotFound is returned when no doctor matches the id.
var ErrDoctorNotFound = errors.New("doctor not found")

const doctorColumns = `id, created_by, name, specialization, phone, email, experience_years, created_at, updated_at`

// CreateDoctor inserts a new doctor and assigns its id.
func (r *Repository) CreateDoctor(ctx context.Context, doctor *model.Doctor) error {
	query := `
		INSERT INTO doctors (created_by, name, specialization, phone, email, experience_years, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	err := r.pool.QueryRow(ctx, query,
		doctor.CreatedBy,
		doctor.Name,
		doctor.Specialization,
		doctor.Phone,
		doctor.Email,
		doctor.ExperienceYears,
		doctor.CreatedAt,
		doctor.UpdatedAt,
	).Scan(&doctor.ID)

	if err != nil {
		return fmt.Errorf("failed to create doctor: %w", err)
	}

	return nil
}

// ListDoctors retrieves all doctors in creation order. Doctors are
// globally visible, so there is no owner filter.
func (r *Repository) ListDoctors(ctx context.Context) ([]*model.Doctor, error) {
	query := `
		SELECT ` + doctorColumns + `
		FROM doctors
		ORDER BY created_at, id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}
	defer rows.Close()

	doctors := make([]*model.Doctor, 0)
	for rows.Next() {
		doctor, err := scanDoctor(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan doctor: %w", err)
		}
		doctors = append(doctors, doctor)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating doctors: %w", err)
	}

	return doctors, nil
}

// GetDoctor retrieves a doctor by id.
func (r *Repository) GetDoctor(ctx context.Context, id int64) (*model.Doctor, error) {
	query := `
		SELECT ` + doctorColumns + `
		FROM doctors
		WHERE id = $1
	`

	doctor, err := scanDoctor(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDoctorNotFound
		}
		return nil, fmt.Errorf("failed to get doctor: %w", err)
	}

	return doctor, nil
}

// UpdateDoctor persists a doctor's mutable fields.
func (r *Repository) UpdateDoctor(ctx context.Context, doctor *model.Doctor) error {
	query := `
		UPDATE doctors
		SET name = $2, specialization = $3, phone = $4, email = $5,
		    experience_years = $6, updated_at = $7
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query,
		doctor.ID,
		doctor.Name,
		doctor.Specialization,
		doctor.Phone,
		doctor.Email,
		doctor.ExperienceYears,
		doctor.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to update doctor: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrDoctorNotFound
	}

	return nil
}

// DeleteDoctor removes a doctor. Dependent mappings are removed by the
// cascade constraint.
func (r *Repository) DeleteDoctor(ctx context.Context, id int64) error {
	query := `DELETE FROM doctors WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete doctor: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrDoctorNotFound
	}

	return nil
}

// DoctorExists reports whether any doctor has the given id.
func (r *Repository) DoctorExists(ctx context.Context, id int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM doctors WHERE id = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check doctor existence: %w", err)
	}

	return exists, nil
}

// scanDoctor scans a row into a Doctor model.
func scanDoctor(row pgx.Row) (*model.Doctor, error) {
	var doctor model.Doctor
	err := row.Scan(
		&doctor.ID,
		&doctor.CreatedBy,
		&doctor.Name,
		&doctor.Specialization,
		&doctor.Phone,
		&doctor.Email,
		&doctor.ExperienceYears,
		&doctor.CreatedAt,
		&doctor.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &doctor, nil
}
