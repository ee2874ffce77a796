package postgres

import (
	"context"
	"fmt"

	"github.com/dtroode/staffhub-server/internal/model"
)

var _ model.ProfileStore = (*ProfileRepository)(nil)

type ProfileRepository struct {
	db DBTX
}

func NewProfileRepository(db DBTX) *ProfileRepository {
	return &ProfileRepository{
		db: db,
	}
}

func (r *ProfileRepository) GetByEmail(ctx context.Context, email string) (model.Profile, error) {
	const query = `SELECT email, fname, lname FROM employees WHERE email = $1`

	var profile model.Profile
	err := r.db.QueryRow(ctx, query, email).Scan(&profile.Email, &profile.FName, &profile.LName)
	if err != nil {
		if isNoRows(err) {
			return model.Profile{}, model.ErrNotFound
		}
		return model.Profile{}, fmt.Errorf("failed to get profile by email: %w", err)
	}

	return profile, nil
}

func (r *ProfileRepository) Create(ctx context.Context, profile model.Profile) error {
	const query = `INSERT INTO employees (email, fname, lname) VALUES ($1, $2, $3)`

	if _, err := r.db.Exec(ctx, query, profile.Email, profile.FName, profile.LName); err != nil {
		if isEmailConflict(err) {
			return model.ErrDuplicateIdentity
		}
		return fmt.Errorf("failed to create profile: %w", err)
	}

	return nil
}

func (r *ProfileRepository) Update(ctx context.Context, profile model.Profile) error {
	const query = `UPDATE employees SET fname = $2, lname = $3 WHERE email = $1`

	cmd, err := r.db.Exec(ctx, query, profile.Email, profile.FName, profile.LName)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

func (r *ProfileRepository) Upsert(ctx context.Context, profile model.Profile) error {
	const query = `INSERT INTO employees (email, fname, lname) VALUES ($1, $2, $3)
			  ON CONFLICT (email) DO UPDATE SET fname = EXCLUDED.fname, lname = EXCLUDED.lname`

	if _, err := r.db.Exec(ctx, query, profile.Email, profile.FName, profile.LName); err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}

	return nil
}

func (r *ProfileRepository) DeleteByEmail(ctx context.Context, email string) error {
	const query = `DELETE FROM employees WHERE email = $1`

	cmd, err := r.db.Exec(ctx, query, email)
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}
