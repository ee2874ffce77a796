package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/staffhub-server/internal/model"
)

var _ model.IdentityStore = (*IdentityRepository)(nil)

const identityColumns = `id, email, password_hash, name, role, picture, created_at, updated_at`

type IdentityRepository struct {
	db DBTX
}

func NewIdentityRepository(db DBTX) *IdentityRepository {
	return &IdentityRepository{
		db: db,
	}
}

func scanIdentity(row pgx.Row) (model.Identity, error) {
	var identity model.Identity
	var role string
	err := row.Scan(
		&identity.ID, &identity.Email, &identity.PasswordHash, &identity.Name, &role,
		&identity.PictureRef, &identity.CreatedAt, &identity.UpdatedAt,
	)
	identity.Role = model.Role(role)
	return identity, err
}

func (r *IdentityRepository) GetByEmail(ctx context.Context, email string) (model.Identity, error) {
	query := `SELECT ` + identityColumns + ` FROM users WHERE email = $1`

	identity, err := scanIdentity(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if isNoRows(err) {
			return model.Identity{}, model.ErrNotFound
		}
		return model.Identity{}, fmt.Errorf("failed to get identity by email: %w", err)
	}

	return identity, nil
}

func (r *IdentityRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Identity, error) {
	query := `SELECT ` + identityColumns + ` FROM users WHERE id = $1`

	identity, err := scanIdentity(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if isNoRows(err) {
			return model.Identity{}, model.ErrNotFound
		}
		return model.Identity{}, fmt.Errorf("failed to get identity by id: %w", err)
	}

	return identity, nil
}

func (r *IdentityRepository) Create(ctx context.Context, identity model.Identity) (model.Identity, error) {
	query := `INSERT INTO users (id, email, password_hash, name, role, picture, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING ` + identityColumns

	saved, err := scanIdentity(r.db.QueryRow(ctx, query,
		identity.ID, identity.Email, identity.PasswordHash, identity.Name, string(identity.Role),
		identity.PictureRef, identity.CreatedAt, identity.UpdatedAt,
	))
	if err != nil {
		if isEmailConflict(err) {
			return model.Identity{}, model.ErrDuplicateIdentity
		}
		return model.Identity{}, fmt.Errorf("failed to create identity: %w", err)
	}

	return saved, nil
}

func (r *IdentityRepository) Update(ctx context.Context, id uuid.UUID, update model.IdentityUpdate) (model.Identity, error) {
	query := `UPDATE users
			  SET name = COALESCE($2, name), email = COALESCE($3, email), picture = COALESCE($4, picture), updated_at = NOW()
			  WHERE id = $1
			  RETURNING ` + identityColumns

	saved, err := scanIdentity(r.db.QueryRow(ctx, query, id, update.Name, update.Email, update.PictureRef))
	if err != nil {
		if isNoRows(err) {
			return model.Identity{}, model.ErrNotFound
		}
		if isEmailConflict(err) {
			return model.Identity{}, model.ErrDuplicateIdentity
		}
		return model.Identity{}, fmt.Errorf("failed to update identity: %w", err)
	}

	return saved, nil
}

func (r *IdentityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM users WHERE id = $1`
	cmd, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete identity: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

const detailsQuery = `SELECT u.id, u.email, u.password_hash, u.name, u.role, u.picture, u.created_at, u.updated_at,
		       e.fname, e.lname
		FROM users u
		LEFT JOIN employees e ON e.email = u.email`

func scanDetails(row pgx.Row) (model.UserDetails, error) {
	var details model.UserDetails
	var role string
	var fname, lname *string
	err := row.Scan(
		&details.Identity.ID, &details.Identity.Email, &details.Identity.PasswordHash, &details.Identity.Name,
		&role, &details.Identity.PictureRef, &details.Identity.CreatedAt, &details.Identity.UpdatedAt,
		&fname, &lname,
	)
	if err != nil {
		return model.UserDetails{}, err
	}
	details.Identity.Role = model.Role(role)
	if fname != nil && lname != nil {
		details.Profile = &model.Profile{Email: details.Identity.Email, FName: *fname, LName: *lname}
	}
	return details, nil
}

func (r *IdentityRepository) GetDetails(ctx context.Context, id uuid.UUID) (model.UserDetails, error) {
	details, err := scanDetails(r.db.QueryRow(ctx, detailsQuery+` WHERE u.id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return model.UserDetails{}, model.ErrNotFound
		}
		return model.UserDetails{}, fmt.Errorf("failed to get user details: %w", err)
	}

	return details, nil
}

func (r *IdentityRepository) ListDetails(ctx context.Context) ([]model.UserDetails, error) {
	rows, err := r.db.Query(ctx, detailsQuery+` ORDER BY u.created_at, u.email`)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var out []model.UserDetails
	for rows.Next() {
		details, err := scanDetails(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		out = append(out, details)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return out, nil
}
