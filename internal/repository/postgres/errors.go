package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	codeUniqueViolation = "23505"
	// unique constraints that guard identity emails
	constraintUsersEmail   = "uq_users_email"
	constraintEmployeesKey = "employees_pkey"
)

// isEmailConflict reports whether err is a unique violation on an email key.
func isEmailConflict(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != codeUniqueViolation {
		return false
	}
	return pgErr.ConstraintName == constraintUsersEmail || pgErr.ConstraintName == constraintEmployeesKey
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
