package apperrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
	pgNotNullViolation    = "23502"
)

// FromStore classifies a storage-layer error into a failure kind. Unique and
// foreign-key violations become conflicts carrying the constraint name;
// check/not-null violations become store-level validation errors; anything
// else is internal.
func FromStore(err error) *AppError {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return UniqueConstraint(pgErr.ConstraintName, err)
		case pgForeignKeyViolation:
			return ForeignKey(pgErr.ConstraintName, err)
		case pgCheckViolation, pgNotNullViolation:
			return ValidationMessage(pgErr.Message)
		}
	}
	return Internal(err)
}
