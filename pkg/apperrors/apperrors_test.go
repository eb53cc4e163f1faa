package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		err    *AppError
		status int
	}{
		{Validation(nil), http.StatusBadRequest},
		{ValidationMessage("bad"), http.StatusBadRequest},
		{InvalidCredentials(), http.StatusUnauthorized},
		{Unauthorized(nil), http.StatusUnauthorized},
		{Forbidden(), http.StatusForbidden},
		{NotFound("patient"), http.StatusNotFound},
		{UniqueConstraint("users_email_key", nil), http.StatusConflict},
		{ForeignKey("appointments_patient_id_fkey", nil), http.StatusConflict},
		{RateLimited(), http.StatusTooManyRequests},
		{Internal(errors.New("boom")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.status, tt.err.Status(), "kind %s", tt.err.Kind)
	}
}

func TestFromStore_UniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}

	appErr := FromStore(fmt.Errorf("create: %w", pgErr))
	assert.Equal(t, KindUniqueConstraint, appErr.Kind)
	assert.Equal(t, "users_email_key", appErr.Meta["constraint"])
}

func TestFromStore_ForeignKeyViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23503", ConstraintName: "appointments_patient_id_fkey"}

	appErr := FromStore(pgErr)
	assert.Equal(t, KindForeignKey, appErr.Kind)
	assert.Equal(t, "appointments_patient_id_fkey", appErr.Meta["constraint"])
}

func TestFromStore_CheckViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23514", Message: "value violates check constraint"}

	appErr := FromStore(pgErr)
	assert.Equal(t, KindValidation, appErr.Kind)
	assert.Equal(t, "value violates check constraint", appErr.Message)
}

func TestFromStore_UnknownError(t *testing.T) {
	appErr := FromStore(errors.New("connection reset"))
	assert.Equal(t, KindInternal, appErr.Kind)
}

func TestAs(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", NotFound("patient"))

	appErr, ok := As(wrapped)
	assert.True(t, ok)
	assert.Equal(t, KindNotFound, appErr.Kind)

	_, ok = As(errors.New("plain"))
	assert.False(t, ok)
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("boom")
	assert.ErrorIs(t, Internal(cause), cause)
}
