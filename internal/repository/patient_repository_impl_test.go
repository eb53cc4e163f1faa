package repository

import (
	"context"
	"testing"

	domainRepo "mdent-api/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func patientColumns() []string {
	return []string{
		"id", "first_name", "last_name", "phone", "email",
		"registration_number", "birth_date", "gender", "branch_id",
		"created_at", "updated_at",
	}
}

func TestPatientSearch_EmptyQueryHasNoFilter(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPatientRepository()

	// No WHERE clause may appear between FROM and ORDER BY.
	mock.ExpectQuery(`SELECT \* FROM "patients" ORDER BY updated_at DESC LIMIT`).
		WillReturnRows(sqlmock.NewRows(patientColumns()))

	_, err := repo.Search(context.Background(), db, "", 50)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPatientSearch_QueryExpandsToFieldDisjunction(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPatientRepository()

	rows := sqlmock.NewRows(patientColumns()).
		AddRow(uuid.New().String(), "Jane", "Smith", "08123456", "jane@example.com",
			"REG-001", nil, "F", "branch-1", nil, nil)

	mock.ExpectQuery(`SELECT \* FROM "patients" WHERE first_name ILIKE .+ OR last_name ILIKE .+ OR phone LIKE .+ OR email ILIKE .+ OR registration_number ILIKE .+ ORDER BY updated_at DESC LIMIT`).
		WillReturnRows(rows)

	patients, err := repo.Search(context.Background(), db, "Smith", 50)
	require.NoError(t, err)
	require.Len(t, patients, 1)
	assert.Equal(t, "Smith", patients[0].LastName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPatientDelete_ReportsRowsAffected(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPatientRepository()
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "patients" WHERE id = .+`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	rows, err := repo.Delete(context.Background(), db, id)
	require.NoError(t, err)
	assert.Equal(t, int64(0), rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentList_DayWindow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAppointmentRepository()

	mock.ExpectQuery(`SELECT \* FROM "appointments" WHERE starts_at >= .+ AND starts_at < .+ ORDER BY starts_at ASC LIMIT`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "starts_at", "patient_id", "created_at", "updated_at"}))

	window := &domainRepo.TimeWindow{}
	_, err := repo.List(context.Background(), db, window, 200)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentList_NoWindowHasNoFilter(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAppointmentRepository()

	mock.ExpectQuery(`SELECT \* FROM "appointments" ORDER BY starts_at ASC LIMIT`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "starts_at", "patient_id", "created_at", "updated_at"}))

	_, err := repo.List(context.Background(), db, nil, 200)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
