package validator

import (
	"testing"

	"mdent-api/internal/delivery/dto"
	"mdent-api/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func issueFields(issues []apperrors.Issue) []string {
	fields := make([]string, 0, len(issues))
	for _, issue := range issues {
		fields = append(fields, issue.Field)
	}
	return fields
}

func TestValidate_CreatePatient_Valid(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&dto.CreatePatientRequest{
		FirstName: "Jane",
		LastName:  "Smith",
		Phone:     "08123456",
		Email:     "jane@example.com",
		BirthDate: "1990-04-01",
	})
	assert.NoError(t, err)
}

func TestValidate_CreatePatient_MissingRequired(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&dto.CreatePatientRequest{LastName: "Smith"})
	require.Error(t, err)

	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.KindValidation, appErr.Kind)
	assert.Contains(t, issueFields(appErr.Issues), "first_name")
}

func TestValidate_CreatePatient_OptionalFieldsAbsent(t *testing.T) {
	cv := NewValidator()

	// Only the names are required; everything else may be empty.
	err := cv.Validate(&dto.CreatePatientRequest{
		FirstName: "Jane",
		LastName:  "Smith",
	})
	assert.NoError(t, err)
}

func TestValidate_CreatePatient_BadOptionalValues(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&dto.CreatePatientRequest{
		FirstName: "Jane",
		LastName:  "Smith",
		Email:     "not-an-email",
		Phone:     "123",
		BirthDate: "01/04/1990",
	})
	require.Error(t, err)

	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	fields := issueFields(appErr.Issues)
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "phone")
	assert.Contains(t, fields, "birth_date")
}

func TestValidate_UpdatePatient_SubsetAllowed(t *testing.T) {
	cv := NewValidator()

	phone := "08123456"
	err := cv.Validate(&dto.UpdatePatientRequest{Phone: &phone})
	assert.NoError(t, err)

	err = cv.Validate(&dto.UpdatePatientRequest{})
	assert.NoError(t, err)
}

func TestValidate_Login_MissingFields(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&dto.LoginRequest{})
	require.Error(t, err)

	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	fields := issueFields(appErr.Issues)
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "password")
}
