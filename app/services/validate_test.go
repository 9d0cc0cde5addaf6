package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckStructPaymentInput(t *testing.T) {
	input := PaymentInput{
		StudentID:      "4b6f9a3e-0000-0000-0000-000000000001",
		Amount:         NewAmount(decimal.NewFromInt(500)),
		PaymentPurpose: "Tuition Fee",
		PaymentMethod:  "cash",
	}
	assert.NoError(t, checkStruct(input))
}

func TestCheckStructCollectsFieldErrors(t *testing.T) {
	input := PaymentInput{
		StudentID:     "not-a-uuid",
		PaymentMethod: "barter",
		PaymentDate:   "01/09/2025",
	}

	err := checkStruct(input)
	require.Error(t, err)

	ve, ok := AsValidationError(err)
	require.True(t, ok)

	fields := ve.FieldMap()
	assert.Contains(t, fields, "student_id")
	assert.Contains(t, fields, "payment_purpose")
	assert.Contains(t, fields, "payment_method")
	assert.Contains(t, fields, "payment_date")
	assert.Equal(t, "this field is required", fields["payment_purpose"])
	assert.Equal(t, "must be one of: cash, check, online", fields["payment_method"])
}

func TestCheckStructStudentInput(t *testing.T) {
	err := checkStruct(StudentInput{})
	require.Error(t, err)

	ve, ok := AsValidationError(err)
	require.True(t, ok)

	fields := ve.FieldMap()
	assert.Contains(t, fields, "student_number")
	assert.Contains(t, fields, "first_name")
	assert.Contains(t, fields, "last_name")
	assert.Contains(t, fields, "grade_level")
	assert.Contains(t, fields, "section")

	bad := "not-an-email"
	err = checkStruct(StudentInput{
		StudentNumber: "2025-0001",
		FirstName:     "Juan",
		LastName:      "Dela Cruz",
		GradeLevel:    "grade-7",
		Section:       "A",
		Email:         &bad,
	})
	require.Error(t, err)
	ve, ok = AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, map[string]string{"email": "must be a valid email address"}, ve.FieldMap())
}

func TestFieldNamesUseJSONTags(t *testing.T) {
	err := checkStruct(PaymentInput{StudentID: "nope", PaymentPurpose: "x", PaymentMethod: "cash"})
	require.Error(t, err)

	ve, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, map[string]string{"student_id": "must be a valid id"}, ve.FieldMap())
}
