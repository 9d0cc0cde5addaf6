package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordRejectsNonPositiveAmount(t *testing.T) {
	svc := NewPaymentService(nil)

	for _, raw := range []string{"0", "-5", "0.009"} {
		t.Run(raw, func(t *testing.T) {
			input := PaymentInput{
				StudentID:      "4b6f9a3e-0000-0000-0000-000000000001",
				Amount:         NewAmount(d(raw)),
				PaymentPurpose: "Tuition Fee",
			}

			payment, err := svc.Record("4b6f9a3e-0000-0000-0000-000000000002", input)
			assert.Nil(t, payment)

			ve, ok := AsValidationError(err)
			require.True(t, ok)
			assert.Equal(t, "must be at least 0.01", ve.FieldMap()["amount"])
		})
	}
}

func TestRecordRejectsNonNumericAmount(t *testing.T) {
	body := `{
		"student_id": "4b6f9a3e-0000-0000-0000-000000000001",
		"amount": "five hundred",
		"payment_purpose": "Tuition Fee"
	}`

	var input PaymentInput
	require.NoError(t, json.Unmarshal([]byte(body), &input))

	payment, err := NewPaymentService(nil).Record("4b6f9a3e-0000-0000-0000-000000000002", input)
	assert.Nil(t, payment)

	ve, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "must be a number", ve.FieldMap()["amount"])
}

func TestAmountDecodesNumbersAndStrings(t *testing.T) {
	cases := []struct {
		body string
		want string
	}{
		{`{"amount": 1500.50}`, "1500.5"},
		{`{"amount": "1500.50"}`, "1500.5"},
	}

	for _, tc := range cases {
		var input PaymentInput
		require.NoError(t, json.Unmarshal([]byte(tc.body), &input))
		assert.False(t, input.Amount.malformed)
		assert.Equal(t, tc.want, input.Amount.value.String())
	}
}

func TestAmountOmittedIsZeroNotMalformed(t *testing.T) {
	var input PaymentInput
	require.NoError(t, json.Unmarshal([]byte(`{"payment_purpose": "Tuition Fee"}`), &input))

	assert.False(t, input.Amount.malformed)
	assert.True(t, input.Amount.value.IsZero())
}
