package database

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mark-john-ignacio/school-cashier-system/app/models"
)

func TestFormatReceiptNumber(t *testing.T) {
	day := time.Date(2025, 9, 1, 14, 30, 0, 0, time.UTC)

	assert.Equal(t, "RCP-20250901-0001", formatReceiptNumber(day, 1))
	assert.Equal(t, "RCP-20250901-0042", formatReceiptNumber(day, 42))
	assert.Equal(t, "RCP-20250901-9999", formatReceiptNumber(day, 9999))

	// Past four digits the number widens rather than wrapping.
	assert.Equal(t, "RCP-20250901-10000", formatReceiptNumber(day, 10000))
}

func TestReceiptNumberShape(t *testing.T) {
	pattern := regexp.MustCompile(`^RCP-\d{8}-\d{4}$`)

	day := time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)
	assert.Regexp(t, pattern, formatReceiptNumber(day, 7))
}

func TestReceiptPrefixResetsDaily(t *testing.T) {
	monday := time.Date(2025, 9, 1, 23, 59, 0, 0, time.UTC)
	tuesday := time.Date(2025, 9, 2, 0, 1, 0, 0, time.UTC)

	assert.NotEqual(t, receiptPrefix(monday), receiptPrefix(tuesday))
	assert.Equal(t, "RCP-20250902-", receiptPrefix(tuesday))
}

func TestReceiptDayIsRecordingDay(t *testing.T) {
	defer func(orig func() time.Time) { receiptNow = orig }(receiptNow)
	receiptNow = func() time.Time {
		return time.Date(2026, 3, 5, 10, 30, 0, 0, time.UTC)
	}

	backdated := &models.Payment{
		PaymentDate: time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
	}

	day := receiptDay(backdated)
	assert.Equal(t, "RCP-20260305-", receiptPrefix(day))
	assert.Equal(t, "RCP-20260305-0001", formatReceiptNumber(day, 1))
	assert.NotContains(t, formatReceiptNumber(day, 1), "20250801")
}

func TestStudentSortColumnsWhitelist(t *testing.T) {
	// Unknown sort keys must not reach the SQL string.
	_, ok := studentSortColumns["student_number; DROP TABLE students"]
	assert.False(t, ok)

	for key, column := range studentSortColumns {
		assert.NotEmpty(t, key)
		assert.Regexp(t, `^[a-z_.]+$`, column)
	}
}

func TestPaymentSortColumnsWhitelist(t *testing.T) {
	_, ok := paymentSortColumns["amount)"]
	assert.False(t, ok)

	for _, column := range paymentSortColumns {
		assert.Regexp(t, `^[a-z_.]+$`, column)
	}
}
