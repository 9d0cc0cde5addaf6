package database

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecentPaymentsOrderByPaymentDateThenCreation(t *testing.T) {
	datePos := strings.Index(recentPaymentsOrder, "payment_date DESC")
	createdPos := strings.Index(recentPaymentsOrder, "created_at DESC")

	require.NotEqual(t, -1, datePos)
	require.NotEqual(t, -1, createdPos)
	assert.Less(t, datePos, createdPos)
}
