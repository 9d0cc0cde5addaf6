package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPaymentFlags(t *testing.T) {
	p := &Payment{}
	assert.False(t, p.IsPrinted())
	assert.False(t, p.IsVoided())

	now := time.Now()
	p.PrintedAt = &now
	p.DeletedAt = &now
	assert.True(t, p.IsPrinted())
	assert.True(t, p.IsVoided())
}

func TestMarkAsPrintedKeepsFirstTimestamp(t *testing.T) {
	p := &Payment{}
	p.MarkAsPrinted()
	first := p.PrintedAt
	assert.NotNil(t, first)

	p.MarkAsPrinted()
	assert.Same(t, first, p.PrintedAt)
}

func TestPaymentPurposesSuggestions(t *testing.T) {
	assert.Contains(t, PaymentPurposes, "Tuition Fee")
	assert.Contains(t, PaymentPurposes, "Other")
	assert.NotEmpty(t, PaymentPurposes)
}
