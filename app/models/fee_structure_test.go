package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSchoolYearAt(t *testing.T) {
	tests := []struct {
		date string
		want string
	}{
		{"2025-06-01", "2025-2026"},
		{"2025-12-31", "2025-2026"},
		{"2026-01-01", "2025-2026"},
		{"2026-05-31", "2025-2026"},
		{"2026-06-01", "2026-2027"},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			at, err := time.Parse("2006-01-02", tt.date)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, SchoolYearAt(at))
		})
	}
}

func TestValidSchoolYear(t *testing.T) {
	assert.True(t, ValidSchoolYear("2025-2026"))
	assert.True(t, ValidSchoolYear("1999-2000"))

	assert.False(t, ValidSchoolYear("2025-2027"))
	assert.False(t, ValidSchoolYear("2026-2025"))
	assert.False(t, ValidSchoolYear("2025/2026"))
	assert.False(t, ValidSchoolYear("25-26"))
	assert.False(t, ValidSchoolYear(""))
}
