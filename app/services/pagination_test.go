package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePerPage(t *testing.T) {
	assert.Equal(t, 10, NormalizePerPage(10))
	assert.Equal(t, 15, NormalizePerPage(15))
	assert.Equal(t, 25, NormalizePerPage(25))
	assert.Equal(t, 50, NormalizePerPage(50))

	// Anything outside the options falls back to the default.
	assert.Equal(t, 15, NormalizePerPage(0))
	assert.Equal(t, 15, NormalizePerPage(-1))
	assert.Equal(t, 15, NormalizePerPage(20))
	assert.Equal(t, 15, NormalizePerPage(1000))
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(2, 15, 31)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 15, p.PerPage)
	assert.Equal(t, 31, p.Total)
	assert.Equal(t, 3, p.LastPage)

	p = NewPagination(1, 15, 0)
	assert.Equal(t, 1, p.LastPage)

	p = NewPagination(0, 10, 10)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 1, p.LastPage)
}
