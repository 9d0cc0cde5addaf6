package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStudentFullName(t *testing.T) {
	middle := "Santos"
	s := &Student{FirstName: "Juan", MiddleName: &middle, LastName: "Dela Cruz"}
	assert.Equal(t, "Juan Santos Dela Cruz", s.FullName())

	s = &Student{FirstName: "Juan", LastName: "Dela Cruz"}
	assert.Equal(t, "Juan Dela Cruz", s.FullName())

	empty := ""
	s = &Student{FirstName: "Juan", MiddleName: &empty, LastName: "Dela Cruz"}
	assert.Equal(t, "Juan Dela Cruz", s.FullName())

	s = &Student{FirstName: "Juan"}
	assert.Equal(t, "Juan", s.FullName())

	s = &Student{}
	assert.Equal(t, "", s.FullName())
}

func TestValidStudentStatus(t *testing.T) {
	assert.True(t, ValidStudentStatus("active"))
	assert.True(t, ValidStudentStatus("inactive"))
	assert.True(t, ValidStudentStatus("graduated"))
	assert.False(t, ValidStudentStatus("expelled"))
	assert.False(t, ValidStudentStatus(""))
}

func TestValidPaymentMethod(t *testing.T) {
	assert.True(t, ValidPaymentMethod("cash"))
	assert.True(t, ValidPaymentMethod("check"))
	assert.True(t, ValidPaymentMethod("online"))
	assert.False(t, ValidPaymentMethod("crypto"))
	assert.False(t, ValidPaymentMethod(""))
}
