package models

import (
	"strings"
	"time"
)

// Student represents an enrollee record with grade level and section assignment.
type Student struct {
	ID            string        `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	StudentNumber string        `json:"student_number" gorm:"uniqueIndex;not null" validate:"required"`
	FirstName     string        `json:"first_name" gorm:"not null" validate:"required"`
	MiddleName    *string       `json:"middle_name,omitempty"`
	LastName      string        `json:"last_name" gorm:"not null" validate:"required"`
	GradeLevelID  string        `json:"grade_level_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	SectionID     string        `json:"section_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	ContactNumber *string       `json:"contact_number,omitempty"`
	Email         *string       `json:"email,omitempty" validate:"omitempty,email"`
	ParentName    *string       `json:"parent_name,omitempty"`
	ParentContact *string       `json:"parent_contact,omitempty"`
	ParentEmail   *string       `json:"parent_email,omitempty" validate:"omitempty,email"`
	Status        StudentStatus `json:"status" gorm:"not null;default:'active';index" validate:"required,oneof=active inactive graduated"`
	Notes         *string       `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt     time.Time     `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time     `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt     *time.Time    `json:"deleted_at,omitempty" gorm:"index"`

	// Relationships
	GradeLevel *GradeLevel `json:"grade_level,omitempty" gorm:"foreignKey:GradeLevelID;references:ID"`
	Section    *Section    `json:"section,omitempty" gorm:"foreignKey:SectionID;references:ID"`
	Payments   []*Payment  `json:"payments,omitempty" gorm:"foreignKey:StudentID;references:ID"`
}

// FullName joins the non-empty name parts with single spaces.
// It is derived, never stored.
func (s *Student) FullName() string {
	parts := make([]string, 0, 3)
	if s.FirstName != "" {
		parts = append(parts, s.FirstName)
	}
	if s.MiddleName != nil && *s.MiddleName != "" {
		parts = append(parts, *s.MiddleName)
	}
	if s.LastName != "" {
		parts = append(parts, s.LastName)
	}
	return strings.Join(parts, " ")
}
