package models

import "time"

// GradeLevel is a reference table row for a year level (e.g. "Grade 7").
type GradeLevel struct {
	ID           string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Name         string     `json:"name" gorm:"uniqueIndex;not null" validate:"required"`
	Slug         string     `json:"slug" gorm:"uniqueIndex;not null" validate:"required"`
	DisplayOrder int        `json:"display_order" gorm:"not null;default:0"`
	CreatedAt    time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty" gorm:"index"`

	Sections []*Section `json:"sections,omitempty" gorm:"foreignKey:GradeLevelID;references:ID"`
}

// Section is a reference table row for a class section, optionally owned by
// one grade level.
type Section struct {
	ID           string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Name         string     `json:"name" gorm:"not null" validate:"required"`
	Slug         string     `json:"slug" gorm:"not null;index" validate:"required"`
	DisplayOrder int        `json:"display_order" gorm:"not null;default:0"`
	GradeLevelID *string    `json:"grade_level_id,omitempty" gorm:"index;type:uuid"`
	CreatedAt    time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty" gorm:"index"`

	GradeLevel *GradeLevel `json:"grade_level,omitempty" gorm:"foreignKey:GradeLevelID;references:ID"`
}
