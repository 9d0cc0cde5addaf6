package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// FeeStructure represents one fee line item applicable to a grade level for
// a school year. Only rows with IsActive = true contribute to expected-fee
// totals.
type FeeStructure struct {
	ID           string          `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	GradeLevelID string          `json:"grade_level_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	FeeType      string          `json:"fee_type" gorm:"not null" validate:"required"`
	Amount       decimal.Decimal `json:"amount" gorm:"not null;type:decimal(10,2)" validate:"required"`
	SchoolYear   string          `json:"school_year" gorm:"not null;index" validate:"required"`
	Description  *string         `json:"description,omitempty" gorm:"type:text"`
	IsActive     bool            `json:"is_active" gorm:"default:true;index"`
	CreatedAt    time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time       `json:"updated_at" gorm:"autoUpdateTime"`

	GradeLevel *GradeLevel `json:"grade_level,omitempty" gorm:"foreignKey:GradeLevelID;references:ID"`
}

// CurrentSchoolYear returns the school year containing today, e.g. "2025-2026".
// The school year rolls over in June.
func CurrentSchoolYear() string {
	return SchoolYearAt(time.Now())
}

// SchoolYearAt returns the school year containing t.
func SchoolYearAt(t time.Time) string {
	year := t.Year()
	if int(t.Month()) >= 6 {
		return fmt.Sprintf("%d-%d", year, year+1)
	}
	return fmt.Sprintf("%d-%d", year-1, year)
}

// ValidSchoolYear reports whether s has the form "YYYY-YYYY" with
// consecutive years, e.g. "2025-2026".
func ValidSchoolYear(s string) bool {
	var start, end int
	if _, err := fmt.Sscanf(s, "%4d-%4d", &start, &end); err != nil {
		return false
	}
	return len(s) == 9 && end == start+1
}
