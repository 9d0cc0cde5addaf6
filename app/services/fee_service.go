package services

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mark-john-ignacio/school-cashier-system/app/database"
	"github.com/mark-john-ignacio/school-cashier-system/app/models"
)

// FeeService owns the fee schedule: the per-grade fee structures that the
// balance derivation sums.
type FeeService struct {
	db       *sql.DB
	students *StudentService
}

func NewFeeService(db *sql.DB, students *StudentService) *FeeService {
	return &FeeService{db: db, students: students}
}

// FeeInput is the payload for creating or updating a fee structure.
type FeeInput struct {
	GradeLevel  string          `json:"grade_level" validate:"required"`
	FeeType     string          `json:"fee_type" validate:"required,max=100"`
	Description *string         `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	SchoolYear  string          `json:"school_year"`
	IsActive    *bool           `json:"is_active"`
}

func (s *FeeService) List(filters database.FeeFilters) ([]*models.FeeStructure, error) {
	return database.GetFeeStructures(s.db, filters)
}

func (s *FeeService) Get(id string) (*models.FeeStructure, error) {
	fee, err := database.GetFeeStructureByID(s.db, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return fee, err
}

func (s *FeeService) resolveInput(input FeeInput) (*models.FeeStructure, error) {
	if err := checkStruct(input); err != nil {
		return nil, err
	}

	if !input.Amount.IsPositive() {
		return nil, NewValidationError(
			fmt.Errorf("amount %s not positive", input.Amount),
			FieldError{Field: "amount", Error: "must be greater than 0"},
		)
	}

	level, err := s.students.ResolveGradeLevel(input.GradeLevel)
	if errors.Is(err, ErrNotFound) {
		return nil, NewValidationError(
			fmt.Errorf("unknown grade level %q", input.GradeLevel),
			FieldError{Field: "grade_level", Error: "grade level not found"},
		)
	}
	if err != nil {
		return nil, err
	}

	schoolYear := input.SchoolYear
	if schoolYear == "" {
		schoolYear = models.CurrentSchoolYear()
	} else if !models.ValidSchoolYear(schoolYear) {
		return nil, NewValidationError(
			fmt.Errorf("bad school year %q", schoolYear),
			FieldError{Field: "school_year", Error: "must look like 2025-2026"},
		)
	}

	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}

	return &models.FeeStructure{
		GradeLevelID: level.ID,
		FeeType:      input.FeeType,
		Description:  input.Description,
		Amount:       input.Amount,
		SchoolYear:   schoolYear,
		IsActive:     active,
		GradeLevel:   level,
	}, nil
}

func (s *FeeService) Create(input FeeInput) (*models.FeeStructure, error) {
	fee, err := s.resolveInput(input)
	if err != nil {
		return nil, err
	}
	if err := database.CreateFeeStructure(s.db, fee); err != nil {
		return nil, err
	}
	return fee, nil
}

func (s *FeeService) Update(id string, input FeeInput) (*models.FeeStructure, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}

	fee, err := s.resolveInput(input)
	if err != nil {
		return nil, err
	}
	fee.ID = id

	if err := database.UpdateFeeStructure(s.db, fee); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return fee, nil
}

// SetActive toggles whether the fee counts toward expected fees.
func (s *FeeService) SetActive(id string, active bool) (*models.FeeStructure, error) {
	err := database.SetFeeStructureActive(s.db, id, active)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return s.Get(id)
}

func (s *FeeService) Delete(id string) error {
	err := database.DeleteFeeStructure(s.db, id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
