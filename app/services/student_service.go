package services

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/mark-john-ignacio/school-cashier-system/app/database"
	"github.com/mark-john-ignacio/school-cashier-system/app/models"
)

// StudentService owns the student directory: filtered listings, lookups by
// id, and the create/update/delete lifecycle.
type StudentService struct {
	db       *sql.DB
	balances *BalanceService
}

func NewStudentService(db *sql.DB, balances *BalanceService) *StudentService {
	return &StudentService{db: db, balances: balances}
}

// StudentInput is the payload for creating or updating a student. GradeLevel
// and Section accept either a UUID or a slug/name, resolved before the write.
type StudentInput struct {
	StudentNumber string  `json:"student_number" validate:"required,max=50"`
	FirstName     string  `json:"first_name" validate:"required,max=100"`
	MiddleName    *string `json:"middle_name" validate:"omitempty,max=100"`
	LastName      string  `json:"last_name" validate:"required,max=100"`
	GradeLevel    string  `json:"grade_level" validate:"required"`
	Section       string  `json:"section" validate:"required"`
	ContactNumber *string `json:"contact_number" validate:"omitempty,max=30"`
	Email         *string `json:"email" validate:"omitempty,email"`
	ParentName    *string `json:"parent_name" validate:"omitempty,max=150"`
	ParentContact *string `json:"parent_contact" validate:"omitempty,max=30"`
	ParentEmail   *string `json:"parent_email" validate:"omitempty,email"`
	Status        string  `json:"status" validate:"omitempty,oneof=active inactive graduated"`
	Notes         *string `json:"notes"`
}

// StudentUpdateInput is the partial payload for updating a student. Nil
// fields are left unchanged; StudentNumber may appear but must match the
// stored value.
type StudentUpdateInput struct {
	StudentNumber *string `json:"student_number"`
	FirstName     *string `json:"first_name" validate:"omitempty,min=1,max=100"`
	MiddleName    *string `json:"middle_name" validate:"omitempty,max=100"`
	LastName      *string `json:"last_name" validate:"omitempty,min=1,max=100"`
	GradeLevel    *string `json:"grade_level" validate:"omitempty,min=1"`
	Section       *string `json:"section" validate:"omitempty,min=1"`
	ContactNumber *string `json:"contact_number" validate:"omitempty,max=30"`
	Email         *string `json:"email" validate:"omitempty,email"`
	ParentName    *string `json:"parent_name" validate:"omitempty,max=150"`
	ParentContact *string `json:"parent_contact" validate:"omitempty,max=30"`
	ParentEmail   *string `json:"parent_email" validate:"omitempty,email"`
	Status        *string `json:"status" validate:"omitempty,oneof=active inactive graduated"`
	Notes         *string `json:"notes"`
}

// StudentWithFinancials pairs a directory row with its derived money summary.
type StudentWithFinancials struct {
	*models.Student
	Financials *models.StudentFinancials `json:"financials"`
}

// ResolveGradeLevel accepts a UUID, slug or name and returns the grade level.
func (s *StudentService) ResolveGradeLevel(ref string) (*models.GradeLevel, error) {
	if _, err := uuid.Parse(ref); err == nil {
		level, err := database.GetGradeLevelByID(s.db, ref)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return level, err
	}

	level, err := database.GetGradeLevelBySlugOrName(s.db, ref)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return level, err
}

// ResolveSection accepts a UUID, slug or name. Non-UUID lookups are scoped to
// the grade level so "A" resolves per grade.
func (s *StudentService) ResolveSection(ref, gradeLevelID string) (*models.Section, error) {
	if _, err := uuid.Parse(ref); err == nil {
		section, err := database.GetSectionByID(s.db, ref)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return section, err
	}

	section, err := database.GetSectionBySlugOrName(s.db, ref, gradeLevelID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return section, err
}

func (s *StudentService) List(filters database.StudentFilters) ([]*models.Student, int, error) {
	if filters.Status != "" && !models.ValidStudentStatus(filters.Status) {
		return nil, 0, NewValidationError(
			fmt.Errorf("unknown status %q", filters.Status),
			FieldError{Field: "status", Error: "must be one of: active, inactive, graduated"},
		)
	}
	return database.GetStudentsWithFilters(s.db, filters)
}

// Get returns the student together with live financials. schoolYear narrows
// the expected fees when non-empty.
func (s *StudentService) Get(id, schoolYear string) (*StudentWithFinancials, error) {
	student, err := database.GetStudentByID(s.db, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	financials, err := s.balances.Financials(student, schoolYear)
	if err != nil {
		return nil, err
	}
	return &StudentWithFinancials{Student: student, Financials: financials}, nil
}

// resolveInput validates the payload and resolves grade/section references
// into a Student ready for insert or update.
func (s *StudentService) resolveInput(input StudentInput, excludedID string) (*models.Student, error) {
	if err := checkStruct(input); err != nil {
		return nil, err
	}

	exists, err := database.StudentNumberExists(s.db, input.StudentNumber, excludedID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, NewValidationError(
			fmt.Errorf("student number %s already exists", input.StudentNumber),
			FieldError{Field: "student_number", Error: "this student number is already taken"},
		)
	}

	level, err := s.ResolveGradeLevel(input.GradeLevel)
	if errors.Is(err, ErrNotFound) {
		return nil, NewValidationError(
			fmt.Errorf("unknown grade level %q", input.GradeLevel),
			FieldError{Field: "grade_level", Error: "grade level not found"},
		)
	}
	if err != nil {
		return nil, err
	}

	section, err := s.ResolveSection(input.Section, level.ID)
	if errors.Is(err, ErrNotFound) {
		return nil, NewValidationError(
			fmt.Errorf("unknown section %q", input.Section),
			FieldError{Field: "section", Error: "section not found in this grade level"},
		)
	}
	if err != nil {
		return nil, err
	}

	status := models.StudentStatus(input.Status)
	if input.Status == "" {
		status = models.StudentActive
	}

	return &models.Student{
		StudentNumber: input.StudentNumber,
		FirstName:     input.FirstName,
		MiddleName:    input.MiddleName,
		LastName:      input.LastName,
		GradeLevelID:  level.ID,
		SectionID:     section.ID,
		ContactNumber: input.ContactNumber,
		Email:         input.Email,
		ParentName:    input.ParentName,
		ParentContact: input.ParentContact,
		ParentEmail:   input.ParentEmail,
		Status:        status,
		Notes:         input.Notes,
		GradeLevel:    level,
		Section:       section,
	}, nil
}

func (s *StudentService) Create(input StudentInput) (*models.Student, error) {
	student, err := s.resolveInput(input, "")
	if err != nil {
		return nil, err
	}
	if err := database.CreateStudent(s.db, student); err != nil {
		return nil, err
	}
	return student, nil
}

// Update applies a partial update. Absent fields keep their stored values;
// the student number cannot change after enrollment.
func (s *StudentService) Update(id string, input StudentUpdateInput) (*models.Student, error) {
	student, err := database.GetStudentByID(s.db, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if input.StudentNumber != nil && *input.StudentNumber != student.StudentNumber {
		return nil, NewValidationError(
			errors.New("student number is immutable"),
			FieldError{Field: "student_number", Error: "student number cannot be changed"},
		)
	}

	if err := checkStruct(input); err != nil {
		return nil, err
	}

	if input.GradeLevel != nil {
		level, err := s.ResolveGradeLevel(*input.GradeLevel)
		if errors.Is(err, ErrNotFound) {
			return nil, NewValidationError(
				fmt.Errorf("unknown grade level %q", *input.GradeLevel),
				FieldError{Field: "grade_level", Error: "grade level not found"},
			)
		}
		if err != nil {
			return nil, err
		}
		student.GradeLevelID = level.ID
		student.GradeLevel = level
	}

	if input.Section != nil {
		section, err := s.ResolveSection(*input.Section, student.GradeLevelID)
		if errors.Is(err, ErrNotFound) {
			return nil, NewValidationError(
				fmt.Errorf("unknown section %q", *input.Section),
				FieldError{Field: "section", Error: "section not found in this grade level"},
			)
		}
		if err != nil {
			return nil, err
		}
		student.SectionID = section.ID
		student.Section = section
	}

	if input.FirstName != nil {
		student.FirstName = *input.FirstName
	}
	if input.MiddleName != nil {
		student.MiddleName = input.MiddleName
	}
	if input.LastName != nil {
		student.LastName = *input.LastName
	}
	if input.ContactNumber != nil {
		student.ContactNumber = input.ContactNumber
	}
	if input.Email != nil {
		student.Email = input.Email
	}
	if input.ParentName != nil {
		student.ParentName = input.ParentName
	}
	if input.ParentContact != nil {
		student.ParentContact = input.ParentContact
	}
	if input.ParentEmail != nil {
		student.ParentEmail = input.ParentEmail
	}
	if input.Status != nil {
		student.Status = models.StudentStatus(*input.Status)
	}
	if input.Notes != nil {
		student.Notes = input.Notes
	}

	if err := database.UpdateStudent(s.db, student); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return student, nil
}

// Delete soft-deletes the student. Payments already on the ledger keep their
// link for audit.
func (s *StudentService) Delete(id string) error {
	err := database.DeleteStudent(s.db, id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
