package students

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/mark-john-ignacio/school-cashier-system/app/database"
	"github.com/mark-john-ignacio/school-cashier-system/app/models"
	"github.com/mark-john-ignacio/school-cashier-system/app/services"
)

func handleServiceError(c *fiber.Ctx, err error) error {
	if ve, ok := services.AsValidationError(err); ok {
		return c.Status(422).JSON(fiber.Map{"error": ve.Error(), "fields": ve.FieldMap()})
	}
	if errors.Is(err, services.ErrNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "Record not found"})
	}
	if _, ok := services.AsConflictError(err); ok {
		return c.Status(409).JSON(fiber.Map{"error": "Conflict detected, please retry"})
	}
	return c.Status(500).JSON(fiber.Map{"error": "Database error"})
}

// refResolver resolves grade level and section references from list filters.
type refResolver interface {
	ResolveGradeLevel(ref string) (*models.GradeLevel, error)
	ResolveSection(ref, gradeLevelID string) (*models.Section, error)
}

// applyRefFilters resolves the grade_level and section query filters onto
// filters. The section filter works on its own; when a grade level is also
// supplied the section is scoped to it.
func applyRefFilters(c *fiber.Ctx, resolver refResolver, filters *database.StudentFilters) error {
	if ref := c.Query("grade_level"); ref != "" {
		level, err := resolver.ResolveGradeLevel(ref)
		if errors.Is(err, services.ErrNotFound) {
			return services.NewValidationError(
				fmt.Errorf("unknown grade level %q", ref),
				services.FieldError{Field: "grade_level", Error: "grade level not found"},
			)
		}
		if err != nil {
			return err
		}
		filters.GradeLevelID = level.ID
	}

	if ref := c.Query("section"); ref != "" {
		section, err := resolver.ResolveSection(ref, filters.GradeLevelID)
		if errors.Is(err, services.ErrNotFound) {
			return services.NewValidationError(
				fmt.Errorf("unknown section %q", ref),
				services.FieldError{Field: "section", Error: "section not found"},
			)
		}
		if err != nil {
			return err
		}
		filters.SectionID = section.ID
	}
	return nil
}

func GetStudentsAPI(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	perPage := services.NormalizePerPage(c.QueryInt("per_page", services.DefaultPerPage))

	filters := database.StudentFilters{
		Search:    c.Query("search"),
		Status:    c.Query("status"),
		SortBy:    c.Query("sort_by", "last_name"),
		SortOrder: c.Query("sort_order", "asc"),
		Limit:     perPage,
		Offset:    (page - 1) * perPage,
	}

	if err := applyRefFilters(c, studentService, &filters); err != nil {
		return handleServiceError(c, err)
	}

	students, totalCount, err := studentService.List(filters)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"students":   students,
		"count":      len(students),
		"pagination": services.NewPagination(page, perPage, totalCount),
	})
}

func GetStudentAPI(c *fiber.Ctx) error {
	student, err := studentService.Get(c.Params("id"), c.Query("school_year"))
	if err != nil {
		return handleServiceError(c, err)
	}
	return c.JSON(fiber.Map{"student": student})
}

func CreateStudentAPI(c *fiber.Ctx) error {
	var input services.StudentInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	student, err := studentService.Create(input)
	if err != nil {
		return handleServiceError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"student": student})
}

func UpdateStudentAPI(c *fiber.Ctx) error {
	var input services.StudentUpdateInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	student, err := studentService.Update(c.Params("id"), input)
	if err != nil {
		return handleServiceError(c, err)
	}
	return c.JSON(fiber.Map{"student": student})
}

func DeleteStudentAPI(c *fiber.Ctx) error {
	if err := studentService.Delete(c.Params("id")); err != nil {
		return handleServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Student deleted"})
}

// GetStudentBalanceAPI returns only the derived money summary.
func GetStudentBalanceAPI(c *fiber.Ctx) error {
	student, err := studentService.Get(c.Params("id"), c.Query("school_year"))
	if err != nil {
		return handleServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"student_id": student.ID,
		"financials": student.Financials,
	})
}

// GetStudentPaymentsAPI returns the student's payment history with the
// derived balance summary.
func GetStudentPaymentsAPI(c *fiber.Ctx) error {
	id := c.Params("id")

	student, err := studentService.Get(id, c.Query("school_year"))
	if err != nil {
		return handleServiceError(c, err)
	}

	payments, err := paymentService.StudentLedger(id)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"student":    student.Student,
		"financials": student.Financials,
		"payments":   payments,
		"count":      len(payments),
	})
}
