package fees

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/mark-john-ignacio/school-cashier-system/app/database"
	"github.com/mark-john-ignacio/school-cashier-system/app/services"
)

func handleServiceError(c *fiber.Ctx, err error) error {
	if ve, ok := services.AsValidationError(err); ok {
		return c.Status(422).JSON(fiber.Map{"error": ve.Error(), "fields": ve.FieldMap()})
	}
	if errors.Is(err, services.ErrNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "Record not found"})
	}
	return c.Status(500).JSON(fiber.Map{"error": "Database error"})
}

func GetFeesAPI(c *fiber.Ctx) error {
	filters := database.FeeFilters{
		GradeLevelID: c.Query("grade_level_id"),
		SchoolYear:   c.Query("school_year"),
		ActiveOnly:   c.QueryBool("active_only", false),
	}

	fees, err := feeService.List(filters)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"fees":  fees,
		"count": len(fees),
	})
}

func GetFeeAPI(c *fiber.Ctx) error {
	fee, err := feeService.Get(c.Params("id"))
	if err != nil {
		return handleServiceError(c, err)
	}
	return c.JSON(fiber.Map{"fee": fee})
}

func CreateFeeAPI(c *fiber.Ctx) error {
	var input services.FeeInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	fee, err := feeService.Create(input)
	if err != nil {
		return handleServiceError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"fee": fee})
}

func UpdateFeeAPI(c *fiber.Ctx) error {
	var input services.FeeInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	fee, err := feeService.Update(c.Params("id"), input)
	if err != nil {
		return handleServiceError(c, err)
	}
	return c.JSON(fiber.Map{"fee": fee})
}

func ActivateFeeAPI(c *fiber.Ctx) error {
	fee, err := feeService.SetActive(c.Params("id"), true)
	if err != nil {
		return handleServiceError(c, err)
	}
	return c.JSON(fiber.Map{"fee": fee})
}

func DeactivateFeeAPI(c *fiber.Ctx) error {
	fee, err := feeService.SetActive(c.Params("id"), false)
	if err != nil {
		return handleServiceError(c, err)
	}
	return c.JSON(fiber.Map{"fee": fee})
}

func DeleteFeeAPI(c *fiber.Ctx) error {
	if err := feeService.Delete(c.Params("id")); err != nil {
		return handleServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Fee structure deleted"})
}
