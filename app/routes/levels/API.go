package levels

import (
	"database/sql"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/mark-john-ignacio/school-cashier-system/app/config"
	"github.com/mark-john-ignacio/school-cashier-system/app/database"
	"github.com/mark-john-ignacio/school-cashier-system/app/models"
)

func slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.ReplaceAll(slug, " ", "-")
	return slug
}

func GetGradeLevelsAPI(c *fiber.Ctx) error {
	gradeLevels, err := database.GetGradeLevels(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch grade levels"})
	}

	return c.JSON(fiber.Map{
		"grade_levels": gradeLevels,
		"count":        len(gradeLevels),
	})
}

func CreateGradeLevelAPI(c *fiber.Ctx) error {
	type CreateGradeLevelRequest struct {
		Name         string `json:"name"`
		DisplayOrder int    `json:"display_order"`
	}

	var req CreateGradeLevelRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if strings.TrimSpace(req.Name) == "" {
		return c.Status(422).JSON(fiber.Map{
			"error":  "validation failed",
			"fields": fiber.Map{"name": "this field is required"},
		})
	}

	level := &models.GradeLevel{
		Name:         strings.TrimSpace(req.Name),
		Slug:         slugify(req.Name),
		DisplayOrder: req.DisplayOrder,
	}

	if err := database.CreateGradeLevel(config.GetDB(), level); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create grade level"})
	}
	return c.Status(201).JSON(fiber.Map{"grade_level": level})
}

func GetSectionsAPI(c *fiber.Ctx) error {
	id := c.Params("id")

	if _, err := database.GetGradeLevelByID(config.GetDB(), id); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Record not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	sections, err := database.GetSections(config.GetDB(), id)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch sections"})
	}

	return c.JSON(fiber.Map{
		"sections": sections,
		"count":    len(sections),
	})
}

func CreateSectionAPI(c *fiber.Ctx) error {
	type CreateSectionRequest struct {
		Name         string  `json:"name"`
		DisplayOrder int     `json:"display_order"`
		GradeLevelID *string `json:"grade_level_id"`
	}

	var req CreateSectionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if strings.TrimSpace(req.Name) == "" {
		return c.Status(422).JSON(fiber.Map{
			"error":  "validation failed",
			"fields": fiber.Map{"name": "this field is required"},
		})
	}

	if req.GradeLevelID != nil {
		if _, err := database.GetGradeLevelByID(config.GetDB(), *req.GradeLevelID); err != nil {
			if err == sql.ErrNoRows {
				return c.Status(422).JSON(fiber.Map{
					"error":  "validation failed",
					"fields": fiber.Map{"grade_level_id": "grade level not found"},
				})
			}
			return c.Status(500).JSON(fiber.Map{"error": "Database error"})
		}
	}

	section := &models.Section{
		Name:         strings.TrimSpace(req.Name),
		Slug:         slugify(req.Name),
		DisplayOrder: req.DisplayOrder,
		GradeLevelID: req.GradeLevelID,
	}

	if err := database.CreateSection(config.GetDB(), section); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create section"})
	}
	return c.Status(201).JSON(fiber.Map{"section": section})
}
