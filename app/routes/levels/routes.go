package levels

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mark-john-ignacio/school-cashier-system/app/routes/auth"
)

func SetupLevelsRoutes(app *fiber.App) {
	levels := app.Group("/api/grade-levels", auth.AuthMiddleware)

	levels.Get("/", GetGradeLevelsAPI)
	levels.Post("/", CreateGradeLevelAPI)
	levels.Get("/:id/sections", GetSectionsAPI)

	sections := app.Group("/api/sections", auth.AuthMiddleware)
	sections.Post("/", CreateSectionAPI)
}
