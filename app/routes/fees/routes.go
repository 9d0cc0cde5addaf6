package fees

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mark-john-ignacio/school-cashier-system/app/config"
	"github.com/mark-john-ignacio/school-cashier-system/app/routes/auth"
	"github.com/mark-john-ignacio/school-cashier-system/app/services"
)

var feeService *services.FeeService

func SetupFeesRoutes(app *fiber.App) {
	db := config.GetDB()
	students := services.NewStudentService(db, services.NewBalanceService(db))
	feeService = services.NewFeeService(db, students)

	fees := app.Group("/api/fee-structures", auth.AuthMiddleware)

	fees.Get("/", GetFeesAPI)
	fees.Post("/", CreateFeeAPI)
	fees.Get("/:id", GetFeeAPI)
	fees.Put("/:id", UpdateFeeAPI)
	fees.Patch("/:id/activate", ActivateFeeAPI)
	fees.Patch("/:id/deactivate", DeactivateFeeAPI)
	fees.Delete("/:id", DeleteFeeAPI)
}
