package payments

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mark-john-ignacio/school-cashier-system/app/config"
	"github.com/mark-john-ignacio/school-cashier-system/app/routes/auth"
	"github.com/mark-john-ignacio/school-cashier-system/app/services"
)

var paymentService *services.PaymentService

func SetupPaymentsRoutes(app *fiber.App) {
	paymentService = services.NewPaymentService(config.GetDB())

	payments := app.Group("/api/payments", auth.AuthMiddleware)

	payments.Get("/", GetPaymentsAPI)
	payments.Post("/", CreatePaymentAPI)
	payments.Get("/purposes", GetPurposesAPI)
	payments.Get("/cashiers", GetCashiersAPI)
	payments.Get("/:id", GetPaymentAPI)
	payments.Delete("/:id", VoidPaymentAPI)
	payments.Post("/:id/print", PrintReceiptAPI)
}
