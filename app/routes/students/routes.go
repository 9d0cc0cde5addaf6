package students

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mark-john-ignacio/school-cashier-system/app/config"
	"github.com/mark-john-ignacio/school-cashier-system/app/routes/auth"
	"github.com/mark-john-ignacio/school-cashier-system/app/services"
)

var (
	studentService *services.StudentService
	paymentService *services.PaymentService
)

func SetupStudentsRoutes(app *fiber.App) {
	db := config.GetDB()
	studentService = services.NewStudentService(db, services.NewBalanceService(db))
	paymentService = services.NewPaymentService(db)

	students := app.Group("/api/students", auth.AuthMiddleware)

	students.Get("/", GetStudentsAPI)
	students.Get("/search", GetStudentsAPI)
	students.Post("/", CreateStudentAPI)
	students.Get("/:id", GetStudentAPI)
	students.Put("/:id", UpdateStudentAPI)
	students.Delete("/:id", DeleteStudentAPI)
	students.Get("/:id/balance", GetStudentBalanceAPI)
	students.Get("/:id/payments", GetStudentPaymentsAPI)
}
