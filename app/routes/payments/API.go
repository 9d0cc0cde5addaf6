package payments

import (
	"errors"

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
		return c.Status(409).JSON(fiber.Map{"error": "Receipt number conflict, please retry"})
	}
	return c.Status(500).JSON(fiber.Map{"error": "Database error"})
}

func GetPaymentsAPI(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	perPage := services.NormalizePerPage(c.QueryInt("per_page", services.DefaultPerPage))

	filters := database.PaymentFilters{
		Search:         c.Query("search"),
		StudentID:      c.Query("student_id"),
		UserID:         c.Query("cashier_id"),
		PaymentMethod:  c.Query("payment_method"),
		PaymentPurpose: c.Query("payment_purpose"),
		DateFrom:       c.Query("date_from"),
		DateTo:         c.Query("date_to"),
		IncludeVoided:  c.QueryBool("include_voided", false),
		SortBy:         c.Query("sort_by", "payment_date"),
		SortOrder:      c.Query("sort_order", "desc"),
		Limit:          perPage,
		Offset:         (page - 1) * perPage,
	}

	payments, totalCount, err := paymentService.List(filters)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"payments":   payments,
		"count":      len(payments),
		"pagination": services.NewPagination(page, perPage, totalCount),
	})
}

func GetPaymentAPI(c *fiber.Ctx) error {
	payment, err := paymentService.Get(c.Params("id"))
	if err != nil {
		return handleServiceError(c, err)
	}
	return c.JSON(fiber.Map{"payment": payment})
}

func CreatePaymentAPI(c *fiber.Ctx) error {
	var input services.PaymentInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	userID := c.Locals("user_id").(string)
	payment, err := paymentService.Record(userID, input)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Payment recorded",
		"payment": payment,
	})
}

func VoidPaymentAPI(c *fiber.Ctx) error {
	payment, err := paymentService.Void(c.Params("id"))
	if err != nil {
		return handleServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Payment voided",
		"payment": payment,
	})
}

// PrintReceiptAPI stamps the first print time and returns the payment for
// the client to render. Reprints return the payment unchanged.
func PrintReceiptAPI(c *fiber.Ctx) error {
	payment, err := paymentService.MarkPrinted(c.Params("id"))
	if err != nil {
		return handleServiceError(c, err)
	}
	return c.JSON(fiber.Map{"payment": payment})
}

// GetPurposesAPI returns the suggested purposes for the payment form. Free
// text is still accepted on create.
func GetPurposesAPI(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"purposes": models.PaymentPurposes})
}

func GetCashiersAPI(c *fiber.Ctx) error {
	cashiers, err := paymentService.Cashiers()
	if err != nil {
		return handleServiceError(c, err)
	}
	return c.JSON(fiber.Map{"cashiers": cashiers})
}
