package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/mark-john-ignacio/school-cashier-system/app/database"
	"github.com/mark-john-ignacio/school-cashier-system/app/models"
)

// minimumAmount is the smallest payment the cashier can record.
var minimumAmount = decimal.NewFromFloat(0.01)

// PaymentService owns the payment ledger: recording with receipt-number
// assignment, voiding, receipt print tracking and filtered listings.
type PaymentService struct {
	db *sql.DB
}

func NewPaymentService(db *sql.DB) *PaymentService {
	return &PaymentService{db: db}
}

// Amount decodes the "amount" field leniently: a malformed value surfaces as
// a field-level validation error from Record instead of failing the whole
// body parse. Accepts JSON numbers and numeric strings.
type Amount struct {
	value     decimal.Decimal
	malformed bool
}

// NewAmount wraps an already-parsed decimal, for callers outside HTTP.
func NewAmount(v decimal.Decimal) Amount {
	return Amount{value: v}
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" {
		*a = Amount{}
		return nil
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		*a = Amount{malformed: true}
		return nil
	}
	*a = Amount{value: v}
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return a.value.MarshalJSON()
}

// PaymentInput is the payload for recording a payment. PaymentDate defaults
// to today when omitted.
type PaymentInput struct {
	StudentID      string  `json:"student_id" validate:"required,uuid"`
	Amount         Amount  `json:"amount"`
	PaymentDate    string  `json:"payment_date" validate:"omitempty,datetime=2006-01-02"`
	PaymentPurpose string  `json:"payment_purpose" validate:"required,max=255"`
	PaymentMethod  string  `json:"payment_method" validate:"omitempty,oneof=cash check online"`
	Notes          *string `json:"notes"`
}

// Record validates the input, assigns the next receipt number and writes the
// payment. userID is the authenticated cashier.
func (s *PaymentService) Record(userID string, input PaymentInput) (*models.Payment, error) {
	if err := checkStruct(input); err != nil {
		return nil, err
	}

	if input.Amount.malformed {
		return nil, NewValidationError(
			errors.New("amount not numeric"),
			FieldError{Field: "amount", Error: "must be a number"},
		)
	}

	amount := input.Amount.value
	if amount.LessThan(minimumAmount) {
		return nil, NewValidationError(
			fmt.Errorf("amount %s below minimum", amount),
			FieldError{Field: "amount", Error: "must be at least 0.01"},
		)
	}

	student, err := database.GetStudentByID(s.db, input.StudentID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, NewValidationError(
			fmt.Errorf("unknown student %s", input.StudentID),
			FieldError{Field: "student_id", Error: "student not found"},
		)
	}
	if err != nil {
		return nil, err
	}

	method := models.PaymentMethod(input.PaymentMethod)
	if input.PaymentMethod == "" {
		method = models.MethodCash
	}

	paymentDate := time.Now()
	if input.PaymentDate != "" {
		paymentDate, err = time.Parse("2006-01-02", input.PaymentDate)
		if err != nil {
			return nil, NewValidationError(err,
				FieldError{Field: "payment_date", Error: "must be a valid date in YYYY-MM-DD format"})
		}
	}

	payment := &models.Payment{
		StudentID:      student.ID,
		UserID:         userID,
		Amount:         amount,
		PaymentDate:    paymentDate,
		PaymentPurpose: input.PaymentPurpose,
		PaymentMethod:  method,
		Notes:          input.Notes,
	}

	if err := database.CreatePayment(s.db, payment); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, &ConflictError{Err: errors.New("receipt number collision, please retry")}
		}
		return nil, err
	}

	payment.Student = student
	return payment, nil
}

func (s *PaymentService) Get(id string) (*models.Payment, error) {
	payment, err := database.GetPaymentByID(s.db, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return payment, err
}

// Void excludes a payment from all balances. The row and its receipt number
// survive for audit. Voiding twice is rejected.
func (s *PaymentService) Void(id string) (*models.Payment, error) {
	payment, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if payment.IsVoided() {
		return nil, NewValidationError(
			errors.New("payment already voided"),
			FieldError{Field: "id", Error: "this payment is already voided"},
		)
	}

	if err := database.VoidPayment(s.db, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return database.GetPaymentByID(s.db, id)
}

// MarkPrinted stamps the first print time and returns the payment. Calling
// it again on an already printed receipt is a no-op.
func (s *PaymentService) MarkPrinted(id string) (*models.Payment, error) {
	payment, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if payment.IsVoided() {
		return nil, NewValidationError(
			errors.New("payment is voided"),
			FieldError{Field: "id", Error: "cannot print a receipt for a voided payment"},
		)
	}

	if err := database.MarkReceiptPrinted(s.db, id); err != nil {
		return nil, err
	}
	payment.MarkAsPrinted()
	return payment, nil
}

func (s *PaymentService) List(filters database.PaymentFilters) ([]*models.Payment, int, error) {
	if filters.PaymentMethod != "" && !models.ValidPaymentMethod(filters.PaymentMethod) {
		return nil, 0, NewValidationError(
			fmt.Errorf("unknown payment method %q", filters.PaymentMethod),
			FieldError{Field: "payment_method", Error: "must be one of: cash, check, online"},
		)
	}
	return database.GetPaymentsWithFilters(s.db, filters)
}

// StudentLedger returns a student's payment history, newest first.
func (s *PaymentService) StudentLedger(studentID string) ([]*models.Payment, error) {
	if _, err := database.GetStudentByID(s.db, studentID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return database.GetPaymentsByStudent(s.db, studentID)
}

// Cashiers lists the active users that appear in the ledger filter.
func (s *PaymentService) Cashiers() ([]*models.User, error) {
	return database.GetCashiers(s.db)
}
