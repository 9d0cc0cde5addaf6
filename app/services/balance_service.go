package services

import (
	"database/sql"

	"github.com/shopspring/decimal"

	"github.com/mark-john-ignacio/school-cashier-system/app/database"
	"github.com/mark-john-ignacio/school-cashier-system/app/models"
)

// BalanceService derives expected fees, total paid and settlement status for
// students. Nothing here is ever persisted, figures are recomputed from the
// fee schedule and the ledger on every call.
type BalanceService struct {
	db *sql.DB
}

func NewBalanceService(db *sql.DB) *BalanceService {
	return &BalanceService{db: db}
}

// ClassifyPaymentStatus maps a balance and the paid total onto a settlement
// label. A student who has paid nothing against a positive balance is
// outstanding, not partial.
func ClassifyPaymentStatus(balance, totalPaid decimal.Decimal) models.PaymentStatus {
	switch {
	case balance.IsNegative():
		return models.StatusOverpaid
	case balance.IsZero():
		return models.StatusPaid
	case totalPaid.IsPositive():
		return models.StatusPartial
	default:
		return models.StatusOutstanding
	}
}

// ExpectedFees sums the active fee structures for the student's grade level.
// schoolYear narrows the sum when non-empty.
func (s *BalanceService) ExpectedFees(gradeLevelID, schoolYear string) (decimal.Decimal, error) {
	return database.SumActiveFees(s.db, gradeLevelID, schoolYear)
}

// TotalPaid sums the student's non-voided payments.
func (s *BalanceService) TotalPaid(studentID string) (decimal.Decimal, error) {
	return database.SumPaymentsByStudent(s.db, studentID)
}

// Financials computes the full money summary for one student.
func (s *BalanceService) Financials(student *models.Student, schoolYear string) (*models.StudentFinancials, error) {
	expected, err := s.ExpectedFees(student.GradeLevelID, schoolYear)
	if err != nil {
		return nil, err
	}

	paid, err := s.TotalPaid(student.ID)
	if err != nil {
		return nil, err
	}

	balance := expected.Sub(paid)
	return &models.StudentFinancials{
		ExpectedFees: expected,
		TotalPaid:    paid,
		Balance:      balance,
		Status:       ClassifyPaymentStatus(balance, paid),
	}, nil
}
