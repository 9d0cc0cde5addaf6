package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// StudentFinancials is the live-derived money summary for one student.
// None of these values are ever persisted on the student row.
type StudentFinancials struct {
	ExpectedFees decimal.Decimal `json:"expected_fees"`
	TotalPaid    decimal.Decimal `json:"total_paid"`
	Balance      decimal.Decimal `json:"balance"`
	Status       PaymentStatus   `json:"payment_status"`
}

// StudentStats holds the dashboard headcount figures.
type StudentStats struct {
	Total  int `json:"total"`
	Active int `json:"active"`
}

// PaymentStats holds the dashboard collection figures.
type PaymentStats struct {
	Today      decimal.Decimal `json:"today"`
	TodayCount int             `json:"today_count"`
	Monthly    decimal.Decimal `json:"monthly"`
	Yearly     decimal.Decimal `json:"yearly"`
}

// TrendPoint is one day in the daily collection trend.
type TrendPoint struct {
	Date   string          `json:"date"` // ISO date (YYYY-MM-DD)
	Amount decimal.Decimal `json:"amount"`
	Count  int             `json:"count"`
}

// MonthTrendPoint is one month in the monthly collection trend.
type MonthTrendPoint struct {
	Month  string          `json:"month"` // YYYY-MM
	Amount decimal.Decimal `json:"amount"`
	Count  int             `json:"count"`
}

// MethodDistribution is the per-method share of the current month's payments.
type MethodDistribution struct {
	Method PaymentMethod   `json:"method"`
	Count  int             `json:"count"`
	Total  decimal.Decimal `json:"total"`
}

// PurposeDistribution is the per-purpose share of the current month's payments.
type PurposeDistribution struct {
	Purpose string          `json:"purpose"`
	Count   int             `json:"count"`
	Total   decimal.Decimal `json:"total"`
}

// RecentPayment is a dashboard row for one of the latest payments.
type RecentPayment struct {
	ID             string          `json:"id"`
	ReceiptNumber  string          `json:"receipt_number"`
	StudentName    string          `json:"student_name"`
	StudentNumber  string          `json:"student_number"`
	Amount         decimal.Decimal `json:"amount"`
	PaymentDate    time.Time       `json:"payment_date"`
	PaymentPurpose string          `json:"payment_purpose"`
}
