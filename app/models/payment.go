package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment represents money received from a student, recorded by a cashier.
// A payment is immutable once created except for the printed-at timestamp
// and soft deletion (voiding).
type Payment struct {
	ID             string          `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	ReceiptNumber  string          `json:"receipt_number" gorm:"uniqueIndex;not null" validate:"required"`
	StudentID      string          `json:"student_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	UserID         string          `json:"user_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Amount         decimal.Decimal `json:"amount" gorm:"not null;type:decimal(10,2)" validate:"required"`
	PaymentDate    time.Time       `json:"payment_date" gorm:"not null;index;type:date" validate:"required"`
	PaymentPurpose string          `json:"payment_purpose" gorm:"not null" validate:"required"`
	PaymentMethod  PaymentMethod   `json:"payment_method" gorm:"not null;default:'cash'" validate:"required,oneof=cash check online"`
	Notes          *string         `json:"notes,omitempty" gorm:"type:text"`
	PrintedAt      *time.Time      `json:"printed_at,omitempty"`
	CreatedAt      time.Time       `json:"created_at" gorm:"autoCreateTime"`
	DeletedAt      *time.Time      `json:"deleted_at,omitempty" gorm:"index"`

	// Relationships
	Student *Student `json:"student,omitempty" gorm:"foreignKey:StudentID;references:ID"`
	Cashier *User    `json:"cashier,omitempty" gorm:"foreignKey:UserID;references:ID"`
}

// IsPrinted returns true if a receipt has been printed for this payment.
func (p *Payment) IsPrinted() bool {
	return p.PrintedAt != nil
}

// IsVoided returns true if the payment has been soft-deleted.
func (p *Payment) IsVoided() bool {
	return p.DeletedAt != nil
}

// MarkAsPrinted stamps the first print time. Already-printed payments keep
// their original timestamp.
func (p *Payment) MarkAsPrinted() {
	if p.PrintedAt == nil {
		now := time.Now()
		p.PrintedAt = &now
	}
}

// PaymentPurposes is the suggested list shown when recording a payment.
// The purpose field itself is free text and is not constrained to this list.
var PaymentPurposes = []string{
	"Tuition Fee",
	"Miscellaneous Fee",
	"Books",
	"Uniforms",
	"Laboratory Fee",
	"Field Trip",
	"Events",
	"Other",
}
