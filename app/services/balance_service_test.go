package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/mark-john-ignacio/school-cashier-system/app/models"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestClassifyPaymentStatus(t *testing.T) {
	tests := []struct {
		name      string
		balance   string
		totalPaid string
		want      models.PaymentStatus
	}{
		{"nothing owed, nothing paid", "0", "0", models.StatusPaid},
		{"fully settled", "0", "5000", models.StatusPaid},
		{"partially settled", "2500", "2500", models.StatusPartial},
		{"nothing paid yet", "5000", "0", models.StatusOutstanding},
		{"overpaid", "-100", "5100", models.StatusOverpaid},
		{"tiny remaining balance", "0.01", "4999.99", models.StatusPartial},
		{"tiny overpayment", "-0.01", "5000.01", models.StatusOverpaid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyPaymentStatus(d(tt.balance), d(tt.totalPaid))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifyPaymentStatusAgainstFixedFees(t *testing.T) {
	expected := d("1000")

	cases := []struct {
		paid string
		want models.PaymentStatus
	}{
		{"0", models.StatusOutstanding},
		{"500", models.StatusPartial},
		{"1000", models.StatusPaid},
		{"1100", models.StatusOverpaid},
	}

	for _, tc := range cases {
		paid := d(tc.paid)
		balance := expected.Sub(paid)
		assert.Equal(t, tc.want, ClassifyPaymentStatus(balance, paid), "paid=%s", tc.paid)
	}
}

func TestClassifyPaymentStatusNoFeeSchedule(t *testing.T) {
	// No fee structures but a recorded payment means a negative balance.
	got := ClassifyPaymentStatus(d("-500"), d("500"))
	assert.Equal(t, models.StatusOverpaid, got)
}
