package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestPaymentRecomputeTotal(t *testing.T) {
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	p := &Payment{
		RentAmount: decimal.NewFromInt(3000),
		LateFee:    decimal.NewFromInt(150),
		AdditionalCharges: ChargeLines{
			{Description: "electricity", Amount: decimal.NewFromInt(400)},
			{Description: "laundry", Amount: decimal.NewFromInt(100)},
		},
		Discounts: ChargeLines{
			{Description: "referral", Amount: decimal.NewFromInt(250)},
		},
		DueDate: now.AddDate(0, 0, 10),
	}

	p.Recompute(now)

	// 3000 + 150 + 400 + 100 - 250
	if !p.TotalAmount.Equal(decimal.NewFromInt(3400)) {
		t.Errorf("TotalAmount = %s, want 3400", p.TotalAmount)
	}
}

func TestPaymentRecomputeStatus(t *testing.T) {
	now := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		paid    decimal.Decimal
		dueDate time.Time
		want    PaymentStatus
	}{
		{"nothing paid, not due", decimal.Zero, now.AddDate(0, 0, 5), PaymentStatusPending},
		{"nothing paid, overdue", decimal.Zero, now.AddDate(0, 0, -5), PaymentStatusOverdue},
		{"partially paid", decimal.NewFromInt(1000), now.AddDate(0, 0, -5), PaymentStatusPartial},
		{"fully paid", decimal.NewFromInt(3000), now.AddDate(0, 0, -5), PaymentStatusPaid},
		{"overpaid", decimal.NewFromInt(3500), now.AddDate(0, 0, 5), PaymentStatusPaid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Payment{
				RentAmount: decimal.NewFromInt(3000),
				AmountPaid: tt.paid,
				DueDate:    tt.dueDate,
			}
			p.Recompute(now)
			if p.PaymentStatus != tt.want {
				t.Errorf("PaymentStatus = %s, want %s", p.PaymentStatus, tt.want)
			}
		})
	}
}
