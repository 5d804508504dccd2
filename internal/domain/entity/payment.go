package entity

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentStatus is derived from amountPaid vs totalAmount vs dueDate
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPartial PaymentStatus = "partial"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusOverdue PaymentStatus = "overdue"
)

// Payment method constants
const (
	PaymentMethodCash         = "cash"
	PaymentMethodBankTransfer = "bank_transfer"
	PaymentMethodUPI          = "upi"
	PaymentMethodCard         = "card"
)

// ChargeLine is an extra charge or discount attached to a monthly bill
type ChargeLine struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Reason      string          `json:"reason,omitempty"`
}

// ChargeLines is a JSONB-backed list of charge lines
type ChargeLines []ChargeLine

// Value implements driver.Valuer
func (c ChargeLines) Value() (driver.Value, error) {
	if len(c) == 0 {
		return nil, nil
	}
	return json.Marshal(c)
}

// Scan implements sql.Scanner
func (c *ChargeLines) Scan(value interface{}) error {
	return scanJSON(value, c)
}

// Payment is one monthly bill for a booking, unique per (booking, month)
type Payment struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	BookingID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_payments_booking_month,priority:1" json:"booking_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	HostelID  uuid.UUID `gorm:"type:uuid;not null;index" json:"hostel_id"`

	// Billing month, e.g. "2026-09"
	Month string `gorm:"type:varchar(7);not null;uniqueIndex:idx_payments_booking_month,priority:2" json:"month"`

	RentAmount decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"rent_amount"`
	DueDate    time.Time       `gorm:"not null" json:"due_date"`
	PaidDate   *time.Time      `json:"paid_date,omitempty"`

	LateFee           decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"late_fee"`
	AdditionalCharges ChargeLines     `gorm:"type:jsonb" json:"additional_charges,omitempty"`
	Discounts         ChargeLines     `gorm:"type:jsonb" json:"discounts,omitempty"`

	// Derived: rent + lateFee + Σcharges − Σdiscounts
	TotalAmount   decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total_amount"`
	AmountPaid    decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"amount_paid"`
	PaymentStatus PaymentStatus   `gorm:"type:varchar(20);not null;default:'pending';index" json:"payment_status"`

	PaymentMethod string `gorm:"type:varchar(20)" json:"payment_method,omitempty"`
	TransactionID string `gorm:"type:varchar(100)" json:"transaction_id,omitempty"`
	ReceiptNumber string `gorm:"type:varchar(50)" json:"receipt_number,omitempty"`
	Notes         string `gorm:"type:text" json:"notes,omitempty"`

	CreatedByID *uuid.UUID `gorm:"type:uuid" json:"created_by_id,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Booking Booking `gorm:"foreignKey:BookingID" json:"booking,omitempty"`
	User    User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Hostel  Hostel  `gorm:"foreignKey:HostelID" json:"hostel,omitempty"`
}

func (Payment) TableName() string {
	return "payments"
}

// Recompute re-derives the total and the payment status. Called explicitly
// after every mutation, before the bill is persisted.
func (p *Payment) Recompute(now time.Time) {
	total := p.RentAmount.Add(p.LateFee)
	for _, charge := range p.AdditionalCharges {
		total = total.Add(charge.Amount)
	}
	for _, discount := range p.Discounts {
		total = total.Sub(discount.Amount)
	}
	p.TotalAmount = total

	switch {
	case p.AmountPaid.GreaterThanOrEqual(p.TotalAmount):
		p.PaymentStatus = PaymentStatusPaid
	case p.AmountPaid.IsPositive():
		p.PaymentStatus = PaymentStatusPartial
	case now.After(p.DueDate):
		p.PaymentStatus = PaymentStatusOverdue
	default:
		p.PaymentStatus = PaymentStatusPending
	}
}
