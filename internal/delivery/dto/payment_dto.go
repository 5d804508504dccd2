package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type ChargeLineDTO struct {
	Description string          `json:"description" validate:"required"`
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	Reason      string          `json:"reason" validate:"omitempty"`
}

type CreatePaymentRequest struct {
	BookingID uuid.UUID `json:"booking_id" validate:"required"`
	Month     string    `json:"month" validate:"required,len=7"` // Format: YYYY-MM
	DueDate   string    `json:"due_date" validate:"required"`    // Format: YYYY-MM-DD

	LateFee           decimal.Decimal `json:"late_fee" validate:"omitempty"`
	AdditionalCharges []ChargeLineDTO `json:"additional_charges" validate:"omitempty,dive"`
	Discounts         []ChargeLineDTO `json:"discounts" validate:"omitempty,dive"`
	Notes             string          `json:"notes" validate:"omitempty"`
}

type RecordPaymentRequest struct {
	Amount        decimal.Decimal `json:"amount" validate:"required"`
	PaymentMethod string          `json:"payment_method" validate:"required,oneof=cash bank_transfer upi card"`
	TransactionID string          `json:"transaction_id" validate:"omitempty,max=100"`
	Notes         string          `json:"notes" validate:"omitempty"`
}

// Response DTOs

type PaymentResponse struct {
	ID        uuid.UUID `json:"id"`
	BookingID uuid.UUID `json:"booking_id"`
	UserID    uuid.UUID `json:"user_id"`
	HostelID  uuid.UUID `json:"hostel_id"`
	Month     string    `json:"month"`

	RentAmount decimal.Decimal `json:"rent_amount"`
	DueDate    time.Time       `json:"due_date"`
	PaidDate   *time.Time      `json:"paid_date,omitempty"`

	LateFee           decimal.Decimal `json:"late_fee"`
	AdditionalCharges []ChargeLineDTO `json:"additional_charges,omitempty"`
	Discounts         []ChargeLineDTO `json:"discounts,omitempty"`

	TotalAmount   decimal.Decimal `json:"total_amount"`
	AmountPaid    decimal.Decimal `json:"amount_paid"`
	PaymentStatus string          `json:"payment_status"`

	PaymentMethod string `json:"payment_method,omitempty"`
	TransactionID string `json:"transaction_id,omitempty"`
	ReceiptNumber string `json:"receipt_number,omitempty"`
	Notes         string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PaymentListResponse struct {
	Payments []PaymentResponse `json:"payments"`
	Total    int               `json:"total"`
}
