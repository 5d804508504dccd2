package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateHostelRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description" validate:"omitempty"`

	Street  string `json:"street" validate:"required"`
	City    string `json:"city" validate:"required"`
	State   string `json:"state" validate:"required"`
	Pincode string `json:"pincode" validate:"required,min=4,max=10"`
	Country string `json:"country" validate:"omitempty"`

	ContactPhone string `json:"contact_phone" validate:"required,min=10,max=20"`
	ContactEmail string `json:"contact_email" validate:"required,email"`

	Amenities []string `json:"amenities" validate:"omitempty"`
	Rules     []string `json:"rules" validate:"omitempty"`

	RentDueDay      int             `json:"rent_due_day" validate:"omitempty,min=1,max=28"`
	LateFeePercent  int             `json:"late_fee_percent" validate:"omitempty,min=0,max=100"`
	SecurityDeposit decimal.Decimal `json:"security_deposit" validate:"omitempty"`
}

type UpdateHostelRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=100"`
	Description *string `json:"description" validate:"omitempty"`

	Street  *string `json:"street" validate:"omitempty"`
	City    *string `json:"city" validate:"omitempty"`
	State   *string `json:"state" validate:"omitempty"`
	Pincode *string `json:"pincode" validate:"omitempty,min=4,max=10"`
	Country *string `json:"country" validate:"omitempty"`

	ContactPhone *string `json:"contact_phone" validate:"omitempty,min=10,max=20"`
	ContactEmail *string `json:"contact_email" validate:"omitempty,email"`

	Amenities []string `json:"amenities" validate:"omitempty"`
	Rules     []string `json:"rules" validate:"omitempty"`

	RentDueDay      *int             `json:"rent_due_day" validate:"omitempty,min=1,max=28"`
	LateFeePercent  *int             `json:"late_fee_percent" validate:"omitempty,min=0,max=100"`
	SecurityDeposit *decimal.Decimal `json:"security_deposit" validate:"omitempty"`
	IsActive        *bool            `json:"is_active" validate:"omitempty"`
}

// Response DTOs

type HostelResponse struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`

	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
	Country string `json:"country"`

	ContactPhone string `json:"contact_phone"`
	ContactEmail string `json:"contact_email"`

	Amenities []string `json:"amenities,omitempty"`
	Rules     []string `json:"rules,omitempty"`

	RatingAverage float64 `json:"rating_average"`
	RatingCount   int     `json:"rating_count"`

	RentDueDay      int             `json:"rent_due_day"`
	LateFeePercent  int             `json:"late_fee_percent"`
	SecurityDeposit decimal.Decimal `json:"security_deposit"`

	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type HostelListResponse struct {
	Hostels []HostelResponse `json:"hostels"`
	Total   int64            `json:"total"`
}
