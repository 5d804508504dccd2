package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateBookingRequest struct {
	HostelID       uuid.UUID `json:"hostel_id" validate:"required"`
	RoomID         uuid.UUID `json:"room_id" validate:"required"`
	BedID          uuid.UUID `json:"bed_id" validate:"required"`
	CheckInDate    string    `json:"check_in_date" validate:"required"` // Format: YYYY-MM-DD
	DurationMonths int       `json:"duration_months" validate:"required,min=1,max=24"`

	EmergencyContact EmergencyContactDTO `json:"emergency_contact" validate:"required"`

	AdvanceAmount decimal.Decimal `json:"advance_amount" validate:"omitempty"`
	DepositPaid   bool            `json:"deposit_paid"`
	Notes         string          `json:"notes" validate:"omitempty"`

	// Set by admin/owner flows; defaults to user-booking
	CreatedBy string `json:"created_by" validate:"omitempty,oneof=user-booking admin-booking walk-in"`
}

type EmergencyContactDTO struct {
	Name         string `json:"name" validate:"required"`
	Relationship string `json:"relationship" validate:"required"`
	Phone        string `json:"phone" validate:"required,min=10,max=20"`
}

// UpdateBookingRequest carries the mutable fields. The booking holder may
// edit the contact fields and move check_in_date while pending; the other
// date/financial fields need management rights. The usecase enforces that.
type UpdateBookingRequest struct {
	CheckInDate    *string `json:"check_in_date" validate:"omitempty"`
	CheckOutDate   *string `json:"check_out_date" validate:"omitempty"`
	DurationMonths *int    `json:"duration_months" validate:"omitempty,min=1,max=24"`

	EmergencyContact *EmergencyContactDTO `json:"emergency_contact" validate:"omitempty"`
	Notes            *string              `json:"notes" validate:"omitempty"`

	AdvanceAmount *decimal.Decimal `json:"advance_amount" validate:"omitempty"`
	DepositPaid   *bool            `json:"deposit_paid" validate:"omitempty"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason" validate:"required,min=3"`
}

type CheckOutBookingRequest struct {
	Damages decimal.Decimal `json:"damages" validate:"omitempty"`
	Notes   string          `json:"notes" validate:"omitempty"`
}

type AddBookingDocumentRequest struct {
	Type string `json:"type" validate:"required,max=50"`
	URL  string `json:"url" validate:"required,url"`
}

// Response DTOs

type BookingResponse struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	HostelID  uuid.UUID  `json:"hostel_id"`
	RoomID    uuid.UUID  `json:"room_id"`
	BedID     uuid.UUID  `json:"bed_id"`
	StudentID *uuid.UUID `json:"student_id,omitempty"`

	CheckInDate    time.Time  `json:"check_in_date"`
	CheckOutDate   time.Time  `json:"check_out_date"`
	DurationMonths int        `json:"duration_months"`
	ActualCheckIn  *time.Time `json:"actual_check_in,omitempty"`
	ActualCheckOut *time.Time `json:"actual_check_out,omitempty"`

	RentAmount      decimal.Decimal `json:"rent_amount"`
	SecurityDeposit decimal.Decimal `json:"security_deposit"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	PendingAmount   decimal.Decimal `json:"pending_amount"`
	AdvanceAmount   decimal.Decimal `json:"advance_amount"`
	DepositPaid     bool            `json:"deposit_paid"`

	Status string `json:"status"`

	EmergencyContact EmergencyContactDTO `json:"emergency_contact"`
	Documents        []DocumentResponse  `json:"documents,omitempty"`

	CanReview       bool `json:"can_review"`
	ReviewSubmitted bool `json:"review_submitted"`

	CancelledAt        *time.Time `json:"cancelled_at,omitempty"`
	CancelledBy        *uuid.UUID `json:"cancelled_by,omitempty"`
	CancellationReason string     `json:"cancellation_reason,omitempty"`

	Notes     string    `json:"notes,omitempty"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type DocumentResponse struct {
	Type       string    `json:"type"`
	URL        string    `json:"url"`
	UploadedAt time.Time `json:"uploaded_at"`
}

type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

type CheckInResponse struct {
	Booking        BookingResponse  `json:"booking"`
	Student        *StudentResponse `json:"student,omitempty"`
	Bed            *BedResponse     `json:"bed,omitempty"`
	ConversionNote string           `json:"conversion_note,omitempty"`
}

type CheckOutResponse struct {
	Booking          BookingResponse     `json:"booking"`
	Student          *StudentResponse    `json:"student,omitempty"`
	PreviousOccupant BedOccupantSnapshot `json:"previous_occupant"`
	SecurityDeposit  decimal.Decimal     `json:"security_deposit"`
	Damages          decimal.Decimal     `json:"damages"`
	RefundAmount     decimal.Decimal     `json:"refund_amount"`
}

// BookingStatusStat is one row of the status breakdown
type BookingStatusStat struct {
	Status       string `json:"status"`
	Count        int64  `json:"count"`
	TotalRevenue string `json:"total_revenue"`
}

type BookingStatsResponse struct {
	ByStatus []BookingStatusStat `json:"by_status"`
	Total    int64               `json:"total"`
}
