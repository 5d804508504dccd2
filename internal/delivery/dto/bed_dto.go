package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type AddBedRequest struct {
	BedNumber  string          `json:"bed_number" validate:"required,max=20"`
	RentAmount decimal.Decimal `json:"rent_amount" validate:"required"`
	Amenities  []string        `json:"amenities" validate:"omitempty"`
}

type UpdateBedRequest struct {
	RentAmount *decimal.Decimal `json:"rent_amount" validate:"omitempty"`
	Amenities  []string         `json:"amenities" validate:"omitempty"`
	Status     *string          `json:"status" validate:"omitempty,oneof=available occupied maintenance reserved"`
}

// BulkUpdateBedsRequest applies the same patch to several beds of one room
type BulkUpdateBedsRequest struct {
	BedNumbers []string         `json:"bed_numbers" validate:"required,min=1,dive,required"`
	RentAmount *decimal.Decimal `json:"rent_amount" validate:"omitempty"`
	Amenities  []string         `json:"amenities" validate:"omitempty"`
}

type AssignBedRequest struct {
	// Either an existing user or a walk-in occupant snapshot
	UserID       *uuid.UUID `json:"user_id" validate:"omitempty"`
	StudentCode  string     `json:"student_code" validate:"omitempty,max=50"`
	StudentName  string     `json:"student_name" validate:"omitempty,max=255"`
	StudentPhone string     `json:"student_phone" validate:"omitempty,max=20"`
	StudentEmail string     `json:"student_email" validate:"omitempty,email"`
}

type ReserveBedRequest struct {
	UserID            uuid.UUID  `json:"user_id" validate:"required"`
	ReservationExpiry *time.Time `json:"reservation_expiry" validate:"omitempty"`
}

type SwapBedsRequest struct {
	BedNumberA string `json:"bed_number_a" validate:"required"`
	BedNumberB string `json:"bed_number_b" validate:"required"`
}

// Response DTOs

type BedResponse struct {
	ID         uuid.UUID       `json:"id"`
	RoomID     uuid.UUID       `json:"room_id"`
	BedNumber  string          `json:"bed_number"`
	IsOccupied bool            `json:"is_occupied"`
	Status     string          `json:"status"`
	RentAmount decimal.Decimal `json:"rent_amount"`
	Amenities  []string        `json:"amenities,omitempty"`

	CurrentOccupantID *uuid.UUID `json:"current_occupant_id,omitempty"`
	HeldBy            *uuid.UUID `json:"held_by,omitempty"`
	ReservationExpiry *time.Time `json:"reservation_expiry,omitempty"`

	StudentCode  string     `json:"student_code,omitempty"`
	StudentName  string     `json:"student_name,omitempty"`
	StudentPhone string     `json:"student_phone,omitempty"`
	StudentEmail string     `json:"student_email,omitempty"`
	CheckInDate  *time.Time `json:"check_in_date,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AvailableBedResponse is one bed with its room context
type AvailableBedResponse struct {
	RoomID     uuid.UUID   `json:"room_id"`
	RoomNumber string      `json:"room_number"`
	Floor      int         `json:"floor"`
	RoomType   string      `json:"room_type"`
	Bed        BedResponse `json:"bed"`
}

type AvailableBedListResponse struct {
	Beds  []AvailableBedResponse `json:"beds"`
	Total int                    `json:"total"`
}

// VacateBedResponse reports the freed bed and who was on it
type VacateBedResponse struct {
	Bed              BedResponse         `json:"bed"`
	PreviousOccupant BedOccupantSnapshot `json:"previous_occupant"`
}

type BedOccupantSnapshot struct {
	UserID       *uuid.UUID `json:"user_id,omitempty"`
	StudentCode  string     `json:"student_code,omitempty"`
	StudentName  string     `json:"student_name,omitempty"`
	StudentPhone string     `json:"student_phone,omitempty"`
	StudentEmail string     `json:"student_email,omitempty"`
	CheckInDate  time.Time  `json:"check_in_date"`
}

type SwapBedsResponse struct {
	BedA BedResponse `json:"bed_a"`
	BedB BedResponse `json:"bed_b"`
}
