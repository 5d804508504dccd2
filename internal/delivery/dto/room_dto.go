package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateRoomRequest struct {
	HostelID   uuid.UUID `json:"hostel_id" validate:"required"`
	RoomNumber string    `json:"room_number" validate:"required,max=20"`
	Floor      int       `json:"floor" validate:"min=0"`
	RoomType   string    `json:"room_type" validate:"required,oneof=single double triple four dormitory"`
	Capacity   int       `json:"capacity" validate:"required,min=1,max=20"`
	Amenities  []string  `json:"amenities" validate:"omitempty"`

	// Beds created together with the room
	Beds []AddBedRequest `json:"beds" validate:"omitempty,dive"`
}

type UpdateRoomRequest struct {
	Floor     *int     `json:"floor" validate:"omitempty,min=0"`
	RoomType  *string  `json:"room_type" validate:"omitempty,oneof=single double triple four dormitory"`
	Amenities []string `json:"amenities" validate:"omitempty"`
}

// Response DTOs

type RoomResponse struct {
	ID               uuid.UUID     `json:"id"`
	HostelID         uuid.UUID     `json:"hostel_id"`
	RoomNumber       string        `json:"room_number"`
	Floor            int           `json:"floor"`
	RoomType         string        `json:"room_type"`
	Capacity         int           `json:"capacity"`
	CurrentOccupancy int           `json:"current_occupancy"`
	Status           string        `json:"status"`
	Amenities        []string      `json:"amenities,omitempty"`
	Beds             []BedResponse `json:"beds,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

type RoomListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
	Total int            `json:"total"`
}

// Occupancy summary per room, for owner dashboards
type RoomOccupancySummary struct {
	RoomID           uuid.UUID       `json:"room_id"`
	RoomNumber       string          `json:"room_number"`
	Capacity         int             `json:"capacity"`
	CurrentOccupancy int             `json:"current_occupancy"`
	Status           string          `json:"status"`
	MonthlyRevenue   decimal.Decimal `json:"monthly_revenue"`
}
