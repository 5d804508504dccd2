package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AvailableBedFilter narrows the hostel-wide available-bed listing.
// Nil/zero fields match everything.
type AvailableBedFilter struct {
	Floor    *int
	RoomType string
	MinRent  *decimal.Decimal
	MaxRent  *decimal.Decimal
}

// Matches applies all filters to a bed within its room
func (f AvailableBedFilter) Matches(room *Room, bed *Bed) bool {
	if bed.Status != BedStatusAvailable || bed.IsOccupied {
		return false
	}
	if f.Floor != nil && room.Floor != *f.Floor {
		return false
	}
	if f.RoomType != "" && room.RoomType != f.RoomType {
		return false
	}
	if f.MinRent != nil && bed.RentAmount.LessThan(*f.MinRent) {
		return false
	}
	if f.MaxRent != nil && bed.RentAmount.GreaterThan(*f.MaxRent) {
		return false
	}
	return true
}

// BedInRoom is the bed-in-room projection produced by the available-bed
// listing. Recomputed per call, never cached.
type BedInRoom struct {
	RoomID     uuid.UUID `json:"room_id"`
	RoomNumber string    `json:"room_number"`
	Floor      int       `json:"floor"`
	RoomType   string    `json:"room_type"`
	Bed        Bed       `json:"bed"`
}
