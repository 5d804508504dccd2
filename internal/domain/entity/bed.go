package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BedStatus is the canonical lifecycle state of a bed
type BedStatus string

const (
	BedStatusAvailable   BedStatus = "available"
	BedStatusOccupied    BedStatus = "occupied"
	BedStatusMaintenance BedStatus = "maintenance"
	BedStatusReserved    BedStatus = "reserved"
)

// Bed is the smallest billable occupancy unit within a room.
// Invariant: IsOccupied == true if and only if Status == occupied.
type Bed struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	RoomID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_beds_room_number,priority:1" json:"room_id"`
	BedNumber  string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_beds_room_number,priority:2" json:"bed_number"`
	IsOccupied bool      `gorm:"not null;default:false" json:"is_occupied"`
	Status     BedStatus `gorm:"type:varchar(20);not null;default:'available';index" json:"status"`

	// Actual occupancy
	CurrentOccupantID *uuid.UUID `gorm:"type:uuid" json:"current_occupant_id,omitempty"`

	// Reservation hold, kept separate from actual occupancy. Expiry is a
	// hint for an external sweeper; nothing in this core enforces it.
	HeldBy            *uuid.UUID `gorm:"type:uuid" json:"held_by,omitempty"`
	ReservationExpiry *time.Time `json:"reservation_expiry,omitempty"`

	RentAmount decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"rent_amount"`
	Amenities  StringList      `gorm:"type:jsonb" json:"amenities,omitempty"`

	// Denormalized occupant snapshot for owner dashboards
	StudentCode  string     `gorm:"type:varchar(50)" json:"student_code,omitempty"`
	StudentName  string     `gorm:"type:varchar(255)" json:"student_name,omitempty"`
	StudentPhone string     `gorm:"type:varchar(20)" json:"student_phone,omitempty"`
	StudentEmail string     `gorm:"type:varchar(255)" json:"student_email,omitempty"`
	CheckInDate  *time.Time `json:"check_in_date,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Bed) TableName() string {
	return "beds"
}

// BedOccupant carries the occupant fields written on assignment and
// returned as the previous-occupant snapshot on vacate.
type BedOccupant struct {
	UserID       *uuid.UUID `json:"user_id,omitempty"`
	StudentCode  string     `json:"student_code,omitempty"`
	StudentName  string     `json:"student_name,omitempty"`
	StudentPhone string     `json:"student_phone,omitempty"`
	StudentEmail string     `json:"student_email,omitempty"`
	CheckInDate  time.Time  `json:"check_in_date"`
}

// occupy marks the bed occupied and writes the occupant snapshot
func (b *Bed) occupy(o BedOccupant) {
	b.IsOccupied = true
	b.Status = BedStatusOccupied
	b.CurrentOccupantID = o.UserID
	b.HeldBy = nil
	b.ReservationExpiry = nil
	b.StudentCode = o.StudentCode
	b.StudentName = o.StudentName
	b.StudentPhone = o.StudentPhone
	b.StudentEmail = o.StudentEmail
	checkIn := o.CheckInDate
	b.CheckInDate = &checkIn
}

// release clears all occupancy fields and returns the previous occupant
func (b *Bed) release() BedOccupant {
	prev := BedOccupant{
		UserID:       b.CurrentOccupantID,
		StudentCode:  b.StudentCode,
		StudentName:  b.StudentName,
		StudentPhone: b.StudentPhone,
		StudentEmail: b.StudentEmail,
	}
	if b.CheckInDate != nil {
		prev.CheckInDate = *b.CheckInDate
	}
	b.IsOccupied = false
	b.Status = BedStatusAvailable
	b.CurrentOccupantID = nil
	b.StudentCode = ""
	b.StudentName = ""
	b.StudentPhone = ""
	b.StudentEmail = ""
	b.CheckInDate = nil
	return prev
}

// IsAssignable reports whether the bed can take a fresh occupant
func (b *Bed) IsAssignable() bool {
	return !b.IsOccupied && b.Status != BedStatusMaintenance
}
