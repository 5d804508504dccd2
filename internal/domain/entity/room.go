package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Inventory errors, surfaced at the operation boundary by usecases
var (
	ErrBedNotFound         = errors.New("bed not found in this room")
	ErrDuplicateBedNumber  = errors.New("bed number already exists in this room")
	ErrRoomCapacityReached = errors.New("room capacity reached, cannot add more beds")
	ErrBedOccupied         = errors.New("bed is already occupied")
	ErrBedUnderMaintenance = errors.New("bed is under maintenance")
	ErrBedAlreadyReserved  = errors.New("bed is already reserved")
	ErrBedNotReserved      = errors.New("bed is not reserved")
	ErrBedVacant           = errors.New("bed is already vacant")
	ErrOccupiedStatusLock  = errors.New("cannot change status of occupied bed, vacate first")
)

// RoomStatus is derived from bed state, never set directly
type RoomStatus string

const (
	RoomStatusAvailable     RoomStatus = "available"
	RoomStatusFullyOccupied RoomStatus = "fully_occupied"
	RoomStatusMaintenance   RoomStatus = "maintenance"
)

// Room type constants
const (
	RoomTypeSingle    = "single"
	RoomTypeDouble    = "double"
	RoomTypeTriple    = "triple"
	RoomTypeFour      = "four"
	RoomTypeDormitory = "dormitory"
)

// Room owns its beds. It is the unit of contention: every bed mutation is a
// read-modify-write of the whole room, so callers must load it FOR UPDATE
// inside a transaction before calling any mutating method.
type Room struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	HostelID         uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_rooms_hostel_number,priority:1" json:"hostel_id"`
	RoomNumber       string     `gorm:"type:varchar(20);not null;uniqueIndex:idx_rooms_hostel_number,priority:2" json:"room_number"`
	Floor            int        `gorm:"not null" json:"floor"`
	RoomType         string     `gorm:"type:varchar(20);not null" json:"room_type"`
	Capacity         int        `gorm:"not null" json:"capacity"`
	CurrentOccupancy int        `gorm:"not null;default:0" json:"current_occupancy"`
	Status           RoomStatus `gorm:"type:varchar(20);not null;default:'available';index" json:"status"`
	Amenities        StringList `gorm:"type:jsonb" json:"amenities,omitempty"`
	CreatedAt        time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Hostel Hostel `gorm:"foreignKey:HostelID" json:"hostel,omitempty"`
	Beds   []Bed  `gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE" json:"beds,omitempty"`
}

func (Room) TableName() string {
	return "rooms"
}

// Recompute re-derives occupancy count and room status from bed state.
// Must be called after every bed mutation, before the room is persisted.
func (r *Room) Recompute() {
	occupied := 0
	maintenance := false
	for i := range r.Beds {
		if r.Beds[i].IsOccupied {
			occupied++
		}
		if r.Beds[i].Status == BedStatusMaintenance {
			maintenance = true
		}
	}
	r.CurrentOccupancy = occupied

	switch {
	case occupied == r.Capacity:
		r.Status = RoomStatusFullyOccupied
	case maintenance:
		r.Status = RoomStatusMaintenance
	default:
		r.Status = RoomStatusAvailable
	}
}

// FindBed returns the bed with the given number, or nil.
// Linear scan: rooms hold a handful of beds.
func (r *Room) FindBed(bedNumber string) *Bed {
	for i := range r.Beds {
		if r.Beds[i].BedNumber == bedNumber {
			return &r.Beds[i]
		}
	}
	return nil
}

// FindBedByID returns the bed with the given id, or nil
func (r *Room) FindBedByID(id uuid.UUID) *Bed {
	for i := range r.Beds {
		if r.Beds[i].ID == id {
			return &r.Beds[i]
		}
	}
	return nil
}

// AddBed appends a new bed in available state
func (r *Room) AddBed(bedNumber string, rentAmount decimal.Decimal, amenities []string) (*Bed, error) {
	if r.FindBed(bedNumber) != nil {
		return nil, ErrDuplicateBedNumber
	}
	if len(r.Beds) >= r.Capacity {
		return nil, ErrRoomCapacityReached
	}

	bed := Bed{
		RoomID:     r.ID,
		BedNumber:  bedNumber,
		IsOccupied: false,
		Status:     BedStatusAvailable,
		RentAmount: rentAmount,
		Amenities:  amenities,
	}
	r.Beds = append(r.Beds, bed)
	r.Recompute()
	return &r.Beds[len(r.Beds)-1], nil
}

// BedPatch holds the partial updates allowed on a bed
type BedPatch struct {
	RentAmount *decimal.Decimal
	Amenities  []string
	Status     *BedStatus
}

// UpdateBed applies a partial update. An occupied bed's status may only be
// restated as occupied.
func (r *Room) UpdateBed(bedNumber string, patch BedPatch) (*Bed, error) {
	bed := r.FindBed(bedNumber)
	if bed == nil {
		return nil, ErrBedNotFound
	}
	if bed.IsOccupied && patch.Status != nil && *patch.Status != BedStatusOccupied {
		return nil, ErrOccupiedStatusLock
	}

	if patch.RentAmount != nil {
		bed.RentAmount = *patch.RentAmount
	}
	if patch.Amenities != nil {
		bed.Amenities = patch.Amenities
	}
	if patch.Status != nil {
		bed.Status = *patch.Status
	}
	r.Recompute()
	return bed, nil
}

// RemoveBed deletes an unoccupied bed and returns it for persistence cleanup
func (r *Room) RemoveBed(bedNumber string) (*Bed, error) {
	for i := range r.Beds {
		if r.Beds[i].BedNumber != bedNumber {
			continue
		}
		if r.Beds[i].IsOccupied {
			return nil, ErrBedOccupied
		}
		removed := r.Beds[i]
		r.Beds = append(r.Beds[:i], r.Beds[i+1:]...)
		r.Recompute()
		return &removed, nil
	}
	return nil, ErrBedNotFound
}

// SetBedMaintenance forces an unoccupied bed into maintenance
func (r *Room) SetBedMaintenance(bedNumber string) (*Bed, error) {
	bed := r.FindBed(bedNumber)
	if bed == nil {
		return nil, ErrBedNotFound
	}
	if bed.IsOccupied {
		return nil, ErrBedOccupied
	}
	bed.Status = BedStatusMaintenance
	bed.HeldBy = nil
	bed.ReservationExpiry = nil
	r.Recompute()
	return bed, nil
}

// ReserveBed places a revocable hold short of occupancy
func (r *Room) ReserveBed(bedNumber string, holder uuid.UUID, expiry *time.Time) (*Bed, error) {
	bed := r.FindBed(bedNumber)
	if bed == nil {
		return nil, ErrBedNotFound
	}
	if bed.IsOccupied {
		return nil, ErrBedOccupied
	}
	if bed.Status == BedStatusMaintenance {
		return nil, ErrBedUnderMaintenance
	}
	if bed.Status == BedStatusReserved {
		return nil, ErrBedAlreadyReserved
	}

	bed.Status = BedStatusReserved
	bed.HeldBy = &holder
	bed.ReservationExpiry = expiry
	r.Recompute()
	return bed, nil
}

// CancelBedReservation releases a hold back to available
func (r *Room) CancelBedReservation(bedNumber string) (*Bed, error) {
	bed := r.FindBed(bedNumber)
	if bed == nil {
		return nil, ErrBedNotFound
	}
	if bed.Status != BedStatusReserved {
		return nil, ErrBedNotReserved
	}

	bed.Status = BedStatusAvailable
	bed.HeldBy = nil
	bed.ReservationExpiry = nil
	r.Recompute()
	return bed, nil
}

// AssignBed marks a bed occupied and writes the occupant snapshot
func (r *Room) AssignBed(bedNumber string, occupant BedOccupant) (*Bed, error) {
	bed := r.FindBed(bedNumber)
	if bed == nil {
		return nil, ErrBedNotFound
	}
	if bed.IsOccupied {
		return nil, ErrBedOccupied
	}
	if bed.Status == BedStatusMaintenance {
		return nil, ErrBedUnderMaintenance
	}

	bed.occupy(occupant)
	r.Recompute()
	return bed, nil
}

// VacateBed frees an occupied bed and returns the previous occupant snapshot
func (r *Room) VacateBed(bedNumber string) (BedOccupant, *Bed, error) {
	bed := r.FindBed(bedNumber)
	if bed == nil {
		return BedOccupant{}, nil, ErrBedNotFound
	}
	if !bed.IsOccupied {
		return BedOccupant{}, nil, ErrBedVacant
	}

	prev := bed.release()
	r.Recompute()
	return prev, bed, nil
}

// SwapBeds exchanges the occupancy fields of two beds. Neither bed is
// required to be occupied; holds move with the occupancy fields.
func (r *Room) SwapBeds(bedNumberA, bedNumberB string) (*Bed, *Bed, error) {
	a := r.FindBed(bedNumberA)
	b := r.FindBed(bedNumberB)
	if a == nil || b == nil {
		return nil, nil, ErrBedNotFound
	}

	a.IsOccupied, b.IsOccupied = b.IsOccupied, a.IsOccupied
	a.Status, b.Status = b.Status, a.Status
	a.CurrentOccupantID, b.CurrentOccupantID = b.CurrentOccupantID, a.CurrentOccupantID
	a.HeldBy, b.HeldBy = b.HeldBy, a.HeldBy
	a.ReservationExpiry, b.ReservationExpiry = b.ReservationExpiry, a.ReservationExpiry
	a.StudentCode, b.StudentCode = b.StudentCode, a.StudentCode
	a.StudentName, b.StudentName = b.StudentName, a.StudentName
	a.StudentPhone, b.StudentPhone = b.StudentPhone, a.StudentPhone
	a.StudentEmail, b.StudentEmail = b.StudentEmail, a.StudentEmail
	a.CheckInDate, b.CheckInDate = b.CheckInDate, a.CheckInDate

	r.Recompute()
	return a, b, nil
}
