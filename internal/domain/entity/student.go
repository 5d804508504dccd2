package entity

import (
	"time"

	"github.com/google/uuid"
)

// StudentStatus represents the residency state of a student record
type StudentStatus string

const (
	StudentStatusActive      StudentStatus = "active"
	StudentStatusCheckedOut  StudentStatus = "checked-out"
	StudentStatusSuspended   StudentStatus = "suspended"
	StudentStatusTransferred StudentStatus = "transferred"
)

// Student source constants
const (
	StudentSourceBooking = "booking-system"
	StudentSourceAdmin   = "direct-admin"
	StudentSourceImport  = "import"
)

// Student is the persistent residency record derived from a checked-in
// booking. It outlives the booking it came from. StudentCode is unique per
// hostel, not globally.
type Student struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	StudentCode string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_students_code_hostel,priority:1" json:"student_code"`
	HostelID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_students_code_hostel,priority:2;index" json:"hostel_id"`

	Name  string `gorm:"type:varchar(255);not null" json:"name"`
	Email string `gorm:"type:varchar(255);not null" json:"email"`
	Phone string `gorm:"type:varchar(20);not null" json:"phone"`

	RoomID    *uuid.UUID `gorm:"type:uuid" json:"room_id,omitempty"`
	BedNumber string     `gorm:"type:varchar(20)" json:"bed_number,omitempty"`

	// Optional link to a login account; may be attached later
	UserID *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`

	EmergencyContact EmergencyContact `gorm:"type:jsonb" json:"emergency_contact"`

	CheckInDate  time.Time     `gorm:"not null" json:"check_in_date"`
	CheckOutDate *time.Time    `json:"check_out_date,omitempty"`
	Status       StudentStatus `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`

	// Back-reference to the originating booking
	BookingRef *uuid.UUID `gorm:"type:uuid" json:"booking_ref,omitempty"`
	Source     string     `gorm:"type:varchar(20);default:'direct-admin'" json:"source"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Hostel Hostel `gorm:"foreignKey:HostelID" json:"hostel,omitempty"`
	User   *User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Student) TableName() string {
	return "students"
}

// CheckOut marks the student checked out. Idempotent: returns false when
// already checked out, leaving the earlier checkout date untouched.
func (s *Student) CheckOut(at time.Time) bool {
	if s.Status == StudentStatusCheckedOut {
		return false
	}
	s.Status = StudentStatusCheckedOut
	s.CheckOutDate = &at
	return true
}
