package dto

import (
	"time"

	"github.com/google/uuid"
)

// Response DTOs

type StudentResponse struct {
	ID          uuid.UUID `json:"id"`
	StudentCode string    `json:"student_code"`
	HostelID    uuid.UUID `json:"hostel_id"`

	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`

	RoomID    *uuid.UUID `json:"room_id,omitempty"`
	BedNumber string     `json:"bed_number,omitempty"`
	UserID    *uuid.UUID `json:"user_id,omitempty"`

	EmergencyContact EmergencyContactDTO `json:"emergency_contact"`

	CheckInDate  time.Time  `json:"check_in_date"`
	CheckOutDate *time.Time `json:"check_out_date,omitempty"`
	Status       string     `json:"status"`

	BookingRef *uuid.UUID `json:"booking_ref,omitempty"`
	Source     string     `json:"source"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type StudentListResponse struct {
	Students []StudentResponse `json:"students"`
	Total    int               `json:"total"`
}
