package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateReviewRequest struct {
	BookingID   uuid.UUID `json:"booking_id" validate:"required"`
	Rating      int       `json:"rating" validate:"required,min=1,max=5"`
	Cleanliness int       `json:"cleanliness" validate:"omitempty,min=1,max=5"`
	Food        int       `json:"food" validate:"omitempty,min=1,max=5"`
	Safety      int       `json:"safety" validate:"omitempty,min=1,max=5"`
	Comment     string    `json:"comment" validate:"omitempty,max=2000"`
}

// Response DTOs

type ReviewResponse struct {
	ID        uuid.UUID `json:"id"`
	BookingID uuid.UUID `json:"booking_id"`
	UserID    uuid.UUID `json:"user_id"`
	HostelID  uuid.UUID `json:"hostel_id"`

	Rating      int    `json:"rating"`
	Cleanliness int    `json:"cleanliness,omitempty"`
	Food        int    `json:"food,omitempty"`
	Safety      int    `json:"safety,omitempty"`
	Comment     string `json:"comment,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ReviewListResponse struct {
	Reviews       []ReviewResponse `json:"reviews"`
	Total         int              `json:"total"`
	RatingAverage float64          `json:"rating_average"`
	RatingCount   int              `json:"rating_count"`
}
