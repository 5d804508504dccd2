package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateTicketRequest struct {
	HostelID    uuid.UUID  `json:"hostel_id" validate:"required"`
	RoomID      *uuid.UUID `json:"room_id" validate:"omitempty"`
	Category    string     `json:"category" validate:"required,max=50"`
	Description string     `json:"description" validate:"required,min=5"`
	Priority    string     `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
}

type UpdateTicketRequest struct {
	Status       *string    `json:"status" validate:"omitempty,oneof=open in_progress resolved closed"`
	Priority     *string    `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	AssignedToID *uuid.UUID `json:"assigned_to_id" validate:"omitempty"`
}

// Response DTOs

type TicketResponse struct {
	ID           uuid.UUID  `json:"id"`
	HostelID     uuid.UUID  `json:"hostel_id"`
	RoomID       *uuid.UUID `json:"room_id,omitempty"`
	ReportedByID uuid.UUID  `json:"reported_by_id"`

	Category    string `json:"category"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`

	AssignedToID *uuid.UUID `json:"assigned_to_id,omitempty"`
	ResolvedAt   *time.Time `json:"resolved_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type TicketListResponse struct {
	Tickets []TicketResponse `json:"tickets"`
	Total   int              `json:"total"`
}
