package entity

import (
	"time"

	"github.com/google/uuid"
)

// TicketStatus represents the lifecycle state of a maintenance ticket
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "open"
	TicketStatusInProgress TicketStatus = "in_progress"
	TicketStatusResolved   TicketStatus = "resolved"
	TicketStatusClosed     TicketStatus = "closed"
)

// ticketTransitions encodes the allowed status moves
var ticketTransitions = map[TicketStatus][]TicketStatus{
	TicketStatusOpen:       {TicketStatusInProgress, TicketStatusResolved, TicketStatusClosed},
	TicketStatusInProgress: {TicketStatusResolved, TicketStatusClosed},
	TicketStatusResolved:   {TicketStatusClosed, TicketStatusInProgress},
}

// Ticket priority constants
const (
	TicketPriorityLow    = "low"
	TicketPriorityMedium = "medium"
	TicketPriorityHigh   = "high"
	TicketPriorityUrgent = "urgent"
)

// MaintenanceTicket is a repair/issue report against a hostel or room
type MaintenanceTicket struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	HostelID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"hostel_id"`
	RoomID       *uuid.UUID `gorm:"type:uuid" json:"room_id,omitempty"`
	ReportedByID uuid.UUID  `gorm:"type:uuid;not null" json:"reported_by_id"`

	Category    string       `gorm:"type:varchar(50);not null" json:"category"`
	Description string       `gorm:"type:text;not null" json:"description"`
	Priority    string       `gorm:"type:varchar(20);default:'medium'" json:"priority"`
	Status      TicketStatus `gorm:"type:varchar(20);not null;default:'open';index" json:"status"`

	AssignedToID *uuid.UUID `gorm:"type:uuid" json:"assigned_to_id,omitempty"`
	ResolvedAt   *time.Time `json:"resolved_at,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Hostel     Hostel `gorm:"foreignKey:HostelID" json:"hostel,omitempty"`
	Room       *Room  `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	ReportedBy User   `gorm:"foreignKey:ReportedByID" json:"reported_by,omitempty"`
	AssignedTo *User  `gorm:"foreignKey:AssignedToID" json:"assigned_to,omitempty"`
}

func (MaintenanceTicket) TableName() string {
	return "maintenance_tickets"
}

// CanTransitionTo reports whether the status move is allowed
func (t *MaintenanceTicket) CanTransitionTo(target TicketStatus) bool {
	for _, allowed := range ticketTransitions[t.Status] {
		if allowed == target {
			return true
		}
	}
	return false
}
