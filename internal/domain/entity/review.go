package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review is a one-per-booking rating of a hostel stay. Writing one marks
// the booking's reviewSubmitted flag and triggers an explicit hostel rating
// recompute by the review usecase.
type Review struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	BookingID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"booking_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	HostelID  uuid.UUID `gorm:"type:uuid;not null;index" json:"hostel_id"`

	Rating      int    `gorm:"not null" json:"rating"`
	Cleanliness int    `gorm:"default:0" json:"cleanliness,omitempty"`
	Food        int    `gorm:"default:0" json:"food,omitempty"`
	Safety      int    `gorm:"default:0" json:"safety,omitempty"`
	Comment     string `gorm:"type:text" json:"comment,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Booking Booking `gorm:"foreignKey:BookingID" json:"booking,omitempty"`
	User    User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Hostel  Hostel  `gorm:"foreignKey:HostelID" json:"hostel,omitempty"`
}

func (Review) TableName() string {
	return "reviews"
}
