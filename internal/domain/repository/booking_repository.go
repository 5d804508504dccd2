package repository

import (
	"hostelhub/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BookingFilter narrows booking listings
type BookingFilter struct {
	UserID    *uuid.UUID
	HostelIDs []uuid.UUID
	Status    entity.BookingStatus
	Active    bool
	Upcoming  bool
}

// BookingStatusCount is one row of the status/revenue breakdown
type BookingStatusCount struct {
	Status       entity.BookingStatus `json:"status"`
	Count        int64                `json:"count"`
	TotalRevenue string               `json:"total_revenue"`
}

type BookingRepository interface {
	Create(db *gorm.DB, booking *entity.Booking) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Booking, error)
	FindByIDForUpdate(db *gorm.DB, id uuid.UUID) (*entity.Booking, error)
	FindAll(db *gorm.DB, filter BookingFilter) ([]entity.Booking, error)
	// FindActiveByUserAndHostel finds a pending/confirmed/checkedIn booking
	// by the same user in the same hostel, for the duplicate-booking guard
	FindActiveByUserAndHostel(db *gorm.DB, userID, hostelID uuid.UUID) (*entity.Booking, error)
	// FindCheckedInByBed finds the checkedIn booking currently holding the
	// bed, if any. Guards direct bed vacates against stranding a booking.
	FindCheckedInByBed(db *gorm.DB, bedID uuid.UUID) (*entity.Booking, error)
	Save(db *gorm.DB, booking *entity.Booking) error
	Delete(db *gorm.DB, booking *entity.Booking) error
	CountByStatus(db *gorm.DB, hostelIDs []uuid.UUID) ([]BookingStatusCount, error)
}
