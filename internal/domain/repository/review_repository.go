package repository

import (
	"hostelhub/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReviewRepository interface {
	Create(db *gorm.DB, review *entity.Review) error
	FindByBookingID(db *gorm.DB, bookingID uuid.UUID) (*entity.Review, error)
	FindByHostelID(db *gorm.DB, hostelID uuid.UUID) ([]entity.Review, error)
	// AggregateByHostel recomputes the rating aggregate from scratch
	AggregateByHostel(db *gorm.DB, hostelID uuid.UUID) (average float64, count int64, err error)
}
