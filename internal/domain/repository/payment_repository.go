package repository

import (
	"hostelhub/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentRepository interface {
	Create(db *gorm.DB, payment *entity.Payment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Payment, error)
	FindByBookingID(db *gorm.DB, bookingID uuid.UUID) ([]entity.Payment, error)
	FindByUserID(db *gorm.DB, userID uuid.UUID) ([]entity.Payment, error)
	FindByHostelID(db *gorm.DB, hostelID uuid.UUID) ([]entity.Payment, error)
	Save(db *gorm.DB, payment *entity.Payment) error
}
