package repository

import (
	"hostelhub/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentRepository interface {
	Create(db *gorm.DB, student *entity.Student) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Student, error)
	FindByHostelID(db *gorm.DB, hostelID uuid.UUID) ([]entity.Student, error)
	FindByBookingRef(db *gorm.DB, bookingID uuid.UUID) (*entity.Student, error)
	Save(db *gorm.DB, student *entity.Student) error
}
