package repository

import (
	"hostelhub/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HostelRepository interface {
	Create(db *gorm.DB, hostel *entity.Hostel) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Hostel, error)
	FindByOwnerID(db *gorm.DB, ownerID uuid.UUID) ([]entity.Hostel, error)
	FindAll(db *gorm.DB, limit, offset int) ([]entity.Hostel, int64, error)
	Save(db *gorm.DB, hostel *entity.Hostel) error
	Delete(db *gorm.DB, hostel *entity.Hostel) error
}
