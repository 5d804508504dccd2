package repository

import (
	"hostelhub/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RoomRepository interface {
	Create(db *gorm.DB, room *entity.Room) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Room, error)
	// FindByIDForUpdate locks the room row for the duration of the
	// enclosing transaction. Every bed mutation must go through this.
	FindByIDForUpdate(db *gorm.DB, id uuid.UUID) (*entity.Room, error)
	FindByHostelID(db *gorm.DB, hostelID uuid.UUID) ([]entity.Room, error)
	// Save persists the room row and all bed rows it owns
	Save(db *gorm.DB, room *entity.Room) error
	DeleteBed(db *gorm.DB, bedID uuid.UUID) error
	Delete(db *gorm.DB, room *entity.Room) error
	ListWithBedsByHostelID(db *gorm.DB, hostelID uuid.UUID) ([]entity.Room, error)
}
