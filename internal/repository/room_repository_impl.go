package repository

import (
	"errors"

	"hostelhub/internal/domain/entity"
	domainRepo "hostelhub/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type roomRepository struct{}

func NewRoomRepository() domainRepo.RoomRepository {
	return &roomRepository{}
}

func (r *roomRepository) Create(db *gorm.DB, room *entity.Room) error {
	return db.Create(room).Error
}

func (r *roomRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Room, error) {
	var room entity.Room
	err := db.Preload("Beds", func(db *gorm.DB) *gorm.DB {
		return db.Order("beds.bed_number")
	}).Where("id = ?", id).First(&room).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &room, nil
}

// FindByIDForUpdate locks the room row. Bed rows are loaded afterwards;
// they are serialized by the room lock since every bed mutation acquires it.
func (r *roomRepository) FindByIDForUpdate(db *gorm.DB, id uuid.UUID) (*entity.Room, error) {
	var room entity.Room
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&room).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if err := db.Where("room_id = ?", id).Order("bed_number").Find(&room.Beds).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *roomRepository) FindByHostelID(db *gorm.DB, hostelID uuid.UUID) ([]entity.Room, error) {
	var rooms []entity.Room
	err := db.Where("hostel_id = ?", hostelID).Order("room_number").Find(&rooms).Error
	if err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *roomRepository) ListWithBedsByHostelID(db *gorm.DB, hostelID uuid.UUID) ([]entity.Room, error) {
	var rooms []entity.Room
	err := db.Preload("Beds").
		Where("hostel_id = ?", hostelID).
		Order("room_number").
		Find(&rooms).Error
	if err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *roomRepository) Save(db *gorm.DB, room *entity.Room) error {
	return db.Session(&gorm.Session{FullSaveAssociations: true}).Save(room).Error
}

func (r *roomRepository) DeleteBed(db *gorm.DB, bedID uuid.UUID) error {
	return db.Delete(&entity.Bed{}, "id = ?", bedID).Error
}

func (r *roomRepository) Delete(db *gorm.DB, room *entity.Room) error {
	return db.Delete(room).Error
}
