package repository

import (
	"errors"

	"hostelhub/internal/domain/entity"
	domainRepo "hostelhub/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type hostelRepository struct{}

func NewHostelRepository() domainRepo.HostelRepository {
	return &hostelRepository{}
}

func (r *hostelRepository) Create(db *gorm.DB, hostel *entity.Hostel) error {
	return db.Create(hostel).Error
}

func (r *hostelRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Hostel, error) {
	var hostel entity.Hostel
	err := db.Where("id = ?", id).First(&hostel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &hostel, nil
}

func (r *hostelRepository) FindByOwnerID(db *gorm.DB, ownerID uuid.UUID) ([]entity.Hostel, error) {
	var hostels []entity.Hostel
	err := db.Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&hostels).Error
	if err != nil {
		return nil, err
	}
	return hostels, nil
}

func (r *hostelRepository) FindAll(db *gorm.DB, limit, offset int) ([]entity.Hostel, int64, error) {
	var hostels []entity.Hostel
	var total int64

	if err := db.Model(&entity.Hostel{}).Where("is_active = true").Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Where("is_active = true").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&hostels).Error
	if err != nil {
		return nil, 0, err
	}
	return hostels, total, nil
}

func (r *hostelRepository) Save(db *gorm.DB, hostel *entity.Hostel) error {
	return db.Save(hostel).Error
}

func (r *hostelRepository) Delete(db *gorm.DB, hostel *entity.Hostel) error {
	return db.Delete(hostel).Error
}
