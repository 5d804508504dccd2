package repository

import (
	"errors"

	"hostelhub/internal/domain/entity"
	domainRepo "hostelhub/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type maintenanceRepository struct{}

func NewMaintenanceRepository() domainRepo.MaintenanceRepository {
	return &maintenanceRepository{}
}

func (r *maintenanceRepository) Create(db *gorm.DB, ticket *entity.MaintenanceTicket) error {
	return db.Create(ticket).Error
}

func (r *maintenanceRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.MaintenanceTicket, error) {
	var ticket entity.MaintenanceTicket
	err := db.Preload("ReportedBy").Preload("AssignedTo").Where("id = ?", id).First(&ticket).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &ticket, nil
}

func (r *maintenanceRepository) FindByHostelID(db *gorm.DB, hostelID uuid.UUID, status entity.TicketStatus) ([]entity.MaintenanceTicket, error) {
	query := db.Where("hostel_id = ?", hostelID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var tickets []entity.MaintenanceTicket
	err := query.Order("created_at DESC").Find(&tickets).Error
	if err != nil {
		return nil, err
	}
	return tickets, nil
}

func (r *maintenanceRepository) Save(db *gorm.DB, ticket *entity.MaintenanceTicket) error {
	return db.Save(ticket).Error
}

func (r *maintenanceRepository) Delete(db *gorm.DB, ticket *entity.MaintenanceTicket) error {
	return db.Delete(ticket).Error
}
