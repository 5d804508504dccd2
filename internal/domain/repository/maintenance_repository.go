package repository

import (
	"hostelhub/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MaintenanceRepository interface {
	Create(db *gorm.DB, ticket *entity.MaintenanceTicket) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.MaintenanceTicket, error)
	FindByHostelID(db *gorm.DB, hostelID uuid.UUID, status entity.TicketStatus) ([]entity.MaintenanceTicket, error)
	Save(db *gorm.DB, ticket *entity.MaintenanceTicket) error
	Delete(db *gorm.DB, ticket *entity.MaintenanceTicket) error
}
