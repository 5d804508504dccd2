package usecase

import (
	"context"
	"errors"
	"time"

	"hostelhub/internal/converter"
	"hostelhub/internal/delivery/dto"
	"hostelhub/internal/domain/entity"
	"hostelhub/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrTicketNotFound          = errors.New("maintenance ticket not found")
	ErrInvalidTicketTransition = errors.New("ticket status transition not allowed")
)

type MaintenanceUsecase interface {
	Create(ctx context.Context, actorID uuid.UUID, req *dto.CreateTicketRequest) (*dto.TicketResponse, error)
	GetByID(ctx context.Context, actorID uuid.UUID, actorRole int, id uuid.UUID) (*dto.TicketResponse, error)
	ListByHostel(ctx context.Context, actorID uuid.UUID, actorRole int, hostelID uuid.UUID, status string) (*dto.TicketListResponse, error)
	Update(ctx context.Context, actorID uuid.UUID, actorRole int, id uuid.UUID, req *dto.UpdateTicketRequest) (*dto.TicketResponse, error)
	Delete(ctx context.Context, actorID uuid.UUID, actorRole int, id uuid.UUID) error
}

type maintenanceUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	maintenanceRepo repository.MaintenanceRepository
	hostelRepo      repository.HostelRepository
	roomRepo        repository.RoomRepository
}

func NewMaintenanceUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	maintenanceRepo repository.MaintenanceRepository,
	hostelRepo repository.HostelRepository,
	roomRepo repository.RoomRepository,
) MaintenanceUsecase {
	return &maintenanceUsecase{
		db:              db,
		log:             log,
		maintenanceRepo: maintenanceRepo,
		hostelRepo:      hostelRepo,
		roomRepo:        roomRepo,
	}
}

func (u *maintenanceUsecase) requireHostelAccess(db *gorm.DB, hostelID, actorID uuid.UUID, actorRole int) error {
	if actorRole == entity.RoleIDAdmin || actorRole == entity.RoleIDStaff {
		return nil
	}
	hostel, err := u.hostelRepo.FindByID(db, hostelID)
	if err != nil {
		return err
	}
	if hostel == nil {
		return ErrHostelNotFound
	}
	if !hostel.IsOwnedBy(actorID) {
		return ErrNotHostelOwner
	}
	return nil
}

func (u *maintenanceUsecase) Create(ctx context.Context, actorID uuid.UUID, req *dto.CreateTicketRequest) (*dto.TicketResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	hostel, err := u.hostelRepo.FindByID(tx, req.HostelID)
	if err != nil {
		return nil, err
	}
	if hostel == nil {
		return nil, ErrHostelNotFound
	}

	if req.RoomID != nil {
		room, err := u.roomRepo.FindByID(tx, *req.RoomID)
		if err != nil {
			return nil, err
		}
		if room == nil || room.HostelID != req.HostelID {
			return nil, ErrRoomNotFound
		}
	}

	priority := req.Priority
	if priority == "" {
		priority = entity.TicketPriorityMedium
	}

	ticket := &entity.MaintenanceTicket{
		HostelID:     req.HostelID,
		RoomID:       req.RoomID,
		ReportedByID: actorID,
		Category:     req.Category,
		Description:  req.Description,
		Priority:     priority,
		Status:       entity.TicketStatusOpen,
	}

	if err := u.maintenanceRepo.Create(tx, ticket); err != nil {
		u.log.Warnf("Failed to create ticket: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.TicketToResponse(ticket), nil
}

func (u *maintenanceUsecase) GetByID(ctx context.Context, actorID uuid.UUID, actorRole int, id uuid.UUID) (*dto.TicketResponse, error) {
	db := u.db.WithContext(ctx)

	ticket, err := u.maintenanceRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find ticket by ID: %+v", err)
		return nil, err
	}
	if ticket == nil {
		return nil, ErrTicketNotFound
	}

	// The reporter may view their own ticket
	if ticket.ReportedByID != actorID {
		if err := u.requireHostelAccess(db, ticket.HostelID, actorID, actorRole); err != nil {
			return nil, err
		}
	}

	return converter.TicketToResponse(ticket), nil
}

func (u *maintenanceUsecase) ListByHostel(ctx context.Context, actorID uuid.UUID, actorRole int, hostelID uuid.UUID, status string) (*dto.TicketListResponse, error) {
	db := u.db.WithContext(ctx)

	if err := u.requireHostelAccess(db, hostelID, actorID, actorRole); err != nil {
		return nil, err
	}

	tickets, err := u.maintenanceRepo.FindByHostelID(db, hostelID, entity.TicketStatus(status))
	if err != nil {
		u.log.Warnf("Failed to list tickets: %+v", err)
		return nil, err
	}

	return &dto.TicketListResponse{
		Tickets: converter.TicketsToResponses(tickets),
		Total:   len(tickets),
	}, nil
}

func (u *maintenanceUsecase) Update(ctx context.Context, actorID uuid.UUID, actorRole int, id uuid.UUID, req *dto.UpdateTicketRequest) (*dto.TicketResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	ticket, err := u.maintenanceRepo.FindByID(tx, id)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, ErrTicketNotFound
	}
	if err := u.requireHostelAccess(tx, ticket.HostelID, actorID, actorRole); err != nil {
		return nil, err
	}

	if req.Status != nil {
		target := entity.TicketStatus(*req.Status)
		if target != ticket.Status {
			if !ticket.CanTransitionTo(target) {
				return nil, ErrInvalidTicketTransition
			}
			ticket.Status = target
			if target == entity.TicketStatusResolved {
				now := time.Now()
				ticket.ResolvedAt = &now
			}
		}
	}
	if req.Priority != nil {
		ticket.Priority = *req.Priority
	}
	if req.AssignedToID != nil {
		ticket.AssignedToID = req.AssignedToID
	}

	if err := u.maintenanceRepo.Save(tx, ticket); err != nil {
		u.log.Warnf("Failed to save ticket: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.TicketToResponse(ticket), nil
}

func (u *maintenanceUsecase) Delete(ctx context.Context, actorID uuid.UUID, actorRole int, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	ticket, err := u.maintenanceRepo.FindByID(tx, id)
	if err != nil {
		return err
	}
	if ticket == nil {
		return ErrTicketNotFound
	}
	if err := u.requireHostelAccess(tx, ticket.HostelID, actorID, actorRole); err != nil {
		return err
	}

	if err := u.maintenanceRepo.Delete(tx, ticket); err != nil {
		u.log.Warnf("Failed to delete ticket: %+v", err)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
