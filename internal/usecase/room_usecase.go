package usecase

import (
	"context"
	"errors"

	"hostelhub/internal/converter"
	"hostelhub/internal/delivery/dto"
	"hostelhub/internal/domain/entity"
	"hostelhub/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrRoomNotFound     = errors.New("room not found")
	ErrRoomNumberExists = errors.New("room number already exists in this hostel")
	ErrRoomHasOccupants = errors.New("room still has occupied beds")
)

type RoomUsecase interface {
	Create(ctx context.Context, actorID uuid.UUID, actorRole int, req *dto.CreateRoomRequest) (*dto.RoomResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.RoomResponse, error)
	ListByHostel(ctx context.Context, hostelID uuid.UUID) (*dto.RoomListResponse, error)
	Update(ctx context.Context, actorID uuid.UUID, actorRole int, id uuid.UUID, req *dto.UpdateRoomRequest) (*dto.RoomResponse, error)
	Delete(ctx context.Context, actorID uuid.UUID, actorRole int, id uuid.UUID) error
}

type roomUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	roomRepo   repository.RoomRepository
	hostelRepo repository.HostelRepository
}

func NewRoomUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	roomRepo repository.RoomRepository,
	hostelRepo repository.HostelRepository,
) RoomUsecase {
	return &roomUsecase{
		db:         db,
		log:        log,
		roomRepo:   roomRepo,
		hostelRepo: hostelRepo,
	}
}

// loadManagedHostel loads the hostel and enforces the owner-or-admin check
func (u *roomUsecase) loadManagedHostel(tx *gorm.DB, hostelID, actorID uuid.UUID, actorRole int) (*entity.Hostel, error) {
	hostel, err := u.hostelRepo.FindByID(tx, hostelID)
	if err != nil {
		return nil, err
	}
	if hostel == nil {
		return nil, ErrHostelNotFound
	}
	if !canManage(hostel, actorID, actorRole) {
		return nil, ErrNotHostelOwner
	}
	return hostel, nil
}

func (u *roomUsecase) Create(ctx context.Context, actorID uuid.UUID, actorRole int, req *dto.CreateRoomRequest) (*dto.RoomResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if _, err := u.loadManagedHostel(tx, req.HostelID, actorID, actorRole); err != nil {
		return nil, err
	}

	room := &entity.Room{
		HostelID:   req.HostelID,
		RoomNumber: req.RoomNumber,
		Floor:      req.Floor,
		RoomType:   req.RoomType,
		Capacity:   req.Capacity,
		Status:     entity.RoomStatusAvailable,
		Amenities:  req.Amenities,
	}

	for _, bedReq := range req.Beds {
		if _, err := room.AddBed(bedReq.BedNumber, bedReq.RentAmount, bedReq.Amenities); err != nil {
			return nil, err
		}
	}

	if err := u.roomRepo.Create(tx, room); err != nil {
		if isDuplicateKeyError(err, "idx_rooms_hostel_number") {
			return nil, ErrRoomNumberExists
		}
		u.log.Warnf("Failed to create room: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.RoomToResponse(room), nil
}

func (u *roomUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.RoomResponse, error) {
	room, err := u.roomRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find room by ID: %+v", err)
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}

	return converter.RoomToResponse(room), nil
}

func (u *roomUsecase) ListByHostel(ctx context.Context, hostelID uuid.UUID) (*dto.RoomListResponse, error) {
	rooms, err := u.roomRepo.ListWithBedsByHostelID(u.db.WithContext(ctx), hostelID)
	if err != nil {
		u.log.Warnf("Failed to list rooms: %+v", err)
		return nil, err
	}

	return &dto.RoomListResponse{
		Rooms: converter.RoomsToResponses(rooms),
		Total: len(rooms),
	}, nil
}

func (u *roomUsecase) Update(ctx context.Context, actorID uuid.UUID, actorRole int, id uuid.UUID, req *dto.UpdateRoomRequest) (*dto.RoomResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	room, err := u.roomRepo.FindByIDForUpdate(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find room by ID: %+v", err)
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}
	if _, err := u.loadManagedHostel(tx, room.HostelID, actorID, actorRole); err != nil {
		return nil, err
	}

	if req.Floor != nil {
		room.Floor = *req.Floor
	}
	if req.RoomType != nil {
		room.RoomType = *req.RoomType
	}
	if req.Amenities != nil {
		room.Amenities = req.Amenities
	}

	if err := u.roomRepo.Save(tx, room); err != nil {
		u.log.Warnf("Failed to update room: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.RoomToResponse(room), nil
}

func (u *roomUsecase) Delete(ctx context.Context, actorID uuid.UUID, actorRole int, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	room, err := u.roomRepo.FindByIDForUpdate(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find room by ID: %+v", err)
		return err
	}
	if room == nil {
		return ErrRoomNotFound
	}
	if _, err := u.loadManagedHostel(tx, room.HostelID, actorID, actorRole); err != nil {
		return err
	}
	if room.CurrentOccupancy > 0 {
		return ErrRoomHasOccupants
	}

	if err := u.roomRepo.Delete(tx, room); err != nil {
		u.log.Warnf("Failed to delete room: %+v", err)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
