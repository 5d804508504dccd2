package usecase

import (
	"context"
	"errors"
	"time"

	"hostelhub/internal/converter"
	"hostelhub/internal/delivery/dto"
	"hostelhub/internal/domain/entity"
	"hostelhub/internal/domain/repository"
	"hostelhub/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ErrBedHasActiveBooking rejects a direct vacate of a bed that is occupied
// through a checkedIn booking. Freeing such a bed without advancing the
// booking and student would strand the booking in checkedIn.
var ErrBedHasActiveBooking = errors.New("bed is held by a checked-in booking, use booking check-out")

type BedUsecase interface {
	AddBed(ctx context.Context, actorID uuid.UUID, actorRole int, roomID uuid.UUID, req *dto.AddBedRequest) (*dto.BedResponse, error)
	UpdateBed(ctx context.Context, actorID uuid.UUID, actorRole int, roomID uuid.UUID, bedNumber string, req *dto.UpdateBedRequest) (*dto.BedResponse, error)
	BulkUpdateBeds(ctx context.Context, actorID uuid.UUID, actorRole int, roomID uuid.UUID, req *dto.BulkUpdateBedsRequest) ([]dto.BedResponse, error)
	RemoveBed(ctx context.Context, actorID uuid.UUID, actorRole int, roomID uuid.UUID, bedNumber string) error
	SetMaintenance(ctx context.Context, actorID uuid.UUID, actorRole int, roomID uuid.UUID, bedNumber string) (*dto.BedResponse, error)
	Reserve(ctx context.Context, actorID uuid.UUID, actorRole int, roomID uuid.UUID, bedNumber string, req *dto.ReserveBedRequest) (*dto.BedResponse, error)
	CancelReservation(ctx context.Context, actorID uuid.UUID, actorRole int, roomID uuid.UUID, bedNumber string) (*dto.BedResponse, error)
	Assign(ctx context.Context, actorID uuid.UUID, actorRole int, roomID uuid.UUID, bedNumber string, req *dto.AssignBedRequest) (*dto.BedResponse, error)
	Vacate(ctx context.Context, actorID uuid.UUID, actorRole int, roomID uuid.UUID, bedNumber string) (*dto.VacateBedResponse, error)
	Swap(ctx context.Context, actorID uuid.UUID, actorRole int, roomID uuid.UUID, req *dto.SwapBedsRequest) (*dto.SwapBedsResponse, error)
	ListAvailable(ctx context.Context, hostelID uuid.UUID, filter entity.AvailableBedFilter) (*dto.AvailableBedListResponse, error)
}

type bedUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	roomRepo    repository.RoomRepository
	hostelRepo  repository.HostelRepository
	userRepo    repository.UserRepository
	bookingRepo repository.BookingRepository
	coordinator *service.OccupancyCoordinator
	audit       service.AuditService
}

func NewBedUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	roomRepo repository.RoomRepository,
	hostelRepo repository.HostelRepository,
	userRepo repository.UserRepository,
	bookingRepo repository.BookingRepository,
	coordinator *service.OccupancyCoordinator,
	audit service.AuditService,
) BedUsecase {
	return &bedUsecase{
		db:          db,
		log:         log,
		roomRepo:    roomRepo,
		hostelRepo:  hostelRepo,
		userRepo:    userRepo,
		bookingRepo: bookingRepo,
		coordinator: coordinator,
		audit:       audit,
	}
}

// lockManagedRoom loads the room FOR UPDATE and checks hostel management
// rights. All bed mutations start here.
func (u *bedUsecase) lockManagedRoom(tx *gorm.DB, roomID, actorID uuid.UUID, actorRole int) (*entity.Room, error) {
	room, err := u.roomRepo.FindByIDForUpdate(tx, roomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}

	hostel, err := u.hostelRepo.FindByID(tx, room.HostelID)
	if err != nil {
		return nil, err
	}
	if hostel == nil {
		return nil, ErrHostelNotFound
	}
	if !canManage(hostel, actorID, actorRole) {
		return nil, ErrNotHostelOwner
	}
	return room, nil
}

func (u *bedUsecase) AddBed(ctx context.Context, actorID uuid.UUID, actorRole int, roomID uuid.UUID, req *dto.AddBedRequest) (*dto.BedResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	room, err := u.lockManagedRoom(tx, roomID, actorID, actorRole)
	if err != nil {
		return nil, err
	}

	bed, err := room.AddBed(req.BedNumber, req.RentAmount, req.Amenities)
	if err != nil {
		return nil, err
	}

	if err := u.roomRepo.Save(tx, room); err != nil {
		u.log.Warnf("Failed to save room: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.BedToResponse(bed), nil
}

func (u *bedUsecase) UpdateBed(ctx context.Context, actorID uuid.UUID, actorRole int, roomID uuid.UUID, bedNumber string, req *dto.UpdateBedRequest) (*dto.BedResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	room, err := u.lockManagedRoom(tx, roomID, actorID, actorRole)
	if err != nil {
		return nil, err
	}

	patch := entity.BedPatch{
		RentAmount: req.RentAmount,
		Amenities:  req.Amenities,
	}
	if req.Status != nil {
		status := entity.BedStatus(*req.Status)
		patch.Status = &status
	}

	bed, err := room.UpdateBed(bedNumber, patch)
	if err != nil {
		return nil, err
	}

	if err := u.roomRepo.Save(tx, room); err != nil {
		u.log.Warnf("Failed to save room: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.BedToResponse(bed), nil
}

func (u *bedUsecase) BulkUpdateBeds(ctx context.Context, actorID uuid.UUID, actorRole int, roomID uuid.UUID, req *dto.BulkUpdateBedsRequest) ([]dto.BedResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	room, err := u.lockManagedRoom(tx, roomID, actorID, actorRole)
	if err != nil {
		return nil, err
	}

	patch := entity.BedPatch{
		RentAmount: req.RentAmount,
		Amenities:  req.Amenities,
	}

	updated := make([]dto.BedResponse, 0, len(req.BedNumbers))
	for _, bedNumber := range req.BedNumbers {
		bed, err := room.UpdateBed(bedNumber, patch)
		if err != nil {
			return nil, err
		}
		updated = append(updated, *converter.BedToResponse(bed))
	}

	if err := u.roomRepo.Save(tx, room); err != nil {
		u.log.Warnf("Failed to save room: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return updated, nil
}

func (u *bedUsecase) RemoveBed(ctx context.Context, actorID uuid.UUID, actorRole int, roomID uuid.UUID, bedNumber string) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	room, err := u.lockManagedRoom(tx, roomID, actorID, actorRole)
	if err != nil {
		return err
	}

	removed, err := room.RemoveBed(bedNumber)
	if err != nil {
		return err
	}

	if err := u.roomRepo.DeleteBed(tx, removed.ID); err != nil {
		u.log.Warnf("Failed to delete bed: %+v", err)
		return err
	}
	if err := u.roomRepo.Save(tx, room); err != nil {
		u.log.Warnf("Failed to save room: %+v", err)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *bedUsecase) SetMaintenance(ctx context.Context, actorID uuid.UUID, actorRole int, roomID uuid.UUID, bedNumber string) (*dto.BedResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	room, err := u.lockManagedRoom(tx, roomID, actorID, actorRole)
	if err != nil {
		return nil, err
	}

	bed, err := room.SetBedMaintenance(bedNumber)
	if err != nil {
		return nil, err
	}

	if err := u.roomRepo.Save(tx, room); err != nil {
		u.log.Warnf("Failed to save room: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.BedToResponse(bed), nil
}

func (u *bedUsecase) Reserve(ctx context.Context, actorID uuid.UUID, actorRole int, roomID uuid.UUID, bedNumber string, req *dto.ReserveBedRequest) (*dto.BedResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	room, err := u.lockManagedRoom(tx, roomID, actorID, actorRole)
	if err != nil {
		return nil, err
	}

	bed, err := room.ReserveBed(bedNumber, req.UserID, req.ReservationExpiry)
	if err != nil {
		return nil, err
	}

	if err := u.roomRepo.Save(tx, room); err != nil {
		u.log.Warnf("Failed to save room: %+v", err)
		return nil, err
	}

	u.audit.LogUpdate(ctx, tx, &actorID, entity.AuditActionBedReserve, "bed", bed.ID.String(),
		nil, entity.JSON{"bed_number": bed.BedNumber, "held_by": req.UserID})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.BedToResponse(bed), nil
}

func (u *bedUsecase) CancelReservation(ctx context.Context, actorID uuid.UUID, actorRole int, roomID uuid.UUID, bedNumber string) (*dto.BedResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	room, err := u.lockManagedRoom(tx, roomID, actorID, actorRole)
	if err != nil {
		return nil, err
	}

	bed, err := room.CancelBedReservation(bedNumber)
	if err != nil {
		return nil, err
	}

	if err := u.roomRepo.Save(tx, room); err != nil {
		u.log.Warnf("Failed to save room: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.BedToResponse(bed), nil
}

func (u *bedUsecase) Assign(ctx context.Context, actorID uuid.UUID, actorRole int, roomID uuid.UUID, bedNumber string, req *dto.AssignBedRequest) (*dto.BedResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	// Ownership check before taking the room lock via the coordinator
	room, err := u.roomRepo.FindByID(tx, roomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}
	hostel, err := u.hostelRepo.FindByID(tx, room.HostelID)
	if err != nil {
		return nil, err
	}
	if hostel == nil {
		return nil, ErrHostelNotFound
	}
	if !canManage(hostel, actorID, actorRole) {
		return nil, ErrNotHostelOwner
	}

	occupant := entity.BedOccupant{
		StudentCode:  req.StudentCode,
		StudentName:  req.StudentName,
		StudentPhone: req.StudentPhone,
		StudentEmail: req.StudentEmail,
		CheckInDate:  time.Now(),
	}
	if req.UserID != nil {
		user, err := u.userRepo.FindByID(tx, *req.UserID)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, ErrUserNotFound
		}
		occupant.UserID = &user.ID
		if occupant.StudentName == "" {
			occupant.StudentName = user.FullName
		}
		if occupant.StudentPhone == "" {
			occupant.StudentPhone = user.Phone
		}
		if occupant.StudentEmail == "" {
			occupant.StudentEmail = user.Email
		}
	}

	_, bed, err := u.coordinator.Assign(tx, roomID, bedNumber, occupant)
	if err != nil {
		return nil, err
	}

	u.audit.LogUpdate(ctx, tx, &actorID, entity.AuditActionBedAssign, "bed", bed.ID.String(),
		nil, entity.JSON{"bed_number": bed.BedNumber, "occupant": occupant})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.BedToResponse(bed), nil
}

func (u *bedUsecase) Vacate(ctx context.Context, actorID uuid.UUID, actorRole int, roomID uuid.UUID, bedNumber string) (*dto.VacateBedResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	room, err := u.lockManagedRoom(tx, roomID, actorID, actorRole)
	if err != nil {
		return nil, err
	}

	bed := room.FindBed(bedNumber)
	if bed == nil {
		return nil, entity.ErrBedNotFound
	}
	linked, err := u.bookingRepo.FindCheckedInByBed(tx, bed.ID)
	if err != nil {
		return nil, err
	}
	if linked != nil {
		return nil, ErrBedHasActiveBooking
	}

	prev, bed, err := room.VacateBed(bedNumber)
	if err != nil {
		return nil, err
	}

	if err := u.roomRepo.Save(tx, room); err != nil {
		u.log.Warnf("Failed to save room: %+v", err)
		return nil, err
	}

	u.audit.LogUpdate(ctx, tx, &actorID, entity.AuditActionBedVacate, "bed", bed.ID.String(),
		entity.JSON{"occupant": prev}, nil)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return &dto.VacateBedResponse{
		Bed:              *converter.BedToResponse(bed),
		PreviousOccupant: converter.BedOccupantToSnapshot(prev),
	}, nil
}

func (u *bedUsecase) Swap(ctx context.Context, actorID uuid.UUID, actorRole int, roomID uuid.UUID, req *dto.SwapBedsRequest) (*dto.SwapBedsResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	room, err := u.lockManagedRoom(tx, roomID, actorID, actorRole)
	if err != nil {
		return nil, err
	}

	bedA, bedB, err := room.SwapBeds(req.BedNumberA, req.BedNumberB)
	if err != nil {
		return nil, err
	}

	if err := u.roomRepo.Save(tx, room); err != nil {
		u.log.Warnf("Failed to save room: %+v", err)
		return nil, err
	}

	u.audit.LogUpdate(ctx, tx, &actorID, entity.AuditActionBedSwap, "room", room.ID.String(),
		nil, entity.JSON{"bed_a": bedA.BedNumber, "bed_b": bedB.BedNumber})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return &dto.SwapBedsResponse{
		BedA: *converter.BedToResponse(bedA),
		BedB: *converter.BedToResponse(bedB),
	}, nil
}

func (u *bedUsecase) ListAvailable(ctx context.Context, hostelID uuid.UUID, filter entity.AvailableBedFilter) (*dto.AvailableBedListResponse, error) {
	rooms, err := u.roomRepo.ListWithBedsByHostelID(u.db.WithContext(ctx), hostelID)
	if err != nil {
		u.log.Warnf("Failed to list rooms with beds: %+v", err)
		return nil, err
	}

	var beds []entity.BedInRoom
	for i := range rooms {
		room := &rooms[i]
		for j := range room.Beds {
			if !filter.Matches(room, &room.Beds[j]) {
				continue
			}
			beds = append(beds, entity.BedInRoom{
				RoomID:     room.ID,
				RoomNumber: room.RoomNumber,
				Floor:      room.Floor,
				RoomType:   room.RoomType,
				Bed:        room.Beds[j],
			})
		}
	}

	return &dto.AvailableBedListResponse{
		Beds:  converter.BedsInRoomsToResponses(beds),
		Total: len(beds),
	}, nil
}

// ParseRentBound converts an optional query value for the rent filters
func ParseRentBound(raw string) (*decimal.Decimal, error) {
	if raw == "" {
		return nil, nil
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, err
	}
	return &value, nil
}
