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
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrInvalidDateFormat        = errors.New("invalid date format, use YYYY-MM-DD")
	ErrDuplicateActiveBooking   = errors.New("user already has an active booking in this hostel")
	ErrHostelInactive           = errors.New("hostel is not accepting bookings")
	ErrBookingForbidden         = errors.New("you do not have access to this booking")
	ErrInvalidBookingTransition = errors.New("booking status transition not allowed")
	ErrBookingNotEditable       = errors.New("booking can no longer be edited")
	ErrBookingNotDeletable      = errors.New("checked-in bookings cannot be deleted")
)

// BookingListQuery carries the parsed list filters from the handler
type BookingListQuery struct {
	HostelID *uuid.UUID
	Status   string
	Active   bool
	Upcoming bool
}

type BookingUsecase interface {
	Create(ctx context.Context, actorID uuid.UUID, actorRole int, req *dto.CreateBookingRequest) (*dto.BookingResponse, error)
	GetByID(ctx context.Context, actorID uuid.UUID, actorRole int, id uuid.UUID) (*dto.BookingResponse, error)
	List(ctx context.Context, actorID uuid.UUID, actorRole int, query BookingListQuery) (*dto.BookingListResponse, error)
	Confirm(ctx context.Context, actorID uuid.UUID, actorRole int, id uuid.UUID) (*dto.BookingResponse, error)
	CheckIn(ctx context.Context, actorID uuid.UUID, actorRole int, id uuid.UUID) (*dto.CheckInResponse, error)
	CheckOut(ctx context.Context, actorID uuid.UUID, actorRole int, id uuid.UUID, req *dto.CheckOutBookingRequest) (*dto.CheckOutResponse, error)
	Cancel(ctx context.Context, actorID uuid.UUID, actorRole int, id uuid.UUID, req *dto.CancelBookingRequest) (*dto.BookingResponse, error)
	Complete(ctx context.Context, actorID uuid.UUID, actorRole int, id uuid.UUID) (*dto.BookingResponse, error)
	MarkNoShow(ctx context.Context, actorID uuid.UUID, actorRole int, id uuid.UUID) (*dto.BookingResponse, error)
	Update(ctx context.Context, actorID uuid.UUID, actorRole int, id uuid.UUID, req *dto.UpdateBookingRequest) (*dto.BookingResponse, error)
	AddDocument(ctx context.Context, actorID uuid.UUID, actorRole int, id uuid.UUID, req *dto.AddBookingDocumentRequest) (*dto.BookingResponse, error)
	Delete(ctx context.Context, actorID uuid.UUID, id uuid.UUID) error
	Stats(ctx context.Context, actorID uuid.UUID, actorRole int) (*dto.BookingStatsResponse, error)
}

type bookingUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	bookingRepo repository.BookingRepository
	roomRepo    repository.RoomRepository
	hostelRepo  repository.HostelRepository
	coordinator *service.OccupancyCoordinator
	audit       service.AuditService
}

func NewBookingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	bookingRepo repository.BookingRepository,
	roomRepo repository.RoomRepository,
	hostelRepo repository.HostelRepository,
	coordinator *service.OccupancyCoordinator,
	audit service.AuditService,
) BookingUsecase {
	return &bookingUsecase{
		db:          db,
		log:         log,
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		hostelRepo:  hostelRepo,
		coordinator: coordinator,
		audit:       audit,
	}
}

func (u *bookingUsecase) Create(ctx context.Context, actorID uuid.UUID, actorRole int, req *dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	checkInDate, err := time.Parse("2006-01-02", req.CheckInDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	hostel, err := u.hostelRepo.FindByID(tx, req.HostelID)
	if err != nil {
		return nil, err
	}
	if hostel == nil {
		return nil, ErrHostelNotFound
	}
	if hostel.IsActive != nil && !*hostel.IsActive {
		return nil, ErrHostelInactive
	}

	existing, err := u.bookingRepo.FindActiveByUserAndHostel(tx, actorID, req.HostelID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateActiveBooking
	}

	// Room lock serializes concurrent bookings against the same bed
	room, err := u.roomRepo.FindByIDForUpdate(tx, req.RoomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}
	if room.HostelID != req.HostelID {
		return nil, ErrRoomNotFound
	}

	bed := room.FindBedByID(req.BedID)
	if bed == nil {
		return nil, entity.ErrBedNotFound
	}

	// The pending booking takes the hold on the bed
	if _, err := room.ReserveBed(bed.BedNumber, actorID, nil); err != nil {
		return nil, err
	}
	if err := u.roomRepo.Save(tx, room); err != nil {
		u.log.Warnf("Failed to save room: %+v", err)
		return nil, err
	}

	createdBy := req.CreatedBy
	if createdBy == "" {
		createdBy = entity.BookingCreatedByUser
	}

	booking := &entity.Booking{
		UserID:       actorID,
		HostelID:     req.HostelID,
		RoomID:       req.RoomID,
		BedID:        req.BedID,
		CheckInDate:  checkInDate,
		CheckOutDate: checkInDate.AddDate(0, req.DurationMonths, 0),
		Status:       entity.BookingStatusPending,
		EmergencyContact: entity.EmergencyContact{
			Name:         req.EmergencyContact.Name,
			Relationship: req.EmergencyContact.Relationship,
			Phone:        req.EmergencyContact.Phone,
		},
		AdvanceAmount: req.AdvanceAmount,
		DepositPaid:   req.DepositPaid,
		Notes:         req.Notes,
		CreatedBy:     createdBy,
	}
	booking.ComputeFinancials(bed.RentAmount, req.DurationMonths)

	if err := u.bookingRepo.Create(tx, booking); err != nil {
		u.log.Warnf("Failed to create booking: %+v", err)
		return nil, err
	}

	u.audit.LogCreate(ctx, tx, &actorID, entity.AuditActionBookingCreate, "booking", booking.ID.String(),
		entity.JSON{"hostel_id": booking.HostelID, "bed_id": booking.BedID, "total_amount": booking.TotalAmount.String()})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Booking %s created for user %s, bed %s", booking.ID, actorID, booking.BedID)
	return converter.BookingToResponse(booking), nil
}

// canSee implements the role scoping for reads: students see their own
// bookings, owners see bookings of their hostels, admins see everything.
func (u *bookingUsecase) canSee(db *gorm.DB, booking *entity.Booking, actorID uuid.UUID, actorRole int) (bool, error) {
	if actorRole == entity.RoleIDAdmin || actorRole == entity.RoleIDStaff {
		return true, nil
	}
	if booking.UserID == actorID {
		return true, nil
	}
	if actorRole == entity.RoleIDOwner {
		hostel, err := u.hostelRepo.FindByID(db, booking.HostelID)
		if err != nil {
			return false, err
		}
		return hostel != nil && hostel.IsOwnedBy(actorID), nil
	}
	return false, nil
}

func (u *bookingUsecase) GetByID(ctx context.Context, actorID uuid.UUID, actorRole int, id uuid.UUID) (*dto.BookingResponse, error) {
	db := u.db.WithContext(ctx)

	booking, err := u.bookingRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find booking by ID: %+v", err)
		return nil, err
	}
	if booking == nil {
		return nil, service.ErrBookingNotFound
	}

	allowed, err := u.canSee(db, booking, actorID, actorRole)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, ErrBookingForbidden
	}

	return converter.BookingToResponse(booking), nil
}

func (u *bookingUsecase) List(ctx context.Context, actorID uuid.UUID, actorRole int, query BookingListQuery) (*dto.BookingListResponse, error) {
	db := u.db.WithContext(ctx)

	filter := repository.BookingFilter{
		Status:   entity.BookingStatus(query.Status),
		Active:   query.Active,
		Upcoming: query.Upcoming,
	}

	switch actorRole {
	case entity.RoleIDAdmin, entity.RoleIDStaff:
		if query.HostelID != nil {
			filter.HostelIDs = []uuid.UUID{*query.HostelID}
		}
	case entity.RoleIDOwner:
		hostels, err := u.hostelRepo.FindByOwnerID(db, actorID)
		if err != nil {
			return nil, err
		}
		if len(hostels) == 0 {
			return &dto.BookingListResponse{Bookings: []dto.BookingResponse{}}, nil
		}
		for _, hostel := range hostels {
			if query.HostelID != nil && hostel.ID != *query.HostelID {
				continue
			}
			filter.HostelIDs = append(filter.HostelIDs, hostel.ID)
		}
		if len(filter.HostelIDs) == 0 {
			return &dto.BookingListResponse{Bookings: []dto.BookingResponse{}}, nil
		}
	default:
		filter.UserID = &actorID
	}

	bookings, err := u.bookingRepo.FindAll(db, filter)
	if err != nil {
		u.log.Warnf("Failed to list bookings: %+v", err)
		return nil, err
	}

	return &dto.BookingListResponse{
		Bookings: converter.BookingsToResponses(bookings),
		Total:    len(bookings),
	}, nil
}

// loadManagedBooking loads a booking FOR UPDATE and enforces the
// owner-or-admin check used by lifecycle operations.
func (u *bookingUsecase) loadManagedBooking(tx *gorm.DB, id, actorID uuid.UUID, actorRole int) (*entity.Booking, error) {
	booking, err := u.bookingRepo.FindByIDForUpdate(tx, id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, service.ErrBookingNotFound
	}

	if actorRole == entity.RoleIDAdmin || actorRole == entity.RoleIDStaff {
		return booking, nil
	}
	hostel, err := u.hostelRepo.FindByID(tx, booking.HostelID)
	if err != nil {
		return nil, err
	}
	if hostel == nil || !hostel.IsOwnedBy(actorID) {
		return nil, ErrBookingForbidden
	}
	return booking, nil
}

func (u *bookingUsecase) Confirm(ctx context.Context, actorID uuid.UUID, actorRole int, id uuid.UUID) (*dto.BookingResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	booking, err := u.loadManagedBooking(tx, id, actorID, actorRole)
	if err != nil {
		return nil, err
	}
	if !booking.CanTransitionTo(entity.BookingStatusConfirmed) {
		return nil, ErrInvalidBookingTransition
	}

	booking.Confirm()
	if err := u.bookingRepo.Save(tx, booking); err != nil {
		u.log.Warnf("Failed to save booking: %+v", err)
		return nil, err
	}

	u.audit.LogUpdate(ctx, tx, &actorID, entity.AuditActionBookingConfirm, "booking", booking.ID.String(),
		entity.JSON{"status": entity.BookingStatusPending}, entity.JSON{"status": booking.Status})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.BookingToResponse(booking), nil
}

func (u *bookingUsecase) CheckIn(ctx context.Context, actorID uuid.UUID, actorRole int, id uuid.UUID) (*dto.CheckInResponse, error) {
	if err := u.requireManagement(ctx, id, actorID, actorRole); err != nil {
		return nil, err
	}

	result, err := u.coordinator.CheckIn(ctx, id, actorID)
	if err != nil {
		return nil, err
	}
	return converter.CheckInResultToResponse(result), nil
}

func (u *bookingUsecase) CheckOut(ctx context.Context, actorID uuid.UUID, actorRole int, id uuid.UUID, req *dto.CheckOutBookingRequest) (*dto.CheckOutResponse, error) {
	if err := u.requireManagement(ctx, id, actorID, actorRole); err != nil {
		return nil, err
	}

	result, err := u.coordinator.CheckOut(ctx, id, actorID, req.Damages, req.Notes)
	if err != nil {
		return nil, err
	}
	return converter.CheckOutResultToResponse(result), nil
}

// requireManagement is the pre-flight permission check for the coordinator
// operations, done outside their transaction.
func (u *bookingUsecase) requireManagement(ctx context.Context, id, actorID uuid.UUID, actorRole int) error {
	if actorRole == entity.RoleIDAdmin || actorRole == entity.RoleIDStaff {
		return nil
	}

	db := u.db.WithContext(ctx)
	booking, err := u.bookingRepo.FindByID(db, id)
	if err != nil {
		return err
	}
	if booking == nil {
		return service.ErrBookingNotFound
	}
	hostel, err := u.hostelRepo.FindByID(db, booking.HostelID)
	if err != nil {
		return err
	}
	if hostel == nil || !hostel.IsOwnedBy(actorID) {
		return ErrBookingForbidden
	}
	return nil
}

// releaseHold frees the bed hold taken at booking creation, if it is still
// held for this booking's user.
func (u *bookingUsecase) releaseHold(tx *gorm.DB, booking *entity.Booking) error {
	room, err := u.roomRepo.FindByIDForUpdate(tx, booking.RoomID)
	if err != nil {
		return err
	}
	if room == nil {
		return nil
	}
	bed := room.FindBedByID(booking.BedID)
	if bed == nil || bed.Status != entity.BedStatusReserved {
		return nil
	}
	if bed.HeldBy == nil || *bed.HeldBy != booking.UserID {
		return nil
	}

	if _, err := room.CancelBedReservation(bed.BedNumber); err != nil {
		return err
	}
	return u.roomRepo.Save(tx, room)
}

func (u *bookingUsecase) Cancel(ctx context.Context, actorID uuid.UUID, actorRole int, id uuid.UUID, req *dto.CancelBookingRequest) (*dto.BookingResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	booking, err := u.bookingRepo.FindByIDForUpdate(tx, id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, service.ErrBookingNotFound
	}

	// The booking user may cancel their own; otherwise owner or admin
	if booking.UserID != actorID {
		allowed, err := u.canSee(tx, booking, actorID, actorRole)
		if err != nil {
			return nil, err
		}
		if !allowed || actorRole == entity.RoleIDStudent {
			return nil, ErrBookingForbidden
		}
	}

	if !booking.CanTransitionTo(entity.BookingStatusCancelled) {
		return nil, ErrInvalidBookingTransition
	}

	if err := u.releaseHold(tx, booking); err != nil {
		u.log.Warnf("Failed to release bed hold: %+v", err)
		return nil, err
	}

	oldStatus := booking.Status
	booking.Cancel(actorID, req.Reason, time.Now())
	if err := u.bookingRepo.Save(tx, booking); err != nil {
		u.log.Warnf("Failed to save booking: %+v", err)
		return nil, err
	}

	u.audit.LogUpdate(ctx, tx, &actorID, entity.AuditActionBookingCancel, "booking", booking.ID.String(),
		entity.JSON{"status": oldStatus}, entity.JSON{"status": booking.Status, "reason": req.Reason})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.BookingToResponse(booking), nil
}

// Complete closes out a checked-out booking once the deposit settlement is
// done. The terminal state for a stay that ran its full course.
func (u *bookingUsecase) Complete(ctx context.Context, actorID uuid.UUID, actorRole int, id uuid.UUID) (*dto.BookingResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	booking, err := u.loadManagedBooking(tx, id, actorID, actorRole)
	if err != nil {
		return nil, err
	}
	if !booking.CanTransitionTo(entity.BookingStatusCompleted) {
		return nil, ErrInvalidBookingTransition
	}

	booking.Status = entity.BookingStatusCompleted
	booking.RecomputeCanReview(time.Now())
	if err := u.bookingRepo.Save(tx, booking); err != nil {
		u.log.Warnf("Failed to save booking: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.BookingToResponse(booking), nil
}

func (u *bookingUsecase) MarkNoShow(ctx context.Context, actorID uuid.UUID, actorRole int, id uuid.UUID) (*dto.BookingResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	booking, err := u.loadManagedBooking(tx, id, actorID, actorRole)
	if err != nil {
		return nil, err
	}
	if !booking.CanTransitionTo(entity.BookingStatusNoShow) {
		return nil, ErrInvalidBookingTransition
	}

	if err := u.releaseHold(tx, booking); err != nil {
		u.log.Warnf("Failed to release bed hold: %+v", err)
		return nil, err
	}

	booking.Status = entity.BookingStatusNoShow
	if err := u.bookingRepo.Save(tx, booking); err != nil {
		u.log.Warnf("Failed to save booking: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.BookingToResponse(booking), nil
}

func (u *bookingUsecase) Update(ctx context.Context, actorID uuid.UUID, actorRole int, id uuid.UUID, req *dto.UpdateBookingRequest) (*dto.BookingResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	booking, err := u.bookingRepo.FindByIDForUpdate(tx, id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, service.ErrBookingNotFound
	}

	isOwnBooking := booking.UserID == actorID
	isManager := actorRole == entity.RoleIDAdmin || actorRole == entity.RoleIDStaff
	if !isManager && actorRole == entity.RoleIDOwner {
		hostel, err := u.hostelRepo.FindByID(tx, booking.HostelID)
		if err != nil {
			return nil, err
		}
		isManager = hostel != nil && hostel.IsOwnedBy(actorID)
	}
	if !isOwnBooking && !isManager {
		return nil, ErrBookingForbidden
	}
	// Terminal bookings are frozen for everyone but admins, who may still
	// correct records
	if booking.IsTerminal() && actorRole != entity.RoleIDAdmin {
		return nil, ErrBookingNotEditable
	}

	// Fields any booking holder may edit before check-out
	if req.EmergencyContact != nil {
		booking.EmergencyContact = entity.EmergencyContact{
			Name:         req.EmergencyContact.Name,
			Relationship: req.EmergencyContact.Relationship,
			Phone:        req.EmergencyContact.Phone,
		}
	}
	if req.Notes != nil {
		booking.Notes = *req.Notes
	}

	// Date and financial fields: the booking holder may still move the
	// check-in date while pending, everything else needs management rights.
	// Once checked in, only admins may touch them.
	if req.CheckInDate != nil || req.CheckOutDate != nil || req.DurationMonths != nil ||
		req.AdvanceAmount != nil || req.DepositPaid != nil {
		holderDateMove := isOwnBooking && booking.Status == entity.BookingStatusPending &&
			req.CheckOutDate == nil && req.DurationMonths == nil &&
			req.AdvanceAmount == nil && req.DepositPaid == nil
		if !isManager && !holderDateMove {
			return nil, ErrBookingForbidden
		}
		if booking.Status == entity.BookingStatusCheckedIn && actorRole != entity.RoleIDAdmin {
			return nil, ErrBookingNotEditable
		}

		if req.CheckInDate != nil {
			checkIn, err := time.Parse("2006-01-02", *req.CheckInDate)
			if err != nil {
				return nil, ErrInvalidDateFormat
			}
			booking.CheckInDate = checkIn
			booking.CheckOutDate = checkIn.AddDate(0, booking.DurationMonths, 0)
		}
		if req.DurationMonths != nil {
			booking.CheckOutDate = booking.CheckInDate.AddDate(0, *req.DurationMonths, 0)
			booking.ComputeFinancials(booking.RentAmount, *req.DurationMonths)
		}
		if req.CheckOutDate != nil {
			checkOut, err := time.Parse("2006-01-02", *req.CheckOutDate)
			if err != nil {
				return nil, ErrInvalidDateFormat
			}
			booking.CheckOutDate = checkOut
		}
		if req.AdvanceAmount != nil {
			booking.AdvanceAmount = *req.AdvanceAmount
		}
		if req.DepositPaid != nil {
			booking.DepositPaid = *req.DepositPaid
		}
		booking.RecomputePending()
	}

	booking.RecomputeCanReview(time.Now())
	if err := u.bookingRepo.Save(tx, booking); err != nil {
		u.log.Warnf("Failed to save booking: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.BookingToResponse(booking), nil
}

func (u *bookingUsecase) AddDocument(ctx context.Context, actorID uuid.UUID, actorRole int, id uuid.UUID, req *dto.AddBookingDocumentRequest) (*dto.BookingResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	booking, err := u.bookingRepo.FindByIDForUpdate(tx, id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, service.ErrBookingNotFound
	}
	if booking.UserID != actorID {
		allowed, err := u.canSee(tx, booking, actorID, actorRole)
		if err != nil {
			return nil, err
		}
		if !allowed {
			return nil, ErrBookingForbidden
		}
	}
	if booking.IsTerminal() {
		return nil, ErrBookingNotEditable
	}

	booking.Documents = append(booking.Documents, entity.Document{
		Type:       req.Type,
		URL:        req.URL,
		UploadedAt: time.Now(),
	})

	if err := u.bookingRepo.Save(tx, booking); err != nil {
		u.log.Warnf("Failed to save booking: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.BookingToResponse(booking), nil
}

func (u *bookingUsecase) Delete(ctx context.Context, actorID uuid.UUID, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	booking, err := u.bookingRepo.FindByIDForUpdate(tx, id)
	if err != nil {
		return err
	}
	if booking == nil {
		return service.ErrBookingNotFound
	}
	if booking.Status == entity.BookingStatusCheckedIn {
		return ErrBookingNotDeletable
	}

	if booking.IsActive() {
		if err := u.releaseHold(tx, booking); err != nil {
			u.log.Warnf("Failed to release bed hold: %+v", err)
			return err
		}
	}

	if err := u.bookingRepo.Delete(tx, booking); err != nil {
		u.log.Warnf("Failed to delete booking: %+v", err)
		return err
	}

	u.audit.LogDelete(ctx, tx, &actorID, entity.AuditActionBookingDelete, "booking", booking.ID.String(),
		entity.JSON{"status": booking.Status, "user_id": booking.UserID})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *bookingUsecase) Stats(ctx context.Context, actorID uuid.UUID, actorRole int) (*dto.BookingStatsResponse, error) {
	db := u.db.WithContext(ctx)

	var hostelIDs []uuid.UUID
	if actorRole == entity.RoleIDOwner {
		hostels, err := u.hostelRepo.FindByOwnerID(db, actorID)
		if err != nil {
			return nil, err
		}
		if len(hostels) == 0 {
			return &dto.BookingStatsResponse{ByStatus: []dto.BookingStatusStat{}}, nil
		}
		for _, hostel := range hostels {
			hostelIDs = append(hostelIDs, hostel.ID)
		}
	}

	counts, err := u.bookingRepo.CountByStatus(db, hostelIDs)
	if err != nil {
		u.log.Warnf("Failed to count bookings by status: %+v", err)
		return nil, err
	}

	stats := &dto.BookingStatsResponse{ByStatus: make([]dto.BookingStatusStat, len(counts))}
	for i, count := range counts {
		stats.ByStatus[i] = dto.BookingStatusStat{
			Status:       string(count.Status),
			Count:        count.Count,
			TotalRevenue: count.TotalRevenue,
		}
		stats.Total += count.Count
	}
	return stats, nil
}
