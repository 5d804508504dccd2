package service

import (
	"context"
	"errors"
	"time"

	"hostelhub/internal/domain/entity"
	"hostelhub/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrBookingNotFound    = errors.New("booking not found")
	ErrRoomNotFound       = errors.New("room not found")
	ErrCheckInNotAllowed  = errors.New("booking cannot be checked in from its current status")
	ErrCheckOutNotAllowed = errors.New("booking cannot be checked out from its current status")
)

// CheckInResult carries everything the handler needs to report a check-in.
// ConversionNote is set when the booking transition succeeded but the
// student record could not be created fresh.
type CheckInResult struct {
	Booking        *entity.Booking
	Student        *entity.Student
	Bed            *entity.Bed
	ConversionNote string
}

// CheckOutResult carries the refund computation and the occupant snapshot
// taken off the bed.
type CheckOutResult struct {
	Booking          *entity.Booking
	Student          *entity.Student
	PreviousOccupant entity.BedOccupant
	SecurityDeposit  decimal.Decimal
	Damages          decimal.Decimal
	RefundAmount     decimal.Decimal
}

// OccupancyCoordinator owns the multi-entity transitions: booking status,
// bed occupancy and the student record move together in one transaction,
// serialized per room by the row lock taken in FindByIDForUpdate.
type OccupancyCoordinator struct {
	db          *gorm.DB
	log         *logrus.Logger
	roomRepo    repository.RoomRepository
	bookingRepo repository.BookingRepository
	studentRepo repository.StudentRepository
	userRepo    repository.UserRepository
	conversion  *StudentConversionService
	audit       AuditService
}

func NewOccupancyCoordinator(
	db *gorm.DB,
	log *logrus.Logger,
	roomRepo repository.RoomRepository,
	bookingRepo repository.BookingRepository,
	studentRepo repository.StudentRepository,
	userRepo repository.UserRepository,
	conversion *StudentConversionService,
	audit AuditService,
) *OccupancyCoordinator {
	return &OccupancyCoordinator{
		db:          db,
		log:         log,
		roomRepo:    roomRepo,
		bookingRepo: bookingRepo,
		studentRepo: studentRepo,
		userRepo:    userRepo,
		conversion:  conversion,
		audit:       audit,
	}
}

// Assign occupies a bed inside the caller's transaction. The room must not
// have been loaded by the caller already; the lock is taken here.
func (c *OccupancyCoordinator) Assign(tx *gorm.DB, roomID uuid.UUID, bedNumber string, occupant entity.BedOccupant) (*entity.Room, *entity.Bed, error) {
	room, err := c.roomRepo.FindByIDForUpdate(tx, roomID)
	if err != nil {
		return nil, nil, err
	}
	if room == nil {
		return nil, nil, ErrRoomNotFound
	}

	bed := room.FindBed(bedNumber)
	if bed == nil {
		return nil, nil, entity.ErrBedNotFound
	}
	if bed.Status == entity.BedStatusReserved && bed.HeldBy != nil &&
		(occupant.UserID == nil || *bed.HeldBy != *occupant.UserID) {
		return nil, nil, entity.ErrBedAlreadyReserved
	}

	bed, err = room.AssignBed(bedNumber, occupant)
	if err != nil {
		return nil, nil, err
	}

	if err := c.roomRepo.Save(tx, room); err != nil {
		return nil, nil, err
	}
	return room, bed, nil
}

// Vacate frees a bed inside the caller's transaction and returns the
// previous occupant snapshot.
func (c *OccupancyCoordinator) Vacate(tx *gorm.DB, roomID uuid.UUID, bedNumber string) (entity.BedOccupant, *entity.Bed, error) {
	room, err := c.roomRepo.FindByIDForUpdate(tx, roomID)
	if err != nil {
		return entity.BedOccupant{}, nil, err
	}
	if room == nil {
		return entity.BedOccupant{}, nil, ErrRoomNotFound
	}

	prev, bed, err := room.VacateBed(bedNumber)
	if err != nil {
		return entity.BedOccupant{}, nil, err
	}

	if err := c.roomRepo.Save(tx, room); err != nil {
		return entity.BedOccupant{}, nil, err
	}
	return prev, bed, nil
}

// CheckIn advances the booking to checkedIn, occupies its bed and
// materializes the student record, all in one transaction. A conversion
// that fails only because the student already exists does not block the
// check-in; the condition is reported back instead.
func (c *OccupancyCoordinator) CheckIn(ctx context.Context, bookingID, actorID uuid.UUID) (*CheckInResult, error) {
	result := &CheckInResult{}

	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		booking, err := c.bookingRepo.FindByIDForUpdate(tx, bookingID)
		if err != nil {
			return err
		}
		if booking == nil {
			return ErrBookingNotFound
		}
		if !booking.CanTransitionTo(entity.BookingStatusCheckedIn) {
			return ErrCheckInNotAllowed
		}

		room, err := c.roomRepo.FindByIDForUpdate(tx, booking.RoomID)
		if err != nil {
			return err
		}
		if room == nil {
			return ErrRoomNotFound
		}
		bed := room.FindBedByID(booking.BedID)
		if bed == nil {
			return entity.ErrBedNotFound
		}
		if bed.Status == entity.BedStatusReserved && bed.HeldBy != nil && *bed.HeldBy != booking.UserID {
			return entity.ErrBedAlreadyReserved
		}

		user, err := c.userRepo.FindByID(tx, booking.UserID)
		if err != nil {
			return err
		}
		if user == nil {
			return ErrBookingUserGone
		}

		now := time.Now()
		oldStatus := booking.Status
		booking.Status = entity.BookingStatusCheckedIn
		booking.ActualCheckIn = &now

		student, convErr := c.conversion.Materialize(tx, booking)
		if convErr != nil {
			if !errors.Is(convErr, ErrAlreadyConverted) {
				return convErr
			}
			result.ConversionNote = "student record already exists for this booking"
			c.log.Warnf("Check-in for booking %s: %s", booking.ID, result.ConversionNote)
			if booking.StudentID != nil {
				student, _ = c.studentRepo.FindByID(tx, *booking.StudentID)
			}
		} else {
			c.audit.LogCreate(ctx, tx, &actorID, entity.AuditActionStudentMaterialize, "student", student.ID.String(),
				entity.JSON{"booking_id": booking.ID, "student_code": student.StudentCode})
		}

		occupant := entity.BedOccupant{
			UserID:       &booking.UserID,
			StudentName:  user.FullName,
			StudentPhone: user.Phone,
			StudentEmail: user.Email,
			CheckInDate:  now,
		}
		if student != nil {
			occupant.StudentCode = student.StudentCode
		}

		bed, err = room.AssignBed(bed.BedNumber, occupant)
		if err != nil {
			return err
		}
		if err := c.roomRepo.Save(tx, room); err != nil {
			return err
		}

		booking.RecomputeCanReview(now)
		if err := c.bookingRepo.Save(tx, booking); err != nil {
			return err
		}

		c.audit.LogUpdate(ctx, tx, &actorID, entity.AuditActionBookingCheckIn, "booking", booking.ID.String(),
			entity.JSON{"status": oldStatus},
			entity.JSON{"status": booking.Status, "bed_id": booking.BedID, "student_id": booking.StudentID})

		result.Booking = booking
		result.Student = student
		result.Bed = bed
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.log.Infof("Booking %s checked in by %s", bookingID, actorID)
	return result, nil
}

// CheckOut advances the booking to checkedOut, frees its bed, marks the
// student record checked out and computes the deposit refund, all in one
// transaction.
func (c *OccupancyCoordinator) CheckOut(ctx context.Context, bookingID, actorID uuid.UUID, damages decimal.Decimal, notes string) (*CheckOutResult, error) {
	result := &CheckOutResult{}

	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		booking, err := c.bookingRepo.FindByIDForUpdate(tx, bookingID)
		if err != nil {
			return err
		}
		if booking == nil {
			return ErrBookingNotFound
		}
		if !booking.CanTransitionTo(entity.BookingStatusCheckedOut) {
			return ErrCheckOutNotAllowed
		}

		room, err := c.roomRepo.FindByIDForUpdate(tx, booking.RoomID)
		if err != nil {
			return err
		}
		if room == nil {
			return ErrRoomNotFound
		}
		bed := room.FindBedByID(booking.BedID)
		if bed == nil {
			return entity.ErrBedNotFound
		}

		prev, _, err := room.VacateBed(bed.BedNumber)
		if err != nil {
			return err
		}
		if err := c.roomRepo.Save(tx, room); err != nil {
			return err
		}

		if booking.StudentID != nil {
			student, err := c.conversion.CheckOutStudent(tx, *booking.StudentID)
			if err != nil {
				if !errors.Is(err, ErrStudentNotFound) {
					return err
				}
				c.log.Warnf("Check-out for booking %s: linked student %s no longer exists", booking.ID, *booking.StudentID)
			}
			result.Student = student
		}

		now := time.Now()
		oldStatus := booking.Status
		booking.Status = entity.BookingStatusCheckedOut
		booking.ActualCheckOut = &now
		if notes != "" {
			booking.Notes = notes
		}
		booking.RecomputeCanReview(now)
		if err := c.bookingRepo.Save(tx, booking); err != nil {
			return err
		}

		refund := booking.RefundOnCheckOut(damages)
		c.audit.LogUpdate(ctx, tx, &actorID, entity.AuditActionBookingCheckOut, "booking", booking.ID.String(),
			entity.JSON{"status": oldStatus},
			entity.JSON{"status": booking.Status, "refund_amount": refund.String(), "damages": damages.String()})

		result.Booking = booking
		result.PreviousOccupant = prev
		result.SecurityDeposit = booking.SecurityDeposit
		result.Damages = damages
		result.RefundAmount = refund
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.log.Infof("Booking %s checked out by %s, refund %s", bookingID, actorID, result.RefundAmount)
	return result, nil
}
