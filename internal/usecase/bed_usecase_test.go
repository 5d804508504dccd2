package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"hostelhub/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type bedUsecaseFixture struct {
	usecase  BedUsecase
	mock     sqlmock.Sqlmock
	bookings *bookingRepoStub
	room     *entity.Room
	bedID    uuid.UUID
	ownerID  uuid.UUID
}

func newBedUsecaseFixture(t *testing.T) *bedUsecaseFixture {
	t.Helper()

	roomID := uuid.New()
	bedID := uuid.New()
	hostelID := uuid.New()
	ownerID := uuid.New()
	occupantID := uuid.New()
	checkIn := time.Now().AddDate(0, -1, 0)

	room := &entity.Room{
		ID:       roomID,
		HostelID: hostelID,
		Capacity: 2,
		Beds: []entity.Bed{{
			ID:                bedID,
			RoomID:            roomID,
			BedNumber:         "A1",
			IsOccupied:        true,
			Status:            entity.BedStatusOccupied,
			CurrentOccupantID: &occupantID,
			StudentCode:       "STU-1-TEST1",
			StudentName:       "Asha Verma",
			CheckInDate:       &checkIn,
			RentAmount:        decimal.NewFromInt(3000),
		}},
	}
	room.Recompute()

	rooms := &roomRepoStub{room: room}
	hostels := &hostelRepoStub{hostel: &entity.Hostel{ID: hostelID, OwnerID: ownerID}}
	users := &userRepoStub{}
	bookings := &bookingRepoStub{}

	log := newTestLogger()
	db, mock := newTestDB(t)
	coordinator := newTestCoordinator(db, log, rooms, bookings, users)
	bedUsecase := NewBedUsecase(db, log, rooms, hostels, users, bookings, coordinator, auditStub{})

	return &bedUsecaseFixture{
		usecase:  bedUsecase,
		mock:     mock,
		bookings: bookings,
		room:     room,
		bedID:    bedID,
		ownerID:  ownerID,
	}
}

func TestVacateRejectsBedHeldByCheckedInBooking(t *testing.T) {
	f := newBedUsecaseFixture(t)
	f.bookings.checkedIn = &entity.Booking{
		ID:     uuid.New(),
		BedID:  f.bedID,
		Status: entity.BookingStatusCheckedIn,
	}

	f.mock.ExpectBegin()
	f.mock.ExpectRollback()

	_, err := f.usecase.Vacate(context.Background(), f.ownerID, entity.RoleIDOwner, f.room.ID, "A1")
	if !errors.Is(err, ErrBedHasActiveBooking) {
		t.Fatalf("Vacate error = %v, want ErrBedHasActiveBooking", err)
	}

	bed := f.room.FindBedByID(f.bedID)
	if !bed.IsOccupied || bed.Status != entity.BedStatusOccupied {
		t.Errorf("bed = occupied=%v status=%s, want still occupied", bed.IsOccupied, bed.Status)
	}
	if err := f.mock.ExpectationsWereMet(); err != nil {
		t.Errorf("transaction boundaries: %v", err)
	}
}

func TestVacateFreesBedWithoutLinkedBooking(t *testing.T) {
	f := newBedUsecaseFixture(t)

	f.mock.ExpectBegin()
	f.mock.ExpectCommit()

	resp, err := f.usecase.Vacate(context.Background(), f.ownerID, entity.RoleIDOwner, f.room.ID, "A1")
	if err != nil {
		t.Fatalf("Vacate: %v", err)
	}

	bed := f.room.FindBedByID(f.bedID)
	if bed.IsOccupied || bed.Status != entity.BedStatusAvailable {
		t.Errorf("bed = occupied=%v status=%s, want available", bed.IsOccupied, bed.Status)
	}
	if f.room.CurrentOccupancy != 0 {
		t.Errorf("room occupancy = %d, want 0", f.room.CurrentOccupancy)
	}
	if resp.PreviousOccupant.StudentCode != "STU-1-TEST1" {
		t.Errorf("previous occupant code = %q, want STU-1-TEST1", resp.PreviousOccupant.StudentCode)
	}
	if err := f.mock.ExpectationsWereMet(); err != nil {
		t.Errorf("transaction boundaries: %v", err)
	}
}
