package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"hostelhub/internal/delivery/dto"
	"hostelhub/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type bookingUsecaseFixture struct {
	usecase  BookingUsecase
	mock     sqlmock.Sqlmock
	booking  *entity.Booking
	holderID uuid.UUID
	ownerID  uuid.UUID
}

func newBookingUsecaseFixture(t *testing.T, status entity.BookingStatus) *bookingUsecaseFixture {
	t.Helper()

	holderID := uuid.New()
	ownerID := uuid.New()
	hostelID := uuid.New()

	booking := &entity.Booking{
		ID:           uuid.New(),
		UserID:       holderID,
		HostelID:     hostelID,
		RoomID:       uuid.New(),
		BedID:        uuid.New(),
		Status:       status,
		CheckInDate:  time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	}
	booking.ComputeFinancials(decimal.NewFromInt(3000), 6)

	rooms := &roomRepoStub{}
	hostels := &hostelRepoStub{hostel: &entity.Hostel{ID: hostelID, OwnerID: ownerID}}
	users := &userRepoStub{}
	bookings := &bookingRepoStub{booking: booking}

	log := newTestLogger()
	db, mock := newTestDB(t)
	coordinator := newTestCoordinator(db, log, rooms, bookings, users)
	bookingUsecase := NewBookingUsecase(db, log, bookings, rooms, hostels, coordinator, auditStub{})

	return &bookingUsecaseFixture{
		usecase:  bookingUsecase,
		mock:     mock,
		booking:  booking,
		holderID: holderID,
		ownerID:  ownerID,
	}
}

func strPtr(s string) *string { return &s }

func TestUpdateHolderMovesCheckInDateWhilePending(t *testing.T) {
	f := newBookingUsecaseFixture(t, entity.BookingStatusPending)
	f.mock.ExpectBegin()
	f.mock.ExpectCommit()

	req := &dto.UpdateBookingRequest{CheckInDate: strPtr("2026-10-01")}
	_, err := f.usecase.Update(context.Background(), f.holderID, entity.RoleIDStudent, f.booking.ID, req)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	wantIn := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	if !f.booking.CheckInDate.Equal(wantIn) {
		t.Errorf("CheckInDate = %s, want %s", f.booking.CheckInDate, wantIn)
	}
	wantOut := wantIn.AddDate(0, f.booking.DurationMonths, 0)
	if !f.booking.CheckOutDate.Equal(wantOut) {
		t.Errorf("CheckOutDate = %s, want %s", f.booking.CheckOutDate, wantOut)
	}
	if err := f.mock.ExpectationsWereMet(); err != nil {
		t.Errorf("transaction boundaries: %v", err)
	}
}

func TestUpdateHolderCannotTouchFinancialFields(t *testing.T) {
	f := newBookingUsecaseFixture(t, entity.BookingStatusPending)
	f.mock.ExpectBegin()
	f.mock.ExpectRollback()

	months := 12
	req := &dto.UpdateBookingRequest{DurationMonths: &months}
	_, err := f.usecase.Update(context.Background(), f.holderID, entity.RoleIDStudent, f.booking.ID, req)
	if !errors.Is(err, ErrBookingForbidden) {
		t.Fatalf("Update error = %v, want ErrBookingForbidden", err)
	}
	if f.booking.DurationMonths != 6 {
		t.Errorf("DurationMonths = %d, want unchanged 6", f.booking.DurationMonths)
	}
}

func TestUpdateProtectedFieldsAfterCheckIn(t *testing.T) {
	t.Run("hostel owner rejected", func(t *testing.T) {
		f := newBookingUsecaseFixture(t, entity.BookingStatusCheckedIn)
		f.mock.ExpectBegin()
		f.mock.ExpectRollback()

		advance := decimal.NewFromInt(5000)
		req := &dto.UpdateBookingRequest{AdvanceAmount: &advance}
		_, err := f.usecase.Update(context.Background(), f.ownerID, entity.RoleIDOwner, f.booking.ID, req)
		if !errors.Is(err, ErrBookingNotEditable) {
			t.Fatalf("Update error = %v, want ErrBookingNotEditable", err)
		}
	})

	t.Run("admin allowed", func(t *testing.T) {
		f := newBookingUsecaseFixture(t, entity.BookingStatusCheckedIn)
		f.mock.ExpectBegin()
		f.mock.ExpectCommit()

		advance := decimal.NewFromInt(5000)
		req := &dto.UpdateBookingRequest{AdvanceAmount: &advance}
		_, err := f.usecase.Update(context.Background(), uuid.New(), entity.RoleIDAdmin, f.booking.ID, req)
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if !f.booking.AdvanceAmount.Equal(advance) {
			t.Errorf("AdvanceAmount = %s, want 5000", f.booking.AdvanceAmount)
		}
		// 18000 + 3000 - 5000
		if !f.booking.PendingAmount.Equal(decimal.NewFromInt(16000)) {
			t.Errorf("PendingAmount = %s, want 16000", f.booking.PendingAmount)
		}
		if err := f.mock.ExpectationsWereMet(); err != nil {
			t.Errorf("transaction boundaries: %v", err)
		}
	})
}

func TestAddDocumentRejectsTerminalBooking(t *testing.T) {
	f := newBookingUsecaseFixture(t, entity.BookingStatusCancelled)
	f.mock.ExpectBegin()
	f.mock.ExpectRollback()

	req := &dto.AddBookingDocumentRequest{Type: "id-proof", URL: "https://example.com/doc.pdf"}
	_, err := f.usecase.AddDocument(context.Background(), f.holderID, entity.RoleIDStudent, f.booking.ID, req)
	if !errors.Is(err, ErrBookingNotEditable) {
		t.Fatalf("AddDocument error = %v, want ErrBookingNotEditable", err)
	}
	if len(f.booking.Documents) != 0 {
		t.Errorf("Documents = %d entries, want none", len(f.booking.Documents))
	}
}

func TestCompleteClosesOutCheckedOutBooking(t *testing.T) {
	f := newBookingUsecaseFixture(t, entity.BookingStatusCheckedOut)
	f.mock.ExpectBegin()
	f.mock.ExpectCommit()

	_, err := f.usecase.Complete(context.Background(), uuid.New(), entity.RoleIDAdmin, f.booking.ID)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if f.booking.Status != entity.BookingStatusCompleted {
		t.Errorf("Status = %s, want completed", f.booking.Status)
	}
	if err := f.mock.ExpectationsWereMet(); err != nil {
		t.Errorf("transaction boundaries: %v", err)
	}
}

func TestCompleteRejectsActiveBooking(t *testing.T) {
	f := newBookingUsecaseFixture(t, entity.BookingStatusConfirmed)
	f.mock.ExpectBegin()
	f.mock.ExpectRollback()

	_, err := f.usecase.Complete(context.Background(), uuid.New(), entity.RoleIDAdmin, f.booking.ID)
	if !errors.Is(err, ErrInvalidBookingTransition) {
		t.Fatalf("Complete error = %v, want ErrInvalidBookingTransition", err)
	}
	if f.booking.Status != entity.BookingStatusConfirmed {
		t.Errorf("Status = %s, want unchanged confirmed", f.booking.Status)
	}
}
