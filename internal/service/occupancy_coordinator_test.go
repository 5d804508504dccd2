package service

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"hostelhub/internal/domain/entity"
	domainRepo "hostelhub/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB backs gorm with a sqlmock connection so the transaction
// boundaries (BEGIN/COMMIT/ROLLBACK) are observable without a database.
// All reads and writes go through the stub repositories.
func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: conn, PreferSimpleProtocol: true}), &gorm.Config{
		Logger: gormlogger.Discard,
	})
	if err != nil {
		t.Fatalf("gorm.Open: %v", err)
	}
	return db, mock
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type roomRepoStub struct {
	room    *entity.Room
	saveErr error
	saves   int
}

func (s *roomRepoStub) Create(db *gorm.DB, room *entity.Room) error { return nil }
func (s *roomRepoStub) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Room, error) {
	return s.room, nil
}
func (s *roomRepoStub) FindByIDForUpdate(db *gorm.DB, id uuid.UUID) (*entity.Room, error) {
	return s.room, nil
}
func (s *roomRepoStub) FindByHostelID(db *gorm.DB, hostelID uuid.UUID) ([]entity.Room, error) {
	return nil, nil
}
func (s *roomRepoStub) Save(db *gorm.DB, room *entity.Room) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saves++
	return nil
}
func (s *roomRepoStub) DeleteBed(db *gorm.DB, bedID uuid.UUID) error { return nil }
func (s *roomRepoStub) Delete(db *gorm.DB, room *entity.Room) error { return nil }
func (s *roomRepoStub) ListWithBedsByHostelID(db *gorm.DB, hostelID uuid.UUID) ([]entity.Room, error) {
	return nil, nil
}

type bookingRepoStub struct {
	booking   *entity.Booking
	checkedIn *entity.Booking
	saveErr   error
	saves     int
}

func (s *bookingRepoStub) Create(db *gorm.DB, booking *entity.Booking) error { return nil }
func (s *bookingRepoStub) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Booking, error) {
	return s.booking, nil
}
func (s *bookingRepoStub) FindByIDForUpdate(db *gorm.DB, id uuid.UUID) (*entity.Booking, error) {
	return s.booking, nil
}
func (s *bookingRepoStub) FindAll(db *gorm.DB, filter domainRepo.BookingFilter) ([]entity.Booking, error) {
	return nil, nil
}
func (s *bookingRepoStub) FindActiveByUserAndHostel(db *gorm.DB, userID, hostelID uuid.UUID) (*entity.Booking, error) {
	return nil, nil
}
func (s *bookingRepoStub) FindCheckedInByBed(db *gorm.DB, bedID uuid.UUID) (*entity.Booking, error) {
	return s.checkedIn, nil
}
func (s *bookingRepoStub) Save(db *gorm.DB, booking *entity.Booking) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saves++
	return nil
}
func (s *bookingRepoStub) Delete(db *gorm.DB, booking *entity.Booking) error { return nil }
func (s *bookingRepoStub) CountByStatus(db *gorm.DB, hostelIDs []uuid.UUID) ([]domainRepo.BookingStatusCount, error) {
	return nil, nil
}

type studentRepoStub struct {
	created *entity.Student
}

func (s *studentRepoStub) Create(db *gorm.DB, student *entity.Student) error {
	student.ID = uuid.New()
	s.created = student
	return nil
}
func (s *studentRepoStub) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Student, error) {
	if s.created != nil && s.created.ID == id {
		return s.created, nil
	}
	return nil, nil
}
func (s *studentRepoStub) FindByHostelID(db *gorm.DB, hostelID uuid.UUID) ([]entity.Student, error) {
	return nil, nil
}
func (s *studentRepoStub) FindByBookingRef(db *gorm.DB, bookingID uuid.UUID) (*entity.Student, error) {
	if s.created != nil && s.created.BookingRef != nil && *s.created.BookingRef == bookingID {
		return s.created, nil
	}
	return nil, nil
}
func (s *studentRepoStub) Save(db *gorm.DB, student *entity.Student) error { return nil }

type userRepoStub struct {
	user *entity.User
}

func (s *userRepoStub) Create(db *gorm.DB, user *entity.User) error { return nil }
func (s *userRepoStub) FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error) {
	return s.user, nil
}
func (s *userRepoStub) FindByEmail(db *gorm.DB, email string) (*entity.User, error) {
	return s.user, nil
}
func (s *userRepoStub) Save(db *gorm.DB, user *entity.User) error { return nil }

type auditStub struct{}

func (auditStub) LogCreate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, newValue interface{}) error {
	return nil
}
func (auditStub) LogUpdate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, oldValue, newValue interface{}) error {
	return nil
}
func (auditStub) LogDelete(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, oldValue interface{}) error {
	return nil
}

type coordinatorFixture struct {
	coordinator *OccupancyCoordinator
	mock        sqlmock.Sqlmock
	rooms       *roomRepoStub
	bookings    *bookingRepoStub
	students    *studentRepoStub
	room        *entity.Room
	booking     *entity.Booking
	bedID       uuid.UUID
}

func newCoordinatorFixture(t *testing.T, status entity.BookingStatus) *coordinatorFixture {
	t.Helper()

	roomID := uuid.New()
	bedID := uuid.New()
	hostelID := uuid.New()
	userID := uuid.New()

	room := &entity.Room{
		ID:       roomID,
		HostelID: hostelID,
		Capacity: 2,
		Beds: []entity.Bed{{
			ID:         bedID,
			RoomID:     roomID,
			BedNumber:  "A1",
			Status:     entity.BedStatusAvailable,
			RentAmount: decimal.NewFromInt(3000),
		}},
	}
	booking := &entity.Booking{
		ID:           uuid.New(),
		UserID:       userID,
		HostelID:     hostelID,
		RoomID:       roomID,
		BedID:        bedID,
		Status:       status,
		CheckInDate:  time.Now().AddDate(0, -1, 0),
		CheckOutDate: time.Now().AddDate(0, 5, 0),
	}
	booking.ComputeFinancials(decimal.NewFromInt(3000), 6)

	rooms := &roomRepoStub{room: room}
	bookings := &bookingRepoStub{booking: booking}
	students := &studentRepoStub{}
	users := &userRepoStub{user: &entity.User{
		ID:       userID,
		FullName: "Asha Verma",
		Email:    "asha@example.com",
		Phone:    "9876500001",
	}}

	log := newTestLogger()
	db, mock := newTestDB(t)
	conversion := NewStudentConversionService(log, students, users, rooms)
	coordinator := NewOccupancyCoordinator(db, log, rooms, bookings, students, users, conversion, auditStub{})

	return &coordinatorFixture{
		coordinator: coordinator,
		mock:        mock,
		rooms:       rooms,
		bookings:    bookings,
		students:    students,
		room:        room,
		booking:     booking,
		bedID:       bedID,
	}
}

func TestCheckInLinksBookingStudentAndBed(t *testing.T) {
	f := newCoordinatorFixture(t, entity.BookingStatusConfirmed)
	f.mock.ExpectBegin()
	f.mock.ExpectCommit()

	result, err := f.coordinator.CheckIn(context.Background(), f.booking.ID, uuid.New())
	if err != nil {
		t.Fatalf("CheckIn: %v", err)
	}

	if result.Booking.Status != entity.BookingStatusCheckedIn {
		t.Errorf("booking status = %s, want checkedIn", result.Booking.Status)
	}
	if result.Booking.ActualCheckIn == nil {
		t.Error("ActualCheckIn not set")
	}
	if result.Student == nil {
		t.Fatal("no student materialized")
	}
	if result.Student.BookingRef == nil || *result.Student.BookingRef != f.booking.ID {
		t.Errorf("student BookingRef = %v, want %s", result.Student.BookingRef, f.booking.ID)
	}
	if f.booking.StudentID == nil || *f.booking.StudentID != result.Student.ID {
		t.Errorf("booking StudentID = %v, want %s", f.booking.StudentID, result.Student.ID)
	}

	bed := f.room.FindBedByID(f.bedID)
	if !bed.IsOccupied || bed.Status != entity.BedStatusOccupied {
		t.Errorf("bed = occupied=%v status=%s, want occupied", bed.IsOccupied, bed.Status)
	}
	if bed.StudentCode != result.Student.StudentCode {
		t.Errorf("bed StudentCode = %q, want %q", bed.StudentCode, result.Student.StudentCode)
	}
	if f.room.CurrentOccupancy != 1 {
		t.Errorf("room occupancy = %d, want 1", f.room.CurrentOccupancy)
	}

	if f.rooms.saves != 1 || f.bookings.saves != 1 {
		t.Errorf("saves: room=%d booking=%d, want 1 each", f.rooms.saves, f.bookings.saves)
	}
	if err := f.mock.ExpectationsWereMet(); err != nil {
		t.Errorf("transaction boundaries: %v", err)
	}
}

func TestCheckInRollsBackWhenBookingSaveFails(t *testing.T) {
	f := newCoordinatorFixture(t, entity.BookingStatusConfirmed)
	f.bookings.saveErr = errors.New("write refused")

	// The bed is assigned and the room saved before the booking write
	// fails; the whole unit must roll back, never commit.
	f.mock.ExpectBegin()
	f.mock.ExpectRollback()

	_, err := f.coordinator.CheckIn(context.Background(), f.booking.ID, uuid.New())
	if err == nil {
		t.Fatal("CheckIn succeeded, want error")
	}
	if f.rooms.saves != 1 {
		t.Errorf("room saves = %d, want 1 before the failure", f.rooms.saves)
	}
	if err := f.mock.ExpectationsWereMet(); err != nil {
		t.Errorf("transaction boundaries: %v", err)
	}
}

func TestCheckOutFreesBedAndStudent(t *testing.T) {
	f := newCoordinatorFixture(t, entity.BookingStatusCheckedIn)

	userID := f.booking.UserID
	studentID := uuid.New()
	f.booking.StudentID = &studentID
	f.students.created = &entity.Student{
		ID:          studentID,
		StudentCode: "STU-1-TEST1",
		HostelID:    f.booking.HostelID,
		Status:      entity.StudentStatusActive,
		CheckInDate: f.booking.CheckInDate,
	}

	checkIn := f.booking.CheckInDate
	bed := f.room.FindBedByID(f.bedID)
	bed.IsOccupied = true
	bed.Status = entity.BedStatusOccupied
	bed.CurrentOccupantID = &userID
	bed.StudentCode = "STU-1-TEST1"
	bed.CheckInDate = &checkIn
	f.room.Recompute()

	f.mock.ExpectBegin()
	f.mock.ExpectCommit()

	result, err := f.coordinator.CheckOut(context.Background(), f.booking.ID, uuid.New(), decimal.NewFromInt(500), "")
	if err != nil {
		t.Fatalf("CheckOut: %v", err)
	}

	if result.Booking.Status != entity.BookingStatusCheckedOut {
		t.Errorf("booking status = %s, want checkedOut", result.Booking.Status)
	}
	if bed.IsOccupied || bed.Status != entity.BedStatusAvailable {
		t.Errorf("bed = occupied=%v status=%s, want available", bed.IsOccupied, bed.Status)
	}
	if f.room.CurrentOccupancy != 0 {
		t.Errorf("room occupancy = %d, want 0", f.room.CurrentOccupancy)
	}
	if result.Student == nil || result.Student.Status != entity.StudentStatusCheckedOut {
		t.Errorf("student = %+v, want checked-out", result.Student)
	}
	if result.PreviousOccupant.StudentCode != "STU-1-TEST1" {
		t.Errorf("previous occupant code = %q, want STU-1-TEST1", result.PreviousOccupant.StudentCode)
	}
	// deposit 3000 - damages 500
	if !result.RefundAmount.Equal(decimal.NewFromInt(2500)) {
		t.Errorf("refund = %s, want 2500", result.RefundAmount)
	}
	if err := f.mock.ExpectationsWereMet(); err != nil {
		t.Errorf("transaction boundaries: %v", err)
	}
}
