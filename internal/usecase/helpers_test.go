package usecase

import (
	"context"
	"io"
	"testing"

	"hostelhub/internal/domain/entity"
	domainRepo "hostelhub/internal/domain/repository"
	"hostelhub/internal/service"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB backs gorm with a sqlmock connection so transaction boundaries
// are observable without a database. Reads and writes go through the stub
// repositories.
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
	room  *entity.Room
	saves int
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
	s.saves++
	return nil
}
func (s *roomRepoStub) DeleteBed(db *gorm.DB, bedID uuid.UUID) error { return nil }
func (s *roomRepoStub) Delete(db *gorm.DB, room *entity.Room) error { return nil }
func (s *roomRepoStub) ListWithBedsByHostelID(db *gorm.DB, hostelID uuid.UUID) ([]entity.Room, error) {
	return nil, nil
}

type hostelRepoStub struct {
	hostel *entity.Hostel
}

func (s *hostelRepoStub) Create(db *gorm.DB, hostel *entity.Hostel) error { return nil }
func (s *hostelRepoStub) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Hostel, error) {
	return s.hostel, nil
}
func (s *hostelRepoStub) FindByOwnerID(db *gorm.DB, ownerID uuid.UUID) ([]entity.Hostel, error) {
	return nil, nil
}
func (s *hostelRepoStub) FindAll(db *gorm.DB, limit, offset int) ([]entity.Hostel, int64, error) {
	return nil, 0, nil
}
func (s *hostelRepoStub) Save(db *gorm.DB, hostel *entity.Hostel) error { return nil }
func (s *hostelRepoStub) Delete(db *gorm.DB, hostel *entity.Hostel) error { return nil }

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

type studentRepoStub struct{}

func (s *studentRepoStub) Create(db *gorm.DB, student *entity.Student) error { return nil }
func (s *studentRepoStub) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Student, error) {
	return nil, nil
}
func (s *studentRepoStub) FindByHostelID(db *gorm.DB, hostelID uuid.UUID) ([]entity.Student, error) {
	return nil, nil
}
func (s *studentRepoStub) FindByBookingRef(db *gorm.DB, bookingID uuid.UUID) (*entity.Student, error) {
	return nil, nil
}
func (s *studentRepoStub) Save(db *gorm.DB, student *entity.Student) error { return nil }

type bookingRepoStub struct {
	booking   *entity.Booking
	checkedIn *entity.Booking
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
	s.saves++
	return nil
}
func (s *bookingRepoStub) Delete(db *gorm.DB, booking *entity.Booking) error { return nil }
func (s *bookingRepoStub) CountByStatus(db *gorm.DB, hostelIDs []uuid.UUID) ([]domainRepo.BookingStatusCount, error) {
	return nil, nil
}

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

// newTestCoordinator wires a coordinator over the stubs for usecases that
// require one. Tests here never drive the coordinator itself.
func newTestCoordinator(db *gorm.DB, log *logrus.Logger, rooms *roomRepoStub, bookings *bookingRepoStub, users *userRepoStub) *service.OccupancyCoordinator {
	students := &studentRepoStub{}
	conversion := service.NewStudentConversionService(log, students, users, rooms)
	return service.NewOccupancyCoordinator(db, log, rooms, bookings, students, users, conversion, auditStub{})
}
