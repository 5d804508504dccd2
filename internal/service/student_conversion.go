package service

import (
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"hostelhub/internal/domain/entity"
	"hostelhub/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAlreadyConverted = errors.New("booking already has a linked student record")
	ErrStudentNotFound  = errors.New("student not found")
	ErrBookingUserGone  = errors.New("booking user no longer exists")
)

// StudentConversionService derives a persistent Student record from a
// checked-in booking. Conversion happens at most once per booking.
type StudentConversionService struct {
	log         *logrus.Logger
	studentRepo repository.StudentRepository
	userRepo    repository.UserRepository
	roomRepo    repository.RoomRepository
}

func NewStudentConversionService(
	log *logrus.Logger,
	studentRepo repository.StudentRepository,
	userRepo repository.UserRepository,
	roomRepo repository.RoomRepository,
) *StudentConversionService {
	return &StudentConversionService{
		log:         log,
		studentRepo: studentRepo,
		userRepo:    userRepo,
		roomRepo:    roomRepo,
	}
}

// Materialize creates the Student record for a booking and links it back.
// Must run inside the caller's transaction; the caller persists the booking.
func (s *StudentConversionService) Materialize(tx *gorm.DB, booking *entity.Booking) (*entity.Student, error) {
	if booking.StudentID != nil {
		return nil, ErrAlreadyConverted
	}

	user, err := s.userRepo.FindByID(tx, booking.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrBookingUserGone
	}

	bedNumber := ""
	if room, err := s.roomRepo.FindByID(tx, booking.RoomID); err == nil && room != nil {
		if bed := room.FindBedByID(booking.BedID); bed != nil {
			bedNumber = bed.BedNumber
		}
	}

	checkIn := booking.CheckInDate
	if booking.ActualCheckIn != nil {
		checkIn = *booking.ActualCheckIn
	}

	roomID := booking.RoomID
	userID := user.ID
	bookingID := booking.ID
	student := &entity.Student{
		StudentCode:      NewStudentCode(),
		HostelID:         booking.HostelID,
		Name:             user.FullName,
		Email:            user.Email,
		Phone:            user.Phone,
		RoomID:           &roomID,
		BedNumber:        bedNumber,
		UserID:           &userID,
		EmergencyContact: booking.EmergencyContact,
		CheckInDate:      checkIn,
		Status:           entity.StudentStatusActive,
		BookingRef:       &bookingID,
		Source:           entity.StudentSourceBooking,
	}

	if err := s.studentRepo.Create(tx, student); err != nil {
		s.log.Warnf("Failed to create student record for booking %s: %+v", booking.ID, err)
		return nil, err
	}

	// Link back; the student row lands in the user's studentProfiles
	// collection through its user_id reference
	booking.StudentID = &student.ID

	s.log.Infof("Student materialized: code=%s, hostel=%s, booking=%s", student.StudentCode, student.HostelID, booking.ID)
	return student, nil
}

// CheckOutStudent marks a student checked out. Idempotent: a second call
// returns the current state without error.
func (s *StudentConversionService) CheckOutStudent(tx *gorm.DB, studentID uuid.UUID) (*entity.Student, error) {
	student, err := s.studentRepo.FindByID(tx, studentID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, ErrStudentNotFound
	}

	if !student.CheckOut(time.Now()) {
		return student, nil
	}

	if err := s.studentRepo.Save(tx, student); err != nil {
		return nil, err
	}
	return student, nil
}

// NewStudentCode generates a hostel-scoped student code. Uniqueness is
// enforced by the (student_code, hostel_id) compound index, not globally.
func NewStudentCode() string {
	const letters = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	suffix := make([]byte, 5)
	rand.Read(suffix)
	for i := range suffix {
		suffix[i] = letters[int(suffix[i])%len(letters)]
	}
	return fmt.Sprintf("STU-%d-%s", time.Now().UnixMilli(), suffix)
}
