package repository

import (
	"errors"
	"time"

	"hostelhub/internal/domain/entity"
	domainRepo "hostelhub/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type bookingRepository struct{}

func NewBookingRepository() domainRepo.BookingRepository {
	return &bookingRepository{}
}

func (r *bookingRepository) Create(db *gorm.DB, booking *entity.Booking) error {
	return db.Create(booking).Error
}

func (r *bookingRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Booking, error) {
	var booking entity.Booking
	err := db.Preload("User").Preload("Hostel").Preload("Room").Preload("Student").
		Where("id = ?", id).
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindByIDForUpdate(db *gorm.DB, id uuid.UUID) (*entity.Booking, error) {
	var booking entity.Booking
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindAll(db *gorm.DB, filter domainRepo.BookingFilter) ([]entity.Booking, error) {
	query := db.Preload("Hostel").Preload("Room").Preload("Student")

	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if len(filter.HostelIDs) > 0 {
		query = query.Where("hostel_id IN ?", filter.HostelIDs)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Active {
		query = query.Where("status IN ?", []entity.BookingStatus{
			entity.BookingStatusConfirmed, entity.BookingStatusCheckedIn,
		})
	}
	if filter.Upcoming {
		query = query.Where("check_in_date >= ?", time.Now())
	}

	var bookings []entity.Booking
	err := query.Order("created_at DESC").Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) FindActiveByUserAndHostel(db *gorm.DB, userID, hostelID uuid.UUID) (*entity.Booking, error) {
	var booking entity.Booking
	err := db.Where("user_id = ? AND hostel_id = ? AND status IN ?", userID, hostelID,
		[]entity.BookingStatus{
			entity.BookingStatusPending, entity.BookingStatusConfirmed, entity.BookingStatusCheckedIn,
		}).
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindCheckedInByBed(db *gorm.DB, bedID uuid.UUID) (*entity.Booking, error) {
	var booking entity.Booking
	err := db.Where("bed_id = ? AND status = ?", bedID, entity.BookingStatusCheckedIn).
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) Save(db *gorm.DB, booking *entity.Booking) error {
	return db.Save(booking).Error
}

func (r *bookingRepository) Delete(db *gorm.DB, booking *entity.Booking) error {
	return db.Delete(booking).Error
}

func (r *bookingRepository) CountByStatus(db *gorm.DB, hostelIDs []uuid.UUID) ([]domainRepo.BookingStatusCount, error) {
	query := db.Model(&entity.Booking{}).
		Select("status, COUNT(*) as count, COALESCE(SUM(total_amount), 0) as total_revenue")
	if len(hostelIDs) > 0 {
		query = query.Where("hostel_id IN ?", hostelIDs)
	}

	var counts []domainRepo.BookingStatusCount
	err := query.Group("status").Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}
