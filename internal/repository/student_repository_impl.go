package repository

import (
	"errors"

	"hostelhub/internal/domain/entity"
	domainRepo "hostelhub/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type studentRepository struct{}

func NewStudentRepository() domainRepo.StudentRepository {
	return &studentRepository{}
}

func (r *studentRepository) Create(db *gorm.DB, student *entity.Student) error {
	return db.Create(student).Error
}

func (r *studentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Student, error) {
	var student entity.Student
	err := db.Where("id = ?", id).First(&student).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &student, nil
}

func (r *studentRepository) FindByHostelID(db *gorm.DB, hostelID uuid.UUID) ([]entity.Student, error) {
	var students []entity.Student
	err := db.Where("hostel_id = ?", hostelID).Order("created_at DESC").Find(&students).Error
	if err != nil {
		return nil, err
	}
	return students, nil
}

func (r *studentRepository) FindByBookingRef(db *gorm.DB, bookingID uuid.UUID) (*entity.Student, error) {
	var student entity.Student
	err := db.Where("booking_ref = ?", bookingID).First(&student).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &student, nil
}

func (r *studentRepository) Save(db *gorm.DB, student *entity.Student) error {
	return db.Save(student).Error
}
