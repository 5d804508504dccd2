package usecase

import (
	"context"
	"errors"

	"hostelhub/internal/converter"
	"hostelhub/internal/delivery/dto"
	"hostelhub/internal/domain/entity"
	"hostelhub/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrHostelNotFound = errors.New("hostel not found")
	ErrNotHostelOwner = errors.New("you do not own this hostel")
)

type HostelUsecase interface {
	Create(ctx context.Context, ownerID uuid.UUID, req *dto.CreateHostelRequest) (*dto.HostelResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.HostelResponse, error)
	List(ctx context.Context, limit, offset int) (*dto.HostelListResponse, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) (*dto.HostelListResponse, error)
	Update(ctx context.Context, actorID uuid.UUID, actorRole int, id uuid.UUID, req *dto.UpdateHostelRequest) (*dto.HostelResponse, error)
	Delete(ctx context.Context, actorID uuid.UUID, actorRole int, id uuid.UUID) error
}

type hostelUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	hostelRepo repository.HostelRepository
}

func NewHostelUsecase(db *gorm.DB, log *logrus.Logger, hostelRepo repository.HostelRepository) HostelUsecase {
	return &hostelUsecase{
		db:         db,
		log:        log,
		hostelRepo: hostelRepo,
	}
}

// canManage is the owner-or-admin check shared by mutating operations
func canManage(hostel *entity.Hostel, actorID uuid.UUID, actorRole int) bool {
	return actorRole == entity.RoleIDAdmin || hostel.IsOwnedBy(actorID)
}

func (u *hostelUsecase) Create(ctx context.Context, ownerID uuid.UUID, req *dto.CreateHostelRequest) (*dto.HostelResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	country := req.Country
	if country == "" {
		country = "India"
	}
	rentDueDay := req.RentDueDay
	if rentDueDay == 0 {
		rentDueDay = 1
	}

	active := true
	hostel := &entity.Hostel{
		OwnerID:         ownerID,
		Name:            req.Name,
		Description:     req.Description,
		Street:          req.Street,
		City:            req.City,
		State:           req.State,
		Pincode:         req.Pincode,
		Country:         country,
		ContactPhone:    req.ContactPhone,
		ContactEmail:    req.ContactEmail,
		Amenities:       req.Amenities,
		Rules:           req.Rules,
		RentDueDay:      rentDueDay,
		LateFeePercent:  req.LateFeePercent,
		SecurityDeposit: req.SecurityDeposit,
		IsActive:        &active,
	}

	if err := u.hostelRepo.Create(tx, hostel); err != nil {
		if isForeignKeyError(err, "owner") {
			return nil, ErrUserNotFound
		}
		u.log.Warnf("Failed to create hostel: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.HostelToResponse(hostel), nil
}

func (u *hostelUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.HostelResponse, error) {
	hostel, err := u.hostelRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find hostel by ID: %+v", err)
		return nil, err
	}
	if hostel == nil {
		return nil, ErrHostelNotFound
	}

	return converter.HostelToResponse(hostel), nil
}

func (u *hostelUsecase) List(ctx context.Context, limit, offset int) (*dto.HostelListResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	hostels, total, err := u.hostelRepo.FindAll(u.db.WithContext(ctx), limit, offset)
	if err != nil {
		u.log.Warnf("Failed to list hostels: %+v", err)
		return nil, err
	}

	return &dto.HostelListResponse{
		Hostels: converter.HostelsToResponses(hostels),
		Total:   total,
	}, nil
}

func (u *hostelUsecase) ListByOwner(ctx context.Context, ownerID uuid.UUID) (*dto.HostelListResponse, error) {
	hostels, err := u.hostelRepo.FindByOwnerID(u.db.WithContext(ctx), ownerID)
	if err != nil {
		u.log.Warnf("Failed to list hostels by owner: %+v", err)
		return nil, err
	}

	return &dto.HostelListResponse{
		Hostels: converter.HostelsToResponses(hostels),
		Total:   int64(len(hostels)),
	}, nil
}

func (u *hostelUsecase) Update(ctx context.Context, actorID uuid.UUID, actorRole int, id uuid.UUID, req *dto.UpdateHostelRequest) (*dto.HostelResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	hostel, err := u.hostelRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find hostel by ID: %+v", err)
		return nil, err
	}
	if hostel == nil {
		return nil, ErrHostelNotFound
	}
	if !canManage(hostel, actorID, actorRole) {
		return nil, ErrNotHostelOwner
	}

	if req.Name != nil {
		hostel.Name = *req.Name
	}
	if req.Description != nil {
		hostel.Description = *req.Description
	}
	if req.Street != nil {
		hostel.Street = *req.Street
	}
	if req.City != nil {
		hostel.City = *req.City
	}
	if req.State != nil {
		hostel.State = *req.State
	}
	if req.Pincode != nil {
		hostel.Pincode = *req.Pincode
	}
	if req.Country != nil {
		hostel.Country = *req.Country
	}
	if req.ContactPhone != nil {
		hostel.ContactPhone = *req.ContactPhone
	}
	if req.ContactEmail != nil {
		hostel.ContactEmail = *req.ContactEmail
	}
	if req.Amenities != nil {
		hostel.Amenities = req.Amenities
	}
	if req.Rules != nil {
		hostel.Rules = req.Rules
	}
	if req.RentDueDay != nil {
		hostel.RentDueDay = *req.RentDueDay
	}
	if req.LateFeePercent != nil {
		hostel.LateFeePercent = *req.LateFeePercent
	}
	if req.SecurityDeposit != nil {
		hostel.SecurityDeposit = *req.SecurityDeposit
	}
	if req.IsActive != nil {
		hostel.IsActive = req.IsActive
	}

	if err := u.hostelRepo.Save(tx, hostel); err != nil {
		u.log.Warnf("Failed to update hostel: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.HostelToResponse(hostel), nil
}

func (u *hostelUsecase) Delete(ctx context.Context, actorID uuid.UUID, actorRole int, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	hostel, err := u.hostelRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find hostel by ID: %+v", err)
		return err
	}
	if hostel == nil {
		return ErrHostelNotFound
	}
	if !canManage(hostel, actorID, actorRole) {
		return ErrNotHostelOwner
	}

	if err := u.hostelRepo.Delete(tx, hostel); err != nil {
		u.log.Warnf("Failed to delete hostel: %+v", err)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
