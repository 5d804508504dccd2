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
	ErrReviewNotAllowed    = errors.New("booking is not eligible for review")
	ErrReviewAlreadyExists = errors.New("a review for this booking already exists")
)

type ReviewUsecase interface {
	Create(ctx context.Context, actorID uuid.UUID, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error)
	ListByHostel(ctx context.Context, hostelID uuid.UUID) (*dto.ReviewListResponse, error)
}

type reviewUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	reviewRepo  repository.ReviewRepository
	bookingRepo repository.BookingRepository
	hostelRepo  repository.HostelRepository
}

func NewReviewUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	reviewRepo repository.ReviewRepository,
	bookingRepo repository.BookingRepository,
	hostelRepo repository.HostelRepository,
) ReviewUsecase {
	return &reviewUsecase{
		db:          db,
		log:         log,
		reviewRepo:  reviewRepo,
		bookingRepo: bookingRepo,
		hostelRepo:  hostelRepo,
	}
}

func (u *reviewUsecase) Create(ctx context.Context, actorID uuid.UUID, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	booking, err := u.bookingRepo.FindByIDForUpdate(tx, req.BookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, service.ErrBookingNotFound
	}
	if booking.UserID != actorID {
		return nil, ErrBookingForbidden
	}

	booking.RecomputeCanReview(time.Now())
	if !booking.CanReview {
		return nil, ErrReviewNotAllowed
	}

	review := &entity.Review{
		BookingID:   booking.ID,
		UserID:      actorID,
		HostelID:    booking.HostelID,
		Rating:      req.Rating,
		Cleanliness: req.Cleanliness,
		Food:        req.Food,
		Safety:      req.Safety,
		Comment:     req.Comment,
	}

	if err := u.reviewRepo.Create(tx, review); err != nil {
		if isDuplicateKeyError(err, "booking") {
			return nil, ErrReviewAlreadyExists
		}
		u.log.Warnf("Failed to create review: %+v", err)
		return nil, err
	}

	booking.ReviewSubmitted = true
	booking.RecomputeCanReview(time.Now())
	if err := u.bookingRepo.Save(tx, booking); err != nil {
		u.log.Warnf("Failed to save booking: %+v", err)
		return nil, err
	}

	// Recompute the hostel aggregate from scratch inside the same
	// transaction so the stored average never drifts
	average, count, err := u.reviewRepo.AggregateByHostel(tx, booking.HostelID)
	if err != nil {
		u.log.Warnf("Failed to aggregate reviews: %+v", err)
		return nil, err
	}

	hostel, err := u.hostelRepo.FindByID(tx, booking.HostelID)
	if err != nil {
		return nil, err
	}
	if hostel != nil {
		hostel.ApplyRating(average, int(count))
		if err := u.hostelRepo.Save(tx, hostel); err != nil {
			u.log.Warnf("Failed to save hostel rating: %+v", err)
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ReviewToResponse(review), nil
}

func (u *reviewUsecase) ListByHostel(ctx context.Context, hostelID uuid.UUID) (*dto.ReviewListResponse, error) {
	db := u.db.WithContext(ctx)

	hostel, err := u.hostelRepo.FindByID(db, hostelID)
	if err != nil {
		return nil, err
	}
	if hostel == nil {
		return nil, ErrHostelNotFound
	}

	reviews, err := u.reviewRepo.FindByHostelID(db, hostelID)
	if err != nil {
		u.log.Warnf("Failed to list reviews: %+v", err)
		return nil, err
	}

	return &dto.ReviewListResponse{
		Reviews:       converter.ReviewsToResponses(reviews),
		Total:         len(reviews),
		RatingAverage: hostel.RatingAverage,
		RatingCount:   hostel.RatingCount,
	}, nil
}
