package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
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
	ErrPaymentNotFound       = errors.New("payment not found")
	ErrDuplicatePaymentMonth = errors.New("a bill for this booking and month already exists")
	ErrPaymentForbidden      = errors.New("you do not have access to this payment")
)

type PaymentUsecase interface {
	Create(ctx context.Context, actorID uuid.UUID, actorRole int, req *dto.CreatePaymentRequest) (*dto.PaymentResponse, error)
	RecordPayment(ctx context.Context, actorID uuid.UUID, actorRole int, id uuid.UUID, req *dto.RecordPaymentRequest) (*dto.PaymentResponse, error)
	GetByID(ctx context.Context, actorID uuid.UUID, actorRole int, id uuid.UUID) (*dto.PaymentResponse, error)
	ListByBooking(ctx context.Context, actorID uuid.UUID, actorRole int, bookingID uuid.UUID) (*dto.PaymentListResponse, error)
	ListMine(ctx context.Context, actorID uuid.UUID) (*dto.PaymentListResponse, error)
	ListByHostel(ctx context.Context, actorID uuid.UUID, actorRole int, hostelID uuid.UUID) (*dto.PaymentListResponse, error)
}

type paymentUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	paymentRepo repository.PaymentRepository
	bookingRepo repository.BookingRepository
	hostelRepo  repository.HostelRepository
	audit       service.AuditService
}

func NewPaymentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	paymentRepo repository.PaymentRepository,
	bookingRepo repository.BookingRepository,
	hostelRepo repository.HostelRepository,
	audit service.AuditService,
) PaymentUsecase {
	return &paymentUsecase{
		db:          db,
		log:         log,
		paymentRepo: paymentRepo,
		bookingRepo: bookingRepo,
		hostelRepo:  hostelRepo,
		audit:       audit,
	}
}

func chargeLinesFromDTOs(lines []dto.ChargeLineDTO) entity.ChargeLines {
	if len(lines) == 0 {
		return nil
	}
	result := make(entity.ChargeLines, len(lines))
	for i, line := range lines {
		result[i] = entity.ChargeLine{
			Description: line.Description,
			Amount:      line.Amount,
			Reason:      line.Reason,
		}
	}
	return result
}

func (u *paymentUsecase) requireHostelAccess(db *gorm.DB, hostelID, actorID uuid.UUID, actorRole int) error {
	if actorRole == entity.RoleIDAdmin || actorRole == entity.RoleIDStaff {
		return nil
	}
	hostel, err := u.hostelRepo.FindByID(db, hostelID)
	if err != nil {
		return err
	}
	if hostel == nil {
		return ErrHostelNotFound
	}
	if !hostel.IsOwnedBy(actorID) {
		return ErrNotHostelOwner
	}
	return nil
}

func (u *paymentUsecase) Create(ctx context.Context, actorID uuid.UUID, actorRole int, req *dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	dueDate, err := time.Parse("2006-01-02", req.DueDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	booking, err := u.bookingRepo.FindByID(tx, req.BookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, service.ErrBookingNotFound
	}
	if err := u.requireHostelAccess(tx, booking.HostelID, actorID, actorRole); err != nil {
		return nil, err
	}

	payment := &entity.Payment{
		BookingID:         booking.ID,
		UserID:            booking.UserID,
		HostelID:          booking.HostelID,
		Month:             req.Month,
		RentAmount:        booking.RentAmount,
		DueDate:           dueDate,
		LateFee:           req.LateFee,
		AdditionalCharges: chargeLinesFromDTOs(req.AdditionalCharges),
		Discounts:         chargeLinesFromDTOs(req.Discounts),
		Notes:             req.Notes,
		CreatedByID:       &actorID,
	}
	payment.Recompute(time.Now())

	if err := u.paymentRepo.Create(tx, payment); err != nil {
		if isDuplicateKeyError(err, "idx_payments_booking_month") {
			return nil, ErrDuplicatePaymentMonth
		}
		u.log.Warnf("Failed to create payment: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PaymentToResponse(payment), nil
}

func (u *paymentUsecase) RecordPayment(ctx context.Context, actorID uuid.UUID, actorRole int, id uuid.UUID, req *dto.RecordPaymentRequest) (*dto.PaymentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	payment, err := u.paymentRepo.FindByID(tx, id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, ErrPaymentNotFound
	}
	if err := u.requireHostelAccess(tx, payment.HostelID, actorID, actorRole); err != nil {
		return nil, err
	}

	now := time.Now()
	payment.AmountPaid = payment.AmountPaid.Add(req.Amount)
	payment.PaymentMethod = req.PaymentMethod
	if req.TransactionID != "" {
		payment.TransactionID = req.TransactionID
	}
	if req.Notes != "" {
		payment.Notes = req.Notes
	}
	payment.Recompute(now)

	if payment.PaymentStatus == entity.PaymentStatusPaid {
		payment.PaidDate = &now
		if payment.ReceiptNumber == "" {
			payment.ReceiptNumber = newReceiptNumber()
		}
	}

	if err := u.paymentRepo.Save(tx, payment); err != nil {
		u.log.Warnf("Failed to save payment: %+v", err)
		return nil, err
	}

	u.audit.LogUpdate(ctx, tx, &actorID, entity.AuditActionPaymentRecord, "payment", payment.ID.String(),
		nil, entity.JSON{"amount": req.Amount.String(), "method": req.PaymentMethod, "status": payment.PaymentStatus})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PaymentToResponse(payment), nil
}

func (u *paymentUsecase) GetByID(ctx context.Context, actorID uuid.UUID, actorRole int, id uuid.UUID) (*dto.PaymentResponse, error) {
	db := u.db.WithContext(ctx)

	payment, err := u.paymentRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find payment by ID: %+v", err)
		return nil, err
	}
	if payment == nil {
		return nil, ErrPaymentNotFound
	}

	if payment.UserID != actorID {
		if err := u.requireHostelAccess(db, payment.HostelID, actorID, actorRole); err != nil {
			return nil, ErrPaymentForbidden
		}
	}

	payment.Recompute(time.Now())
	return converter.PaymentToResponse(payment), nil
}

func (u *paymentUsecase) ListByBooking(ctx context.Context, actorID uuid.UUID, actorRole int, bookingID uuid.UUID) (*dto.PaymentListResponse, error) {
	db := u.db.WithContext(ctx)

	booking, err := u.bookingRepo.FindByID(db, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, service.ErrBookingNotFound
	}
	if booking.UserID != actorID {
		if err := u.requireHostelAccess(db, booking.HostelID, actorID, actorRole); err != nil {
			return nil, ErrPaymentForbidden
		}
	}

	payments, err := u.paymentRepo.FindByBookingID(db, bookingID)
	if err != nil {
		u.log.Warnf("Failed to list payments: %+v", err)
		return nil, err
	}

	return u.toListResponse(payments), nil
}

func (u *paymentUsecase) ListMine(ctx context.Context, actorID uuid.UUID) (*dto.PaymentListResponse, error) {
	payments, err := u.paymentRepo.FindByUserID(u.db.WithContext(ctx), actorID)
	if err != nil {
		u.log.Warnf("Failed to list payments: %+v", err)
		return nil, err
	}
	return u.toListResponse(payments), nil
}

func (u *paymentUsecase) ListByHostel(ctx context.Context, actorID uuid.UUID, actorRole int, hostelID uuid.UUID) (*dto.PaymentListResponse, error) {
	db := u.db.WithContext(ctx)

	if err := u.requireHostelAccess(db, hostelID, actorID, actorRole); err != nil {
		return nil, err
	}

	payments, err := u.paymentRepo.FindByHostelID(db, hostelID)
	if err != nil {
		u.log.Warnf("Failed to list payments: %+v", err)
		return nil, err
	}
	return u.toListResponse(payments), nil
}

// toListResponse refreshes the derived status of each bill before returning
func (u *paymentUsecase) toListResponse(payments []entity.Payment) *dto.PaymentListResponse {
	now := time.Now()
	for i := range payments {
		payments[i].Recompute(now)
	}
	return &dto.PaymentListResponse{
		Payments: converter.PaymentsToResponses(payments),
		Total:    len(payments),
	}
}

func newReceiptNumber() string {
	return fmt.Sprintf("RCPT-%s", strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:10]))
}
