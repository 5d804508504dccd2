package handler

import (
	"encoding/json"
	"net/http"

	"hostelhub/internal/delivery/dto"
	"hostelhub/internal/service"
	"hostelhub/internal/usecase"
	"hostelhub/pkg/response"
	"hostelhub/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type PaymentHandler struct {
	paymentUsecase usecase.PaymentUsecase
	validator      *validator.CustomValidator
}

func NewPaymentHandler(paymentUsecase usecase.PaymentUsecase, validator *validator.CustomValidator) *PaymentHandler {
	return &PaymentHandler{
		paymentUsecase: paymentUsecase,
		validator:      validator,
	}
}

func paymentError(w http.ResponseWriter, err error) {
	switch err {
	case usecase.ErrPaymentNotFound:
		response.NotFound(w, "Payment not found")
	case service.ErrBookingNotFound:
		response.NotFound(w, "Booking not found")
	case usecase.ErrHostelNotFound:
		response.NotFound(w, "Hostel not found")
	case usecase.ErrNotHostelOwner:
		response.Forbidden(w, "You do not own this hostel")
	case usecase.ErrPaymentForbidden:
		response.Forbidden(w, "You do not have access to this payment")
	case usecase.ErrDuplicatePaymentMonth:
		response.Conflict(w, "A bill for this booking and month already exists")
	case usecase.ErrInvalidDateFormat:
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
	default:
		response.InternalServerError(w, "Failed to process payment request")
	}
}

// CreatePayment handles monthly bill creation
// @Summary Create payment bill
// @Description Create a monthly rent bill for a booking
// @Tags Payments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreatePaymentRequest true "Create Payment Request"
// @Success 201 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /payments [post]
func (h *PaymentHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	actorID, actorRole, ok := actorFromContext(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	payment, err := h.paymentUsecase.Create(r.Context(), actorID, actorRole, &req)
	if err != nil {
		paymentError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Payment bill created successfully", payment)
}

func (h *PaymentHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	actorID, actorRole, ok := actorFromContext(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	paymentID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid payment ID", nil)
		return
	}

	var req dto.RecordPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	payment, err := h.paymentUsecase.RecordPayment(r.Context(), actorID, actorRole, paymentID, &req)
	if err != nil {
		paymentError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Payment recorded successfully", payment)
}

func (h *PaymentHandler) GetPayment(w http.ResponseWriter, r *http.Request) {
	actorID, actorRole, ok := actorFromContext(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	paymentID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid payment ID", nil)
		return
	}

	payment, err := h.paymentUsecase.GetByID(r.Context(), actorID, actorRole, paymentID)
	if err != nil {
		paymentError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Payment retrieved successfully", payment)
}

func (h *PaymentHandler) ListPaymentsByBooking(w http.ResponseWriter, r *http.Request) {
	actorID, actorRole, ok := actorFromContext(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	bookingID, err := uuid.Parse(vars["bookingId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid booking ID", nil)
		return
	}

	payments, err := h.paymentUsecase.ListByBooking(r.Context(), actorID, actorRole, bookingID)
	if err != nil {
		paymentError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Payments retrieved successfully", payments)
}

func (h *PaymentHandler) ListMyPayments(w http.ResponseWriter, r *http.Request) {
	actorID, _, ok := actorFromContext(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	payments, err := h.paymentUsecase.ListMine(r.Context(), actorID)
	if err != nil {
		response.InternalServerError(w, "Failed to list payments")
		return
	}

	response.Success(w, http.StatusOK, "Payments retrieved successfully", payments)
}

func (h *PaymentHandler) ListPaymentsByHostel(w http.ResponseWriter, r *http.Request) {
	actorID, actorRole, ok := actorFromContext(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	hostelID, err := uuid.Parse(vars["hostelId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid hostel ID", nil)
		return
	}

	payments, err := h.paymentUsecase.ListByHostel(r.Context(), actorID, actorRole, hostelID)
	if err != nil {
		paymentError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Payments retrieved successfully", payments)
}
