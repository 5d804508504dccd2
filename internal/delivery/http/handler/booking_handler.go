package handler

import (
	"encoding/json"
	"net/http"

	"hostelhub/internal/delivery/dto"
	"hostelhub/internal/domain/entity"
	"hostelhub/internal/service"
	"hostelhub/internal/usecase"
	"hostelhub/pkg/response"
	"hostelhub/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type BookingHandler struct {
	bookingUsecase usecase.BookingUsecase
	validator      *validator.CustomValidator
}

func NewBookingHandler(bookingUsecase usecase.BookingUsecase, validator *validator.CustomValidator) *BookingHandler {
	return &BookingHandler{
		bookingUsecase: bookingUsecase,
		validator:      validator,
	}
}

// bookingError maps the lifecycle errors to HTTP responses
func bookingError(w http.ResponseWriter, err error) {
	switch err {
	case service.ErrBookingNotFound:
		response.NotFound(w, "Booking not found")
	case service.ErrRoomNotFound, usecase.ErrRoomNotFound:
		response.NotFound(w, "Room not found")
	case usecase.ErrHostelNotFound:
		response.NotFound(w, "Hostel not found")
	case entity.ErrBedNotFound:
		response.NotFound(w, "Bed not found in this room")
	case usecase.ErrInvalidDateFormat:
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
	case usecase.ErrBookingForbidden:
		response.Forbidden(w, "You do not have access to this booking")
	case usecase.ErrHostelInactive:
		response.Conflict(w, "Hostel is not accepting bookings")
	case usecase.ErrDuplicateActiveBooking:
		response.Conflict(w, "You already have an active booking in this hostel")
	case usecase.ErrInvalidBookingTransition:
		response.Conflict(w, "Booking status transition not allowed")
	case usecase.ErrBookingNotEditable:
		response.Conflict(w, "Booking can no longer be edited")
	case usecase.ErrBookingNotDeletable:
		response.Conflict(w, "Checked-in bookings cannot be deleted")
	case service.ErrCheckInNotAllowed:
		response.Conflict(w, "Booking cannot be checked in from its current status")
	case service.ErrCheckOutNotAllowed:
		response.Conflict(w, "Booking cannot be checked out from its current status")
	case service.ErrBookingUserGone:
		response.Conflict(w, "Booking user account no longer exists")
	case entity.ErrBedOccupied:
		response.Conflict(w, "Bed is already occupied")
	case entity.ErrBedUnderMaintenance:
		response.Conflict(w, "Bed is under maintenance")
	case entity.ErrBedAlreadyReserved:
		response.Conflict(w, "Bed is already reserved")
	default:
		response.InternalServerError(w, "Failed to process booking request")
	}
}

// CreateBooking handles booking creation
// @Summary Create booking
// @Description Book a bed in a hostel room
// @Tags Bookings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	actorID, actorRole, ok := actorFromContext(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	booking, err := h.bookingUsecase.Create(r.Context(), actorID, actorRole, &req)
	if err != nil {
		bookingError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Booking created successfully", booking)
}

func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	actorID, actorRole, ok := actorFromContext(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	bookingID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid booking ID", nil)
		return
	}

	booking, err := h.bookingUsecase.GetByID(r.Context(), actorID, actorRole, bookingID)
	if err != nil {
		bookingError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Booking retrieved successfully", booking)
}

func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	actorID, actorRole, ok := actorFromContext(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	params := r.URL.Query()
	query := usecase.BookingListQuery{
		Status:   params.Get("status"),
		Active:   params.Get("active") == "true",
		Upcoming: params.Get("upcoming") == "true",
	}
	if raw := params.Get("hostel_id"); raw != "" {
		hostelID, err := uuid.Parse(raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid hostel_id filter", nil)
			return
		}
		query.HostelID = &hostelID
	}

	bookings, err := h.bookingUsecase.List(r.Context(), actorID, actorRole, query)
	if err != nil {
		response.InternalServerError(w, "Failed to list bookings")
		return
	}

	response.Success(w, http.StatusOK, "Bookings retrieved successfully", bookings)
}

func (h *BookingHandler) ConfirmBooking(w http.ResponseWriter, r *http.Request) {
	actorID, actorRole, ok := actorFromContext(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	bookingID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid booking ID", nil)
		return
	}

	booking, err := h.bookingUsecase.Confirm(r.Context(), actorID, actorRole, bookingID)
	if err != nil {
		bookingError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Booking confirmed successfully", booking)
}

// CheckIn handles booking check-in
// @Summary Check in booking
// @Description Check in a confirmed booking, assigning the bed and creating the student record
// @Tags Bookings
// @Security BearerAuth
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /bookings/{id}/check-in [post]
func (h *BookingHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	actorID, actorRole, ok := actorFromContext(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	bookingID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid booking ID", nil)
		return
	}

	result, err := h.bookingUsecase.CheckIn(r.Context(), actorID, actorRole, bookingID)
	if err != nil {
		bookingError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Booking checked in successfully", result)
}

// CheckOut handles booking check-out
// @Summary Check out booking
// @Description Check out a checked-in booking, vacating the bed and settling the deposit
// @Tags Bookings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.CheckOutBookingRequest true "Check Out Request"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /bookings/{id}/check-out [post]
func (h *BookingHandler) CheckOut(w http.ResponseWriter, r *http.Request) {
	actorID, actorRole, ok := actorFromContext(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	bookingID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid booking ID", nil)
		return
	}

	var req dto.CheckOutBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.bookingUsecase.CheckOut(r.Context(), actorID, actorRole, bookingID, &req)
	if err != nil {
		bookingError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Booking checked out successfully", result)
}

func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	actorID, actorRole, ok := actorFromContext(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	bookingID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid booking ID", nil)
		return
	}

	var req dto.CancelBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	booking, err := h.bookingUsecase.Cancel(r.Context(), actorID, actorRole, bookingID, &req)
	if err != nil {
		bookingError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Booking cancelled successfully", booking)
}

func (h *BookingHandler) CompleteBooking(w http.ResponseWriter, r *http.Request) {
	actorID, actorRole, ok := actorFromContext(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	bookingID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid booking ID", nil)
		return
	}

	booking, err := h.bookingUsecase.Complete(r.Context(), actorID, actorRole, bookingID)
	if err != nil {
		bookingError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Booking completed successfully", booking)
}

func (h *BookingHandler) MarkNoShow(w http.ResponseWriter, r *http.Request) {
	actorID, actorRole, ok := actorFromContext(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	bookingID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid booking ID", nil)
		return
	}

	booking, err := h.bookingUsecase.MarkNoShow(r.Context(), actorID, actorRole, bookingID)
	if err != nil {
		bookingError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Booking marked as no-show", booking)
}

func (h *BookingHandler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	actorID, actorRole, ok := actorFromContext(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	bookingID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid booking ID", nil)
		return
	}

	var req dto.UpdateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	booking, err := h.bookingUsecase.Update(r.Context(), actorID, actorRole, bookingID, &req)
	if err != nil {
		bookingError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Booking updated successfully", booking)
}

func (h *BookingHandler) AddDocument(w http.ResponseWriter, r *http.Request) {
	actorID, actorRole, ok := actorFromContext(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	bookingID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid booking ID", nil)
		return
	}

	var req dto.AddBookingDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	booking, err := h.bookingUsecase.AddDocument(r.Context(), actorID, actorRole, bookingID, &req)
	if err != nil {
		bookingError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Document added successfully", booking)
}

func (h *BookingHandler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	actorID, _, ok := actorFromContext(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	bookingID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid booking ID", nil)
		return
	}

	if err := h.bookingUsecase.Delete(r.Context(), actorID, bookingID); err != nil {
		bookingError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Booking deleted successfully", nil)
}

func (h *BookingHandler) GetBookingStats(w http.ResponseWriter, r *http.Request) {
	actorID, actorRole, ok := actorFromContext(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	stats, err := h.bookingUsecase.Stats(r.Context(), actorID, actorRole)
	if err != nil {
		response.InternalServerError(w, "Failed to get booking stats")
		return
	}

	response.Success(w, http.StatusOK, "Booking stats retrieved successfully", stats)
}
