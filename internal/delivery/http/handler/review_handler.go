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

type ReviewHandler struct {
	reviewUsecase usecase.ReviewUsecase
	validator     *validator.CustomValidator
}

func NewReviewHandler(reviewUsecase usecase.ReviewUsecase, validator *validator.CustomValidator) *ReviewHandler {
	return &ReviewHandler{
		reviewUsecase: reviewUsecase,
		validator:     validator,
	}
}

// CreateReview handles review submission
// @Summary Create review
// @Description Submit a review for a checked-out booking
// @Tags Reviews
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateReviewRequest true "Create Review Request"
// @Success 201 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /reviews [post]
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	actorID, _, ok := actorFromContext(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	review, err := h.reviewUsecase.Create(r.Context(), actorID, &req)
	if err != nil {
		switch err {
		case service.ErrBookingNotFound:
			response.NotFound(w, "Booking not found")
		case usecase.ErrBookingForbidden:
			response.Forbidden(w, "You can only review your own bookings")
		case usecase.ErrReviewNotAllowed:
			response.Conflict(w, "Booking is not eligible for review")
		case usecase.ErrReviewAlreadyExists:
			response.Conflict(w, "A review for this booking already exists")
		default:
			response.InternalServerError(w, "Failed to create review")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Review created successfully", review)
}

func (h *ReviewHandler) ListReviewsByHostel(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	hostelID, err := uuid.Parse(vars["hostelId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid hostel ID", nil)
		return
	}

	reviews, err := h.reviewUsecase.ListByHostel(r.Context(), hostelID)
	if err != nil {
		switch err {
		case usecase.ErrHostelNotFound:
			response.NotFound(w, "Hostel not found")
		default:
			response.InternalServerError(w, "Failed to list reviews")
		}
		return
	}

	response.Success(w, http.StatusOK, "Reviews retrieved successfully", reviews)
}
