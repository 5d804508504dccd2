package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"hostelhub/internal/delivery/dto"
	"hostelhub/internal/domain/entity"
	"hostelhub/internal/usecase"
	"hostelhub/pkg/response"
	"hostelhub/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type BedHandler struct {
	bedUsecase usecase.BedUsecase
	validator  *validator.CustomValidator
}

func NewBedHandler(bedUsecase usecase.BedUsecase, validator *validator.CustomValidator) *BedHandler {
	return &BedHandler{
		bedUsecase: bedUsecase,
		validator:  validator,
	}
}

// bedError maps the inventory errors to HTTP responses
func bedError(w http.ResponseWriter, err error) {
	switch err {
	case usecase.ErrRoomNotFound:
		response.NotFound(w, "Room not found")
	case usecase.ErrHostelNotFound:
		response.NotFound(w, "Hostel not found")
	case usecase.ErrNotHostelOwner:
		response.Forbidden(w, "You do not own this hostel")
	case usecase.ErrUserNotFound:
		response.NotFound(w, "User not found")
	case entity.ErrBedNotFound:
		response.NotFound(w, "Bed not found in this room")
	case entity.ErrDuplicateBedNumber:
		response.Conflict(w, "Bed number already exists in this room")
	case entity.ErrRoomCapacityReached:
		response.Conflict(w, "Room capacity reached")
	case entity.ErrBedOccupied:
		response.Conflict(w, "Bed is already occupied")
	case entity.ErrBedUnderMaintenance:
		response.Conflict(w, "Bed is under maintenance")
	case entity.ErrBedAlreadyReserved:
		response.Conflict(w, "Bed is already reserved")
	case entity.ErrBedNotReserved:
		response.Conflict(w, "Bed is not reserved")
	case entity.ErrBedVacant:
		response.Conflict(w, "Bed is already vacant")
	case usecase.ErrBedHasActiveBooking:
		response.Conflict(w, "Bed is held by a checked-in booking, use booking check-out")
	case entity.ErrOccupiedStatusLock:
		response.Conflict(w, "Cannot change status of an occupied bed")
	default:
		response.InternalServerError(w, "Failed to process bed request")
	}
}

// parseRoomAndBed extracts the room ID and bed number path parameters
func parseRoomAndBed(r *http.Request) (uuid.UUID, string, error) {
	vars := mux.Vars(r)
	roomID, err := uuid.Parse(vars["roomId"])
	if err != nil {
		return uuid.Nil, "", err
	}
	return roomID, vars["bedNumber"], nil
}

func (h *BedHandler) AddBed(w http.ResponseWriter, r *http.Request) {
	actorID, actorRole, ok := actorFromContext(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	roomID, err := uuid.Parse(vars["roomId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid room ID", nil)
		return
	}

	var req dto.AddBedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	bed, err := h.bedUsecase.AddBed(r.Context(), actorID, actorRole, roomID, &req)
	if err != nil {
		bedError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Bed added successfully", bed)
}

func (h *BedHandler) UpdateBed(w http.ResponseWriter, r *http.Request) {
	actorID, actorRole, ok := actorFromContext(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	roomID, bedNumber, err := parseRoomAndBed(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid room ID", nil)
		return
	}

	var req dto.UpdateBedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	bed, err := h.bedUsecase.UpdateBed(r.Context(), actorID, actorRole, roomID, bedNumber, &req)
	if err != nil {
		bedError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Bed updated successfully", bed)
}

func (h *BedHandler) BulkUpdateBeds(w http.ResponseWriter, r *http.Request) {
	actorID, actorRole, ok := actorFromContext(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	roomID, err := uuid.Parse(vars["roomId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid room ID", nil)
		return
	}

	var req dto.BulkUpdateBedsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	beds, err := h.bedUsecase.BulkUpdateBeds(r.Context(), actorID, actorRole, roomID, &req)
	if err != nil {
		bedError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Beds updated successfully", beds)
}

func (h *BedHandler) RemoveBed(w http.ResponseWriter, r *http.Request) {
	actorID, actorRole, ok := actorFromContext(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	roomID, bedNumber, err := parseRoomAndBed(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid room ID", nil)
		return
	}

	if err := h.bedUsecase.RemoveBed(r.Context(), actorID, actorRole, roomID, bedNumber); err != nil {
		bedError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Bed removed successfully", nil)
}

func (h *BedHandler) SetMaintenance(w http.ResponseWriter, r *http.Request) {
	actorID, actorRole, ok := actorFromContext(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	roomID, bedNumber, err := parseRoomAndBed(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid room ID", nil)
		return
	}

	bed, err := h.bedUsecase.SetMaintenance(r.Context(), actorID, actorRole, roomID, bedNumber)
	if err != nil {
		bedError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Bed moved to maintenance", bed)
}

func (h *BedHandler) ReserveBed(w http.ResponseWriter, r *http.Request) {
	actorID, actorRole, ok := actorFromContext(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	roomID, bedNumber, err := parseRoomAndBed(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid room ID", nil)
		return
	}

	var req dto.ReserveBedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	bed, err := h.bedUsecase.Reserve(r.Context(), actorID, actorRole, roomID, bedNumber, &req)
	if err != nil {
		bedError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Bed reserved successfully", bed)
}

func (h *BedHandler) CancelReservation(w http.ResponseWriter, r *http.Request) {
	actorID, actorRole, ok := actorFromContext(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	roomID, bedNumber, err := parseRoomAndBed(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid room ID", nil)
		return
	}

	bed, err := h.bedUsecase.CancelReservation(r.Context(), actorID, actorRole, roomID, bedNumber)
	if err != nil {
		bedError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Reservation cancelled successfully", bed)
}

func (h *BedHandler) AssignBed(w http.ResponseWriter, r *http.Request) {
	actorID, actorRole, ok := actorFromContext(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	roomID, bedNumber, err := parseRoomAndBed(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid room ID", nil)
		return
	}

	var req dto.AssignBedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	bed, err := h.bedUsecase.Assign(r.Context(), actorID, actorRole, roomID, bedNumber, &req)
	if err != nil {
		bedError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Bed assigned successfully", bed)
}

func (h *BedHandler) VacateBed(w http.ResponseWriter, r *http.Request) {
	actorID, actorRole, ok := actorFromContext(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	roomID, bedNumber, err := parseRoomAndBed(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid room ID", nil)
		return
	}

	result, err := h.bedUsecase.Vacate(r.Context(), actorID, actorRole, roomID, bedNumber)
	if err != nil {
		bedError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Bed vacated successfully", result)
}

func (h *BedHandler) SwapBeds(w http.ResponseWriter, r *http.Request) {
	actorID, actorRole, ok := actorFromContext(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	roomID, err := uuid.Parse(vars["roomId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid room ID", nil)
		return
	}

	var req dto.SwapBedsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.bedUsecase.Swap(r.Context(), actorID, actorRole, roomID, &req)
	if err != nil {
		bedError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Beds swapped successfully", result)
}

func (h *BedHandler) ListAvailableBeds(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	hostelID, err := uuid.Parse(vars["hostelId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid hostel ID", nil)
		return
	}

	query := r.URL.Query()
	filter := entity.AvailableBedFilter{
		RoomType: query.Get("room_type"),
	}
	if raw := query.Get("floor"); raw != "" {
		floor, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid floor filter", nil)
			return
		}
		filter.Floor = &floor
	}
	if filter.MinRent, err = usecase.ParseRentBound(query.Get("min_rent")); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid min_rent filter", nil)
		return
	}
	if filter.MaxRent, err = usecase.ParseRentBound(query.Get("max_rent")); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid max_rent filter", nil)
		return
	}

	beds, err := h.bedUsecase.ListAvailable(r.Context(), hostelID, filter)
	if err != nil {
		response.InternalServerError(w, "Failed to list available beds")
		return
	}

	response.Success(w, http.StatusOK, "Available beds retrieved successfully", beds)
}
