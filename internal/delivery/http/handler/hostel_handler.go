package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"hostelhub/internal/delivery/dto"
	"hostelhub/internal/usecase"
	"hostelhub/pkg/response"
	"hostelhub/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type HostelHandler struct {
	hostelUsecase usecase.HostelUsecase
	validator     *validator.CustomValidator
}

func NewHostelHandler(hostelUsecase usecase.HostelUsecase, validator *validator.CustomValidator) *HostelHandler {
	return &HostelHandler{
		hostelUsecase: hostelUsecase,
		validator:     validator,
	}
}

func (h *HostelHandler) CreateHostel(w http.ResponseWriter, r *http.Request) {
	actorID, _, ok := actorFromContext(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateHostelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	hostel, err := h.hostelUsecase.Create(r.Context(), actorID, &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create hostel")
		return
	}

	response.Success(w, http.StatusCreated, "Hostel created successfully", hostel)
}

func (h *HostelHandler) GetHostel(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	hostelID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid hostel ID", nil)
		return
	}

	hostel, err := h.hostelUsecase.GetByID(r.Context(), hostelID)
	if err != nil {
		switch err {
		case usecase.ErrHostelNotFound:
			response.NotFound(w, "Hostel not found")
		default:
			response.InternalServerError(w, "Failed to get hostel")
		}
		return
	}

	response.Success(w, http.StatusOK, "Hostel retrieved successfully", hostel)
}

func (h *HostelHandler) ListHostels(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	hostels, err := h.hostelUsecase.List(r.Context(), limit, offset)
	if err != nil {
		response.InternalServerError(w, "Failed to list hostels")
		return
	}

	response.Success(w, http.StatusOK, "Hostels retrieved successfully", hostels)
}

func (h *HostelHandler) ListMyHostels(w http.ResponseWriter, r *http.Request) {
	actorID, _, ok := actorFromContext(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	hostels, err := h.hostelUsecase.ListByOwner(r.Context(), actorID)
	if err != nil {
		response.InternalServerError(w, "Failed to list hostels")
		return
	}

	response.Success(w, http.StatusOK, "Hostels retrieved successfully", hostels)
}

func (h *HostelHandler) UpdateHostel(w http.ResponseWriter, r *http.Request) {
	actorID, actorRole, ok := actorFromContext(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	hostelID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid hostel ID", nil)
		return
	}

	var req dto.UpdateHostelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	hostel, err := h.hostelUsecase.Update(r.Context(), actorID, actorRole, hostelID, &req)
	if err != nil {
		switch err {
		case usecase.ErrHostelNotFound:
			response.NotFound(w, "Hostel not found")
		case usecase.ErrNotHostelOwner:
			response.Forbidden(w, "You do not own this hostel")
		default:
			response.InternalServerError(w, "Failed to update hostel")
		}
		return
	}

	response.Success(w, http.StatusOK, "Hostel updated successfully", hostel)
}

func (h *HostelHandler) DeleteHostel(w http.ResponseWriter, r *http.Request) {
	actorID, actorRole, ok := actorFromContext(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	hostelID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid hostel ID", nil)
		return
	}

	if err := h.hostelUsecase.Delete(r.Context(), actorID, actorRole, hostelID); err != nil {
		switch err {
		case usecase.ErrHostelNotFound:
			response.NotFound(w, "Hostel not found")
		case usecase.ErrNotHostelOwner:
			response.Forbidden(w, "You do not own this hostel")
		default:
			response.InternalServerError(w, "Failed to delete hostel")
		}
		return
	}

	response.Success(w, http.StatusOK, "Hostel deleted successfully", nil)
}
