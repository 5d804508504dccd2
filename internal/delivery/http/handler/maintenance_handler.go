package handler

import (
	"encoding/json"
	"net/http"

	"hostelhub/internal/delivery/dto"
	"hostelhub/internal/usecase"
	"hostelhub/pkg/response"
	"hostelhub/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type MaintenanceHandler struct {
	maintenanceUsecase usecase.MaintenanceUsecase
	validator          *validator.CustomValidator
}

func NewMaintenanceHandler(maintenanceUsecase usecase.MaintenanceUsecase, validator *validator.CustomValidator) *MaintenanceHandler {
	return &MaintenanceHandler{
		maintenanceUsecase: maintenanceUsecase,
		validator:          validator,
	}
}

func ticketError(w http.ResponseWriter, err error) {
	switch err {
	case usecase.ErrTicketNotFound:
		response.NotFound(w, "Ticket not found")
	case usecase.ErrHostelNotFound:
		response.NotFound(w, "Hostel not found")
	case usecase.ErrRoomNotFound:
		response.NotFound(w, "Room not found in this hostel")
	case usecase.ErrNotHostelOwner:
		response.Forbidden(w, "You do not own this hostel")
	case usecase.ErrInvalidTicketTransition:
		response.Conflict(w, "Ticket status transition not allowed")
	default:
		response.InternalServerError(w, "Failed to process ticket request")
	}
}

func (h *MaintenanceHandler) CreateTicket(w http.ResponseWriter, r *http.Request) {
	actorID, _, ok := actorFromContext(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateTicketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	ticket, err := h.maintenanceUsecase.Create(r.Context(), actorID, &req)
	if err != nil {
		ticketError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Ticket created successfully", ticket)
}

func (h *MaintenanceHandler) GetTicket(w http.ResponseWriter, r *http.Request) {
	actorID, actorRole, ok := actorFromContext(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	ticketID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid ticket ID", nil)
		return
	}

	ticket, err := h.maintenanceUsecase.GetByID(r.Context(), actorID, actorRole, ticketID)
	if err != nil {
		ticketError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Ticket retrieved successfully", ticket)
}

func (h *MaintenanceHandler) ListTicketsByHostel(w http.ResponseWriter, r *http.Request) {
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

	status := r.URL.Query().Get("status")

	tickets, err := h.maintenanceUsecase.ListByHostel(r.Context(), actorID, actorRole, hostelID, status)
	if err != nil {
		ticketError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Tickets retrieved successfully", tickets)
}

func (h *MaintenanceHandler) UpdateTicket(w http.ResponseWriter, r *http.Request) {
	actorID, actorRole, ok := actorFromContext(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	ticketID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid ticket ID", nil)
		return
	}

	var req dto.UpdateTicketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	ticket, err := h.maintenanceUsecase.Update(r.Context(), actorID, actorRole, ticketID, &req)
	if err != nil {
		ticketError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Ticket updated successfully", ticket)
}

func (h *MaintenanceHandler) DeleteTicket(w http.ResponseWriter, r *http.Request) {
	actorID, actorRole, ok := actorFromContext(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	ticketID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid ticket ID", nil)
		return
	}

	if err := h.maintenanceUsecase.Delete(r.Context(), actorID, actorRole, ticketID); err != nil {
		ticketError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Ticket deleted successfully", nil)
}
