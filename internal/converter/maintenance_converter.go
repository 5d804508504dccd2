package converter

import (
	"hostelhub/internal/delivery/dto"
	"hostelhub/internal/domain/entity"
)

// TicketToResponse converts a MaintenanceTicket entity to TicketResponse DTO
func TicketToResponse(ticket *entity.MaintenanceTicket) *dto.TicketResponse {
	if ticket == nil {
		return nil
	}

	return &dto.TicketResponse{
		ID:           ticket.ID,
		HostelID:     ticket.HostelID,
		RoomID:       ticket.RoomID,
		ReportedByID: ticket.ReportedByID,
		Category:     ticket.Category,
		Description:  ticket.Description,
		Priority:     ticket.Priority,
		Status:       string(ticket.Status),
		AssignedToID: ticket.AssignedToID,
		ResolvedAt:   ticket.ResolvedAt,
		CreatedAt:    ticket.CreatedAt,
		UpdatedAt:    ticket.UpdatedAt,
	}
}

// TicketsToResponses converts a slice of MaintenanceTicket entities to response DTOs
func TicketsToResponses(tickets []entity.MaintenanceTicket) []dto.TicketResponse {
	responses := make([]dto.TicketResponse, len(tickets))
	for i := range tickets {
		responses[i] = *TicketToResponse(&tickets[i])
	}
	return responses
}
