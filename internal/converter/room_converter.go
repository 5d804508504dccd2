package converter

import (
	"hostelhub/internal/delivery/dto"
	"hostelhub/internal/domain/entity"
)

// RoomToResponse converts a Room entity to RoomResponse DTO
func RoomToResponse(room *entity.Room) *dto.RoomResponse {
	if room == nil {
		return nil
	}

	return &dto.RoomResponse{
		ID:               room.ID,
		HostelID:         room.HostelID,
		RoomNumber:       room.RoomNumber,
		Floor:            room.Floor,
		RoomType:         room.RoomType,
		Capacity:         room.Capacity,
		CurrentOccupancy: room.CurrentOccupancy,
		Status:           string(room.Status),
		Amenities:        room.Amenities,
		Beds:             BedsToResponses(room.Beds),
		CreatedAt:        room.CreatedAt,
		UpdatedAt:        room.UpdatedAt,
	}
}

// RoomsToResponses converts a slice of Room entities to response DTOs
func RoomsToResponses(rooms []entity.Room) []dto.RoomResponse {
	responses := make([]dto.RoomResponse, len(rooms))
	for i := range rooms {
		responses[i] = *RoomToResponse(&rooms[i])
	}
	return responses
}
