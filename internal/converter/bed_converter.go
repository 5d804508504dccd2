package converter

import (
	"hostelhub/internal/delivery/dto"
	"hostelhub/internal/domain/entity"
)

// BedToResponse converts a Bed entity to BedResponse DTO
func BedToResponse(bed *entity.Bed) *dto.BedResponse {
	if bed == nil {
		return nil
	}

	return &dto.BedResponse{
		ID:                bed.ID,
		RoomID:            bed.RoomID,
		BedNumber:         bed.BedNumber,
		IsOccupied:        bed.IsOccupied,
		Status:            string(bed.Status),
		RentAmount:        bed.RentAmount,
		Amenities:         bed.Amenities,
		CurrentOccupantID: bed.CurrentOccupantID,
		HeldBy:            bed.HeldBy,
		ReservationExpiry: bed.ReservationExpiry,
		StudentCode:       bed.StudentCode,
		StudentName:       bed.StudentName,
		StudentPhone:      bed.StudentPhone,
		StudentEmail:      bed.StudentEmail,
		CheckInDate:       bed.CheckInDate,
		CreatedAt:         bed.CreatedAt,
		UpdatedAt:         bed.UpdatedAt,
	}
}

// BedsToResponses converts a slice of Bed entities to response DTOs
func BedsToResponses(beds []entity.Bed) []dto.BedResponse {
	if len(beds) == 0 {
		return nil
	}
	responses := make([]dto.BedResponse, len(beds))
	for i := range beds {
		responses[i] = *BedToResponse(&beds[i])
	}
	return responses
}

// BedOccupantToSnapshot converts the occupant value returned by a vacate
func BedOccupantToSnapshot(o entity.BedOccupant) dto.BedOccupantSnapshot {
	return dto.BedOccupantSnapshot{
		UserID:       o.UserID,
		StudentCode:  o.StudentCode,
		StudentName:  o.StudentName,
		StudentPhone: o.StudentPhone,
		StudentEmail: o.StudentEmail,
		CheckInDate:  o.CheckInDate,
	}
}

// BedsInRoomsToResponses converts the available-bed projection
func BedsInRoomsToResponses(beds []entity.BedInRoom) []dto.AvailableBedResponse {
	responses := make([]dto.AvailableBedResponse, len(beds))
	for i := range beds {
		responses[i] = dto.AvailableBedResponse{
			RoomID:     beds[i].RoomID,
			RoomNumber: beds[i].RoomNumber,
			Floor:      beds[i].Floor,
			RoomType:   beds[i].RoomType,
			Bed:        *BedToResponse(&beds[i].Bed),
		}
	}
	return responses
}
