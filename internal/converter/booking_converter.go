package converter

import (
	"hostelhub/internal/delivery/dto"
	"hostelhub/internal/domain/entity"
	"hostelhub/internal/service"
)

// BookingToResponse converts a Booking entity to BookingResponse DTO
func BookingToResponse(booking *entity.Booking) *dto.BookingResponse {
	if booking == nil {
		return nil
	}

	return &dto.BookingResponse{
		ID:        booking.ID,
		UserID:    booking.UserID,
		HostelID:  booking.HostelID,
		RoomID:    booking.RoomID,
		BedID:     booking.BedID,
		StudentID: booking.StudentID,

		CheckInDate:    booking.CheckInDate,
		CheckOutDate:   booking.CheckOutDate,
		DurationMonths: booking.DurationMonths,
		ActualCheckIn:  booking.ActualCheckIn,
		ActualCheckOut: booking.ActualCheckOut,

		RentAmount:      booking.RentAmount,
		SecurityDeposit: booking.SecurityDeposit,
		TotalAmount:     booking.TotalAmount,
		PendingAmount:   booking.PendingAmount,
		AdvanceAmount:   booking.AdvanceAmount,
		DepositPaid:     booking.DepositPaid,

		Status: string(booking.Status),

		EmergencyContact: dto.EmergencyContactDTO{
			Name:         booking.EmergencyContact.Name,
			Relationship: booking.EmergencyContact.Relationship,
			Phone:        booking.EmergencyContact.Phone,
		},
		Documents: documentsToResponses(booking.Documents),

		CanReview:       booking.CanReview,
		ReviewSubmitted: booking.ReviewSubmitted,

		CancelledAt:        booking.CancelledAt,
		CancelledBy:        booking.CancelledBy,
		CancellationReason: booking.CancellationReason,

		Notes:     booking.Notes,
		CreatedBy: booking.CreatedBy,
		CreatedAt: booking.CreatedAt,
		UpdatedAt: booking.UpdatedAt,
	}
}

func documentsToResponses(docs entity.DocumentList) []dto.DocumentResponse {
	if len(docs) == 0 {
		return nil
	}
	responses := make([]dto.DocumentResponse, len(docs))
	for i, doc := range docs {
		responses[i] = dto.DocumentResponse{
			Type:       doc.Type,
			URL:        doc.URL,
			UploadedAt: doc.UploadedAt,
		}
	}
	return responses
}

// BookingsToResponses converts a slice of Booking entities to response DTOs
func BookingsToResponses(bookings []entity.Booking) []dto.BookingResponse {
	responses := make([]dto.BookingResponse, len(bookings))
	for i := range bookings {
		responses[i] = *BookingToResponse(&bookings[i])
	}
	return responses
}

// CheckInResultToResponse converts the coordinator result for delivery
func CheckInResultToResponse(result *service.CheckInResult) *dto.CheckInResponse {
	if result == nil {
		return nil
	}

	return &dto.CheckInResponse{
		Booking:        *BookingToResponse(result.Booking),
		Student:        StudentToResponse(result.Student),
		Bed:            BedToResponse(result.Bed),
		ConversionNote: result.ConversionNote,
	}
}

// CheckOutResultToResponse converts the coordinator result for delivery
func CheckOutResultToResponse(result *service.CheckOutResult) *dto.CheckOutResponse {
	if result == nil {
		return nil
	}

	return &dto.CheckOutResponse{
		Booking:          *BookingToResponse(result.Booking),
		Student:          StudentToResponse(result.Student),
		PreviousOccupant: BedOccupantToSnapshot(result.PreviousOccupant),
		SecurityDeposit:  result.SecurityDeposit,
		Damages:          result.Damages,
		RefundAmount:     result.RefundAmount,
	}
}
