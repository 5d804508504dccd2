package converter

import (
	"hostelhub/internal/delivery/dto"
	"hostelhub/internal/domain/entity"
)

// StudentToResponse converts a Student entity to StudentResponse DTO
func StudentToResponse(student *entity.Student) *dto.StudentResponse {
	if student == nil {
		return nil
	}

	return &dto.StudentResponse{
		ID:          student.ID,
		StudentCode: student.StudentCode,
		HostelID:    student.HostelID,
		Name:        student.Name,
		Email:       student.Email,
		Phone:       student.Phone,
		RoomID:      student.RoomID,
		BedNumber:   student.BedNumber,
		UserID:      student.UserID,
		EmergencyContact: dto.EmergencyContactDTO{
			Name:         student.EmergencyContact.Name,
			Relationship: student.EmergencyContact.Relationship,
			Phone:        student.EmergencyContact.Phone,
		},
		CheckInDate:  student.CheckInDate,
		CheckOutDate: student.CheckOutDate,
		Status:       string(student.Status),
		BookingRef:   student.BookingRef,
		Source:       student.Source,
		CreatedAt:    student.CreatedAt,
		UpdatedAt:    student.UpdatedAt,
	}
}

// StudentsToResponses converts a slice of Student entities to response DTOs
func StudentsToResponses(students []entity.Student) []dto.StudentResponse {
	responses := make([]dto.StudentResponse, len(students))
	for i := range students {
		responses[i] = *StudentToResponse(&students[i])
	}
	return responses
}
