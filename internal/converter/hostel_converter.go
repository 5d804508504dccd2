package converter

import (
	"hostelhub/internal/delivery/dto"
	"hostelhub/internal/domain/entity"
)

// HostelToResponse converts a Hostel entity to HostelResponse DTO
func HostelToResponse(hostel *entity.Hostel) *dto.HostelResponse {
	if hostel == nil {
		return nil
	}

	active := true
	if hostel.IsActive != nil {
		active = *hostel.IsActive
	}

	return &dto.HostelResponse{
		ID:              hostel.ID,
		OwnerID:         hostel.OwnerID,
		Name:            hostel.Name,
		Description:     hostel.Description,
		Street:          hostel.Street,
		City:            hostel.City,
		State:           hostel.State,
		Pincode:         hostel.Pincode,
		Country:         hostel.Country,
		ContactPhone:    hostel.ContactPhone,
		ContactEmail:    hostel.ContactEmail,
		Amenities:       hostel.Amenities,
		Rules:           hostel.Rules,
		RatingAverage:   hostel.RatingAverage,
		RatingCount:     hostel.RatingCount,
		RentDueDay:      hostel.RentDueDay,
		LateFeePercent:  hostel.LateFeePercent,
		SecurityDeposit: hostel.SecurityDeposit,
		IsActive:        active,
		CreatedAt:       hostel.CreatedAt,
		UpdatedAt:       hostel.UpdatedAt,
	}
}

// HostelsToResponses converts a slice of Hostel entities to response DTOs
func HostelsToResponses(hostels []entity.Hostel) []dto.HostelResponse {
	responses := make([]dto.HostelResponse, len(hostels))
	for i := range hostels {
		responses[i] = *HostelToResponse(&hostels[i])
	}
	return responses
}
