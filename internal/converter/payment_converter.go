package converter

import (
	"hostelhub/internal/delivery/dto"
	"hostelhub/internal/domain/entity"
)

// PaymentToResponse converts a Payment entity to PaymentResponse DTO
func PaymentToResponse(payment *entity.Payment) *dto.PaymentResponse {
	if payment == nil {
		return nil
	}

	return &dto.PaymentResponse{
		ID:                payment.ID,
		BookingID:         payment.BookingID,
		UserID:            payment.UserID,
		HostelID:          payment.HostelID,
		Month:             payment.Month,
		RentAmount:        payment.RentAmount,
		DueDate:           payment.DueDate,
		PaidDate:          payment.PaidDate,
		LateFee:           payment.LateFee,
		AdditionalCharges: chargeLinesToResponses(payment.AdditionalCharges),
		Discounts:         chargeLinesToResponses(payment.Discounts),
		TotalAmount:       payment.TotalAmount,
		AmountPaid:        payment.AmountPaid,
		PaymentStatus:     string(payment.PaymentStatus),
		PaymentMethod:     payment.PaymentMethod,
		TransactionID:     payment.TransactionID,
		ReceiptNumber:     payment.ReceiptNumber,
		Notes:             payment.Notes,
		CreatedAt:         payment.CreatedAt,
		UpdatedAt:         payment.UpdatedAt,
	}
}

func chargeLinesToResponses(lines entity.ChargeLines) []dto.ChargeLineDTO {
	if len(lines) == 0 {
		return nil
	}
	responses := make([]dto.ChargeLineDTO, len(lines))
	for i, line := range lines {
		responses[i] = dto.ChargeLineDTO{
			Description: line.Description,
			Amount:      line.Amount,
			Reason:      line.Reason,
		}
	}
	return responses
}

// PaymentsToResponses converts a slice of Payment entities to response DTOs
func PaymentsToResponses(payments []entity.Payment) []dto.PaymentResponse {
	responses := make([]dto.PaymentResponse, len(payments))
	for i := range payments {
		responses[i] = *PaymentToResponse(&payments[i])
	}
	return responses
}
