package converter

import (
	"repairhub/internal/delivery/dto"
	"repairhub/internal/domain/entity"
)

// PaymentToResponse converts a Payment entity to PaymentResponse DTO
func PaymentToResponse(payment *entity.Payment) *dto.PaymentResponse {
	if payment == nil {
		return nil
	}
	return &dto.PaymentResponse{
		ID:                 payment.ID,
		BookingID:          payment.BookingID,
		Method:             string(payment.Method),
		ExternalTxnID:      payment.ExternalTxnID,
		Amount:             payment.Amount,
		Status:             string(payment.Status),
		EngineerCommission: payment.EngineerCommission,
		CompanyCommission:  payment.CompanyCommission,
		CommissionRate:     payment.CommissionRate,
		RecordedAt:         payment.RecordedAt,
	}
}

// PaymentsToResponses converts a slice of Payment entities to DTOs
func PaymentsToResponses(payments []entity.Payment) []dto.PaymentResponse {
	responses := make([]dto.PaymentResponse, len(payments))
	for i, payment := range payments {
		resp := PaymentToResponse(&payment)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
