package converter

import (
	"repairhub/internal/delivery/dto"
	"repairhub/internal/domain/entity"

	"github.com/google/uuid"
)

// BookingToResponse converts a Booking entity to BookingResponse DTO
func BookingToResponse(booking *entity.Booking) *dto.BookingResponse {
	if booking == nil {
		return nil
	}

	response := &dto.BookingResponse{
		ID:               booking.ID,
		CustomerID:       booking.CustomerID,
		DeviceType:       booking.DeviceType,
		DeviceModel:      booking.DeviceModel,
		ServiceType:      booking.ServiceType,
		IssueDescription: booking.IssueDescription,
		ContactPhone:     booking.ContactPhone,
		Address:          booking.Address,
		PreferredAt:      booking.PreferredAt,
		Status:           string(booking.Status),
		AssignedEngineer: booking.AssignedEngineer,
		HoldReason:       booking.HoldReason,
		UnableReason:     booking.UnableReason,
		CancelReason:     booking.CancelReason,
		CreatedAt:        booking.CreatedAt,
		UpdatedAt:        booking.UpdatedAt,
	}

	// Include customer info if preloaded
	if booking.Customer.ID != uuid.Nil {
		response.CustomerName = booking.Customer.FullName
	}

	return response
}

// BookingsToResponses converts a slice of Booking entities to slice of BookingResponse DTOs
func BookingsToResponses(bookings []entity.Booking) []dto.BookingResponse {
	responses := make([]dto.BookingResponse, len(bookings))
	for i, booking := range bookings {
		resp := BookingToResponse(&booking)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// HistoryToResponses converts history entries to DTOs
func HistoryToResponses(entries []entity.BookingHistory) []dto.HistoryEntryResponse {
	responses := make([]dto.HistoryEntryResponse, len(entries))
	for i, entry := range entries {
		responses[i] = dto.HistoryEntryResponse{
			ID:             entry.ID,
			BookingID:      entry.BookingID,
			PreviousStatus: string(entry.PreviousStatus),
			NewStatus:      string(entry.NewStatus),
			ActorType:      string(entry.ActorType),
			ActorName:      entry.ActorName,
			Remarks:        entry.Remarks,
			CreatedAt:      entry.CreatedAt,
		}
	}
	return responses
}

// ReportToResponse converts a CompletionReport entity to its DTO
func ReportToResponse(report *entity.CompletionReport) *dto.CompletionReportResponse {
	if report == nil {
		return nil
	}
	return &dto.CompletionReportResponse{
		ID:            report.ID,
		BookingID:     report.BookingID,
		EngineerID:    report.EngineerID,
		WorkPerformed: report.WorkPerformed,
		PartsUsed:     report.PartsUsed,
		TimeSpentMin:  report.TimeSpentMin,
		Notes:         report.Notes,
		ProofImages:   report.ProofImages,
		CompletedAt:   report.CompletedAt,
	}
}

// EngineersToResponses converts engineer users to DTOs
func EngineersToResponses(users []entity.User) []dto.EngineerResponse {
	responses := make([]dto.EngineerResponse, len(users))
	for i, user := range users {
		responses[i] = dto.EngineerResponse{
			ID:       user.ID,
			FullName: user.FullName,
			Email:    user.Email,
			Phone:    user.Phone,
		}
	}
	return responses
}
