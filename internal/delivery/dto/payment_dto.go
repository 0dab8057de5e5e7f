package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type RecordPaymentRequest struct {
	Method        string          `json:"method" validate:"required,oneof=cash electronic_transfer"`
	Amount        decimal.Decimal `json:"amount" validate:"required"`
	ExternalTxnID string          `json:"external_txn_id"`
	AlsoComplete  bool            `json:"also_complete"`
	// Report is only consulted when AlsoComplete is true and no draft
	// report was saved earlier.
	Report *CompletionReportRequest `json:"report,omitempty"`
}

// Response DTOs

type PaymentResponse struct {
	ID                 uuid.UUID       `json:"id"`
	BookingID          uuid.UUID       `json:"booking_id"`
	Method             string          `json:"method"`
	ExternalTxnID      string          `json:"external_txn_id,omitempty"`
	Amount             decimal.Decimal `json:"amount"`
	Status             string          `json:"status"`
	EngineerCommission decimal.Decimal `json:"engineer_commission"`
	CompanyCommission  decimal.Decimal `json:"company_commission"`
	CommissionRate     decimal.Decimal `json:"commission_rate"`
	RecordedAt         time.Time       `json:"recorded_at"`
}

type RecordPaymentResponse struct {
	Payment *PaymentResponse `json:"payment"`
	Booking *BookingResponse `json:"booking,omitempty"`
}

type PaymentListResponse struct {
	Payments []PaymentResponse `json:"payments"`
	Total    int               `json:"total"`
}
