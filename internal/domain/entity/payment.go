package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMethod represents how a payment was collected
type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "cash"
	PaymentMethodTransfer PaymentMethod = "electronic_transfer"
)

// PaymentStatus represents the settlement state of a payment
type PaymentStatus string

const (
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

// EngineerCommissionRate is the fixed engineer share of every payment.
// The split is system-wide, not configurable per booking.
var EngineerCommissionRate = decimal.NewFromFloat(0.30)

// Payment records money collected against a booking together with the
// engineer/company commission split. Amount and commissions are immutable
// once created; only the status may change later (e.g. refunded).
type Payment struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	BookingID          uuid.UUID       `gorm:"type:uuid;not null;index" json:"booking_id"`
	Method             PaymentMethod   `gorm:"type:varchar(30);not null" json:"method"`
	ExternalTxnID      string          `gorm:"type:varchar(200)" json:"external_txn_id,omitempty"`
	Amount             decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Status             PaymentStatus   `gorm:"type:varchar(20);not null;default:'completed'" json:"status"`
	EngineerCommission decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"engineer_commission"`
	CompanyCommission  decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"company_commission"`
	CommissionRate     decimal.Decimal `gorm:"type:decimal(4,2);not null" json:"commission_rate"`
	RecordedAt         time.Time       `gorm:"autoCreateTime" json:"recorded_at"`
}

func (Payment) TableName() string {
	return "payments"
}

// SplitCommission divides amount into engineer and company shares at the
// fixed rate. The company share is computed as the remainder so the two
// always sum exactly to amount regardless of rounding.
func SplitCommission(amount decimal.Decimal) (engineer, company decimal.Decimal) {
	engineer = amount.Mul(EngineerCommissionRate).Round(2)
	company = amount.Sub(engineer)
	return engineer, company
}
