package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentStatus 付款狀態類型
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentMethodCash   PaymentMethod = "cash"
	PaymentMethodCredit PaymentMethod = "credit"
	PaymentMethodPaypal PaymentMethod = "paypal"
)

// Payment 付款模型，建立後除 status 外為唯讀
type Payment struct {
	ID        int             `json:"id" db:"id"`
	BookingID int             `json:"booking_id" db:"booking_id"`
	UserID    int             `json:"user_id" db:"user_id"`
	Amount    decimal.Decimal `json:"amount" db:"amount"`
	Method    PaymentMethod   `json:"method" db:"method"`
	Status    PaymentStatus   `json:"status" db:"status"`
	Reference uuid.UUID       `json:"reference" db:"reference"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
}

type ConfirmPaymentRequest struct {
	BookingID int             `json:"bookingId" binding:"required"`
	UserID    int             `json:"userId" binding:"required"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	Method    PaymentMethod   `json:"method" binding:"required,oneof=cash credit paypal"`
}

// ConfirmPaymentResponse 付款確認回應：更新後的訂位與建立的付款
type ConfirmPaymentResponse struct {
	Booking *Booking `json:"booking"`
	Payment *Payment `json:"payment"`
}
