package model

import "time"

// BookingStatus 訂位狀態類型
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// IsValid 驗證狀態是否有效
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo 檢查是否可以轉換到目標狀態（confirmed 與 cancelled 為終態）
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	transitions := map[BookingStatus][]BookingStatus{
		BookingStatusPending:   {BookingStatusConfirmed, BookingStatusCancelled},
		BookingStatusConfirmed: {},
		BookingStatusCancelled: {},
	}

	allowed, ok := transitions[s]
	if !ok {
		return false
	}

	for _, status := range allowed {
		if status == target {
			return true
		}
	}
	return false
}

// Booking 訂位模型
type Booking struct {
	ID        int           `json:"id" db:"id"`
	EventID   int           `json:"event_id" db:"event_id"`
	UserID    int           `json:"user_id" db:"user_id"`
	Status    BookingStatus `json:"status" db:"status"`
	CreatedAt time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt time.Time     `json:"updated_at" db:"updated_at"`
}

type CreateBookingRequest struct {
	EventID int `json:"eventId" binding:"required"`
}

type ConfirmBookingRequest struct {
	UserID int `json:"userId" binding:"required"`
}
