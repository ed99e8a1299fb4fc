package model

import "time"

type GuestStatus string

const (
	GuestStatusInvited   GuestStatus = "invited"
	GuestStatusConfirmed GuestStatus = "confirmed"
	GuestStatusDeclined  GuestStatus = "declined"
)

// Guest 活動賓客，(event_id, email) 為唯一鍵
type Guest struct {
	ID        int         `json:"id" db:"id"`
	EventID   int         `json:"event_id" db:"event_id"`
	Name      string      `json:"name" db:"name"`
	Email     string      `json:"email" db:"email"`
	Phone     *string     `json:"phone,omitempty" db:"phone"`
	Status    GuestStatus `json:"status" db:"status"`
	CreatedAt time.Time   `json:"created_at" db:"created_at"`
}

type AddGuestRequest struct {
	EventID int         `json:"eventId" binding:"required"`
	Name    string      `json:"name" binding:"required"`
	Email   string      `json:"email" binding:"required,email"`
	Phone   *string     `json:"phone"`
	Status  GuestStatus `json:"status" binding:"omitempty,oneof=invited confirmed declined"`
}

type UpdateGuestParams struct {
	Name   *string      `json:"name"`
	Email  *string      `json:"email"`
	Phone  *string      `json:"phone"`
	Status *GuestStatus `json:"status"`
}

// GuestQRCode 賓客簽到 QR code（PNG data URL）
type GuestQRCode struct {
	Guest  *Guest `json:"guest"`
	QRCode string `json:"qrCode"`
}
