package model

import "time"

type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "open"
	TicketStatusInProgress TicketStatus = "in_progress"
	TicketStatusClosed     TicketStatus = "closed"
)

func (s TicketStatus) IsValid() bool {
	switch s {
	case TicketStatusOpen, TicketStatusInProgress, TicketStatusClosed:
		return true
	}
	return false
}

// SupportTicket 客服工單，未登入使用者 UserID 為空
type SupportTicket struct {
	ID        int          `json:"id" db:"id"`
	UserID    *int         `json:"user_id,omitempty" db:"user_id"`
	Name      string       `json:"name" db:"name"`
	Email     string       `json:"email" db:"email"`
	Subject   string       `json:"subject" db:"subject"`
	Message   string       `json:"message" db:"message"`
	Category  string       `json:"category" db:"category"`
	Status    TicketStatus `json:"status" db:"status"`
	CreatedAt time.Time    `json:"created_at" db:"created_at"`
}

type SubmitTicketRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Subject  string `json:"subject" binding:"required"`
	Message  string `json:"message" binding:"required"`
	Category string `json:"category" binding:"required"`
}

type UpdateTicketStatusRequest struct {
	Status TicketStatus `json:"status" binding:"required,oneof=open in_progress closed"`
}
