package model

import "time"

// Message 聊天訊息。ReceiverID 與 EventID 至少其一：私訊或活動聊天室
type Message struct {
	ID         int       `json:"id" db:"id"`
	SenderID   int       `json:"sender_id" db:"sender_id"`
	ReceiverID *int      `json:"receiver_id,omitempty" db:"receiver_id"`
	EventID    *int      `json:"event_id,omitempty" db:"event_id"`
	Content    string    `json:"content" db:"content"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

type SendMessageRequest struct {
	ReceiverID *int   `json:"receiverId"`
	EventID    *int   `json:"eventId"`
	Content    string `json:"content" binding:"required"`
}
