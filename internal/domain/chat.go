package domain

import "time"

// ChatMessage is append-only and always belongs to one booking.
type ChatMessage struct {
	ID        int64     `json:"message_id" gorm:"column:message_id;primaryKey"`
	BookingID int64     `json:"booking_id" gorm:"column:booking_id;not null;index"`
	SenderID  int64     `json:"sender_id" gorm:"column:sender_id;not null"`
	Message   string    `json:"message" gorm:"column:message;type:text;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
}

func (ChatMessage) TableName() string { return "chat_messages" }
