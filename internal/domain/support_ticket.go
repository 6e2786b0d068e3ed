package domain

import "time"

const TicketOpen = "open"

type SupportTicket struct {
	ID        int64     `json:"ticket_id" gorm:"column:ticket_id;primaryKey"`
	UserID    int64     `json:"user_id" gorm:"column:user_id;not null;index"`
	Subject   string    `json:"subject" gorm:"column:subject;not null"`
	Message   string    `json:"message" gorm:"column:message;type:text;not null"`
	Status    string    `json:"status" gorm:"column:status;type:varchar(16);not null"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
}

func (SupportTicket) TableName() string { return "support_tickets" }
