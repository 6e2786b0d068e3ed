package repository

import (
	"context"
	"time"

	"creativeconnect/internal/domain"

	"gorm.io/gorm"
)

type ChatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{db: db}
}

// ChatLine is a message joined with its sender's name.
type ChatLine struct {
	ID         int64     `gorm:"column:message_id"`
	BookingID  int64     `gorm:"column:booking_id"`
	SenderID   int64     `gorm:"column:sender_id"`
	SenderName string    `gorm:"column:sender_name"`
	Message    string    `gorm:"column:message"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (r *ChatRepository) CreateMessage(ctx context.Context, msg *domain.ChatMessage) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

// Recent returns the last limit messages of a booking, oldest first.
func (r *ChatRepository) Recent(ctx context.Context, bookingID int64, limit int) ([]ChatLine, error) {
	var lines []ChatLine
	err := r.db.WithContext(ctx).Raw(`
		SELECT m.message_id, m.booking_id, m.sender_id, u.name AS sender_name, m.message, m.created_at
		FROM chat_messages m
		JOIN users u ON u.id = m.sender_id
		WHERE m.booking_id = ?
		ORDER BY m.message_id DESC
		LIMIT ?
	`, bookingID, limit).Scan(&lines).Error
	if err != nil {
		return nil, err
	}

	// fetched newest first for LIMIT, shown chronologically
	for i, j := 0, len(lines)-1; i < j; i, j = i+1, j-1 {
		lines[i], lines[j] = lines[j], lines[i]
	}
	return lines, nil
}
