package chat

import (
	"context"

	"creativeconnect/internal/domain"
	"creativeconnect/internal/repository"
)

type MessageRepository interface {
	CreateMessage(ctx context.Context, msg *domain.ChatMessage) error
	Recent(ctx context.Context, bookingID int64, limit int) ([]repository.ChatLine, error)
}

type BookingReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}
