package repository

import (
	"context"

	"creativeconnect/internal/domain"

	"gorm.io/gorm"
)

type TicketRepository struct {
	db *gorm.DB
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

func (r *TicketRepository) Create(ctx context.Context, t *domain.SupportTicket) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TicketRepository) ListByUser(ctx context.Context, userID int64) ([]domain.SupportTicket, error) {
	var out []domain.SupportTicket
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("ticket_id DESC").
		Find(&out).Error
	return out, err
}
