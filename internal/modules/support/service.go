package support

import (
	"context"
	"errors"
	"strings"

	"creativeconnect/internal/domain"

	"go.uber.org/zap"
)

var ErrValidation = errors.New("subject and message are required")

type TicketRepository interface {
	Create(ctx context.Context, t *domain.SupportTicket) error
	ListByUser(ctx context.Context, userID int64) ([]domain.SupportTicket, error)
}

type Service struct {
	tickets TicketRepository
	log     *zap.Logger
}

func NewService(tickets TicketRepository, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{tickets: tickets, log: log}
}

func (s *Service) Open(ctx context.Context, userID int64, subject, message string) (*domain.SupportTicket, error) {
	subject = strings.TrimSpace(subject)
	message = strings.TrimSpace(message)
	if subject == "" || message == "" {
		return nil, ErrValidation
	}

	t := &domain.SupportTicket{
		UserID:  userID,
		Subject: subject,
		Message: message,
		Status:  domain.TicketOpen,
	}
	if err := s.tickets.Create(ctx, t); err != nil {
		return nil, err
	}
	s.log.Info("support ticket opened", zap.Int64("ticket_id", t.ID), zap.Int64("user_id", userID))
	return t, nil
}

func (s *Service) ListMine(ctx context.Context, userID int64) ([]domain.SupportTicket, error) {
	return s.tickets.ListByUser(ctx, userID)
}
