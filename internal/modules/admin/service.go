package admin

import (
	"context"
	"errors"

	"creativeconnect/internal/domain"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("no pending user with that id or already approved")

type Service struct {
	users    UserRepository
	notifier ApprovalNotifier
	log      *zap.Logger
}

func NewService(users UserRepository, notifier ApprovalNotifier, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{users: users, notifier: notifier, log: log}
}

func (s *Service) ListPending(ctx context.Context) ([]domain.User, error) {
	return s.users.ListPending(ctx)
}

func (s *Service) GetPending(ctx context.Context, id int64) (*domain.User, error) {
	u, err := s.users.GetPending(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

// Approve flips the approval flag exactly once and notifies the user. A
// failed notification does not undo the approval.
func (s *Service) Approve(ctx context.Context, id int64) (*domain.User, error) {
	u, err := s.GetPending(ctx, id)
	if err != nil {
		return nil, err
	}

	n, err := s.users.Approve(ctx, id)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, ErrNotFound
	}
	u.Approved = true
	s.log.Info("user approved", zap.Int64("user_id", id), zap.String("role", string(u.Role)))

	if s.notifier != nil {
		if err := s.notifier.SendApproved(ctx, u.Email, u.Name); err != nil {
			s.log.Warn("approval email failed", zap.Int64("user_id", id), zap.Error(err))
		}
	}
	return u, nil
}

func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.ListAll(ctx)
}
