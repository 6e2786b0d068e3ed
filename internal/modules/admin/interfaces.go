package admin

import (
	"context"

	"creativeconnect/internal/domain"
)

type UserRepository interface {
	ListPending(ctx context.Context) ([]domain.User, error)
	GetPending(ctx context.Context, id int64) (*domain.User, error)
	Approve(ctx context.Context, id int64) (int64, error)
	ListAll(ctx context.Context) ([]domain.User, error)
}

// ApprovalNotifier tells a user their account can now log in.
type ApprovalNotifier interface {
	SendApproved(ctx context.Context, email, name string) error
}
