package auth

import (
	"context"
	"time"

	"creativeconnect/internal/domain"
	"creativeconnect/internal/pkg/jwt"
)

// UserRepositoryInterface lists only the methods the auth service uses.
type UserRepositoryInterface interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type VerificationRepositoryInterface interface {
	Upsert(ctx context.Context, vc *domain.VerificationCode) error
	GetByEmail(ctx context.Context, email string) (*domain.VerificationCode, error)
	IncrementAttempts(ctx context.Context, email string) error
	MarkUsed(ctx context.Context, email string, at time.Time) error
}

type sessionService interface {
	GenerateToken(userID int64, role, name string) (string, error)
	ValidateToken(token string) (*jwt.Claims, error)
}
