package auth

import "creativeconnect/internal/domain"

type RegisterRequest struct {
	Name            string          `validate:"required,min=2,max=100"`
	Email           string          `validate:"required,strict_email"`
	Password        string          `validate:"required,min=6,max=72"`
	ConfirmPassword string          `validate:"required"`
	Role            domain.UserRole `validate:"required"`
	PortfolioLink   string          `validate:"omitempty,max=500"`
}

type LoginResult struct {
	User         *domain.User
	SessionToken string
}
