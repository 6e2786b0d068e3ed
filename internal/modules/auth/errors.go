package auth

import "errors"

var (
	ErrValidation         = errors.New("validation error")
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrInvalidRole        = errors.New("role must be creative or marketer")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrPendingApproval    = errors.New("account pending admin approval")
	ErrSessionExpired     = errors.New("session expired")

	ErrInvalidVerificationCode       = errors.New("invalid or expired verification code")
	ErrInvalidVerificationCodeFormat = errors.New("verification code must be 6 digits")
	ErrTooManyAttempts               = errors.New("too many verification attempts")
)
