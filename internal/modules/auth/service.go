package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"creativeconnect/internal/database"
	"creativeconnect/internal/domain"
	"creativeconnect/internal/pkg/jwt"
	"creativeconnect/internal/pkg/validator"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Service contains all business logic for authentication
type Service struct {
	users                  UserRepositoryInterface
	codes                  VerificationRepositoryInterface
	sessions               sessionService
	mailer                 Mailer
	log                    *zap.Logger
	verificationCodePepper string
	verifyCodeTTL          time.Duration
	now                    func() time.Time
}

func NewService(
	users UserRepositoryInterface,
	codes VerificationRepositoryInterface,
	sessions sessionService,
	mailer Mailer,
	log *zap.Logger,
	verificationCodePepper string,
	verifyCodeTTL time.Duration,
) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		users:                  users,
		codes:                  codes,
		sessions:               sessions,
		mailer:                 mailer,
		log:                    log,
		verificationCodePepper: verificationCodePepper,
		verifyCodeTTL:          verifyCodeTTL,
		now:                    time.Now,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *Service) validateRegistration(ctx context.Context, req *RegisterRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Role = domain.UserRole(strings.ToLower(strings.TrimSpace(string(req.Role))))
	req.PortfolioLink = strings.TrimSpace(req.PortfolioLink)

	if !validator.IsValidEmail(req.Email) {
		return ErrInvalidEmail
	}
	if req.Password != req.ConfirmPassword {
		return ErrPasswordMismatch
	}
	if !req.Role.IsSelfService() {
		return ErrInvalidRole
	}
	if errs := validator.Validate(req); errs != nil {
		return fmt.Errorf("%w: %v", ErrValidation, errs)
	}

	exists, err := s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return err
	}
	if exists {
		return ErrEmailAlreadyExists
	}
	return nil
}

// StartRegistration validates the form and emails a one-time code. Nothing is
// written to users until CompleteRegistration succeeds.
func (s *Service) StartRegistration(ctx context.Context, req RegisterRequest) error {
	if err := s.validateRegistration(ctx, &req); err != nil {
		return err
	}
	return s.issueCode(ctx, normalizeEmail(req.Email), req.Name)
}

// CompleteRegistration checks the code and creates the account, verified but
// not yet approved.
func (s *Service) CompleteRegistration(ctx context.Context, req RegisterRequest, code string) (*domain.User, error) {
	if err := s.validateRegistration(ctx, &req); err != nil {
		return nil, err
	}
	email := normalizeEmail(req.Email)
	if err := s.checkCode(ctx, email, code); err != nil {
		return nil, err
	}

	hashed, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:          req.Name,
		Email:         email,
		PasswordHash:  hashed,
		Role:          req.Role,
		EmailVerified: true,
		Approved:      false,
		PortfolioLink: req.PortfolioLink,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	if err := s.codes.MarkUsed(ctx, email, s.now()); err != nil {
		s.log.Warn("mark verification code used", zap.String("email", email), zap.Error(err))
	}

	s.log.Info("user registered", zap.Int64("user_id", user.ID), zap.String("role", string(user.Role)))
	user.PasswordHash = ""
	return user, nil
}

// Login authenticates a creative or marketer and mints a session token.
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if user.Role == domain.RoleAdmin {
		// admins use their own entry point
		return nil, ErrInvalidCredentials
	}
	if !user.Approved {
		return nil, ErrPendingApproval
	}
	return s.startSession(user)
}

// AdminLogin authenticates an approved admin.
func (s *Service) AdminLogin(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if user.Role != domain.RoleAdmin || !user.Approved {
		return nil, ErrInvalidCredentials
	}
	return s.startSession(user)
}

func (s *Service) authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.log.Info("login failed", zap.Int64("user_id", user.ID))
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *Service) startSession(user *domain.User) (*LoginResult, error) {
	token, err := s.sessions.GenerateToken(user.ID, string(user.Role), user.Name)
	if err != nil {
		return nil, err
	}
	s.log.Info("login", zap.Int64("user_id", user.ID), zap.String("role", string(user.Role)))
	user.PasswordHash = ""
	return &LoginResult{User: user, SessionToken: token}, nil
}

// ResolveSession returns the claims of a live session token.
func (s *Service) ResolveSession(token string) (*jwt.Claims, error) {
	claims, err := s.sessions.ValidateToken(token)
	if err != nil {
		return nil, ErrSessionExpired
	}
	return claims, nil
}

func hashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// HashPassword is exposed for seeding accounts outside the registration flow.
func HashPassword(password string) (string, error) {
	return hashPassword(password)
}
