package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strings"

	"creativeconnect/internal/domain"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const maxVerificationAttempts = 5

var codeRegex = regexp.MustCompile(`^\d{6}$`)

// issueCode stores a fresh hashed code for the email and mails the plain one.
func (s *Service) issueCode(ctx context.Context, email, name string) error {
	code, err := generateVerificationCode()
	if err != nil {
		return err
	}

	now := s.now()
	vc := &domain.VerificationCode{
		Email:     email,
		CodeHash:  hashVerificationCode(code, s.verificationCodePepper),
		ExpiresAt: now.Add(s.verifyCodeTTL),
		CreatedAt: now,
	}
	if err := s.codes.Upsert(ctx, vc); err != nil {
		return err
	}

	if err := s.mailer.SendVerificationCode(ctx, email, name, code); err != nil {
		return fmt.Errorf("deliver verification code: %w", err)
	}
	s.log.Info("verification code issued", zap.String("email", email))
	return nil
}

// checkCode validates code against the stored hash, counting failures.
func (s *Service) checkCode(ctx context.Context, email, code string) error {
	code = strings.TrimSpace(code)
	if !codeRegex.MatchString(code) {
		return ErrInvalidVerificationCodeFormat
	}

	row, err := s.codes.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidVerificationCode
		}
		return err
	}

	if row.UsedAt != nil || !row.ExpiresAt.After(s.now()) {
		return ErrInvalidVerificationCode
	}
	if row.Attempts >= maxVerificationAttempts {
		return ErrTooManyAttempts
	}

	if hashVerificationCode(code, s.verificationCodePepper) != row.CodeHash {
		if err := s.codes.IncrementAttempts(ctx, email); err != nil {
			return err
		}
		if row.Attempts+1 >= maxVerificationAttempts {
			return ErrTooManyAttempts
		}
		return ErrInvalidVerificationCode
	}
	return nil
}

func generateVerificationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

func hashVerificationCode(code, pepper string) string {
	h := sha256.Sum256([]byte(code + pepper))
	return hex.EncodeToString(h[:])
}
