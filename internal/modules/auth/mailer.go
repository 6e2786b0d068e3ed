package auth

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

type Mailer interface {
	SendVerificationCode(ctx context.Context, email, name, code string) error
	SendApproved(ctx context.Context, email, name string) error
}

// DevConsoleMailer writes codes to the log instead of sending them.
type DevConsoleMailer struct {
	log *zap.Logger
}

func NewDevConsoleMailer(log *zap.Logger) *DevConsoleMailer {
	return &DevConsoleMailer{log: log}
}

func (m *DevConsoleMailer) SendVerificationCode(_ context.Context, email, _ string, code string) error {
	m.log.Info("[DEV-EMAIL] verification code", zap.String("email", email), zap.String("code", code))
	return nil
}

func (m *DevConsoleMailer) SendApproved(_ context.Context, email, _ string) error {
	m.log.Info("[DEV-EMAIL] account approved", zap.String("email", email))
	return nil
}

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	CodeTTL  time.Duration
}

// SMTPMailer submits mail through an authenticated SMTP relay (STARTTLS on 587).
type SMTPMailer struct {
	cfg    SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	return &SMTPMailer{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
	}
}

func (m *SMTPMailer) SendVerificationCode(_ context.Context, email, name, code string) error {
	body := fmt.Sprintf("Hello %s,\n\nYour OTP is %s.\nIt will expire in %d minutes.", name, code, int(m.cfg.CodeTTL.Minutes()))
	return m.send(email, "Your OTP Verification Code", body)
}

func (m *SMTPMailer) SendApproved(_ context.Context, email, name string) error {
	body := fmt.Sprintf("Hello %s,\n\nYour Creative Connect account has been approved. You can now log in.", name)
	return m.send(email, "Your account has been approved", body)
}

func (m *SMTPMailer) send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	return nil
}
