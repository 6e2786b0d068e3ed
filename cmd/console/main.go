package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"creativeconnect/internal/config"
	"creativeconnect/internal/console"
	"creativeconnect/internal/database"
	"creativeconnect/internal/modules/admin"
	"creativeconnect/internal/modules/auth"
	"creativeconnect/internal/modules/booking"
	"creativeconnect/internal/modules/catalog"
	"creativeconnect/internal/modules/chat"
	"creativeconnect/internal/modules/profile"
	"creativeconnect/internal/modules/review"
	"creativeconnect/internal/modules/support"
	jwtsvc "creativeconnect/internal/pkg/jwt"
	"creativeconnect/internal/pkg/logger"
	"creativeconnect/internal/repository"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.AppEnv, cfg.LogOutput)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()
	cfg.Validate(log)

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Error("database connect failed", zap.Error(err))
		fmt.Println("Cannot connect to database. Please try again later.")
		os.Exit(1)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("migrate failed", zap.Error(err))
	}
	log.Info("database ready", zap.Bool("postgres", database.IsPostgresDSN(cfg.DatabaseURL)))

	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	var mailer auth.Mailer = auth.NewDevConsoleMailer(log)
	if cfg.MailEnabled() {
		mailer = auth.NewSMTPMailer(auth.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			User:     cfg.SMTPUser,
			Password: cfg.SMTPPassword,
			From:     cfg.SMTPFrom,
			CodeTTL:  cfg.VerifyCodeTTL,
		})
	}

	sessions := jwtsvc.New(cfg.SessionSecret, cfg.SessionTTL)

	svc := console.Services{
		Auth: auth.NewService(
			userRepo,
			repository.NewVerificationRepository(db),
			sessions,
			mailer,
			log.Named("auth"),
			cfg.VerifyCodePepper,
			cfg.VerifyCodeTTL,
		),
		Admin:    admin.NewService(userRepo, mailer, log.Named("admin")),
		Catalog:  catalog.NewService(repository.NewCategoryRepository(db), profileRepo, log.Named("catalog")),
		Profiles: profile.NewService(profileRepo, log.Named("profile")),
		Bookings: booking.NewService(bookingRepo, userRepo, profileRepo, log.Named("booking"), cfg.BookingWindowDays),
		Chat:     chat.NewService(repository.NewChatRepository(db), bookingRepo, log.Named("chat")),
		Reviews:  review.NewService(repository.NewReviewRepository(db), bookingRepo, log.Named("review")),
		Support:  support.NewService(repository.NewTicketRepository(db), log.Named("support")),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := console.New(svc, console.NewTerminalPrompter(os.Stdin, os.Stdout), log)
	if err := app.Run(ctx); err != nil {
		log.Error("console stopped", zap.Error(err))
		os.Exit(1)
	}
}
