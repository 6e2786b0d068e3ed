package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"creativeconnect/internal/config"
	"creativeconnect/internal/database"
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

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("db connect failed", zap.Error(err))
	}

	n, err := repository.NewVerificationRepository(db).DeleteStale(context.Background(), time.Now().UTC())
	if err != nil {
		log.Fatal("cleanup email_verification_codes failed", zap.Error(err))
	}
	log.Info("auth cleanup completed", zap.Int64("email_verification_codes", n))
}
