package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"creativeconnect/internal/config"
	"creativeconnect/internal/database"
	"creativeconnect/internal/domain"
	"creativeconnect/internal/modules/auth"
	"creativeconnect/internal/pkg/logger"
	"creativeconnect/internal/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var defaultCategories = []string{
	"Photography",
	"Videography",
	"Graphic Design",
	"Copywriting",
	"Illustration",
	"Social Media",
}

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
		log.Fatal("DB connection failed", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("migrate failed", zap.Error(err))
	}

	ctx := context.Background()
	email := strings.TrimSpace(getEnv("ADMIN_EMAIL", "admin@creativeconnect.local"))
	password := getEnv("ADMIN_PASSWORD", "admin123")

	users := repository.NewUserRepository(db)
	if err := seedAdmin(ctx, users, email, password); err != nil {
		log.Fatal("seed admin failed", zap.Error(err))
	}
	log.Info("admin ready", zap.String("email", email))

	categories := repository.NewCategoryRepository(db)
	added := 0
	for _, name := range defaultCategories {
		err := categories.Create(ctx, &domain.Category{Name: name})
		switch {
		case err == nil:
			added++
		case database.IsUniqueViolation(err):
		default:
			log.Fatal("seed category failed", zap.String("name", name), zap.Error(err))
		}
	}
	log.Info("seed completed", zap.Int("categories_added", added))
}

func seedAdmin(ctx context.Context, users *repository.UserRepository, email, password string) error {
	_, err := users.GetByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	return users.Create(ctx, &domain.User{
		Name:          "Administrator",
		Email:         email,
		PasswordHash:  hash,
		Role:          domain.RoleAdmin,
		EmailVerified: true,
		Approved:      true,
	})
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}
