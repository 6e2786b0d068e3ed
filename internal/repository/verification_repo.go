package repository

import (
	"context"
	"time"

	"creativeconnect/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VerificationRepository struct {
	db *gorm.DB
}

func NewVerificationRepository(db *gorm.DB) *VerificationRepository {
	return &VerificationRepository{db: db}
}

// Upsert replaces any previous code for the email and resets its attempts.
func (r *VerificationRepository) Upsert(ctx context.Context, vc *domain.VerificationCode) error {
	vc.Email = normalizeEmail(vc.Email)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoUpdates: clause.AssignmentColumns([]string{"code_hash", "attempts", "expires_at", "used_at", "created_at"}),
		}).
		Create(vc).Error
}

func (r *VerificationRepository) GetByEmail(ctx context.Context, email string) (*domain.VerificationCode, error) {
	var vc domain.VerificationCode
	tx := r.db.WithContext(ctx).Where("email = ?", normalizeEmail(email)).First(&vc)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &vc, nil
}

func (r *VerificationRepository) IncrementAttempts(ctx context.Context, email string) error {
	return r.db.WithContext(ctx).
		Model(&domain.VerificationCode{}).
		Where("email = ?", normalizeEmail(email)).
		Update("attempts", gorm.Expr("attempts + 1")).Error
}

func (r *VerificationRepository) MarkUsed(ctx context.Context, email string, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&domain.VerificationCode{}).
		Where("email = ?", normalizeEmail(email)).
		Update("used_at", at).Error
}

// DeleteStale removes codes that expired before now or were already used.
func (r *VerificationRepository) DeleteStale(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("expires_at < ? OR used_at IS NOT NULL", now).
		Delete(&domain.VerificationCode{})
	return res.RowsAffected, res.Error
}
