package repository

import (
	"context"
	"strings"
	"time"

	"creativeconnect/internal/domain"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) DB() *gorm.DB { return r.db }

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	u.Email = normalizeEmail(u.Email)
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	tx := r.db.WithContext(ctx).
		Where("LOWER(email) = ?", normalizeEmail(email)).
		First(&u)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	tx := r.db.WithContext(ctx).First(&u, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &u, nil
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&domain.User{}).
		Where("LOWER(email) = ?", normalizeEmail(email)).
		Count(&cnt).Error
	return cnt > 0, err
}

// ListPending returns self-registered users still waiting for approval.
func (r *UserRepository) ListPending(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	err := r.db.WithContext(ctx).
		Where("role IN ?", []string{string(domain.RoleCreative), string(domain.RoleMarketer)}).
		Where("approved = ?", false).
		Order("id").
		Find(&users).Error
	return users, err
}

func (r *UserRepository) GetPending(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	tx := r.db.WithContext(ctx).
		Where("id = ? AND approved = ?", id, false).
		First(&u)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &u, nil
}

// Approve flips the approval flag once. Zero rows means the user is missing
// or was already approved.
func (r *UserRepository) Approve(ctx context.Context, id int64) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&domain.User{}).
		Where("id = ? AND approved = ?", id, false).
		Updates(map[string]any{
			"approved":   true,
			"updated_at": time.Now(),
		})
	return res.RowsAffected, res.Error
}

func (r *UserRepository) ListAll(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	err := r.db.WithContext(ctx).Order("id").Find(&users).Error
	return users, err
}
