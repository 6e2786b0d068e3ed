package repository

import (
	"context"
	"time"

	"creativeconnect/internal/domain"

	"gorm.io/gorm"
)

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID int64) (*domain.CreativeProfile, error) {
	var p domain.CreativeProfile
	tx := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&p)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &p, nil
}

func (r *ProfileRepository) Create(ctx context.Context, p *domain.CreativeProfile) error {
	// Select("*") so a false availability is written instead of skipped as a zero value
	return r.db.WithContext(ctx).Select("*").Create(p).Error
}

// UpdateFields writes only the given columns. Zero rows means no profile yet.
func (r *ProfileRepository) UpdateFields(ctx context.Context, userID int64, fields map[string]any) (int64, error) {
	if len(fields) == 0 {
		return 0, nil
	}
	fields["updated_at"] = time.Now()
	res := r.db.WithContext(ctx).
		Model(&domain.CreativeProfile{}).
		Where("user_id = ?", userID).
		Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *ProfileRepository) SetAvailability(ctx context.Context, userID int64, available bool) (int64, error) {
	return r.UpdateFields(ctx, userID, map[string]any{"availability": available})
}

// DistinctLocations lists every non-empty location used by a profile.
func (r *ProfileRepository) DistinctLocations(ctx context.Context) ([]string, error) {
	var locs []string
	err := r.db.WithContext(ctx).
		Model(&domain.CreativeProfile{}).
		Where("location IS NOT NULL AND location <> ''").
		Distinct("location").
		Order("location").
		Pluck("location", &locs).Error
	return locs, err
}

type CreativeFilter struct {
	Category     string
	Location     string
	Availability *bool
}

type CreativeListing struct {
	UserID         int64  `gorm:"column:user_id"`
	Name           string `gorm:"column:name"`
	Email          string `gorm:"column:email"`
	Category       string `gorm:"column:category"`
	Skills         string `gorm:"column:skills"`
	Location       string `gorm:"column:location"`
	PortfolioLinks string `gorm:"column:portfolio_links"`
	Availability   bool   `gorm:"column:availability"`
}

// SearchCreatives lists approved creatives that have a profile.
func (r *ProfileRepository) SearchCreatives(ctx context.Context, f CreativeFilter) ([]CreativeListing, error) {
	q := r.db.WithContext(ctx).
		Table("users u").
		Select("u.id AS user_id, u.name, u.email, c.category, c.skills, c.location, c.portfolio_links, c.availability").
		Joins("JOIN creative_profiles c ON c.user_id = u.id").
		Where("u.role = ? AND u.approved = ?", domain.RoleCreative, true)

	if f.Category != "" {
		q = q.Where("c.category = ?", f.Category)
	}
	if f.Location != "" {
		q = q.Where("c.location = ?", f.Location)
	}
	if f.Availability != nil {
		q = q.Where("c.availability = ?", *f.Availability)
	}

	var rows []CreativeListing
	err := q.Order("u.id").Scan(&rows).Error
	return rows, err
}
