package profile

import (
	"context"
	"errors"
	"strings"

	"creativeconnect/internal/domain"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("profile not found")

type Repository interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.CreativeProfile, error)
	Create(ctx context.Context, p *domain.CreativeProfile) error
	UpdateFields(ctx context.Context, userID int64, fields map[string]any) (int64, error)
	SetAvailability(ctx context.Context, userID int64, available bool) (int64, error)
}

// Fields carries a partial profile update. Nil keeps the stored value.
type Fields struct {
	Category       *string
	Skills         *string
	Location       *string
	PortfolioLinks *string
}

func (f Fields) columns() map[string]any {
	cols := map[string]any{}
	set := func(name string, v *string) {
		if v != nil {
			cols[name] = strings.TrimSpace(*v)
		}
	}
	set("category", f.Category)
	set("skills", f.Skills)
	set("location", f.Location)
	set("portfolio_links", f.PortfolioLinks)
	return cols
}

type Service struct {
	repo Repository
	log  *zap.Logger
}

func NewService(repo Repository, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{repo: repo, log: log}
}

func (s *Service) GetProfile(ctx context.Context, userID int64) (*domain.CreativeProfile, error) {
	p, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// UpsertProfile creates the profile on first use (available by default) and
// afterwards only touches the supplied fields.
func (s *Service) UpsertProfile(ctx context.Context, userID int64, f Fields) (*domain.CreativeProfile, error) {
	_, err := s.repo.GetByUserID(ctx, userID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		p := &domain.CreativeProfile{UserID: userID, Availability: true}
		cols := f.columns()
		p.Category, _ = cols["category"].(string)
		p.Skills, _ = cols["skills"].(string)
		p.Location, _ = cols["location"].(string)
		p.PortfolioLinks, _ = cols["portfolio_links"].(string)
		if err := s.repo.Create(ctx, p); err != nil {
			return nil, err
		}
		s.log.Info("profile created", zap.Int64("user_id", userID))
		return p, nil
	case err != nil:
		return nil, err
	}

	if cols := f.columns(); len(cols) > 0 {
		if _, err := s.repo.UpdateFields(ctx, userID, cols); err != nil {
			return nil, err
		}
		s.log.Info("profile updated", zap.Int64("user_id", userID), zap.Int("fields", len(cols)))
	}
	return s.GetProfile(ctx, userID)
}

func (s *Service) SetAvailability(ctx context.Context, userID int64, available bool) error {
	n, err := s.repo.SetAvailability(ctx, userID, available)
	if err != nil {
		return err
	}
	if n == 0 {
		if err := s.repo.Create(ctx, &domain.CreativeProfile{UserID: userID, Availability: available}); err != nil {
			return err
		}
	}
	s.log.Info("availability set", zap.Int64("user_id", userID), zap.Bool("available", available))
	return nil
}
