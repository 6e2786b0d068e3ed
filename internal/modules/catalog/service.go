package catalog

import (
	"context"
	"strings"

	"creativeconnect/internal/database"
	"creativeconnect/internal/domain"
	"creativeconnect/internal/repository"

	"go.uber.org/zap"
)

// Service serves the reference data used by menus: categories, known
// locations and the creative directory.
type Service struct {
	categories CategoryRepository
	creatives  CreativeSearcher
	log        *zap.Logger
}

func NewService(categories CategoryRepository, creatives CreativeSearcher, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{categories: categories, creatives: creatives, log: log}
}

func (s *Service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categories.List(ctx)
}

func (s *Service) AddCategory(ctx context.Context, name string) (*domain.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrValidation
	}

	c := &domain.Category{Name: name}
	if err := s.categories.Create(ctx, c); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	s.log.Info("category added", zap.Int64("category_id", c.ID), zap.String("name", c.Name))
	return c, nil
}

func (s *Service) DeleteCategory(ctx context.Context, id int64) error {
	n, err := s.categories.Delete(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	s.log.Info("category deleted", zap.Int64("category_id", id))
	return nil
}

func (s *Service) ListLocations(ctx context.Context) ([]string, error) {
	return s.creatives.DistinctLocations(ctx)
}

func (s *Service) SearchCreatives(ctx context.Context, f repository.CreativeFilter) ([]repository.CreativeListing, error) {
	f.Category = strings.TrimSpace(f.Category)
	f.Location = strings.TrimSpace(f.Location)
	return s.creatives.SearchCreatives(ctx, f)
}

// ListBookableCreatives lists approved creatives that have not opted out.
func (s *Service) ListBookableCreatives(ctx context.Context) ([]repository.CreativeListing, error) {
	available := true
	return s.creatives.SearchCreatives(ctx, repository.CreativeFilter{Availability: &available})
}
