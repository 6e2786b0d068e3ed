package catalog

import (
	"context"

	"creativeconnect/internal/domain"
	"creativeconnect/internal/repository"
)

type CategoryRepository interface {
	List(ctx context.Context) ([]domain.Category, error)
	Create(ctx context.Context, c *domain.Category) error
	Delete(ctx context.Context, id int64) (int64, error)
}

type CreativeSearcher interface {
	DistinctLocations(ctx context.Context) ([]string, error)
	SearchCreatives(ctx context.Context, f repository.CreativeFilter) ([]repository.CreativeListing, error)
}
