package catalog

import (
	"context"
	"errors"
	"testing"

	"creativeconnect/internal/domain"
	"creativeconnect/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) Create(ctx context.Context, c *domain.Category) error {
	args := m.Called(ctx, c)
	if args.Error(0) == nil {
		c.ID = 11
	}
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

type MockCreativeSearcher struct {
	mock.Mock
}

func (m *MockCreativeSearcher) DistinctLocations(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCreativeSearcher) SearchCreatives(ctx context.Context, f repository.CreativeFilter) ([]repository.CreativeListing, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]repository.CreativeListing), args.Error(1)
}

func TestService_AddCategory(t *testing.T) {
	cats := new(MockCategoryRepository)
	svc := NewService(cats, new(MockCreativeSearcher), zap.NewNop())

	_, err := svc.AddCategory(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrValidation)
	cats.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)

	cats.On("Create", mock.Anything, mock.MatchedBy(func(c *domain.Category) bool { return c.Name == "Photography" })).Return(nil).Once()
	c, err := svc.AddCategory(context.Background(), " Photography ")
	require.NoError(t, err)
	assert.Equal(t, int64(11), c.ID)

	cats.On("Create", mock.Anything, mock.Anything).Return(errors.New("UNIQUE constraint failed: categories.name")).Once()
	_, err = svc.AddCategory(context.Background(), "Photography")
	assert.ErrorIs(t, err, ErrConflict)
}

func TestService_DeleteCategory(t *testing.T) {
	cats := new(MockCategoryRepository)
	svc := NewService(cats, new(MockCreativeSearcher), zap.NewNop())

	cats.On("Delete", mock.Anything, int64(3)).Return(int64(1), nil)
	cats.On("Delete", mock.Anything, int64(4)).Return(int64(0), nil)

	assert.NoError(t, svc.DeleteCategory(context.Background(), 3))
	assert.ErrorIs(t, svc.DeleteCategory(context.Background(), 4), ErrNotFound)
}

func TestService_ListBookableCreatives(t *testing.T) {
	search := new(MockCreativeSearcher)
	svc := NewService(new(MockCategoryRepository), search, zap.NewNop())

	want := []repository.CreativeListing{{UserID: 2, Name: "cleo", Availability: true}}
	search.On("SearchCreatives", mock.Anything, mock.MatchedBy(func(f repository.CreativeFilter) bool {
		return f.Availability != nil && *f.Availability && f.Category == "" && f.Location == ""
	})).Return(want, nil)

	got, err := svc.ListBookableCreatives(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestService_SearchCreatives_TrimsFilter(t *testing.T) {
	search := new(MockCreativeSearcher)
	svc := NewService(new(MockCategoryRepository), search, zap.NewNop())

	search.On("SearchCreatives", mock.Anything, repository.CreativeFilter{Category: "Video", Location: "Pune"}).
		Return([]repository.CreativeListing{}, nil)

	_, err := svc.SearchCreatives(context.Background(), repository.CreativeFilter{Category: " Video", Location: "Pune "})
	require.NoError(t, err)
	search.AssertExpectations(t)
}
