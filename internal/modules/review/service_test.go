package review

import (
	"context"
	"path/filepath"
	"testing"

	"creativeconnect/internal/database"
	"creativeconnect/internal/domain"
	"creativeconnect/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type MockBookingGate struct {
	mock.Mock
}

func (m *MockBookingGate) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func setupReviews(t *testing.T) *repository.ReviewRepository {
	t.Helper()
	db, err := database.Connect(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return repository.NewReviewRepository(db)
}

func TestService_Create(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateReviewRequest
		booking *domain.Booking
		getErr  error
		wantErr error
	}{
		{
			name:    "rating too high",
			req:     CreateReviewRequest{BookingID: 1, Rating: 6},
			wantErr: ErrInvalidRequest,
		},
		{
			name:    "rating missing",
			req:     CreateReviewRequest{BookingID: 1},
			wantErr: ErrInvalidRequest,
		},
		{
			name:    "unknown booking",
			req:     CreateReviewRequest{BookingID: 1, Rating: 4},
			getErr:  gorm.ErrRecordNotFound,
			wantErr: ErrNotFound,
		},
		{
			name:    "someone else's booking",
			req:     CreateReviewRequest{BookingID: 1, Rating: 4},
			booking: &domain.Booking{ID: 1, MarketerID: 99, CreativeID: 2, Status: domain.BookingCompleted},
			wantErr: ErrNotFound,
		},
		{
			name:    "not completed",
			req:     CreateReviewRequest{BookingID: 1, Rating: 4},
			booking: &domain.Booking{ID: 1, MarketerID: 7, CreativeID: 2, Status: domain.BookingAccepted},
			wantErr: ErrReviewNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gate := new(MockBookingGate)
			gate.On("GetByID", mock.Anything, int64(1)).Return(tt.booking, tt.getErr)
			svc := NewService(setupReviews(t), gate, zap.NewNop())

			_, err := svc.Create(context.Background(), 7, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestService_Create_Success(t *testing.T) {
	gate := new(MockBookingGate)
	gate.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Booking{ID: 1, MarketerID: 7, CreativeID: 2, Status: domain.BookingCompleted}, nil)
	svc := NewService(setupReviews(t), gate, zap.NewNop())

	rv, err := svc.Create(context.Background(), 7, CreateReviewRequest{BookingID: 1, Rating: 5, Comment: " great "})
	require.NoError(t, err)
	assert.NotZero(t, rv.ID)
	assert.Equal(t, "great", rv.Comment)

	list, err := svc.ListForCreative(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 5, list[0].Rating)
}
