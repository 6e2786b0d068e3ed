package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"creativeconnect/internal/domain"
	"creativeconnect/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) CreateChecked(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	if b != nil && args.Error(0) == nil {
		b.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatusIf(ctx context.Context, id int64, party repository.Party, ownerID int64, from []domain.BookingStatus, to domain.BookingStatus) (int64, error) {
	args := m.Called(ctx, id, party, ownerID, from, to)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingRepository) TakenDates(ctx context.Context, creativeID int64, from, to time.Time) ([]time.Time, error) {
	args := m.Called(ctx, creativeID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]time.Time), args.Error(1)
}

func (m *MockBookingRepository) ListForCreative(ctx context.Context, creativeID int64) ([]repository.BookingDetails, error) {
	args := m.Called(ctx, creativeID)
	return args.Get(0).([]repository.BookingDetails), args.Error(1)
}

func (m *MockBookingRepository) ListForMarketer(ctx context.Context, marketerID int64) ([]repository.BookingDetails, error) {
	args := m.Called(ctx, marketerID)
	return args.Get(0).([]repository.BookingDetails), args.Error(1)
}

func (m *MockBookingRepository) ListCompletedForMarketer(ctx context.Context, marketerID int64) ([]repository.BookingDetails, error) {
	args := m.Called(ctx, marketerID)
	return args.Get(0).([]repository.BookingDetails), args.Error(1)
}

func (m *MockBookingRepository) LatestActiveBetween(ctx context.Context, marketerID, creativeID int64) (*domain.Booking, error) {
	args := m.Called(ctx, marketerID, creativeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) GetByUserID(ctx context.Context, userID int64) (*domain.CreativeProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CreativeProfile), args.Error(1)
}

func (m *MockProfileRepository) Create(ctx context.Context, p *domain.CreativeProfile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProfileRepository) SetAvailability(ctx context.Context, userID int64, available bool) (int64, error) {
	args := m.Called(ctx, userID, available)
	return args.Get(0).(int64), args.Error(1)
}

// 2026-03-10 is a Tuesday
var fixedNow = time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)

func newTestService() (*Service, *MockBookingRepository, *MockUserRepository, *MockProfileRepository) {
	b := new(MockBookingRepository)
	u := new(MockUserRepository)
	p := new(MockProfileRepository)
	svc := NewService(b, u, p, zap.NewNop(), DefaultWindowDays).WithClock(func() time.Time { return fixedNow })
	return svc, b, u, p
}

func approvedCreative(id int64) *domain.User {
	return &domain.User{ID: id, Name: "cleo", Role: domain.RoleCreative, Approved: true}
}

func TestService_CreateBooking_Success(t *testing.T) {
	svc, bookings, users, profiles := newTestService()

	users.On("GetByID", mock.Anything, int64(2)).Return(approvedCreative(2), nil)
	profiles.On("GetByUserID", mock.Anything, int64(2)).Return(&domain.CreativeProfile{UserID: 2, Availability: true}, nil)
	bookings.On("CreateChecked", mock.Anything, mock.AnythingOfType("*domain.Booking")).Return(nil)

	b, err := svc.CreateBooking(context.Background(), CreateBookingRequest{
		MarketerID:    1,
		CreativeID:    2,
		Note:          "  shoot  ",
		ScheduledDate: fixedNow.AddDate(0, 0, 5),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(999), b.ID)
	assert.Equal(t, domain.BookingPending, b.Status)
	assert.Equal(t, "shoot", b.Note)
	assert.Equal(t, "2026-03-15", b.ScheduledDate.Format(domain.DateLayout))
	bookings.AssertExpectations(t)
}

func TestService_CreateBooking_DateUnavailable(t *testing.T) {
	svc, bookings, users, profiles := newTestService()

	users.On("GetByID", mock.Anything, int64(2)).Return(approvedCreative(2), nil)
	profiles.On("GetByUserID", mock.Anything, int64(2)).Return(nil, gorm.ErrRecordNotFound)
	bookings.On("CreateChecked", mock.Anything, mock.Anything).Return(repository.ErrSlotTaken)

	_, err := svc.CreateBooking(context.Background(), CreateBookingRequest{
		MarketerID: 1, CreativeID: 2, ScheduledDate: fixedNow.AddDate(0, 0, 5),
	})
	assert.ErrorIs(t, err, ErrDateUnavailable)
}

func TestService_CreateBooking_Window(t *testing.T) {
	tests := []struct {
		name    string
		offset  int
		wantErr error
	}{
		{"yesterday", -1, ErrDateOutOfWindow},
		{"today", 0, nil},
		{"last day", 29, nil},
		{"day after window", 30, ErrDateOutOfWindow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, bookings, users, profiles := newTestService()
			users.On("GetByID", mock.Anything, int64(2)).Return(approvedCreative(2), nil)
			profiles.On("GetByUserID", mock.Anything, int64(2)).Return(nil, gorm.ErrRecordNotFound)
			bookings.On("CreateChecked", mock.Anything, mock.Anything).Return(nil)

			_, err := svc.CreateBooking(context.Background(), CreateBookingRequest{
				MarketerID: 1, CreativeID: 2, ScheduledDate: fixedNow.AddDate(0, 0, tt.offset),
			})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				bookings.AssertNotCalled(t, "CreateChecked", mock.Anything, mock.Anything)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestService_CreateBooking_CreativeChecks(t *testing.T) {
	t.Run("missing creative", func(t *testing.T) {
		svc, _, users, _ := newTestService()
		users.On("GetByID", mock.Anything, int64(2)).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.CreateBooking(context.Background(), CreateBookingRequest{MarketerID: 1, CreativeID: 2, ScheduledDate: fixedNow})
		assert.ErrorIs(t, err, ErrCreativeNotApproved)
	})

	t.Run("not approved", func(t *testing.T) {
		svc, _, users, _ := newTestService()
		u := approvedCreative(2)
		u.Approved = false
		users.On("GetByID", mock.Anything, int64(2)).Return(u, nil)

		_, err := svc.CreateBooking(context.Background(), CreateBookingRequest{MarketerID: 1, CreativeID: 2, ScheduledDate: fixedNow})
		assert.ErrorIs(t, err, ErrCreativeNotApproved)
	})

	t.Run("marketer target", func(t *testing.T) {
		svc, _, users, _ := newTestService()
		users.On("GetByID", mock.Anything, int64(2)).Return(&domain.User{ID: 2, Role: domain.RoleMarketer, Approved: true}, nil)

		_, err := svc.CreateBooking(context.Background(), CreateBookingRequest{MarketerID: 1, CreativeID: 2, ScheduledDate: fixedNow})
		assert.ErrorIs(t, err, ErrCreativeNotApproved)
	})

	t.Run("opted out", func(t *testing.T) {
		svc, _, users, profiles := newTestService()
		users.On("GetByID", mock.Anything, int64(2)).Return(approvedCreative(2), nil)
		profiles.On("GetByUserID", mock.Anything, int64(2)).Return(&domain.CreativeProfile{UserID: 2, Availability: false}, nil)

		_, err := svc.CreateBooking(context.Background(), CreateBookingRequest{MarketerID: 1, CreativeID: 2, ScheduledDate: fixedNow})
		assert.ErrorIs(t, err, ErrCreativeUnavailable)
	})

	t.Run("missing date", func(t *testing.T) {
		svc, _, _, _ := newTestService()
		_, err := svc.CreateBooking(context.Background(), CreateBookingRequest{MarketerID: 1, CreativeID: 2})
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestService_Accept_SetsUnavailable(t *testing.T) {
	svc, bookings, _, profiles := newTestService()

	bookings.On("UpdateStatusIf", mock.Anything, int64(5), repository.PartyCreative, int64(2),
		[]domain.BookingStatus{domain.BookingPending}, domain.BookingAccepted).Return(int64(1), nil)
	profiles.On("SetAvailability", mock.Anything, int64(2), false).Return(int64(1), nil)

	require.NoError(t, svc.Accept(context.Background(), 5, 2))
	profiles.AssertExpectations(t)
}

func TestService_Accept_CreatesMissingProfile(t *testing.T) {
	svc, bookings, _, profiles := newTestService()

	bookings.On("UpdateStatusIf", mock.Anything, int64(5), repository.PartyCreative, int64(2),
		[]domain.BookingStatus{domain.BookingPending}, domain.BookingAccepted).Return(int64(1), nil)
	profiles.On("SetAvailability", mock.Anything, int64(2), false).Return(int64(0), nil)
	profiles.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.CreativeProfile) bool {
		return p.UserID == 2 && !p.Availability
	})).Return(nil)

	require.NoError(t, svc.Accept(context.Background(), 5, 2))
	profiles.AssertExpectations(t)
}

func TestService_Complete_RestoresAvailability(t *testing.T) {
	svc, bookings, _, profiles := newTestService()

	bookings.On("UpdateStatusIf", mock.Anything, int64(5), repository.PartyCreative, int64(2),
		[]domain.BookingStatus{domain.BookingAccepted}, domain.BookingCompleted).Return(int64(1), nil)
	profiles.On("SetAvailability", mock.Anything, int64(2), true).Return(int64(1), nil)

	require.NoError(t, svc.Complete(context.Background(), 5, 2))
	profiles.AssertExpectations(t)
}

func TestService_Transition_ClassifiesFailures(t *testing.T) {
	tests := []struct {
		name    string
		booking *domain.Booking
		getErr  error
		wantErr error
	}{
		{"missing", nil, gorm.ErrRecordNotFound, ErrNotFound},
		{"other creative", &domain.Booking{ID: 5, CreativeID: 3, MarketerID: 1, Status: domain.BookingPending}, nil, ErrNotOwner},
		{"rejected source", &domain.Booking{ID: 5, CreativeID: 2, MarketerID: 1, Status: domain.BookingRejected}, nil, ErrInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, bookings, _, profiles := newTestService()
			bookings.On("UpdateStatusIf", mock.Anything, int64(5), repository.PartyCreative, int64(2), mock.Anything, domain.BookingCompleted).
				Return(int64(0), nil)
			bookings.On("GetByID", mock.Anything, int64(5)).Return(tt.booking, tt.getErr)

			err := svc.Complete(context.Background(), 5, 2)
			assert.ErrorIs(t, err, tt.wantErr)
			profiles.AssertNotCalled(t, "SetAvailability", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestService_Cancel_NotOwner(t *testing.T) {
	svc, bookings, _, _ := newTestService()

	bookings.On("UpdateStatusIf", mock.Anything, int64(5), repository.PartyMarketer, int64(9),
		[]domain.BookingStatus{domain.BookingPending, domain.BookingAccepted}, domain.BookingCancelled).Return(int64(0), nil)
	bookings.On("GetByID", mock.Anything, int64(5)).
		Return(&domain.Booking{ID: 5, MarketerID: 1, CreativeID: 2, Status: domain.BookingPending}, nil)

	assert.ErrorIs(t, svc.Cancel(context.Background(), 5, 9), ErrNotOwner)
}

func TestService_Accept_StoreError(t *testing.T) {
	svc, bookings, _, _ := newTestService()
	boom := errors.New("boom")
	bookings.On("UpdateStatusIf", mock.Anything, int64(5), repository.PartyCreative, int64(2), mock.Anything, domain.BookingAccepted).
		Return(int64(0), boom)

	assert.ErrorIs(t, svc.Accept(context.Background(), 5, 2), boom)
}

func TestService_Calendar(t *testing.T) {
	svc, bookings, _, _ := newTestService()

	start := domain.DateOnly(fixedNow)
	end := start.AddDate(0, 0, 29)
	taken := []time.Time{start.AddDate(0, 0, 2)}
	bookings.On("TakenDates", mock.Anything, int64(2), start, end).Return(taken, nil)

	cal, err := svc.Calendar(context.Background(), 2)
	require.NoError(t, err)

	assert.Equal(t, "2026-04-08", cal.WindowEnd.Format(domain.DateLayout))
	// March and April
	require.Len(t, cal.Months, 2)
	assert.Equal(t, time.March, cal.Months[0].Month)

	assert.Equal(t, DayOutOfWindow, cal.StateOf(start.AddDate(0, 0, -1)))
	assert.Equal(t, DayFree, cal.StateOf(start))
	assert.Equal(t, DayTaken, cal.StateOf(start.AddDate(0, 0, 2)))
	assert.Equal(t, DayOutOfWindow, cal.StateOf(end.AddDate(0, 0, 1)))
	assert.Len(t, cal.FreeDays(), 29)

	// 2026-03-01 is a Sunday: six padding cells before it
	first := cal.Months[0].Weeks[0]
	for i := 0; i < 6; i++ {
		assert.Nil(t, first[i])
	}
	require.NotNil(t, first[6])
	assert.Equal(t, 1, first[6].Date.Day())
}

func TestService_EnsureChatBooking(t *testing.T) {
	t.Run("existing", func(t *testing.T) {
		svc, bookings, _, _ := newTestService()
		existing := &domain.Booking{ID: 7, MarketerID: 1, CreativeID: 2, Status: domain.BookingAccepted}
		bookings.On("LatestActiveBetween", mock.Anything, int64(1), int64(2)).Return(existing, nil)

		b, err := svc.EnsureChatBooking(context.Background(), EnsureChatRequest{MarketerID: 1, CreativeID: 2})
		require.NoError(t, err)
		assert.Equal(t, int64(7), b.ID)
	})

	t.Run("none without create", func(t *testing.T) {
		svc, bookings, _, _ := newTestService()
		bookings.On("LatestActiveBetween", mock.Anything, int64(1), int64(2)).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.EnsureChatBooking(context.Background(), EnsureChatRequest{MarketerID: 1, CreativeID: 2})
		assert.ErrorIs(t, err, ErrNoActiveBooking)
	})

	t.Run("creates dateless", func(t *testing.T) {
		svc, bookings, users, profiles := newTestService()
		bookings.On("LatestActiveBetween", mock.Anything, int64(1), int64(2)).Return(nil, gorm.ErrRecordNotFound)
		users.On("GetByID", mock.Anything, int64(2)).Return(approvedCreative(2), nil)
		profiles.On("GetByUserID", mock.Anything, int64(2)).Return(nil, gorm.ErrRecordNotFound)
		bookings.On("CreateChecked", mock.Anything, mock.AnythingOfType("*domain.Booking")).Return(nil)

		b, err := svc.EnsureChatBooking(context.Background(), EnsureChatRequest{MarketerID: 1, CreativeID: 2, Note: "hi", Create: true})
		require.NoError(t, err)
		assert.Nil(t, b.ScheduledDate)
		assert.Equal(t, domain.BookingPending, b.Status)
	})
}
