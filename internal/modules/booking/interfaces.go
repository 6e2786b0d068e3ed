package booking

import (
	"context"
	"time"

	"creativeconnect/internal/domain"
	"creativeconnect/internal/repository"
)

type BookingRepository interface {
	CreateChecked(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	UpdateStatusIf(ctx context.Context, id int64, party repository.Party, ownerID int64, from []domain.BookingStatus, to domain.BookingStatus) (int64, error)
	TakenDates(ctx context.Context, creativeID int64, from, to time.Time) ([]time.Time, error)
	ListForCreative(ctx context.Context, creativeID int64) ([]repository.BookingDetails, error)
	ListForMarketer(ctx context.Context, marketerID int64) ([]repository.BookingDetails, error)
	ListCompletedForMarketer(ctx context.Context, marketerID int64) ([]repository.BookingDetails, error)
	LatestActiveBetween(ctx context.Context, marketerID, creativeID int64) (*domain.Booking, error)
}

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.CreativeProfile, error)
	Create(ctx context.Context, p *domain.CreativeProfile) error
	SetAvailability(ctx context.Context, userID int64, available bool) (int64, error)
}
