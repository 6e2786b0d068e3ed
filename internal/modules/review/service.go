package review

import (
	"context"
	"errors"
	"strings"

	"creativeconnect/internal/domain"
	"creativeconnect/internal/pkg/validator"
	"creativeconnect/internal/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type BookingGate interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}

type Service struct {
	reviews  *repository.ReviewRepository
	bookings BookingGate
	log      *zap.Logger
}

func NewService(reviews *repository.ReviewRepository, bookings BookingGate, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{reviews: reviews, bookings: bookings, log: log}
}

// Create records a marketer's review of one of their completed bookings.
func (s *Service) Create(ctx context.Context, marketerID int64, req CreateReviewRequest) (*domain.Review, error) {
	if marketerID <= 0 || validator.Validate(req) != nil {
		return nil, ErrInvalidRequest
	}

	b, err := s.bookings.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	// someone else's booking looks the same as a missing one
	if b.MarketerID != marketerID {
		return nil, ErrNotFound
	}
	if b.Status != domain.BookingCompleted {
		return nil, ErrReviewNotAllowed
	}

	rv := &domain.Review{
		BookingID:  b.ID,
		MarketerID: marketerID,
		CreativeID: b.CreativeID,
		Rating:     req.Rating,
		Comment:    strings.TrimSpace(req.Comment),
	}
	if err := s.reviews.Create(ctx, rv); err != nil {
		return nil, err
	}
	s.log.Info("review added", zap.Int64("review_id", rv.ID), zap.Int64("booking_id", b.ID), zap.Int("rating", rv.Rating))
	return rv, nil
}

func (s *Service) ListForCreative(ctx context.Context, creativeID int64) ([]domain.Review, error) {
	if creativeID <= 0 {
		return nil, ErrInvalidRequest
	}
	return s.reviews.ListByCreative(ctx, creativeID)
}
