package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"creativeconnect/internal/domain"
	"creativeconnect/internal/pkg/validator"
	"creativeconnect/internal/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const DefaultWindowDays = 30

type Service struct {
	bookings   BookingRepository
	users      UserRepository
	profiles   ProfileRepository
	log        *zap.Logger
	windowDays int
	now        func() time.Time
}

func NewService(bookings BookingRepository, users UserRepository, profiles ProfileRepository, log *zap.Logger, windowDays int) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	return &Service{
		bookings:   bookings,
		users:      users,
		profiles:   profiles,
		log:        log,
		windowDays: windowDays,
		now:        time.Now,
	}
}

// WithClock replaces the time source used to compute "today".
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) today() time.Time {
	return domain.DateOnly(s.now())
}

// Window returns the first and last bookable dates, both inclusive.
func (s *Service) Window() (time.Time, time.Time) {
	start := s.today()
	return start, start.AddDate(0, 0, s.windowDays-1)
}

func (s *Service) CreateBooking(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	if errs := validator.Validate(req); errs != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, errs)
	}
	if req.ScheduledDate.IsZero() {
		return nil, fmt.Errorf("%w: scheduled date is required", ErrValidation)
	}

	if err := s.ensureBookableCreative(ctx, req.CreativeID); err != nil {
		return nil, err
	}

	date := domain.DateOnly(req.ScheduledDate)
	start, end := s.Window()
	if date.Before(start) || date.After(end) {
		return nil, ErrDateOutOfWindow
	}

	b := &domain.Booking{
		MarketerID:    req.MarketerID,
		CreativeID:    req.CreativeID,
		Status:        domain.BookingPending,
		Note:          strings.TrimSpace(req.Note),
		CreatedAt:     s.now(),
		ScheduledDate: &date,
	}
	if err := s.bookings.CreateChecked(ctx, b); err != nil {
		if errors.Is(err, repository.ErrSlotTaken) {
			return nil, ErrDateUnavailable
		}
		return nil, err
	}

	s.log.Info("booking created",
		zap.Int64("booking_id", b.ID),
		zap.Int64("marketer_id", b.MarketerID),
		zap.Int64("creative_id", b.CreativeID),
		zap.String("date", date.Format(domain.DateLayout)),
	)
	return b, nil
}

func (s *Service) ensureBookableCreative(ctx context.Context, creativeID int64) error {
	u, err := s.users.GetByID(ctx, creativeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCreativeNotApproved
		}
		return err
	}
	if u.Role != domain.RoleCreative || !u.Approved {
		return ErrCreativeNotApproved
	}

	p, err := s.profiles.GetByUserID(ctx, creativeID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		// no profile means nobody opted out
		return nil
	case err != nil:
		return err
	case !p.Availability:
		return ErrCreativeUnavailable
	}
	return nil
}

func (s *Service) Accept(ctx context.Context, bookingID, creativeID int64) error {
	if err := s.transition(ctx, bookingID, repository.PartyCreative, creativeID, domain.BookingAccepted); err != nil {
		return err
	}
	s.setAvailability(ctx, creativeID, false)
	return nil
}

func (s *Service) Reject(ctx context.Context, bookingID, creativeID int64) error {
	return s.transition(ctx, bookingID, repository.PartyCreative, creativeID, domain.BookingRejected)
}

func (s *Service) Complete(ctx context.Context, bookingID, creativeID int64) error {
	if err := s.transition(ctx, bookingID, repository.PartyCreative, creativeID, domain.BookingCompleted); err != nil {
		return err
	}
	s.setAvailability(ctx, creativeID, true)
	return nil
}

// Cancel withdraws a pending or accepted booking. It does not cancel in any
// status: a rejected, completed or cancelled booking is left as is and
// ErrInvalidTransition is returned.
func (s *Service) Cancel(ctx context.Context, bookingID, marketerID int64) error {
	return s.transition(ctx, bookingID, repository.PartyMarketer, marketerID, domain.BookingCancelled)
}

// transition applies a guarded status change and, when nothing changed,
// re-reads the row to tell the caller why.
func (s *Service) transition(ctx context.Context, bookingID int64, party repository.Party, ownerID int64, to domain.BookingStatus) error {
	n, err := s.bookings.UpdateStatusIf(ctx, bookingID, party, ownerID, domain.TransitionSources(to), to)
	if err != nil {
		return err
	}
	if n > 0 {
		s.log.Info("booking status changed",
			zap.Int64("booking_id", bookingID),
			zap.String("status", string(to)),
			zap.Int64("actor_id", ownerID),
		)
		return nil
	}

	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	owner := b.CreativeID
	if party == repository.PartyMarketer {
		owner = b.MarketerID
	}
	if owner != ownerID {
		return ErrNotOwner
	}
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, b.Status, to)
}

// setAvailability writes the flag, creating the profile row for creatives
// that never saved one.
func (s *Service) setAvailability(ctx context.Context, creativeID int64, available bool) {
	n, err := s.profiles.SetAvailability(ctx, creativeID, available)
	if err == nil && n == 0 {
		err = s.profiles.Create(ctx, &domain.CreativeProfile{UserID: creativeID, Availability: available})
	}
	if err != nil {
		// status change already committed; the flag is advisory
		s.log.Warn("availability update failed",
			zap.Int64("creative_id", creativeID),
			zap.Bool("available", available),
			zap.Error(err),
		)
	}
}

func (s *Service) ListForCreative(ctx context.Context, creativeID int64) ([]repository.BookingDetails, error) {
	return s.bookings.ListForCreative(ctx, creativeID)
}

func (s *Service) ListForMarketer(ctx context.Context, marketerID int64) ([]repository.BookingDetails, error) {
	return s.bookings.ListForMarketer(ctx, marketerID)
}

func (s *Service) ListCompletedForMarketer(ctx context.Context, marketerID int64) ([]repository.BookingDetails, error) {
	return s.bookings.ListCompletedForMarketer(ctx, marketerID)
}

// Calendar projects the booking window of a creative with its taken dates.
func (s *Service) Calendar(ctx context.Context, creativeID int64) (*Calendar, error) {
	start, end := s.Window()
	taken, err := s.bookings.TakenDates(ctx, creativeID, start, end)
	if err != nil {
		return nil, err
	}
	return buildCalendar(creativeID, start, s.windowDays, taken), nil
}

// EnsureChatBooking returns the latest active booking between the pair. When
// none exists and req.Create is set, it opens a dateless pending booking.
func (s *Service) EnsureChatBooking(ctx context.Context, req EnsureChatRequest) (*domain.Booking, error) {
	b, err := s.bookings.LatestActiveBetween(ctx, req.MarketerID, req.CreativeID)
	if err == nil {
		return b, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if !req.Create {
		return nil, ErrNoActiveBooking
	}

	if err := s.ensureBookableCreative(ctx, req.CreativeID); err != nil {
		return nil, err
	}

	b = &domain.Booking{
		MarketerID: req.MarketerID,
		CreativeID: req.CreativeID,
		Status:     domain.BookingPending,
		Note:       strings.TrimSpace(req.Note),
		CreatedAt:  s.now(),
	}
	if err := s.bookings.CreateChecked(ctx, b); err != nil {
		return nil, err
	}
	s.log.Info("chat booking opened",
		zap.Int64("booking_id", b.ID),
		zap.Int64("marketer_id", b.MarketerID),
		zap.Int64("creative_id", b.CreativeID),
	)
	return b, nil
}
