package chat

import (
	"context"
	"errors"
	"strings"

	"creativeconnect/internal/domain"
	"creativeconnect/internal/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrChatUnavailable = errors.New("chat is only open for pending or accepted bookings")
	ErrNotParticipant  = errors.New("you are not a participant of this booking")
	ErrEmptyContent    = errors.New("message content cannot be empty")
	ErrTooLong         = errors.New("message is too long")
)

const (
	RecentLimit    = 5
	MaxMessageSize = 4000
)

// Thread is an open chat: the booking it belongs to and who is on the other side.
type Thread struct {
	Booking       *domain.Booking
	UserID        int64
	CounterpartID int64
}

type Service struct {
	chatRepo    MessageRepository
	bookingRepo BookingReader
	log         *zap.Logger
}

func NewService(chatRepo MessageRepository, bookingRepo BookingReader, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{chatRepo: chatRepo, bookingRepo: bookingRepo, log: log}
}

// Open checks the gate: the booking must be active and the user one of its
// two participants.
func (s *Service) Open(ctx context.Context, userID, bookingID int64) (*Thread, error) {
	b, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChatUnavailable
		}
		return nil, err
	}
	if !b.Status.IsActive() {
		return nil, ErrChatUnavailable
	}

	switch userID {
	case b.MarketerID:
		return &Thread{Booking: b, UserID: userID, CounterpartID: b.CreativeID}, nil
	case b.CreativeID:
		return &Thread{Booking: b, UserID: userID, CounterpartID: b.MarketerID}, nil
	default:
		return nil, ErrNotParticipant
	}
}

func (s *Service) Recent(ctx context.Context, bookingID int64) ([]repository.ChatLine, error) {
	return s.chatRepo.Recent(ctx, bookingID, RecentLimit)
}

func (s *Service) Send(ctx context.Context, userID, bookingID int64, text string) (*domain.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyContent
	}
	if len(text) > MaxMessageSize {
		return nil, ErrTooLong
	}

	// status may have moved since the thread was opened
	if _, err := s.Open(ctx, userID, bookingID); err != nil {
		return nil, err
	}

	msg := &domain.ChatMessage{
		BookingID: bookingID,
		SenderID:  userID,
		Message:   text,
	}
	if err := s.chatRepo.CreateMessage(ctx, msg); err != nil {
		return nil, err
	}
	s.log.Debug("chat message sent", zap.Int64("booking_id", bookingID), zap.Int64("sender_id", userID))
	return msg, nil
}
