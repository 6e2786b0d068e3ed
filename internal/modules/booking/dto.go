package booking

import "time"

type CreateBookingRequest struct {
	MarketerID    int64     `validate:"required,gt=0"`
	CreativeID    int64     `validate:"required,gt=0"`
	Note          string    `validate:"max=1000"`
	ScheduledDate time.Time
}

// EnsureChatRequest asks for a booking that lets the pair chat. With Create
// set, a dateless pending booking is opened when none is active.
type EnsureChatRequest struct {
	MarketerID int64
	CreativeID int64
	Note       string
	Create     bool
}
