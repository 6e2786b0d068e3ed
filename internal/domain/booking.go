package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingAccepted  BookingStatus = "accepted"
	BookingRejected  BookingStatus = "rejected"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// ValidBookingTransitions lists the allowed edges: from -> []to.
var ValidBookingTransitions = map[BookingStatus][]BookingStatus{
	BookingPending:   {BookingAccepted, BookingRejected, BookingCancelled},
	BookingAccepted:  {BookingCompleted, BookingCancelled},
	BookingRejected:  {},
	BookingCompleted: {},
	BookingCancelled: {},
}

func IsValidTransition(from, to BookingStatus) bool {
	allowed, ok := ValidBookingTransitions[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// TransitionSources returns every status that may move to target.
func TransitionSources(target BookingStatus) []BookingStatus {
	var out []BookingStatus
	for _, from := range []BookingStatus{BookingPending, BookingAccepted, BookingRejected, BookingCompleted, BookingCancelled} {
		if IsValidTransition(from, target) {
			out = append(out, from)
		}
	}
	return out
}

func (s BookingStatus) IsTerminal() bool {
	return len(ValidBookingTransitions[s]) == 0
}

// IsActive reports whether the booking holds its date and allows chat.
func (s BookingStatus) IsActive() bool {
	return s == BookingPending || s == BookingAccepted
}

// ActiveBookingStatuses are the statuses that occupy a (creative, date) slot.
var ActiveBookingStatuses = []BookingStatus{BookingPending, BookingAccepted}

type Booking struct {
	ID            int64         `json:"booking_id" gorm:"column:booking_id;primaryKey"`
	MarketerID    int64         `json:"marketer_id" gorm:"column:marketer_id;not null;index"`
	CreativeID    int64         `json:"creative_id" gorm:"column:creative_id;not null;index"`
	Status        BookingStatus `json:"status" gorm:"column:status;type:varchar(16);not null"`
	Note          string        `json:"note,omitempty" gorm:"column:note;type:text"`
	CreatedAt     time.Time     `json:"created_at" gorm:"column:created_at"`
	ScheduledDate *time.Time    `json:"scheduled_date,omitempty" gorm:"column:scheduled_date;type:date"`
}

func (Booking) TableName() string { return "bookings" }

// DateOnly truncates t to its calendar date, represented as UTC midnight.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

const DateLayout = "2006-01-02"
