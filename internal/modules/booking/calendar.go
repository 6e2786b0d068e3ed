package booking

import (
	"time"

	"creativeconnect/internal/domain"
)

type DayState int

const (
	DayOutOfWindow DayState = iota
	DayTaken
	DayFree
)

type CalendarDay struct {
	Date  time.Time
	State DayState
}

// CalendarMonth lays out one month Monday first. Padding cells are nil.
type CalendarMonth struct {
	Year  int
	Month time.Month
	Weeks [][]*CalendarDay
}

// Calendar is the read-side view of a creative's booking window.
type Calendar struct {
	CreativeID  int64
	WindowStart time.Time
	WindowEnd   time.Time
	Taken       map[string]bool
	Months      []CalendarMonth
}

func buildCalendar(creativeID int64, start time.Time, days int, taken []time.Time) *Calendar {
	end := start.AddDate(0, 0, days-1)
	cal := &Calendar{
		CreativeID:  creativeID,
		WindowStart: start,
		WindowEnd:   end,
		Taken:       make(map[string]bool, len(taken)),
	}
	for _, d := range taken {
		cal.Taken[d.Format(domain.DateLayout)] = true
	}

	y, m, _ := start.Date()
	cursor := time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
	for !cursor.After(end) {
		cal.Months = append(cal.Months, cal.layoutMonth(cursor))
		cursor = cursor.AddDate(0, 1, 0)
	}
	return cal
}

func (c *Calendar) layoutMonth(first time.Time) CalendarMonth {
	month := CalendarMonth{Year: first.Year(), Month: first.Month()}

	// Monday = 0
	offset := (int(first.Weekday()) + 6) % 7
	week := make([]*CalendarDay, 7)
	col := offset
	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		week[col] = &CalendarDay{Date: d, State: c.StateOf(d)}
		col++
		if col == 7 {
			month.Weeks = append(month.Weeks, week)
			week = make([]*CalendarDay, 7)
			col = 0
		}
	}
	if col > 0 {
		month.Weeks = append(month.Weeks, week)
	}
	return month
}

func (c *Calendar) InWindow(d time.Time) bool {
	d = domain.DateOnly(d)
	return !d.Before(c.WindowStart) && !d.After(c.WindowEnd)
}

func (c *Calendar) StateOf(d time.Time) DayState {
	d = domain.DateOnly(d)
	switch {
	case !c.InWindow(d):
		return DayOutOfWindow
	case c.Taken[d.Format(domain.DateLayout)]:
		return DayTaken
	default:
		return DayFree
	}
}

// FreeDays lists every selectable date in window order.
func (c *Calendar) FreeDays() []time.Time {
	var out []time.Time
	for d := c.WindowStart; !d.After(c.WindowEnd); d = d.AddDate(0, 0, 1) {
		if c.StateOf(d) == DayFree {
			out = append(out, d)
		}
	}
	return out
}
