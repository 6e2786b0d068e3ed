package console

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"creativeconnect/internal/modules/booking"
	"creativeconnect/internal/modules/chat"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int, state booking.DayState) *booking.CalendarDay {
	return &booking.CalendarDay{Date: time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC), State: state}
}

func TestRenderCalendar(t *testing.T) {
	cal := &booking.Calendar{Months: []booking.CalendarMonth{{
		Year:  2026,
		Month: time.March,
		Weeks: [][]*booking.CalendarDay{
			{nil, nil, nil, nil, nil, nil, day(1, booking.DayOutOfWindow)},
			{day(2, booking.DayFree), day(3, booking.DayTaken), day(4, booking.DayFree), nil, nil, nil, nil},
		},
	}}}

	var buf bytes.Buffer
	renderCalendar(&buf, cal)
	got := strings.Split(strings.TrimPrefix(buf.String(), "\n"), "\n")

	require.GreaterOrEqual(t, len(got), 4)
	assert.Equal(t, "   March 2026", got[0])
	assert.Equal(t, "Mo Tu We Th Fr Sa Su", got[1])
	assert.Equal(t, strings.Repeat("    ", 6)+" . ", got[2])
	assert.True(t, strings.HasPrefix(got[3], " 2   X   4 "), got[3])
}

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	renderTable(&buf, []string{"id", "name"}, nil)
	assert.Equal(t, "No records found.\n", buf.String())

	buf.Reset()
	renderTable(&buf, []string{"booking_id", "status"}, [][]string{{"7", "pending"}})
	assert.Contains(t, buf.String(), "booking_id")
	assert.Contains(t, buf.String(), "pending")
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "-", formatDate(nil))
	d := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-03-12", formatDate(&d))
}

func TestDescribe(t *testing.T) {
	msg, ok := describe(fmt.Errorf("create: %w", booking.ErrDateUnavailable))
	assert.True(t, ok)
	assert.Equal(t, "Selected date is not available.", msg)

	msg, ok = describe(chat.ErrNotParticipant)
	assert.True(t, ok)
	assert.Equal(t, "You are not a participant in this booking.", msg)

	msg, ok = describe(errors.New("disk on fire"))
	assert.False(t, ok)
	assert.Equal(t, "Something went wrong. Please try again.", msg)
}

func TestPrompter(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("  hi  \n\nname\nabc\n42\nYes\npw\n"), &out)

	v, err := p.Ask("> ")
	require.NoError(t, err)
	assert.Equal(t, "hi", v)

	v, err = p.AskRequired("> ")
	require.NoError(t, err)
	assert.Equal(t, "name", v)
	assert.Contains(t, out.String(), "This field cannot be empty.")

	_, ok, err := p.AskInt("> ")
	require.NoError(t, err)
	assert.False(t, ok)

	n, ok, err := p.AskInt("> ")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.EqualValues(t, 42, n)

	yes, err := p.AskYesNo("> ")
	require.NoError(t, err)
	assert.True(t, yes)

	pw, err := p.AskPassword("> ")
	require.NoError(t, err)
	assert.Equal(t, "pw", pw)

	_, err = p.Ask("> ")
	assert.Error(t, err)
}
