package console

import (
	"fmt"
	"io"
	"strings"
	"time"

	"creativeconnect/internal/domain"
	"creativeconnect/internal/modules/booking"

	"github.com/olekukonko/tablewriter"
)

func renderTable(w io.Writer, headers []string, rows [][]string) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No records found.")
		return
	}
	t := tablewriter.NewWriter(w)
	t.SetHeader(headers)
	t.SetAutoWrapText(false)
	t.SetAutoFormatHeaders(false)
	t.AppendBulk(rows)
	t.Render()
}

func formatDate(d *time.Time) string {
	if d == nil {
		return "-"
	}
	return d.Format(domain.DateLayout)
}

func formatTimestamp(t time.Time) string {
	return t.Local().Format("2006-01-02 15:04")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// renderCalendar prints each month of the window Monday first. Days outside
// the window show " . ", taken days " X ".
func renderCalendar(w io.Writer, cal *booking.Calendar) {
	for _, m := range cal.Months {
		fmt.Fprintf(w, "\n   %s %d\n", m.Month, m.Year)
		fmt.Fprintln(w, "Mo Tu We Th Fr Sa Su")
		for _, week := range m.Weeks {
			cells := make([]string, 0, 7)
			for _, day := range week {
				cells = append(cells, calendarCell(day))
			}
			fmt.Fprintln(w, strings.Join(cells, " "))
		}
	}
}

func calendarCell(day *booking.CalendarDay) string {
	if day == nil {
		return "   "
	}
	switch day.State {
	case booking.DayOutOfWindow:
		return " . "
	case booking.DayTaken:
		return " X "
	default:
		return fmt.Sprintf("%2d ", day.Date.Day())
	}
}
