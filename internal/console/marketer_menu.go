package console

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"creativeconnect/internal/domain"
	"creativeconnect/internal/modules/booking"
	"creativeconnect/internal/modules/review"
	"creativeconnect/internal/repository"
)

func (a *App) marketerMenu(ctx context.Context, s *session) error {
	for {
		a.p.Printf("\n-- Welcome %s (Marketer) --\n", s.user.Name)
		a.p.Println("1. Search by Category/Location")
		a.p.Println("2. Booking/Cancellation Option")
		a.p.Println("3. Add Review")
		a.p.Println("4. History")
		a.p.Println("5. Raise a Ticket")
		a.p.Println("6. Logout")

		choice, err := a.p.Ask("Enter choice: ")
		if err != nil {
			return err
		}
		if choice == "6" {
			a.p.Println("Logged out.")
			return nil
		}
		if !a.alive(s) {
			return nil
		}

		switch choice {
		case "1":
			err = a.searchCreatives(ctx)
		case "2":
			err = a.bookingOptions(ctx, s)
		case "3":
			err = a.addReview(ctx, s)
		case "4":
			a.viewHistory(ctx, s)
		case "5":
			err = a.raiseTicket(ctx, s)
		default:
			a.p.Println("Invalid choice.")
		}
		if err != nil {
			return err
		}
	}
}

func creativeRows(list []repository.CreativeListing) [][]string {
	rows := make([][]string, 0, len(list))
	for _, c := range list {
		rows = append(rows, []string{
			strconv.FormatInt(c.UserID, 10), c.Name, c.Email, c.Category, c.Skills, c.Location, c.PortfolioLinks, yesNo(c.Availability),
		})
	}
	return rows
}

var creativeHeaders = []string{"user_id", "name", "email", "category", "skills", "location", "portfolio_links", "availability"}

func (a *App) searchCreatives(ctx context.Context) error {
	a.p.Println("\n-- Search Creatives --")
	var f repository.CreativeFilter

	avail, err := a.p.Ask("Availability (yes/no, blank to skip): ")
	if err != nil {
		return err
	}
	switch strings.ToLower(avail) {
	case "yes":
		v := true
		f.Availability = &v
	case "no":
		v := false
		f.Availability = &v
	}

	cats, err := a.svc.Catalog.ListCategories(ctx)
	if err != nil {
		a.report(err)
		return nil
	}
	if len(cats) > 0 {
		a.p.Println("\nAvailable Categories:")
		rows := make([][]string, 0, len(cats))
		for _, c := range cats {
			rows = append(rows, []string{strconv.FormatInt(c.ID, 10), c.Name})
		}
		renderTable(a.p.out, []string{"ID", "Name"}, rows)

		id, ok, err := a.p.AskInt("Enter category ID to filter (0 to skip): ")
		if err != nil {
			return err
		}
		if ok && id != 0 {
			for _, c := range cats {
				if c.ID == id {
					f.Category = c.Name
				}
			}
			if f.Category == "" {
				a.p.Println("Invalid category ID selected. Continuing without category filter.")
			}
		}
	} else {
		a.p.Println("No categories defined. You can still search by location or availability.")
	}

	locs, err := a.svc.Catalog.ListLocations(ctx)
	if err != nil {
		a.report(err)
		return nil
	}
	if len(locs) > 0 {
		a.p.Println("\nAvailable Locations:")
		for i, l := range locs {
			a.p.Printf("%d. %s\n", i+1, l)
		}
		n, ok, err := a.p.AskInt("Enter location number to filter (0 to skip): ")
		if err != nil {
			return err
		}
		if ok && n != 0 {
			if n >= 1 && int(n) <= len(locs) {
				f.Location = locs[n-1]
			} else {
				a.p.Println("Invalid location selection. Continuing without location filter.")
			}
		}
	}

	found, err := a.svc.Catalog.SearchCreatives(ctx, f)
	if err != nil {
		a.report(err)
		return nil
	}
	renderTable(a.p.out, creativeHeaders, creativeRows(found))
	return nil
}

func (a *App) bookingOptions(ctx context.Context, s *session) error {
	a.p.Println("\n-- Book a Creative --")
	creatives, err := a.svc.Catalog.ListBookableCreatives(ctx)
	if err != nil {
		a.report(err)
		return nil
	}
	if len(creatives) == 0 {
		a.p.Println("No creatives available right now.")
		return nil
	}
	a.p.Println("\nAvailable Creatives:")
	renderTable(a.p.out, creativeHeaders, creativeRows(creatives))

	a.p.Println("\nWhat would you like to do?")
	a.p.Println("1. Book a creative")
	a.p.Println("2. Cancel a booking")
	a.p.Println("3. Chat with a creative")
	choice, err := a.p.Ask("Enter choice (1/2/3): ")
	if err != nil {
		return err
	}

	switch choice {
	case "1":
		return a.bookCreative(ctx, s, creatives)
	case "2":
		return a.cancelBooking(ctx, s)
	case "3":
		return a.chatWithCreative(ctx, s)
	default:
		a.p.Println("Invalid choice.")
		return nil
	}
}

func (a *App) bookCreative(ctx context.Context, s *session, bookable []repository.CreativeListing) error {
	id, ok, err := a.p.AskInt("\nEnter creative user_id to book: ")
	if err != nil {
		return err
	}
	if !ok {
		a.p.Println("Please enter a valid numeric user_id.")
		return nil
	}

	var target *repository.CreativeListing
	for i := range bookable {
		if bookable[i].UserID == id {
			target = &bookable[i]
		}
	}
	if target == nil {
		a.p.Println("Creative not found or not available for booking.")
		return nil
	}
	if target.PortfolioLinks != "" {
		a.p.Printf("\nPortfolio: %s\n", target.PortfolioLinks)
	} else {
		a.p.Println("\nNo portfolio link found.")
	}

	cal, err := a.svc.Bookings.Calendar(ctx, id)
	if err != nil {
		a.report(err)
		return nil
	}
	a.p.Println("\nSelect a date for the booking (dates marked ' X' are unavailable)")
	renderCalendar(a.p.out, cal)

	v, err := a.p.Ask("\nEnter the desired date (YYYY-MM-DD) or 0 to cancel: ")
	if err != nil {
		return err
	}
	if v == "0" {
		a.p.Println("Booking cancelled.")
		return nil
	}
	date, parseErr := time.Parse(domain.DateLayout, v)
	if parseErr != nil {
		a.p.Println("Invalid date format. Use YYYY-MM-DD.")
		return nil
	}
	// checked locally too so the note prompt is skipped for a bad date
	switch cal.StateOf(date) {
	case booking.DayOutOfWindow:
		a.report(booking.ErrDateOutOfWindow)
		return nil
	case booking.DayTaken:
		a.report(booking.ErrDateUnavailable)
		return nil
	}

	note, err := a.p.Ask("\nShort brief for booking (optional): ")
	if err != nil {
		return err
	}

	b, err := a.svc.Bookings.CreateBooking(ctx, booking.CreateBookingRequest{
		MarketerID:    s.user.ID,
		CreativeID:    id,
		Note:          note,
		ScheduledDate: date,
	})
	if err != nil {
		a.report(err)
		return nil
	}
	a.p.Printf("Booking request sent for %s (status: %s).\n", formatDate(b.ScheduledDate), b.Status)
	return nil
}

func (a *App) marketerBookingRows(list []repository.BookingDetails) [][]string {
	rows := make([][]string, 0, len(list))
	for _, b := range list {
		rows = append(rows, []string{
			strconv.FormatInt(b.ID, 10), b.CounterpartName, string(b.Status), formatDate(b.ScheduledDate), formatTimestamp(b.CreatedAt),
		})
	}
	return rows
}

func (a *App) cancelBooking(ctx context.Context, s *session) error {
	list, err := a.svc.Bookings.ListForMarketer(ctx, s.user.ID)
	if err != nil {
		a.report(err)
		return nil
	}
	if len(list) == 0 {
		a.p.Println("You have no bookings to cancel.")
		return nil
	}
	a.p.Println("\nYour Current Bookings:")
	renderTable(a.p.out, []string{"booking_id", "creative_name", "status", "scheduled_date", "created_at"}, a.marketerBookingRows(list))

	id, ok, err := a.p.AskInt("\nEnter booking_id to cancel: ")
	if err != nil {
		return err
	}
	if !ok {
		a.p.Println("Please enter a valid numeric booking_id.")
		return nil
	}
	a.applyTransition(a.svc.Bookings.Cancel(ctx, id, s.user.ID), "Booking %d cancelled.\n", id)
	return nil
}

func (a *App) chatWithCreative(ctx context.Context, s *session) error {
	id, ok, err := a.p.AskInt("\nEnter creative user_id to chat with: ")
	if err != nil {
		return err
	}
	if !ok {
		a.p.Println("Please enter a valid numeric user_id.")
		return nil
	}

	req := booking.EnsureChatRequest{MarketerID: s.user.ID, CreativeID: id}
	b, err := a.svc.Bookings.EnsureChatBooking(ctx, req)
	if errors.Is(err, booking.ErrNoActiveBooking) {
		create, askErr := a.p.AskYesNo("No booking exists with this creative. Create a pending booking to enable chat? (y/N): ")
		if askErr != nil {
			return askErr
		}
		if !create {
			a.p.Println("Chat cancelled.")
			return nil
		}
		if req.Note, err = a.p.Ask("Short brief for booking (optional): "); err != nil {
			return err
		}
		req.Create = true
		b, err = a.svc.Bookings.EnsureChatBooking(ctx, req)
		if err == nil {
			a.p.Printf("Pending booking %d created. Opening chat...\n", b.ID)
		}
	}
	if err != nil {
		a.report(err)
		return nil
	}
	return a.chatSession(ctx, s, b.ID)
}

func (a *App) addReview(ctx context.Context, s *session) error {
	a.p.Println("\n-- Add Review --")
	done, err := a.svc.Bookings.ListCompletedForMarketer(ctx, s.user.ID)
	if err != nil {
		a.report(err)
		return nil
	}
	if len(done) == 0 {
		a.p.Println("You have no completed bookings to review.")
		return nil
	}
	a.p.Println("\nYour Completed Bookings:")
	rows := make([][]string, 0, len(done))
	for _, b := range done {
		rows = append(rows, []string{
			strconv.FormatInt(b.ID, 10), strconv.FormatInt(b.CreativeID, 10), b.CounterpartName, string(b.Status), formatDate(b.ScheduledDate),
		})
	}
	renderTable(a.p.out, []string{"booking_id", "creative_id", "creative_name", "status", "scheduled_date"}, rows)

	id, ok, err := a.p.AskInt("Enter completed booking_id to review: ")
	if err != nil {
		return err
	}
	if !ok {
		a.p.Println("Please enter a valid numeric booking_id.")
		return nil
	}
	rating, ok, err := a.p.AskInt("Rating (1-5): ")
	if err != nil {
		return err
	}
	if !ok || rating < 1 || rating > 5 {
		a.p.Println("Please enter a number between 1 and 5.")
		return nil
	}
	comment, err := a.p.Ask("Comment (optional): ")
	if err != nil {
		return err
	}

	if _, err := a.svc.Reviews.Create(ctx, s.user.ID, review.CreateReviewRequest{
		BookingID: id,
		Rating:    int(rating),
		Comment:   comment,
	}); err != nil {
		a.report(err)
		return nil
	}
	a.p.Println("Review submitted. Thank you!")
	return nil
}

func (a *App) viewHistory(ctx context.Context, s *session) {
	a.p.Println("\n-- Your Booking History --")
	list, err := a.svc.Bookings.ListForMarketer(ctx, s.user.ID)
	if err != nil {
		a.report(err)
		return
	}
	rows := make([][]string, 0, len(list))
	for _, b := range list {
		rows = append(rows, []string{
			strconv.FormatInt(b.ID, 10), string(b.Status), formatDate(b.ScheduledDate), formatTimestamp(b.CreatedAt),
			strconv.FormatInt(b.CreativeID, 10), b.CounterpartName, b.CreativeCategory, b.CreativeLocation,
		})
	}
	renderTable(a.p.out, []string{"booking_id", "status", "scheduled_date", "created_at", "creative_id", "creative_name", "category", "location"}, rows)
}
