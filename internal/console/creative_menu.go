package console

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"creativeconnect/internal/domain"
	"creativeconnect/internal/modules/profile"
)

func (a *App) creativeMenu(ctx context.Context, s *session) error {
	for {
		a.p.Printf("\n-- Welcome %s (Creative) --\n", s.user.Name)
		a.p.Println("1. Create/Update Profile")
		a.p.Println("2. View My Profile")
		a.p.Println("3. Set Availability")
		a.p.Println("4. View & Manage Bookings")
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
			err = a.editProfile(ctx, s)
		case "2":
			a.viewProfile(ctx, s)
		case "3":
			err = a.setAvailability(ctx, s)
		case "4":
			err = a.manageBookings(ctx, s)
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

func (a *App) printProfile(p *domain.CreativeProfile) {
	a.p.Printf("category: %s\n", p.Category)
	a.p.Printf("skills: %s\n", p.Skills)
	a.p.Printf("location: %s\n", p.Location)
	a.p.Printf("portfolio_links: %s\n", p.PortfolioLinks)
	a.p.Printf("availability: %s\n", yesNo(p.Availability))
}

func (a *App) editProfile(ctx context.Context, s *session) error {
	current, err := a.svc.Profiles.GetProfile(ctx, s.user.ID)
	if err != nil && !errors.Is(err, profile.ErrNotFound) {
		a.report(err)
		return nil
	}
	exists := current != nil
	if !exists {
		current = &domain.CreativeProfile{}
	}

	if exists {
		a.p.Println("\nCurrent Profile:")
		a.printProfile(current)
		ok, err := a.p.AskYesNo("Do you want to update your profile? (y/N): ")
		if err != nil {
			return err
		}
		if !ok {
			a.p.Println("No changes made.")
			return nil
		}
	}

	var f profile.Fields
	if f.Category, err = a.pickCategory(ctx, current.Category); err != nil {
		return err
	}
	if f.Skills, err = a.askKeep("Enter your skills (comma separated)", current.Skills); err != nil {
		return err
	}
	if f.Location, err = a.pickLocation(ctx, current.Location); err != nil {
		return err
	}
	if f.PortfolioLinks, err = a.askKeep("Portfolio Links", current.PortfolioLinks); err != nil {
		return err
	}

	if _, err := a.svc.Profiles.UpsertProfile(ctx, s.user.ID, f); err != nil {
		a.report(err)
		return nil
	}
	a.p.Println("Profile saved.")
	return nil
}

// askKeep returns nil for a blank answer so the stored value stays.
func (a *App) askKeep(label, current string) (*string, error) {
	v, err := a.p.Ask(label + " [" + current + "]: ")
	if err != nil || v == "" {
		return nil, err
	}
	return &v, nil
}

func (a *App) pickCategory(ctx context.Context, current string) (*string, error) {
	cats, err := a.svc.Catalog.ListCategories(ctx)
	if err != nil {
		a.report(err)
		return nil, nil
	}
	if len(cats) == 0 {
		return a.askKeep("Enter your category", current)
	}

	a.p.Println("\nAvailable Categories:")
	rows := make([][]string, 0, len(cats))
	for _, c := range cats {
		rows = append(rows, []string{strconv.FormatInt(c.ID, 10), c.Name})
	}
	renderTable(a.p.out, []string{"ID", "Name"}, rows)

	v, err := a.p.Ask("Enter category ID to select (0 for custom / blank to keep '" + current + "'): ")
	if err != nil || v == "" {
		return nil, err
	}
	if v == "0" {
		custom, err := a.p.Ask("Enter custom category: ")
		if err != nil || custom == "" {
			return nil, err
		}
		return &custom, nil
	}
	id, convErr := strconv.ParseInt(v, 10, 64)
	if convErr == nil {
		for _, c := range cats {
			if c.ID == id {
				name := c.Name
				return &name, nil
			}
		}
	}
	a.p.Println("Invalid category ID. Keeping existing category.")
	return nil, nil
}

func (a *App) pickLocation(ctx context.Context, current string) (*string, error) {
	locs, err := a.svc.Catalog.ListLocations(ctx)
	if err != nil {
		a.report(err)
		return nil, nil
	}
	if len(locs) == 0 {
		return a.askKeep("Location", current)
	}

	a.p.Println("\nAvailable Locations:")
	for i, l := range locs {
		a.p.Printf("%d. %s\n", i+1, l)
	}
	v, err := a.p.Ask("Enter location number to select (0 for custom / blank to keep '" + current + "'): ")
	if err != nil || v == "" {
		return nil, err
	}
	if v == "0" {
		custom, err := a.p.Ask("Enter custom location: ")
		if err != nil || custom == "" {
			return nil, err
		}
		return &custom, nil
	}
	if n, convErr := strconv.Atoi(v); convErr == nil && n >= 1 && n <= len(locs) {
		loc := locs[n-1]
		return &loc, nil
	}
	a.p.Println("Invalid selection. Keeping existing location.")
	return nil, nil
}

func (a *App) viewProfile(ctx context.Context, s *session) {
	p, err := a.svc.Profiles.GetProfile(ctx, s.user.ID)
	if err != nil {
		a.report(err)
		return
	}
	a.p.Println("\nYour Profile:")
	a.printProfile(p)
}

func (a *App) setAvailability(ctx context.Context, s *session) error {
	v, err := a.p.Ask("Set availability (yes/no): ")
	if err != nil {
		return err
	}
	available := strings.EqualFold(v, "yes")
	if err := a.svc.Profiles.SetAvailability(ctx, s.user.ID, available); err != nil {
		a.report(err)
		return nil
	}
	a.p.Println("Availability updated.")
	return nil
}

func (a *App) manageBookings(ctx context.Context, s *session) error {
	list, err := a.svc.Bookings.ListForCreative(ctx, s.user.ID)
	if err != nil {
		a.report(err)
		return nil
	}
	if len(list) == 0 {
		a.p.Println("\nNo bookings yet.")
		return nil
	}

	a.p.Println("\nYour Bookings:")
	rows := make([][]string, 0, len(list))
	for _, b := range list {
		rows = append(rows, []string{
			strconv.FormatInt(b.ID, 10), b.CounterpartName, string(b.Status), b.Note, formatDate(b.ScheduledDate),
		})
	}
	renderTable(a.p.out, []string{"ID", "Marketer", "Status", "Note", "Scheduled"}, rows)

	id, ok, err := a.p.AskInt("\nEnter Booking ID to manage (0 to go back): ")
	if err != nil {
		return err
	}
	if !ok {
		a.p.Println("Invalid input.")
		return nil
	}
	if id == 0 {
		return nil
	}

	var status domain.BookingStatus
	for _, b := range list {
		if b.ID == id {
			status = b.Status
		}
	}

	switch status {
	case "":
		a.p.Println("Booking not found or not yours.")
	case domain.BookingPending:
		a.p.Println("\n1. Accept Booking")
		a.p.Println("2. Reject Booking")
		a.p.Println("3. Chat with Marketer")
		a.p.Println("4. Back")
		action, err := a.p.Ask("Choose action: ")
		if err != nil {
			return err
		}
		switch action {
		case "1":
			a.applyTransition(a.svc.Bookings.Accept(ctx, id, s.user.ID), "Booking %d accepted.\n", id)
		case "2":
			a.applyTransition(a.svc.Bookings.Reject(ctx, id, s.user.ID), "Booking %d rejected.\n", id)
		case "3":
			return a.chatSession(ctx, s, id)
		case "4":
		default:
			a.p.Println("Invalid choice.")
		}
	case domain.BookingAccepted:
		a.p.Println("\n1. Mark as completed")
		a.p.Println("2. Chat with Marketer")
		a.p.Println("3. Back")
		action, err := a.p.Ask("Choose action: ")
		if err != nil {
			return err
		}
		switch action {
		case "1":
			a.applyTransition(a.svc.Bookings.Complete(ctx, id, s.user.ID), "Booking %d marked as completed.\n", id)
		case "2":
			return a.chatSession(ctx, s, id)
		case "3":
			a.p.Println("Back to bookings list.")
		default:
			a.p.Println("Invalid choice.")
		}
	default:
		a.p.Printf("Booking is already %s.\n", status)
	}
	return nil
}

func (a *App) applyTransition(err error, okFormat string, id int64) {
	if err != nil {
		a.report(err)
		return
	}
	a.p.Printf(okFormat, id)
}
