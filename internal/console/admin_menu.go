package console

import (
	"context"
	"strconv"
)

func (a *App) adminMenu(ctx context.Context, s *session) error {
	for {
		a.p.Println("\n--- Admin Panel ---")
		a.p.Println("1. Approve Users")
		a.p.Println("2. Manage Categories")
		a.p.Println("3. View All Users")
		a.p.Println("4. Logout")

		choice, err := a.p.Ask("Enter your choice: ")
		if err != nil {
			return err
		}
		if choice == "4" {
			a.p.Println("Logged out successfully.")
			return nil
		}
		if !a.alive(s) {
			return nil
		}

		switch choice {
		case "1":
			err = a.approveUsers(ctx)
		case "2":
			err = a.manageCategories(ctx)
		case "3":
			a.viewAllUsers(ctx)
		default:
			a.p.Println("Invalid choice.")
		}
		if err != nil {
			return err
		}
	}
}

func (a *App) approveUsers(ctx context.Context) error {
	for {
		pending, err := a.svc.Admin.ListPending(ctx)
		if err != nil {
			a.report(err)
			return nil
		}
		if len(pending) == 0 {
			a.p.Println("No pending user approvals.")
			return nil
		}

		a.p.Println("\nPending User Approvals:")
		for _, u := range pending {
			a.p.Printf("%d. %s (%s) - %s\n", u.ID, u.Name, u.Role, u.Email)
		}

		id, ok, err := a.p.AskInt("\nEnter user ID to manage (or 0 to exit): ")
		if err != nil {
			return err
		}
		if !ok {
			a.p.Println("Please enter a numeric ID.")
			continue
		}
		if id == 0 {
			a.p.Println("Returning to admin menu.")
			return nil
		}

		u, err := a.svc.Admin.GetPending(ctx, id)
		if err != nil {
			a.report(err)
			continue
		}
		a.p.Printf("\nUser details for %s (ID: %d):\n", u.Name, u.ID)
		a.p.Printf("Role: %s\nEmail: %s\nPortfolio link: %s\n", u.Role, u.Email, u.PortfolioLink)

		a.p.Println("\nOptions: 1. Show portfolio  2. Approve user  3. Back")
		opt, err := a.p.Ask("Choose: ")
		if err != nil {
			return err
		}
		switch opt {
		case "1":
			if u.PortfolioLink == "" {
				a.p.Println("No portfolio link provided.")
			} else {
				a.p.Printf("Portfolio: %s\n", u.PortfolioLink)
			}
		case "2":
			if _, err := a.svc.Admin.Approve(ctx, id); err != nil {
				a.report(err)
				continue
			}
			a.p.Println("User approved successfully.")
		case "3":
		default:
			a.p.Println("Invalid option.")
		}
	}
}

func (a *App) showCategories(ctx context.Context) (bool, error) {
	cats, err := a.svc.Catalog.ListCategories(ctx)
	if err != nil {
		return false, err
	}
	if len(cats) == 0 {
		return false, nil
	}
	rows := make([][]string, 0, len(cats))
	for _, c := range cats {
		rows = append(rows, []string{strconv.FormatInt(c.ID, 10), c.Name})
	}
	renderTable(a.p.out, []string{"ID", "Name"}, rows)
	return true, nil
}

func (a *App) manageCategories(ctx context.Context) error {
	for {
		a.p.Println("\n--- Category Management ---")
		a.p.Println("1. View Categories")
		a.p.Println("2. Add Category")
		a.p.Println("3. Delete Category")
		a.p.Println("4. Back")

		ch, err := a.p.Ask("Choose an option: ")
		if err != nil {
			return err
		}

		switch ch {
		case "1":
			found, err := a.showCategories(ctx)
			if err != nil {
				a.report(err)
			} else if !found {
				a.p.Println("No categories found.")
			}
		case "2":
			name, err := a.p.Ask("Enter new category name: ")
			if err != nil {
				return err
			}
			if _, err := a.svc.Catalog.AddCategory(ctx, name); err != nil {
				a.report(err)
				continue
			}
			a.p.Println("Category added successfully.")
		case "3":
			found, err := a.showCategories(ctx)
			if err != nil {
				a.report(err)
				continue
			}
			if !found {
				a.p.Println("No categories to delete.")
				continue
			}
			id, ok, err := a.p.AskInt("Enter category ID to delete (0 to cancel): ")
			if err != nil {
				return err
			}
			if !ok {
				a.p.Println("Please enter a numeric ID.")
				continue
			}
			if id == 0 {
				continue
			}
			if err := a.svc.Catalog.DeleteCategory(ctx, id); err != nil {
				a.report(err)
				continue
			}
			a.p.Println("Category deleted.")
		case "4":
			return nil
		default:
			a.p.Println("Invalid choice.")
		}
	}
}

func (a *App) viewAllUsers(ctx context.Context) {
	users, err := a.svc.Admin.ListUsers(ctx)
	if err != nil {
		a.report(err)
		return
	}
	rows := make([][]string, 0, len(users))
	for _, u := range users {
		status := "Pending"
		if u.Approved {
			status = "Approved"
		}
		rows = append(rows, []string{strconv.FormatInt(u.ID, 10), u.Name, u.Email, string(u.Role), status})
	}
	a.p.Println("\nAll Users:")
	renderTable(a.p.out, []string{"ID", "Name", "Email", "Role", "Status"}, rows)
}
