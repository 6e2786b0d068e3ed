package console

import (
	"context"
	"strconv"
)

func (a *App) chatSession(ctx context.Context, s *session, bookingID int64) error {
	if _, err := a.svc.Chat.Open(ctx, s.user.ID, bookingID); err != nil {
		a.report(err)
		return nil
	}

	a.p.Println("\n--- Chat Session ---")
	for {
		lines, err := a.svc.Chat.Recent(ctx, bookingID)
		if err != nil {
			a.report(err)
			return nil
		}
		a.p.Println("\nRecent messages:")
		if len(lines) == 0 {
			a.p.Println("No messages yet.")
		}
		for _, l := range lines {
			a.p.Printf("[%s] %s: %s\n", formatTimestamp(l.CreatedAt), l.SenderName, l.Message)
		}

		a.p.Println("\nOptions: 1. Send message  2. Refresh  3. Exit chat")
		action, err := a.p.Ask("Choose: ")
		if err != nil {
			return err
		}
		switch action {
		case "1":
			text, err := a.p.Ask("Enter your message: ")
			if err != nil {
				return err
			}
			if text == "" {
				continue
			}
			if _, err := a.svc.Chat.Send(ctx, s.user.ID, bookingID, text); err != nil {
				a.report(err)
				continue
			}
			a.p.Println("Message sent.")
		case "2":
		case "3":
			a.p.Println("Exiting chat...")
			return nil
		default:
			a.p.Println("Invalid choice.")
		}
	}
}

func (a *App) raiseTicket(ctx context.Context, s *session) error {
	a.p.Println("\n-- Support --")
	mine, err := a.svc.Support.ListMine(ctx, s.user.ID)
	if err != nil {
		a.report(err)
		return nil
	}
	if len(mine) > 0 {
		a.p.Println("Your tickets:")
		rows := make([][]string, 0, len(mine))
		for _, t := range mine {
			rows = append(rows, []string{strconv.FormatInt(t.ID, 10), t.Subject, t.Status, formatTimestamp(t.CreatedAt)})
		}
		renderTable(a.p.out, []string{"ticket_id", "subject", "status", "created_at"}, rows)
	}

	subject, err := a.p.AskRequired("Subject: ")
	if err != nil {
		return err
	}
	message, err := a.p.AskRequired("Describe your issue: ")
	if err != nil {
		return err
	}
	if _, err := a.svc.Support.Open(ctx, s.user.ID, subject, message); err != nil {
		a.report(err)
		return nil
	}
	a.p.Println("Support ticket created. Our team will reach out soon.")
	return nil
}
