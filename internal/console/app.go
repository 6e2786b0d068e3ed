package console

import (
	"context"
	"errors"
	"io"

	"creativeconnect/internal/domain"
	"creativeconnect/internal/modules/admin"
	"creativeconnect/internal/modules/auth"
	"creativeconnect/internal/modules/booking"
	"creativeconnect/internal/modules/catalog"
	"creativeconnect/internal/modules/chat"
	"creativeconnect/internal/modules/profile"
	"creativeconnect/internal/modules/review"
	"creativeconnect/internal/modules/support"

	"go.uber.org/zap"
)

const maxLoginAttempts = 3

type Services struct {
	Auth     *auth.Service
	Admin    *admin.Service
	Catalog  *catalog.Service
	Profiles *profile.Service
	Bookings *booking.Service
	Chat     *chat.Service
	Reviews  *review.Service
	Support  *support.Service
}

// App drives the numbered menus for one interactive user.
type App struct {
	svc Services
	p   *Prompter
	log *zap.Logger
}

func New(svc Services, p *Prompter, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}
	return &App{svc: svc, p: p, log: log}
}

type session struct {
	token string
	user  *domain.User
}

// Run shows the main menu until the user exits or input ends.
func (a *App) Run(ctx context.Context) error {
	a.p.Println("Welcome to Creative Connect")
	for {
		a.p.Println("\n--- Main Menu ---")
		a.p.Println("1. Register")
		a.p.Println("2. Login")
		a.p.Println("3. Login as admin")
		a.p.Println("4. Exit")

		choice, err := a.p.Ask("Enter your choice: ")
		if err != nil {
			return quietEOF(err)
		}

		switch choice {
		case "1":
			err = a.register(ctx)
		case "2":
			err = a.login(ctx)
		case "3":
			err = a.adminLogin(ctx)
		case "4":
			a.p.Println("Goodbye!")
			return nil
		default:
			a.p.Println("Invalid choice.")
		}
		if err != nil {
			return quietEOF(err)
		}
	}
}

func quietEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// report prints the user-facing message for err. Unknown errors are logged.
func (a *App) report(err error) {
	msg, known := describe(err)
	if !known {
		a.log.Error("operation failed", zap.Error(err))
	}
	a.p.Println(msg)
}

// alive re-validates the session token before a menu action.
func (a *App) alive(s *session) bool {
	if _, err := a.svc.Auth.ResolveSession(s.token); err != nil {
		a.report(err)
		return false
	}
	return true
}
