package console

import (
	"context"
	"errors"

	"creativeconnect/internal/domain"
	"creativeconnect/internal/modules/auth"
)

func (a *App) register(ctx context.Context) error {
	a.p.Println("\n-- Register User --")
	var req auth.RegisterRequest
	var err error

	if req.Name, err = a.p.Ask("Enter your name: "); err != nil {
		return err
	}
	if req.Email, err = a.p.Ask("Enter your email: "); err != nil {
		return err
	}

	for {
		if req.Password, err = a.p.AskPassword("Enter your password: "); err != nil {
			return err
		}
		if req.ConfirmPassword, err = a.p.AskPassword("Confirm your password: "); err != nil {
			return err
		}
		if req.Password == req.ConfirmPassword {
			break
		}
		a.p.Println("Passwords do not match. Try again.")
	}

	role, err := a.p.Ask("Enter your role (creative/marketer): ")
	if err != nil {
		return err
	}
	req.Role = domain.UserRole(role)
	if req.PortfolioLink, err = a.p.Ask("Enter your portfolio link: "); err != nil {
		return err
	}

	if err := a.svc.Auth.StartRegistration(ctx, req); err != nil {
		a.report(err)
		return nil
	}
	a.p.Printf("OTP sent to %s\n", req.Email)

	for {
		code, err := a.p.Ask("Enter the OTP you received (blank to cancel): ")
		if err != nil {
			return err
		}
		if code == "" {
			a.p.Println("Registration cancelled.")
			return nil
		}

		_, err = a.svc.Auth.CompleteRegistration(ctx, req, code)
		switch {
		case err == nil:
			a.p.Println("OTP Verified! Your account is pending admin approval.")
			return nil
		case errors.Is(err, auth.ErrInvalidVerificationCode), errors.Is(err, auth.ErrInvalidVerificationCodeFormat):
			a.report(err)
		default:
			a.report(err)
			return nil
		}
	}
}

func (a *App) login(ctx context.Context) error {
	a.p.Println("\n-- Login --")
	for attempt := 1; attempt <= maxLoginAttempts; attempt++ {
		email, err := a.p.Ask("Enter email: ")
		if err != nil {
			return err
		}
		password, err := a.p.AskPassword("Enter password: ")
		if err != nil {
			return err
		}

		res, err := a.svc.Auth.Login(ctx, email, password)
		if err == nil {
			return a.enterRoleMenu(ctx, &session{token: res.SessionToken, user: res.User})
		}
		if !errors.Is(err, auth.ErrInvalidCredentials) {
			a.report(err)
			return nil
		}

		if left := maxLoginAttempts - attempt; left > 0 {
			a.p.Printf("Invalid credentials. You have %d attempt(s) left.\n", left)
		} else {
			a.p.Println("Invalid credentials. No attempts left.")
		}
	}
	return nil
}

func (a *App) enterRoleMenu(ctx context.Context, s *session) error {
	switch s.user.Role {
	case domain.RoleCreative:
		return a.creativeMenu(ctx, s)
	case domain.RoleMarketer:
		return a.marketerMenu(ctx, s)
	default:
		a.p.Println("Unknown role.")
		return nil
	}
}

func (a *App) adminLogin(ctx context.Context) error {
	a.p.Println("\n--- Admin Login ---")
	email, err := a.p.Ask("Enter admin email: ")
	if err != nil {
		return err
	}
	password, err := a.p.AskPassword("Enter admin password: ")
	if err != nil {
		return err
	}

	res, err := a.svc.Auth.AdminLogin(ctx, email, password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			a.p.Println("Invalid admin credentials.")
			return nil
		}
		a.report(err)
		return nil
	}
	a.p.Printf("\nWelcome, %s (Admin)\n", res.User.Name)
	return a.adminMenu(ctx, &session{token: res.SessionToken, user: res.User})
}
