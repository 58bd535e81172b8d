package cli

import (
	"context"
	"errors"
	"fmt"

	pb "github.com/dmitrijs2005/presskit/internal/proto"
	"github.com/dmitrijs2005/presskit/internal/server/models"
)

var errPasswordMismatch = errors.New("passwords do not match")

func (a *App) newPassword() (string, error) {
	pw, err := GetPassword("New password", a.out)
	if err != nil {
		return "", err
	}
	again, err := GetPassword("Repeat password", a.out)
	if err != nil {
		return "", err
	}
	if pw != again {
		return "", errPasswordMismatch
	}
	return pw, nil
}

func (a *App) Register(ctx context.Context) error {
	req := &pb.RegisterRequest{}
	var err error
	for _, f := range []struct {
		prompt string
		dst    *string
	}{
		{"Email", &req.Email},
		{"First name", &req.FirstName},
		{"Last name", &req.LastName},
		{"Artist name (optional)", &req.ArtistName},
	} {
		if *f.dst, err = GetSimpleText(a.reader, f.prompt, a.out); err != nil {
			return a.report(ctx, err)
		}
	}
	if req.Password, err = a.newPassword(); err != nil {
		return a.report(ctx, err)
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	account, err := a.client.Register(ctx, req)
	if err != nil {
		return a.report(ctx, err)
	}
	fmt.Fprintf(a.out, "Registered %s, you can log in now\n", account.Email)
	return nil
}

func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return a.report(ctx, err)
	}
	password, err := GetPassword("Password", a.out)
	if err != nil {
		return a.report(ctx, err)
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	s, err := a.auth.Login(ctx, email, password)
	if err != nil {
		return a.report(ctx, err)
	}
	fmt.Fprintf(a.out, "Logged in as %s\n", s.Email)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return a.report(ctx, err)
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	if err := a.requireLogin(ctx); err != nil {
		return err
	}
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	p, err := a.client.Profile(ctx)
	if err != nil {
		return a.report(ctx, err)
	}
	printProfile(a, p)
	return nil
}

func printProfile(a *App, p *models.AccountView) {
	verified := "no"
	if p.IsVerified {
		verified = "yes"
	}
	fmt.Fprintf(a.out, "%s <%s>\n  name: %s %s\n  verified: %s\n", p.DisplayName, p.Email, p.FirstName, p.LastName, verified)
	if p.Bio != "" {
		fmt.Fprintf(a.out, "  bio: %s\n", p.Bio)
	}
}

func (a *App) RequestVerification(ctx context.Context) error {
	if err := a.requireLogin(ctx); err != nil {
		return err
	}
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.client.RequestVerification(ctx); err != nil {
		return a.report(ctx, err)
	}
	fmt.Fprintln(a.out, "Verification token sent, run 'confirm <token>'")
	return nil
}

func (a *App) ConfirmVerification(ctx context.Context, token string) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	p, err := a.client.ConfirmVerification(ctx, token)
	if err != nil {
		return a.report(ctx, err)
	}
	fmt.Fprintf(a.out, "%s is verified\n", p.Email)
	return nil
}

func (a *App) ForgotPassword(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return a.report(ctx, err)
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.client.RequestPasswordReset(ctx, email); err != nil {
		return a.report(ctx, err)
	}
	fmt.Fprintln(a.out, "If the address is registered, a reset token is on its way")
	return nil
}

func (a *App) ResetPassword(ctx context.Context, token string) error {
	pw, err := a.newPassword()
	if err != nil {
		return a.report(ctx, err)
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.client.ResetPassword(ctx, token, pw); err != nil {
		return a.report(ctx, err)
	}
	fmt.Fprintln(a.out, "Password changed, you can log in now")
	return nil
}
