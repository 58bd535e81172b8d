package admin

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/presskit/internal/server/services"
)

func (a *Admin) register(ctx context.Context, o options) error {
	pw, err := a.password("Password")
	if err != nil {
		return err
	}
	account, err := a.svc.Accounts.CreateAccount(ctx, services.RegisterInput{
		Email: o["email"], Password: pw, FirstName: o["first"], LastName: o["last"], ArtistName: o["artist"],
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "created %s %s\n", account.ID, account.Email)
	return nil
}

func (a *Admin) issueReset(ctx context.Context, o options) error {
	token, err := a.svc.Accounts.IssueResetToken(ctx, o["email"])
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, token)
	return nil
}

func (a *Admin) consumeReset(ctx context.Context, o options) error {
	pw, err := a.password("New password")
	if err != nil {
		return err
	}
	if err := a.svc.Accounts.ConsumeResetToken(ctx, o["token"], pw); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "password changed")
	return nil
}

func (a *Admin) issueVerification(ctx context.Context, o options) error {
	account, err := a.svc.Accounts.GetAccountByEmail(ctx, o["email"])
	if err != nil {
		return err
	}
	token, err := a.svc.Accounts.IssueVerificationToken(ctx, account.ID)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, token)
	return nil
}

func (a *Admin) confirmVerification(ctx context.Context, o options) error {
	account, err := a.svc.Accounts.ConfirmVerification(ctx, o["token"])
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s is verified\n", account.Email)
	return nil
}

func (a *Admin) presignDownload(ctx context.Context, o options) error {
	url, err := a.svc.Media.PresignDownload(ctx, o["key"])
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, url)
	return nil
}
