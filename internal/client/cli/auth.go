package cli

import (
	"context"
	"fmt"

	"github.com/yuyuwang/yuyu-cli/internal/client/models"
)

func (a *App) Register(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	if err := a.api.SendVerificationCode(ctx, email); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Verification code sent to", email)

	code, err := GetSimpleText(a.reader, "Enter verification code", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword("Enter password", a.out)
	if err != nil {
		return err
	}

	req := &models.RegisterRequest{
		Username:         username,
		Password:         password,
		Email:            email,
		VerificationCode: code,
	}
	if err := a.api.Register(ctx, req); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Registered. You can now log in.")
	return nil
}

// Login authenticates, persists the token, loads the profile, and starts
// the notification poll loop.
func (a *App) Login(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword("Enter password", a.out)
	if err != nil {
		return err
	}

	result, err := a.api.Login(ctx, username, password)
	if err != nil {
		return err
	}
	if err := a.session.SetToken(ctx, result.Token); err != nil {
		a.log.Warn(ctx, "token not persisted; session will not survive restart", "error", err)
	}

	me, err := a.api.Me(ctx)
	if err == nil {
		a.session.SetProfile(*me)
	}

	a.notif.StartPolling(ctx)
	fmt.Fprintln(a.out, "Logged in as", username)
	return nil
}

// Logout clears both stores; the notification store also stops polling.
func (a *App) Logout(ctx context.Context) error {
	a.notif.ClearNotifications()
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
