package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yuyuwang/yuyu-cli/internal/client/models"
)

func (a *App) Me(ctx context.Context) error {
	me, err := a.api.Me(ctx)
	if err != nil {
		return err
	}
	a.session.SetProfile(*me)

	fmt.Fprintf(a.out, "%s (%s)\n", me.Username, me.Nickname)
	if me.Bio != "" {
		fmt.Fprintln(a.out, me.Bio)
	}
	fmt.Fprintf(a.out, "fish balance: %d", me.FishBalance)
	if me.CanClaimDaily {
		fmt.Fprint(a.out, " (daily reward available, try 'claim')")
	}
	fmt.Fprintln(a.out)
	return nil
}

func (a *App) EditProfile(ctx context.Context) error {
	nickname, err := GetSimpleText(a.reader, "New nickname (empty to keep)", a.out)
	if err != nil {
		return err
	}
	bio, err := GetSimpleText(a.reader, "New bio (empty to keep)", a.out)
	if err != nil {
		return err
	}

	update := &models.ProfileUpdate{}
	if nickname != "" {
		update.Nickname = &nickname
	}
	if bio != "" {
		update.Bio = &bio
	}
	if update.Nickname == nil && update.Bio == nil {
		fmt.Fprintln(a.out, "Nothing to update.")
		return nil
	}

	me, err := a.api.UpdateMe(ctx, update)
	if err != nil {
		return err
	}
	a.session.SetProfile(*me)
	fmt.Fprintln(a.out, "Profile updated.")
	return nil
}

func (a *App) ChangePassword(ctx context.Context) error {
	oldPassword, err := GetPassword("Current password", a.out)
	if err != nil {
		return err
	}
	newPassword, err := GetPassword("New password", a.out)
	if err != nil {
		return err
	}
	if err := a.api.ChangePassword(ctx, oldPassword, newPassword); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Password changed.")
	return nil
}

func (a *App) UpdateAvatar(ctx context.Context) error {
	path, err := GetSimpleText(a.reader, "Path to avatar image", a.out)
	if err != nil {
		return err
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	me, err := a.api.UpdateAvatar(ctx, filepath.Base(path), f)
	if err != nil {
		return err
	}
	a.session.SetProfile(*me)
	fmt.Fprintln(a.out, "Avatar updated.")
	return nil
}

// ClaimDaily claims the daily reward and records the new balance.
func (a *App) ClaimDaily(ctx context.Context) error {
	result, err := a.api.ClaimDaily(ctx)
	if err != nil {
		return err
	}
	a.session.RecordDailyClaim(result.FishBalance)
	fmt.Fprintf(a.out, "Daily reward claimed. Balance: %d\n", result.FishBalance)
	return nil
}

func (a *App) ShowUser(ctx context.Context, username string) error {
	user, err := a.api.UserProfile(ctx, username)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s (%s)\n", user.Username, user.Nickname)
	if user.Bio != "" {
		fmt.Fprintln(a.out, user.Bio)
	}

	videos, err := a.api.UserVideos(ctx, user.ID, 1, 10)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "videos (%d total):\n", videos.Total)
	for _, v := range videos.Items {
		fmt.Fprintf(a.out, "  [%d] %s (%d views)\n", v.ID, v.Title, v.Views)
	}
	return nil
}

func (a *App) SearchUsers(ctx context.Context, q string) error {
	page, err := a.api.SearchUsers(ctx, q, 1, 10)
	if err != nil {
		return err
	}
	if len(page.Items) == 0 {
		fmt.Fprintln(a.out, "No users found.")
		return nil
	}
	for _, u := range page.Items {
		fmt.Fprintf(a.out, "  %s (%s)\n", u.Username, u.Nickname)
	}
	return nil
}
