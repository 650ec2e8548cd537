package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/yuyuwang/yuyu-cli/internal/client/router"
)

// routes builds the navigation table. It mirrors the web client's surface:
// home, search, video detail, and user pages are public; upload, profile,
// video edit, and the notification center require a session.
func (a *App) routes() []router.Route {
	return []router.Route{
		{Name: "Home", Pattern: "/", Handler: func(ctx context.Context, _ router.Params) error {
			return a.ListVideos(ctx, "latest")
		}},
		{Name: "Search", Pattern: "/search", Handler: func(ctx context.Context, _ router.Params) error {
			q, err := GetSimpleText(a.reader, "Search videos", a.out)
			if err != nil {
				return err
			}
			return a.SearchVideos(ctx, q)
		}},
		{Name: "VideoDetail", Pattern: "/video/:id", Handler: func(ctx context.Context, p router.Params) error {
			id, err := parseID(p["id"])
			if err != nil {
				return err
			}
			if err := a.ShowVideo(ctx, id); err != nil {
				return err
			}
			return a.ListComments(ctx, id)
		}},
		{Name: "UserPage", Pattern: "/user/:username", Handler: func(ctx context.Context, p router.Params) error {
			return a.ShowUser(ctx, p["username"])
		}},
		{Name: "Upload", Pattern: "/upload", RequiresAuth: true, Handler: func(ctx context.Context, _ router.Params) error {
			return a.Upload(ctx)
		}},
		{Name: "Profile", Pattern: "/profile", RequiresAuth: true, Handler: func(ctx context.Context, _ router.Params) error {
			return a.Me(ctx)
		}},
		{Name: "VideoEdit", Pattern: "/video/:id/edit", RequiresAuth: true, Handler: func(ctx context.Context, p router.Params) error {
			id, err := parseID(p["id"])
			if err != nil {
				return err
			}
			return a.EditVideo(ctx, id)
		}},
		{Name: "Notifications", Pattern: "/notifications", RequiresAuth: true, Handler: func(ctx context.Context, _ router.Params) error {
			return a.ShowNotifications(ctx)
		}},
	}
}

// Open navigates to path through the route guard, reporting a redirect when
// one happened.
func (a *App) Open(ctx context.Context, path string) error {
	rendered, err := a.router.Navigate(ctx, path)
	if err != nil {
		return err
	}
	if rendered != path {
		fmt.Fprintf(a.out, "(redirected to %s, login required)\n", rendered)
	}
	return nil
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}
