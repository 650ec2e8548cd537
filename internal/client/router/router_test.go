package router

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yuyuwang/yuyu-cli/internal/logging"
)

type sessionStub bool

func (s sessionStub) IsLoggedIn() bool { return bool(s) }

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func testRoutes(visited *[]string) []Route {
	record := func(name string) Handler {
		return func(ctx context.Context, p Params) error {
			*visited = append(*visited, name)
			return nil
		}
	}
	return []Route{
		{Name: "Home", Pattern: "/", Handler: record("Home")},
		{Name: "Search", Pattern: "/search", Handler: record("Search")},
		{Name: "VideoDetail", Pattern: "/video/:id", Handler: record("VideoDetail")},
		{Name: "UserPage", Pattern: "/user/:username", Handler: record("UserPage")},
		{Name: "Upload", Pattern: "/upload", RequiresAuth: true, Handler: record("Upload")},
		{Name: "Profile", Pattern: "/profile", RequiresAuth: true, Handler: record("Profile")},
		{Name: "VideoEdit", Pattern: "/video/:id/edit", RequiresAuth: true, Handler: record("VideoEdit")},
		{Name: "Notifications", Pattern: "/notifications", RequiresAuth: true, Handler: record("Notifications")},
	}
}

func TestResolve_BindsParams(t *testing.T) {
	var visited []string
	r := New(sessionStub(false), testLogger(), testRoutes(&visited))

	route, params, ok := r.Resolve("/video/42")
	require.True(t, ok)
	require.Equal(t, "VideoDetail", route.Name)
	require.Equal(t, Params{"id": "42"}, params)

	route, params, ok = r.Resolve("/video/42/edit")
	require.True(t, ok)
	require.Equal(t, "VideoEdit", route.Name)
	require.Equal(t, Params{"id": "42"}, params)

	route, params, ok = r.Resolve("/user/bob")
	require.True(t, ok)
	require.Equal(t, "UserPage", route.Name)
	require.Equal(t, Params{"username": "bob"}, params)
}

func TestResolve_NoMatch(t *testing.T) {
	var visited []string
	r := New(sessionStub(false), testLogger(), testRoutes(&visited))

	_, _, ok := r.Resolve("/nonexistent/deep/path")
	require.False(t, ok)
}

func TestNavigate_GuardRedirectsWhenLoggedOut(t *testing.T) {
	var visited []string
	r := New(sessionStub(false), testLogger(), testRoutes(&visited))

	rendered, err := r.Navigate(context.Background(), "/upload")
	require.NoError(t, err)
	require.Equal(t, "/", rendered)
	require.Equal(t, []string{"Home"}, visited)
}

func TestNavigate_GuardAllowsWhenLoggedIn(t *testing.T) {
	var visited []string
	r := New(sessionStub(true), testLogger(), testRoutes(&visited))

	rendered, err := r.Navigate(context.Background(), "/upload")
	require.NoError(t, err)
	require.Equal(t, "/upload", rendered)
	require.Equal(t, []string{"Upload"}, visited)
}

func TestNavigate_PublicRoutesBypassGuard(t *testing.T) {
	var visited []string
	r := New(sessionStub(false), testLogger(), testRoutes(&visited))

	rendered, err := r.Navigate(context.Background(), "/video/7")
	require.NoError(t, err)
	require.Equal(t, "/video/7", rendered)
	require.Equal(t, []string{"VideoDetail"}, visited)
}

func TestNavigate_UnknownPath(t *testing.T) {
	var visited []string
	r := New(sessionStub(true), testLogger(), testRoutes(&visited))

	_, err := r.Navigate(context.Background(), "/bogus")
	require.ErrorIs(t, err, ErrNoRoute)
}
