// Package router maps the web client's navigation surface onto the terminal
// client: a fixed route table with path parameters and an authentication
// guard that redirects unauthenticated navigation to the home route.
package router

import (
	"context"
	"strings"

	"github.com/yuyuwang/yuyu-cli/internal/logging"
)

// Params are the values bound to :name segments of a route pattern.
type Params map[string]string

// Handler renders a route. The terminal client's views implement it.
type Handler func(ctx context.Context, params Params) error

// Route is one entry of the table. Pattern segments starting with ':' match
// any single path segment and bind it as a parameter.
type Route struct {
	Name         string
	Pattern      string
	RequiresAuth bool
	Handler      Handler
}

// Session is the slice of the session store the guard consults.
type Session interface {
	IsLoggedIn() bool
}

// Router resolves paths against the table and enforces the auth guard.
type Router struct {
	routes  []Route
	session Session
	log     logging.Logger
}

func New(session Session, log logging.Logger, routes []Route) *Router {
	return &Router{routes: routes, session: session, log: log}
}

// Resolve matches path against the table, returning the route and its bound
// parameters. The guard is not applied here.
func (r *Router) Resolve(path string) (*Route, Params, bool) {
	segments := splitPath(path)
	for i := range r.routes {
		if params, ok := match(r.routes[i].Pattern, segments); ok {
			return &r.routes[i], params, true
		}
	}
	return nil, nil, false
}

// Navigate resolves path, applies the auth guard, and runs the handler.
// Navigating to a guarded route without a session redirects to "/": the
// home handler runs and the returned path is "/". The returned path is the
// route actually rendered.
func (r *Router) Navigate(ctx context.Context, path string) (string, error) {
	route, params, ok := r.Resolve(path)
	if !ok {
		return "", ErrNoRoute
	}

	if route.RequiresAuth && !r.session.IsLoggedIn() {
		r.log.Info(ctx, "navigation redirected", "from", path, "to", "/")
		home, homeParams, ok := r.Resolve("/")
		if !ok {
			return "", ErrNoRoute
		}
		if home.Handler != nil {
			if err := home.Handler(ctx, homeParams); err != nil {
				return "/", err
			}
		}
		return "/", nil
	}

	if route.Handler != nil {
		if err := route.Handler(ctx, params); err != nil {
			return path, err
		}
	}
	return path, nil
}

func splitPath(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

// match binds pattern segments to path segments. Both must have the same
// length; ':' segments always match and bind.
func match(pattern string, segments []string) (Params, bool) {
	patternSegments := splitPath(pattern)
	if len(patternSegments) != len(segments) {
		return nil, false
	}
	params := Params{}
	for i, ps := range patternSegments {
		if strings.HasPrefix(ps, ":") {
			params[ps[1:]] = segments[i]
			continue
		}
		if ps != segments[i] {
			return nil, false
		}
	}
	return params, true
}
