package router

import "errors"

// ErrNoRoute is returned when a path matches nothing in the table.
var ErrNoRoute = errors.New("no matching route")
