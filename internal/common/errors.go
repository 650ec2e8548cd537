// Package common defines shared constants and sentinel errors used across
// the Yuyu client layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Store-level errors.
	ErrNotFound = errors.New("not found")

	// Auth errors.
	ErrUnauthorized = errors.New("unauthorized")

	// Transport errors.
	ErrUnavailable = errors.New("server unavailable")
)
