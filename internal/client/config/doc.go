// Package config loads the terminal client's runtime settings from three
// layered sources: built-in defaults, an optional JSON file (-c/-config),
// and command-line flags, in that order of precedence.
package config
