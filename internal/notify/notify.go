// Package notify delivers transient user-visible messages: the terminal
// analog of the web client's toast popups. The transport pipeline and the
// stores surface business and network failures through a Sink exactly once.
package notify

import (
	"fmt"
	"io"
	"os"
)

// Level distinguishes informational messages from error messages.
type Level int

const (
	LevelInfo Level = iota
	LevelError
)

// Sink receives transient user-visible messages.
type Sink interface {
	Notify(level Level, message string)
}

// Writer is a Sink that prints messages to an io.Writer, one per line.
type Writer struct {
	W io.Writer
}

func (w *Writer) Notify(level Level, message string) {
	prefix := "[info]"
	if level == LevelError {
		prefix = "[error]"
	}
	fmt.Fprintf(w.W, "%s %s\n", prefix, message)
}

// Stderr returns a Sink writing to standard error.
func Stderr() *Writer {
	return &Writer{W: os.Stderr}
}

// Discard is a Sink that drops all messages. Useful in tests and for
// components that must never surface anything.
type Discard struct{}

func (Discard) Notify(Level, string) {}
