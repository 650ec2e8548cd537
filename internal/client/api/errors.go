package api

import "fmt"

// APIError is a business rejection: the server answered with a well-formed
// envelope whose status code is not the success sentinel. The message is
// the server-supplied, human-readable reason.
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// TransportError is a failure below the envelope: connectivity loss,
// timeout, or an HTTP-level error with no usable envelope. Status is the
// HTTP status code when a response was received, 0 otherwise.
type TransportError struct {
	Message string
	Status  int
	Err     error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
