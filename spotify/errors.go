package spotify

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for conditions that do not come from a native status code.
var (
	ErrTimeout   = errors.New("spotify: timed out waiting for data to load")
	ErrNoSession = errors.New("spotify: no active session")
	ErrReleased  = errors.New("spotify: object already released")
)

// Error reports a non-OK native status code.
type Error struct {
	Op   string    // Operation that observed the code
	Code ErrorType // Native status code
}

func (e *Error) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("spotify: %s (%s)", e.Code.Message(), e.Code)
	}
	return fmt.Sprintf("spotify: %s: %s (%s)", e.Op, e.Code.Message(), e.Code)
}

// Is matches another *Error with the same code, so callers can write
// errors.Is(err, &spotify.Error{Code: spotify.ErrorIsLoading}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// checkError returns nil for ErrorOK and an *Error otherwise.
func checkError(op string, code ErrorType) error {
	if code == ErrorOK {
		return nil
	}
	return &Error{Op: op, Code: code}
}

// TimeoutError is returned by Load when the object is not loaded in time.
type TimeoutError struct {
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("spotify: not loaded within %s", e.Timeout)
}

func (e *TimeoutError) Is(target error) bool {
	return target == ErrTimeout
}
