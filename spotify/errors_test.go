package spotify

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		err  *Error
		want []string
	}{
		{&Error{Op: "search tracks", Code: ErrorIsLoading}, []string{"search tracks", "IS_LOADING"}},
		{&Error{Code: ErrorBadAPIVersion}, []string{"spotify: ", "BAD_API_VERSION"}},
	}
	for _, tt := range tests {
		msg := tt.err.Error()
		for _, part := range tt.want {
			if !strings.Contains(msg, part) {
				t.Errorf("Error() = %q, missing %q", msg, part)
			}
		}
	}
}

func TestErrorIsMatchesCode(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", &Error{Op: "load", Code: ErrorOtherPermanent})

	if !errors.Is(err, &Error{Code: ErrorOtherPermanent}) {
		t.Error("errors.Is should match the same code")
	}
	if errors.Is(err, &Error{Code: ErrorOtherTransient}) {
		t.Error("errors.Is should not match a different code")
	}
}

func TestCheckError(t *testing.T) {
	if err := checkError("op", ErrorOK); err != nil {
		t.Errorf("checkError(OK) = %v, want nil", err)
	}
	err := checkError("op", ErrorInvalidIndata)
	var nerr *Error
	if !errors.As(err, &nerr) || nerr.Code != ErrorInvalidIndata || nerr.Op != "op" {
		t.Errorf("checkError = %#v", err)
	}
}

func TestTimeoutErrorIsErrTimeout(t *testing.T) {
	err := fmt.Errorf("artist: %w", &TimeoutError{Timeout: time.Second})
	if !errors.Is(err, ErrTimeout) {
		t.Error("TimeoutError should match ErrTimeout")
	}
	if !strings.Contains(err.Error(), "1s") {
		t.Errorf("Error() = %q, missing timeout", err.Error())
	}
}
