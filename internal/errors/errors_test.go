package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := Wrap(ErrInternalServer, cause)

	if err.Code != ErrInternalServer.Code {
		t.Errorf("expected code %q, got %q", ErrInternalServer.Code, err.Code)
	}
	if !stderrors.Is(err, cause) {
		t.Error("expected wrapped error to unwrap to cause")
	}
	if !stderrors.Is(err, ErrInternalServer) {
		t.Error("expected wrapped error to match its sentinel")
	}
}

func TestWithMessage(t *testing.T) {
	err := WithMessage(ErrPriceUnavailable, "Unable to fetch stock price for TSLA")

	if err.Message != "Unable to fetch stock price for TSLA" {
		t.Errorf("unexpected message %q", err.Message)
	}
	if err.StatusCode != ErrPriceUnavailable.StatusCode {
		t.Errorf("expected status %d, got %d", ErrPriceUnavailable.StatusCode, err.StatusCode)
	}
	if ErrPriceUnavailable.Message == err.Message {
		t.Error("sentinel message must not change")
	}
	if stderrors.Is(err, ErrHoldingNotFound) {
		t.Error("different codes must not match")
	}
}

func TestFrom(t *testing.T) {
	t.Run("app_error_in_chain", func(t *testing.T) {
		wrapped := fmt.Errorf("handler: %w", ErrHoldingNotFound)
		appErr, ok := From(wrapped)
		if !ok || appErr != ErrHoldingNotFound {
			t.Errorf("expected the sentinel back, got %v (ok=%v)", appErr, ok)
		}
	})

	t.Run("plain_error", func(t *testing.T) {
		cause := fmt.Errorf("disk full")
		appErr, ok := From(cause)
		if ok {
			t.Error("expected ok=false for a plain error")
		}
		if appErr.Code != ErrInternalServer.Code || !stderrors.Is(appErr, cause) {
			t.Errorf("expected INTERNAL_ERROR wrapping the cause, got %+v", appErr)
		}
	})
}
