package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestSentinelIdentity(t *testing.T) {
	wrapped := fmt.Errorf("estimated time remaining: %w", ErrDivideByZero)
	if !Is(wrapped, ErrDivideByZero) {
		t.Error("Is() did not match wrapped ErrDivideByZero")
	}
	if Is(wrapped, ErrNoPortAvailable) {
		t.Error("Is() matched the wrong sentinel")
	}
}

func TestTypeError(t *testing.T) {
	err := NewTypeError("format seconds", "string", "a numeric value")
	want := "format seconds: want a numeric value, got string"
	if err.Error() != want {
		t.Errorf("Error() = %q; want %q", err.Error(), want)
	}

	var typeErr *TypeError
	if !As(error(err), &typeErr) {
		t.Error("As() did not match *TypeError")
	}
}

func TestFileError(t *testing.T) {
	err := NewFileError("open", "/etc/wordlist.txt", ErrFileNotFound)
	want := "open /etc/wordlist.txt: file not found"
	if err.Error() != want {
		t.Errorf("Error() = %q; want %q", err.Error(), want)
	}

	// The underlying sentinel must survive wrapping
	if !Is(error(err), ErrFileNotFound) {
		t.Error("Is() did not unwrap FileError to ErrFileNotFound")
	}

	bare := &FileError{Op: "read", Path: "wordlist"}
	if bare.Error() != "read wordlist failed" {
		t.Errorf("Error() without cause = %q", bare.Error())
	}
	if bare.Unwrap() != nil {
		t.Error("Unwrap() on bare FileError should be nil")
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("port range", "invalid range 0-100")
	want := "validation: port range: invalid range 0-100"
	if err.Error() != want {
		t.Errorf("Error() = %q; want %q", err.Error(), want)
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should be nil")
	}

	base := stderrors.New("boom")
	wrapped := Wrap(base, "loading wordlist")
	if wrapped.Error() != "loading wordlist: boom" {
		t.Errorf("Wrap() = %q", wrapped.Error())
	}
	if !Is(wrapped, base) {
		t.Error("Wrap() broke the error chain")
	}
}
