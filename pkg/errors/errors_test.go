package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidModel, "model has no namespaces")

	if err.Code != ErrCodeInvalidModel {
		t.Errorf("code = %s, want %s", err.Code, ErrCodeInvalidModel)
	}
	if want := "INVALID_MODEL: model has no namespaces"; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestNewFormatting(t *testing.T) {
	err := New(ErrCodeInvalidPage, "unknown page %q", "Ghost")
	if want := `unknown page "Ghost"`; err.Message != want {
		t.Errorf("message = %q, want %q", err.Message, want)
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("file corrupted")
	err := Wrap(ErrCodeInvalidConfig, cause, "read start pages")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error must match cause via errors.Is")
	}
	if want := "CONFIG_INVALID: read start pages: file corrupted"; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{name: "Match", err: New(ErrCodeNoStartPages, "empty mapping"), code: ErrCodeNoStartPages, want: true},
		{name: "Mismatch", err: New(ErrCodeNoStartPages, "empty mapping"), code: ErrCodeInvalidModel, want: false},
		{name: "PlainError", err: stderrors.New("plain"), code: ErrCodeInternal, want: false},
		{name: "WrappedInFmt", err: fmt.Errorf("outer: %w", New(ErrCodeInvalidPage, "bad")), code: ErrCodeInvalidPage, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.want {
				t.Errorf("Is() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodePageNotFound, "x")); got != ErrCodePageNotFound {
		t.Errorf("GetCode = %s, want %s", got, ErrCodePageNotFound)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode = %s, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(ErrCodeInternal, "boom")); got != "boom" {
		t.Errorf("UserMessage = %q, want boom", got)
	}
	if got := UserMessage(stderrors.New("plain")); got != "plain" {
		t.Errorf("UserMessage = %q, want plain", got)
	}
}
