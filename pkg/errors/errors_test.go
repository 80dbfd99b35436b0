package errors

import (
	stderrors "errors"
	"net/http"
	"strings"
	"testing"
)

func TestError_Format(t *testing.T) {
	err := New(ErrCodeInvalidTarget, "unknown target: %s", "//missing")
	if got := err.Error(); !strings.Contains(got, "INVALID_TARGET") || !strings.Contains(got, "//missing") {
		t.Errorf("Error() = %q", got)
	}
}

func TestWrap_Unwrap(t *testing.T) {
	cause := stderrors.New("boom")
	err := Wrap(ErrCodeInternal, cause, "generation failed")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped cause not reachable via errors.Is")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("Error() = %q, want cause included", err.Error())
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeNotFound, "x")); got != ErrCodeNotFound {
		t.Errorf("GetCode = %q, want NOT_FOUND", got)
	}
	if got := GetCode(stderrors.New("plain")); got != ErrCodeInternal {
		t.Errorf("GetCode(plain) = %q, want INTERNAL_ERROR", got)
	}
	// Codes survive wrapping with fmt-style chains.
	wrapped := Wrap(ErrCodeMalformedCoordinate, stderrors.New("2 fields"), "bad coordinate")
	if got := GetCode(wrapped); got != ErrCodeMalformedCoordinate {
		t.Errorf("GetCode(wrapped) = %q", got)
	}
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{New(ErrCodeInvalidInput, "x"), http.StatusBadRequest},
		{New(ErrCodeInvalidTarget, "x"), http.StatusBadRequest},
		{New(ErrCodeMalformedCoordinate, "x"), http.StatusBadRequest},
		{New(ErrCodeNotFound, "x"), http.StatusNotFound},
		{New(ErrCodeInternal, "x"), http.StatusInternalServerError},
		{stderrors.New("plain"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := HTTPStatus(tt.err); got != tt.want {
			t.Errorf("HTTPStatus(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
