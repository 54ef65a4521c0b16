package errors

import (
	"errors"
	"testing"
)

func TestWrap(t *testing.T) {
	if Wrap(nil, "ctx") != nil {
		t.Error("Wrap(nil) should return nil")
	}

	err := Wrap(ErrTransport, "login")
	if err.Error() != "login: request could not be sent" {
		t.Errorf("unexpected message: %q", err.Error())
	}
	if !Is(err, ErrTransport) {
		t.Error("wrapped error should match its sentinel")
	}
}

func TestWrapf(t *testing.T) {
	if Wrapf(nil, "ctx %d", 1) != nil {
		t.Error("Wrapf(nil) should return nil")
	}

	err := Wrapf(ErrRouteNotFound, "navigate to %s", "/nowhere")
	if err.Error() != "navigate to /nowhere: route not found" {
		t.Errorf("unexpected message: %q", err.Error())
	}
	if !errors.Is(err, ErrRouteNotFound) {
		t.Error("wrapped error should match its sentinel")
	}
}

type codeError struct{ code int }

func (e *codeError) Error() string { return "code" }

func TestAs(t *testing.T) {
	err := Wrap(&codeError{code: 7}, "outer")
	var target *codeError
	if !As(err, &target) {
		t.Fatal("As should find the wrapped error")
	}
	if target.code != 7 {
		t.Errorf("code = %d, want 7", target.code)
	}
}
