package errors

import (
	"context"
	stderrs "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatusCode(t *testing.T) {
	t.Parallel()

	cases := map[ErrorCode]int{
		ErrorCodeInvalidArgument:  http.StatusUnprocessableEntity,
		ErrorCodeValidation:       http.StatusBadRequest,
		ErrorCodeJSON:             http.StatusBadRequest,
		ErrorCodeNotFound:         http.StatusNotFound,
		ErrorCodeTimeout:          http.StatusGatewayTimeout,
		ErrorCodeMethodNotAllowed: http.StatusMethodNotAllowed,
		ErrorCodeTooManyRequests:  http.StatusTooManyRequests,
		ErrorCodeUnavailable:      http.StatusServiceUnavailable,
		ErrorCodePanic:            http.StatusInternalServerError,
		ErrorCodeUnknown:          http.StatusInternalServerError,
		ErrorCode(500):            http.StatusInternalServerError,
	}
	for code, want := range cases {
		if got := HTTPStatusCode(code); got != want {
			t.Fatalf("HTTPStatusCode(%d) = %d, want %d", code, got, want)
		}
	}
}

func TestWrap_KeepsCause(t *testing.T) {
	t.Parallel()

	err := Wrap(context.DeadlineExceeded, ErrorCodeTimeout, "search abandoned")
	if !stderrs.Is(err, context.DeadlineExceeded) {
		t.Fatal("cause lost")
	}
	if got := err.Error(); got != "search abandoned: context deadline exceeded" {
		t.Fatalf("Error() = %q", got)
	}
	if HTTPStatus(err) != http.StatusGatewayTimeout {
		t.Fatalf("status = %d", HTTPStatus(err))
	}
}

func TestWithField_CopiesAndSurvivesWrapping(t *testing.T) {
	t.Parallel()

	base := InvalidArgf("range spans %d days", 90)
	named := WithField(base, "range")
	if e, _ := As(base); e.Field() != "" {
		t.Fatalf("original mutated: %q", e.Field())
	}

	wrapped := fmt.Errorf("search: %w", named)
	w := WireFrom(wrapped)
	if w.Code != ErrorCodeInvalidArgument || w.Field != "range" || w.Message != "range spans 90 days" {
		t.Fatalf("wire = %+v", w)
	}

	foreign := stderrs.New("plain")
	if WithField(foreign, "x") != foreign {
		t.Fatal("foreign errors should pass through unchanged")
	}
}

func TestWireFrom_ForeignAndNil(t *testing.T) {
	t.Parallel()

	if w := WireFrom(nil); w != (Wire{}) {
		t.Fatalf("nil wire = %+v", w)
	}
	w := WireFrom(stderrs.New("disk on fire"))
	if w.Code != ErrorCodeUnknown || w.Message != "disk on fire" {
		t.Fatalf("foreign wire = %+v", w)
	}
	if CodeOf(stderrs.New("x")) != ErrorCodeUnknown {
		t.Fatal("foreign code should be unknown")
	}
}

func TestConstructors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err  error
		code ErrorCode
		msg  string
	}{
		{JSONErrf("invalid JSON: %s", "eof"), ErrorCodeJSON, "invalid JSON: eof"},
		{Validationf("%s is required", "duration"), ErrorCodeValidation, "duration is required"},
		{Newf(ErrorCodeNotFound, "no route %s", "/x"), ErrorCodeNotFound, "no route /x"},
		{New(ErrorCodePanic, "panic recovered"), ErrorCodePanic, "panic recovered"},
	}
	for _, c := range cases {
		if !IsCode(c.err, c.code) || c.err.Error() != c.msg {
			t.Fatalf("got %v (%d), want %q (%d)", c.err, CodeOf(c.err), c.msg, c.code)
		}
	}

	var nilErr *Error
	if nilErr.Error() != "<nil>" {
		t.Fatalf("nil render = %q", nilErr.Error())
	}
}
