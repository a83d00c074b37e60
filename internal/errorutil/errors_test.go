package errorutil_test

import (
	"errors"
	"testing"

	"github.com/ghettovoice/urikit/internal/errorutil"
)

const errSentinel errorutil.Error = "sentinel"

func TestNewWrapperError(t *testing.T) {
	t.Parallel()

	errOther := errors.New("other")
	cases := []struct {
		name    string
		args    []any
		wantMsg string
		wantIs  []error
	}{
		{"no args", nil, "sentinel", []error{errSentinel}},
		{"message", []any{"bad"}, "sentinel: bad", []error{errSentinel}},
		{"format", []any{"bad %q", "x"}, `sentinel: bad "x"`, []error{errSentinel}},
		{"error", []any{errOther}, "sentinel: other", []error{errSentinel, errOther}},
		{"already wrapped", []any{errSentinel}, "sentinel", []error{errSentinel}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			err := errorutil.NewWrapperError(errSentinel, c.args...)
			if got := err.Error(); got != c.wantMsg {
				t.Errorf("err.Error() = %q, want %q", got, c.wantMsg)
			}
			for _, target := range c.wantIs {
				if !errors.Is(err, target) {
					t.Errorf("errors.Is(%v, %v) = false, want true", err, target)
				}
			}
		})
	}
}

func TestJoin(t *testing.T) {
	t.Parallel()

	errA, errB := errors.New("a"), errors.New("b")

	if err := errorutil.Join(nil, nil); err != nil {
		t.Errorf("errorutil.Join(nil, nil) = %v, want nil", err)
	}
	if err := errorutil.Join(nil, errA); err != errA { //nolint:errorlint
		t.Errorf("errorutil.Join(nil, a) = %v, want %v", err, errA)
	}

	err := errorutil.Join(errA, nil, errB)
	if !errors.Is(err, errA) || !errors.Is(err, errB) {
		t.Errorf("errorutil.Join(a, nil, b) = %v, want both a and b", err)
	}
	if got, want := err.Error(), "multiple errors:\n  - a\n  - b"; got != want {
		t.Errorf("err.Error() = %q, want %q", got, want)
	}
}

func TestKeep(t *testing.T) {
	t.Parallel()

	errA, errB := errors.New("a"), errors.New("b")
	if got := errorutil.Keep(nil, errB); got != errB { //nolint:errorlint
		t.Errorf("errorutil.Keep(nil, b) = %v, want %v", got, errB)
	}
	if got := errorutil.Keep(errA, errB); got != errA { //nolint:errorlint
		t.Errorf("errorutil.Keep(a, b) = %v, want %v", got, errA)
	}
}
