package uri_test

import (
	"errors"
	"testing"

	"github.com/ghettovoice/urikit/uri"
)

func TestCodec(t *testing.T) {
	t.Parallel()

	if got, want := uri.Escape("/a b/ü%41%"), "/a%20b/%C3%BC%41%"; got != want {
		t.Errorf("uri.Escape() = %q, want %q", got, want)
	}

	if got, err := uri.SafeDecode("%41%2F%7e"); err != nil || got != "A%2F~" {
		t.Errorf("uri.SafeDecode() = (%q, %v), want (\"A%%2F~\", nil)", got, err)
	}
	if _, err := uri.SafeDecode("%C3%28"); !errors.Is(err, uri.ErrMalformedInput) {
		t.Errorf("uri.SafeDecode() error = %v, want %v", err, uri.ErrMalformedInput)
	}

	if got, err := uri.EncodeComponent("a b/ü"); err != nil || got != "a%20b%2F%C3%BC" {
		t.Errorf("uri.EncodeComponent() = (%q, %v), want (\"a%%20b%%2F%%C3%%BC\", nil)", got, err)
	}

	if got, err := uri.EncodeUTF16([]uint16{'a', 0xD83D, 0xDE00}); err != nil || got != "a%F0%9F%98%80" {
		t.Errorf("uri.EncodeUTF16() = (%q, %v), want (\"a%%F0%%9F%%98%%80\", nil)", got, err)
	}
	if _, err := uri.EncodeUTF16([]uint16{0xD83D}); !errors.Is(err, uri.ErrSurrogatePair) {
		t.Errorf("uri.EncodeUTF16() error = %v, want %v", err, uri.ErrSurrogatePair)
	}
}
