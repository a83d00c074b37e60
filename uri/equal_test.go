package uri_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ghettovoice/urikit/uri"
)

func TestEqual(t *testing.T) {
	t.Parallel()

	cases := []struct {
		a, b string
		want bool
	}{
		{"http://example.com/%7Ejoe", "HTTP://EXAMPLE.COM/~joe", true},
		{"http://example.com", "http://example.com/", true},
		{"http://example.com:80/", "http://example.com/", true},
		{"http://example.com/a/./b", "http://example.com/a/b", true},
		{"http://[FE80::1]/", "http://[fe80::0001]/", true},
		{"foo:/a%20b", "foo:/a b", true},
		{"foo://a/b?%41", "foo://a/b?A", true},
		{"urn:foo:a123", "URN:FOO:a123", true},
		{"http://example.com/a", "http://example.com/b", false},
		{"foo://a/%2F", "foo://a//", false},
		{"foo://a/b?x", "foo://a/b", false},
		{"foo://a/b#", "foo://a/b", false},
		{"%FF", "%FF", false},
	}

	for _, c := range cases {
		if got := uri.Equal(c.a, c.b, nil); got != c.want {
			t.Errorf("uri.Equal(%q, %q) = %v, want %v", c.a, c.b, got, c.want)
		}
		if got := uri.Equal(c.b, c.a, nil); got != c.want {
			t.Errorf("uri.Equal(%q, %q) = %v, want %v", c.b, c.a, got, c.want)
		}
	}
}

func TestEqualComponents(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		a, b *uri.Components
		want bool
	}{
		{"nil", nil, nil, true},
		{"nil and empty", nil, &uri.Components{}, false},
		{
			"case and default path",
			&uri.Components{Scheme: uri.Some("HTTP"), Host: uri.Some("Example.com")},
			&uri.Components{Scheme: uri.Some("http"), Host: uri.Some("example.com"), Path: "/"},
			true,
		},
		{
			"encoding",
			&uri.Components{Scheme: uri.Some("foo"), Path: "/%7Ea b"},
			&uri.Components{Scheme: uri.Some("foo"), Path: "/~a%20b"},
			true,
		},
		{
			"absent and empty query",
			&uri.Components{Scheme: uri.Some("foo"), Query: uri.Some("")},
			&uri.Components{Scheme: uri.Some("foo")},
			false,
		},
		{
			"malformed",
			&uri.Components{Scheme: uri.Some("foo"), Path: "%FF"},
			&uri.Components{Scheme: uri.Some("foo"), Path: "%FF"},
			false,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := uri.EqualComponents(c.a, c.b, nil); got != c.want {
				t.Errorf("uri.EqualComponents(%+v, %+v) = %v, want %v", c.a, c.b, got, c.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in, want string
	}{
		{"http://example.com:80/a/../b", "http://example.com/b"},
		{"http://Example.COM", "http://example.com/"},
		{"foo://[0:0:0:0:0:0:0:1]:8080", "foo://[0:0:0:0:0:0:0:1]:8080"},
		{"foo://user@Host:/x y", "foo://user@host/x%20y"},
		{"wss://example.com:443/chat?x=1#f", "wss://example.com/chat?x=1"},
		{"urn:uuid:F81D4FAE-7DEC-11D0-A765-00A0C91E6BF6", "urn:uuid:f81d4fae-7dec-11d0-a765-00a0c91e6bf6"},
	}

	for _, c := range cases {
		got, err := uri.Normalize(c.in, nil)
		if err != nil {
			t.Fatalf("uri.Normalize(%q) error = %v, want nil", c.in, err)
		}
		if got != c.want {
			t.Errorf("uri.Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}

	if _, err := uri.Normalize("foo:#%C3", nil); err == nil {
		t.Errorf("uri.Normalize() error = nil, want %v", uri.ErrMalformedInput)
	}
}

func TestNormalizeComponents(t *testing.T) {
	t.Parallel()

	got, err := uri.NormalizeComponents(&uri.Components{Scheme: uri.Some("foo"), Host: uri.Some("010.1.1.1"), Path: "/a/./b"}, nil)
	if err != nil {
		t.Fatalf("uri.NormalizeComponents() error = %v, want nil", err)
	}
	want := &uri.Components{
		Scheme:    uri.Some("foo"),
		Host:      uri.Some("10.1.1.1"),
		Path:      "/a/b",
		Reference: uri.RefAbsolute,
	}
	if diff := cmp.Diff(got, want, cmpOpts...); diff != "" {
		t.Errorf("uri.NormalizeComponents() = %+v, want %+v\ndiff (-got +want):\n%v", got, want, diff)
	}
}
