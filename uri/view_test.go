package uri_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ghettovoice/urikit/uri"
)

func TestURI_Accessors(t *testing.T) {
	t.Parallel()

	type view struct {
		Scheme, Userinfo, Host, Port, Path, Query, Fragment string

		HasScheme, HasUserinfo, HasHost, HasPort, HasQuery, HasFragment bool
		IsIPv4, IsIPv6                                                  bool

		Reference uri.Reference
		String    string
	}
	viewOf := func(u *uri.URI) view {
		return view{
			Scheme:      u.Scheme(),
			Userinfo:    u.Userinfo(),
			Host:        u.Host(),
			Port:        u.Port(),
			Path:        u.Path(),
			Query:       u.Query(),
			Fragment:    u.Fragment(),
			HasScheme:   u.HasScheme(),
			HasUserinfo: u.HasUserinfo(),
			HasHost:     u.HasHost(),
			HasPort:     u.HasPort(),
			HasQuery:    u.HasQuery(),
			HasFragment: u.HasFragment(),
			IsIPv4:      u.IsIPv4(),
			IsIPv6:      u.IsIPv6(),
			Reference:   u.Reference(),
			String:      u.String(),
		}
	}

	cases := []struct {
		in   string
		want view
	}{
		{
			"http://user:pw@Example.com:8080/a/b?x=1#frag",
			view{
				Scheme:      "http",
				Userinfo:    "user:pw",
				Host:        "example.com",
				Port:        "8080",
				Path:        "/a/b",
				Query:       "x=1",
				Fragment:    "frag",
				HasScheme:   true,
				HasUserinfo: true,
				HasHost:     true,
				HasPort:     true,
				HasQuery:    true,
				HasFragment: true,
				Reference:   uri.RefURI,
				String:      "http://user:pw@example.com:8080/a/b?x=1#frag",
			},
		},
		{
			"foo://[FE80::1%25eth0]:81/x",
			view{
				Scheme:    "foo",
				Host:      "[fe80::1%25eth0]",
				Port:      "81",
				Path:      "/x",
				HasScheme: true,
				HasHost:   true,
				HasPort:   true,
				IsIPv6:    true,
				Reference: uri.RefAbsolute,
				String:    "foo://[fe80::1%25eth0]:81/x",
			},
		},
		{
			"foo://127.000.0.1?",
			view{
				Scheme:    "foo",
				Host:      "127.0.0.1",
				HasScheme: true,
				HasHost:   true,
				HasQuery:  true,
				IsIPv4:    true,
				Reference: uri.RefAbsolute,
				String:    "foo://127.0.0.1?",
			},
		},
		{
			"mailto:john@example.com",
			view{
				Scheme:    "mailto",
				Path:      "john@example.com",
				HasScheme: true,
				Reference: uri.RefAbsolute,
				String:    "mailto:john@example.com",
			},
		},
		{
			"foo://a:/p",
			view{
				Scheme:    "foo",
				Host:      "a",
				Path:      "/p",
				HasScheme: true,
				HasHost:   true,
				Reference: uri.RefAbsolute,
				String:    "foo://a/p",
			},
		},
		{
			"../a?b#",
			view{
				Path:        "../a",
				Query:       "b",
				HasQuery:    true,
				HasFragment: true,
				Reference:   uri.RefRelative,
				String:      "../a?b#",
			},
		},
		{
			"",
			view{Reference: uri.RefSameDocument},
		},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			t.Parallel()

			u, err := uri.New(c.in, &uri.Options{AbsolutePath: true})
			if err != nil {
				t.Fatalf("uri.New(%q) error = %v, want nil", c.in, err)
			}
			if diff := cmp.Diff(viewOf(u), c.want); diff != "" {
				t.Errorf("uri.New(%q) = unexpected view\ndiff (-got +want):\n%v", c.in, diff)
			}
		})
	}

	t.Run("nil", func(t *testing.T) {
		t.Parallel()

		var u *uri.URI
		if diff := cmp.Diff(viewOf(u), view{Reference: uri.RefSameDocument}); diff != "" {
			t.Errorf("nil URI = unexpected view\ndiff (-got +want):\n%v", diff)
		}
	})
}

func TestURI_PortNumber(t *testing.T) {
	t.Parallel()

	u := uri.MustNew("foo://a:8080", nil)
	if n, ok := u.PortNumber(); !ok || n != 8080 {
		t.Errorf("u.PortNumber() = (%d, %v), want (8080, true)", n, ok)
	}
	u = uri.MustNew("foo://a", nil)
	if n, ok := u.PortNumber(); ok {
		t.Errorf("u.PortNumber() = (%d, %v), want (0, false)", n, ok)
	}
}

func TestURI_Components(t *testing.T) {
	t.Parallel()

	for _, s := range []string{
		"http://user:pw@example.com:8080/a/b?x=1#frag",
		"foo://[fe80::1%25eth0]:81/x",
		"foo://a?",
		"//example.com",
		"a/b#",
		"",
	} {
		u := uri.MustNew(s, nil)
		want, err := uri.Parse(s, nil)
		if err != nil {
			t.Fatalf("uri.Parse(%q) error = %v, want nil", s, err)
		}
		if diff := cmp.Diff(u.Components(), want, cmpOpts...); diff != "" {
			t.Errorf("uri.MustNew(%q).Components() = unexpected result\ndiff (-got +want):\n%v", s, diff)
		}
	}
}

func TestFromComponents(t *testing.T) {
	t.Parallel()

	u := uri.FromComponents(&uri.Components{
		Scheme: uri.Some("https"),
		Host:   uri.Some("example.com"),
		Port:   uri.PortNumber(443),
	}, nil)
	if got, want := u.String(), "https://example.com/"; got != want {
		t.Errorf("u.String() = %q, want %q", got, want)
	}
	if got, want := u.Path(), "/"; got != want {
		t.Errorf("u.Path() = %q, want %q", got, want)
	}
	if u.HasPort() {
		t.Errorf("u.HasPort() = true, want false")
	}
	if got, want := uri.FromComponents(nil, nil).Reference(), uri.RefSameDocument; got != want {
		t.Errorf("uri.FromComponents(nil).Reference() = %q, want %q", got, want)
	}
}

func TestNew_Error(t *testing.T) {
	t.Parallel()

	u, err := uri.New("foo:#%FF", nil)
	if !errors.Is(err, uri.ErrMalformedInput) {
		t.Errorf("uri.New() error = %v, want %v", err, uri.ErrMalformedInput)
	}
	if u != nil {
		t.Errorf("uri.New() = %v, want nil", u)
	}
}

func TestURI_Equal(t *testing.T) {
	t.Parallel()

	u := uri.MustNew("http://example.com/~joe", nil)
	cases := []struct {
		name string
		val  any
		want bool
	}{
		{"string", "HTTP://EXAMPLE.COM:80/%7Ejoe", true},
		{"pointer", uri.MustNew("http://example.com/%7ejoe", nil), true},
		{"value", *uri.MustNew("http://example.com/~joe", nil), true},
		{"components", &uri.Components{Scheme: uri.Some("http"), Host: uri.Some("example.com"), Path: "/~joe"}, true},
		{"other", "http://example.com/~jane", false},
		{"nil pointer", (*uri.URI)(nil), false},
		{"unsupported", 42, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := u.Equal(c.val); got != c.want {
				t.Errorf("u.Equal(%v) = %v, want %v", c.val, got, c.want)
			}
		})
	}
}

func TestURI_Text(t *testing.T) {
	t.Parallel()

	u := uri.MustNew("foo://a/b/../c", nil)
	text, err := u.MarshalText()
	if err != nil {
		t.Fatalf("u.MarshalText() error = %v, want nil", err)
	}
	if got, want := string(text), "foo://a/c"; got != want {
		t.Errorf("u.MarshalText() = %q, want %q", got, want)
	}

	var u2 uri.URI
	if err := u2.UnmarshalText([]byte("FOO://A/x")); err != nil {
		t.Fatalf("u.UnmarshalText() error = %v, want nil", err)
	}
	if got, want := u2.String(), "FOO://a/x"; got != want {
		t.Errorf("u.UnmarshalText() = %q, want %q", got, want)
	}

	if err := u2.UnmarshalText([]byte("foo:#%FF")); !errors.Is(err, uri.ErrMalformedInput) {
		t.Errorf("u.UnmarshalText() error = %v, want %v", err, uri.ErrMalformedInput)
	}
	if got := u2.String(); got != "" {
		t.Errorf("u.String() = %q, want \"\"", got)
	}
}

func TestURI_Format(t *testing.T) {
	t.Parallel()

	u := uri.MustNew("foo://a/b", nil)
	for _, c := range []struct {
		format, want string
	}{
		{"%s", "foo://a/b"},
		{"%v", "foo://a/b"},
		{"%q", `"foo://a/b"`},
		{"%d", "%!d(uri.URI=foo://a/b)"},
	} {
		if got := fmt.Sprintf(c.format, u); got != c.want {
			t.Errorf("fmt.Sprintf(%q, u) = %q, want %q", c.format, got, c.want)
		}
	}
}
