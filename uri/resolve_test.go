package uri_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ghettovoice/urikit/uri"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	const base = "http://a/b/c/d;p?q"

	cases := []struct {
		rel, want string
	}{
		// RFC 3986 section 5.4.1
		{"g:h", "g:h"},
		{"g", "http://a/b/c/g"},
		{"./g", "http://a/b/c/g"},
		{"g/", "http://a/b/c/g/"},
		{"/g", "http://a/g"},
		{"//g", "http://g"},
		{"?y", "http://a/b/c/d;p?y"},
		{"g?y", "http://a/b/c/g?y"},
		{"#s", "http://a/b/c/d;p?q#s"},
		{"g#s", "http://a/b/c/g#s"},
		{"g?y#s", "http://a/b/c/g?y#s"},
		{";x", "http://a/b/c/;x"},
		{"g;x", "http://a/b/c/g;x"},
		{"g;x?y#s", "http://a/b/c/g;x?y#s"},
		{"", "http://a/b/c/d;p?q"},
		{".", "http://a/b/c/"},
		{"./", "http://a/b/c/"},
		{"..", "http://a/b/"},
		{"../", "http://a/b/"},
		{"../g", "http://a/b/g"},
		{"../..", "http://a/"},
		{"../../", "http://a/"},
		{"../../g", "http://a/g"},
		// RFC 3986 section 5.4.2
		{"../../../g", "http://a/g"},
		{"../../../../g", "http://a/g"},
		{"/./g", "http://a/g"},
		{"/../g", "http://a/g"},
		{"g.", "http://a/b/c/g."},
		{".g", "http://a/b/c/.g"},
		{"g..", "http://a/b/c/g.."},
		{"..g", "http://a/b/c/..g"},
		{"./../g", "http://a/b/g"},
		{"./g/.", "http://a/b/c/g/"},
		{"g/./h", "http://a/b/c/g/h"},
		{"g/../h", "http://a/b/c/h"},
		{"g;x=1/./y", "http://a/b/c/g;x=1/y"},
		{"g;x=1/../y", "http://a/b/c/y"},
		{"g?y/./x", "http://a/b/c/g?y/./x"},
		{"g?y/../x", "http://a/b/c/g?y/../x"},
		{"g#s/./x", "http://a/b/c/g#s/./x"},
		{"g#s/../x", "http://a/b/c/g#s/../x"},
		{"http:g", "http:g"},
	}

	for _, c := range cases {
		t.Run(c.rel, func(t *testing.T) {
			t.Parallel()

			got, err := uri.Resolve(base, c.rel, nil)
			if err != nil {
				t.Fatalf("uri.Resolve(%q, %q) error = %v, want nil", base, c.rel, err)
			}
			if got != c.want {
				t.Errorf("uri.Resolve(%q, %q) = %q, want %q", base, c.rel, got, c.want)
			}
		})
	}
}

func TestResolve_Tolerant(t *testing.T) {
	t.Parallel()

	opts := &uri.Options{Tolerant: true}
	for _, c := range []struct {
		base, rel, want string
	}{
		{"http://a/b/c/d;p?q", "http:g", "http://a/b/c/g"},
		{"http://a/b/c/d;p?q", "HTTP:g", "http://a/b/c/g"},
		{"http://a/b/c/d;p?q", "https:g", "https:g"},
		// only a scheme equal to the base one is ignored
		{"http://a/b/c/d;p?q", "ftp://x/y", "ftp://x/y"},
	} {
		got, err := uri.Resolve(c.base, c.rel, opts)
		if err != nil {
			t.Fatalf("uri.Resolve(%q, %q) error = %v, want nil", c.base, c.rel, err)
		}
		if got != c.want {
			t.Errorf("uri.Resolve(%q, %q) = %q, want %q", c.base, c.rel, got, c.want)
		}
	}
}

func TestResolve_Error(t *testing.T) {
	t.Parallel()

	if _, err := uri.Resolve("http://a/", "#%FF", nil); err == nil {
		t.Errorf("uri.Resolve() error = nil, want %v", uri.ErrMalformedInput)
	}
}

func TestResolveComponents(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		base, rel  *uri.Components
		normalized bool
		want       *uri.Components
	}{
		{
			name:       "nil",
			normalized: true,
			want:       &uri.Components{Reference: uri.RefSameDocument},
		},
		{
			name:       "merge with empty base path",
			base:       &uri.Components{Scheme: uri.Some("foo"), Host: uri.Some("a")},
			rel:        &uri.Components{Path: "g", Fragment: uri.Some("f")},
			normalized: true,
			want: &uri.Components{
				Scheme:    uri.Some("foo"),
				Host:      uri.Some("a"),
				Path:      "/g",
				Fragment:  uri.Some("f"),
				Reference: uri.RefURI,
			},
		},
		{
			name:       "not normalized",
			base:       &uri.Components{Scheme: uri.Some("http"), Host: uri.Some("A"), Path: "/b/c/d"},
			rel:        &uri.Components{Path: "../x y"},
			normalized: false,
			want: &uri.Components{
				Scheme:    uri.Some("http"),
				Host:      uri.Some("a"),
				Path:      "/b/x%20y",
				Reference: uri.RefAbsolute,
			},
		},
		{
			name:       "authority from rel",
			base:       &uri.Components{Scheme: uri.Some("foo"), Host: uri.Some("a"), Path: "/b", Query: uri.Some("q")},
			rel:        &uri.Components{Userinfo: uri.Some("u"), Host: uri.Some("h"), Port: uri.PortNumber(1)},
			normalized: true,
			want: &uri.Components{
				Scheme:    uri.Some("foo"),
				Userinfo:  uri.Some("u"),
				Host:      uri.Some("h"),
				Port:      uri.PortNumber(1),
				Reference: uri.RefAbsolute,
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := uri.ResolveComponents(c.base, c.rel, nil, c.normalized)
			if err != nil {
				t.Fatalf("uri.ResolveComponents() error = %v, want nil", err)
			}
			if diff := cmp.Diff(got, c.want, cmpOpts...); diff != "" {
				t.Errorf("uri.ResolveComponents() = %+v, want %+v\ndiff (-got +want):\n%v", got, c.want, diff)
			}
		})
	}
}

func TestRemoveDotSegments(t *testing.T) {
	t.Parallel()

	for _, c := range []struct {
		in, want string
	}{
		{"/a/b/c/./../../g", "/a/g"},
		{"mid/content=5/../6", "mid/6"},
		{"", ""},
		{"../a", "a"},
	} {
		if got := uri.RemoveDotSegments(c.in); got != c.want {
			t.Errorf("uri.RemoveDotSegments(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
