package uri

import (
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/urikit/internal/pathutil"
	"github.com/ghettovoice/urikit/internal/util"
)

// Resolve resolves the reference rel against the base URI as described in RFC 3986 section 5.2.
//
// Both strings are parsed without scheme handlers unless [Options.Scheme] is set,
// the target is serialized with [Options.SkipEscape].
func Resolve(base, rel string, opts *Options) (string, error) {
	o := opts.clone()
	if o.Scheme == "" {
		o.schemeless = true
	}

	bc, err := Parse(base, o)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	rc, err := Parse(rel, o)
	if err != nil {
		return "", errtrace.Wrap(err)
	}

	t, err := ResolveComponents(bc, rc, o, true)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	o.SkipEscape = true
	return Serialize(t, o), nil
}

// ResolveComponents resolves the reference rel against base and returns the target components.
//
// Unless normalized is true both records are normalized first by serializing and parsing them again,
// dot-segments are kept at this step.
// In [Options.Tolerant] mode a rel scheme equal to the base scheme is ignored,
// this is the non-strict behavior of RFC 3986 section 5.2.2.
// The fragment is always taken from rel.
func ResolveComponents(base, rel *Components, opts *Options, normalized bool) (*Components, error) {
	if base == nil {
		base = new(Components)
	}
	if rel == nil {
		rel = new(Components)
	}

	if !normalized {
		// dot-segments of rel are meaningful until merged with the base path
		o := opts.clone()
		o.AbsolutePath = true
		var err error
		if base, err = Parse(Serialize(base, o), o); err != nil {
			return nil, errtrace.Wrap(err)
		}
		if rel, err = Parse(Serialize(rel, o), o); err != nil {
			return nil, errtrace.Wrap(err)
		}
	}

	tolerant := opts != nil && opts.Tolerant
	relScheme := rel.hasScheme()
	if relScheme && tolerant && base.hasScheme() && util.EqFold(rel.Scheme.Value(), base.Scheme.Value()) {
		relScheme = false
	}

	t := new(Components)
	switch {
	case relScheme:
		t.Scheme = rel.Scheme
		setAuthority(t, rel)
		t.Path = pathutil.RemoveDotSegments(rel.Path)
		t.Query = rel.Query
	case rel.HasAuthority():
		t.Scheme = base.Scheme
		setAuthority(t, rel)
		t.Path = pathutil.RemoveDotSegments(rel.Path)
		t.Query = rel.Query
	default:
		t.Scheme = base.Scheme
		setAuthority(t, base)
		switch {
		case rel.Path == "":
			t.Path = base.Path
			t.Query = rel.Query
			if !t.Query.IsSet() {
				t.Query = base.Query
			}
		case rel.Path[0] == '/':
			t.Path = pathutil.RemoveDotSegments(rel.Path)
			t.Query = rel.Query
		default:
			t.Path = pathutil.RemoveDotSegments(mergePaths(base, rel.Path))
			t.Query = rel.Query
		}
	}
	t.Fragment = rel.Fragment
	t.Reference = t.classify()
	return t, nil
}

func setAuthority(dst, src *Components) {
	dst.Userinfo = src.Userinfo
	dst.Host = src.Host
	dst.Port = src.Port
}

// mergePaths merges the relative path p with the base path as described in RFC 3986 section 5.2.3.
func mergePaths(base *Components, p string) string {
	switch {
	case base.HasAuthority() && base.Path == "":
		return "/" + p
	case base.Path == "":
		return p
	default:
		return base.Path[:strings.LastIndexByte(base.Path, '/')+1] + p
	}
}

// RemoveDotSegments removes "." and ".." segments from the path p
// as described in RFC 3986 section 5.2.4.
func RemoveDotSegments(p string) string { return pathutil.RemoveDotSegments(p) }
