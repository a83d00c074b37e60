package uri

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/urikit/internal/grammar"
	"github.com/ghettovoice/urikit/internal/util"
)

// Equal reports whether URI strings a and b are equivalent.
//
// Each string is decoded, parsed and has every present component re-encoded uniformly
// before serialization, the results are compared case-insensitively.
// A string that can not be parsed is not equal to anything.
func Equal(a, b string, opts *Options) bool {
	sa, err := canonicalString(a, opts)
	if err != nil {
		return false
	}
	sb, err := canonicalString(b, opts)
	if err != nil {
		return false
	}
	return util.EqFold(sa, sb)
}

// EqualComponents reports whether records a and b represent equivalent URIs.
// Nil records are equal only to each other.
func EqualComponents(a, b *Components, opts *Options) bool {
	if a == nil || b == nil {
		return a == b
	}
	sa, err := canonicalComponents(a, opts)
	if err != nil {
		return false
	}
	sb, err := canonicalComponents(b, opts)
	if err != nil {
		return false
	}
	return util.EqFold(sa, sb)
}

func canonicalString(s string, opts *Options) (string, error) {
	dec, err := grammar.SafeDecode(s)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	c, err := Parse(dec, opts)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	return errtrace.Wrap2(canonicalComponents(c, opts))
}

func canonicalComponents(c *Components, opts *Options) (string, error) {
	c, err := normalizeEncoding(c)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	o := opts.clone()
	o.SkipEscape = true
	return Serialize(c, o), nil
}

// normalizeEncoding returns a copy of c with every present component decoded and escaped again.
func normalizeEncoding(c *Components) (*Components, error) {
	c = c.Clone()
	var err error
	for _, opt := range []*Opt{&c.Scheme, &c.Userinfo, &c.Host, &c.Query, &c.Fragment} {
		if *opt, err = reencodeOpt(*opt); err != nil {
			return nil, errtrace.Wrap(err)
		}
	}
	if c.Path, err = reencode(c.Path); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return c, nil
}

func reencodeOpt(o Opt) (Opt, error) {
	v, ok := o.Get()
	if !ok {
		return o, nil
	}
	v, err := reencode(v)
	if err != nil {
		return o, errtrace.Wrap(err)
	}
	return Some(v), nil
}

func reencode(s string) (string, error) {
	dec, err := grammar.SafeDecode(s)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	return grammar.EscapeUnwise(dec), nil
}

// Normalize parses s and serializes it back.
func Normalize(s string, opts *Options) (string, error) {
	c, err := Parse(s, opts)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	return Serialize(c, opts), nil
}

// NormalizeComponents serializes c and parses it back.
func NormalizeComponents(c *Components, opts *Options) (*Components, error) {
	return errtrace.Wrap2(Parse(Serialize(c, opts), opts))
}
