package uri

import (
	"context"
	"log/slog"
	"strings"

	"braces.dev/errtrace"
	"github.com/ghettovoice/abnf"

	"github.com/ghettovoice/urikit/internal/errorutil"
	"github.com/ghettovoice/urikit/internal/grammar"
	"github.com/ghettovoice/urikit/internal/log"
	"github.com/ghettovoice/urikit/internal/netutil"
	"github.com/ghettovoice/urikit/internal/util"
)

// parts are the raw components of a URI reference.
type parts struct {
	scheme, userinfo, host, port, path, query, fragment Opt
}

// split splits s into raw components with the greedy semantics of the RFC 3986 appendix B pattern
//
//	^(?:([^:/?#]+):)?(?://((?:([^/?#@]*)@)?(\[[^/?#\]]+\]|[^/?#:]*)(?::(\d*))?))?([^?#]*)(?:\?([^#]*))?(?:#(.*))?
//
// The host stops at the first ':', '/', '?' or '#', a bracketed IP literal is taken whole.
func split(s string) (parts, error) {
	node, err := grammar.ParseURIReference(s)
	if err != nil {
		return parts{}, errtrace.Wrap(err)
	}
	return parts{
		scheme:   nodeOpt(node, grammar.KeyScheme),
		userinfo: nodeOpt(node, grammar.KeyUserinfo),
		host:     nodeOpt(node, grammar.KeyHost),
		port:     nodeOpt(node, grammar.KeyPort),
		path:     nodeOpt(node, grammar.KeyPath),
		query:    nodeOpt(node, grammar.KeyQuery),
		fragment: nodeOpt(node, grammar.KeyFragment),
	}, nil
}

func nodeOpt(node *abnf.Node, key string) Opt {
	if n, ok := node.GetNode(key); ok {
		return Some(n.String())
	}
	return Opt{}
}

// Parse splits the URI reference s into components and normalizes them.
//
// Hosts are normalized: IP literals are canonicalized, registered names are lower-cased
// and converted to ASCII when a domain host is requested.
// Percent-encoded scheme, userinfo and host are decoded except for delimiters,
// the path and the fragment are escaped.
//
// Problems that leave the record usable are recorded in [Components.Err],
// see [ErrReferenceKind], [ErrHostConversion], [ErrMalformedIPv6] and scheme handler errors.
// An error is returned only for a malformed percent-encoded UTF-8 sequence ([ErrMalformedInput]).
func Parse(s string, opts *Options) (*Components, error) {
	o := opts.clone()

	in := s
	if o.Reference == RefSuffix {
		prefix := "//"
		if o.Scheme != "" {
			prefix = o.Scheme + ":" + prefix
		}
		in = prefix + in
	}

	p, err := split(in)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	c := &Components{
		Scheme:   p.scheme,
		Userinfo: p.userinfo,
		Path:     p.path.Value(),
		Query:    p.query,
		Fragment: p.fragment,
	}
	if v, ok := p.port.Get(); ok {
		c.Port = parsePort(v)
	}

	var isIP bool
	if host, ok := p.host.Get(); ok {
		if v4, ok := netutil.NormalizeIPv4(host); ok {
			host, isIP = v4, true
		} else if v6 := netutil.NormalizeIPv6(host); v6.OK {
			host, isIP = v6.Host, true
		} else {
			if len(host) > 1 && host[0] == '[' && host[1] != 'v' && host[1] != 'V' {
				c.RecordErr(errorutil.NewWrapperError(ErrMalformedIPv6, "%q", host))
			}
			host = util.LCase(host)
		}
		c.Host = Some(host)
	}

	c.Reference = c.classify()
	if want := o.Reference; want != "" && want != RefSuffix && want != c.Reference {
		c.RecordErr(errorutil.NewWrapperError(ErrReferenceKind, "want %s reference, got %s", want, c.Reference))
	}

	h := o.handler(c.Scheme.Value())
	flags := h.Flags()

	if host, ok := c.Host.Get(); ok && !isIP &&
		!o.UnicodeSupport && !flags.UnicodeSupport &&
		(o.DomainHost || flags.DomainHost) &&
		!grammar.IsSimpleHost(host) {
		dec, err := grammar.SafeDecode(host)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		if ascii, err := o.converter().ToASCII(dec); err != nil {
			c.RecordErr(errorutil.NewWrapperError(ErrHostConversion, err))
		} else {
			c.Host = Some(ascii)
		}
	}

	if !flags.SkipNormalize {
		if err := normalizeParsed(c, strings.IndexByte(s, '%') >= 0, isIP); err != nil {
			return nil, errtrace.Wrap(err)
		}
	}

	h.Parse(c, o)

	if c.Err != nil {
		o.log().LogAttrs(context.Background(), slog.LevelDebug, "URI parsed with diagnostic",
			slog.String("input", maskUserinfo(s, p.userinfo)),
			slog.Any("components", c),
		)
	}
	return c, nil
}

// maskUserinfo hides the password of the raw userinfo in s.
func maskUserinfo(s string, userinfo Opt) string {
	v, ok := userinfo.Get()
	if !ok {
		return s
	}
	return strings.Replace(s, v+"@", log.MaskUserinfo(v)+"@", 1)
}

func normalizeParsed(c *Components, encoded, isIP bool) error {
	if encoded {
		var err error
		if c.Scheme, err = safeDecodeOpt(c.Scheme); err != nil {
			return errtrace.Wrap(err)
		}
		if c.Userinfo, err = safeDecodeOpt(c.Userinfo); err != nil {
			return errtrace.Wrap(err)
		}
		if !isIP {
			if c.Host, err = safeDecodeOpt(c.Host); err != nil {
				return errtrace.Wrap(err)
			}
			c.Host = c.Host.mapValue(util.LCase[string])
		}
	}
	if c.Path != "" {
		c.Path = grammar.EscapeUnwise(c.Path)
	}
	if v, ok := c.Fragment.Get(); ok && v != "" {
		dec, err := grammar.SafeDecode(v)
		if err != nil {
			return errtrace.Wrap(err)
		}
		c.Fragment = Some(grammar.EscapeUnwise(dec))
	}
	return nil
}

func safeDecodeOpt(o Opt) (Opt, error) {
	v, ok := o.Get()
	if !ok || v == "" {
		return o, nil
	}
	dec, err := grammar.SafeDecode(v)
	if err != nil {
		return o, errtrace.Wrap(err)
	}
	return Some(dec), nil
}
