package uri

import (
	"io"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/urikit/internal/grammar"
	"github.com/ghettovoice/urikit/internal/ioutil"
	"github.com/ghettovoice/urikit/internal/netutil"
	"github.com/ghettovoice/urikit/internal/pathutil"
	"github.com/ghettovoice/urikit/internal/util"
)

// Serialize builds the URI string from components c.
//
// The scheme handler gets copies of c and opts first.
// The path is escaped unless [Options.SkipEscape] is set and has its dot-segments removed
// unless [Options.AbsolutePath] is set or the handler declares an absolute path.
// A host is re-normalized, IPv6 addresses are written in brackets with the zone escaped.
// The port is written only when it is a number or a non-empty digit string.
func Serialize(c *Components, opts *Options) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	SerializeTo(sb, c, opts) //nolint:errcheck
	return sb.String()
}

// SerializeTo writes the URI built from components c to w.
// See [Serialize] for details.
func SerializeTo(w io.Writer, c *Components, opts *Options) (int, error) {
	return errtrace.Wrap2(compose(w, c, opts, nil))
}

// offset is a position in the serialized string of a present component.
type offset struct {
	pos int
	ok  bool
}

// layout holds positions of the components of a serialized URI.
// Query and fragment start right after their delimiters.
type layout struct {
	schemeEnd, authStart, userinfoEnd offset
	hostStart, hostEnd, portStart     offset
	pathStart, queryStart, fragStart  offset
	isIPv4, isIPv6                    bool
}

// compose writes the URI built from c to w and records component positions into lay if it is not nil.
func compose(w io.Writer, c *Components, opts *Options, lay *layout) (int, error) {
	if c == nil {
		return 0, nil
	}
	if lay == nil {
		lay = new(layout)
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	mark := func(off *offset) { *off = offset{cw.Count(), true} }

	c = c.Clone()
	o := opts.clone()
	h := o.handler(c.Scheme.Value())
	h.Serialize(c, o)

	path := c.Path
	if !o.SkipEscape {
		path = grammar.EscapeUnwise(path)
		if c.hasScheme() {
			path = strings.ReplaceAll(path, "%3A", ":")
		}
	}

	suffix := o.Reference == RefSuffix
	if s, ok := c.Scheme.Get(); ok && s != "" && !suffix {
		cw.WriteString(s)
		mark(&lay.schemeEnd)
		cw.WriteByte(':')
	}

	host, hostOK := c.Host.Get()
	if hostOK {
		host, lay.isIPv4, lay.isIPv6 = authorityHost(host)
	}
	port, portOK := c.Port.serialized()
	userinfo, userinfoOK := c.Userinfo.Get()
	hasAuth := userinfoOK || hostOK || portOK

	if hasAuth {
		if !suffix {
			cw.WriteString("//")
		}
		mark(&lay.authStart)
		if userinfoOK {
			cw.WriteString(userinfo)
			mark(&lay.userinfoEnd)
			cw.WriteByte('@')
		}
		mark(&lay.hostStart)
		cw.WriteString(host)
		mark(&lay.hostEnd)
		if portOK {
			cw.WriteByte(':')
			mark(&lay.portStart)
			cw.WriteString(port)
		}
	}

	mark(&lay.pathStart)
	if hasAuth && path != "" && path[0] != '/' {
		cw.WriteByte('/')
	}
	if !o.AbsolutePath && !h.Flags().AbsolutePath {
		path = pathutil.RemoveDotSegments(path)
	}
	if !hasAuth && strings.HasPrefix(path, "//") {
		path = "/%2F" + path[2:]
	}
	cw.WriteString(path)

	if q, ok := c.Query.Get(); ok {
		cw.WriteByte('?')
		mark(&lay.queryStart)
		cw.WriteString(q)
	}
	if f, ok := c.Fragment.Get(); ok {
		cw.WriteByte('#')
		mark(&lay.fragStart)
		cw.WriteString(f)
	}
	return errtrace.Wrap2(cw.Result())
}

// authorityHost returns the host as it is written in the authority.
// IP addresses are re-normalized, other hosts are kept as stored.
func authorityHost(host string) (s string, v4, v6 bool) {
	dec, err := grammar.SafeDecode(host)
	if err != nil {
		return host, false, false
	}
	if s, v4, v6 = netutil.Canonical(dec); v4 || v6 {
		return s, v4, v6
	}
	return host, false, false
}
