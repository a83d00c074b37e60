package uri

import (
	"fmt"
	"log/slog"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/urikit/internal/netutil"
	"github.com/ghettovoice/urikit/internal/util"
)

// URI is an immutable serialized URI.
// It keeps one string and the positions of the components in it,
// so the accessors are plain slicing.
// The zero value is an empty same-document reference.
type URI struct {
	href string
	lay  layout
	ref  Reference
}

// New parses s and builds the serialized URI.
// Diagnostics of the parsed record are dropped, use [Parse] to inspect them.
func New(s string, opts *Options) (*URI, error) {
	c, err := Parse(s, opts)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return FromComponents(c, opts), nil
}

// FromComponents builds the serialized URI from c.
func FromComponents(c *Components, opts *Options) *URI {
	u := new(URI)
	if c == nil {
		u.ref = RefSameDocument
		return u
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	compose(sb, c, opts, &u.lay) //nolint:errcheck
	u.href = sb.String()
	u.ref = c.Reference
	if u.ref == "" {
		u.ref = c.classify()
	}
	return u
}

// MustNew is like [New] but panics on error.
func MustNew(s string, opts *Options) *URI { return util.Must2(New(s, opts)) }

// end returns the first of the present offsets minus the delimiter length or the end of href.
func (u *URI) end(delim int, offs ...offset) int {
	for _, off := range offs {
		if off.ok {
			return off.pos - delim
		}
	}
	return len(u.href)
}

// Scheme returns the scheme.
func (u *URI) Scheme() string {
	if u == nil || !u.lay.schemeEnd.ok {
		return ""
	}
	return u.href[:u.lay.schemeEnd.pos]
}

// HasScheme reports whether the scheme is present.
func (u *URI) HasScheme() bool { return u != nil && u.lay.schemeEnd.ok }

// Userinfo returns the userinfo.
func (u *URI) Userinfo() string {
	if u == nil || !u.lay.userinfoEnd.ok {
		return ""
	}
	return u.href[u.lay.authStart.pos:u.lay.userinfoEnd.pos]
}

// HasUserinfo reports whether the userinfo is present.
func (u *URI) HasUserinfo() bool { return u != nil && u.lay.userinfoEnd.ok }

// Host returns the host as written in the URI, IPv6 addresses are enclosed in brackets.
func (u *URI) Host() string {
	if u == nil || !u.lay.hostStart.ok {
		return ""
	}
	return u.href[u.lay.hostStart.pos:u.lay.hostEnd.pos]
}

// HasHost reports whether the authority is present.
func (u *URI) HasHost() bool { return u != nil && u.lay.hostStart.ok }

// IsIPv4 reports whether the host is an IPv4 address.
func (u *URI) IsIPv4() bool { return u != nil && u.lay.isIPv4 }

// IsIPv6 reports whether the host is an IPv6 address.
func (u *URI) IsIPv6() bool { return u != nil && u.lay.isIPv6 }

// Port returns the port text.
func (u *URI) Port() string {
	if u == nil || !u.lay.portStart.ok {
		return ""
	}
	return u.href[u.lay.portStart.pos:u.lay.pathStart.pos]
}

// HasPort reports whether the port is present.
func (u *URI) HasPort() bool { return u != nil && u.lay.portStart.ok }

// PortNumber returns the numeric port.
func (u *URI) PortNumber() (int, bool) {
	if !u.HasPort() {
		return 0, false
	}
	n, err := strconv.Atoi(u.Port())
	return n, err == nil
}

// Path returns the path, it is empty but never absent.
func (u *URI) Path() string {
	if u == nil {
		return ""
	}
	return u.href[u.lay.pathStart.pos:u.end(1, u.lay.queryStart, u.lay.fragStart)]
}

// Query returns the query without the leading '?'.
func (u *URI) Query() string {
	if u == nil || !u.lay.queryStart.ok {
		return ""
	}
	return u.href[u.lay.queryStart.pos:u.end(1, u.lay.fragStart)]
}

// HasQuery reports whether the query is present.
func (u *URI) HasQuery() bool { return u != nil && u.lay.queryStart.ok }

// Fragment returns the fragment without the leading '#'.
func (u *URI) Fragment() string {
	if u == nil || !u.lay.fragStart.ok {
		return ""
	}
	return u.href[u.lay.fragStart.pos:]
}

// HasFragment reports whether the fragment is present.
func (u *URI) HasFragment() bool { return u != nil && u.lay.fragStart.ok }

// Reference returns the reference kind.
func (u *URI) Reference() Reference {
	if u == nil {
		return RefSameDocument
	}
	if u.ref == "" {
		return RefSameDocument
	}
	return u.ref
}

// Components returns the record of the URI components.
func (u *URI) Components() *Components {
	c := new(Components)
	if u == nil {
		c.Reference = RefSameDocument
		return c
	}
	if u.HasScheme() {
		c.Scheme = Some(u.Scheme())
	}
	if u.HasUserinfo() {
		c.Userinfo = Some(u.Userinfo())
	}
	if u.HasHost() {
		host := u.Host()
		if u.IsIPv6() {
			host = netutil.NormalizeIPv6(host).Host
		}
		c.Host = Some(host)
	}
	if u.HasPort() {
		c.Port = parsePort(u.Port())
	}
	c.Path = u.Path()
	if u.HasQuery() {
		c.Query = Some(u.Query())
	}
	if u.HasFragment() {
		c.Fragment = Some(u.Fragment())
	}
	c.Reference = c.classify()
	return c
}

// String returns the URI string.
func (u *URI) String() string {
	if u == nil {
		return ""
	}
	return u.href
}

// Format implements [fmt.Formatter].
func (u *URI) Format(f fmt.State, verb rune) {
	switch verb {
	case 's', 'v':
		fmt.Fprint(f, u.String())
	case 'q':
		fmt.Fprint(f, strconv.Quote(u.String()))
	default:
		fmt.Fprintf(f, "%%!%c(uri.URI=%s)", verb, u.String())
	}
}

// Equal reports whether u is equivalent to val.
// val can be a [URI], *URI, string or *[Components].
func (u *URI) Equal(val any) bool {
	var other string
	switch v := val.(type) {
	case URI:
		other = v.href
	case *URI:
		if v == nil {
			return u == nil
		}
		other = v.href
	case string:
		other = v
	case *Components:
		if v == nil {
			return u == nil
		}
		other = v.String()
	default:
		return false
	}
	if u == nil {
		return false
	}
	return Equal(u.href, other, nil)
}

// MarshalText implements [encoding.TextMarshaler].
func (u *URI) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (u *URI) UnmarshalText(text []byte) error {
	u1, err := New(string(text), nil)
	if err != nil {
		*u = URI{}
		return errtrace.Wrap(err)
	}
	*u = *u1
	return nil
}

// LogValue implements [slog.LogValuer].
func (u *URI) LogValue() slog.Value {
	if u == nil {
		return slog.Value{}
	}
	return slog.StringValue(u.href)
}
