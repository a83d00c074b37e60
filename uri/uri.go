package uri

//go:generate go tool errtrace -w .

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/ghettovoice/urikit/internal/errorutil"
	"github.com/ghettovoice/urikit/internal/grammar"
)

// Opt is an optional component value.
// The zero value is an absent component, which is distinct from a present empty one.
type Opt struct {
	val string
	ok  bool
}

// Some returns a present component with value s.
func Some(s string) Opt { return Opt{s, true} }

// Get returns the component value and whether it is present.
func (o Opt) Get() (string, bool) { return o.val, o.ok }

// Value returns the component value or an empty string when it is absent.
func (o Opt) Value() string { return o.val }

// IsSet reports whether the component is present.
func (o Opt) IsSet() bool { return o.ok }

// IsZero reports whether the component is absent.
func (o Opt) IsZero() bool { return !o.ok }

func (o Opt) String() string {
	if !o.ok {
		return "<absent>"
	}
	return strconv.Quote(o.val)
}

// MarshalYAML implements [gopkg.in/yaml.v3.Marshaler].
func (o Opt) MarshalYAML() (any, error) {
	if !o.ok {
		return nil, nil
	}
	return o.val, nil
}

func (o Opt) mapValue(fn func(string) string) Opt {
	if !o.ok {
		return o
	}
	return Some(fn(o.val))
}

type portKind uint8

const (
	portAbsent portKind = iota
	portNumber
	portText
)

// Port is an optional port. It is either a number or a text preserved as is.
// The zero value is an absent port.
type Port struct {
	kind portKind
	num  int
	text string
}

// PortNumber returns a numeric port.
func PortNumber(n int) Port { return Port{kind: portNumber, num: n} }

// PortText returns a port holding the text s.
func PortText(s string) Port { return Port{kind: portText, text: s} }

// parsePort converts a digit run captured after ':' into a port,
// numbers that do not fit into an int are kept as text.
func parsePort(s string) Port {
	if s == "" {
		return PortText(s)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return PortText(s)
	}
	return PortNumber(n)
}

// Number returns the numeric port value.
func (p Port) Number() (int, bool) { return p.num, p.kind == portNumber }

// Text returns the textual port value.
func (p Port) Text() (string, bool) { return p.text, p.kind == portText }

// IsSet reports whether the port is present.
func (p Port) IsSet() bool { return p.kind != portAbsent }

// IsZero reports whether the port is absent.
func (p Port) IsZero() bool { return p.kind == portAbsent }

// String returns the port as written after ':' in an authority.
func (p Port) String() string {
	switch p.kind {
	case portNumber:
		return strconv.Itoa(p.num)
	case portText:
		return p.text
	default:
		return ""
	}
}

// MarshalYAML implements [gopkg.in/yaml.v3.Marshaler].
func (p Port) MarshalYAML() (any, error) {
	switch p.kind {
	case portNumber:
		return p.num, nil
	case portText:
		return p.text, nil
	default:
		return nil, nil
	}
}

// serialized returns the port text that goes into the authority.
// Only numbers and non-empty digit strings are serialized.
func (p Port) serialized() (string, bool) {
	switch p.kind {
	case portNumber:
		return strconv.Itoa(p.num), true
	case portText:
		if p.text == "" {
			return "", false
		}
		for i := 0; i < len(p.text); i++ {
			if !grammar.IsDigit(p.text[i]) {
				return "", false
			}
		}
		return p.text, true
	default:
		return "", false
	}
}

// Reference is a kind of URI reference.
type Reference string

const (
	RefSameDocument Reference = "same-document"
	RefRelative     Reference = "relative"
	RefAbsolute     Reference = "absolute"
	RefURI          Reference = "uri"
	// RefSuffix is accepted only as a parse option.
	// The input is an authority with path, the scheme comes from [Options.Scheme].
	RefSuffix Reference = "suffix"
)

// IsValid reports whether r is a known reference kind.
func (r Reference) IsValid() bool {
	switch r {
	case RefSameDocument, RefRelative, RefAbsolute, RefURI, RefSuffix:
		return true
	default:
		return false
	}
}

// Components is a URI split into components.
//
// Records returned by [Parse] are always usable, even when Err holds a diagnostic.
type Components struct {
	Scheme    Opt       `yaml:"scheme,omitempty"`
	Userinfo  Opt       `yaml:"userinfo,omitempty"`
	Host      Opt       `yaml:"host,omitempty"`
	Port      Port      `yaml:"port,omitempty"`
	Path      string    `yaml:"path"`
	Query     Opt       `yaml:"query,omitempty"`
	Fragment  Opt       `yaml:"fragment,omitempty"`
	Reference Reference `yaml:"reference,omitempty"`
	// Err is the first non-fatal diagnostic recorded while processing.
	Err error `yaml:"-"`

	// WebSocket fields.
	Secure       bool   `yaml:"secure,omitempty"`
	ResourceName string `yaml:"resource_name,omitempty"`

	// URN fields.
	NID  string `yaml:"nid,omitempty"`
	NSS  string `yaml:"nss,omitempty"`
	UUID string `yaml:"uuid,omitempty"`
}

// Clone returns a copy of the record.
func (c *Components) Clone() *Components {
	if c == nil {
		return nil
	}
	c2 := *c
	return &c2
}

// RecordErr records err as the diagnostic of c unless one is already recorded.
func (c *Components) RecordErr(err error) {
	c.Err = errorutil.Keep(c.Err, err)
}

// HasAuthority reports whether any of the authority components is present.
func (c *Components) HasAuthority() bool {
	return c.Userinfo.IsSet() || c.Host.IsSet() || c.Port.IsSet()
}

func (c *Components) hasScheme() bool {
	s, ok := c.Scheme.Get()
	return ok && s != ""
}

// classify returns the reference kind of c. An empty path counts as absent.
func (c *Components) classify() Reference {
	switch {
	case !c.hasScheme() && !c.HasAuthority() && c.Path == "" && !c.Query.IsSet():
		return RefSameDocument
	case !c.hasScheme():
		return RefRelative
	case !c.Fragment.IsSet():
		return RefAbsolute
	default:
		return RefURI
	}
}

// String returns the serialized form of the record built with default options.
func (c *Components) String() string {
	if c == nil {
		return ""
	}
	return Serialize(c, nil)
}

// Format implements [fmt.Formatter].
func (c *Components) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, c.String())
	case 'q':
		fmt.Fprint(f, strconv.Quote(c.String()))
	default:
		type hideMethods Components
		type Components hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*Components)(c))
	}
}

// LogValue implements [slog.LogValuer].
func (c *Components) LogValue() slog.Value {
	if c == nil {
		return slog.Value{}
	}

	attrs := make([]slog.Attr, 0, 9)
	for _, kv := range []struct {
		k string
		v Opt
	}{
		{"scheme", c.Scheme},
		{"userinfo", c.Userinfo},
		{"host", c.Host},
	} {
		if v, ok := kv.v.Get(); ok {
			attrs = append(attrs, slog.String(kv.k, v))
		}
	}
	if c.Port.IsSet() {
		attrs = append(attrs, slog.String("port", c.Port.String()))
	}
	attrs = append(attrs, slog.String("path", c.Path))
	if v, ok := c.Query.Get(); ok {
		attrs = append(attrs, slog.String("query", v))
	}
	if v, ok := c.Fragment.Get(); ok {
		attrs = append(attrs, slog.String("fragment", v))
	}
	attrs = append(attrs, slog.String("reference", string(c.Reference)))
	if c.Err != nil {
		attrs = append(attrs, slog.Any("error", c.Err))
	}
	return slog.GroupValue(attrs...)
}
