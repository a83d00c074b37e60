package grammar

import (
	"fmt"

	"braces.dev/errtrace"
	"github.com/ghettovoice/abnf"
	abnfcore "github.com/ghettovoice/abnf/pkg/abnf_core"
)

// Node keys of the URI-reference tree returned by [ParseURIReference].
const (
	KeyScheme   = "scheme"
	KeyUserinfo = "userinfo"
	KeyHost     = "host"
	KeyPort     = "port"
	KeyPath     = "path"
	KeyQuery    = "query"
	KeyFragment = "fragment"
)

// octetExcept matches a single octet that is not one of stop.
func octetExcept(key, stop string) abnf.Operator {
	var skip [256]bool
	for i := range len(stop) {
		skip[stop[i]] = true
	}

	var ops []abnf.Operator
	for lo := 0; lo < len(skip); lo++ {
		if skip[lo] {
			continue
		}
		hi := lo
		for hi+1 < len(skip) && !skip[hi+1] {
			hi++
		}
		ops = append(ops, abnf.Range(fmt.Sprintf("%%x%02X-%02X", lo, hi), []byte{byte(lo)}, []byte{byte(hi)}))
		lo = hi
	}
	return abnf.AltFirst(key, ops[0], ops[1:]...)
}

// URI-reference = [ scheme ":" ] [ "//" authority ] path [ "?" query ] [ "#" fragment ]
// authority     = [ userinfo "@" ] host [ ":" port ]
// host          = IP-literal / reg-name
//
// The character classes follow the RFC 3986 appendix B pattern rather than the strict grammar,
// so any input is a URI-reference and each component is as long as possible.
var uriReference = abnf.Concat(
	"URI-reference",
	abnf.Optional(
		"[ scheme \":\" ]",
		abnf.Concat(
			"scheme \":\"",
			abnf.Repeat1Inf(KeyScheme, octetExcept("scheme-char", ":/?#")),
			abnf.Literal("\":\"", []byte(":")),
		),
	),
	abnf.Optional(
		"[ \"//\" authority ]",
		abnf.Concat(
			"\"//\" authority",
			abnf.Literal("\"//\"", []byte("//")),
			authority,
		),
	),
	abnf.Repeat0Inf(KeyPath, octetExcept("path-char", "?#")),
	abnf.Optional(
		"[ \"?\" query ]",
		abnf.Concat(
			"\"?\" query",
			abnf.Literal("\"?\"", []byte("?")),
			abnf.Repeat0Inf(KeyQuery, octetExcept("query-char", "#")),
		),
	),
	abnf.Optional(
		"[ \"#\" fragment ]",
		abnf.Concat(
			"\"#\" fragment",
			abnf.Literal("\"#\"", []byte("#")),
			abnf.Repeat0Inf(KeyFragment, abnfcore.Operators().OCTET),
		),
	),
)

var authority = abnf.Concat(
	"authority",
	abnf.Optional(
		"[ userinfo \"@\" ]",
		abnf.Concat(
			"userinfo \"@\"",
			abnf.Repeat0Inf(KeyUserinfo, octetExcept("userinfo-char", "/?#@")),
			abnf.Literal("\"@\"", []byte("@")),
		),
	),
	abnf.AltFirst(
		KeyHost,
		abnf.Concat(
			"IP-literal",
			abnf.Literal("\"[\"", []byte("[")),
			abnf.Repeat1Inf("IP-literal-body", octetExcept("IP-literal-char", "/?#]")),
			abnf.Literal("\"]\"", []byte("]")),
		),
		abnf.Repeat0Inf("reg-name", octetExcept("reg-name-char", "/?#:")),
	),
	abnf.Optional(
		"[ \":\" port ]",
		abnf.Concat(
			"\":\" port",
			abnf.Literal("\":\"", []byte(":")),
			abnf.Repeat0Inf(KeyPort, abnfcore.Operators().DIGIT),
		),
	),
)

// ParseURIReference splits s into the URI-reference tree.
// Components are found by the Key* node keys, a missing node means the component is absent.
//
// Alternatives of equal length resolve to the first one, so a scheme, an authority and a userinfo
// are taken whenever they match.
func ParseURIReference[T ~string | ~[]byte](s T) (*abnf.Node, error) {
	ns := abnf.NewNodes()
	defer ns.Free()

	if err := uriReference([]byte(s), 0, ns); err != nil {
		return nil, errtrace.Wrap(newMalformedInputErr(err))
	}

	n := ns.Best()
	if n == nil {
		return nil, errtrace.Wrap(newMalformedInputErr("no match"))
	}
	if nl, il := n.Len(), len(s); nl < il {
		return nil, errtrace.Wrap(newMalformedInputErr("node length %d < input length %d", nl, il))
	}
	return n, nil
}
