package uri

import (
	"strings"
	"unicode/utf8"

	"braces.dev/errtrace"

	"github.com/ghettovoice/urikit/internal/errorutil"
	"github.com/ghettovoice/urikit/internal/grammar"
	"github.com/ghettovoice/urikit/internal/types"
	"github.com/ghettovoice/urikit/internal/util"
)

// Values represents query parameters as a multi-value map. Keys are case-sensitive.
// See [types.Values] for available methods.
type Values = types.Values

// ParseQuery parses the form-encoded query q.
// Pairs are separated by '&', a '+' stands for a space, keys without '=' get an empty value.
// A percent-encoded sequence that does not form valid UTF-8 results in [ErrMalformedInput] error.
func ParseQuery(q string) (Values, error) {
	vals := make(Values)
	for q != "" {
		var pair string
		pair, q, _ = strings.Cut(q, "&")
		if pair == "" {
			continue
		}
		k, v, _ := strings.Cut(pair, "=")
		k, err := queryUnescape(k)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		v, err = queryUnescape(v)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		vals.Append(k, v)
	}
	return vals, nil
}

func queryUnescape(s string) (string, error) {
	s = grammar.Unescape(strings.ReplaceAll(s, "+", " "))
	if !utf8.ValidString(s) {
		return "", errtrace.Wrap(errorutil.NewWrapperError(ErrMalformedInput, "invalid UTF-8 in %q", s))
	}
	return s, nil
}

// QueryEscape encodes s for use as a query key or value.
// Spaces are encoded as '+'.
func QueryEscape(s string) (string, error) {
	enc, err := grammar.EncodeComponent(s)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	return strings.ReplaceAll(enc, "%20", "+"), nil
}

// EncodeQuery encodes vals into the form-encoded query sorted by key.
func EncodeQuery(vals Values) (string, error) {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	for _, k := range vals.Keys() {
		ek, err := QueryEscape(k)
		if err != nil {
			return "", errtrace.Wrap(err)
		}
		for _, v := range vals[k] {
			ev, err := QueryEscape(v)
			if err != nil {
				return "", errtrace.Wrap(err)
			}
			if sb.Len() > 0 {
				sb.WriteByte('&')
			}
			sb.WriteString(ek)
			sb.WriteByte('=')
			sb.WriteString(ev)
		}
	}
	return sb.String(), nil
}
