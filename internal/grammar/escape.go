package grammar

import (
	"github.com/ghettovoice/urikit/internal/constraints"
)

// Unescape unescapes s by converting each 3-byte encoded substring of the form "% HEXDIG HEXDIG" into the hex-decoded byte.
// Malformed escapes are copied as is.
func Unescape[T constraints.Byteseq](s T) T {
	i := indexEscape(s, 0)
	if i < 0 {
		return s
	}

	b := make([]byte, 0, len(s))
	var last int
	for ; i < len(s); i++ {
		if !isEscape(s, i) {
			continue
		}
		b = append(b, s[last:i]...)
		b = append(b, unhex(s[i+1])<<4|unhex(s[i+2]))
		i += 2
		last = i + 1
	}
	b = append(b, s[last:]...)
	return T(b)
}

func indexEscape[T constraints.Byteseq](s T, from int) int {
	for i := from; i < len(s); i++ {
		if isEscape(s, i) {
			return i
		}
	}
	return -1
}

// Escape escapes s by replacing each char matched by shouldEscape callback to the hex form "% HEXDIG HEXDIG".
// Already escaped triplets are kept. Runs of chars that need no escaping are copied at once,
// s itself is returned when nothing was escaped.
func Escape[T constraints.Byteseq](s T, shouldEscape func(c byte) bool) T {
	if len(s) == 0 {
		return s
	}

	if shouldEscape == nil {
		shouldEscape = func(c byte) bool { return !IsCharUnreserved(c) }
	}

	var (
		b    []byte
		last int
	)
	for i := 0; i < len(s); i++ {
		switch {
		case isEscape(s, i):
			i += 2
		case shouldEscape(s[i]):
			if b == nil {
				b = make([]byte, 0, len(s)+16)
			}
			b = append(b, s[last:i]...)
			b = append(b, '%', upperhex[s[i]>>4], upperhex[s[i]&15])
			last = i + 1
		}
	}
	if b == nil {
		return s
	}
	b = append(b, s[last:]...)
	return T(b)
}

// EscapeUnwise escapes control chars, space, delimiters and unwise characters of RFC 2396
// and all non-ASCII bytes (see [IsUnwiseChar]). Single quotes are escaped too.
func EscapeUnwise[T constraints.Byteseq](s T) T {
	return Escape(s, IsUnwiseChar)
}
