package grammar

import (
	"unicode/utf8"

	"braces.dev/errtrace"

	"github.com/ghettovoice/urikit/internal/errorutil"
)

// SafeDecode decodes percent-encoded triplets of s except those that would decode
// into structural delimiters (see [IsProtectedChar]). An encoded "%" stays encoded,
// so the result can never be decoded twice into something else.
//
// The decision whether to decode is made on the part of s before the first literal '?', ';' or '#',
// some systems separate path and query with ';'. If that part has no decodable triplet,
// s is returned unchanged. Otherwise the whole s is decoded.
//
// Triplets with non-hex digits are copied as is. Non-ASCII triplets must form valid UTF-8,
// otherwise an error with [ErrMalformedInput] is returned.
func SafeDecode(s string) (string, error) {
	if !shouldDecode(s) {
		return s, nil
	}

	b := make([]byte, 0, len(s))
	var last int
	for i := 0; i < len(s); i++ {
		if !isEscape(s, i) {
			continue
		}

		c := unhex(s[i+1])<<4 | unhex(s[i+2])
		if IsProtectedChar(c) {
			i += 2
			continue
		}

		b = append(b, s[last:i]...)
		if c < utf8.RuneSelf {
			b = append(b, c)
			i += 2
			last = i + 1
			continue
		}

		r, n, err := decodeRune(s, i)
		if err != nil {
			return s, errtrace.Wrap(err)
		}
		b = utf8.AppendRune(b, r)
		i += n - 1
		last = i + 1
	}
	b = append(b, s[last:]...)
	return string(b), nil
}

func shouldDecode(s string) bool {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '?', ';', '#':
			return false
		case '%':
			if !isEscape(s, i) {
				continue
			}
			c := unhex(s[i+1])<<4 | unhex(s[i+2])
			if c == '%' || !IsProtectedChar(c) {
				return true
			}
			i += 2
		}
	}
	return false
}

// decodeRune decodes a UTF-8 sequence written as consecutive triplets starting at s[i].
// It returns the rune and the number of input bytes consumed.
func decodeRune(s string, i int) (rune, int, error) {
	var (
		buf [utf8.UTFMax]byte
		n   int
	)
	buf[0] = unhex(s[i+1])<<4 | unhex(s[i+2])
	switch {
	case buf[0] >= 0xC2 && buf[0] <= 0xDF:
		n = 2
	case buf[0] >= 0xE0 && buf[0] <= 0xEF:
		n = 3
	case buf[0] >= 0xF0 && buf[0] <= 0xF4:
		n = 4
	default:
		return utf8.RuneError, 0, errtrace.Wrap(newMalformedInputErr("invalid UTF-8 lead byte %q at %d", s[i:i+3], i))
	}

	for k := 1; k < n; k++ {
		j := i + 3*k
		if !isEscape(s, j) {
			return utf8.RuneError, 0, errtrace.Wrap(newMalformedInputErr("truncated UTF-8 sequence at %d", i))
		}
		buf[k] = unhex(s[j+1])<<4 | unhex(s[j+2])
	}

	r, size := utf8.DecodeRune(buf[:n])
	if r == utf8.RuneError || size != n {
		return utf8.RuneError, 0, errtrace.Wrap(newMalformedInputErr("invalid UTF-8 sequence %q at %d", s[i:i+3*n], i))
	}
	return r, 3 * n, nil
}

func newMalformedInputErr(args ...any) error {
	return errorutil.NewWrapperError(ErrMalformedInput, args...) //errtrace:skip
}
