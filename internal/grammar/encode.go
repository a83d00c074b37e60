package grammar

import (
	"unicode/utf16"
	"unicode/utf8"

	"braces.dev/errtrace"

	"github.com/ghettovoice/urikit/internal/errorutil"
	"github.com/ghettovoice/urikit/internal/util"
)

// EncodeComponent percent-encodes every byte of s outside of the unreserved set (see [IsCharUnreserved]).
// Multi-byte characters are written as consecutive triplets of their UTF-8 bytes.
// Invalid UTF-8 in s (including encoded lone surrogates) results in [ErrSurrogatePair] error.
func EncodeComponent(s string) (string, error) {
	var i int
	for i < len(s) && IsCharUnreserved(s[i]) {
		i++
	}
	if i == len(s) {
		return s, nil
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	sb.WriteString(s[:i])
	for i < len(s) {
		c := s[i]
		if c < utf8.RuneSelf {
			if IsCharUnreserved(c) {
				sb.WriteByte(c)
			} else {
				writeTriplet(sb, c)
			}
			i++
			continue
		}

		r, n := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && n <= 1 {
			return "", errtrace.Wrap(errorutil.NewWrapperError(ErrSurrogatePair, "invalid UTF-8 byte 0x%02X at %d", c, i))
		}
		for k := range n {
			writeTriplet(sb, s[i+k])
		}
		i += n
	}
	return sb.String(), nil
}

// EncodeUTF16 percent-encodes text given as UTF-16 code units the same way as [EncodeComponent].
// A surrogate pair is combined into one code point and written as a single 4-byte UTF-8 sequence.
// A low surrogate without a preceding high one, or a high surrogate not followed by a low one,
// results in [ErrSurrogatePair] error.
func EncodeUTF16(units []uint16) (string, error) {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	var buf [utf8.UTFMax]byte
	for i := 0; i < len(units); i++ {
		u := units[i]
		if u < utf8.RuneSelf {
			if IsCharUnreserved(byte(u)) {
				sb.WriteByte(byte(u))
			} else {
				writeTriplet(sb, byte(u))
			}
			continue
		}

		r := rune(u)
		switch {
		case u >= 0xDC00 && u <= 0xDFFF:
			return "", errtrace.Wrap(errorutil.NewWrapperError(ErrSurrogatePair, "low surrogate 0x%04X at %d", u, i))
		case u >= 0xD800 && u <= 0xDBFF:
			if i+1 >= len(units) || units[i+1] < 0xDC00 || units[i+1] > 0xDFFF {
				return "", errtrace.Wrap(errorutil.NewWrapperError(ErrSurrogatePair, "high surrogate 0x%04X at %d", u, i))
			}
			r = utf16.DecodeRune(r, rune(units[i+1]))
			i++
		}

		n := utf8.EncodeRune(buf[:], r)
		for _, c := range buf[:n] {
			writeTriplet(sb, c)
		}
	}
	return sb.String(), nil
}

func writeTriplet(sb interface{ WriteByte(byte) error }, c byte) {
	_ = sb.WriteByte('%')
	_ = sb.WriteByte(upperhex[c>>4])
	_ = sb.WriteByte(upperhex[c&15])
}
