// Package grammar implements the RFC 3986 character classes and the percent-encoding codec.
package grammar

//go:generate go tool errtrace -w .

type Error string

func (e Error) Error() string { return string(e) }

func (Error) Grammar() bool { return true }

const (
	ErrMalformedInput Error = "malformed input"
	ErrSurrogatePair  Error = "unpaired surrogate"
)

// IsAlphanumChar checks alphanum rule.
func IsAlphanumChar(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9'
}

// IsDigit checks DIGIT rule.
func IsDigit(c byte) bool { return '0' <= c && c <= '9' }

var markChars = [256]bool{
	'-':  true,
	'_':  true,
	'.':  true,
	'!':  true,
	'~':  true,
	'*':  true,
	'\'': true,
	'(':  true,
	')':  true,
}

// IsCharUnreserved reports whether c is left as is by the component encoder
// (alphanum and the RFC 2396 mark characters).
func IsCharUnreserved(c byte) bool {
	return markChars[c] || IsAlphanumChar(c)
}

var unwiseChars = func() (t [256]bool) {
	for c := 0; c < 0x20; c++ {
		t[c] = true
	}
	for c := 0x7F; c < 0x100; c++ {
		t[c] = true
	}
	for _, c := range []byte(" \"'<>\\^`{|}") {
		t[c] = true
	}
	return t
}()

// IsUnwiseChar reports whether c is a delimiter or unwise character that is never kept literally
// in a serialized URI: controls, space, `"`, `'`, `<`, `>`, `\`, `^`, "`", `{`, `|`, `}` and bytes >= 0x7F.
func IsUnwiseChar(c byte) bool { return unwiseChars[c] }

// protected are the characters whose escapes are kept by [SafeDecode],
// decoding them would change the structure of the string.
var protected = [128]bool{
	'#': true,
	'$': true,
	'&': true,
	'+': true,
	',': true,
	'/': true,
	':': true,
	';': true,
	'=': true,
	'?': true,
	'@': true,
	'%': true,
}

// IsProtectedChar reports whether an escaped c must stay escaped.
func IsProtectedChar(c byte) bool { return c < 0x80 && protected[c] }

var simpleHostChars = func() (t [256]bool) {
	for c := 'a'; c <= 'z'; c++ {
		t[c] = true
	}
	for c := '0'; c <= '9'; c++ {
		t[c] = true
	}
	for _, c := range []byte("-._~!$&'()*+,;=") {
		t[c] = true
	}
	return t
}()

// IsSimpleHost reports whether the lower-cased host consists of
// plain ASCII reg-name characters only, i.e. it needs no IDNA processing.
func IsSimpleHost(s string) bool {
	for i := 0; i < len(s); i++ {
		if !simpleHostChars[s[i]] {
			return false
		}
	}
	return true
}

const upperhex = "0123456789ABCDEF"

func ishex(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}

// IsHex reports whether s is a non-empty sequence of hex digits.
func IsHex(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !ishex(s[i]) {
			return false
		}
	}
	return true
}

// isEscape reports whether s has a "% HEXDIG HEXDIG" triplet at i.
func isEscape[T ~string | ~[]byte](s T, i int) bool {
	return i+2 < len(s) && s[i] == '%' && ishex(s[i+1]) && ishex(s[i+2])
}
