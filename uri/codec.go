package uri

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/urikit/internal/grammar"
)

// Escape escapes control characters, space, unwise characters and non-ASCII bytes of s.
// Valid percent-encoded triplets are kept.
func Escape(s string) string { return grammar.EscapeUnwise(s) }

// SafeDecode decodes percent-encoded triplets of s except those that encode delimiters or '%',
// so the result never changes the structure of a URI.
func SafeDecode(s string) (string, error) { return errtrace.Wrap2(grammar.SafeDecode(s)) }

// EncodeComponent encodes every byte of s except alphanumerics and "-_.!~*'()".
func EncodeComponent(s string) (string, error) { return errtrace.Wrap2(grammar.EncodeComponent(s)) }

// EncodeUTF16 encodes text given as UTF-16 code units like [EncodeComponent].
// Surrogate pairs are combined, unpaired surrogates result in [ErrSurrogatePair] error.
func EncodeUTF16(units []uint16) (string, error) { return errtrace.Wrap2(grammar.EncodeUTF16(units)) }
