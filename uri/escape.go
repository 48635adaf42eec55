package uri

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/urisplit/internal/grammar"
)

// Reserved is the set of characters escaped by [Encode].
const Reserved = grammar.Reserved

// Encode percent-encodes every [Reserved] byte of s as "%XX" with uppercase hex digits.
// Other bytes are copied unchanged.
func Encode[T ~string | ~[]byte](s T) string { return grammar.Escape(s) }

// Decode replaces every "%XX" escape of s with the byte it encodes.
// Hex digits are case-insensitive. A "%" not followed by two hex digits fails with [ErrInvalidEscape].
//
// Decode is not idempotent: decoding an already decoded value unescapes "%25" sequences again.
func Decode[T ~string | ~[]byte](s T) ([]byte, error) {
	return errtrace.Wrap2(grammar.Unescape(s))
}

// DecodeString is like [Decode] but returns a string.
func DecodeString[T ~string | ~[]byte](s T) (string, error) {
	b, err := grammar.Unescape(s)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	return string(b), nil
}
