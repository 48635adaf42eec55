package grammar

import (
	"bytes"

	"braces.dev/errtrace"

	"github.com/ghettovoice/urisplit/internal/constraints"
)

// Reserved lists the characters that [Escape] replaces with "%" HEXDIG HEXDIG.
const Reserved = `;:@&=+,/?#[]<>"{}|\'^% `

var reservedChars = func() (tbl [256]bool) {
	for i := range len(Reserved) {
		tbl[Reserved[i]] = true
	}
	return tbl
}()

// IsCharReserved reports whether c is in the [Reserved] set.
func IsCharReserved(c byte) bool { return reservedChars[c] }

// Escape replaces every reserved byte of s with its uppercase "%XX" form.
// All other bytes, including non-ASCII ones, are copied as is.
func Escape[T constraints.Byteseq](s T) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if reservedChars[s[i]] {
			n++
		}
	}
	if n == 0 {
		return string(s)
	}

	b := make([]byte, 0, len(s)+2*n)
	for i := 0; i < len(s); i++ {
		if c := s[i]; reservedChars[c] {
			b = append(b, '%', upperhex[c>>4], upperhex[c&15])
		} else {
			b = append(b, c)
		}
	}
	return string(b)
}

// Unescape converts each "%" HEXDIG HEXDIG triplet of s into the hex-decoded byte.
// A "%" that is not followed by two hex digits fails with [ErrInvalidEscape].
func Unescape[T constraints.Byteseq](s T) ([]byte, error) {
	var b bytes.Buffer
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '%' {
			b.WriteByte(s[i])
			continue
		}
		if i+2 >= len(s) {
			return nil, errtrace.Wrap(newInvalidEscapeErr("truncated %q at offset %d", string(s[i:]), i))
		}
		if !ishex(s[i+1]) || !ishex(s[i+2]) {
			return nil, errtrace.Wrap(newInvalidEscapeErr("%q at offset %d", string(s[i:i+3]), i))
		}
		b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
		i += 2
	}
	return b.Bytes(), nil
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
