// Package grammar implements the low-level scanning primitives of the generic URI syntax (RFC 3986):
// first-occurrence splitting and the percent-encoding codec.
package grammar

//go:generate go tool errtrace -w .

import "github.com/ghettovoice/urisplit/internal/errorutil"

type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrEmptyInput    Error = "empty input"
	ErrMalformedURL  Error = "malformed URL"
	ErrInvalidEscape Error = "invalid escape"
)

func newInvalidEscapeErr(args ...any) error {
	return errorutil.NewWrapperError(ErrMalformedURL, errorutil.NewWrapperError(ErrInvalidEscape, args...)) //errtrace:skip
}
