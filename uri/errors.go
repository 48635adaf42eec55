package uri

import (
	"fmt"

	"github.com/ghettovoice/urisplit/internal/errorutil"
	"github.com/ghettovoice/urisplit/internal/grammar"
)

// Error kinds reported by [Parse], [Decode] and [DecodeString].
// Use [errors.Is] to match them.
const (
	ErrNoScheme      errorutil.Error = "no scheme"
	ErrUnknownScheme errorutil.Error = "unknown scheme"
	ErrNoDefaultPort errorutil.Error = "no default port"

	ErrEmptyInput    = grammar.ErrEmptyInput
	ErrMalformedURL  = grammar.ErrMalformedURL
	ErrInvalidEscape = grammar.ErrInvalidEscape
)

// ErrInvalidArgument is returned when a scheme registry is given an invalid scheme name or port.
const ErrInvalidArgument = errorutil.ErrInvalidArgument

// ParseError describes a failed parse.
// It keeps the scheme resolved before the failure (empty if the scheme stage failed)
// and the original input.
type ParseError struct {
	Err    error
	Scheme string
	Input  string
}

func (e *ParseError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Scheme == "" {
		return fmt.Sprintf("parse %q: %v", e.Input, e.Err)
	}
	return fmt.Sprintf("parse %q (scheme %q): %v", e.Input, e.Scheme, e.Err)
}

func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func newNoSchemeErr(args ...any) error {
	return errorutil.NewWrapperError(ErrNoScheme, args...) //errtrace:skip
}

func newUnknownSchemeErr(token string) error {
	return errorutil.NewWrapperError(ErrUnknownScheme, "%q", token) //errtrace:skip
}

func newMalformedURLErr(args ...any) error {
	return errorutil.NewWrapperError(ErrMalformedURL, args...) //errtrace:skip
}
