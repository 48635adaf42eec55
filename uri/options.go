package uri

import (
	"log/slog"

	"github.com/ghettovoice/urisplit/internal/log"
)

// ParseOptions configures [Parse]. A nil *ParseOptions is valid and means defaults.
type ParseOptions struct {
	// Schemes overrides the built-in scheme table.
	// Lookups try Schemes first and fall back to [DefaultSchemes],
	// so Schemes only needs the entries it changes or adds.
	// If nil, only the built-in table is used.
	Schemes SchemeRegistry
	// IPv6HostWithBrackets keeps the enclosing brackets of IPv6 literal hosts in [URI.Host].
	// Default is false, brackets are stripped.
	IPv6HostWithBrackets bool
	// Fragment enables extraction of the "#fragment" suffix into [URI.Fragment].
	// Default is false: the fragment is not recognized and stays in the component it falls into.
	Fragment bool
	// OptionalPort resolves a missing port of a scheme without default port to zero
	// instead of failing with [ErrNoDefaultPort].
	// Default is false.
	OptionalPort bool
	// Log is a logger used to trace parse failures at debug level.
	// If nil, logging is disabled.
	Log *slog.Logger
}

func (o *ParseOptions) schemes() SchemeRegistry {
	if o == nil || o.Schemes == nil {
		return builtinSchemes
	}
	return overlayRegistry{over: o.Schemes, base: builtinSchemes}
}

func (o *ParseOptions) ipv6HostWithBrackets() bool {
	if o == nil {
		return false
	}
	return o.IPv6HostWithBrackets
}

func (o *ParseOptions) fragment() bool {
	if o == nil {
		return false
	}
	return o.Fragment
}

func (o *ParseOptions) optionalPort() bool {
	if o == nil {
		return false
	}
	return o.OptionalPort
}

func (o *ParseOptions) log() *slog.Logger {
	if o == nil || o.Log == nil {
		return log.Noop
	}
	return o.Log
}
