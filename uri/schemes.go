package uri

import (
	"maps"

	"braces.dev/errtrace"

	"github.com/ghettovoice/urisplit/internal/errorutil"
	"github.com/ghettovoice/urisplit/internal/util"
)

//go:generate go tool mockgen -destination=urimock/registry.go -package=urimock . SchemeRegistry

// SchemeRegistry resolves scheme names to their default ports.
//
// known reports whether the scheme is recognized at all;
// a recognized scheme without a default port returns zero port.
// Scheme names passed to DefaultPort are always lower-cased.
type SchemeRegistry interface {
	DefaultPort(scheme string) (port uint16, known bool)
}

// Schemes is a map based [SchemeRegistry].
// Keys are lower-case scheme names, values are default ports, zero means no default port.
//
// A Schemes value must not be modified while it is used by concurrent parses.
type Schemes map[string]uint16

// DefaultPort implements [SchemeRegistry].
func (s Schemes) DefaultPort(scheme string) (uint16, bool) {
	port, ok := s[scheme]
	return port, ok
}

// Set registers scheme with the given default port, zero port registers the scheme without default port.
// The scheme name is lower-cased.
func (s Schemes) Set(scheme string, port uint16) error {
	if !isSchemeName(scheme) {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("invalid scheme name %q", scheme))
	}
	s[util.LCase(scheme)] = port
	return nil
}

// Clone returns a copy of the registry.
func (s Schemes) Clone() Schemes {
	if s == nil {
		return nil
	}
	return maps.Clone(s)
}

var builtinSchemes = Schemes{
	"http":     80,
	"https":    443,
	"ws":       80,
	"wss":      443,
	"sip":      5060,
	"sips":     5061,
	"rtsp":     554,
	"rtsps":    322,
	"ldap":     389,
	"ldaps":    636,
	"gopher":   70,
	"telnet":   23,
	"nntp":     119,
	"imap":     143,
	"imaps":    993,
	"pop":      110,
	"smtp":     25,
	"redis":    6379,
	"rediss":   6380,
	"postgres": 5432,
	"mysql":    3306,
	"mongodb":  27017,
	"amqp":     5672,
	"amqps":    5671,
	"mqtt":     1883,
	"coap":     5683,
	"coaps":    5684,
	"file":     0,
	"mailto":   0,
	"urn":      0,
	"data":     0,
	"tel":      0,
	"news":     0,
	"about":    0,
}

// DefaultSchemes returns a fresh copy of the built-in scheme table.
func DefaultSchemes() Schemes { return builtinSchemes.Clone() }

type overlayRegistry struct {
	over, base SchemeRegistry
}

func (r overlayRegistry) DefaultPort(scheme string) (uint16, bool) {
	if port, ok := r.over.DefaultPort(scheme); ok {
		return port, true
	}
	return r.base.DefaultPort(scheme)
}

// isSchemeName checks scheme = ALPHA *( ALPHA / DIGIT / "+" / "-" / "." ).
func isSchemeName(s string) bool {
	if s == "" || !isAlpha(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if c := s[i]; !isAlpha(c) && !('0' <= c && c <= '9') && c != '+' && c != '-' && c != '.' {
			return false
		}
	}
	return true
}

func isAlpha(c byte) bool { return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' }
