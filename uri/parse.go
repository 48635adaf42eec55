package uri

//go:generate go tool errtrace -w .

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/urisplit/internal/grammar"
	"github.com/ghettovoice/urisplit/internal/log"
	"github.com/ghettovoice/urisplit/internal/util"
)

// Parse parses an absolute URI from the given input s (string or []byte).
//
// The input is decomposed in five steps: scheme, authority and path+query,
// userinfo and host+port, host and port, path and query.
// The scheme must be known to the effective scheme registry (see [ParseOptions.Schemes]),
// the port is the explicit one or the scheme's default port.
// No component is percent-decoded.
//
// On failure Parse returns a [*ParseError] wrapping one of [ErrNoScheme], [ErrUnknownScheme],
// [ErrNoDefaultPort] or [ErrMalformedURL].
func Parse[T ~string | ~[]byte](s T, opts *ParseOptions) (*URI, error) {
	p := parser{input: string(s), opts: opts}
	u, err := p.parse()
	if err != nil {
		if l := opts.log(); l.Enabled(context.Background(), slog.LevelDebug) {
			l.LogAttrs(context.Background(), slog.LevelDebug, "failed to parse URI",
				slog.Any("input", log.StringValue(p.input)),
				slog.String("scheme", p.scheme),
				slog.Any("options", log.FmtValue(opts, false)),
				slog.Any("error", err),
			)
		}
		return nil, errtrace.Wrap(&ParseError{Err: err, Scheme: p.scheme, Input: p.input})
	}
	return u, nil
}

// MustParse is like [Parse] but panics on error.
func MustParse[T ~string | ~[]byte](s T, opts *ParseOptions) *URI {
	return util.Must2(Parse(s, opts))
}

type parser struct {
	input string
	opts  *ParseOptions

	scheme  string
	defPort uint16
}

func (p *parser) parse() (u *URI, err error) {
	defer func() {
		if r := recover(); r != nil {
			u, err = nil, errtrace.Wrap(newMalformedURLErr("unexpected fault: %v", r))
		}
	}()

	if p.input == "" {
		return nil, errtrace.Wrap(newNoSchemeErr(ErrEmptyInput))
	}

	rest, err := p.parseScheme(p.input)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	var frag string
	if p.opts.fragment() {
		if before, after, ok := grammar.Split(rest, "#", 1, 1); ok {
			rest, frag = before, after
		}
	}

	authority, pathQuery := splitAuthority(rest)

	var user string
	hostPort := authority
	if before, after, ok := grammar.Split(authority, "@", 1, 1); ok {
		user, hostPort = before, after
	}

	host, port, err := p.parseHostPort(hostPort)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	path, query := grammar.SplitOr(pathQuery, "?", 1, 1, pathQuery)

	return &URI{
		Scheme:   p.scheme,
		User:     user,
		Host:     host,
		Port:     port,
		Path:     path,
		Query:    query,
		Fragment: frag,
	}, nil
}

func (p *parser) parseScheme(s string) (string, error) {
	token, rest, ok := grammar.Split(s, ":", 1, 1)
	if !ok {
		return "", errtrace.Wrap(newNoSchemeErr(`missing ":"`))
	}
	if token == "" {
		return "", errtrace.Wrap(newNoSchemeErr("empty scheme"))
	}

	scheme := util.LCase(token)
	port, known := p.opts.schemes().DefaultPort(scheme)
	if !known {
		return "", errtrace.Wrap(newUnknownSchemeErr(token))
	}
	p.scheme, p.defPort = scheme, port
	return rest, nil
}

// splitAuthority cuts the "//" authority off s.
// The authority ends at the first "/" or "?", which stays in pathQuery.
func splitAuthority(s string) (authority, pathQuery string) {
	rest, ok := strings.CutPrefix(s, "//")
	if !ok {
		return "", s
	}
	if before, after, ok := grammar.Split(rest, "/?", 1, 0); ok {
		return before, after
	}
	return rest, ""
}

func (p *parser) parseHostPort(s string) (string, uint16, error) {
	if lit, ok := strings.CutPrefix(s, "["); ok {
		host, rest, ok := grammar.Split(lit, "]", 1, 1)
		if !ok {
			return "", 0, errtrace.Wrap(newMalformedURLErr(`missing "]" in host %q`, s))
		}
		if p.opts.ipv6HostWithBrackets() {
			host = "[" + host + "]"
		}
		if rest == "" {
			port, err := p.defaultPort()
			return host, port, errtrace.Wrap(err)
		}
		lead, portStr, ok := grammar.Split(rest, ":", 0, 1)
		if !ok || lead != ":" {
			return "", 0, errtrace.Wrap(newMalformedURLErr("unexpected %q after IPv6 host", rest))
		}
		port, err := parsePort(portStr)
		return host, port, errtrace.Wrap(err)
	}

	host, portStr, ok := grammar.Split(s, ":", 1, 1)
	if !ok {
		port, err := p.defaultPort()
		return s, port, errtrace.Wrap(err)
	}
	port, err := parsePort(portStr)
	return host, port, errtrace.Wrap(err)
}

func (p *parser) defaultPort() (uint16, error) {
	if p.defPort != 0 || p.opts.optionalPort() {
		return p.defPort, nil
	}
	return 0, errtrace.Wrap(ErrNoDefaultPort)
}

func parsePort(s string) (uint16, error) {
	port, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, errtrace.Wrap(newMalformedURLErr("invalid port %q", s))
	}
	return uint16(port), nil
}
