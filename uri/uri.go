package uri

import (
	"fmt"
	"io"
	"log/slog"
	"net"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/urisplit/internal/ioutil"
	"github.com/ghettovoice/urisplit/internal/util"
)

// URI is a decomposed absolute URI.
// All components except Scheme are raw substrings of the parsed input.
type URI struct {
	Scheme   string // lower-cased scheme name
	User     string // userinfo, without "@"
	Host     string // host name or IP literal, see [ParseOptions.IPv6HostWithBrackets]
	Port     uint16 // explicit or default port
	Path     string
	Query    string // without leading "?"
	Fragment string // without leading "#", see [ParseOptions.Fragment]
}

// Clone returns a copy of the URI.
func (u *URI) Clone() *URI {
	if u == nil {
		return nil
	}
	u2 := *u
	return &u2
}

// Addr returns the "host:port" form of the URI's host and port suitable for dialing.
func (u *URI) Addr() string {
	if u == nil {
		return ""
	}
	return net.JoinHostPort(trimBrackets(u.Host), strconv.Itoa(int(u.Port)))
}

// RenderTo writes the reassembled URI to w.
// The port is always rendered when it is non-zero, even if it was resolved from the scheme default.
func (u *URI) RenderTo(w io.Writer) (num int, err error) {
	if u == nil {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)

	cw.WriteString(u.Scheme)
	cw.WriteString(":")
	if u.User != "" || u.Host != "" {
		cw.WriteString("//")
		if u.User != "" {
			cw.WriteString(u.User)
			cw.WriteString("@")
		}
		host := u.Host
		if strings.Contains(host, ":") && !strings.HasPrefix(host, "[") {
			host = "[" + host + "]"
		}
		cw.WriteString(host)
		if u.Port != 0 {
			cw.Fprintf(":%d", u.Port)
		}
	}
	cw.WriteString(u.Path)
	if u.Query != "" {
		cw.WriteString("?")
		cw.WriteString(u.Query)
	}
	if u.Fragment != "" {
		cw.WriteString("#")
		cw.WriteString(u.Fragment)
	}
	return errtrace.Wrap2(cw.Result())
}

// String returns the reassembled URI, see [URI.RenderTo].
func (u *URI) String() string {
	if u == nil {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	u.RenderTo(sb) //nolint:errcheck
	return sb.String()
}

// Format implements fmt.Formatter for custom formatting of the URI.
func (u *URI) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, u.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(u.String()))
		return
	default:
		if !f.Flag('+') && !f.Flag('#') {
			fmt.Fprint(f, u.String())
			return
		}

		type hideMethods URI
		type URI hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*URI)(u))
		return
	}
}

// LogValue implements [slog.LogValuer].
func (u *URI) LogValue() slog.Value {
	if u == nil {
		return slog.Value{}
	}
	return slog.GroupValue(
		slog.String("scheme", u.Scheme),
		slog.String("user", u.User),
		slog.String("host", u.Host),
		slog.Int("port", int(u.Port)),
		slog.String("path", u.Path),
		slog.String("query", u.Query),
		slog.String("fragment", u.Fragment),
	)
}

// Equal compares this URI with another for equality.
// Scheme and host are compared case-insensitively, all other components exactly.
func (u *URI) Equal(val any) bool {
	var other *URI
	switch v := val.(type) {
	case URI:
		other = &v
	case *URI:
		other = v
	default:
		return false
	}

	if u == other {
		return true
	} else if u == nil || other == nil {
		return false
	}
	return util.EqFold(u.Scheme, other.Scheme) &&
		util.EqFold(trimBrackets(u.Host), trimBrackets(other.Host)) &&
		u.User == other.User &&
		u.Port == other.Port &&
		u.Path == other.Path &&
		u.Query == other.Query &&
		u.Fragment == other.Fragment
}

// MarshalText implements [encoding.TextMarshaler].
func (u *URI) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
// The text is parsed with default options.
func (u *URI) UnmarshalText(text []byte) error {
	u1, err := Parse(text, nil)
	if err != nil {
		*u = URI{}
		return errtrace.Wrap(err)
	}
	*u = *u1
	return nil
}

func trimBrackets(host string) string {
	if len(host) > 1 && host[0] == '[' && host[len(host)-1] == ']' {
		return host[1 : len(host)-1]
	}
	return host
}
