package uri_test

import (
	"errors"
	"testing"

	"github.com/ghettovoice/urisplit/uri"
)

func TestDefaultSchemes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		scheme    string
		wantPort  uint16
		wantKnown bool
	}{
		{"http", 80, true},
		{"https", 443, true},
		{"ws", 80, true},
		{"sip", 5060, true},
		{"mailto", 0, true},
		{"ftp", 0, false},
		{"HTTP", 0, false},
	}

	s := uri.DefaultSchemes()
	for _, c := range cases {
		if port, known := s.DefaultPort(c.scheme); port != c.wantPort || known != c.wantKnown {
			t.Errorf("uri.DefaultSchemes().DefaultPort(%q) = (%d, %v), want (%d, %v)",
				c.scheme, port, known, c.wantPort, c.wantKnown,
			)
		}
	}
}

func TestDefaultSchemes_Copy(t *testing.T) {
	t.Parallel()

	s := uri.DefaultSchemes()
	s["http"] = 8080
	delete(s, "https")

	if port, _ := uri.DefaultSchemes().DefaultPort("http"); port != 80 {
		t.Errorf("built-in http port = %d after modifying a copy, want 80", port)
	}
	if u, err := uri.Parse("https://example.com", nil); err != nil || u.Port != 443 {
		t.Errorf("uri.Parse(https) = (%+v, %v) after modifying a copy, want port 443", u, err)
	}
}

func TestSchemes_Set(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		scheme  string
		port    uint16
		wantKey string
		wantErr error
	}{
		{"simple", "ftp", 21, "ftp", nil},
		{"lower-cased", "Gemini", 1965, "gemini", nil},
		{"with symbols", "svn+ssh", 22, "svn+ssh", nil},
		{"no default port", "x-custom.v1", 0, "x-custom.v1", nil},
		{"empty", "", 1, "", uri.ErrInvalidArgument},
		{"leading digit", "9p", 564, "", uri.ErrInvalidArgument},
		{"invalid char", "my_proto", 1, "", uri.ErrInvalidArgument},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			s := uri.Schemes{}
			err := s.Set(c.scheme, c.port)
			if c.wantErr != nil {
				if !errors.Is(err, c.wantErr) {
					t.Errorf("uri.Schemes.Set(%q, %d) error = %v, want %v", c.scheme, c.port, err, c.wantErr)
				}
				if len(s) != 0 {
					t.Errorf("uri.Schemes.Set(%q, %d) stored %v, want nothing", c.scheme, c.port, s)
				}
				return
			}
			if err != nil {
				t.Fatalf("uri.Schemes.Set(%q, %d) error = %v, want nil", c.scheme, c.port, err)
			}
			if port, known := s.DefaultPort(c.wantKey); port != c.port || !known {
				t.Errorf("uri.Schemes.DefaultPort(%q) = (%d, %v), want (%d, true)", c.wantKey, port, known, c.port)
			}
		})
	}
}

func TestSchemes_Clone(t *testing.T) {
	t.Parallel()

	var nilSchemes uri.Schemes
	if got := nilSchemes.Clone(); got != nil {
		t.Errorf("nil.Clone() = %v, want nil", got)
	}

	s := uri.Schemes{"a": 1}
	c := s.Clone()
	c["a"] = 2
	if s["a"] != 1 {
		t.Errorf("modifying clone changed original to %d", s["a"])
	}
}
