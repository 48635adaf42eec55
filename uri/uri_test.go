package uri_test

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ghettovoice/urisplit/uri"
)

func TestURI_String(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		uri  *uri.URI
		want string
	}{
		{"nil", nil, ""},
		{"scheme only", &uri.URI{Scheme: "urn"}, "urn:"},
		{
			"full",
			&uri.URI{Scheme: "http", User: "u:p", Host: "example.com", Port: 8042, Path: "/a", Query: "q=1", Fragment: "f"},
			"http://u:p@example.com:8042/a?q=1#f",
		},
		{"IPv6 gets brackets", &uri.URI{Scheme: "http", Host: "::1", Port: 80}, "http://[::1]:80"},
		{"IPv6 keeps brackets", &uri.URI{Scheme: "http", Host: "[::1]", Port: 80}, "http://[::1]:80"},
		{"zero port omitted", &uri.URI{Scheme: "file", Host: "nas", Path: "/share"}, "file://nas/share"},
		{"no authority", &uri.URI{Scheme: "mailto", Path: "joe@example.com"}, "mailto:joe@example.com"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.uri.String(); got != c.want {
				t.Errorf("uri.String() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestURI_StringReparse(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"http://example.com:8042/over/there?name=ferret",
		"https://user:pw@[2001:db8::1]:8443/p?q",
		"ws://host:80",
	}
	for _, in := range inputs {
		u1 := uri.MustParse(in, nil)
		u2, err := uri.Parse(u1.String(), nil)
		if err != nil {
			t.Fatalf("uri.Parse(%q) error = %v, want nil", u1.String(), err)
		}
		if diff := cmp.Diff(u2, u1); diff != "" {
			t.Errorf("uri.Parse(%q) = %+v, want %+v\ndiff (-got +want):\n%v", u1.String(), u2, u1, diff)
		}
	}
}

func TestURI_Format(t *testing.T) {
	t.Parallel()

	u := &uri.URI{Scheme: "http", Host: "example.com", Port: 80, Path: "/a"}
	cases := []struct {
		format string
		want   string
	}{
		{"%s", "http://example.com:80/a"},
		{"%v", "http://example.com:80/a"},
		{"%q", `"http://example.com:80/a"`},
		{"%+v", "&{Scheme:http User: Host:example.com Port:80 Path:/a Query: Fragment:}"},
	}

	for _, c := range cases {
		t.Run(c.format, func(t *testing.T) {
			t.Parallel()

			if got := fmt.Sprintf(c.format, u); got != c.want {
				t.Errorf("fmt.Sprintf(%q, uri) = %q, want %q", c.format, got, c.want)
			}
		})
	}
}

func TestURI_Equal(t *testing.T) {
	t.Parallel()

	base := &uri.URI{Scheme: "http", Host: "example.com", Port: 80, Path: "/a"}
	cases := []struct {
		name string
		uri  *uri.URI
		val  any
		want bool
	}{
		{"nil nil", nil, (*uri.URI)(nil), true},
		{"nil non-nil", nil, base, false},
		{"other type", base, "http://example.com:80/a", false},
		{"same", base, base, true},
		{"value", base, *base, true},
		{"case-insensitive host", base, &uri.URI{Scheme: "HTTP", Host: "EXAMPLE.com", Port: 80, Path: "/a"}, true},
		{"brackets ignored", &uri.URI{Scheme: "http", Host: "[::1]"}, &uri.URI{Scheme: "http", Host: "::1"}, true},
		{"case-sensitive path", base, &uri.URI{Scheme: "http", Host: "example.com", Port: 80, Path: "/A"}, false},
		{"different port", base, &uri.URI{Scheme: "http", Host: "example.com", Port: 81, Path: "/a"}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.uri.Equal(c.val); got != c.want {
				t.Errorf("uri.Equal(%v) = %v, want %v", c.val, got, c.want)
			}
		})
	}
}

func TestURI_Clone(t *testing.T) {
	t.Parallel()

	var nilURI *uri.URI
	if got := nilURI.Clone(); got != nil {
		t.Errorf("nil.Clone() = %+v, want nil", got)
	}

	u := uri.MustParse("http://example.com/a", nil)
	u2 := u.Clone()
	u2.Path = "/b"
	if u.Path != "/a" {
		t.Errorf("modifying clone changed original path to %q", u.Path)
	}
}

func TestURI_Addr(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		opts *uri.ParseOptions
		want string
	}{
		{"http://example.com", nil, "example.com:80"},
		{"https://[::1]:8443", nil, "[::1]:8443"},
		{"https://[::1]:8443", &uri.ParseOptions{IPv6HostWithBrackets: true}, "[::1]:8443"},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			t.Parallel()

			if got := uri.MustParse(c.in, c.opts).Addr(); got != c.want {
				t.Errorf("uri.Addr() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestURI_LogValue(t *testing.T) {
	t.Parallel()

	u := uri.MustParse("http://joe@example.com/a?b", nil)
	got := u.LogValue()
	if got.Kind() != slog.KindGroup {
		t.Fatalf("uri.LogValue().Kind() = %v, want %v", got.Kind(), slog.KindGroup)
	}
	attrs := map[string]string{}
	for _, a := range got.Group() {
		attrs[a.Key] = a.Value.String()
	}
	want := map[string]string{
		"scheme":   "http",
		"user":     "joe",
		"host":     "example.com",
		"port":     "80",
		"path":     "/a",
		"query":    "b",
		"fragment": "",
	}
	if diff := cmp.Diff(attrs, want); diff != "" {
		t.Errorf("uri.LogValue() = %v, want %v\ndiff (-got +want):\n%v", attrs, want, diff)
	}
}

func TestURI_MarshalText(t *testing.T) {
	t.Parallel()

	type doc struct {
		Endpoint *uri.URI `json:"endpoint"`
	}

	in := doc{Endpoint: &uri.URI{Scheme: "https", Host: "api.example.com", Port: 443, Path: "/v1"}}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v, want nil", err)
	}
	if got, want := string(data), `{"endpoint":"https://api.example.com:443/v1"}`; got != want {
		t.Errorf("json.Marshal() = %s, want %s", got, want)
	}

	var out doc
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error = %v, want nil", err)
	}
	if diff := cmp.Diff(out, in); diff != "" {
		t.Errorf("json.Unmarshal() = %+v, want %+v\ndiff (-got +want):\n%v", out, in, diff)
	}

	if err := json.Unmarshal([]byte(`{"endpoint":"nope"}`), &out); err == nil {
		t.Error("json.Unmarshal(invalid URI) error = nil, want error")
	}
}

func TestURI_RenderTo(t *testing.T) {
	t.Parallel()

	u := uri.MustParse("https://joe@example.com/a?b", nil)
	var sb strings.Builder
	num, err := u.RenderTo(&sb)
	if err != nil {
		t.Fatalf("uri.RenderTo() error = %v, want nil", err)
	}
	if want := "https://joe@example.com:443/a?b"; sb.String() != want || num != len(want) {
		t.Errorf("uri.RenderTo() = (%d, %q), want (%d, %q)", num, sb.String(), len(want), want)
	}

	var nilURI *uri.URI
	if num, err := nilURI.RenderTo(&sb); num != 0 || err != nil {
		t.Errorf("nil.RenderTo() = (%d, %v), want (0, nil)", num, err)
	}
}
