package uri

import (
	"net/netip"

	"github.com/miekg/dns"
)

// HostKind classifies the host component of a URI.
type HostKind uint8

const (
	HostEmpty   HostKind = iota // no host
	HostIPv4                    // dotted IPv4 address
	HostIPv6                    // IPv6 literal, with or without brackets
	HostDomain                  // letter-digit-hyphen DNS name
	HostRegName                 // any other registered name
)

func (k HostKind) String() string {
	switch k {
	case HostEmpty:
		return "empty"
	case HostIPv4:
		return "ipv4"
	case HostIPv6:
		return "ipv6"
	case HostDomain:
		return "domain"
	case HostRegName:
		return "reg-name"
	default:
		return "unknown"
	}
}

// HostKind reports what kind of host the URI carries.
// The host is not percent-decoded before classification.
func (u *URI) HostKind() HostKind {
	if u == nil {
		return HostEmpty
	}

	host := trimBrackets(u.Host)
	if host == "" {
		return HostEmpty
	}
	if ip, err := netip.ParseAddr(host); err == nil {
		if ip.Is4() {
			return HostIPv4
		}
		return HostIPv6
	}
	if _, ok := dns.IsDomainName(host); ok && isLDHName(host) {
		return HostDomain
	}
	return HostRegName
}

// isLDHName checks that every label of s consists of letters, digits and inner hyphens.
// A single trailing dot is allowed.
func isLDHName(s string) bool {
	if s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}
	start := 0
	for i := 0; i <= len(s); i++ {
		if i < len(s) && s[i] != '.' {
			c := s[i]
			if !isAlpha(c) && !('0' <= c && c <= '9') && c != '-' {
				return false
			}
			continue
		}
		if i == start || s[start] == '-' || s[i-1] == '-' {
			return false
		}
		start = i + 1
	}
	return true
}
