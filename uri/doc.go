// Package uri decomposes absolute URIs into their generic components and
// implements percent-encoding of reserved characters (RFC 3986).
//
// # Parsing
//
// [Parse] splits an absolute URI into scheme, userinfo, host, port, path and query:
//
//	u, err := uri.Parse("http://user@example.com:8042/over/there?name=ferret", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// u.Scheme == "http", u.User == "user", u.Host == "example.com", u.Port == 8042,
//	// u.Path == "/over/there", u.Query == "name=ferret"
//
// Each step splits the remainder of the previous one at the first occurrence of its delimiter:
//
//	scheme ":" [ "//" [ userinfo "@" ] host [ ":" port ] ] path [ "?" query ]
//
// Components are raw substrings of the input, nothing is percent-decoded.
// The scheme is lower-cased and must be known to the scheme registry.
//
// # Schemes and ports
//
// The scheme registry maps scheme names to default ports. The built-in table is returned by
// [DefaultSchemes]; [ParseOptions.Schemes] overlays it per call without touching shared state:
//
//	opts := &uri.ParseOptions{Schemes: uri.Schemes{"ftp": 21, "myproto": 0}}
//	u, err := uri.Parse("ftp://files.example.com/pub", opts)
//	// u.Port == 21
//
// When the URI has no explicit port the scheme default is used. A recognized scheme without
// default port fails with [ErrNoDefaultPort], unless [ParseOptions.OptionalPort] is set.
//
// # IPv6 hosts
//
// IPv6 literals are written in brackets. By default [URI.Host] holds the bare address,
// [ParseOptions.IPv6HostWithBrackets] keeps the brackets:
//
//	u, _ := uri.Parse("http://[2001:db8::1]:8080/path", &uri.ParseOptions{IPv6HostWithBrackets: true})
//	// u.Host == "[2001:db8::1]", u.Port == 8080
//
// # Fragments
//
// The fragment is not recognized by default, a "#..." suffix stays in the query, path or host it
// falls into. [ParseOptions.Fragment] cuts it into [URI.Fragment].
//
// # Percent-encoding
//
// [Encode] escapes every [Reserved] character, [Decode] reverses it and fails with
// [ErrInvalidEscape] on truncated or non-hex escapes:
//
//	uri.Encode(" ")           // "%20"
//	uri.DecodeString("%20")   // " ", nil
//	uri.DecodeString("100%")  // "", ErrInvalidEscape
//
// # Errors
//
// [Parse] failures are [*ParseError] values carrying the resolved scheme and the input.
// Match the failure kind with [errors.Is]: [ErrNoScheme], [ErrUnknownScheme],
// [ErrNoDefaultPort], [ErrMalformedURL].
package uri
