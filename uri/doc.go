// Package uri parses, normalizes, serializes, resolves and compares URI references
// according to RFC 3986, with accommodations for IRIs.
//
// # Components
//
// [Parse] splits a URI reference into [Components]. Optional components are [Opt] values,
// so an absent component differs from a present empty one:
//
//	c, err := uri.Parse("http://user@[fe80::1%25eth0]:8080/a/./b?q#f", nil)
//	if err != nil {
//	    log.Fatal(err) // malformed percent-encoded UTF-8
//	}
//	host, _ := c.Host.Get() // "fe80::1%eth0"
//	port, _ := c.Port.Number() // 8080
//
// Parsing is tolerant: problems that leave the record usable are recorded in
// [Components.Err] instead of failing the call, see [ErrReferenceKind], [ErrHostConversion],
// [ErrMalformedIPv6] and the scheme handler errors.
//
// [Serialize] builds the canonical string back: IP hosts are re-normalized, the path is escaped
// and has its dot-segments removed, a path without authority never starts with "//".
//
// # Resolution and comparison
//
// [Resolve] and [ResolveComponents] implement the reference resolution of RFC 3986 section 5.2:
//
//	s, _ := uri.Resolve("http://a/b/c/d;p?q", "../g", nil) // "http://a/b/g"
//
// [Equal] compares URIs after decoding and uniform re-encoding of every component,
// scheme and host are compared case-insensitively:
//
//	uri.Equal("http://example.com/%7Ejoe", "HTTP://EXAMPLE.COM/~joe", nil) // true
//
// # Scheme handlers
//
// A [SchemeHandler] registered in a [Registry] customizes parsing and serialization of its scheme.
// The built-in handlers support http, https, ws, wss, urn and urn:uuid, see [DefaultRegistry].
//
// # Immutable view
//
// [URI] keeps a serialized URI as one string with component positions, its accessors
// only slice that string. Use [New] or [FromComponents] to build it.
package uri
