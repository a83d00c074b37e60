// Package netutil normalizes IP literal hosts of URIs.
package netutil

import (
	"strconv"
	"strings"

	"github.com/ghettovoice/urikit/internal/grammar"
	"github.com/ghettovoice/urikit/internal/util"
)

// NormalizeIPv4 checks whether host is a dotted-decimal IPv4 address
// and returns it with leading zeros of each octet stripped ("192.068.001.1" -> "192.68.1.1").
// Hosts with less than three dots are never treated as IPv4.
func NormalizeIPv4(host string) (string, bool) {
	if util.CountByte(host, '.') != 3 {
		return host, false
	}

	var (
		octets [4]string
		rest   = host
	)
	for i := range octets {
		var oct string
		oct, rest, _ = strings.Cut(rest, ".")
		if !isOctet(oct) {
			return host, false
		}
		octets[i] = stripZeros(oct)
	}
	return strings.Join(octets[:], "."), true
}

func isOctet(s string) bool {
	if len(s) == 0 || len(s) > 3 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !grammar.IsDigit(s[i]) {
			return false
		}
	}
	n, err := strconv.Atoi(s)
	return err == nil && n <= 255
}

// stripZeros removes leading '0' of s keeping at least one char.
func stripZeros(s string) string {
	i := 0
	for i < len(s)-1 && s[i] == '0' {
		i++
	}
	return s[i:]
}

// IPv6 is a result of [NormalizeIPv6].
type IPv6 struct {
	// Host is the normalized address with raw zone ("fe80::1%eth0").
	Host string
	// Escaped is the normalized address with URI-escaped zone ("fe80::1%25eth0").
	Escaped string
	OK      bool
}

// NormalizeIPv6 checks whether host, optionally enclosed in brackets, is an IPv6 address
// and normalizes it: hextets are lower-cased with leading zeros stripped, "::" is kept as is.
// A zone identifier after '%' is preserved verbatim, the "25" that follows '%'
// in the escaped form "%25zone" is dropped.
// Hosts with less than two colons are never treated as IPv6.
func NormalizeIPv6(host string) IPv6 {
	if util.CountByte(host, ':') < 2 {
		return IPv6{Host: host}
	}

	s := strings.TrimPrefix(host, "[")
	s = strings.TrimSuffix(s, "]")
	addr, zone, _ := strings.Cut(s, "%")
	if len(zone) > 2 && zone[:2] == "25" {
		zone = zone[2:]
	}
	if util.CountByte(addr, ':') > 7 {
		return IPv6{Host: host}
	}

	groups := strings.Split(addr, ":")
	for i, g := range groups {
		if g == "" {
			continue
		}
		if i == len(groups)-1 && strings.IndexByte(g, '.') >= 0 {
			v4, ok := NormalizeIPv4(g)
			if !ok {
				return IPv6{Host: host}
			}
			groups[i] = v4
			continue
		}
		if len(g) > 4 || !grammar.IsHex(g) {
			return IPv6{Host: host}
		}
		groups[i] = stripZeros(util.LCase(g))
	}

	ip := IPv6{OK: true}
	ip.Host = strings.Join(groups, ":")
	ip.Escaped = ip.Host
	if zone != "" {
		ip.Host += "%" + zone
		ip.Escaped += "%25" + zone
	}
	return ip
}

// Canonical returns host in the form used in a serialized authority:
// stripped dotted-decimal for IPv4, bracketed and zone-escaped for IPv6, host as is otherwise.
func Canonical(host string) (s string, v4, v6 bool) {
	if h, ok := NormalizeIPv4(host); ok {
		return h, true, false
	}
	if ip := NormalizeIPv6(host); ip.OK {
		return "[" + ip.Escaped + "]", false, true
	}
	return host, false, false
}
