package uri

import (
	"strings"

	"github.com/miekg/dns"

	"github.com/ghettovoice/urikit/internal/errorutil"
)

// httpScheme handles http and https URIs.
type httpScheme struct {
	secure bool
}

func (httpScheme) Flags() SchemeFlags { return SchemeFlags{DomainHost: true} }

func (httpScheme) Parse(c *Components, _ *Options) {
	host, ok := c.Host.Get()
	if !ok || host == "" {
		c.RecordErr(ErrMissingHost)
		return
	}
	if !isDomainHost(host) {
		c.RecordErr(errorutil.NewWrapperError(ErrInvalidHost, "%q", host))
	}
}

func (h httpScheme) Serialize(c *Components, _ *Options) {
	dropDefaultPort(c, h.secure)
	if c.Path == "" {
		c.Path = "/"
	}
}

func defaultPort(secure bool) int {
	if secure {
		return 443
	}
	return 80
}

func dropDefaultPort(c *Components, secure bool) {
	if n, ok := c.Port.Number(); ok && n == defaultPort(secure) {
		c.Port = Port{}
	} else if s, ok := c.Port.Text(); ok && s == "" {
		c.Port = Port{}
	}
}

// isDomainHost reports whether host is a valid DNS name.
// IP literals are always accepted.
func isDomainHost(host string) bool {
	if strings.IndexByte(host, ':') >= 0 || strings.HasPrefix(host, "[") {
		return true
	}
	_, ok := dns.IsDomainName(host)
	return ok
}
