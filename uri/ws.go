package uri

import (
	"strings"

	"github.com/ghettovoice/urikit/internal/util"
)

// wsScheme handles ws and wss URIs (RFC 6455).
// The path and the query are combined into the resource name.
type wsScheme struct {
	secure bool
}

func (wsScheme) Flags() SchemeFlags { return SchemeFlags{DomainHost: true} }

func (h wsScheme) Parse(c *Components, _ *Options) {
	c.Secure = h.secure || util.EqFold(c.Scheme.Value(), "wss")

	rn := c.Path
	if rn == "" {
		rn = "/"
	}
	if q, ok := c.Query.Get(); ok && q != "" {
		rn += "?" + q
	}
	c.ResourceName = rn
	c.Path = ""
	c.Query = Opt{}
}

func (h wsScheme) Serialize(c *Components, _ *Options) {
	secure := c.Secure || h.secure
	dropDefaultPort(c, secure)
	if secure {
		c.Scheme = Some("wss")
	} else {
		c.Scheme = Some("ws")
	}
	c.Secure = false

	if c.ResourceName != "" {
		p, q, ok := strings.Cut(c.ResourceName, "?")
		if p == "/" {
			p = ""
		}
		c.Path = p
		c.Query = Opt{}
		if ok {
			c.Query = Some(q)
		}
		c.ResourceName = ""
	}
	c.Fragment = Opt{}
}
