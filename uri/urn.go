package uri

import (
	"regexp"

	"github.com/google/uuid"

	"github.com/ghettovoice/urikit/internal/errorutil"
	"github.com/ghettovoice/urikit/internal/util"
)

var urnRe = regexp.MustCompile(`(?i)^([\da-z][\da-z-]{0,30}[\da-z]):((?:[\w!$'()*+,\-.:;=@]|%[\da-f]{2})+)$`)

// urnScheme handles URNs (RFC 8141).
// The path is split into NID and NSS, namespace handlers are looked up as "urn:<nid>".
type urnScheme struct{}

func (urnScheme) Flags() SchemeFlags { return SchemeFlags{SkipNormalize: true} }

func (urnScheme) Parse(c *Components, opts *Options) {
	m := urnRe.FindStringSubmatch(c.Path)
	if m == nil {
		c.RecordErr(errorutil.NewWrapperError(ErrInvalidURN, "%q", c.Path))
		return
	}

	c.NID = util.LCase(m[1])
	c.NSS = m[2]
	c.Path = ""
	if h, ok := urnNamespace(c, opts); ok {
		h.Parse(c, opts)
	}
}

func (urnScheme) Serialize(c *Components, opts *Options) {
	if c.NID == "" {
		return
	}

	c.NID = util.LCase(c.NID)
	if h, ok := urnNamespace(c, opts); ok {
		h.Serialize(c, opts)
	}
	c.Path = c.NID + ":" + c.NSS
	opts.SkipEscape = true
}

func urnNamespace(c *Components, opts *Options) (SchemeHandler, bool) {
	scheme := opts.Scheme
	if scheme == "" {
		scheme = c.Scheme.Value()
	}
	if scheme == "" {
		scheme = "urn"
	}
	return opts.registry().Lookup(scheme + ":" + c.NID)
}

// uuidScheme handles the uuid URN namespace (RFC 9562).
type uuidScheme struct{}

func (uuidScheme) Flags() SchemeFlags { return SchemeFlags{SkipNormalize: true} }

func (uuidScheme) Parse(c *Components, opts *Options) {
	c.UUID, c.NSS = c.NSS, ""
	if !opts.Tolerant && !isUUID(c.UUID) {
		c.RecordErr(errorutil.NewWrapperError(ErrInvalidUUID, "%q", c.UUID))
	}
}

func (uuidScheme) Serialize(c *Components, _ *Options) {
	if c.UUID != "" {
		c.NSS = util.LCase(c.UUID)
	}
}

// isUUID reports whether s is a UUID in the canonical 8-4-4-4-12 form.
func isUUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}
