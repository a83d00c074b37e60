package uri

//go:generate go tool mockgen -destination ../internal/testutil/urimock/mocks.go -package urimock github.com/ghettovoice/urikit/uri SchemeHandler,HostConverter

import (
	"maps"

	"github.com/ghettovoice/urikit/internal/util"
)

// SchemeFlags are the capabilities declared by a scheme handler.
type SchemeFlags struct {
	// UnicodeSupport disables IDNA conversion of the host.
	UnicodeSupport bool
	// DomainHost enables IDNA conversion of the host.
	DomainHost bool
	// AbsolutePath disables dot-segment removal on serialization.
	AbsolutePath bool
	// SkipNormalize disables the generic component decoding and escaping on parsing.
	SkipNormalize bool
}

// SchemeHandler customizes parsing and serialization of URIs of a particular scheme.
//
// Parse is called last on parsing and may adjust the record or record a diagnostic with [Components.RecordErr].
// Serialize is called first on serialization with copies of the record and options and may change both.
// Options passed to the hooks are never nil.
type SchemeHandler interface {
	Flags() SchemeFlags
	Parse(c *Components, opts *Options)
	Serialize(c *Components, opts *Options)
}

// SchemeFuncs adapts plain functions to [SchemeHandler]. Nil functions are no-ops.
type SchemeFuncs struct {
	SchemeFlags
	ParseFunc     func(c *Components, opts *Options)
	SerializeFunc func(c *Components, opts *Options)
}

func (h SchemeFuncs) Flags() SchemeFlags { return h.SchemeFlags }

func (h SchemeFuncs) Parse(c *Components, opts *Options) {
	if h.ParseFunc != nil {
		h.ParseFunc(c, opts)
	}
}

func (h SchemeFuncs) Serialize(c *Components, opts *Options) {
	if h.SerializeFunc != nil {
		h.SerializeFunc(c, opts)
	}
}

type noopScheme struct{}

func (noopScheme) Flags() SchemeFlags { return SchemeFlags{} }

func (noopScheme) Parse(*Components, *Options) {}

func (noopScheme) Serialize(*Components, *Options) {}

// Registry maps lower-cased scheme names to scheme handlers.
// URN namespace handlers are registered as "urn:<nid>".
type Registry map[string]SchemeHandler

// Lookup returns the handler registered for scheme.
func (r Registry) Lookup(scheme string) (SchemeHandler, bool) {
	if r == nil {
		return nil, false
	}
	h, ok := r[util.LCase(scheme)]
	return h, ok && h != nil
}

// Register adds or replaces the handler for scheme.
func (r Registry) Register(scheme string, h SchemeHandler) Registry {
	r[util.LCase(scheme)] = h
	return r
}

var defaultSchemes = Registry{
	"http":     httpScheme{},
	"https":    httpScheme{secure: true},
	"ws":       wsScheme{},
	"wss":      wsScheme{secure: true},
	"urn":      urnScheme{},
	"urn:uuid": uuidScheme{},
}

// DefaultRegistry returns a copy of the built-in registry,
// which handles http, https, ws, wss, urn and urn:uuid URIs.
func DefaultRegistry() Registry { return maps.Clone(defaultSchemes) }
