package uri

import (
	"log/slog"

	"github.com/ghettovoice/urikit/internal/log"
	"github.com/ghettovoice/urikit/internal/util"
)

// Options configure parsing, serialization, resolution and comparison.
// A nil *Options is valid and means the defaults.
type Options struct {
	// Reference declares the expected reference kind of the parsed input.
	// A mismatch is recorded as [ErrReferenceKind] diagnostic.
	// [RefSuffix] makes the parser treat the input as authority with path.
	Reference Reference
	// Scheme overrides the detected scheme for the handler lookup.
	Scheme string
	// UnicodeSupport keeps non-ASCII hosts as is.
	UnicodeSupport bool
	// DomainHost enables IDNA conversion of hosts.
	DomainHost bool
	// SkipEscape makes the serializer emit the path as is.
	SkipEscape bool
	// AbsolutePath disables dot-segment removal on serialization.
	AbsolutePath bool
	// Tolerant enables the non-strict reference resolution and relaxes scheme handler checks.
	Tolerant bool
	// Schemes is the registry of scheme handlers, the built-in handlers are used if nil.
	Schemes Registry
	// HostConverter converts Unicode hosts to ASCII, an IDNA converter is used if nil.
	HostConverter HostConverter
	// Logger is used for debug logging of diagnostics, nothing is logged if nil.
	Logger *slog.Logger

	schemeless bool
}

// clone returns a non-nil copy of o.
func (o *Options) clone() *Options {
	if o == nil {
		return &Options{}
	}
	o2 := *o
	return &o2
}

func (o *Options) log() *slog.Logger {
	if o == nil || o.Logger == nil {
		return log.Noop
	}
	return o.Logger
}

func (o *Options) registry() Registry {
	if o == nil || o.Schemes == nil {
		return defaultSchemes
	}
	return o.Schemes
}

func (o *Options) converter() HostConverter {
	if o == nil || o.HostConverter == nil {
		return defaultHostConverter
	}
	return o.HostConverter
}

// handler returns the scheme handler for the scheme override or the given scheme.
// A missing handler is reported as a no-op handler.
func (o *Options) handler(scheme string) SchemeHandler {
	if o != nil && o.schemeless {
		return noopScheme{}
	}
	if o != nil && o.Scheme != "" {
		scheme = o.Scheme
	}
	if h, ok := o.registry().Lookup(util.LCase(scheme)); ok {
		return h
	}
	return noopScheme{}
}
