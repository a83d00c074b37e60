package uri

import (
	"braces.dev/errtrace"
	"golang.org/x/net/idna"
)

// HostConverter converts a lower-cased Unicode host into its ASCII form.
type HostConverter interface {
	ToASCII(host string) (string, error)
}

// HostConverterFunc adapts a function to [HostConverter].
type HostConverterFunc func(host string) (string, error)

func (fn HostConverterFunc) ToASCII(host string) (string, error) {
	return errtrace.Wrap2(fn(host))
}

var idnaProfile = idna.New(
	idna.MapForLookup(),
	idna.Transitional(false),
	idna.StrictDomainName(false),
)

var defaultHostConverter HostConverter = HostConverterFunc(idnaProfile.ToASCII)

// DefaultHostConverter returns the IDNA converter used when [Options.HostConverter] is nil.
// It maps hosts with the UTS #46 lookup profile and allows underscores in labels.
func DefaultHostConverter() HostConverter { return defaultHostConverter }
