package uri

import (
	"github.com/ghettovoice/urikit/internal/errorutil"
	"github.com/ghettovoice/urikit/internal/grammar"
)

// Error is a sentinel error type of the package.
type Error = errorutil.Error

// Hard errors, returned by the operations.
const (
	// ErrMalformedInput is returned when a component holds a percent-encoded sequence
	// that does not form valid UTF-8.
	ErrMalformedInput = grammar.ErrMalformedInput
	// ErrSurrogatePair is returned by the encoders for unpaired UTF-16 surrogates.
	ErrSurrogatePair = grammar.ErrSurrogatePair
)

// Diagnostics, recorded in [Components.Err].
const (
	ErrReferenceKind  Error = "reference kind mismatch"
	ErrHostConversion Error = "host conversion failed"
	ErrMalformedIPv6  Error = "malformed IPv6 address"
	ErrMissingHost    Error = "missing host"
	ErrInvalidHost    Error = "invalid host"
	ErrInvalidURN     Error = "invalid URN"
	ErrInvalidUUID    Error = "invalid UUID"
)
