// Package constraints provides type constraints shared by the generic helpers.
package constraints

// Byteseq represents a generic UTF-8 byte string.
type Byteseq interface {
	~string | ~[]byte
}
