// Package ioutil provides writer helpers for the serializers.
package ioutil

//go:generate go tool errtrace -w .

import (
	"io"
	"sync"

	"braces.dev/errtrace"
)

// CountingWriter wraps an [io.Writer] and counts the written bytes,
// so the current count is the position of the next written byte.
// The first write error is kept and every following write is skipped.
type CountingWriter struct {
	w   io.Writer
	num int
	err error
	buf [1]byte
}

// NewCountingWriter creates a new CountingWriter wrapping w.
func NewCountingWriter(w io.Writer) *CountingWriter {
	return &CountingWriter{w: w}
}

func (cw *CountingWriter) track(n int, err error) (int, error) {
	cw.num += n
	if err != nil {
		cw.err = err
		return n, errtrace.Wrap(err)
	}
	return n, nil
}

// Write implements [io.Writer].
func (cw *CountingWriter) Write(p []byte) (int, error) {
	if cw.err != nil {
		return 0, errtrace.Wrap(cw.err)
	}
	return errtrace.Wrap2(cw.track(cw.w.Write(p)))
}

// WriteString implements [io.StringWriter].
func (cw *CountingWriter) WriteString(s string) (int, error) {
	if cw.err != nil {
		return 0, errtrace.Wrap(cw.err)
	}
	return errtrace.Wrap2(cw.track(io.WriteString(cw.w, s)))
}

// WriteByte implements [io.ByteWriter].
func (cw *CountingWriter) WriteByte(c byte) error {
	if cw.err != nil {
		return errtrace.Wrap(cw.err)
	}
	if bw, ok := cw.w.(io.ByteWriter); ok {
		err := bw.WriteByte(c)
		if err != nil {
			_, err = cw.track(0, err)
			return errtrace.Wrap(err)
		}
		cw.num++
		return nil
	}
	cw.buf[0] = c
	_, err := cw.track(cw.w.Write(cw.buf[:]))
	return errtrace.Wrap(err)
}

// Result returns the number of written bytes and the first write error.
func (cw *CountingWriter) Result() (int, error) {
	return cw.num, errtrace.Wrap(cw.err)
}

// Err returns the first write error.
func (cw *CountingWriter) Err() error {
	return errtrace.Wrap(cw.err)
}

// Count returns the number of written bytes.
func (cw *CountingWriter) Count() int {
	return cw.num
}

var cntWrtPool = &sync.Pool{
	New: func() any { return &CountingWriter{} },
}

func GetCountingWriter(w io.Writer) *CountingWriter {
	cw := cntWrtPool.Get().(*CountingWriter) //nolint:forcetypeassert
	cw.w = w
	return cw
}

func FreeCountingWriter(cw *CountingWriter) {
	*cw = CountingWriter{}
	cntWrtPool.Put(cw)
}
