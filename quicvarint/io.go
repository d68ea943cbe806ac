package quicvarint

import (
	"bytes"
	"io"
)

// Reader implements both the io.ByteReader and io.Reader interfaces.
type Reader interface {
	io.ByteReader
	io.Reader
}

var _ Reader = &bytes.Reader{}

type reader struct {
	io.ByteReader
	io.Reader
}

var _ Reader = &reader{}

type byteReader struct {
	io.Reader
}

var _ Reader = &byteReader{}

// NewReader returns a Reader for r.
// If r already implements both io.ByteReader and io.Reader, NewReader returns r.
// Otherwise, r is wrapped to add the missing interfaces.
func NewReader(r io.Reader) Reader {
	if r, ok := r.(Reader); ok {
		return r
	}
	if br, ok := r.(io.ByteReader); ok {
		return &reader{br, r}
	}
	return &byteReader{r}
}

func (r *byteReader) ReadByte() (byte, error) {
	b := make([]byte, 1)
	_, err := r.Reader.Read(b)
	return b[0], err
}

// Writer implements both the io.ByteWriter and io.Writer interfaces.
type Writer interface {
	io.ByteWriter
	io.Writer
}

var _ Writer = &bytes.Buffer{}

type writer struct {
	io.ByteWriter
	io.Writer
}

var _ Writer = &writer{}

type byteWriter struct {
	io.Writer
}

var _ Writer = &byteWriter{}

// NewWriter returns a Writer for w.
// If r already implements both io.ByteWriter and io.Writer, NewWriter returns w.
// Otherwise, w is wrapped to add the missing interfaces.
func NewWriter(w io.Writer) Writer {
	if w, ok := w.(Writer); ok {
		return w
	}
	if bw, ok := w.(io.ByteWriter); ok {
		return &writer{bw, w}
	}
	return &byteWriter{w}
}

func (w *byteWriter) WriteByte(c byte) error {
	_, err := w.Writer.Write([]byte{c})
	return err
}

// A Peeker allows inspecting bytes at the front of a stream without consuming them.
// *bufio.Reader is a Peeker, albeit with a slightly different signature.
type Peeker interface {
	Peek(b []byte) (int, error)
}

// Peek reads the varint at the front of p without consuming any bytes.
func Peek(p Peeker) (uint64, error) {
	var first [1]byte
	if _, err := p.Peek(first[:]); err != nil {
		return 0, err
	}
	l := 1 << ((first[0] & 0xc0) >> 6)
	b := make([]byte, l)
	if _, err := p.Peek(b); err != nil {
		return 0, err
	}
	val, _, err := Parse(b)
	return val, err
}
