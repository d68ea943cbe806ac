package protocol

import (
	"bytes"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
)

// A ConnectionID in QUIC
type ConnectionID []byte

// MaxConnIDLen is the maximum connection ID length allowed by QUIC v1
const MaxConnIDLen = 20

// An ArbitraryLenConnectionID is a connection ID of arbitrary length, as
// permitted by the version-independent invariants (RFC 8999). Future QUIC
// versions might use connection ID lengths up to 255 bytes, while QUIC v1
// restricts the length to 20 bytes.
type ArbitraryLenConnectionID []byte

func (c ArbitraryLenConnectionID) Len() int { return len(c) }

func (c ArbitraryLenConnectionID) Bytes() []byte { return c }

func (c ArbitraryLenConnectionID) String() string {
	if c.Len() == 0 {
		return "(empty)"
	}
	return fmt.Sprintf("%x", c.Bytes())
}

// GenerateConnectionID generates a connection ID using cryptographic random
func GenerateConnectionID(l int) (ConnectionID, error) {
	b := make([]byte, l)
	if _, err := rand.Read(b); err != nil {
		return nil, err
	}
	return ConnectionID(b), nil
}

// GenerateConnectionIDForInitial generates a connection ID for the Initial packet.
// It uses a length randomly chosen between 8 and 20 bytes.
func GenerateConnectionIDForInitial() (ConnectionID, error) {
	r := make([]byte, 1)
	if _, err := rand.Read(r); err != nil {
		return nil, err
	}
	l := MinConnectionIDLenInitial + int(r[0])%(MaxConnIDLen-MinConnectionIDLenInitial+1)
	return GenerateConnectionID(l)
}

// ReadConnectionID reads a connection ID of length l from the given io.Reader.
// It returns io.EOF if there are not enough bytes to read.
func ReadConnectionID(r io.Reader, l int) (ConnectionID, error) {
	if l == 0 {
		return nil, nil
	}
	if l > MaxConnIDLen {
		return nil, ErrInvalidConnectionIDLen
	}
	c := make(ConnectionID, l)
	_, err := io.ReadFull(r, c)
	if err == io.ErrUnexpectedEOF {
		return nil, io.EOF
	}
	return c, err
}

// ParseConnectionID interprets b as a connection ID.
// It aliases b, it does not copy.
func ParseConnectionID(b []byte) ConnectionID {
	return ConnectionID(b)
}

// Equal says if two connection IDs are equal
func (c ConnectionID) Equal(other ConnectionID) bool {
	return bytes.Equal(c, other)
}

// Len returns the length of the connection ID in bytes
func (c ConnectionID) Len() int {
	return len(c)
}

// Bytes returns the byte representation
func (c ConnectionID) Bytes() []byte {
	return []byte(c)
}

func (c ConnectionID) String() string {
	if c.Len() == 0 {
		return "(empty)"
	}
	return fmt.Sprintf("%x", c.Bytes())
}

// ErrInvalidConnectionIDLen is returned when the connection ID length
// exceeds the 20 bytes allowed by QUIC v1.
var ErrInvalidConnectionIDLen = errors.New("invalid Connection ID length")
