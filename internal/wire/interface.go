// Package wire implements the encoding and decoding of QUIC frames and headers.
package wire

import (
	"github.com/quic-go/quicwire/internal/protocol"
)

// A Frame in QUIC
type Frame interface {
	Append(b []byte, v protocol.Version) ([]byte, error)
	Length(v protocol.Version) protocol.ByteCount
}
