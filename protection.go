package quicwire

import "github.com/quic-go/quicwire/internal/protocol"

// The codec reads and writes plaintext packets. Packet protection sits between
// Serialize and the SendConn on the send path, and between the datagram and
// the PacketUnpacker on the receive path. These interfaces describe that seam.

// A Sealer applies packet protection.
type Sealer interface {
	// Seal encrypts the payload. The associated data is the serialized header.
	Seal(dst, src []byte, pn protocol.PacketNumber, associatedData []byte) []byte
	// EncryptHeader protects the first byte and the packet number bytes,
	// using a sample of the sealed payload.
	EncryptHeader(sample []byte, firstByte *byte, pnBytes []byte)
	// Overhead is the number of bytes Seal adds to the payload.
	Overhead() int
}

// An Opener removes packet protection.
type Opener interface {
	Open(dst, src []byte, pn protocol.PacketNumber, associatedData []byte) ([]byte, error)
	DecryptHeader(sample []byte, firstByte *byte, pnBytes []byte)
}
