package wire

import "errors"

var (
	// ErrInvalidReservedBits is returned when the reserved bits in the first
	// byte of a packet header are set. Key material problems aside, this
	// means the peer sent a malformed packet.
	ErrInvalidReservedBits = errors.New("invalid reserved bits")

	// ErrUnsupportedVersion is returned when parsing a long header packet of
	// a version this codec doesn't understand. Only the version-independent
	// part of the header is parsed in that case.
	ErrUnsupportedVersion = errors.New("unsupported version")

	// ErrNotImplemented is returned when encoding or decoding a frame type
	// that RFC 9000 defines, but that this codec doesn't support.
	// The caller can tell a local feature gap apart from a protocol
	// violation by checking for this error vs. ErrUnknownFrameType.
	ErrNotImplemented = errors.New("frame type not implemented")

	// ErrUnknownFrameType is returned when decoding a frame type that is not
	// defined by RFC 9000 at all, i.e. corrupt input or a version mismatch.
	ErrUnknownFrameType = errors.New("unknown frame type")
)
