package logging

import (
	"github.com/quic-go/quicwire/internal/protocol"
	"github.com/quic-go/quicwire/internal/wire"
)

type (
	// A ByteCount in QUIC
	ByteCount = protocol.ByteCount
	// A ConnectionID is a QUIC Connection ID.
	ConnectionID = protocol.ConnectionID
	// An ArbitraryLenConnectionID is a QUIC Connection ID of arbitrary length.
	ArbitraryLenConnectionID = protocol.ArbitraryLenConnectionID
	// The KeyPhaseBit is the key phase bit.
	KeyPhaseBit = protocol.KeyPhaseBit
	// A PacketNumber is a QUIC packet number.
	PacketNumber = protocol.PacketNumber
	// A StreamID is a QUIC stream ID.
	StreamID = protocol.StreamID
	// The Version is the QUIC version.
	Version = protocol.Version

	// A Header is the version independent part of a QUIC long header.
	Header = wire.Header
	// An ExtendedHeader is a QUIC long header, including the packet number.
	ExtendedHeader = wire.ExtendedHeader
	// A ShortHeader is the header of a 1-RTT packet.
	ShortHeader = wire.ShortHeader

	// A Frame is a QUIC frame.
	Frame = wire.Frame
	// An AckRange is a range of acknowledged packets.
	AckRange = wire.AckRange
	// An AckFrame is an ACK frame.
	AckFrame = wire.AckFrame
	// A PingFrame is a PING frame.
	PingFrame = wire.PingFrame
	// A PaddingFrame is a run of PADDING frames.
	PaddingFrame = wire.PaddingFrame
	// A StreamFrame is a STREAM frame.
	StreamFrame = wire.StreamFrame
	// An UnimplementedFrame is a frame that is recognized, but not decoded.
	UnimplementedFrame = wire.UnimplementedFrame
)

const (
	// KeyPhaseZero is key phase bit 0
	KeyPhaseZero = protocol.KeyPhaseZero
	// KeyPhaseOne is key phase bit 1
	KeyPhaseOne = protocol.KeyPhaseOne
)

// PacketTypeNotDetermined is the packet type of a packet that could not be parsed
const PacketTypeNotDetermined PacketType = 0

// PacketType is the type of a QUIC packet, for logging purposes
type PacketType uint8

const (
	// PacketTypeInitial is the packet type of an Initial packet
	PacketTypeInitial PacketType = 1 + iota
	// PacketTypeHandshake is the packet type of a Handshake packet
	PacketTypeHandshake
	// PacketTypeRetry is the packet type of a Retry packet
	PacketTypeRetry
	// PacketType0RTT is the packet type of a 0-RTT packet
	PacketType0RTT
	// PacketTypeVersionNegotiation is the packet type of a Version Negotiation packet
	PacketTypeVersionNegotiation
	// PacketType1RTT is a 1-RTT packet
	PacketType1RTT
)

// PacketTypeFromHeader determines the packet type from a parsed header
func PacketTypeFromHeader(hdr *Header) PacketType {
	if hdr.Version == 0 {
		return PacketTypeVersionNegotiation
	}
	switch hdr.Type {
	case protocol.PacketTypeInitial:
		return PacketTypeInitial
	case protocol.PacketTypeHandshake:
		return PacketTypeHandshake
	case protocol.PacketType0RTT:
		return PacketType0RTT
	case protocol.PacketTypeRetry:
		return PacketTypeRetry
	default:
		return PacketTypeNotDetermined
	}
}

// PacketDropReason is the reason why a packet is dropped
type PacketDropReason uint8

const (
	// PacketDropHeaderParseError is used when a packet is dropped because the header could not be parsed
	PacketDropHeaderParseError PacketDropReason = iota
	// PacketDropPayloadDecryptError is used when a packet is dropped because the payload could not be unprotected
	PacketDropPayloadDecryptError
	// PacketDropUnsupportedVersion is used when a packet carries an unsupported version
	PacketDropUnsupportedVersion
	// PacketDropUnexpectedPacket is used when an unexpected packet is received
	PacketDropUnexpectedPacket
	// PacketDropFrameParseError is used when a packet is dropped because a frame could not be parsed
	PacketDropFrameParseError
	// PacketDropDuplicate is used when a duplicate packet is received
	PacketDropDuplicate
)

func (r PacketDropReason) String() string {
	switch r {
	case PacketDropHeaderParseError:
		return "header_parse_error"
	case PacketDropPayloadDecryptError:
		return "payload_decrypt_error"
	case PacketDropUnsupportedVersion:
		return "unsupported_version"
	case PacketDropUnexpectedPacket:
		return "unexpected_packet"
	case PacketDropFrameParseError:
		return "frame_parse_error"
	case PacketDropDuplicate:
		return "duplicate"
	default:
		return "unknown"
	}
}
