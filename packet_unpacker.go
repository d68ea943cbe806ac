package quicwire

import (
	"errors"
	"fmt"

	"github.com/quic-go/quicwire/internal/protocol"
	"github.com/quic-go/quicwire/internal/wire"
	"github.com/quic-go/quicwire/logging"
)

// An UnpackedPacket is a single decoded packet from a received datagram.
type UnpackedPacket struct {
	// LongHeader is set for long header packets, and nil for 1-RTT packets.
	LongHeader   *wire.ExtendedHeader
	PacketNumber protocol.PacketNumber
	KeyPhase     protocol.KeyPhaseBit
	Frames       []wire.Frame
	Size         protocol.ByteCount
}

// A PacketUnpacker splits a datagram into coalesced packets and decodes
// their headers and frames. It reports every packet to the tracer (if any).
// It is not safe for concurrent use.
type PacketUnpacker struct {
	parser    *wire.FrameParser
	connIDLen int
	tracer    *logging.Tracer
}

// NewPacketUnpacker creates an unpacker.
// shortHeaderConnIDLen is the length of the connection IDs used on 1-RTT packets.
func NewPacketUnpacker(shortHeaderConnIDLen int, tracer *logging.Tracer) *PacketUnpacker {
	return &PacketUnpacker{
		parser:    wire.NewFrameParser(),
		connIDLen: shortHeaderConnIDLen,
		tracer:    tracer,
	}
}

// SetAckDelayExponent sets the ack delay exponent used when parsing ACK frames.
func (u *PacketUnpacker) SetAckDelayExponent(exp uint8) {
	u.parser.SetAckDelayExponent(exp)
}

// Unpack decodes all packets coalesced into the datagram.
// On error, the packets decoded before the error occurred are returned as well.
func (u *PacketUnpacker) Unpack(data []byte, v protocol.Version) ([]*UnpackedPacket, error) {
	var packets []*UnpackedPacket
	for len(data) > 0 {
		if !wire.IsLongHeaderPacket(data[0]) {
			// A short header packet is always the last packet in a datagram.
			p, err := u.unpackShortHeaderPacket(data, v)
			if err != nil {
				return packets, err
			}
			return append(packets, p), nil
		}
		if wire.IsVersionNegotiationPacket(data) {
			dest, src, versions, err := wire.ParseVersionNegotiationPacket(data)
			if err != nil {
				u.dropPacket(logging.PacketTypeVersionNegotiation, len(data), logging.PacketDropHeaderParseError)
				return packets, err
			}
			if u.tracer != nil && u.tracer.ReceivedVersionNegotiationPacket != nil {
				u.tracer.ReceivedVersionNegotiationPacket(dest, src, versions)
			}
			return packets, nil
		}
		p, rest, err := u.unpackLongHeaderPacket(data, v)
		if err != nil {
			return packets, err
		}
		packets = append(packets, p)
		data = rest
	}
	return packets, nil
}

func (u *PacketUnpacker) unpackLongHeaderPacket(data []byte, v protocol.Version) (*UnpackedPacket, []byte, error) {
	hdr, packetData, rest, err := wire.ParsePacket(data)
	if err != nil {
		if errors.Is(err, wire.ErrUnsupportedVersion) {
			u.dropPacket(logging.PacketTypeNotDetermined, len(data), logging.PacketDropUnsupportedVersion)
		} else {
			u.dropPacket(logging.PacketTypeNotDetermined, len(data), logging.PacketDropHeaderParseError)
		}
		return nil, nil, err
	}
	extHdr, err := hdr.ParseExtended(packetData)
	if err != nil {
		u.dropPacket(logging.PacketTypeFromHeader(hdr), len(packetData), logging.PacketDropHeaderParseError)
		return nil, nil, fmt.Errorf("parsing extended header: %w", err)
	}
	p := &UnpackedPacket{
		LongHeader:   extHdr,
		PacketNumber: extHdr.PacketNumber,
		Size:         protocol.ByteCount(len(packetData)),
	}
	if hdr.Type == protocol.PacketTypeRetry {
		// Retry packets don't carry a packet number.
		p.PacketNumber = protocol.InvalidPacketNumber
	} else {
		frames, err := u.parseFrames(packetData[extHdr.ParsedLen():], v)
		if err != nil {
			u.dropPacket(logging.PacketTypeFromHeader(hdr), len(packetData), logging.PacketDropFrameParseError)
			return nil, nil, err
		}
		p.Frames = frames
	}
	if u.tracer != nil && u.tracer.ReceivedLongHeaderPacket != nil {
		u.tracer.ReceivedLongHeaderPacket(extHdr, p.Size, p.Frames)
	}
	return p, rest, nil
}

func (u *PacketUnpacker) unpackShortHeaderPacket(data []byte, v protocol.Version) (*UnpackedPacket, error) {
	l, pn, pnLen, kp, err := wire.ParseShortHeader(data, u.connIDLen)
	if err != nil {
		u.dropPacket(logging.PacketType1RTT, len(data), logging.PacketDropHeaderParseError)
		return nil, err
	}
	frames, err := u.parseFrames(data[l:], v)
	if err != nil {
		u.dropPacket(logging.PacketType1RTT, len(data), logging.PacketDropFrameParseError)
		return nil, err
	}
	p := &UnpackedPacket{
		PacketNumber: pn,
		KeyPhase:     kp,
		Frames:       frames,
		Size:         protocol.ByteCount(len(data)),
	}
	if u.tracer != nil && u.tracer.ReceivedShortHeaderPacket != nil {
		connID, err := wire.ParseConnectionID(data, u.connIDLen)
		if err != nil {
			return nil, err
		}
		hdr := &wire.ShortHeader{
			DestConnectionID: connID,
			PacketNumber:     pn,
			PacketNumberLen:  pnLen,
			KeyPhase:         kp,
		}
		u.tracer.ReceivedShortHeaderPacket(hdr, p.Size, p.Frames)
	}
	return p, nil
}

func (u *PacketUnpacker) parseFrames(data []byte, v protocol.Version) ([]wire.Frame, error) {
	var frames []wire.Frame
	for len(data) > 0 {
		frame, l, err := u.parser.ParseNext(data, v)
		if err != nil {
			return nil, err
		}
		if frame == nil {
			break
		}
		frames = append(frames, frame)
		data = data[l:]
	}
	return frames, nil
}

func (u *PacketUnpacker) dropPacket(typ logging.PacketType, size int, reason logging.PacketDropReason) {
	if u.tracer != nil && u.tracer.DroppedPacket != nil {
		u.tracer.DroppedPacket(typ, protocol.ByteCount(size), reason)
	}
}
