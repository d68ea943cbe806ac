package wire

import (
	"errors"
	"fmt"
	"io"

	"github.com/quic-go/quicwire/internal/protocol"
	"github.com/quic-go/quicwire/internal/utils"
	"github.com/quic-go/quicwire/quicvarint"
)

// ErrInvalidPacketNumberLen is returned when the packet number length field is invalid
var ErrInvalidPacketNumberLen = errors.New("invalid packet number length")

// ExtendedHeader is the long header, including the packet number.
type ExtendedHeader struct {
	Header

	PacketNumberLen protocol.PacketNumberLen
	PacketNumber    protocol.PacketNumber

	parsedLen protocol.ByteCount
}

func (h *ExtendedHeader) parse(data []byte) (bool /* reserved bits valid */, error) {
	// read the (now unprotected) first byte
	h.typeByte = data[0]
	if h.Type != protocol.PacketTypeRetry {
		h.PacketNumberLen = protocol.PacketNumberLen(h.typeByte&0x3) + 1
	}
	pos := int(h.Header.ParsedLen())
	if h.Type != protocol.PacketTypeRetry {
		if len(data) < pos+int(h.PacketNumberLen) {
			return false, io.EOF
		}
		if err := h.readPacketNumber(data[pos:]); err != nil {
			return false, err
		}
		pos += int(h.PacketNumberLen)
	}
	h.parsedLen = protocol.ByteCount(pos)
	if h.Type == protocol.PacketTypeRetry {
		return true, nil
	}
	return h.typeByte&0xc == 0, nil
}

func (h *ExtendedHeader) readPacketNumber(data []byte) error {
	switch h.PacketNumberLen {
	case protocol.PacketNumberLen1:
		h.PacketNumber = protocol.PacketNumber(data[0])
	case protocol.PacketNumberLen2:
		h.PacketNumber = protocol.PacketNumber(utils.BigEndian.Uint16(data[:2]))
	case protocol.PacketNumberLen3:
		h.PacketNumber = protocol.PacketNumber(utils.BigEndian.Uint24(data[:3]))
	case protocol.PacketNumberLen4:
		h.PacketNumber = protocol.PacketNumber(utils.BigEndian.Uint32(data[:4]))
	default:
		return ErrInvalidPacketNumberLen
	}
	return nil
}

// ParsedLen returns the number of bytes that were consumed when parsing the header
func (h *ExtendedHeader) ParsedLen() protocol.ByteCount {
	return h.parsedLen
}

// Append serializes the header.
func (h *ExtendedHeader) Append(b []byte, v protocol.Version) ([]byte, error) {
	if h.DestConnectionID.Len() > protocol.MaxConnIDLen {
		return nil, fmt.Errorf("invalid connection ID length: %d bytes", h.DestConnectionID.Len())
	}
	if h.SrcConnectionID.Len() > protocol.MaxConnIDLen {
		return nil, fmt.Errorf("invalid connection ID length: %d bytes", h.SrcConnectionID.Len())
	}

	var packetType uint8
	//nolint:exhaustive
	switch h.Type {
	case protocol.PacketTypeInitial:
		packetType = 0b00
	case protocol.PacketType0RTT:
		packetType = 0b01
	case protocol.PacketTypeHandshake:
		packetType = 0b10
	case protocol.PacketTypeRetry:
		packetType = 0b11
	default:
		return nil, fmt.Errorf("invalid packet type: %s", h.Type)
	}
	firstByte := 0xc0 | packetType<<4
	if h.Type != protocol.PacketTypeRetry {
		// Retry packets don't have a packet number
		firstByte |= uint8(h.PacketNumberLen - 1)
	}

	b = append(b, firstByte)
	b = utils.BigEndian.AppendUint32(b, uint32(h.Version))
	b = append(b, uint8(h.DestConnectionID.Len()))
	b = append(b, h.DestConnectionID.Bytes()...)
	b = append(b, uint8(h.SrcConnectionID.Len()))
	b = append(b, h.SrcConnectionID.Bytes()...)

	//nolint:exhaustive
	switch h.Type {
	case protocol.PacketTypeRetry:
		b = append(b, h.Token...)
		return b, nil
	case protocol.PacketTypeInitial:
		b = quicvarint.Append(b, uint64(len(h.Token)))
		b = append(b, h.Token...)
	}
	b = quicvarint.AppendWithLen(b, uint64(h.Length), 2)
	return appendPacketNumber(b, h.PacketNumber, h.PacketNumberLen)
}

// GetLength determines the length of the Header.
func (h *ExtendedHeader) GetLength(_ protocol.Version) protocol.ByteCount {
	length := 1 /* type byte */ + 4 /* version */ +
		1 /* dest conn ID len */ + protocol.ByteCount(h.DestConnectionID.Len()) +
		1 /* src conn ID len */ + protocol.ByteCount(h.SrcConnectionID.Len())
	if h.Type == protocol.PacketTypeRetry {
		return length + protocol.ByteCount(len(h.Token))
	}
	if h.Type == protocol.PacketTypeInitial {
		length += protocol.ByteCount(quicvarint.Len(uint64(len(h.Token)))) + protocol.ByteCount(len(h.Token))
	}
	length += 2 // length field is always encoded in 2 bytes
	length += protocol.ByteCount(h.PacketNumberLen)
	return length
}

// Log logs the Header
func (h *ExtendedHeader) Log(logger utils.Logger) {
	var token string
	if h.Type == protocol.PacketTypeInitial || h.Type == protocol.PacketTypeRetry {
		if len(h.Token) == 0 {
			token = "Token: (empty), "
		} else {
			token = fmt.Sprintf("Token: %#x, ", h.Token)
		}
		if h.Type == protocol.PacketTypeRetry {
			logger.Debugf("\tLong Header{Type: %s, DestConnectionID: %s, SrcConnectionID: %s, %sVersion: %s}", h.Type, h.DestConnectionID, h.SrcConnectionID, token, h.Version)
			return
		}
	}
	logger.Debugf("\tLong Header{Type: %s, DestConnectionID: %s, SrcConnectionID: %s, %sPacketNumber: %d, PacketNumberLen: %d, Length: %d, Version: %s}", h.Type, h.DestConnectionID, h.SrcConnectionID, token, h.PacketNumber, h.PacketNumberLen, h.Length, h.Version)
}

func appendPacketNumber(b []byte, pn protocol.PacketNumber, pnLen protocol.PacketNumberLen) ([]byte, error) {
	switch pnLen {
	case protocol.PacketNumberLen1:
		b = append(b, uint8(pn))
	case protocol.PacketNumberLen2:
		b = utils.BigEndian.AppendUint16(b, uint16(pn))
	case protocol.PacketNumberLen3:
		b = utils.BigEndian.AppendUint24(b, uint32(pn))
	case protocol.PacketNumberLen4:
		b = utils.BigEndian.AppendUint32(b, uint32(pn))
	default:
		return nil, ErrInvalidPacketNumberLen
	}
	return b, nil
}
