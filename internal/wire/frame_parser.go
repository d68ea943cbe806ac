package wire

import (
	"fmt"
	"io"

	"github.com/quic-go/quicwire/internal/protocol"
	"github.com/quic-go/quicwire/internal/qerr"
	"github.com/quic-go/quicwire/quicvarint"
)

// The FrameParser parses QUIC frames, one by one.
type FrameParser struct {
	ackDelayExponent uint8

	// To avoid allocating when parsing, keep a single ACK frame struct.
	// It is used over and over again.
	ackFrame *AckFrame
}

// NewFrameParser creates a new frame parser.
func NewFrameParser() *FrameParser {
	return &FrameParser{
		ackDelayExponent: protocol.DefaultAckDelayExponent,
		ackFrame:         &AckFrame{},
	}
}

// ParseNext parses the next frame.
// It skips nothing: a run of PADDING bytes is returned as a single PaddingFrame.
// It returns a nil frame if data is empty.
// Parse errors are wrapped in a qerr.TransportError carrying the
// FRAME_ENCODING_ERROR code; the underlying error (io.EOF for truncated
// input, ErrNotImplemented, ErrUnknownFrameType) stays reachable with errors.Is.
func (p *FrameParser) ParseNext(data []byte, v protocol.Version) (Frame, int, error) {
	if len(data) == 0 {
		return nil, 0, nil
	}
	if data[0] == 0x0 { // PADDING
		numBytes := 1
		for numBytes < len(data) && data[numBytes] == 0x0 {
			numBytes++
		}
		return &PaddingFrame{NumBytes: numBytes}, numBytes, nil
	}

	typ, l, err := quicvarint.Parse(data)
	if err != nil {
		return nil, 0, qerr.NewLocalTransportError(qerr.FrameEncodingError, 0, replaceUnexpectedEOF(err))
	}
	frame, n, err := p.parseFrame(data[l:], typ, v)
	if err != nil {
		return nil, l + n, qerr.NewLocalTransportError(qerr.FrameEncodingError, typ, replaceUnexpectedEOF(err))
	}
	return frame, l + n, nil
}

func (p *FrameParser) parseFrame(b []byte, typ uint64, v protocol.Version) (Frame, int, error) {
	frameType, ok := NewFrameType(typ)
	if !ok {
		return nil, 0, fmt.Errorf("%w: %#x", ErrUnknownFrameType, typ)
	}

	switch {
	case frameType == PingFrameType:
		return &PingFrame{}, 0, nil
	case frameType.IsAckFrameType():
		p.ackFrame.Reset()
		l, err := parseAckFrame(p.ackFrame, b, frameType, p.ackDelayExponent, v)
		if err != nil {
			return nil, l, err
		}
		return p.ackFrame, l, nil
	case frameType.IsStreamFrameType():
		frame, l, err := parseStreamFrame(b, frameType, v)
		if err != nil {
			return nil, l, err
		}
		return frame, l, nil
	default:
		return nil, 0, fmt.Errorf("%w: %s", ErrNotImplemented, frameType)
	}
}

// SetAckDelayExponent sets the acknowledgment delay exponent (sent in the transport parameters).
// This value is used to scale the ACK Delay field in the ACK frame.
// Values above protocol.MaxAckDelayExponent are invalid and need to be
// rejected during transport parameter validation.
func (p *FrameParser) SetAckDelayExponent(exp uint8) {
	if exp > protocol.MaxAckDelayExponent {
		panic(fmt.Sprintf("invalid ack delay exponent: %d", exp))
	}
	p.ackDelayExponent = exp
}

func replaceUnexpectedEOF(e error) error {
	if e == io.ErrUnexpectedEOF {
		return io.EOF
	}
	return e
}
