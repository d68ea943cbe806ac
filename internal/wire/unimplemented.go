package wire

import "github.com/quic-go/quicwire/internal/protocol"

// An UnimplementedFrame stands in for a frame type that RFC 9000 defines,
// but for which this codec has neither an encoder nor a decoder
// (the CRYPTO, flow control, connection ID and CONNECTION_CLOSE families).
// Encoding one fails with ErrNotImplemented instead of silently writing
// nothing, which would corrupt the framing for the receiver.
type UnimplementedFrame struct {
	FrameType FrameType
}

func (f *UnimplementedFrame) Append(b []byte, _ protocol.Version) ([]byte, error) {
	return b, ErrNotImplemented
}

// Length of a written frame. Nothing can be written, so there's no length to report.
func (f *UnimplementedFrame) Length(_ protocol.Version) protocol.ByteCount {
	return 0
}
