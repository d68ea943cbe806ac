package wire

import "github.com/quic-go/quicwire/internal/protocol"

// A PaddingFrame represents a run of consecutive PADDING frames.
// Every PADDING frame occupies a single zero byte on the wire; the parser
// coalesces a run into one PaddingFrame so that a packet round-trips into the
// same frame sequence it was built from.
type PaddingFrame struct {
	NumBytes int
}

func (f *PaddingFrame) Append(b []byte, _ protocol.Version) ([]byte, error) {
	return append(b, make([]byte, f.NumBytes)...), nil
}

// Length of a written frame
func (f *PaddingFrame) Length(_ protocol.Version) protocol.ByteCount {
	return protocol.ByteCount(f.NumBytes)
}
