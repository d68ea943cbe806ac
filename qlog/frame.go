package qlog

import (
	"github.com/francoispqt/gojay"

	"github.com/quic-go/quicwire/logging"
)

type frame struct {
	Frame logging.Frame
}

var _ gojay.MarshalerJSONObject = frame{}

var _ gojay.MarshalerJSONArray = frames{}

func (f frame) MarshalJSONObject(enc *gojay.Encoder) {
	switch fr := f.Frame.(type) {
	case *logging.PingFrame:
		marshalPingFrame(enc, fr)
	case *logging.AckFrame:
		marshalAckFrame(enc, fr)
	case *logging.StreamFrame:
		marshalStreamFrame(enc, fr)
	case *logging.PaddingFrame:
		marshalPaddingFrame(enc, fr)
	case *logging.UnimplementedFrame:
		marshalUnimplementedFrame(enc, fr)
	default:
		enc.StringKey("frame_type", "unknown")
	}
}

func (f frame) IsNil() bool { return false }

type frames []frame

func (fs frames) IsNil() bool { return fs == nil }
func (fs frames) MarshalJSONArray(enc *gojay.Encoder) {
	for _, f := range fs {
		enc.Object(f)
	}
}

func marshalPingFrame(enc *gojay.Encoder, _ *logging.PingFrame) {
	enc.StringKey("frame_type", "ping")
}

type ackRanges []logging.AckRange

func (ars ackRanges) IsNil() bool { return false }
func (ars ackRanges) MarshalJSONArray(enc *gojay.Encoder) {
	for _, r := range ars {
		enc.Array(ackRange(r))
	}
}

type ackRange logging.AckRange

func (ar ackRange) IsNil() bool { return false }
func (ar ackRange) MarshalJSONArray(enc *gojay.Encoder) {
	enc.Int64(int64(ar.Smallest))
	if ar.Smallest != ar.Largest {
		enc.Int64(int64(ar.Largest))
	}
}

func marshalAckFrame(enc *gojay.Encoder, f *logging.AckFrame) {
	enc.StringKey("frame_type", "ack")
	enc.FloatKeyOmitEmpty("ack_delay", milliseconds(f.DelayTime))
	enc.ArrayKey("acked_ranges", ackRanges(f.AckRanges))
	if hasECN := f.ECT0 > 0 || f.ECT1 > 0 || f.ECNCE > 0; hasECN {
		enc.Uint64Key("ect0", f.ECT0)
		enc.Uint64Key("ect1", f.ECT1)
		enc.Uint64Key("ce", f.ECNCE)
	}
}

func marshalStreamFrame(enc *gojay.Encoder, f *logging.StreamFrame) {
	enc.StringKey("frame_type", "stream")
	enc.Int64Key("stream_id", int64(f.StreamID))
	enc.Int64Key("offset", int64(f.Offset))
	enc.Int64Key("length", int64(f.DataLen()))
	enc.BoolKeyOmitEmpty("fin", f.Fin)
}

func marshalPaddingFrame(enc *gojay.Encoder, f *logging.PaddingFrame) {
	enc.StringKey("frame_type", "padding")
	enc.Int64KeyOmitEmpty("payload_length", int64(f.NumBytes))
}

func marshalUnimplementedFrame(enc *gojay.Encoder, f *logging.UnimplementedFrame) {
	enc.StringKey("frame_type", "unknown")
	enc.Uint64Key("raw_frame_type", uint64(f.FrameType))
}
