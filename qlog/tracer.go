package qlog

import (
	"io"
	"net"
	"time"

	"github.com/quic-go/quicwire/logging"
)

// NewTracer records a qlog of all packet-level events to w.
// The qlog is written as a JSON Text Sequence (RFC 7464).
// Close the tracer to flush and close w.
func NewTracer(w io.WriteCloser) *logging.Tracer {
	tr := &trace{
		VantagePoint: vantagePoint{Type: "transport"},
		CommonFields: commonFields{ReferenceTime: time.Now()},
	}
	wr := newWriter(w, tr)
	go wr.Run()
	return &logging.Tracer{
		SentPacket: func(_ net.Addr, hdr *logging.ExtendedHeader, size logging.ByteCount, packetFrames []logging.Frame) {
			fs := make([]frame, 0, len(packetFrames))
			for _, f := range packetFrames {
				fs = append(fs, frame{Frame: f})
			}
			wr.RecordEvent(time.Now(), eventPacketSent{
				Header: *transformExtendedHeader(hdr),
				Length: size,
				Frames: fs,
			})
		},
		SentShortHeaderPacket: func(_ net.Addr, hdr *logging.ShortHeader, size logging.ByteCount, packetFrames []logging.Frame) {
			fs := make([]frame, 0, len(packetFrames))
			for _, f := range packetFrames {
				fs = append(fs, frame{Frame: f})
			}
			wr.RecordEvent(time.Now(), eventPacketSent{
				Header: *transformShortHeader(hdr),
				Length: size,
				Frames: fs,
			})
		},
		SentVersionNegotiationPacket: func(_ net.Addr, dest, src logging.ArbitraryLenConnectionID, vers []logging.Version) {
			ver := make(versions, len(vers))
			for i, v := range vers {
				ver[i] = versionNumber(v)
			}
			wr.RecordEvent(time.Now(), eventVersionNegotiationSent{
				Header: packetHeaderVersionNegotiation{
					SrcConnectionID:  src,
					DestConnectionID: dest,
				},
				SupportedVersions: ver,
			})
		},
		ReceivedLongHeaderPacket: func(hdr *logging.ExtendedHeader, size logging.ByteCount, packetFrames []logging.Frame) {
			fs := make([]frame, 0, len(packetFrames))
			for _, f := range packetFrames {
				fs = append(fs, frame{Frame: f})
			}
			wr.RecordEvent(time.Now(), eventPacketReceived{
				Header: *transformExtendedHeader(hdr),
				Length: size,
				Frames: fs,
			})
		},
		ReceivedShortHeaderPacket: func(hdr *logging.ShortHeader, size logging.ByteCount, packetFrames []logging.Frame) {
			fs := make([]frame, 0, len(packetFrames))
			for _, f := range packetFrames {
				fs = append(fs, frame{Frame: f})
			}
			wr.RecordEvent(time.Now(), eventPacketReceived{
				Header: *transformShortHeader(hdr),
				Length: size,
				Frames: fs,
			})
		},
		ReceivedVersionNegotiationPacket: func(dest, src logging.ArbitraryLenConnectionID, vers []logging.Version) {
			ver := make(versions, len(vers))
			for i, v := range vers {
				ver[i] = versionNumber(v)
			}
			wr.RecordEvent(time.Now(), eventVersionNegotiationReceived{
				Header: packetHeaderVersionNegotiation{
					SrcConnectionID:  src,
					DestConnectionID: dest,
				},
				SupportedVersions: ver,
			})
		},
		BufferedPacket: func(typ logging.PacketType, size logging.ByteCount) {
			wr.RecordEvent(time.Now(), eventPacketBuffered{
				PacketType: packetType(typ),
				PacketSize: size,
			})
		},
		DroppedPacket: func(typ logging.PacketType, size logging.ByteCount, reason logging.PacketDropReason) {
			wr.RecordEvent(time.Now(), eventPacketDropped{
				PacketType: packetType(typ),
				PacketSize: size,
				Trigger:    packetDropReason(reason),
			})
		},
		Debug: func(name, msg string) {
			wr.RecordEvent(time.Now(), eventGeneric{
				name: name,
				msg:  msg,
			})
		},
		Close: func() { wr.Close() },
	}
}
