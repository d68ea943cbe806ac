package qlog

import (
	"bytes"
	"encoding/json"
	"io"
	"testing"

	"github.com/quic-go/quicwire/internal/protocol"
	"github.com/quic-go/quicwire/logging"

	"github.com/stretchr/testify/require"
)

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// exportRecords closes the tracer and decodes the JSON text sequence
// that was written.
func exportRecords(t *testing.T, tracer *logging.Tracer, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	tracer.Close()
	var records []map[string]interface{}
	for _, r := range bytes.Split(buf.Bytes(), []byte{recordSeparator}) {
		if len(bytes.TrimSpace(r)) == 0 {
			continue
		}
		var decoded map[string]interface{}
		require.NoError(t, json.Unmarshal(r, &decoded))
		records = append(records, decoded)
	}
	return records
}

func eventData(t *testing.T, record map[string]interface{}) map[string]interface{} {
	t.Helper()
	data, ok := record["data"].(map[string]interface{})
	require.True(t, ok)
	return data
}

func TestTraceMetadata(t *testing.T) {
	buf := &bytes.Buffer{}
	tracer := NewTracer(nopWriteCloser{buf})
	records := exportRecords(t, tracer, buf)
	require.Len(t, records, 1)

	hdr := records[0]
	require.Equal(t, "JSON-SEQ", hdr["qlog_format"])
	require.Equal(t, "0.3", hdr["qlog_version"])
	trace, ok := hdr["trace"].(map[string]interface{})
	require.True(t, ok)
	vp, ok := trace["vantage_point"].(map[string]interface{})
	require.True(t, ok)
	require.Equal(t, "transport", vp["type"])
	cf, ok := trace["common_fields"].(map[string]interface{})
	require.True(t, ok)
	require.Equal(t, "relative", cf["time_format"])
	require.Contains(t, cf, "reference_time")
}

func TestTracePacketSent(t *testing.T) {
	buf := &bytes.Buffer{}
	tracer := NewTracer(nopWriteCloser{buf})
	tracer.SentShortHeaderPacket(
		nil,
		&logging.ShortHeader{
			DestConnectionID: protocol.ParseConnectionID([]byte{1, 2, 3, 4}),
			PacketNumber:     1337,
			KeyPhase:         logging.KeyPhaseZero,
		},
		123,
		[]logging.Frame{&logging.PingFrame{}, &logging.PaddingFrame{NumBytes: 10}},
	)
	records := exportRecords(t, tracer, buf)
	require.Len(t, records, 2)

	ev := records[1]
	require.Equal(t, "transport:packet_sent", ev["name"])
	require.Contains(t, ev, "time")
	data := eventData(t, ev)
	header := data["header"].(map[string]interface{})
	require.Equal(t, "1RTT", header["packet_type"])
	require.Equal(t, 1337.0, header["packet_number"])
	raw := data["raw"].(map[string]interface{})
	require.Equal(t, 123.0, raw["length"])
	frames := data["frames"].([]interface{})
	require.Len(t, frames, 2)
	require.Equal(t, "ping", frames[0].(map[string]interface{})["frame_type"])
	require.Equal(t, "padding", frames[1].(map[string]interface{})["frame_type"])
}

func TestTracePacketReceived(t *testing.T) {
	buf := &bytes.Buffer{}
	tracer := NewTracer(nopWriteCloser{buf})
	tracer.ReceivedLongHeaderPacket(
		&logging.ExtendedHeader{
			Header: logging.Header{
				Type:             protocol.PacketTypeInitial,
				DestConnectionID: protocol.ParseConnectionID([]byte{1, 2, 3, 4}),
				SrcConnectionID:  protocol.ParseConnectionID([]byte{5, 6, 7, 8}),
				Version:          protocol.Version1,
			},
			PacketNumber: 42,
		},
		789,
		[]logging.Frame{&logging.StreamFrame{StreamID: 4, Data: []byte("foobar")}},
	)
	records := exportRecords(t, tracer, buf)
	require.Len(t, records, 2)

	ev := records[1]
	require.Equal(t, "transport:packet_received", ev["name"])
	data := eventData(t, ev)
	header := data["header"].(map[string]interface{})
	require.Equal(t, "initial", header["packet_type"])
	require.Equal(t, 42.0, header["packet_number"])
	frames := data["frames"].([]interface{})
	require.Len(t, frames, 1)
	require.Equal(t, "stream", frames[0].(map[string]interface{})["frame_type"])
}

func TestTraceVersionNegotiationReceived(t *testing.T) {
	buf := &bytes.Buffer{}
	tracer := NewTracer(nopWriteCloser{buf})
	tracer.ReceivedVersionNegotiationPacket(
		logging.ArbitraryLenConnectionID{1, 2, 3, 4},
		logging.ArbitraryLenConnectionID{5, 6, 7, 8},
		[]logging.Version{0xdeadbeef, protocol.Version1},
	)
	records := exportRecords(t, tracer, buf)
	require.Len(t, records, 2)

	ev := records[1]
	require.Equal(t, "transport:packet_received", ev["name"])
	data := eventData(t, ev)
	header := data["header"].(map[string]interface{})
	require.Equal(t, "version_negotiation", header["packet_type"])
	require.Equal(t, "01020304", header["dcid"])
	require.Equal(t, []interface{}{"deadbeef", "1"}, data["supported_versions"])
}

func TestTracePacketDropped(t *testing.T) {
	buf := &bytes.Buffer{}
	tracer := NewTracer(nopWriteCloser{buf})
	tracer.DroppedPacket(logging.PacketTypeInitial, 100, logging.PacketDropHeaderParseError)
	records := exportRecords(t, tracer, buf)
	require.Len(t, records, 2)

	ev := records[1]
	require.Equal(t, "transport:packet_dropped", ev["name"])
	data := eventData(t, ev)
	require.Equal(t, "initial", data["packet_type"])
	require.Equal(t, "header_parse_error", data["trigger"])
}

func TestTraceBufferedPacket(t *testing.T) {
	buf := &bytes.Buffer{}
	tracer := NewTracer(nopWriteCloser{buf})
	tracer.BufferedPacket(logging.PacketTypeHandshake, 1337)
	records := exportRecords(t, tracer, buf)
	require.Len(t, records, 2)

	ev := records[1]
	require.Equal(t, "transport:packet_buffered", ev["name"])
	data := eventData(t, ev)
	require.Equal(t, "handshake", data["packet_type"])
	require.Equal(t, "keys_unavailable", data["trigger"])
}

func TestTraceDebugEvent(t *testing.T) {
	buf := &bytes.Buffer{}
	tracer := NewTracer(nopWriteCloser{buf})
	tracer.Debug("custom_event", "custom details")
	records := exportRecords(t, tracer, buf)
	require.Len(t, records, 2)

	ev := records[1]
	require.Equal(t, "transport:custom_event", ev["name"])
	data := eventData(t, ev)
	require.Equal(t, "custom details", data["details"])
}
