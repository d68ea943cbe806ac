package metrics

import (
	"errors"
	"net"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/quic-go/quicwire/logging"
)

const metricNamespace = "quicwire"

var (
	packetsSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "packets_sent_total",
			Help:      "Packets Sent",
		},
		[]string{"packet_type"},
	)
	bytesSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "sent_bytes_total",
			Help:      "Bytes Sent",
		},
		[]string{"packet_type"},
	)
	packetsReceived = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "packets_received_total",
			Help:      "Packets Received",
		},
		[]string{"packet_type"},
	)
	bytesReceived = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "received_bytes_total",
			Help:      "Bytes Received",
		},
		[]string{"packet_type"},
	)
	packetsBuffered = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "packets_buffered_total",
			Help:      "Packets Buffered",
		},
		[]string{"packet_type"},
	)
	packetsDropped = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "packets_dropped_total",
			Help:      "Packets Dropped",
		},
		[]string{"packet_type", "reason"},
	)
)

// NewTracer creates a new tracer using the default Prometheus registerer.
func NewTracer() *logging.Tracer {
	return NewTracerWithRegisterer(prometheus.DefaultRegisterer)
}

// NewTracerWithRegisterer creates a new tracer using a given Prometheus registerer.
func NewTracerWithRegisterer(registerer prometheus.Registerer) *logging.Tracer {
	for _, c := range [...]prometheus.Collector{
		packetsSent,
		bytesSent,
		packetsReceived,
		bytesReceived,
		packetsBuffered,
		packetsDropped,
	} {
		if err := registerer.Register(c); err != nil {
			if ok := errors.As(err, &prometheus.AlreadyRegisteredError{}); !ok {
				panic(err)
			}
		}
	}

	countPacket := func(packets, bytes *prometheus.CounterVec, typ packetType, size logging.ByteCount) {
		tags := getStringSlice()
		defer putStringSlice(tags)

		*tags = append(*tags, typ.String())
		packets.WithLabelValues(*tags...).Inc()
		bytes.WithLabelValues(*tags...).Add(float64(size))
	}

	return &logging.Tracer{
		SentPacket: func(_ net.Addr, hdr *logging.ExtendedHeader, size logging.ByteCount, _ []logging.Frame) {
			countPacket(packetsSent, bytesSent, packetType(logging.PacketTypeFromHeader(&hdr.Header)), size)
		},
		SentShortHeaderPacket: func(_ net.Addr, _ *logging.ShortHeader, size logging.ByteCount, _ []logging.Frame) {
			countPacket(packetsSent, bytesSent, packetType(logging.PacketType1RTT), size)
		},
		SentVersionNegotiationPacket: func(_ net.Addr, _, _ logging.ArbitraryLenConnectionID, _ []logging.Version) {
			packetsSent.WithLabelValues(packetType(logging.PacketTypeVersionNegotiation).String()).Inc()
		},
		ReceivedLongHeaderPacket: func(hdr *logging.ExtendedHeader, size logging.ByteCount, _ []logging.Frame) {
			countPacket(packetsReceived, bytesReceived, packetType(logging.PacketTypeFromHeader(&hdr.Header)), size)
		},
		ReceivedShortHeaderPacket: func(_ *logging.ShortHeader, size logging.ByteCount, _ []logging.Frame) {
			countPacket(packetsReceived, bytesReceived, packetType(logging.PacketType1RTT), size)
		},
		ReceivedVersionNegotiationPacket: func(_, _ logging.ArbitraryLenConnectionID, _ []logging.Version) {
			packetsReceived.WithLabelValues(packetType(logging.PacketTypeVersionNegotiation).String()).Inc()
		},
		BufferedPacket: func(typ logging.PacketType, _ logging.ByteCount) {
			packetsBuffered.WithLabelValues(packetType(typ).String()).Inc()
		},
		DroppedPacket: func(typ logging.PacketType, _ logging.ByteCount, reason logging.PacketDropReason) {
			tags := getStringSlice()
			defer putStringSlice(tags)

			var dropReason string
			switch reason {
			case logging.PacketDropHeaderParseError:
				dropReason = "header_parsing"
			case logging.PacketDropPayloadDecryptError:
				dropReason = "payload_decrypt"
			case logging.PacketDropUnsupportedVersion:
				dropReason = "unsupported_version"
			case logging.PacketDropUnexpectedPacket:
				dropReason = "unexpected_packet"
			case logging.PacketDropFrameParseError:
				dropReason = "frame_parsing"
			case logging.PacketDropDuplicate:
				dropReason = "duplicate"
			default:
				dropReason = "unknown"
			}

			*tags = append(*tags, packetType(typ).String())
			*tags = append(*tags, dropReason)
			packetsDropped.WithLabelValues(*tags...).Inc()
		},
	}
}
