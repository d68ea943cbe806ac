package logging

import "net"

// A Tracer traces packet-level events.
// All fields are optional; a nil callback is simply skipped.
type Tracer struct {
	SentPacket                       func(dest net.Addr, hdr *ExtendedHeader, size ByteCount, frames []Frame)
	SentShortHeaderPacket            func(dest net.Addr, hdr *ShortHeader, size ByteCount, frames []Frame)
	SentVersionNegotiationPacket     func(dest net.Addr, destConnID, srcConnID ArbitraryLenConnectionID, versions []Version)
	ReceivedLongHeaderPacket         func(hdr *ExtendedHeader, size ByteCount, frames []Frame)
	ReceivedShortHeaderPacket        func(hdr *ShortHeader, size ByteCount, frames []Frame)
	ReceivedVersionNegotiationPacket func(destConnID, srcConnID ArbitraryLenConnectionID, versions []Version)
	BufferedPacket                   func(typ PacketType, size ByteCount)
	DroppedPacket                    func(typ PacketType, size ByteCount, reason PacketDropReason)
	Debug                            func(name, msg string)
	Close                            func()
}

// NewMultiplexedTracer creates a new tracer that multiplexes events to multiple tracers.
func NewMultiplexedTracer(tracers ...*Tracer) *Tracer {
	if len(tracers) == 0 {
		return nil
	}
	if len(tracers) == 1 {
		return tracers[0]
	}
	return &Tracer{
		SentPacket: func(dest net.Addr, hdr *ExtendedHeader, size ByteCount, frames []Frame) {
			for _, t := range tracers {
				if t.SentPacket != nil {
					t.SentPacket(dest, hdr, size, frames)
				}
			}
		},
		SentShortHeaderPacket: func(dest net.Addr, hdr *ShortHeader, size ByteCount, frames []Frame) {
			for _, t := range tracers {
				if t.SentShortHeaderPacket != nil {
					t.SentShortHeaderPacket(dest, hdr, size, frames)
				}
			}
		},
		SentVersionNegotiationPacket: func(dest net.Addr, destConnID, srcConnID ArbitraryLenConnectionID, versions []Version) {
			for _, t := range tracers {
				if t.SentVersionNegotiationPacket != nil {
					t.SentVersionNegotiationPacket(dest, destConnID, srcConnID, versions)
				}
			}
		},
		ReceivedLongHeaderPacket: func(hdr *ExtendedHeader, size ByteCount, frames []Frame) {
			for _, t := range tracers {
				if t.ReceivedLongHeaderPacket != nil {
					t.ReceivedLongHeaderPacket(hdr, size, frames)
				}
			}
		},
		ReceivedShortHeaderPacket: func(hdr *ShortHeader, size ByteCount, frames []Frame) {
			for _, t := range tracers {
				if t.ReceivedShortHeaderPacket != nil {
					t.ReceivedShortHeaderPacket(hdr, size, frames)
				}
			}
		},
		ReceivedVersionNegotiationPacket: func(destConnID, srcConnID ArbitraryLenConnectionID, versions []Version) {
			for _, t := range tracers {
				if t.ReceivedVersionNegotiationPacket != nil {
					t.ReceivedVersionNegotiationPacket(destConnID, srcConnID, versions)
				}
			}
		},
		BufferedPacket: func(typ PacketType, size ByteCount) {
			for _, t := range tracers {
				if t.BufferedPacket != nil {
					t.BufferedPacket(typ, size)
				}
			}
		},
		DroppedPacket: func(typ PacketType, size ByteCount, reason PacketDropReason) {
			for _, t := range tracers {
				if t.DroppedPacket != nil {
					t.DroppedPacket(typ, size, reason)
				}
			}
		},
		Debug: func(name, msg string) {
			for _, t := range tracers {
				if t.Debug != nil {
					t.Debug(name, msg)
				}
			}
		},
		Close: func() {
			for _, t := range tracers {
				if t.Close != nil {
					t.Close()
				}
			}
		},
	}
}
