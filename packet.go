package quicwire

import (
	"errors"
	"fmt"

	"github.com/quic-go/quicwire/internal/protocol"
	"github.com/quic-go/quicwire/internal/wire"
	"github.com/quic-go/quicwire/logging"
)

// A Header is the serializable part of a packet that precedes the frames.
// Both *wire.ExtendedHeader and *wire.ShortHeader implement it.
type Header interface {
	GetLength(v protocol.Version) protocol.ByteCount
	Append(b []byte, v protocol.Version) ([]byte, error)
}

var (
	// ErrBufferTooSmall is returned by Serialize when the destination buffer
	// can't hold the whole packet.
	ErrBufferTooSmall = errors.New("buffer too small")
	// ErrPacketReleased is returned when a Packet is used after Release.
	ErrPacketReleased = errors.New("packet already released")
)

// A Packet assembles a header and a sequence of frames for serialization.
// It is not safe for concurrent use.
type Packet struct {
	hdr      Header
	frames   []wire.Frame
	tracer   *logging.Tracer
	released bool
}

// NewPacket creates a packet with the given header and no frames.
// The tracer may be nil.
func NewPacket(hdr Header, tracer *logging.Tracer) *Packet {
	return &Packet{hdr: hdr, tracer: tracer}
}

// Header returns the packet's header.
func (p *Packet) Header() Header { return p.hdr }

// Frames returns the frames appended so far, in append order.
func (p *Packet) Frames() []wire.Frame { return p.frames }

// Append adds a frame to the end of the packet.
func (p *Packet) Append(f wire.Frame) {
	if p.released {
		panic("Append called on a released packet")
	}
	p.frames = append(p.frames, f)
}

// Pad appends a PADDING frame such that the packet serializes to at least
// minSize bytes. Initial packets need to be padded to at least
// protocol.MinInitialPacketSize bytes.
func (p *Packet) Pad(minSize protocol.ByteCount, v protocol.Version) {
	if n := minSize - p.Size(v); n > 0 {
		p.Append(&wire.PaddingFrame{NumBytes: int(n)})
	}
}

// Size returns the number of bytes Serialize will write.
// It is recomputed on every call, since frames can be appended between calls.
func (p *Packet) Size(v protocol.Version) protocol.ByteCount {
	size := p.hdr.GetLength(v)
	for _, f := range p.frames {
		size += f.Length(v)
	}
	return size
}

// Serialize writes the header, then the frames in append order, into buf.
// It returns the number of bytes written.
// If buf can't hold the whole packet, it returns ErrBufferTooSmall without
// writing anything. If a frame fails to serialize, the bytes written up to
// that point remain in buf.
func (p *Packet) Serialize(buf []byte, v protocol.Version) (int, error) {
	if p.released {
		return 0, ErrPacketReleased
	}
	if protocol.ByteCount(len(buf)) < p.Size(v) {
		return 0, ErrBufferTooSmall
	}
	b, err := p.hdr.Append(buf[:0], v)
	if err != nil {
		return len(b), fmt.Errorf("serializing header: %w", err)
	}
	for _, f := range p.frames {
		b, err = f.Append(b, v)
		if err != nil {
			return len(b), fmt.Errorf("serializing frame: %w", err)
		}
	}
	return len(b), nil
}

// WriteTo serializes the packet into a pooled buffer and sends it on conn.
// It returns the size of the datagram written.
func (p *Packet) WriteTo(conn SendConn, v protocol.Version) (int, error) {
	buffer := getPacketBuffer()
	defer buffer.Release()
	n, err := p.Serialize(buffer.Data[:cap(buffer.Data)], v)
	if err != nil {
		return 0, err
	}
	buffer.Data = buffer.Data[:n]
	if err := conn.Write(buffer.Data); err != nil {
		return 0, err
	}
	if p.tracer != nil {
		switch hdr := p.hdr.(type) {
		case *wire.ExtendedHeader:
			if p.tracer.SentPacket != nil {
				p.tracer.SentPacket(conn.RemoteAddr(), hdr, protocol.ByteCount(n), p.frames)
			}
		case *wire.ShortHeader:
			if p.tracer.SentShortHeaderPacket != nil {
				p.tracer.SentShortHeaderPacket(conn.RemoteAddr(), hdr, protocol.ByteCount(n), p.frames)
			}
		}
	}
	return n, nil
}

// Release returns pooled frame storage. The packet can't be serialized
// afterwards. Calling Release more than once is a no-op.
func (p *Packet) Release() {
	if p.released {
		return
	}
	p.released = true
	for _, f := range p.frames {
		if sf, ok := f.(*wire.StreamFrame); ok {
			sf.PutBack()
		}
	}
	p.frames = nil
}
