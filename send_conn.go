package quicwire

import (
	"net"

	"github.com/quic-go/quicwire/internal/protocol"
	"github.com/quic-go/quicwire/internal/utils"
	"github.com/quic-go/quicwire/internal/wire"
	"github.com/quic-go/quicwire/logging"
)

// A SendConn allows sending using a simple Write() on a non-connected packet conn.
type SendConn interface {
	Write(b []byte) error
	Close() error
	LocalAddr() net.Addr
	RemoteAddr() net.Addr
}

type sconn struct {
	net.PacketConn

	remoteAddr net.Addr
	logger     utils.Logger
}

var _ SendConn = &sconn{}

// NewSendConn wraps a net.PacketConn for sending datagrams to a single remote address.
func NewSendConn(c net.PacketConn, remote net.Addr, logger utils.Logger) SendConn {
	return &sconn{
		PacketConn: c,
		remoteAddr: remote,
		logger:     logger,
	}
}

func (c *sconn) Write(p []byte) error {
	n, err := c.WriteTo(p, c.remoteAddr)
	if err != nil {
		return err
	}
	if n < len(p) {
		c.logger.Errorf("short write: wrote %d of %d bytes to %s", n, len(p), c.remoteAddr)
	}
	return nil
}

func (c *sconn) RemoteAddr() net.Addr { return c.remoteAddr }

// SendVersionNegotiationPacket composes a Version Negotiation packet for the
// given connection IDs and sends it on conn.
// The tracer may be nil.
func SendVersionNegotiationPacket(conn SendConn, tracer *logging.Tracer, dest, src protocol.ArbitraryLenConnectionID, versions []protocol.Version) error {
	data := wire.ComposeVersionNegotiation(dest, src, versions)
	if err := conn.Write(data); err != nil {
		return err
	}
	if tracer != nil && tracer.SentVersionNegotiationPacket != nil {
		tracer.SentVersionNegotiationPacket(conn.RemoteAddr(), dest, src, versions)
	}
	return nil
}
