package wire

import "fmt"

type FrameType uint8

// The constants need to match the ones from RFC 9000.
// This allows us to easily convert a FrameType into the corresponding byte.
const (
	PaddingFrameType     FrameType = 0x0
	PingFrameType        FrameType = 0x1
	AckFrameType         FrameType = 0x2
	AckECNFrameType      FrameType = 0x3
	ResetStreamFrameType FrameType = 0x4
	StopSendingFrameType FrameType = 0x5
	CryptoFrameType      FrameType = 0x6
	NewTokenFrameType    FrameType = 0x7

	// The 8 STREAM frame types (0x8 to 0xf) carry the OFF, LEN and FIN flags
	// in their lower 3 bits, see IsStreamFrameType.

	MaxDataFrameType            FrameType = 0x10
	MaxStreamDataFrameType      FrameType = 0x11
	BidiMaxStreamsFrameType     FrameType = 0x12
	UniMaxStreamsFrameType      FrameType = 0x13
	DataBlockedFrameType        FrameType = 0x14
	StreamDataBlockedFrameType  FrameType = 0x15
	BidiStreamBlockedFrameType  FrameType = 0x16
	UniStreamBlockedFrameType   FrameType = 0x17
	NewConnectionIDFrameType    FrameType = 0x18
	RetireConnectionIDFrameType FrameType = 0x19
	PathChallengeFrameType      FrameType = 0x1a
	PathResponseFrameType       FrameType = 0x1b
	ConnectionCloseFrameType    FrameType = 0x1c
	ApplicationCloseFrameType   FrameType = 0x1d
	HandshakeDoneFrameType      FrameType = 0x1e
)

// NewFrameType validates a frame type read off the wire.
// The second return value says if the type is defined by RFC 9000 at all.
func NewFrameType(typ uint64) (FrameType, bool) {
	if typ&^0xff == 0 && byte(typ)&0xf8 == 0x8 {
		return FrameType(typ), true
	}
	if typ <= uint64(NewTokenFrameType) {
		return FrameType(typ), true
	}
	if typ >= uint64(MaxDataFrameType) && typ <= uint64(HandshakeDoneFrameType) {
		return FrameType(typ), true
	}
	return 0, false
}

// IsStreamFrameType says if the type is one of the 8 STREAM frame types.
func (t FrameType) IsStreamFrameType() bool {
	return byte(t)&0xf8 == 0x8
}

// IsAckFrameType says if the type is an ACK or ACK_ECN frame.
func (t FrameType) IsAckFrameType() bool {
	return t == AckFrameType || t == AckECNFrameType
}

func (t FrameType) String() string {
	switch t {
	case PaddingFrameType:
		return "PADDING"
	case PingFrameType:
		return "PING"
	case AckFrameType:
		return "ACK"
	case AckECNFrameType:
		return "ACK_ECN"
	case ResetStreamFrameType:
		return "RESET_STREAM"
	case StopSendingFrameType:
		return "STOP_SENDING"
	case CryptoFrameType:
		return "CRYPTO"
	case NewTokenFrameType:
		return "NEW_TOKEN"
	case MaxDataFrameType:
		return "MAX_DATA"
	case MaxStreamDataFrameType:
		return "MAX_STREAM_DATA"
	case BidiMaxStreamsFrameType, UniMaxStreamsFrameType:
		return "MAX_STREAMS"
	case DataBlockedFrameType:
		return "DATA_BLOCKED"
	case StreamDataBlockedFrameType:
		return "STREAM_DATA_BLOCKED"
	case BidiStreamBlockedFrameType, UniStreamBlockedFrameType:
		return "STREAMS_BLOCKED"
	case NewConnectionIDFrameType:
		return "NEW_CONNECTION_ID"
	case RetireConnectionIDFrameType:
		return "RETIRE_CONNECTION_ID"
	case PathChallengeFrameType:
		return "PATH_CHALLENGE"
	case PathResponseFrameType:
		return "PATH_RESPONSE"
	case ConnectionCloseFrameType, ApplicationCloseFrameType:
		return "CONNECTION_CLOSE"
	case HandshakeDoneFrameType:
		return "HANDSHAKE_DONE"
	default:
		if t.IsStreamFrameType() {
			return "STREAM"
		}
		return fmt.Sprintf("unknown frame type: %#x", uint8(t))
	}
}
