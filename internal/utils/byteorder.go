package utils

// A ByteOrder converts byte slices to and from 16-, 24- and 32-bit unsigned integers.
// The codec only ever needs the big-endian implementation, but keeping the
// interface makes the packet number width handling explicit at call sites.
type ByteOrder interface {
	Uint32([]byte) uint32
	Uint24([]byte) uint32
	Uint16([]byte) uint16

	AppendUint32(b []byte, v uint32) []byte
	AppendUint24(b []byte, v uint32) []byte
	AppendUint16(b []byte, v uint16) []byte
}

// BigEndian is the big-endian implementation of ByteOrder
var BigEndian ByteOrder = bigEndian{}

type bigEndian struct{}

var _ ByteOrder = &bigEndian{}

func (bigEndian) Uint32(b []byte) uint32 {
	_ = b[3] // bounds check hint to compiler
	return uint32(b[3]) | uint32(b[2])<<8 | uint32(b[1])<<16 | uint32(b[0])<<24
}

func (bigEndian) Uint24(b []byte) uint32 {
	_ = b[2]
	return uint32(b[2]) | uint32(b[1])<<8 | uint32(b[0])<<16
}

func (bigEndian) Uint16(b []byte) uint16 {
	_ = b[1]
	return uint16(b[1]) | uint16(b[0])<<8
}

func (bigEndian) AppendUint32(b []byte, v uint32) []byte {
	return append(b, uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v))
}

func (bigEndian) AppendUint24(b []byte, v uint32) []byte {
	return append(b, uint8(v>>16), uint8(v>>8), uint8(v))
}

func (bigEndian) AppendUint16(b []byte, v uint16) []byte {
	return append(b, uint8(v>>8), uint8(v))
}
