// Package qerr contains the error types that cross the codec's public boundary.
package qerr

import "fmt"

// A TransportError is a QUIC transport error, as defined by RFC 9000.
// The codec wraps parse failures in a TransportError so that the connection
// layer can close with the correct error code.
type TransportError struct {
	FrameType    uint64
	ErrorCode    TransportErrorCode
	ErrorMessage string
	// underlying error, if any
	err error
}

var _ error = &TransportError{}

// NewLocalTransportError creates a new TransportError wrapping err.
func NewLocalTransportError(code TransportErrorCode, frameType uint64, err error) *TransportError {
	return &TransportError{
		FrameType: frameType,
		ErrorCode: code,
		err:       err,
	}
}

func (e *TransportError) Error() string {
	str := e.ErrorCode.String()
	if e.FrameType != 0 {
		str += fmt.Sprintf(" (frame type: %#x)", e.FrameType)
	}
	msg := e.ErrorMessage
	if len(msg) == 0 && e.err != nil {
		msg = e.err.Error()
	}
	if len(msg) == 0 {
		return str
	}
	return str + ": " + msg
}

func (e *TransportError) Is(target error) bool {
	t, ok := target.(*TransportError)
	return ok && e.ErrorCode == t.ErrorCode
}

func (e *TransportError) Unwrap() error { return e.err }
