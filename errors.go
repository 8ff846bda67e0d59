package pdu

import (
	"fmt"
)

// FrameError indicates a structurally malformed PDU body during decode. It
// is a hard failure for the immediate caller: the byte stream is corrupted
// or incompatible and needs transport-level action (drop/reset). Protocol
// violations are never FrameErrors; those come back as ExceptionResponse
// values from Execute.
type FrameError struct {
	msg string
}

func (err *FrameError) Error() string {
	return err.msg
}

func frameErrorF(format string, args ...interface{}) *FrameError {
	return &FrameError{fmt.Sprintf(format, args...)}
}

// ExceptionCode identifies why a request could not be served.
type ExceptionCode uint8

// Exception code constants. This core only produces IllegalDataAddress and
// IllegalDataValue; the rest exist for callers mapping peer responses.
const (
	ExceptionIllegalFunction     ExceptionCode = 0x01
	ExceptionIllegalDataAddress  ExceptionCode = 0x02
	ExceptionIllegalDataValue    ExceptionCode = 0x03
	ExceptionServerDeviceFailure ExceptionCode = 0x04
	ExceptionAcknowledge         ExceptionCode = 0x05
	ExceptionServerDeviceBusy    ExceptionCode = 0x06
)

// exceptionStrings maps known exception codes to a textual representation.
var exceptionStrings = map[ExceptionCode]string{
	ExceptionIllegalFunction:     "illegal function",
	ExceptionIllegalDataAddress:  "illegal data address",
	ExceptionIllegalDataValue:    "illegal data value",
	ExceptionServerDeviceFailure: "server device failure",
	ExceptionAcknowledge:         "acknowledge",
	ExceptionServerDeviceBusy:    "server device busy",
}

func (ec ExceptionCode) String() string {
	s, ok := exceptionStrings[ec]
	if !ok {
		s = fmt.Sprintf("unknown exception 0x%02x", uint8(ec))
	}
	return s
}

// ExceptionResponse reports a protocol-level failure of a request. It is a
// normal, wire-observable outcome of Execute rather than a Go error: the
// exchange still completes, and the peer tells it apart from a success
// response only by the error bit on the function code. Serialising the
// exception PDU belongs to the transport/framing layer.
type ExceptionResponse struct {
	function FunctionCode
	Code     ExceptionCode
}

// Function returns the request's function code with the error bit set.
func (r *ExceptionResponse) Function() FunctionCode {
	return r.function | FunctionError
}

func (r *ExceptionResponse) String() string {
	return fmt.Sprintf("ExceptionResponse function 0x%02x: %v", uint8(r.Function()), r.Code)
}
