/*
Package pdu implements the protocol data units of the Modbus bit-reading
function family: Read Coils (function code 1) and Read Discrete Inputs
(function code 2). It encodes and decodes the request and response bodies,
and executes decoded requests against a pluggable data store.

The package deals with PDU bodies only. Transport framing (TCP/RTU),
transaction sequencing, unit addressing and checksums belong to the
surrounding layers and are not handled here.

A typical server-side exchange decodes the inbound body, executes it, and
encodes whatever comes back:

	req := pdu.NewReadCoilsRequest(0, 0)
	if err := req.Decode(body); err != nil {
		// corrupted or incompatible byte stream, drop the frame
		return err
	}
	res := req.Execute(store)
	if bits, ok := res.(*pdu.ReadBitsResponse); ok {
		reply(bits.Function(), bits.Encode())
	}

Protocol violations (bad count, unreadable address range) are reported as
*ExceptionResponse values from Execute, never as Go errors. From the peer's
point of view the exchange still completes; only the error bit on the
function code distinguishes the outcome. Hard errors are reserved for
structural decode failures, which surface as *FrameError.

A client-side exchange builds and encodes the request, then decodes the
response body. Decoding keeps the zero padding of the final data byte, so a
client that knows how many values it asked for calls Truncate:

	res := &pdu.ReadBitsResponse{}
	if err := res.Decode(body); err != nil {
		return err
	}
	res.Truncate(req.Count)

Individual values on a built response are plain indexes into the Bits slice.
*/
package pdu

// FunctionCode identifies the operation a PDU body belongs to.
type FunctionCode uint8

// Function code constants for the bit-reading family.
const (
	// FunctionReadCoils reads writable single-bit outputs.
	FunctionReadCoils FunctionCode = 1
	// FunctionReadDiscreteInputs reads read-only single-bit inputs.
	FunctionReadDiscreteInputs FunctionCode = 2

	// FunctionError is the bit set on the function code of exception responses.
	FunctionError FunctionCode = 0x80
)

// MaxReadBits is the most coils or discrete inputs a single request may ask
// for.
const MaxReadBits = 2000

// DataStore is the backing store requests execute against. It is shared by
// every in-flight request; implementations are responsible for their own
// synchronisation. Validate and GetValues are two independent calls, so the
// store may change between them - a store needing a stable view across the
// pair must arrange that itself.
type DataStore interface {
	// Validate reports whether count values starting at address are readable
	// for the given function.
	Validate(function FunctionCode, address uint16, count uint16) bool
	// GetValues returns count values starting at address. It is called only
	// after a successful Validate and must return exactly count values.
	GetValues(function FunctionCode, address uint16, count uint16) []bool
}

// Response is the outcome of executing a request: either a *ReadBitsResponse
// carrying the requested values, or an *ExceptionResponse carrying the
// reason the request was refused.
type Response interface {
	// Function returns the function code the response carries on the wire.
	Function() FunctionCode
}
