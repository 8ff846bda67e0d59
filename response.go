package pdu

import (
	"fmt"
	"strings"
)

// ReadBitsResponse carries the values read by a bit-reading request, one
// value per position starting at the requested address. On the wire the
// values are packed one per bit, LSB of the first data byte first, behind a
// one-byte count of data bytes.
//
// Individual values are plain indexes into Bits; there are no dedicated
// single-bit accessors.
type ReadBitsResponse struct {
	function FunctionCode
	Bits     []bool
}

// NewReadCoilsResponse builds a function code 1 response carrying the given
// coil values.
func NewReadCoilsResponse(bits []bool) *ReadBitsResponse {
	return &ReadBitsResponse{FunctionReadCoils, bits}
}

// NewReadDiscreteInputsResponse builds a function code 2 response carrying
// the given discrete input values.
func NewReadDiscreteInputsResponse(bits []bool) *ReadBitsResponse {
	return &ReadBitsResponse{FunctionReadDiscreteInputs, bits}
}

// Function returns the function code this response was built for.
func (r *ReadBitsResponse) Function() FunctionCode {
	return r.function
}

// Encode produces the response body: a one-byte count of data bytes,
// ceil(len(Bits)/8), followed by the values packed LSB-first with zero
// padding at the high end of the final byte. More than 2040 values overflow
// the count byte and panic; requests capped at MaxReadBits stay well clear.
func (r *ReadBitsResponse) Encode() []byte {
	p := dataBuilder{}
	p.bits(r.Bits...)
	return p.payload()
}

// Decode populates Bits from a response body: a one-byte count of data
// bytes followed by exactly that many packed bytes, anything else being a
// *FrameError. Every unpacked bit is kept, so len(Bits) is always a multiple
// of 8 and the padding of the final byte stays visible. Callers that know
// the requested count call Truncate.
func (r *ReadBitsResponse) Decode(data []byte) error {
	res := getReader(data)
	packed, err := res.nbytes()
	if err != nil {
		return err
	}
	if err := res.remaining(); err != nil {
		return err
	}
	bits := make([]bool, len(packed)*8)
	for c := range bits {
		bits[c] = packed[c/8]&(1<<(c%8)) != 0
	}
	r.Bits = bits
	return nil
}

// Truncate drops the padding Decode leaves behind, keeping the first count
// values. It does nothing when Bits is already count or fewer.
func (r *ReadBitsResponse) Truncate(count uint16) {
	if int(count) < len(r.Bits) {
		r.Bits = r.Bits[:count]
	}
}

func (r ReadBitsResponse) String() string {
	parts := make([]string, 0, len(r.Bits))
	for i, v := range r.Bits {
		d := '-'
		if v {
			d = '#'
		}
		parts = append(parts, fmt.Sprintf("      %05d: %c\n", i, d))
	}
	return fmt.Sprintf("ReadBitsResponse function 0x%02x count %v\n%v", uint8(r.function), len(r.Bits), strings.Join(parts, ""))
}
