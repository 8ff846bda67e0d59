package pdu

import "fmt"

// ReadBitsRequest asks a remote unit for count single-bit values starting at
// Address. The same 4-byte body serves Read Coils and Read Discrete Inputs;
// the two operations differ only in the function code carried alongside.
//
// Count is not range-checked at construction or decode time. Execute applies
// the [1,MaxReadBits] bound when the request runs.
type ReadBitsRequest struct {
	function FunctionCode
	Address  uint16
	Count    uint16
}

// NewReadCoilsRequest builds a function code 1 request: read count coils
// (writable outputs) starting at address. Coils are addressed from zero.
func NewReadCoilsRequest(address, count uint16) *ReadBitsRequest {
	return &ReadBitsRequest{FunctionReadCoils, address, count}
}

// NewReadDiscreteInputsRequest builds a function code 2 request: read count
// discrete inputs (read-only) starting at address. Inputs are addressed from
// zero.
func NewReadDiscreteInputsRequest(address, count uint16) *ReadBitsRequest {
	return &ReadBitsRequest{FunctionReadDiscreteInputs, address, count}
}

// Function returns the function code this request was built for.
func (r *ReadBitsRequest) Function() FunctionCode {
	return r.function
}

// Encode produces the 4-byte big-endian request body: start address then
// quantity.
func (r *ReadBitsRequest) Encode() []byte {
	p := dataBuilder{}
	p.word(r.Address)
	p.word(r.Count)
	return p.payload()
}

// Decode populates the request from a body. It fails with a *FrameError
// unless the body is exactly 4 bytes; it performs no range validation.
func (r *ReadBitsRequest) Decode(data []byte) error {
	req := getReader(data)
	if err := req.canRead(4); err != nil {
		return err
	}
	r.Address, _ = req.word()
	r.Count, _ = req.word()
	return req.remaining()
}

// Execute runs the request against a data store and returns the response to
// put on the wire. Protocol violations come back as *ExceptionResponse
// values; Execute never returns a Go error.
func (r *ReadBitsRequest) Execute(store DataStore) Response {
	if r.Count < 1 || r.Count > MaxReadBits {
		return &ExceptionResponse{r.function, ExceptionIllegalDataValue}
	}
	if !store.Validate(r.function, r.Address, r.Count) {
		return &ExceptionResponse{r.function, ExceptionIllegalDataAddress}
	}
	bits := store.GetValues(r.function, r.Address, r.Count)
	return &ReadBitsResponse{function: r.function, Bits: bits}
}

func (r ReadBitsRequest) String() string {
	return fmt.Sprintf("ReadBitsRequest function 0x%02x from %05d count %v", uint8(r.function), r.Address, r.Count)
}
