package pdu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestEncodeLayout(t *testing.T) {
	req := NewReadCoilsRequest(0x1234, 0x0564)
	assert.Equal(t, []byte{0x12, 0x34, 0x05, 0x64}, req.Encode())
}

func TestRequestRoundTrip(t *testing.T) {
	cases := []struct {
		address uint16
		count   uint16
	}{
		{0, 1},
		{0, 2000},
		{10, 5},
		{255, 256},
		{65535, 1},
		{65535, 65535},
	}
	for _, tc := range cases {
		body := NewReadCoilsRequest(tc.address, tc.count).Encode()
		require.Len(t, body, 4)

		got := NewReadCoilsRequest(0, 0)
		require.NoError(t, got.Decode(body))
		assert.Equal(t, tc.address, got.Address)
		assert.Equal(t, tc.count, got.Count)
	}
}

func TestRequestDecodeBadLength(t *testing.T) {
	for _, size := range []int{0, 1, 3, 5, 8} {
		req := NewReadCoilsRequest(0, 0)
		err := req.Decode(make([]byte, size))
		require.Error(t, err, "size %v", size)

		var ferr *FrameError
		assert.True(t, errors.As(err, &ferr), "size %v: expected a FrameError, got %v", size, err)
	}
}

func TestRequestDecodeSkipsRangeValidation(t *testing.T) {
	// counts outside [1,2000] decode fine, Execute is where the bound applies
	req := NewReadCoilsRequest(0, 0)
	require.NoError(t, req.Decode([]byte{0x00, 0x00, 0x00, 0x00}))
	assert.Equal(t, uint16(0), req.Count)

	require.NoError(t, req.Decode([]byte{0xff, 0xff, 0xff, 0xff}))
	assert.Equal(t, uint16(0xffff), req.Count)
}

func TestRequestVariantsShareBody(t *testing.T) {
	coils := NewReadCoilsRequest(18, 7)
	discretes := NewReadDiscreteInputsRequest(18, 7)

	assert.Equal(t, coils.Encode(), discretes.Encode())
	assert.Equal(t, FunctionReadCoils, coils.Function())
	assert.Equal(t, FunctionReadDiscreteInputs, discretes.Function())
}
