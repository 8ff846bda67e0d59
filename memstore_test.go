package pdu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreValidate(t *testing.T) {
	store := NewMemoryStore(16, 8)

	cases := []struct {
		name     string
		function FunctionCode
		address  uint16
		count    uint16
		want     bool
	}{
		{"coils full bank", FunctionReadCoils, 0, 16, true},
		{"coils last value", FunctionReadCoils, 15, 1, true},
		{"coils past the end", FunctionReadCoils, 1, 16, false},
		{"discretes full bank", FunctionReadDiscreteInputs, 0, 8, true},
		{"discretes past the end", FunctionReadDiscreteInputs, 0, 9, false},
		{"unknown function", FunctionCode(3), 0, 1, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, store.Validate(tc.function, tc.address, tc.count))
		})
	}
}

func TestMemoryStoreGetValuesReturnsCopy(t *testing.T) {
	store := NewMemoryStore(8, 0)
	require.NoError(t, store.SetCoils(0, []bool{true, true, false}))

	got := store.GetValues(FunctionReadCoils, 0, 3)
	assert.Equal(t, []bool{true, true, false}, got)

	got[0] = false
	assert.Equal(t, []bool{true, true, false}, store.GetValues(FunctionReadCoils, 0, 3))
}

func TestMemoryStoreSetBounds(t *testing.T) {
	store := NewMemoryStore(16, 8)

	assert.NoError(t, store.SetCoils(13, []bool{true, false, true}))
	assert.Error(t, store.SetCoils(14, []bool{true, false, true}))
	assert.NoError(t, store.SetDiscretes(0, make([]bool, 8)))
	assert.Error(t, store.SetDiscretes(1, make([]bool, 8)))
}

func TestMemoryStoreExecute(t *testing.T) {
	store := NewMemoryStore(0, 32)
	require.NoError(t, store.SetDiscretes(10, []bool{true, false, true, true, false}))

	res := NewReadDiscreteInputsRequest(10, 5).Execute(store)
	bits, ok := res.(*ReadBitsResponse)
	require.True(t, ok, "expected a read response, got %v", res)
	assert.Equal(t, []bool{true, false, true, true, false}, bits.Bits)

	// an unreadable range surfaces as an exception, not an error
	res = NewReadDiscreteInputsRequest(30, 5).Execute(store)
	ex, ok := res.(*ExceptionResponse)
	require.True(t, ok, "expected an exception response, got %T", res)
	assert.Equal(t, ExceptionIllegalDataAddress, ex.Code)
}
