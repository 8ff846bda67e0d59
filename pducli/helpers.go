package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/mbkit/pdu"
)

// buildRequest selects the function-code variant the flags asked for.
func buildRequest(discretes bool, address, count uint16) *pdu.ReadBitsRequest {
	if discretes {
		return pdu.NewReadDiscreteInputsRequest(address, count)
	}
	return pdu.NewReadCoilsRequest(address, count)
}

func buildResponse(discretes bool, bits []bool) *pdu.ReadBitsResponse {
	if discretes {
		return pdu.NewReadDiscreteInputsResponse(bits)
	}
	return pdu.NewReadCoilsResponse(bits)
}

// parseHex accepts a PDU body as hex, with or without spaces ("0001 0005").
func parseHex(body string) ([]byte, error) {
	clean := strings.ReplaceAll(body, " ", "")
	data, err := hex.DecodeString(clean)
	if err != nil {
		return nil, fmt.Errorf("illegal hex body %q: %v", body, err)
	}
	return data, nil
}

func hexBytes(data []byte) string {
	parts := make([]string, len(data))
	for i, b := range data {
		parts[i] = fmt.Sprintf("%02x", b)
	}
	return strings.Join(parts, " ")
}

// parseBits turns a pattern like "10110" in to values, lowest address first.
// t/f and on/off style values from a comma list are also accepted.
func parseBits(pattern string) ([]bool, error) {
	if strings.Contains(pattern, ",") {
		parts := strings.Split(pattern, ",")
		bits := make([]bool, len(parts))
		for i, sval := range parts {
			switch sval {
			case "1", "t", "true", "on":
				bits[i] = true
			case "0", "f", "false", "off":
				bits[i] = false
			default:
				return nil, fmt.Errorf("illegal bit value %v", sval)
			}
		}
		return bits, nil
	}
	bits := make([]bool, len(pattern))
	for i, c := range pattern {
		switch c {
		case '1':
			bits[i] = true
		case '0':
			bits[i] = false
		default:
			return nil, fmt.Errorf("illegal bit value %c", c)
		}
	}
	return bits, nil
}
