package main

import (
	"fmt"
)

type ResponseEncodeCommand struct {
	Discretes bool `short:"d" long:"discretes" description:"Use Read Discrete Inputs (function 2) instead of Read Coils (function 1)"`
	Args      struct {
		Bits string `positional-arg-name:"bits" description:"Bit pattern, lowest address first (e.g. 10110)"`
	} `positional-args:"yes" required:"yes"`
}

func (c *ResponseEncodeCommand) Execute(args []string) error {
	bits, err := parseBits(c.Args.Bits)
	if err != nil {
		return err
	}
	res := buildResponse(c.Discretes, bits)
	fmt.Printf("%v", res)
	fmt.Printf("    function: 0x%02x\n", uint8(res.Function()))
	fmt.Printf("    body:     %v\n", hexBytes(res.Encode()))
	return nil
}

type ResponseDecodeCommand struct {
	Discretes bool   `short:"d" long:"discretes" description:"Use Read Discrete Inputs (function 2) instead of Read Coils (function 1)"`
	Count     uint16 `short:"c" long:"count" description:"Requested count; truncates the padding of the final byte"`
	Args      struct {
		Body string `positional-arg-name:"hexbody"`
	} `positional-args:"yes" required:"yes"`
}

func (c *ResponseDecodeCommand) Execute(args []string) error {
	data, err := parseHex(c.Args.Body)
	if err != nil {
		return err
	}
	res := buildResponse(c.Discretes, nil)
	if err := res.Decode(data); err != nil {
		return fmt.Errorf("decode response: %v", err)
	}
	if c.Count > 0 {
		res.Truncate(c.Count)
	}
	fmt.Printf("%v", res)
	return nil
}

type ResponseCommands struct {
	Encode ResponseEncodeCommand `command:"encode" description:"Build a response body from a bit pattern"`
	Decode ResponseDecodeCommand `command:"decode" description:"Decode a response body given as hex"`
}
