package main

import (
	"fmt"

	"github.com/mbkit/pdu"
)

type RequestEncodeCommand struct {
	Discretes bool `short:"d" long:"discretes" description:"Use Read Discrete Inputs (function 2) instead of Read Coils (function 1)"`
	Args      struct {
		Address uint16 `positional-arg-name:"address"`
		Count   uint16 `positional-arg-name:"count"`
	} `positional-args:"yes" required:"yes"`
}

func (c *RequestEncodeCommand) Execute(args []string) error {
	req := buildRequest(c.Discretes, c.Args.Address, c.Args.Count)
	fmt.Printf("%v\n", req)
	fmt.Printf("    function: 0x%02x\n", uint8(req.Function()))
	fmt.Printf("    body:     %v\n", hexBytes(req.Encode()))
	return nil
}

type RequestDecodeCommand struct {
	Discretes bool `short:"d" long:"discretes" description:"Use Read Discrete Inputs (function 2) instead of Read Coils (function 1)"`
	Args      struct {
		Body string `positional-arg-name:"hexbody"`
	} `positional-args:"yes" required:"yes"`
}

func (c *RequestDecodeCommand) Execute(args []string) error {
	data, err := parseHex(c.Args.Body)
	if err != nil {
		return err
	}
	req := buildRequest(c.Discretes, 0, 0)
	if err := req.Decode(data); err != nil {
		return fmt.Errorf("decode request: %v", err)
	}
	fmt.Printf("%v\n", req)
	if req.Count < 1 || req.Count > pdu.MaxReadBits {
		fmt.Printf("    note: count %v is outside [1,%v], execution would answer %v\n", req.Count, pdu.MaxReadBits, pdu.ExceptionIllegalDataValue)
	}
	return nil
}

type RequestCommands struct {
	Encode RequestEncodeCommand `command:"encode" description:"Build a request body from an address and count"`
	Decode RequestDecodeCommand `command:"decode" description:"Decode a request body given as hex"`
}
