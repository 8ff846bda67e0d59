package main

import (
	"fmt"

	"github.com/mbkit/pdu"
)

type ExecCommand struct {
	Discretes bool   `short:"d" long:"discretes" description:"Use Read Discrete Inputs (function 2) instead of Read Coils (function 1)"`
	Store     string `short:"s" long:"store" required:"true" env:"PDUCLI_STORE" description:"Store contents as a bit pattern, address 0 first (e.g. 10110)"`
	Args      struct {
		Address uint16 `positional-arg-name:"address"`
		Count   uint16 `positional-arg-name:"count"`
	} `positional-args:"yes" required:"yes"`
}

func (c *ExecCommand) Execute(args []string) error {
	values, err := parseBits(c.Store)
	if err != nil {
		return err
	}

	store := pdu.NewMemoryStore(len(values), len(values))
	if err := store.SetCoils(0, values); err != nil {
		return err
	}
	if err := store.SetDiscretes(0, values); err != nil {
		return err
	}

	req := buildRequest(c.Discretes, c.Args.Address, c.Args.Count)
	fmt.Printf("%v\n", req)

	switch res := req.Execute(store).(type) {
	case *pdu.ReadBitsResponse:
		fmt.Printf("%v", res)
		fmt.Printf("    body: %v\n", hexBytes(res.Encode()))
	case *pdu.ExceptionResponse:
		fmt.Printf("%v\n", res)
	}
	return nil
}
