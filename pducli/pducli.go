package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
)

type CLICommand struct {
	Request  RequestCommands  `command:"request" alias:"req" description:"Encode and decode read-bits request bodies"`
	Response ResponseCommands `command:"response" alias:"res" description:"Encode and decode read-bits response bodies"`
	Exec     ExecCommand      `command:"exec" description:"Execute a read-bits request against an in-memory store"`
}

func main() {
	clicmd := CLICommand{}

	parser := flags.NewParser(&clicmd, flags.HelpFlag|flags.PassDoubleDash)

	_, err := parser.Parse()

	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
