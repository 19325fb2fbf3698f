package main

import (
	"fmt"
	"os"

	"github.com/tebeka/atexit"
	"github.com/tminor/procls/command"
)

func main() {
	if err := command.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "procls: %s\n", err)
		atexit.Exit(1)
	}
	atexit.Exit(0)
}
