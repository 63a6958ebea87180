// pidigits CLI - decimal digits of pi via the Chudnovsky series.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/pidigits/cli"
)

// ExitCoder is an interface for errors that have an exit code.
type ExitCoder interface {
	ExitCode() int
}

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		if ec, ok := err.(ExitCoder); ok {
			os.Exit(ec.ExitCode())
		}
		os.Exit(1)
	}
}
