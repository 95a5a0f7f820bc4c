package main

import (
	"fmt"
	"os"

	"github.com/jsonx-lang/jsonx/cmd/jsonx/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		if msg := err.Error(); msg != "" {
			fmt.Fprintln(os.Stderr, msg)
		}
		os.Exit(1)
	}
}
