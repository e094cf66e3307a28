package main

import (
	"os"

	"github.com/mhartmer/certforge/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
