package main

import (
	"os"

	"github.com/benbenti/PhotoID/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
