// Package main is the entry point for the lattice CLI tool.
package main

import (
	"os"

	"github.com/lattice-dev/lattice/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
