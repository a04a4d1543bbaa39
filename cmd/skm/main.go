// Package main is the entry point for the skm CLI tool.
package main

import (
	"os"

	"github.com/nbroch/skema/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
