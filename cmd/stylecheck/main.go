// Package main provides the stylecheck command.
package main

import (
	"os"

	"github.com/leapstack-labs/stylecheck/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
