// Package main is the entry point for wol.
package main

import (
	"os"

	"github.com/ohsungsik/Wake-On-Lan/internal/outcome"
)

func main() {
	if err := Execute(); err != nil {
		os.Exit(outcome.FromError(err).ExitCode())
	}
}
