// Package main is the entry point for the pos CLI.
package main

import (
	"os"

	"pos-pricing/cmd/pos/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
