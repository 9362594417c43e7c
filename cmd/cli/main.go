// Package main is the entry point for the payment-cost CLI.
package main

import (
	"os"

	"payment-cost/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
