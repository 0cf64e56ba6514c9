// Package main is the entry point for the claude-bridge CLI.
package main

import (
	"fmt"
	"os"
)

var exitFn = os.Exit

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Claude bridge failed: %v\n", err)
		exitFn(1)
	}
}
