package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newQuickstartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quickstart",
		Short: "Show examples and usage instructions",
		Run: func(_ *cobra.Command, _ []string) {
			printQuickstart()
		},
	}
}

func printQuickstart() {
	fmt.Println(`Quickstart Guide for claude-bridge

claude-bridge reads one JSON payload from stdin, performs a single Claude
call, and writes {"annotation": ..., "model": ...} to stdout. Set
ANTHROPIC_API_KEY before invoking.

1. Basic invocation

   echo '{"prompt":"Label this text: the cat sat on the mat"}' | claude-bridge

2. Custom model and system instruction

   echo '{
     "model": "claude-3-5-sonnet-20240620",
     "system": "You are an annotation assistant returning JSON.",
     "prompt": "Classify the sound: a dog barking"
   }' | claude-bridge

3. Bounded call with diagnostics on stderr

   echo '{"prompt":"Label: rain on glass"}' | claude-bridge --timeout=30s --debug

Exit status is 0 on success. On any failure stderr carries a single
"Claude bridge failed: ..." line, the status is 1 and nothing is written
to stdout.`)
}
