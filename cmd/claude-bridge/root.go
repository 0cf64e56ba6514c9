package main

import (
	"context"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	claudebridge "github.com/metalagman/claude-bridge"
)

// newTextGenerator builds the real client; swapped out in tests.
var newTextGenerator = func() (claudebridge.TextGenerator, error) {
	return claudebridge.NewAnthropicClient()
}

type bridgeOptions struct {
	debug   bool
	timeout time.Duration
}

func newRootCmd() *cobra.Command {
	opts := &bridgeOptions{}
	root := &cobra.Command{
		Use:           "claude-bridge",
		Short:         "Bridge stdin JSON payloads to the Anthropic Messages API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBridge(cmd.Context(), opts, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	root.Flags().BoolVar(&opts.debug, "debug", false, "log invocation diagnostics to stderr")
	root.Flags().DurationVar(&opts.timeout, "timeout", 0, "deadline for the model call, 0 disables")

	root.AddCommand(newQuickstartCmd())

	return root
}

func runBridge(ctx context.Context, opts *bridgeOptions, in io.Reader, out, errOut io.Writer) error {
	client, err := newTextGenerator()
	if err != nil {
		return err
	}

	bridgeOpts := make([]claudebridge.Option, 0, 1)
	if opts.debug {
		log := zerolog.New(zerolog.ConsoleWriter{Out: errOut}).
			Level(zerolog.DebugLevel).
			With().Timestamp().Logger()
		bridgeOpts = append(bridgeOpts, claudebridge.WithLogger(log))
	}

	bridge, err := claudebridge.New(client, bridgeOpts...)
	if err != nil {
		return err
	}

	if opts.timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, opts.timeout)
		defer cancel()
	}

	return bridge.Run(ctx, in, out)
}
