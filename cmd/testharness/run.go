package main

import (
	"fmt"
	"io"
	"os"

	"github.com/metalagman/testharness"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const defaultLogLevel = "warn"

var exitFn = os.Exit

type runOptions struct {
	requestPath string
	logLevel    string
}

func addRunFlags(cmd *cobra.Command, opts *runOptions) {
	cmd.Flags().StringVar(&opts.requestPath, "request", testharness.DefaultRequestPath, "path to the request JSON file")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", defaultLogLevel, "log level (trace, debug, info, warn, error, disabled)")
}

func runHarness(cmd *cobra.Command, opts *runOptions) error {
	logger, err := newLogger(cmd.ErrOrStderr(), opts.logLevel)
	if err != nil {
		return err
	}

	tr, err := testharness.NewTranscoder(
		testharness.WithStdout(cmd.OutOrStdout()),
		testharness.WithLogger(logger),
	)
	if err != nil {
		return exitWithError(cmd.ErrOrStderr(), fmt.Errorf("create transcoder: %w", err))
	}

	if _, err := tr.Run(cmd.Context(), opts.requestPath); err != nil {
		logger.Debug().Err(err).Msg("pipeline failed")

		return exitWithError(cmd.ErrOrStderr(), err)
	}

	return nil
}

func newLogger(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("failed to parse log level: %w", err)
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(lvl).
		With().
		Timestamp().
		Logger(), nil
}

func exitWithError(w io.Writer, err error) error {
	if err != nil {
		_, _ = fmt.Fprintln(w, "Error:", err)
	}

	exitFn(1)

	return nil
}
