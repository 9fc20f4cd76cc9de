package main

import (
	"fmt"

	"github.com/metalagman/testharness"
	"github.com/spf13/cobra"
)

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "schema [request|response]",
		Short:     "Print the JSON schemas of the request and response documents",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"request", "response"},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			which := ""
			if len(args) == 1 {
				which = args[0]
			}

			if which == "" || which == "request" {
				if _, err := fmt.Fprintln(out, testharness.RequestSchema); err != nil {
					return err
				}
			}

			if which == "" || which == "response" {
				if _, err := fmt.Fprintln(out, testharness.ResponseSchema); err != nil {
					return err
				}
			}

			return nil
		},
	}
}
