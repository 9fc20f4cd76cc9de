package main

import "github.com/spf13/cobra"

func newRootCmd() *cobra.Command {
	opts := &runOptions{}
	root := &cobra.Command{
		Use:           "testharness",
		Short:         "Transcode a JSON request file into a greeting response",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runHarness(cmd, opts)
		},
	}

	addRunFlags(root, opts)

	root.AddCommand(newSchemaCmd())
	root.AddCommand(newQuickstartCmd())

	return root
}
