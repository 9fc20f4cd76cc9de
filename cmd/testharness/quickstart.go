package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newQuickstartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quickstart",
		Short: "Show examples and usage instructions",
		Run: func(cmd *cobra.Command, _ []string) {
			printQuickstart(cmd.OutOrStdout())
		},
	}
}

func printQuickstart(w io.Writer) {
	fmt.Fprintln(w, `Quickstart Guide for testharness

1. Default request
   Put the request next to the working directory and run the harness.

   mkdir -p model
   echo '{"input": "World"}' > model/request.json
   testharness

   request_json = {"input": "World"}
   response_json = "{\"class\":\"org.accordproject.helloworld.MyResponse\",\"output\":\"Hello Fred Blogs World\"}"

2. Explicit request path

   testharness --request ./testdata/request.json

3. Stage diagnostics on stderr

   testharness --log-level debug

4. Document shapes

   testharness schema request
   testharness schema response

Exit code is 0 on success and 1 when the request cannot be read or parsed.`)
}
