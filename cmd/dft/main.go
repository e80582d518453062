// Command dft is the CLI entry point for the syntactic diff engine. It is
// a thin command layer: every subcommand parses flags into a difft.Config,
// then calls straight into pkg/difft,
// mirroring the teacher's cmd/cli and cmd/server ("thin command layer
// calling one library entry point") and aws-copilot-cli's multi-subcommand
// cobra tree.
//
// Full inline/side-by-side rendering of a DiffResult is explicitly out of
// scope (spec §1): this CLI only reports which files differ and by how
// much, the way a CI check would.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func main() {
	if err := buildRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error: %v", err))
		os.Exit(1)
	}
}

func buildRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "dft",
		Short:         "Syntactic diff: compare two files or directories by AST, not by line",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	cmd.AddCommand(buildDiffCmd())
	cmd.AddCommand(buildDiffDirCmd())
	return cmd
}
