package main

import (
	"github.com/spf13/cobra"

	"github.com/jzeimen/difftastic/pkg/difft"
)

// configFlags holds the cobra-bound fields that become a difft.Config
// (SPEC_FULL.md's AMBIENT STACK note: "cmd/dft... builds that Config from
// cobra flags, the way aws/copilot-cli commands build request structs
// from flag-bound fields before calling into internal/").
type configFlags struct {
	tabWidth         int
	graphLimit       int
	byteLimit        int
	languageOverride string
}

func (f *configFlags) register(cmd *cobra.Command) {
	defaults := difft.DefaultConfig()
	cmd.Flags().IntVar(&f.tabWidth, "tab-width", defaults.TabWidth, "number of spaces a tab expands to before parsing")
	cmd.Flags().IntVar(&f.graphLimit, "graph-limit", defaults.GraphLimit, "max vertices the AST search visits before falling back to a line diff")
	cmd.Flags().IntVar(&f.byteLimit, "byte-limit", defaults.ByteLimit, "max side size in bytes still fed to the AST path")
	cmd.Flags().StringVar(&f.languageOverride, "language", "", "force a grammar instead of guessing from file extension/content")
}

func (f *configFlags) config() difft.Config {
	return difft.Config{
		TabWidth:         f.tabWidth,
		GraphLimit:       f.graphLimit,
		ByteLimit:        f.byteLimit,
		LanguageOverride: difft.Language(f.languageOverride),
	}
}
