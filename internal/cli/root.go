// Package cli implements the spacelint command-line interface.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/spacelint/internal/logging"

	// Register built-in rules with the default registry.
	_ "github.com/yaklabco/spacelint/pkg/lint/rules"
)

// BuildInfo carries version metadata injected at build time.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// rootOptions holds flags shared by all subcommands.
type rootOptions struct {
	debug      bool
	configPath string
	color      string
}

// NewRootCommand creates the root spacelint command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "spacelint",
		Short: "A fast surrounding-space linter for source code",
		Long: `spacelint checks source files for whitespace problems around
delimiters: spaces inside parentheses, brackets, and braces, and
spacing around operators and after commas.

Most issues it reports can be fixed automatically with --fix.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", info.Version, info.Commit, info.Date),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if opts.debug {
				logging.SetLevel("debug")
			}
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	pf.StringVar(&opts.configPath, "config", "", "Path to configuration file")
	pf.StringVar(&opts.color, "color", "auto", "Colorize output: auto, always, never")

	rootCmd.AddCommand(
		newLintCommand(opts),
		newRulesCommand(),
		newInitCommand(),
		newVersionCommand(info),
	)

	return rootCmd
}
