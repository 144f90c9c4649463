// Package main is the entry point for the spacelint CLI.
package main

import (
	"errors"
	"os"

	"github.com/yaklabco/spacelint/internal/cli"
	"github.com/yaklabco/spacelint/internal/logging"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	if err := rootCmd.Execute(); err != nil {
		// Issues found is a signal for the exit code, not a failure.
		var issues *cli.LintIssuesError
		if errors.As(err, &issues) {
			return issues.Code
		}

		logger := logging.Default()
		logger.Error("command failed", logging.FieldError, err)
		return cli.ExitInternalError
	}

	return 0
}
