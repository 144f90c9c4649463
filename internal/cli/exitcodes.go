package cli

import (
	"github.com/yaklabco/spacelint/pkg/runner"
)

// Exit codes follow BSD sysexits conventions where applicable.
const (
	// ExitSuccess indicates no issues were found.
	ExitSuccess = 0

	// ExitLintErrors indicates error-severity issues were found.
	ExitLintErrors = 1

	// ExitLintWarnings indicates warning-severity issues were found.
	ExitLintWarnings = 2

	// ExitInvalidUsage indicates invalid command-line usage (EX_USAGE).
	ExitInvalidUsage = 64

	// ExitConfigError indicates a configuration problem (EX_DATAERR-adjacent).
	ExitConfigError = 65

	// ExitInternalError indicates an internal failure (EX_SOFTWARE).
	ExitInternalError = 70

	// ExitIOError indicates a file I/O failure (EX_IOERR).
	ExitIOError = 74
)

// LintIssuesError signals that linting completed but found issues.
// Code is the process exit code; the caller translates it without
// logging it as a failure.
type LintIssuesError struct {
	Code int
}

func (e *LintIssuesError) Error() string {
	return "lint issues found"
}

// ExitCodeFromResult maps a runner result to a process exit code.
//
// Error-severity diagnostics always exit non-zero. Warning and info
// diagnostics exit with ExitLintWarnings, escalated to ExitLintErrors
// when strict is set.
func ExitCodeFromResult(result *runner.Result, strict bool) int {
	if result == nil {
		return ExitSuccess
	}

	if result.HasFailures() {
		return ExitLintErrors
	}

	if result.HasIssues() {
		if strict {
			return ExitLintErrors
		}
		return ExitLintWarnings
	}

	return ExitSuccess
}
