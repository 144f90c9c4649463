package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/spacelint/internal/configloader"
	"github.com/yaklabco/spacelint/internal/logging"
	"github.com/yaklabco/spacelint/pkg/lint"
	"github.com/yaklabco/spacelint/pkg/reporter"
	"github.com/yaklabco/spacelint/pkg/runner"
)

// lintFlags holds the flags for the lint command.
type lintFlags struct {
	fix       bool
	dryRun    bool
	format    string
	jobs      int
	ignore    []string
	strict    bool
	noContext bool
	compact   bool
}

func newLintCommand(rootOpts *rootOptions) *cobra.Command {
	flags := &lintFlags{}

	cmd := &cobra.Command{
		Use:   "lint [paths...]",
		Short: "Lint source files for surrounding-space issues",
		Long: `Lint the given files or directories. Directories are walked
recursively; only files with a recognized source extension are checked,
and binary, generated, and vendored files are skipped.

With no paths, the current directory is linted.

Examples:
  spacelint lint                  Lint the current directory
  spacelint lint src/ main.c      Lint a directory and a file
  spacelint lint --fix .          Fix issues in place
  spacelint lint --dry-run --fix  Show what would be fixed
  spacelint lint --format json    Machine-readable output`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, args, rootOpts, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.fix, "fix", false, "Automatically fix issues")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Report fixes without writing files")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "text", "Output format: text or json")
	cmd.Flags().IntVarP(&flags.jobs, "jobs", "j", 0, "Number of concurrent workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "Glob patterns to ignore (repeatable)")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "Treat warnings as errors for the exit code")
	cmd.Flags().BoolVar(&flags.noContext, "no-context", false, "Omit source line context from output")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "Compact output (single-line JSON)")

	return cmd
}

func runLint(cmd *cobra.Command, args []string, rootOpts *rootOptions, flags *lintFlags) error {
	ctx := cmd.Context()
	logger := logging.Default()

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	cfg, cfgPath, err := configloader.Load(ctx, workDir, rootOpts.configPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	if cfgPath != "" {
		logger.Debug("loaded configuration", logging.FieldConfig, cfgPath)
	}

	// CLI flags override file configuration.
	cfg.Fix = flags.fix
	cfg.DryRun = flags.dryRun
	cfg.Ignore = append(cfg.Ignore, flags.ignore...)

	format, err := reporter.ParseFormat(flags.format)
	if err != nil {
		return err
	}

	engine := lint.NewEngine(lint.DefaultRegistry())
	pipeline := lint.NewPipeline(engine)

	logger.Debug("starting lint run",
		logging.FieldPaths, args,
		logging.FieldFix, cfg.Fix,
		logging.FieldDryRun, cfg.DryRun,
		logging.FieldJobs, flags.jobs,
	)

	result, err := runner.New(pipeline).Run(ctx, runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		Extensions:   cfg.Extensions,
		ExcludeGlobs: cfg.Ignore,
		Jobs:         flags.jobs,
		Config:       cfg,
	})
	if err != nil {
		return fmt.Errorf("lint: %w", err)
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		ErrorWriter: cmd.ErrOrStderr(),
		Format:      format,
		Color:       rootOpts.color,
		ShowContext: !flags.noContext,
		ShowSummary: true,
		GroupByFile: format == reporter.FormatText,
		Compact:     flags.compact,
	})
	if err != nil {
		return err
	}

	if _, err := rep.Report(ctx, result); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	if code := ExitCodeFromResult(result, flags.strict); code != ExitSuccess {
		return &LintIssuesError{Code: code}
	}

	return nil
}
