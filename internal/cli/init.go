package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/spacelint/internal/logging"
	"github.com/yaklabco/spacelint/pkg/config"
)

// configFilePermissions is the file mode for generated configuration files.
const configFilePermissions = 0644

// configTemplate is the starter configuration written by the init command.
const configTemplate = `# spacelint configuration
# See 'spacelint rules' for the full rule list.

# Default severity for rules that don't set one: error, warning, or info.
severity_default: warning

# File extensions treated as source files (lowercase, with leading dot).
# Uncomment to override the built-in default set.
# extensions: [".c", ".go", ".js", ".rs"]

# Glob patterns for files and directories to skip.
ignore:
  - "vendor/**"
  - "node_modules/**"

# Per-rule configuration, keyed by rule ID or name.
rules:
  # space-inside-braces accepts a style option: space (default) or no_space.
  SP003:
    options:
      style: no_space

  # space-around-operators replaces its default operator set (assignment,
  # arithmetic, comparison, and logical forms) with the configured one.
  # Drop "<" and ">" for languages where they bracket type parameters.
  # SP004:
  #   options:
  #     operators: ["=", "==", "!=", "&&", "||", "+", "-"]
`

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a starter configuration file",
		Long: `Create a new ` + config.DefaultFileName + ` configuration file in the
current directory. The file can be customized to enable or disable
rules, change severities, and set rule options.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runInit(flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite an existing configuration file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file path (default: "+config.DefaultFileName+")")

	return cmd
}

func runInit(flags *initFlags) error {
	logger := logging.Default()

	outputPath := flags.output
	if outputPath == "" {
		outputPath = config.DefaultFileName
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if _, err := os.Stat(absPath); err == nil {
		if !flags.force {
			return fmt.Errorf("file %q already exists; use --force to overwrite", outputPath)
		}
		logger.Warn("overwriting existing file", logging.FieldPath, outputPath)
	}

	// Template must stay parseable by the loader.
	if _, err := config.Parse([]byte(configTemplate)); err != nil {
		return fmt.Errorf("generate template: %w", err)
	}

	if err := os.WriteFile(absPath, []byte(configTemplate), configFilePermissions); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	logger.Info("created configuration file", logging.FieldPath, outputPath)
	logger.Info("run 'spacelint rules' to see all available rules")

	return nil
}
