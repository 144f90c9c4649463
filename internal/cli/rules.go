package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/spacelint/pkg/lint"
)

// rulesFlags holds the flags for the rules command.
type rulesFlags struct {
	format string
}

// ruleInfo is the JSON shape for one rule listing.
type ruleInfo struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Enabled     bool     `json:"enabledByDefault"`
	Severity    string   `json:"defaultSeverity"`
	Fixable     bool     `json:"fixable"`
	Tags        []string `json:"tags,omitempty"`
}

func newRulesCommand() *cobra.Command {
	flags := &rulesFlags{}

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List all available lint rules",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRules(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", "text", "Output format: text or json")

	return cmd
}

func runRules(cmd *cobra.Command, flags *rulesFlags) error {
	rules := lint.DefaultRegistry().All()
	out := cmd.OutOrStdout()

	switch flags.format {
	case "json":
		infos := make([]ruleInfo, 0, len(rules))
		for _, rule := range rules {
			infos = append(infos, ruleInfo{
				ID:          rule.ID(),
				Name:        rule.Name(),
				Description: rule.Description(),
				Enabled:     rule.DefaultEnabled(),
				Severity:    string(rule.DefaultSeverity()),
				Fixable:     rule.CanFix(),
				Tags:        rule.Tags(),
			})
		}

		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(infos); err != nil {
			return fmt.Errorf("encode rules: %w", err)
		}

	case "text", "":
		for _, rule := range rules {
			fixable := " "
			if rule.CanFix() {
				fixable = "F"
			}
			fmt.Fprintf(out, "%-6s %s %-22s %s\n", rule.ID(), fixable, rule.Name(), rule.Description())
		}
		fmt.Fprintf(out, "\n%d rules (F = fixable)\n", len(rules))

	default:
		return fmt.Errorf("unknown format %q; valid formats: text, json", flags.format)
	}

	return nil
}
