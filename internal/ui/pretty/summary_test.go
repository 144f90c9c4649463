package pretty

import (
	"strings"
	"testing"

	"github.com/yaklabco/spacelint/pkg/runner"
)

func TestFormatSummaryOneLineNoIssues(t *testing.T) {
	styles := NewStyles(false)

	out := styles.FormatSummaryOneLine(runner.Stats{FilesProcessed: 4})
	if !strings.Contains(out, "No issues found") {
		t.Errorf("summary = %q", out)
	}
	if !strings.Contains(out, "(4 files checked)") {
		t.Errorf("summary = %q", out)
	}
}

func TestFormatSummaryOneLineWithIssues(t *testing.T) {
	styles := NewStyles(false)

	out := styles.FormatSummaryOneLine(runner.Stats{
		DiagnosticsTotal:   5,
		DiagnosticsFixable: 3,
		FilesWithIssues:    2,
		DiagnosticsBySeverity: map[string]int{
			"error":   1,
			"warning": 4,
		},
	})

	for _, want := range []string{"5 issues", "1 errors", "4 warnings", "in 2 files", "3 fixable"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q: %q", want, out)
		}
	}
}

func TestFormatSummaryOneLineAfterFix(t *testing.T) {
	styles := NewStyles(false)

	out := styles.FormatSummaryOneLine(runner.Stats{
		FilesProcessed:   3,
		FilesModified:    1,
		DiagnosticsFixed: 2,
	})

	if !strings.Contains(out, "2 fixed in 1 file") {
		t.Errorf("summary = %q", out)
	}
}
