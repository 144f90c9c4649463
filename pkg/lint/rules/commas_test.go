package rules

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/spacelint/pkg/config"
	"github.com/yaklabco/spacelint/pkg/lint"
	"github.com/yaklabco/spacelint/pkg/scanner"
)

func TestSpaceAfterCommaRule(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantDiags int
		wantFix   string
	}{
		{
			name:      "properly spaced list",
			input:     "f(a, b, c)\n",
			wantDiags: 0,
		},
		{
			name:      "missing space after",
			input:     "f(a,b)\n",
			wantDiags: 1,
			wantFix:   "f(a, b)\n",
		},
		{
			name:      "space before comma",
			input:     "f(a , b)\n",
			wantDiags: 1,
			wantFix:   "f(a, b)\n",
		},
		{
			name:      "space before and missing after",
			input:     "f(a ,b)\n",
			wantDiags: 2,
			wantFix:   "f(a, b)\n",
		},
		{
			name:      "comma at end of line",
			input:     "f(a,\n  b)\n",
			wantDiags: 0,
		},
		{
			name:      "trailing comma at end of file",
			input:     "a,",
			wantDiags: 0,
		},
		{
			name:      "multiple offending commas",
			input:     "f(a,b,c)\n",
			wantDiags: 2,
			wantFix:   "f(a, b, c)\n",
		},
		{
			name:      "comma inside string ignored",
			input:     "s = \"a,b\"\n",
			wantDiags: 0,
		},
		{
			name:      "empty file",
			input:     "",
			wantDiags: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := scanner.Parse("test.src", []byte(tt.input))

			rule := NewSpaceAfterCommaRule()
			ruleCtx := lint.NewRuleContext(context.Background(), buf, config.NewConfig(), nil)

			diags, err := rule.Apply(ruleCtx)
			require.NoError(t, err)
			assert.Len(t, diags, tt.wantDiags)

			if tt.wantFix != "" {
				assert.Equal(t, tt.wantFix, applyRuleFixes(t, tt.input, diags))
			}
		})
	}
}

func TestSpaceAfterCommaRuleMessages(t *testing.T) {
	buf := scanner.Parse("test.src", []byte("f(a ,b)\n"))

	rule := NewSpaceAfterCommaRule()
	ruleCtx := lint.NewRuleContext(context.Background(), buf, config.NewConfig(), nil)

	diags, err := rule.Apply(ruleCtx)
	require.NoError(t, err)
	require.Len(t, diags, 2)

	assert.Equal(t, "Do not use space before comma.", diags[0].Message)
	assert.Equal(t, "Use space after comma.", diags[1].Message)
}
