package cli_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRulesCommandText(t *testing.T) {
	out, err := execute(t, "rules")
	require.NoError(t, err)

	for _, id := range []string{"SP001", "SP002", "SP003", "SP004", "SP005"} {
		assert.Contains(t, out, id)
	}
	assert.Contains(t, out, "space-inside-parens")
	assert.Contains(t, out, "5 rules")
}

func TestRulesCommandJSON(t *testing.T) {
	out, err := execute(t, "rules", "--format", "json")
	require.NoError(t, err)

	var rules []struct {
		ID      string `json:"id"`
		Name    string `json:"name"`
		Fixable bool   `json:"fixable"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &rules))
	require.Len(t, rules, 5)

	assert.Equal(t, "SP001", rules[0].ID)
	assert.Equal(t, "space-inside-parens", rules[0].Name)
	assert.True(t, rules[0].Fixable)
}

func TestRulesCommandUnknownFormat(t *testing.T) {
	_, err := execute(t, "rules", "--format", "yaml")
	require.Error(t, err)
}

func TestInitCommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".spacelint.yaml")

	_, err := execute(t, "init", "--output", path)
	require.NoError(t, err)

	content, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Contains(t, string(content), "severity_default")

	// A second run without --force must refuse to overwrite.
	_, err = execute(t, "init", "--output", path)
	require.Error(t, err)

	_, err = execute(t, "init", "--output", path, "--force")
	require.NoError(t, err)
}
