package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hostspec/hostspec/pkg/manifest"
)

func TestParseVars(t *testing.T) {
	vars, err := parseVars([]string{"env=prod", "region=eu-west-1"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"env": "prod", "region": "eu-west-1"}, vars)

	vars, err = parseVars(nil)
	require.NoError(t, err)
	assert.Nil(t, vars)

	_, err = parseVars([]string{"not-a-pair"})
	assert.Error(t, err)

	_, err = parseVars([]string{"=value"})
	assert.Error(t, err)
}

func TestRunCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	runCmd, _, err := cmd.Find([]string{"run"})
	require.NoError(t, err)

	varFlag := runCmd.Flags().Lookup("var")
	require.NotNil(t, varFlag)
}

// writeTestSuite writes a suite checking a file created in the test's temp
// dir, so a local backend run exercises the real command path.
func writeTestSuite(t *testing.T, expectExists bool) string {
	t.Helper()
	dir := t.TempDir()

	target := filepath.Join(dir, "watched.txt")
	require.NoError(t, os.WriteFile(target, []byte("hello"), 0644))

	doc := fmt.Sprintf(`
suite: cli-test
checks:
  watched_file:
    resource: file
    name: %s
    exists: %t
`, target, expectExists)

	path := filepath.Join(dir, "suite.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))
	return path
}

func TestRunCommandSuccess(t *testing.T) {
	suite := writeTestSuite(t, true)

	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"run", suite, "--no-history", "--format", "json"})

	require.NoError(t, cmd.Execute())

	var report manifest.SuiteReport
	require.NoError(t, json.Unmarshal(out.Bytes(), &report))
	assert.Equal(t, "cli-test", report.Suite)
	assert.True(t, report.Success)
	require.Len(t, report.Results, 1)
	assert.Len(t, report.Results[0].Report.Passed, 1)
}

func TestRunCommandFailureExitCode(t *testing.T) {
	suite := writeTestSuite(t, false)

	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"run", suite, "--no-history", "--no-color"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out.String(), "FAILED")
}

func TestRunCommandUnknownResourceType(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "suite.yaml")
	doc := `
suite: bad
checks:
  nope:
    resource: quantum_flux
    name: whatever
    exists: true
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	cmd := NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"run", path, "--no-history"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestRunCommandRecordsHistory(t *testing.T) {
	suite := writeTestSuite(t, true)

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	cfg := fmt.Sprintf("history:\n  path: %s\n", filepath.Join(dir, "history.db"))
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0644))

	cmd := NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"run", suite, "--config", cfgPath, "--format", "json"})
	require.NoError(t, cmd.Execute())

	var out bytes.Buffer
	listCmd := NewRootCommand()
	listCmd.SetOut(&out)
	listCmd.SetErr(&out)
	listCmd.SetArgs([]string{"history", "--config", cfgPath, "--no-color"})
	require.NoError(t, listCmd.Execute())

	assert.Contains(t, out.String(), "cli-test")
	assert.Contains(t, out.String(), "PASSED")
}
