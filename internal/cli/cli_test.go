package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/infinilabs/yaml-nested/internal/config"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func run(t *testing.T, cfg *config.Config, args ...string) (ExecuteResult, string, string) {
	t.Helper()

	var out, errOut bytes.Buffer
	result := RunWithConfig(args, cfg, &out, &errOut)
	return result, out.String(), errOut.String()
}

const nestedSample = `cluster:
  fault_detection:
    follower_check:
      interval: 1000
      retry: 3
routing.allocation.same_shard.host: false
`

func TestFlattenCommand(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yml", nestedSample)

	result, out, _ := run(t, config.DefaultConfig(), "flatten", path)

	assert.Equal(t, 0, result.ExitCode)
	assert.Equal(t, "cluster.fault_detection.follower_check.interval: 1000\n"+
		"cluster.fault_detection.follower_check.retry: 3\n"+
		"routing.allocation.same_shard.host: false\n", out)
}

func TestFlattenCommand_OutputFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeFile(t, tmpDir, "config.yml", nestedSample)
	outPath := filepath.Join(tmpDir, "config.flat.yml")

	result, out, _ := run(t, config.DefaultConfig(), "flatten", path, "-o", outPath)

	assert.Equal(t, 0, result.ExitCode)
	assert.Empty(t, out)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "cluster.fault_detection.follower_check.retry: 3")
}

func TestFlattenCommand_InvalidYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "broken.yml", "a: [unclosed\n")

	result, _, errOut := run(t, config.DefaultConfig(), "flatten", path)

	assert.Equal(t, 1, result.ExitCode)
	assert.Contains(t, errOut, "failed to parse YAML")
}

func TestFlattenCommand_MissingFile(t *testing.T) {
	result, _, errOut := run(t, config.DefaultConfig(), "flatten", "/nonexistent/config.yml")

	assert.Equal(t, 1, result.ExitCode)
	assert.Contains(t, errOut, "failed to read input")
}

func TestFlattenCommand_SeparatorFlag(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yml", "a:\n  b:\n    c: 1\n")

	result, out, _ := run(t, config.DefaultConfig(), "flatten", path, "--separator", "/")

	assert.Equal(t, 0, result.ExitCode)
	assert.Equal(t, "a/b/c: 1\n", out)
}

func TestUnflattenCommand(t *testing.T) {
	path := writeFile(t, t.TempDir(), "flat.yml", "cluster.routing.allocation: all\ncluster.name: dev\n")

	result, out, _ := run(t, config.DefaultConfig(), "unflatten", path)

	assert.Equal(t, 0, result.ExitCode)
	assert.Equal(t, "cluster:\n  routing:\n    allocation: all\n  name: dev\n", out)
}

func TestUnflattenCommand_Conflict(t *testing.T) {
	path := writeFile(t, t.TempDir(), "flat.yml", "a.b: 1\na.b.c: 2\n")

	result, _, errOut := run(t, config.DefaultConfig(), "unflatten", path)

	assert.Equal(t, 1, result.ExitCode)
	assert.Contains(t, errOut, "found a token 'b' that has at least 2 values")
}

func TestUnflattenCommand_Indent(t *testing.T) {
	path := writeFile(t, t.TempDir(), "flat.yml", "a.b: 1\n")

	cfg := config.DefaultConfig()
	cfg.Output.Indent = 4

	result, out, _ := run(t, cfg, "unflatten", path)

	assert.Equal(t, 0, result.ExitCode)
	assert.Equal(t, "a:\n    b: 1\n", out)
}

func TestCheckCommand_OK(t *testing.T) {
	tmpDir := t.TempDir()
	first := writeFile(t, tmpDir, "first.yml", nestedSample)
	second := writeFile(t, tmpDir, "second.yml", "a.b: 1\n")

	result, out, _ := run(t, config.DefaultConfig(), "check", first, second)

	assert.Equal(t, 0, result.ExitCode)
	assert.Contains(t, out, "✓ "+first)
	assert.Contains(t, out, "3 keys")
	assert.Contains(t, out, "✓ "+second)
	assert.Contains(t, out, "checked 2 file(s): 2 ok, 0 conflicted")
}

func TestCheckCommand_Conflict(t *testing.T) {
	tmpDir := t.TempDir()
	good := writeFile(t, tmpDir, "good.yml", "a.b: 1\n")
	bad := writeFile(t, tmpDir, "bad.yml", "a.b: 1\na.b.c: 2\n")

	result, out, _ := run(t, config.DefaultConfig(), "check", good, bad)

	assert.Equal(t, 1, result.ExitCode)
	assert.Contains(t, out, "✓ "+good)
	assert.Contains(t, out, "✗ "+bad)
	assert.Contains(t, out, "found a token 'b'")
	assert.Contains(t, out, "checked 2 file(s): 1 ok, 1 conflicted")
}

func TestCheckCommand_MissingFile(t *testing.T) {
	result, out, _ := run(t, config.DefaultConfig(), "check", "/nonexistent/config.yml")

	assert.Equal(t, 1, result.ExitCode)
	assert.Contains(t, out, "failed to read file")
}

func TestConfigFlag(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := writeFile(t, tmpDir, "custom.yaml", "separator: \"/\"\n")
	input := writeFile(t, tmpDir, "config.yml", "a:\n  b: 1\n")

	result, out, _ := run(t, config.DefaultConfig(), "flatten", input, "--config", configPath)

	assert.Equal(t, 0, result.ExitCode)
	assert.Equal(t, "a/b: 1\n", out)
}

func TestConfigFlag_BadFile(t *testing.T) {
	result, _, errOut := run(t, config.DefaultConfig(), "flatten", "--config", "/nonexistent/config.yaml")

	assert.Equal(t, 1, result.ExitCode)
	assert.Contains(t, errOut, "error reading config file")
}

func TestUnknownCommand(t *testing.T) {
	result, _, _ := run(t, config.DefaultConfig(), "explode")

	assert.Equal(t, 1, result.ExitCode)
	assert.Error(t, result.Err)
}

func TestExitError(t *testing.T) {
	err := NewExitError(3)
	assert.Equal(t, "exit status 3", err.Error())

	code, ok := IsExitError(err)
	assert.True(t, ok)
	assert.Equal(t, 3, code)

	code, ok = IsExitError(os.ErrNotExist)
	assert.False(t, ok)
	assert.Equal(t, 0, code)
}
