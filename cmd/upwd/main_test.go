package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rxritet/upwd/internal/config"
)

// runCLI runs one invocation against a config file in a temp dir.
func runCLI(t *testing.T, stdin string, args ...string) (code int, stdout, stderr string, cfgPath string) {
	t.Helper()

	cfgPath = filepath.Join(t.TempDir(), "upwd", "config.yaml")
	t.Setenv("UPWD_CONFIG", cfgPath)
	t.Setenv("UPWD_LOG_LEVEL", "warn")

	var out, errOut bytes.Buffer
	code = run(args, strings.NewReader(stdin), &out, &errOut)
	return code, out.String(), errOut.String(), cfgPath
}

func TestDefaultPasswordLengthIs12(t *testing.T) {
	code, out, _, _ := runCLI(t, "")

	require.Equal(t, 0, code)
	assert.Len(t, strings.TrimSpace(out), 12)
}

func TestPasswordLengthEqualsArgLength(t *testing.T) {
	code, out, _, _ := runCLI(t, "", "-L", "6")

	require.Equal(t, 0, code)
	assert.Len(t, strings.TrimSpace(out), 6)
}

func TestCreated10Passwords(t *testing.T) {
	code, out, _, _ := runCLI(t, "", "-c", "10")

	require.Equal(t, 0, code)
	assert.Equal(t, 10, strings.Count(out, "\n"))
}

func TestInfoLine(t *testing.T) {
	code, out, _, _ := runCLI(t, "", "-u", "-l", "-d", "-L", "15", "-i")

	require.Equal(t, 0, code)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Entropy: 89 bits | Length: 15 chars | Pool size: 62 chars", lines[1])
}

func TestEntropyTarget(t *testing.T) {
	code, out, _, _ := runCLI(t, "", "-E", "128", "-d")

	require.Equal(t, 0, code)
	// log2(10) ≈ 3.32 bits per digit.
	assert.Len(t, strings.TrimSpace(out), 39)
}

func TestConflictingFlags(t *testing.T) {
	code, out, errOut, _ := runCLI(t, "", "-L", "10", "-E", "64")

	assert.Equal(t, 2, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "cannot be used together")
}

func TestHelp(t *testing.T) {
	code, out, errOut, _ := runCLI(t, "", "-h")

	assert.Equal(t, 0, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "uppercase, lowercase letters and digits will be used")
}

func TestResetConfig(t *testing.T) {
	code, out, errOut, cfgPath := runCLI(t, "", "-config")

	require.Equal(t, 0, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, cfgPath)

	cfg, err := config.NewStore(cfgPath).Load()
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestCustomConfigIsUsed(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("symbols: \"#\"\n"), 0o644))
	t.Setenv("UPWD_CONFIG", cfgPath)

	var out, errOut bytes.Buffer
	code := run([]string{"-s", "-L", "5"}, strings.NewReader(""), &out, &errOut)

	require.Equal(t, 0, code, errOut.String())
	assert.Equal(t, "#####\n", out.String())
}

func TestEmptyClassFails(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("symbols: \"\"\n"), 0o644))
	t.Setenv("UPWD_CONFIG", cfgPath)

	var out, errOut bytes.Buffer
	code := run([]string{"-s", "-c", "5"}, strings.NewReader(""), &out, &errOut)

	assert.Equal(t, 1, code)
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "pool contains no characters")
}

func TestBrokenConfigFails(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("digits: [oops\n"), 0o644))
	t.Setenv("UPWD_CONFIG", cfgPath)

	var out, errOut bytes.Buffer
	code := run(nil, strings.NewReader(""), &out, &errOut)

	assert.Equal(t, 1, code)
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "failed to parse YAML")
}

func TestInteractive(t *testing.T) {
	code, out, errOut, _ := runCLI(t, "8\n\n\ny\n\n\n2\n\n", "-interactive")

	require.Equal(t, 0, code)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		assert.Len(t, line, 8)
		assert.Empty(t, strings.Trim(line, config.DefaultDigits))
	}
	assert.Contains(t, errOut, "interactive mode")
}

func TestInteractiveWithOtherFlags(t *testing.T) {
	code, out, errOut, _ := runCLI(t, "8\n", "-interactive", "-c", "5")

	assert.Equal(t, 2, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "-interactive")
}

func TestHugeEntropyTargetFails(t *testing.T) {
	code, out, errOut, _ := runCLI(t, "", "-E", "1e18")

	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "password length must not exceed")
}

func TestHugeCountFails(t *testing.T) {
	code, out, errOut, _ := runCLI(t, "", "-c", "4611686018427387904")

	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "count must not exceed")
}

func TestVerboseLogsToStderr(t *testing.T) {
	code, out, errOut, _ := runCLI(t, "", "-v")

	require.Equal(t, 0, code)
	assert.Len(t, strings.TrimSpace(out), 12)
	assert.Contains(t, errOut, "pool assembled")
	assert.NotContains(t, errOut, strings.TrimSpace(out))
}
