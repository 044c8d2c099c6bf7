package engine

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeCommand(args ...string) (string, string, error) {
	cmd := NewRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// TestCommandDefaultsToDeobf checks omitting --mode runs the variable resolver.
func TestCommandDefaultsToDeobf(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "in.bat", "set y=1\necho %z%\n")
	out := filepath.Join(dir, "out.bat")

	stdout, _, err := executeCommand(in, out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Deobfuscated script saved as")

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "echo %z%", string(got))
}

// TestCommandDumpMode checks --mode dump and its -m shorthand.
func TestCommandDumpMode(t *testing.T) {
	dir := t.TempDir()
	tok, err := EncodePayload(randomBytes(3, 300))
	require.NoError(t, err)
	in := writeFile(t, dir, "in.bat", tok+"\n")

	for _, flag := range []string{"--mode", "-m"} {
		out := filepath.Join(dir, "out"+flag+".bin")
		stdout, stderr, err := executeCommand(flag, "dump", in, out)
		require.NoError(t, err)
		assert.Contains(t, stdout, "Deobfuscated data saved to")
		assert.Contains(t, stderr, "batclean")
		assert.FileExists(t, out)
	}
}

// TestCommandRejectsUnknownMode checks an unrecognised mode is a usage error and touches nothing.
func TestCommandRejectsUnknownMode(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "in.bat", "echo hi\n")
	out := filepath.Join(dir, "out.bat")

	_, _, err := executeCommand("--mode", "deobfuscate", in, out)
	assert.ErrorIs(t, err, ErrUsage)
	assert.Equal(t, 1, ExitCode(err))
	assert.NoFileExists(t, out)
}

// TestCommandArgCount checks exactly two positional arguments are required.
func TestCommandArgCount(t *testing.T) {
	_, _, err := executeCommand("only-one.bat")
	require.Error(t, err)
	assert.Equal(t, 1, ExitCode(err))
}

// TestCommandVersion checks --version prints the full version.
func TestCommandVersion(t *testing.T) {
	stdout, _, err := executeCommand("--version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "batclean v"+Version())
}

// TestMainReportsOnStdout checks failures reach stdout with their exit code.
func TestMainReportsOnStdout(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "in.bat", "echo hello\n")
	out := filepath.Join(dir, "out.bin")

	var stdout, stderr bytes.Buffer
	code := Main([]string{"--mode", "dump", in, out}, &stdout, &stderr)
	assert.Equal(t, 5, code)
	assert.Contains(t, stdout.String(), "Error:")
	assert.Contains(t, stdout.String(), "no valid Base64 string found")
	assert.Contains(t, stdout.String(), "Hint:")
	assert.NotContains(t, stderr.String(), "Error:")
	assert.NoFileExists(t, out)

	stdout.Reset()
	code = Main([]string{"too-few"}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stdout.String(), "invalid arguments")

	stdout.Reset()
	code = Main([]string{in, filepath.Join(dir, "clean.bat")}, &stdout, &stderr)
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "Deobfuscated script saved as")
}
