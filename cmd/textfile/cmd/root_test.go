package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/input-output-hk/catalyst-forge-libs/textfile/errors"
)

// run executes the command line with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestAppendAndCat(t *testing.T) {
	target := filepath.Join(t.TempDir(), "notes.txt")

	_, _, err := run(t, "append", target, "first", "line")
	require.NoError(t, err)
	_, _, err = run(t, "append", "--no-newline", target, "second")
	require.NoError(t, err)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "first line\nsecond", string(data))

	out, _, err := run(t, "cat", target)
	require.NoError(t, err)
	assert.Equal(t, "first line\nsecond\n", out)
}

func TestSizeAndClear(t *testing.T) {
	target := filepath.Join(t.TempDir(), "size.txt")
	require.NoError(t, os.WriteFile(target, []byte("A test line.\n"), 0o644))

	out, _, err := run(t, "size", target)
	require.NoError(t, err)
	assert.Equal(t, "13\n", out)

	_, _, err = run(t, "clear", target)
	require.NoError(t, err)

	out, _, err = run(t, "size", "--chunk-size", "16", target)
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)
}

func TestFileURLTarget(t *testing.T) {
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	target := filepath.Join(dir, "url.txt")

	_, _, err = run(t, "append", "file://"+filepath.ToSlash(target), "via", "url")
	require.NoError(t, err)

	out, _, err := run(t, "cat", target)
	require.NoError(t, err)
	assert.Equal(t, "via url\n", out)
}

func TestExists(t *testing.T) {
	dir := t.TempDir()

	out, _, err := run(t, "exists", filepath.Join(dir, "new.txt"))
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)

	out, _, err = run(t, "exists", filepath.Join(dir, "missing", "new.txt"))
	require.NoError(t, err)
	assert.Equal(t, "false\n", out)
}

func TestPwd(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	out, _, err := run(t, "pwd")
	require.NoError(t, err)
	assert.Equal(t, wd+"\n", out)
}

func TestInvalidTargets(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		args []string
		code errors.ErrorCode
	}{
		{name: "missing directory", args: []string{"cat", filepath.Join(dir, "nope", "x.txt")}, code: errors.CodeInvalidDirectory},
		{name: "directory target", args: []string{"size", dir + string(filepath.Separator)}, code: errors.CodeEmptyName},
		{name: "relative url", args: []string{"cat", "file:relative.txt"}, code: errors.CodeInvalidURLScheme},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, stderr, err := run(t, tt.args...)
			require.Error(t, err)
			assert.True(t, errors.HasCode(err, tt.code))
			assert.Contains(t, stderr, "Error:")
		})
	}
}

func TestVerboseLogsToStderr(t *testing.T) {
	target := filepath.Join(t.TempDir(), "verbose.txt")

	_, stderr, err := run(t, "--verbose", "append", target, "x")
	require.NoError(t, err)
	assert.Contains(t, stderr, "resolved text file")
}

func TestArgumentValidation(t *testing.T) {
	_, _, err := run(t, "append", "only-target")
	assert.Error(t, err)

	_, _, err = run(t, "pwd", "extra")
	assert.Error(t, err)
}
