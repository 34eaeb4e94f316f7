package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seqmatch/kmp"
)

// run executes kmpgrep with args over stdin and returns stdout, stderr and
// the command error.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	if args == nil {
		args = []string{}
	}
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	err := root.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

// writeFile creates a file with content in a temp dir and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// TestRoot_StdinOffsets reports every overlapping byte offset.
func TestRoot_StdinOffsets(t *testing.T) {
	out, _, err := run(t, "aaa", "aa")
	require.NoError(t, err)
	assert.Equal(t, "0\n1\n", out)
}

// TestRoot_NoMatch maps a clean miss to exit code 1.
func TestRoot_NoMatch(t *testing.T) {
	out, _, err := run(t, "hello", "xyz")
	require.Error(t, err)
	assert.Equal(t, 1, ExitCode(err))
	assert.Empty(t, out)
}

// TestRoot_Flags covers start, limit, first, count and ignore-case.
func TestRoot_Flags(t *testing.T) {
	cases := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{"start", "ab ab ab", []string{"--start", "1", "ab"}, "3\n6\n"},
		{"max-count", "ab ab ab", []string{"-m", "2", "ab"}, "0\n3\n"},
		{"first", "ab ab ab", []string{"--first", "ab"}, "0\n"},
		{"count", "abababa", []string{"-c", "aba"}, "3\n"},
		{"ignore-case", "Go GO go", []string{"-i", "go"}, "0\n3\n6\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, _, err := run(t, tc.stdin, tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, out)
		})
	}
}

// TestRoot_Lines matches runs of whole lines.
func TestRoot_Lines(t *testing.T) {
	stdin := "start\nok\nstop\nstart\nSTOP\n"

	out, _, err := run(t, stdin, "--lines", "start\nstop")
	assert.Equal(t, 1, ExitCode(err), "strict case matches neither run")
	assert.Empty(t, out)

	out, _, err = run(t, stdin, "--lines", "-i", "start\nstop\n")
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)
}

// TestRoot_Files prefixes offsets with the file name for several inputs.
func TestRoot_Files(t *testing.T) {
	a := writeFile(t, "a.txt", "needle in a haystack")
	b := writeFile(t, "b.txt", "no match here")
	c := writeFile(t, "c.txt", "needle needle")

	out, _, err := run(t, "", "needle", a, b, c)
	require.NoError(t, err)
	assert.Equal(t, a+":0\n"+c+":0\n"+c+":7\n", out)

	out, _, err = run(t, "", "-c", "needle", a, b)
	require.NoError(t, err)
	assert.Equal(t, a+":1\n"+b+":0\n", out)
}

// TestRoot_Errors surfaces missing files and invalid offsets.
func TestRoot_Errors(t *testing.T) {
	_, _, err := run(t, "", "x", filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.Equal(t, 2, ExitCode(err))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = run(t, "abc", "--start", "-1", "a")
	assert.Equal(t, 2, ExitCode(err))
	assert.ErrorIs(t, err, kmp.ErrNegativeStart)

	_, _, err = run(t, "abc")
	assert.Error(t, err, "pattern argument is required")
}

// TestRoot_FailedInputContinues searches the inputs after a failing one and
// still exits with status 2.
func TestRoot_FailedInputContinues(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")
	a := writeFile(t, "a.txt", "needle")
	b := writeFile(t, "b.txt", "a needle")

	out, errOut, err := run(t, "", "needle", a, missing, b)
	require.Error(t, err)
	assert.Equal(t, 2, ExitCode(err), "a failed input wins over matches")
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Equal(t, a+":0\n"+b+":2\n", out, "inputs after the failure are searched")
	assert.Contains(t, errOut, "search failed")
	assert.Contains(t, errOut, missing)
}

// TestRoot_Verbose logs the compiled table at debug level.
func TestRoot_Verbose(t *testing.T) {
	_, errOut, err := run(t, "abcabx", "-v", "abcabx")
	require.NoError(t, err)
	assert.Contains(t, errOut, "pattern compiled")
	assert.Contains(t, errOut, "[-1 0 0 0 1 2]")
	assert.Contains(t, errOut, "matches=1")
}
