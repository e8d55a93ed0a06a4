package hbcmd_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrew-torda/hirschberg/pkg/common"
	"github.com/andrew-torda/hirschberg/pkg/hbcmd"
)

const pairFile = "../align/testdata/pair.fa"

const twoLetters = `  a  b
a  1 -1
b -1  1
`

// run calls Main and hands back the exit code, stdout and stderr.
func run(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := hbcmd.Main(args, strings.NewReader(stdin), &out, &errOut)
	return code, out.String(), errOut.String()
}

func tmpFile(t *testing.T, content string) string {
	t.Helper()
	fname, err := common.WrtTemp(content)
	require.NoError(t, err)
	t.Cleanup(func() { os.Remove(fname) })
	return fname
}

func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	return lines[len(lines)-1]
}

func TestProteinPair(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		score string
	}{
		{"default gap", []string{"-i", pairFile}, "Score: 2624"},
		{"gap ten", []string{"-i", pairFile, "--gap=-10"}, "Score: 2606"},
		{"gap ten exact", []string{"--input", pairFile, "-g", "-10", "--exact"}, "Score: 2606"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			code, out, errOut := run(t, "", tc.args...)
			require.Equal(t, common.ExitSuccess, code, errOut)
			assert.Equal(t, tc.score, lastLine(out))
			assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 2)
		})
	}
}

func TestExactAgrees(t *testing.T) {
	_, fast, _ := run(t, "", "-i", pairFile, "-g", "-10")
	_, slow, _ := run(t, "", "-i", pairFile, "-g", "-10", "--exact")
	assert.Equal(t, slow, fast)
}

func TestStdinAndMatrix(t *testing.T) {
	mat := tmpFile(t, twoLetters)
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"s2 length one", ">x|1|\nab\n>y|2|\na\n", "a\nScore: -1\n"},
		{"case follows the matrix", ">x|1|\nAB\n>y|2|\na\n", "a\nScore: -1\n"},
		{"identical", ">x\nab ba\n\nab\n>y\nabbaab\n", "abbaab\nScore: 6\n"},
		{"empty second", ">x\naab\n>y\n", "\nScore: -6\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			code, out, errOut := run(t, tc.input, "-m", mat)
			require.Equal(t, common.ExitSuccess, code, errOut)
			assert.Equal(t, tc.want, out)
		})
	}
}

func TestIDs(t *testing.T) {
	code, out, _ := run(t, "", "-i", pairFile, "--ids")
	require.Equal(t, common.ExitSuccess, code)
	assert.True(t, strings.HasPrefix(out, "P1 P2\n"), out)
}

func TestOutputFile(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "out.txt")
	code, out, _ := run(t, "", "-i", pairFile, "-o", fname)
	require.Equal(t, common.ExitSuccess, code)
	assert.Empty(t, out)
	b, err := os.ReadFile(fname)
	require.NoError(t, err)
	assert.Equal(t, "Score: 2624", lastLine(string(b)))
}

func TestConfigFile(t *testing.T) {
	cfg := tmpFile(t, "input: "+pairFile+"\ngap: -10\nids: true\n")
	code, out, errOut := run(t, "", "-c", cfg)
	require.Equal(t, common.ExitSuccess, code, errOut)
	assert.Equal(t, "Score: 2606", lastLine(out))
	assert.True(t, strings.HasPrefix(out, "P1 P2\n"))

	// the command line wins
	code, out, _ = run(t, "", "-c", cfg, "-g", "-2")
	require.Equal(t, common.ExitSuccess, code)
	assert.Equal(t, "Score: 2624", lastLine(out))
}

func TestVerbose(t *testing.T) {
	code, _, errOut := run(t, "", "-i", pairFile, "-v")
	require.Equal(t, common.ExitSuccess, code)
	assert.Contains(t, errOut, "msg=split")
	assert.Contains(t, errOut, "msg=aligned")
	assert.Contains(t, errOut, "self1=")
	assert.Contains(t, errOut, `msg="substitution matrix"`)

	_, _, errOut = run(t, "", "-i", pairFile)
	assert.Empty(t, errOut)
}

func TestUsageErrors(t *testing.T) {
	badCfg := tmpFile(t, "gapp: -3\n")
	posGap := tmpFile(t, "gap: 3\n")
	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{"unknown flag", []string{"--bogus"}, "unknown flag"},
		{"extra argument", []string{"file.fa"}, "unexpected arguments"},
		{"bad gap value", []string{"-g", "lots"}, "invalid argument"},
		{"positive gap", []string{"-g", "1"}, "lte"},
		{"unknown config key", []string{"-c", badCfg}, "gapp"},
		{"positive gap in config", []string{"-c", posGap}, "lte"},
		{"missing config", []string{"-c", badCfg + "_gone"}, "no such file"},
		{"output over input", []string{"-i", pairFile, "-o", pairFile}, "nefield"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			code, out, errOut := run(t, "", tc.args...)
			assert.Equal(t, common.ExitUsageError, code)
			assert.Empty(t, out)
			assert.True(t, strings.HasPrefix(errOut, "hirschberg: "), errOut)
			assert.Contains(t, errOut, tc.msg)
			assert.Contains(t, errOut, "Usage:")
		})
	}
}

func TestFailures(t *testing.T) {
	three := tmpFile(t, ">a\nAC\n>b\nAC\n>c\nAC\n")
	tests := []struct {
		name  string
		args  []string
		stdin string
		msg   string
	}{
		{"missing input", []string{"-i", pairFile + "_gone"}, "", "no such file"},
		{"three records", []string{"-i", three}, "", "3 records"},
		{"one record on stdin", nil, ">a\nAC\n", "exactly two"},
		{"empty stdin", nil, "", "no records"},
		{"unknown symbol", nil, ">a\nACJ\n>b\nAC\n", "unknown symbol"},
		{"missing matrix", []string{"-m", pairFile + "_gone"}, ">a\nA\n>b\nA\n", "substitution matrix"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			code, out, errOut := run(t, tc.stdin, tc.args...)
			assert.Equal(t, common.ExitFailure, code)
			assert.Empty(t, out)
			assert.True(t, strings.HasPrefix(errOut, "hirschberg: "), errOut)
			assert.Contains(t, errOut, tc.msg)
			assert.NotContains(t, errOut, "Usage:")
		})
	}
}

// A bad output path is reported before any alignment work starts.
func TestOutputCheckedFirst(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "no_such_dir", "out.txt")
	code, out, errOut := run(t, "", "-i", pairFile, "-o", fname, "-v")
	assert.Equal(t, common.ExitFailure, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "no such file")
	assert.NotContains(t, errOut, "msg=split")
	assert.NotContains(t, errOut, "msg=aligned")
	_, err := os.Stat(fname)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestHelp(t *testing.T) {
	code, out, _ := run(t, "", "--help")
	assert.Equal(t, common.ExitSuccess, code)
	assert.Contains(t, out, "--gap")
	assert.Contains(t, out, "positive values are rejected")
}
