package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

// requirePlane checks the layout of a rows×cols text dump: alternating
// wall and cell lines of equal width with corners every third column.
// Wall presence is not checked; the first and last wall lines show the
// wraparound walls, which generation may open.
func requirePlane(t *testing.T, out string, rows, cols int) {
	t.Helper()
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.GreaterOrEqual(t, len(lines), 2*rows+1)
	for i, line := range lines[:2*rows+1] {
		require.Len(t, line, 3*cols+1, "line %d: %q", i, line)
		if i%2 == 1 {
			continue
		}
		for c := 0; c <= cols; c++ {
			assert.Equal(t, byte('+'), line[3*c], "line %d column %d: %q", i, c, line)
		}
	}
	assert.Equal(t, lines[0], lines[2*rows], "wraparound row repeats")
}

func TestRun_PrintsPlane(t *testing.T) {
	code, out, errOut := runCLI(t, "-dims", "3, 4", "-seed", "5", "-solve")
	require.Equal(t, 0, code, errOut)

	requirePlane(t, out, 3, 4)
	assert.Contains(t, out, "SS")
	assert.Contains(t, errOut, "session=")
	assert.Contains(t, errOut, "maze solved")
}

func TestRun_Deterministic(t *testing.T) {
	_, first, _ := runCLI(t, "-dims", "6, 5", "-seed", "42", "-walk", "rrdl")
	_, second, _ := runCLI(t, "-dims", "6, 5", "-seed", "42", "-walk", "rrdl")
	assert.Equal(t, first, second)
}

func TestRun_ThreeDimensionsWithView(t *testing.T) {
	code, out, errOut := runCLI(t, "-dims", "2, 3, 4", "-seed", "9", "-view", "1,2")
	require.Equal(t, 0, code, errOut)
	requirePlane(t, out, 3, 4)
}

func TestRun_DimsFlagResetsOneDimensionalView(t *testing.T) {
	t.Setenv("TOROMAZE_DIMS", "7")
	code, out, errOut := runCLI(t, "-dims", "4, 4", "-seed", "1")
	require.Equal(t, 0, code, errOut)
	requirePlane(t, out, 4, 4)

	t.Setenv("TOROMAZE_DIMS", "4, 4")
	code, out, errOut = runCLI(t, "-dims", "7", "-seed", "1")
	require.Equal(t, 0, code, errOut)
	requirePlane(t, out, 1, 7)
}

func TestRun_Ring(t *testing.T) {
	code, out, errOut := runCLI(t, "-dims", "5", "-seed", "3")
	require.Equal(t, 0, code, errOut)
	assert.True(t, strings.HasPrefix(out, "+--+--+--+--+--+\n"))
}

func TestRun_WritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maze.png")
	code, _, errOut := runCLI(t, "-dims", "4, 4", "-seed", "1", "-solve", "-png", path)
	require.Equal(t, 0, code, errOut)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	_, err = png.Decode(f)
	assert.NoError(t, err)
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"MalformedDims", []string{"-dims", "3, x"}, "malformed dimension list"},
		{"ZeroDim", []string{"-dims", "3, 0"}, "every dimension must be positive"},
		{"BadView", []string{"-dims", "3, 3", "-view", "0"}, "two comma-separated axes"},
		{"ViewOutOfRange", []string{"-dims", "3, 3", "-view", "0,2"}, "view axis 1 is 2"},
		{"BadMove", []string{"-dims", "3, 3", "-seed", "1", "-walk", "rx"}, "unknown move"},
		{"MissingConfig", []string{"-config", "does-not-exist.yaml"}, "cannot read config file"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			code, out, errOut := runCLI(t, tc.args...)
			assert.Equal(t, 1, code)
			assert.Contains(t, errOut, tc.want)
			assert.Empty(t, out)
		})
	}
}

func TestParseView(t *testing.T) {
	axes, err := parseView(" 2, 0 ")
	require.NoError(t, err)
	assert.Equal(t, [2]int{2, 0}, axes)

	_, err = parseView("a,1")
	assert.Error(t, err)
}
