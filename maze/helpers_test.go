package maze_test

import (
	"testing"

	"github.com/katalvlaran/toromaze/maze"
	"github.com/katalvlaran/toromaze/torus"
	"github.com/stretchr/testify/require"
)

// newMaze builds a maze with every wall present.
func newMaze(t testing.TB, dims ...int) *maze.Maze {
	t.Helper()
	m, err := maze.New(dims)
	require.NoError(t, err)
	return m
}

// openAll clears every wall except, if keepWrap is set, the walls that join
// the last cell of an axis back to cell 0.
func openAll(m *maze.Maze, keepWrap bool) {
	s := m.Shape()
	for i := 0; i < s.WallCount(); i++ {
		w := s.WallAt(i)
		if keepWrap && w.Cell[w.Axis] == s[w.Axis]-1 {
			continue
		}
		m.SetWall(w, false)
	}
}

// reachable runs a breadth-first search over open walls from c and returns
// the visited flags by flat cell index.
func reachable(m *maze.Maze, c torus.Cell) []bool {
	s := m.Shape()
	seen := make([]bool, s.CellCount())
	seen[s.CellIndex(c)] = true
	queue := []torus.Cell{c}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, l := range s.Neighbors(cur) {
			i := s.CellIndex(l.Cell)
			if seen[i] || m.Wall(l.Wall) {
				continue
			}
			seen[i] = true
			queue = append(queue, l.Cell)
		}
	}
	return seen
}

// requireValidPath checks endpoints and that each step crosses one open wall.
func requireValidPath(t *testing.T, m *maze.Maze, path []torus.Cell, from, to torus.Cell) {
	t.Helper()
	require.NotEmpty(t, path)
	require.Equal(t, from, path[0])
	require.Equal(t, to, path[len(path)-1])

	s := m.Shape()
	for i := 1; i < len(path); i++ {
		crossed := false
		for _, l := range s.Neighbors(path[i-1]) {
			if l.Cell.Equal(path[i]) && !m.Wall(l.Wall) {
				crossed = true
				break
			}
		}
		require.True(t, crossed, "step %s → %s does not cross an open wall", path[i-1], path[i])
	}
}
