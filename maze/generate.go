package maze

import (
	"github.com/katalvlaran/toromaze/torus"
)

// Generate draws new start and end cells, closes every wall and carves a
// random spanning tree. The explorer is moved to the new start.
// Calling Generate again discards the previous layout.
func (m *Maze) Generate(rng torus.Rand) {
	s := m.shape
	m.start = s.RandomCell(rng)
	m.end = s.RandomCell(rng)
	m.resetWalls()

	visited := make([]bool, s.CellCount())
	visited[s.CellIndex(m.start)] = true
	frontier := s.WallsOfCell(m.start)
	opened := 0

	for len(frontier) > 0 {
		// Swap-remove a random frontier wall.
		i := rng.Intn(len(frontier))
		wall := frontier[i]
		last := len(frontier) - 1
		frontier[i] = frontier[last]
		frontier = frontier[:last]

		grew := false
		for _, cell := range s.NeighborCells(wall) {
			ci := s.CellIndex(cell)
			if visited[ci] {
				continue
			}
			for _, w := range s.WallsOfCell(cell) {
				if m.Wall(w) {
					frontier = append(frontier, w)
				}
			}
			visited[ci] = true
			grew = true
		}

		if grew {
			m.SetWall(wall, false)
			opened++
		}
	}

	m.ResetPosition()
	m.log.Debug("maze generated",
		"shape", s.String(),
		"cells", s.CellCount(),
		"opened", opened,
		"start", m.start.String(),
		"end", m.end.String(),
	)
}
