package maze

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/toromaze/hashheap"
	"github.com/katalvlaran/toromaze/torus"
)

// Solve returns the shortest path of open walls from start to end,
// inclusive of both cells. It fails with ErrNoPath if end is unreachable.
func (m *Maze) Solve() ([]torus.Cell, error) {
	return m.SolveBetween(m.start, m.end)
}

// SolveBetween returns the shortest path from one cell to another,
// inclusive of both. It fails with ErrCellOutOfRange for foreign cells and
// ErrNoPath if to is unreachable from from.
func (m *Maze) SolveBetween(from, to torus.Cell) ([]torus.Cell, error) {
	if !m.shape.Contains(from) {
		return nil, fmt.Errorf("%w: from %s", ErrCellOutOfRange, from)
	}
	if !m.shape.Contains(to) {
		return nil, fmt.Errorf("%w: to %s", ErrCellOutOfRange, to)
	}

	r := newSolver(m, from, to)
	path, err := r.run()
	if err != nil {
		m.log.Debug("maze unsolved", "from", from.String(), "to", to.String(), "expanded", r.expanded)
		return nil, err
	}
	m.log.Debug("maze solved",
		"from", from.String(),
		"to", to.String(),
		"length", len(path),
		"expanded", r.expanded,
	)

	return path, nil
}

// node is an open-set entry keyed by flat cell index and ordered by f = g + h.
type node struct {
	cell  torus.Cell
	index int
	g     int // steps from the source
	f     int // g plus the heuristic estimate to the target
}

func (n node) Key() int   { return n.index }
func (n node) Value() int { return n.f }

// solver holds the mutable state of one A* run.
type solver struct {
	m        *Maze
	from     torus.Cell
	to       torus.Cell
	target   int                            // flat index of to
	open     *hashheap.Heap[int, int, node] // frontier, decrease-key on better arrival
	closed   []bool                         // finalized cells
	parent   map[int]int                    // cell → predecessor on the best known path
	expanded int                            // popped nodes, for logging
}

func newSolver(m *Maze, from, to torus.Cell) *solver {
	return &solver{
		m:      m,
		from:   from,
		to:     to,
		target: m.shape.CellIndex(to),
		open:   hashheap.New[int, int, node](),
		closed: make([]bool, m.shape.CellCount()),
		parent: make(map[int]int),
	}
}

// run pops the lowest-f node until the target is reached or the open set is empty.
func (r *solver) run() ([]torus.Cell, error) {
	s := r.m.shape
	r.open.Push(hashheap.Keep, node{
		cell:  r.from.Clone(),
		index: s.CellIndex(r.from),
		g:     0,
		f:     s.Distance(r.from, r.to),
	})

	for {
		cur, ok := r.open.Pop()
		if !ok {
			break
		}
		r.expanded++
		if cur.index == r.target {
			return r.path(cur.index), nil
		}
		// Closed before expansion: on a size-1 axis a cell is its own neighbour.
		r.closed[cur.index] = true
		r.expand(cur)
	}

	return nil, fmt.Errorf("%w: from %s to %s", ErrNoPath, r.from, r.to)
}

// expand pushes every unfinalized neighbour reachable through an open wall.
func (r *solver) expand(cur node) {
	s := r.m.shape
	for _, link := range s.Neighbors(cur.cell) {
		ni := s.CellIndex(link.Cell)
		if r.closed[ni] {
			continue
		}
		if r.m.Wall(link.Wall) {
			continue
		}

		g := cur.g + 1
		next := node{cell: link.Cell, index: ni, g: g, f: g + s.Distance(link.Cell, r.to)}
		if !r.open.Push(hashheap.DecreaseKey, next) {
			continue
		}
		r.parent[ni] = cur.index
	}
}

// path follows parent links from the target back to the source.
func (r *solver) path(target int) []torus.Cell {
	s := r.m.shape
	source := s.CellIndex(r.from)

	cells := []torus.Cell{s.CellAt(target)}
	for cur := target; cur != source; {
		cur = r.parent[cur]
		cells = append(cells, s.CellAt(cur))
	}
	slices.Reverse(cells)

	return cells
}
