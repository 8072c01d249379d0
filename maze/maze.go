package maze

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/toromaze/torus"
)

// Maze is a set of walls on a torus with a start, an end and an explorer.
type Maze struct {
	shape    torus.Shape
	start    torus.Cell
	end      torus.Cell
	position torus.Cell
	axes     [2]int // axes shown vertically (slot 0) and horizontally (slot 1)
	walls    []bool // indexed by shape.WallIndex; true = present
	log      *slog.Logger
}

// New returns a maze over dims with every wall present and start, end and
// position at the origin. Call Generate before use.
// It fails with torus.ErrEmptyShape or torus.ErrZeroDimension.
func New(dims []int, opts ...Option) (*Maze, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	shape, err := torus.NewShape(dims...)
	if err != nil {
		return nil, err
	}

	axes := [2]int{0, 1}
	if shape.Dims() == 1 {
		axes[1] = 0
	}

	m := &Maze{
		shape:    shape,
		start:    make(torus.Cell, shape.Dims()),
		end:      make(torus.Cell, shape.Dims()),
		position: make(torus.Cell, shape.Dims()),
		axes:     axes,
		walls:    make([]bool, shape.WallCount()),
		log:      cfg.Logger,
	}
	m.resetWalls()

	return m, nil
}

// Shape returns the maze dimensions.
func (m *Maze) Shape() torus.Shape { return m.shape }

// Start returns a copy of the start cell.
func (m *Maze) Start() torus.Cell { return m.start.Clone() }

// End returns a copy of the end cell.
func (m *Maze) End() torus.Cell { return m.end.Clone() }

// Position returns a copy of the explorer position.
func (m *Maze) Position() torus.Cell { return m.position.Clone() }

// AtEnd reports whether the explorer stands on the end cell.
func (m *Maze) AtEnd() bool { return m.position.Equal(m.end) }

// ViewAxes returns the axes bound to view slots 0 and 1.
func (m *Maze) ViewAxes() [2]int { return m.axes }

// Wall reports whether w is present.
// It panics if w does not belong to the maze's shape.
func (m *Maze) Wall(w torus.Wall) bool {
	return m.walls[m.wallIndex(w)]
}

// SetWall sets the presence of w.
// It panics if w does not belong to the maze's shape.
func (m *Maze) SetWall(w torus.Wall, present bool) {
	m.walls[m.wallIndex(w)] = present
}

func (m *Maze) wallIndex(w torus.Wall) int {
	if w.Axis < 0 || w.Axis >= m.shape.Dims() || !m.shape.Contains(w.Cell) {
		panic(fmt.Sprintf("maze: wall %s outside shape %s", w, m.shape))
	}

	return m.shape.WallIndex(w)
}

// OpenWalls returns the number of walls that are not present.
func (m *Maze) OpenWalls() int {
	n := 0
	for _, present := range m.walls {
		if !present {
			n++
		}
	}

	return n
}

func (m *Maze) resetWalls() {
	for i := range m.walls {
		m.walls[i] = true
	}
}

// SetEndpoints replaces the start and end cells.
func (m *Maze) SetEndpoints(start, end torus.Cell) error {
	if !m.shape.Contains(start) {
		return fmt.Errorf("%w: start %s", ErrCellOutOfRange, start)
	}
	if !m.shape.Contains(end) {
		return fmt.Errorf("%w: end %s", ErrCellOutOfRange, end)
	}
	m.start = start.Clone()
	m.end = end.Clone()

	return nil
}

// ResetPosition moves the explorer back to the start cell.
func (m *Maze) ResetPosition() {
	m.position = m.start.Clone()
}

// SetPosition moves the explorer to c regardless of walls.
func (m *Maze) SetPosition(c torus.Cell) error {
	if !m.shape.Contains(c) {
		return fmt.Errorf("%w: position %s", ErrCellOutOfRange, c)
	}
	m.position = c.Clone()

	return nil
}

// SetViewAxis binds slot (0 or 1) to axis.
func (m *Maze) SetViewAxis(slot, axis int) error {
	if slot != 0 && slot != 1 {
		return fmt.Errorf("%w: got %d", ErrViewSlot, slot)
	}
	if axis < 0 || axis >= m.shape.Dims() {
		return fmt.Errorf("%w: got %d, maze has %d axes", ErrAxisOutOfRange, axis, m.shape.Dims())
	}
	m.axes[slot] = axis

	return nil
}

// Walk moves the explorer one step along the axis bound to slot.
// The move is refused, and Walk returns false, if the wall between the
// current and the destination cell is present or slot is invalid.
func (m *Maze) Walk(slot int, sign torus.Sign) bool {
	if slot != 0 && slot != 1 {
		return false
	}
	axis := m.axes[slot]
	dest := m.shape.Traverse(m.position, axis, sign)

	// The separating wall is named by whichever cell comes first along axis.
	between := torus.Wall{Cell: m.position, Axis: axis}
	if sign == torus.Negative {
		between.Cell = dest
	}
	if m.Wall(between) {
		return false
	}
	m.position = dest

	return true
}
