package render

import (
	"github.com/katalvlaran/toromaze/maze"
	"github.com/katalvlaran/toromaze/torus"
)

// mark is what a cell shows besides its walls.
type mark uint8

const (
	markNone mark = iota
	markPath
	markEnd
	markStart
	markExplorer
)

// Options configures rendering.
type Options struct {
	Path       []torus.Cell // cells drawn as part of the solution
	CellPixels int          // pixel size of one cell in Image, at least 3
}

// Option represents a functional option for rendering.
type Option func(*Options)

// WithPath highlights the given cells.
func WithPath(path []torus.Cell) Option {
	return func(o *Options) {
		o.Path = path
	}
}

// WithCellPixels sets the cell size for Image. Values below 3 are ignored.
func WithCellPixels(n int) Option {
	return func(o *Options) {
		if n >= 3 {
			o.CellPixels = n
		}
	}
}

// DefaultOptions returns options with no path and 9-pixel cells.
func DefaultOptions() Options {
	return Options{CellPixels: 9}
}

// plane is a 2-D slice of a maze.
type plane struct {
	m          *maze.Maze
	shape      torus.Shape
	origin     torus.Cell // explorer position
	start, end torus.Cell
	row, col   int // axes bound to view slots 0 and 1
	rows, cols int
	onPath     map[int]bool
}

func newPlane(m *maze.Maze, cfg Options) *plane {
	shape := m.Shape()
	axes := m.ViewAxes()
	p := &plane{
		m:      m,
		shape:  shape,
		origin: m.Position(),
		start:  m.Start(),
		end:    m.End(),
		row:    axes[0],
		col:    axes[1],
		rows:   1,
		cols:   shape[axes[1]],
		onPath: make(map[int]bool, len(cfg.Path)),
	}
	if p.row != p.col {
		p.rows = shape[p.row]
	}
	for _, c := range cfg.Path {
		if shape.Contains(c) {
			p.onPath[shape.CellIndex(c)] = true
		}
	}

	return p
}

// flat reports whether the plane is a single row.
func (p *plane) flat() bool { return p.row == p.col }

// cell returns the maze cell shown at row r, column c; both wrap.
func (p *plane) cell(r, c int) torus.Cell {
	cell := p.origin.Clone()
	if !p.flat() {
		cell[p.row] = mod(r, p.rows)
	}
	cell[p.col] = mod(c, p.cols)

	return cell
}

// wallAbove reports whether the wall between (r-1, c) and (r, c) is present.
func (p *plane) wallAbove(r, c int) bool {
	if p.flat() {
		return true
	}

	return p.m.Wall(torus.Wall{Cell: p.cell(r-1, c), Axis: p.row})
}

// wallLeft reports whether the wall between (r, c-1) and (r, c) is present.
func (p *plane) wallLeft(r, c int) bool {
	return p.m.Wall(torus.Wall{Cell: p.cell(r, c-1), Axis: p.col})
}

// mark returns the mark of cell (r, c). Start and end hide the explorer.
func (p *plane) mark(r, c int) mark {
	cell := p.cell(r, c)
	switch {
	case cell.Equal(p.start):
		return markStart
	case cell.Equal(p.end):
		return markEnd
	case cell.Equal(p.origin):
		return markExplorer
	case p.onPath[p.shape.CellIndex(cell)]:
		return markPath
	}

	return markNone
}

func mod(a, n int) int {
	a %= n
	if a < 0 {
		a += n
	}

	return a
}
