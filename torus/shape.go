package torus

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

// NewShape validates dims and returns them as a Shape.
// The input slice is copied.
func NewShape(dims ...int) (Shape, error) {
	if len(dims) == 0 {
		return nil, ErrEmptyShape
	}
	total := len(dims)
	for i, d := range dims {
		if d <= 0 {
			return nil, fmt.Errorf("%w: axis %d has size %d", ErrZeroDimension, i, d)
		}
		if total > math.MaxInt/d {
			return nil, fmt.Errorf("%w: %v", ErrShapeTooLarge, dims)
		}
		total *= d
	}

	return Shape(slices.Clone(dims)), nil
}

// ParseShape parses a comma-separated list of positive integers such as
// "50, 40, 30". Whitespace around each entry is ignored; empty or
// non-numeric entries are rejected with ErrMalformedShape.
func ParseShape(s string) (Shape, error) {
	tokens := strings.Split(s, ",")
	dims := make([]int, 0, len(tokens))
	for i, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			return nil, fmt.Errorf("%w: entry %d is empty", ErrMalformedShape, i)
		}
		d, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d: %w", ErrMalformedShape, i, err)
		}
		dims = append(dims, d)
	}

	return NewShape(dims...)
}

// Dims returns the number of axes.
func (s Shape) Dims() int { return len(s) }

// CellCount returns the number of cells, the product of all axis sizes.
func (s Shape) CellCount() int {
	n := 1
	for _, d := range s {
		n *= d
	}

	return n
}

// WallCount returns CellCount()*Dims(), one wall per cell and axis.
func (s Shape) WallCount() int { return s.CellCount() * len(s) }

// Contains reports whether c has one in-range coordinate per axis.
func (s Shape) Contains(c Cell) bool {
	if len(c) != len(s) {
		return false
	}
	for i, v := range c {
		if v < 0 || v >= s[i] {
			return false
		}
	}

	return true
}

// CellIndex flattens c with axis 0 varying fastest.
func (s Shape) CellIndex(c Cell) int {
	index, stride := 0, 1
	for i, d := range s {
		index += stride * c[i]
		stride *= d
	}

	return index
}

// CellAt is the inverse of CellIndex.
func (s Shape) CellAt(index int) Cell {
	c := make(Cell, len(s))
	for i, d := range s {
		c[i] = index % d
		index /= d
	}

	return c
}

// WallIndex flattens w into [0, WallCount()).
func (s Shape) WallIndex(w Wall) int {
	index, stride := 0, 1
	for i, d := range s {
		index += stride * w.Cell[i]
		stride *= d
	}

	return index + stride*w.Axis
}

// WallAt is the inverse of WallIndex.
func (s Shape) WallAt(index int) Wall {
	n := s.CellCount()
	return Wall{Cell: s.CellAt(index % n), Axis: index / n}
}

// Traverse returns the cell one step from c along axis in the given
// direction, wrapping around the axis ends. c is not modified.
func (s Shape) Traverse(c Cell, axis int, sign Sign) Cell {
	next := c.Clone()
	s.step(next, axis, sign)

	return next
}

// step moves c in place.
func (s Shape) step(c Cell, axis int, sign Sign) {
	if sign == Positive {
		if c[axis] == s[axis]-1 {
			c[axis] = 0
		} else {
			c[axis]++
		}
		return
	}
	if c[axis] == 0 {
		c[axis] = s[axis] - 1
	} else {
		c[axis]--
	}
}

// WallsOfCell returns the 2·Dims walls touching c: for each axis, the wall
// on its positive side (named by c) followed by the wall on its negative
// side (named by the previous cell along that axis).
func (s Shape) WallsOfCell(c Cell) []Wall {
	walls := make([]Wall, 0, 2*len(s))
	for axis := range s {
		walls = append(walls,
			Wall{Cell: c.Clone(), Axis: axis},
			Wall{Cell: s.Traverse(c, axis, Negative), Axis: axis},
		)
	}

	return walls
}

// NeighborCells returns the two cells separated by w: w.Cell and the cell
// after it along w.Axis.
func (s Shape) NeighborCells(w Wall) [2]Cell {
	return [2]Cell{w.Cell.Clone(), s.Traverse(w.Cell, w.Axis, Positive)}
}

// Neighbors returns, for each axis and direction, the adjacent cell and the
// wall that separates it from c. Order is axis-major, Negative before Positive.
func (s Shape) Neighbors(c Cell) []Link {
	links := make([]Link, 0, 2*len(s))
	for axis := range s {
		prev := s.Traverse(c, axis, Negative)
		links = append(links, Link{Wall: Wall{Cell: prev.Clone(), Axis: axis}, Cell: prev})

		next := s.Traverse(c, axis, Positive)
		links = append(links, Link{Wall: Wall{Cell: c.Clone(), Axis: axis}, Cell: next})
	}

	return links
}

// Distance is the taxicab distance between a and b taking the shorter way
// around each axis. It never exceeds the number of steps of any path
// between the two cells.
func (s Shape) Distance(a, b Cell) int {
	total := 0
	for i, d := range s {
		delta := a[i] - b[i]
		if delta < 0 {
			delta = -delta
		}
		total += min(delta, d-delta)
	}

	return total
}

// RandomCell draws every coordinate independently and uniformly.
func (s Shape) RandomCell(rng Rand) Cell {
	c := make(Cell, len(s))
	for i, d := range s {
		c[i] = rng.Intn(d)
	}

	return c
}
