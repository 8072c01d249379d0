package torus

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Sentinel errors for shape construction and parsing.
var (
	// ErrEmptyShape indicates a dimension vector with no axes.
	ErrEmptyShape = errors.New("torus: shape must have at least one dimension")

	// ErrZeroDimension indicates an axis of size zero or less.
	ErrZeroDimension = errors.New("torus: every dimension must be positive")

	// ErrShapeTooLarge indicates the wall count does not fit in an int.
	ErrShapeTooLarge = errors.New("torus: shape too large")

	// ErrMalformedShape indicates an unparsable dimension string.
	ErrMalformedShape = errors.New("torus: malformed dimension list")
)

// Shape is the size of every axis. Build it with NewShape or ParseShape.
type Shape []int

// Cell is a position on a Shape, one coordinate per axis.
type Cell []int

// Wall separates Cell from its positive neighbour along Axis.
type Wall struct {
	Cell Cell
	Axis int
}

// Link pairs a wall with the cell on its far side, as seen from some origin cell.
type Link struct {
	Wall Wall
	Cell Cell
}

// Sign is a direction along an axis.
type Sign bool

const (
	Negative Sign = false // toward 0, wrapping to the last cell
	Positive Sign = true  // away from 0, wrapping to cell 0
)

// String returns "+" or "-".
func (s Sign) String() string {
	if s {
		return "+"
	}

	return "-"
}

// Rand is the random source used to draw cells. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Equal reports whether c and o have the same coordinates.
func (c Cell) Equal(o Cell) bool { return slices.Equal(c, o) }

// Clone returns a copy of c.
func (c Cell) Clone() Cell { return slices.Clone(c) }

// String formats c as "(x, y, ...)".
func (c Cell) String() string {
	parts := make([]string, len(c))
	for i, v := range c {
		parts[i] = strconv.Itoa(v)
	}

	return "(" + strings.Join(parts, ", ") + ")"
}

// String formats w as "(x, y, ...)/axis".
func (w Wall) String() string {
	return fmt.Sprintf("%s/%d", w.Cell, w.Axis)
}

// String formats s in the same comma-separated form ParseShape accepts.
func (s Shape) String() string {
	parts := make([]string, len(s))
	for i, v := range s {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, ", ")
}
