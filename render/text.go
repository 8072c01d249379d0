package render

import (
	"strings"

	"github.com/katalvlaran/toromaze/maze"
)

var markRunes = [...]string{
	markNone:     "  ",
	markPath:     "**",
	markEnd:      "EE",
	markStart:    "SS",
	markExplorer: "@@",
}

// Text draws the view plane as ASCII art, one line per wall row and cell row.
func Text(m *maze.Maze, opts ...Option) string {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	p := newPlane(m, cfg)

	var b strings.Builder
	for r := 0; r <= p.rows; r++ {
		// Wall row above r; the last one repeats the wraparound walls of row 0.
		for c := 0; c < p.cols; c++ {
			b.WriteByte('+')
			if p.wallAbove(r, c) {
				b.WriteString("--")
			} else {
				b.WriteString("  ")
			}
		}
		b.WriteString("+\n")
		if r == p.rows {
			break
		}

		for c := 0; c <= p.cols; c++ {
			if p.wallLeft(r, c) {
				b.WriteByte('|')
			} else {
				b.WriteByte(' ')
			}
			if c < p.cols {
				b.WriteString(markRunes[p.mark(r, c)])
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}
