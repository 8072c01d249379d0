package maze

import (
	"errors"
	"io"
	"log/slog"
)

// Sentinel errors returned by maze operations.
var (
	// ErrNoPath indicates the end cell cannot be reached from the start cell.
	ErrNoPath = errors.New("maze: no path between cells")

	// ErrCellOutOfRange indicates a cell that does not belong to the maze's shape.
	ErrCellOutOfRange = errors.New("maze: cell out of range")

	// ErrViewSlot indicates a view slot other than 0 or 1.
	ErrViewSlot = errors.New("maze: view slot must be 0 or 1")

	// ErrAxisOutOfRange indicates an axis not in [0, Dims).
	ErrAxisOutOfRange = errors.New("maze: axis out of range")
)

// Options configures a Maze.
type Options struct {
	Logger *slog.Logger // receives debug records for Generate and Solve
}

// Option represents a functional option for configuring a Maze.
type Option func(*Options)

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns options with a logger that discards everything.
func DefaultOptions() Options {
	return Options{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}
