// Command toromaze generates a maze on an N-dimensional torus, optionally
// walks an explorer through it and solves it, then prints the plane the
// explorer stands on.
//
// Usage:
//
//	toromaze -dims "12, 12, 3" -seed 7 -solve -walk rrdd -png maze.png
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/toromaze/config"
	"github.com/katalvlaran/toromaze/logger"
	"github.com/katalvlaran/toromaze/maze"
	"github.com/katalvlaran/toromaze/render"
	"github.com/katalvlaran/toromaze/torus"
)

var errBadMove = errors.New("toromaze: unknown move")

// moves maps walk-script characters to a view slot and direction.
var moves = map[rune]struct {
	slot int
	sign torus.Sign
}{
	'u': {0, torus.Negative},
	'd': {0, torus.Positive},
	'l': {1, torus.Negative},
	'r': {1, torus.Positive},
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("toromaze", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "Optional YAML configuration file.")
	dims := fs.String("dims", "", "Comma-separated maze dimensions, e.g. \"20, 20, 4\".")
	seed := fs.Int64("seed", 0, "Random seed; 0 picks one from the clock.")
	solve := fs.Bool("solve", false, "If set, marks the shortest path from start to end.")
	view := fs.String("view", "", "Axes shown vertically and horizontally, e.g. \"0,2\".")
	pngPath := fs.String("png", "", "The name of the .png file to which the plane will be saved.")
	walk := fs.String("walk", "", "Moves to make before printing: u, d, l and r.")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading configuration: %s\n", err)
		return 1
	}
	if err := applyFlags(fs, &cfg, *dims, *seed, *solve, *view, *pngPath); err != nil {
		fmt.Fprintf(stderr, "Invalid argument: %s\n", err)
		fmt.Fprintln(stderr, "Run with -help for more information.")
		return 1
	}

	log, closer, err := logger.New(cfg.Logging, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error creating logger: %s\n", err)
		return 1
	}
	defer closer.Close()
	log = log.With("session", uuid.NewString())

	if err := play(cfg, *walk, log, stdout); err != nil {
		log.Error("toromaze failed", "error", err)
		return 1
	}

	return 0
}

// applyFlags overlays explicitly set flags on cfg and validates the result.
func applyFlags(fs *flag.FlagSet, cfg *config.Config, dims string, seed int64, solve bool, view, pngPath string) error {
	var err error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "dims":
			// Runs before "view": Visit goes in lexical order.
			cfg.Maze.Dimensions = dims
			cfg.ResetViewAxes()
		case "seed":
			cfg.Maze.Seed = seed
		case "solve":
			cfg.Output.ShowSolution = solve
		case "view":
			var axes [2]int
			if axes, err = parseView(view); err == nil {
				cfg.Maze.ViewAxes = axes
			}
		case "png":
			cfg.Output.PNGPath = pngPath
		}
	})
	if err != nil {
		return err
	}

	return cfg.Validate()
}

func parseView(s string) ([2]int, error) {
	var axes [2]int
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return axes, fmt.Errorf("view %q: want two comma-separated axes", s)
	}
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return axes, fmt.Errorf("view %q: %w", s, err)
		}
		axes[i] = n
	}

	return axes, nil
}

// play builds the maze described by cfg, applies the walk script and
// writes the requested output.
func play(cfg config.Config, script string, log *slog.Logger, stdout io.Writer) error {
	shape, err := cfg.Shape()
	if err != nil {
		return err
	}
	m, err := maze.New(shape, maze.WithLogger(log))
	if err != nil {
		return err
	}
	for slot, axis := range cfg.Maze.ViewAxes {
		if err := m.SetViewAxis(slot, axis); err != nil {
			return err
		}
	}

	seed := cfg.Maze.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	m.Generate(rand.New(rand.NewSource(seed)))
	log.Info("maze ready", "shape", shape.String(), "seed", seed, "walls_open", m.OpenWalls())

	refused := 0
	for _, ch := range script {
		mv, ok := moves[ch]
		if !ok {
			return fmt.Errorf("%w: %q", errBadMove, ch)
		}
		if !m.Walk(mv.slot, mv.sign) {
			refused++
		}
	}
	if script != "" {
		log.Info("walk done", "moves", len(script), "refused", refused,
			"position", m.Position().String(), "at_end", m.AtEnd())
	}

	opts := []render.Option{render.WithCellPixels(cfg.Output.CellPixels)}
	if cfg.Output.ShowSolution {
		path, err := m.Solve()
		if err != nil {
			return err
		}
		log.Info("maze solved", "length", len(path))
		opts = append(opts, render.WithPath(path))
	}

	fmt.Fprint(stdout, render.Text(m, opts...))
	if m.AtEnd() {
		fmt.Fprintln(stdout, "You reached the end.")
	}

	if cfg.Output.PNGPath == "" {
		return nil
	}
	f, err := os.Create(cfg.Output.PNGPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", cfg.Output.PNGPath, err)
	}
	defer f.Close()
	if err := render.WritePNG(f, m, opts...); err != nil {
		return err
	}
	log.Info("image written", "path", cfg.Output.PNGPath)

	return nil
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
