// Package config loads toromaze settings from YAML, an optional .env file
// and environment variables, in that order of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/toromaze/logger"
	"github.com/katalvlaran/toromaze/torus"
)

// Sentinel errors for configuration loading.
var (
	ErrReadConfig    = errors.New("config: cannot read config file")
	ErrParseConfig   = errors.New("config: cannot parse config file")
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config holds all toromaze settings.
type Config struct {
	Maze    MazeConfig    `yaml:"maze"`
	Output  OutputConfig  `yaml:"output"`
	Logging logger.Config `yaml:"logging"`
}

// MazeConfig describes the maze to generate.
type MazeConfig struct {
	Dimensions string `yaml:"dimensions"` // comma-separated, e.g. "20, 20, 4"
	Seed       int64  `yaml:"seed"`       // 0 picks a time-based seed
	ViewAxes   [2]int `yaml:"view_axes"`  // axes drawn vertically and horizontally
	MaxCells   int    `yaml:"max_cells"`  // upper bound on the cell count, 0 = unlimited
}

// OutputConfig controls what the CLI prints and writes.
type OutputConfig struct {
	ShowSolution bool   `yaml:"show_solution"`
	PNGPath      string `yaml:"png_path"`    // empty disables PNG output
	CellPixels   int    `yaml:"cell_pixels"` // PNG cell size, at least 3
}

// DefaultMaxCells caps the default maze at about four million cells.
const DefaultMaxCells = 1 << 22

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Maze: MazeConfig{
			Dimensions: "20, 20",
			Seed:       0,
			ViewAxes:   [2]int{0, 1},
			MaxCells:   DefaultMaxCells,
		},
		Output: OutputConfig{
			ShowSolution: false,
			PNGPath:      "",
			CellPixels:   9,
		},
		Logging: logger.DefaultConfig(),
	}
}

// Load returns Default overlaid with the YAML file at path (skipped when
// path is empty), then with environment variables. envFiles are loaded with
// godotenv first; without any, a ".env" in the working directory is used if
// present. Variables already set in the environment are not overwritten.
func Load(path string, envFiles ...string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("%w: %w", ErrReadConfig, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("%w: %s: %w", ErrParseConfig, path, err)
		}
	}

	if err := loadEnvFiles(envFiles); err != nil {
		return cfg, err
	}
	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	cfg.normalize()

	return cfg, cfg.Validate()
}

// normalize binds both view slots to axis 0 on one-dimensional shapes.
func (c *Config) normalize() {
	if shape, err := c.Shape(); err == nil && shape.Dims() == 1 {
		c.Maze.ViewAxes = [2]int{0, 0}
	}
}

// ResetViewAxes restores the default view for Maze.Dimensions: axes 0 and
// 1, or axis 0 twice for a one-dimensional shape. Call it after replacing
// the dimensions.
func (c *Config) ResetViewAxes() {
	c.Maze.ViewAxes = [2]int{0, 1}
	c.normalize()
}

func loadEnvFiles(files []string) error {
	if len(files) == 0 {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: .env: %w", ErrReadConfig, err)
		}
		return nil
	}
	if err := godotenv.Load(files...); err != nil {
		return fmt.Errorf("%w: %w", ErrReadConfig, err)
	}

	return nil
}

// applyEnv overrides cfg from TOROMAZE_* and LOG_* variables.
func applyEnv(cfg *Config) error {
	if v, ok := os.LookupEnv("TOROMAZE_DIMS"); ok {
		cfg.Maze.Dimensions = v
	}
	if v, ok := os.LookupEnv("TOROMAZE_SEED"); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: TOROMAZE_SEED: %w", ErrInvalidConfig, err)
		}
		cfg.Maze.Seed = seed
	}
	if v, ok := os.LookupEnv("TOROMAZE_PNG"); ok {
		cfg.Output.PNGPath = v
	}
	if v, ok := os.LookupEnv("TOROMAZE_SHOW_SOLUTION"); ok {
		show, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: TOROMAZE_SHOW_SOLUTION: %w", ErrInvalidConfig, err)
		}
		cfg.Output.ShowSolution = show
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("LOG_CONSOLE_FORMAT"); v != "" {
		cfg.Logging.ConsoleFormat = v
	}
	if v := os.Getenv("LOG_FILE_ENABLED"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			cfg.Logging.FileEnabled = enabled
		}
	}
	if v := os.Getenv("LOG_FILE_PATH"); v != "" {
		cfg.Logging.FilePath = v
	}

	return nil
}

// Shape parses Maze.Dimensions.
func (c Config) Shape() (torus.Shape, error) {
	return torus.ParseShape(c.Maze.Dimensions)
}

// Validate checks the dimensions, view axes and output settings.
func (c Config) Validate() error {
	shape, err := c.Shape()
	if err != nil {
		return fmt.Errorf("%w: dimensions %q: %w", ErrInvalidConfig, c.Maze.Dimensions, err)
	}
	if c.Maze.MaxCells > 0 && shape.CellCount() > c.Maze.MaxCells {
		return fmt.Errorf("%w: %s has %d cells, max_cells is %d",
			ErrInvalidConfig, shape, shape.CellCount(), c.Maze.MaxCells)
	}
	for slot, axis := range c.Maze.ViewAxes {
		if axis < 0 || axis >= shape.Dims() {
			return fmt.Errorf("%w: view axis %d is %d, shape has %d axes",
				ErrInvalidConfig, slot, axis, shape.Dims())
		}
	}
	if c.Output.PNGPath != "" && c.Output.CellPixels < 3 {
		return fmt.Errorf("%w: cell_pixels must be at least 3, got %d", ErrInvalidConfig, c.Output.CellPixels)
	}

	return nil
}
