// Package engine configuration: the recognized option surface for embedding
// the gridmaze engine behind a presentation layer.
package engine

import (
	"time"

	"github.com/katalvlaran/gridmaze/maze"
	"github.com/katalvlaran/gridmaze/search"
)

// Defaults for the engine configuration.
const (
	// DefaultRows and DefaultCols size the initial grid.
	DefaultRows = 21
	DefaultCols = 31
	// DefaultCellSize is the per-cell pixel size hint handed through to
	// presentation layers; the engine itself never draws.
	DefaultCellSize = 24
	// DefaultSearchInterval spaces discovery events during playback.
	DefaultSearchInterval = 25 * time.Millisecond
	// DefaultCarveInterval spaces carve events; maze reveals conventionally
	// run faster than search reveals.
	DefaultCarveInterval = 10 * time.Millisecond
)

// Config is the full recognized option surface.
//
// Rows and Cols pass through grid.New's odd-value clamping. CellSize is
// presentation-only: stored, validated to stay positive, and never used by
// the engine. Strategy names are validated when a run is requested, not
// when configured.
type Config struct {
	Rows, Cols int
	CellSize   int

	SearchAlgorithm string
	MazeAlgorithm   string

	SearchInterval time.Duration
	CarveInterval  time.Duration
}

// DefaultConfig returns the canonical configuration: a 21×31 grid, A*
// search, backtracker mazes, and the default playback intervals.
func DefaultConfig() Config {
	return Config{
		Rows:            DefaultRows,
		Cols:            DefaultCols,
		CellSize:        DefaultCellSize,
		SearchAlgorithm: search.AlgAStar,
		MazeAlgorithm:   maze.GenBacktracker,
		SearchInterval:  DefaultSearchInterval,
		CarveInterval:   DefaultCarveInterval,
	}
}

// Option configures an Engine via functional arguments.
type Option func(*Config)

// WithRows sets the grid row count (clamped to an odd supported value).
func WithRows(rows int) Option {
	return func(c *Config) { c.Rows = rows }
}

// WithCols sets the grid column count (clamped to an odd supported value).
func WithCols(cols int) Option {
	return func(c *Config) { c.Cols = cols }
}

// WithCellSize records the per-cell pixel size hint; non-positive values
// fall back to the default.
func WithCellSize(px int) Option {
	return func(c *Config) {
		if px > 0 {
			c.CellSize = px
		}
	}
}

// WithSearchAlgorithm selects the strategy RunSearch uses
// (search.AlgAStar, AlgDijkstra, AlgBFS, AlgDFS).
func WithSearchAlgorithm(name string) Option {
	return func(c *Config) { c.SearchAlgorithm = name }
}

// WithMazeAlgorithm selects the generator RunMaze uses
// (maze.GenBacktracker, GenPrim, GenKruskal).
func WithMazeAlgorithm(name string) Option {
	return func(c *Config) { c.MazeAlgorithm = name }
}

// WithSearchInterval sets the spacing of discovery playback events;
// non-positive values collapse playback to immediate delivery.
func WithSearchInterval(d time.Duration) Option {
	return func(c *Config) {
		if d < 0 {
			d = 0
		}
		c.SearchInterval = d
	}
}

// WithCarveInterval sets the spacing of carve playback events.
func WithCarveInterval(d time.Duration) Option {
	return func(c *Config) {
		if d < 0 {
			d = 0
		}
		c.CarveInterval = d
	}
}
