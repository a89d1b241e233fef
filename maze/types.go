// Package maze defines the generator contract, sentinel errors, and
// functional options (seed / RNG injection) for maze carving.
package maze

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/gridmaze/grid"
)

// Sentinel errors for maze generation.
var (
	// ErrNilGrid is returned if a nil *grid.Grid is passed to any generator.
	ErrNilGrid = errors.New("maze: grid is nil")

	// ErrUnknownGenerator is returned by Generate for an unrecognized name.
	ErrUnknownGenerator = errors.New("maze: unknown generator")
)

// Generator names accepted by Generate.
const (
	// GenBacktracker selects the randomized DFS backtracker: long winding
	// corridors with few branches.
	GenBacktracker = "backtracker"
	// GenPrim selects randomized Prim: evenly branching, organic mazes.
	GenPrim = "prim"
	// GenKruskal selects randomized Kruskal over a disjoint-set forest:
	// many short dead ends with uniform structure.
	GenKruskal = "kruskal"
)

// Result is the outcome of a generator run.
//
// Grid points at the (in-place mutated) grid holding the final wall layout.
// Sequence is the deterministic carve order: replaying it against an
// all-wall grid of the same dimensions reproduces Grid's layout exactly —
// see Replay. The declared start and end are always the last two entries,
// force-carved even when they fall off the lattice parity.
type Result struct {
	Grid     *grid.Grid
	Sequence []grid.Coord
}

// Options holds the random source configuration for a generator run.
type Options struct {
	// Seed drives the deterministic default RNG. Seed 0 selects a fixed
	// library seed, so the zero Options value is still reproducible.
	Seed int64

	// Rand, when non-nil, overrides Seed entirely. The generator consumes
	// the source single-threaded; sharing it across goroutines is on the
	// caller.
	Rand *rand.Rand
}

// Option configures maze generation via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options using the fixed default seed.
func DefaultOptions() Options {
	return Options{Seed: 0, Rand: nil}
}

// WithSeed sets the deterministic seed (0 keeps the library default).
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithRand injects a caller-owned random source, overriding WithSeed.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// rng resolves the effective random source for a run.
func (o *Options) rng() *rand.Rand {
	if o.Rand != nil {
		return o.Rand
	}

	return rngFromSeed(o.Seed)
}

// Generate dispatches to the generator named by method.
//
//	– GenBacktracker: Generate == Backtracker(g, opts...)
//	– GenPrim:        Generate == Prim(g, opts...)
//	– GenKruskal:     Generate == Kruskal(g, opts...)
//	– otherwise:      ErrUnknownGenerator.
func Generate(g *grid.Grid, method string, opts ...Option) (*Result, error) {
	switch method {
	case GenBacktracker:
		return Backtracker(g, opts...)
	case GenPrim:
		return Prim(g, opts...)
	case GenKruskal:
		return Kruskal(g, opts...)
	default:
		return nil, ErrUnknownGenerator
	}
}

// Replay re-applies a carve sequence: it walls g completely, then clears the
// wall flag at every sequence entry in order. Out-of-bounds entries are
// ignored. Replaying a Result.Sequence onto a grid of the same dimensions
// reproduces the generated layout exactly.
// Complexity: O(Rows×Cols + len(sequence)).
func Replay(g *grid.Grid, sequence []grid.Coord) {
	g.FillWalls()
	for _, co := range sequence {
		if cell := g.CellAt(co); cell != nil {
			cell.Wall = false
		}
	}
}
