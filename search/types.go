// Package search defines the shared result contract, sentinel errors,
// functional options, and the strategy dispatcher for grid traversal.
package search

import (
	"errors"

	"github.com/katalvlaran/gridmaze/grid"
)

// Sentinel errors for search execution.
var (
	// ErrNilGrid is returned if a nil *grid.Grid is passed to any strategy.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrUnknownAlgorithm is returned by Run for an unrecognized algorithm name.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")
)

// Algorithm names accepted by Run.
const (
	// AlgAStar selects A* with the Manhattan-distance heuristic.
	AlgAStar = "astar"
	// AlgDijkstra selects Dijkstra's uniform-cost search.
	AlgDijkstra = "dijkstra"
	// AlgBFS selects breadth-first search (discovery-ordered).
	AlgBFS = "bfs"
	// AlgDFS selects depth-first search (expansion-ordered).
	AlgDFS = "dfs"
)

// Result is the shared outcome of every strategy.
//
// Path is the start→goal cell sequence, empty when the goal is unreachable.
// Visited lists every cell the strategy expanded, in the strategy's own
// discovery/finalization order, so a presentation layer can replay "how the
// algorithm explored". Cell metrics (G/H/F, Distance, VisitedAt, Parent)
// remain on the grid after a run for inspection until the next run resets
// them.
type Result struct {
	Path    []grid.Coord
	Visited []grid.Coord
}

// Found reports whether the goal was reached.
func (r *Result) Found() bool { return len(r.Path) > 0 }

// Options holds callbacks customizing a search run.
type Options struct {
	// OnExpand is called once per cell appended to Result.Visited, with the
	// cell's coordinate and its VisitedAt index, in Visited order.
	OnExpand func(co grid.Coord, order int)
}

// Option configures search behavior via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with a no-op OnExpand hook.
func DefaultOptions() Options {
	return Options{
		OnExpand: func(grid.Coord, int) {},
	}
}

// WithOnExpand registers a callback fired for each visited cell.
func WithOnExpand(fn func(co grid.Coord, order int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// Run dispatches to the strategy named by algorithm.
//
//	– AlgAStar:    Run == AStar(g, opts...)
//	– AlgDijkstra: Run == Dijkstra(g, opts...)
//	– AlgBFS:      Run == BFS(g, opts...)
//	– AlgDFS:      Run == DFS(g, opts...)
//	– otherwise:   ErrUnknownAlgorithm.
//
// All strategies use uniform edge cost 1 and 4-directional adjacency, and
// share the Result contract above.
func Run(g *grid.Grid, algorithm string, opts ...Option) (*Result, error) {
	switch algorithm {
	case AlgAStar:
		return AStar(g, opts...)
	case AlgDijkstra:
		return Dijkstra(g, opts...)
	case AlgBFS:
		return BFS(g, opts...)
	case AlgDFS:
		return DFS(g, opts...)
	default:
		return nil, ErrUnknownAlgorithm
	}
}
