package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Graph is the adjacency surface BFS walks. *core.Graph satisfies it.
type Graph interface {
	HasVertex(id string) bool
	OutNeighborIDs(id string) ([]string, error)
	InNeighborIDs(id string) ([]string, error)
}

// Direction selects which adjacency set is expanded from each vertex.
type Direction int

const (
	// Forward follows edges tail→head (out-neighbors).
	Forward Direction = iota
	// Backward follows edges head→tail (in-neighbors), i.e. the reversed graph
	// without materializing it.
	Backward
	// Both ignores direction (weak connectivity).
	Both
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case Both:
		return "both"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Option configures BFS behavior via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when BFS runs.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Direction chooses the adjacency set to expand.
	Direction Direction

	// Exclude lists vertices treated as removed from the graph. They are never
	// enqueued, so paths through them do not exist.
	Exclude map[string]struct{}

	// OnVisit is called when visiting a vertex. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(id string, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	err error
}

// DefaultOptions returns a BFSOptions with defaults:
// background context, forward direction, nothing excluded, no depth limit,
// no-op visit hook.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:       context.Background(),
		Direction: Forward,
		OnVisit:   func(string, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDirection selects Forward, Backward or Both.
func WithDirection(d Direction) Option {
	return func(o *BFSOptions) {
		if d < Forward || d > Both {
			o.err = fmt.Errorf("%w: unknown direction %d", ErrOptionViolation, int(d))
			return
		}
		o.Direction = d
	}
}

// WithExclude removes the given vertices from the traversal. Excluding the
// start vertex is an option violation.
func WithExclude(ids ...string) Option {
	return func(o *BFSOptions) {
		if o.Exclude == nil {
			o.Exclude = make(map[string]struct{}, len(ids))
		}
		for _, id := range ids {
			o.Exclude[id] = struct{}{}
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: vertices visited, in visit sequence.
//   - Depth: hop distance from the start for every reached vertex.
//   - Parent: predecessor of each reached vertex in the BFS tree.
type BFSResult struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// OnTreePath reports whether via lies on the tree path from the start to dest.
// It walks parent links only, without allocating.
func (r *BFSResult) OnTreePath(dest, via string) bool {
	if _, ok := r.Depth[dest]; !ok {
		return false
	}
	for cur := dest; ; {
		if cur == via {
			return true
		}
		prev, ok := r.Parent[cur]
		if !ok {
			return false
		}
		cur = prev
	}
}
