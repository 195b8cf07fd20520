package bfs

import (
	"context"
	"errors"
	"fmt"
)

// ErrNeighbors is returned when fetching neighbors from the graph fails.
var ErrNeighbors = errors.New("bfs: neighbor iteration error")

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph Graph
	opts  BFSOptions
	ctx   context.Context
	queue []queueItem
	res   *BFSResult
}

// BFS runs breadth-first search on g starting from startID.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options (including an excluded start),
// ErrNeighbors for graph failures, or any hook error.
//
// Complexity: O(V + E) over the non-excluded part of the graph.
func BFS(g Graph, startID string, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, startID)
	}
	if _, gone := o.Exclude[startID]; gone {
		return nil, fmt.Errorf("%w: start %q is excluded", ErrOptionViolation, startID)
	}

	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		res: &BFSResult{
			Depth:  make(map[string]int),
			Parent: make(map[string]string),
		},
	}
	w.enqueue(startID, 0, "")

	return w.res, w.loop()
}

// enqueue marks id reached at depth d and records its parent.
func (w *walker) enqueue(id string, d int, parent string) {
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// neighbors returns the adjacency of id in the configured direction.
func (w *walker) neighbors(id string) ([]string, error) {
	switch w.opts.Direction {
	case Backward:
		return w.graph.InNeighborIDs(id)
	case Both:
		out, err := w.graph.OutNeighborIDs(id)
		if err != nil {
			return nil, err
		}
		in, err := w.graph.InNeighborIDs(id)
		if err != nil {
			return nil, err
		}
		return append(out, in...), nil
	default:
		return w.graph.OutNeighborIDs(id)
	}
}

// enqueueNeighbors applies exclusion and MaxDepth, and enqueues
// each unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) error {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	nbrs, err := w.neighbors(item.id)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %q: %v", ErrNeighbors, item.id, err)
	}
	for _, nbr := range nbrs {
		if _, seen := w.res.Depth[nbr]; seen {
			continue
		}
		if _, gone := w.opts.Exclude[nbr]; gone {
			continue
		}
		w.enqueue(nbr, next, item.id)
	}

	return nil
}
