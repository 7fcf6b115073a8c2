package traverse

import (
	"context"

	"github.com/memgraph-project/memgraph/graph"
)

// Result holds the outcome of one BFS traversal: visit order and
// per-node depth from the start.
type Result struct {
	Order []graph.NodeId
	Depth map[graph.NodeId]int
}

type queueItem struct {
	id    graph.NodeId
	depth int
}

// walker encapsulates mutable BFS state, split into small
// enqueue/dequeue/visit steps for readability.
type walker struct {
	g       *graph.Graph
	ctx     context.Context
	queue   []queueItem
	visited map[graph.NodeId]bool
	res     *Result
}

// BFS runs breadth-first search on g starting from start, visiting nodes
// in non-decreasing distance order. Returns ErrGraphNil if g is nil,
// ErrStartNodeNotFound if start is absent, or ctx.Err() if the context
// is cancelled mid-traversal.
func BFS(ctx context.Context, g *graph.Graph, start graph.NodeId) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasNode(start) {
		return nil, ErrStartNodeNotFound
	}

	w := &walker{
		g:       g,
		ctx:     ctx,
		visited: make(map[graph.NodeId]bool),
		res:     &Result{Depth: make(map[graph.NodeId]int)},
	}
	w.enqueue(start, 0)
	return w.res, w.loop()
}

func (w *walker) enqueue(id graph.NodeId, depth int) {
	w.visited[id] = true
	w.res.Depth[id] = depth
	w.queue = append(w.queue, queueItem{id: id, depth: depth})
}

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

		neighbors, err := w.g.Neighbors(item.id)
		if err != nil {
			return err
		}
		for _, nbr := range neighbors {
			if !w.visited[nbr] {
				w.enqueue(nbr, item.depth+1)
			}
		}
	}
	return nil
}
