package traverse

import (
	"context"
	"sort"

	"github.com/memgraph-project/memgraph/graph"
)

// ConnectedComponents partitions g's nodes into connected components,
// each returned as a sorted slice of NodeId, components themselves
// ordered by their smallest member for determinism.
func ConnectedComponents(ctx context.Context, g *graph.Graph) ([][]graph.NodeId, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	nodes := g.Nodes()
	sort.Slice(nodes, func(i, j int) bool { return nodes[i] < nodes[j] })

	seen := make(map[graph.NodeId]bool, len(nodes))
	var components [][]graph.NodeId

	for _, n := range nodes {
		if seen[n] {
			continue
		}
		res, err := BFS(ctx, g, n)
		if err != nil {
			return nil, err
		}
		comp := make([]graph.NodeId, len(res.Order))
		copy(comp, res.Order)
		sort.Slice(comp, func(i, j int) bool { return comp[i] < comp[j] })
		for _, m := range comp {
			seen[m] = true
		}
		components = append(components, comp)
	}
	return components, nil
}

// ComponentCount returns the number of connected components in g, 0 for
// an empty graph.
func ComponentCount(ctx context.Context, g *graph.Graph) (int, error) {
	components, err := ConnectedComponents(ctx, g)
	if err != nil {
		return 0, err
	}
	return len(components), nil
}
