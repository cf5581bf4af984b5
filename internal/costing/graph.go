package costing

import (
	"sort"

	"github.com/alexanderramin/rostercost/internal/domain"
)

type adjacency map[string][]string

func buildAdjacency(edges []*domain.CostSharing) adjacency {
	adj := make(adjacency)
	for _, e := range edges {
		adj[e.SourceProjectID] = append(adj[e.SourceProjectID], e.DestinationProjectID)
	}
	for _, next := range adj {
		sort.Strings(next)
	}
	return adj
}

// reaches reports whether to is reachable from from.
func (g adjacency) reaches(from, to string) bool {
	seen := map[string]bool{from: true}
	stack := []string{from}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n == to {
			return true
		}
		for _, next := range g[n] {
			if !seen[next] {
				seen[next] = true
				stack = append(stack, next)
			}
		}
	}
	return false
}

// WouldCreateCycleInGraph reports whether adding source→destination to edges
// closes a cycle of any length, i.e. destination already reaches source.
func WouldCreateCycleInGraph(edges []*domain.CostSharing, source, destination string) bool {
	if source == destination {
		return true
	}
	return buildAdjacency(edges).reaches(destination, source)
}

// DetectCycle returns the project ids of one cycle in edges, first id
// repeated at the end, or nil when the graph is acyclic. Traversal order is
// deterministic for a given edge set.
func DetectCycle(edges []*domain.CostSharing) []string {
	adj := buildAdjacency(edges)

	nodes := make([]string, 0, len(adj))
	for n := range adj {
		nodes = append(nodes, n)
	}
	sort.Strings(nodes)

	const (
		white = 0 // unvisited
		gray  = 1 // on the current path
		black = 2 // done
	)

	color := make(map[string]int)
	var path []string
	var cycle []string

	var visit func(node string) bool
	visit = func(node string) bool {
		color[node] = gray
		path = append(path, node)
		for _, next := range adj[node] {
			switch color[next] {
			case gray:
				for i, p := range path {
					if p == next {
						cycle = append(append([]string{}, path[i:]...), next)
						break
					}
				}
				return true
			case white:
				if visit(next) {
					return true
				}
			}
		}
		path = path[:len(path)-1]
		color[node] = black
		return false
	}

	for _, n := range nodes {
		if color[n] == white && visit(n) {
			return cycle
		}
	}
	return nil
}
