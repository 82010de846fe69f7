package links

import (
	"github.com/go-go-golems/thoughtsitory/pkg/nodes"
)

// SummaryMaxLen is the rune limit applied to node summaries on export.
const SummaryMaxLen = 150

const truncationMarker = "..."

// Graph is the export artifact consumed by downstream graph tooling. The
// field set and edge semantics are a compatibility contract.
type Graph struct {
	Nodes []GraphNode `json:"nodes"`
	Edges []GraphEdge `json:"edges"`
}

type GraphNode struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
}

type GraphEdge struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Type   string `json:"type"`
}

// Export builds the graph document for a set of nodes. Edges pointing at
// ids outside the set are dropped. parent and fork edges are directional
// and both directions are kept; a related pair is emitted once, with the
// lexicographically smaller id as the source.
func Export(all []*nodes.Node) *Graph {
	present := make(map[nodes.NodeID]bool, len(all))
	for _, node := range all {
		present[node.ID] = true
	}

	graph := &Graph{
		Nodes: make([]GraphNode, 0, len(all)),
		Edges: []GraphEdge{},
	}

	seen := map[GraphEdge]bool{}
	addEdge := func(edge GraphEdge) {
		if seen[edge] {
			return
		}
		seen[edge] = true
		graph.Edges = append(graph.Edges, edge)
	}

	for _, node := range all {
		graph.Nodes = append(graph.Nodes, GraphNode{
			ID:      node.ID.String(),
			Title:   node.Title,
			Summary: truncateSummary(node.Summary),
		})

		for _, target := range node.Links.Parents {
			if present[target] {
				addEdge(GraphEdge{Source: node.ID.String(), Target: target.String(), Type: "parent"})
			}
		}
		for _, target := range node.Links.Forks {
			if present[target] {
				addEdge(GraphEdge{Source: node.ID.String(), Target: target.String(), Type: "fork"})
			}
		}
		for _, target := range node.Links.Related {
			if !present[target] {
				continue
			}
			source, dest := node.ID.String(), target.String()
			if dest < source {
				source, dest = dest, source
			}
			addEdge(GraphEdge{Source: source, Target: dest, Type: "related"})
		}
	}

	return graph
}

func truncateSummary(s string) string {
	runes := []rune(s)
	if len(runes) <= SummaryMaxLen {
		return s
	}
	return string(runes[:SummaryMaxLen]) + truncationMarker
}
