package links

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-go-golems/thoughtsitory/pkg/nodes"
)

func TestForkLinksBothWays(t *testing.T) {
	source := nodes.NewNode("Planning", nodes.WithTags("research"))
	source.AddMessage(nodes.RoleUser, "scope?")

	forked, err := Fork(source, "Planning B", "try another angle")
	require.NoError(t, err)

	require.Contains(t, forked.Links.Parents, source.ID)
	require.Contains(t, source.Links.Forks, forked.ID)
	require.Empty(t, forked.Versions)
	require.Equal(t, source.Tags, forked.Tags)
	require.Equal(t, "Forked from Planning. Reason: try another angle", forked.Summary)
}

func TestForkContentIsIndependent(t *testing.T) {
	source := nodes.NewNode("Planning")
	source.AddMessage(nodes.RoleUser, "scope?")

	forked, err := Fork(source, "Planning B", "")
	require.NoError(t, err)
	require.Equal(t, source.Content, forked.Content)

	forked.Content[0].Text = "mutated"
	forked.AddTag("extra")

	require.Equal(t, "scope?", source.Content[0].Text)
	require.False(t, source.HasTag("extra"))
}

func TestForkRequiresTitle(t *testing.T) {
	source := nodes.NewNode("Planning")
	_, err := Fork(source, "", "")

	var validationErr *nodes.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestRelateIsSymmetric(t *testing.T) {
	a := nodes.NewNode("A")
	b := nodes.NewNode("B")

	require.NoError(t, Relate(a, b))
	require.Contains(t, a.Links.Related, b.ID)
	require.Contains(t, b.Links.Related, a.ID)

	require.Error(t, Relate(a, a))
}

func collectMarkers(tree *TreeNode, marker Marker) int {
	count := 0
	if tree.Marker == marker {
		count++
	}
	for _, child := range tree.Children {
		count += collectMarkers(child, marker)
	}
	return count
}

func TestTraverseBreaksRelatedCycle(t *testing.T) {
	a := nodes.NewNode("A")
	b := nodes.NewNode("B")
	require.NoError(t, Relate(a, b))

	res := NewMapResolver([]*nodes.Node{a, b})
	trees := Traverse(res, []nodes.NodeID{a.ID}, TraverseOptions{})

	require.Len(t, trees, 1)
	// A -> related B -> related A stops with exactly one cycle marker
	require.Equal(t, 1, collectMarkers(trees[0], MarkerCycle))
}

func TestTraverseMarksMissingNodes(t *testing.T) {
	a := nodes.NewNode("A")
	a.AddRelated(nodes.NewNodeID())

	res := NewMapResolver([]*nodes.Node{a})
	trees := Traverse(res, []nodes.NodeID{a.ID}, TraverseOptions{})

	require.Equal(t, 1, collectMarkers(trees[0], MarkerMissing))
}

func TestTraverseEnforcesDepthLimit(t *testing.T) {
	// chain of forks deeper than the limit
	all := []*nodes.Node{}
	head := nodes.NewNode("n0")
	all = append(all, head)
	current := head
	for i := 0; i < 6; i++ {
		forked, err := Fork(current, "next", "")
		require.NoError(t, err)
		all = append(all, forked)
		current = forked
	}

	res := NewMapResolver(all)
	trees := Traverse(res, []nodes.NodeID{head.ID}, TraverseOptions{
		Relations: []Relation{RelationFork},
		MaxDepth:  3,
	})

	require.Equal(t, 1, collectMarkers(trees[0], MarkerDepth))
}

func TestTraverseRelationFilter(t *testing.T) {
	source := nodes.NewNode("Planning")
	forked, err := Fork(source, "Planning B", "")
	require.NoError(t, err)
	other := nodes.NewNode("Other")
	require.NoError(t, Relate(source, other))

	res := NewMapResolver([]*nodes.Node{source, forked, other})
	trees := Traverse(res, []nodes.NodeID{source.ID}, TraverseOptions{
		Relations: []Relation{RelationFork},
	})

	require.Len(t, trees[0].Children, 1)
	require.Equal(t, RelationFork, trees[0].Children[0].Relation)
}

func TestRootsAreNodesWithoutParents(t *testing.T) {
	source := nodes.NewNode("Planning")
	forked, err := Fork(source, "Planning B", "")
	require.NoError(t, err)
	loner := nodes.NewNode("Loner")

	roots := Roots([]*nodes.Node{source, forked, loner})
	require.Len(t, roots, 2)
	require.NotContains(t, roots, forked.ID)
}

func TestExportKeepsDirectionalEdgesAndDeduplicatesRelated(t *testing.T) {
	source := nodes.NewNode("Planning")
	forked, err := Fork(source, "Planning B", "")
	require.NoError(t, err)
	require.NoError(t, Relate(source, forked))

	graph := Export([]*nodes.Node{source, forked})

	require.Len(t, graph.Nodes, 2)

	byType := map[string][]GraphEdge{}
	for _, edge := range graph.Edges {
		byType[edge.Type] = append(byType[edge.Type], edge)
	}

	// fork from source, parent from fork: both directions kept
	require.Len(t, byType["fork"], 1)
	require.Len(t, byType["parent"], 1)
	require.Equal(t, source.ID.String(), byType["fork"][0].Source)
	require.Equal(t, forked.ID.String(), byType["parent"][0].Source)

	// the symmetric related pair collapses to one canonical edge
	require.Len(t, byType["related"], 1)
	require.Less(t, byType["related"][0].Source, byType["related"][0].Target)
}

func TestExportDropsDanglingEdges(t *testing.T) {
	a := nodes.NewNode("A")
	a.AddFork(nodes.NewNodeID())
	a.AddRelated(nodes.NewNodeID())

	graph := Export([]*nodes.Node{a})
	require.Empty(t, graph.Edges)
}

func TestExportTruncatesLongSummaries(t *testing.T) {
	a := nodes.NewNode("A", nodes.WithSummary(strings.Repeat("x", 200)))

	graph := Export([]*nodes.Node{a})
	require.Len(t, graph.Nodes, 1)
	require.Equal(t, strings.Repeat("x", 150)+"...", graph.Nodes[0].Summary)

	b := nodes.NewNode("B", nodes.WithSummary(strings.Repeat("y", 150)))
	graph = Export([]*nodes.Node{b})
	require.Equal(t, strings.Repeat("y", 150), graph.Nodes[0].Summary)
}
