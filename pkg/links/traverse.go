package links

import (
	"sort"

	"github.com/go-go-golems/thoughtsitory/pkg/nodes"
)

// Resolver resolves node identifiers during traversal and export. The
// store satisfies it directly; MapResolver serves in-memory graphs.
type Resolver interface {
	Resolve(id nodes.NodeID) (*nodes.Node, bool)
}

type MapResolver map[nodes.NodeID]*nodes.Node

func (m MapResolver) Resolve(id nodes.NodeID) (*nodes.Node, bool) {
	node, ok := m[id]
	return node, ok
}

func NewMapResolver(all []*nodes.Node) MapResolver {
	m := make(MapResolver, len(all))
	for _, node := range all {
		m[node.ID] = node
	}
	return m
}

type Relation string

const (
	RelationRoot    Relation = "root"
	RelationParent  Relation = "parent"
	RelationFork    Relation = "fork"
	RelationRelated Relation = "related"
)

// Marker flags a tree entry that was not recursed into.
type Marker string

const (
	MarkerNone    Marker = ""
	MarkerCycle   Marker = "cycle detected"
	MarkerMissing Marker = "missing node"
	MarkerDepth   Marker = "depth limit"
)

// DefaultMaxDepth bounds traversal so malformed link data can never cause
// unbounded recursion.
const DefaultMaxDepth = 10

// TreeNode is one entry of the display tree built by Traverse.
type TreeNode struct {
	ID       nodes.NodeID
	Title    string
	Relation Relation
	Marker   Marker
	Children []*TreeNode
}

type TraverseOptions struct {
	// Relations limits which edge kinds are followed; empty means all.
	Relations []Relation
	MaxDepth  int
}

func (o TraverseOptions) follows(rel Relation) bool {
	if len(o.Relations) == 0 {
		return true
	}
	for _, r := range o.Relations {
		if r == rel {
			return true
		}
	}
	return false
}

// Roots returns the ids of all nodes with an empty parent set, sorted for
// deterministic forest output.
func Roots(all []*nodes.Node) []nodes.NodeID {
	var roots []nodes.NodeID
	for _, node := range all {
		if len(node.Links.Parents) == 0 {
			roots = append(roots, node.ID)
		}
	}
	sort.Slice(roots, func(i, j int) bool {
		return roots[i].String() < roots[j].String()
	})
	return roots
}

// Traverse builds a display tree from the given roots, recursing through
// parent, fork and related edges. Cycles are broken with an explicit
// active-path set, dangling references degrade to a missing-node marker,
// and recursion is cut off at MaxDepth with a depth-limit marker.
func Traverse(res Resolver, rootIDs []nodes.NodeID, opts TraverseOptions) []*TreeNode {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}

	trees := make([]*TreeNode, 0, len(rootIDs))
	onPath := map[nodes.NodeID]bool{}
	for _, id := range rootIDs {
		trees = append(trees, walk(res, id, RelationRoot, 0, onPath, opts))
	}
	return trees
}

func walk(res Resolver, id nodes.NodeID, rel Relation, depth int, onPath map[nodes.NodeID]bool, opts TraverseOptions) *TreeNode {
	entry := &TreeNode{ID: id, Relation: rel}

	if onPath[id] {
		entry.Marker = MarkerCycle
		return entry
	}

	node, ok := res.Resolve(id)
	if !ok {
		entry.Marker = MarkerMissing
		return entry
	}
	entry.Title = node.Title

	if depth >= opts.MaxDepth {
		entry.Marker = MarkerDepth
		return entry
	}

	onPath[id] = true
	defer delete(onPath, id)

	for _, edge := range []struct {
		rel Relation
		ids []nodes.NodeID
	}{
		{RelationParent, node.Links.Parents},
		{RelationFork, node.Links.Forks},
		{RelationRelated, node.Links.Related},
	} {
		if !opts.follows(edge.rel) {
			continue
		}
		for _, childID := range edge.ids {
			entry.Children = append(entry.Children, walk(res, childID, edge.rel, depth+1, onPath, opts))
		}
	}

	return entry
}
