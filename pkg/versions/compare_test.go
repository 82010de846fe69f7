package versions

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-go-golems/thoughtsitory/pkg/nodes"
)

func twoVersionNode(t *testing.T) *nodes.Node {
	t.Helper()
	node := nodes.NewNode("Planning")
	node.AddMessage(nodes.RoleUser, "scope?")
	_, err := Snapshot(node, "v1", "")
	require.NoError(t, err)

	node.AddMessage(nodes.RoleAssistant, "here's scope")
	_, err = Snapshot(node, "v2", "")
	require.NoError(t, err)

	return node
}

func TestCompareSameVersionReportsNoChanges(t *testing.T) {
	node := twoVersionNode(t)

	for _, mode := range []CompareMode{CompareFull, CompareSummaries, CompareBrief} {
		result, err := Compare(node, 2, 2, mode)
		require.NoError(t, err)
		require.True(t, result.Identical, "mode %s", mode)
		require.Zero(t, result.Added)
		require.Zero(t, result.Removed)
		require.Empty(t, result.Lines)
	}
}

func TestCompareFullShowsAddedMessage(t *testing.T) {
	node := twoVersionNode(t)

	result, err := Compare(node, 1, 2, CompareFull)
	require.NoError(t, err)

	require.False(t, result.Identical)
	require.Equal(t, 1, result.Added)
	require.Equal(t, 0, result.Removed)
	require.Equal(t, 1, result.Unchanged)
	require.Equal(t, []string{
		"  user: scope?",
		"+ assistant: here's scope",
	}, result.Lines)
}

func TestCompareIsStructurallySymmetric(t *testing.T) {
	node := twoVersionNode(t)

	forward, err := Compare(node, 1, 2, CompareFull)
	require.NoError(t, err)
	backward, err := Compare(node, 2, 1, CompareFull)
	require.NoError(t, err)

	require.Equal(t, forward.Added, backward.Removed)
	require.Equal(t, forward.Removed, backward.Added)
	require.Equal(t, forward.Unchanged, backward.Unchanged)
}

func TestCompareSummariesMode(t *testing.T) {
	node := twoVersionNode(t)

	result, err := Compare(node, 1, 2, CompareSummaries)
	require.NoError(t, err)

	require.Equal(t, 1, result.Added)
	require.Equal(t, 1, result.Removed)
	require.Equal(t, []string{"- v1", "+ v2"}, result.Lines)
}

func TestCompareBriefSuppressesLines(t *testing.T) {
	node := twoVersionNode(t)

	result, err := Compare(node, 1, 2, CompareBrief)
	require.NoError(t, err)

	require.False(t, result.Identical)
	require.Equal(t, 1, result.Added)
	require.Empty(t, result.Lines)
}

func TestCompareMissingVersionFails(t *testing.T) {
	node := twoVersionNode(t)

	_, err := Compare(node, 1, 7, CompareFull)
	var notFound *VersionNotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, 7, notFound.Version)
}

func TestDiffInterleavesRemovalsAtOriginalPosition(t *testing.T) {
	a := []string{"one", "two", "three"}
	b := []string{"one", "2", "three"}

	lines := diffLines(a, b)
	require.Equal(t, []diffLine{
		{op: opEqual, text: "one"},
		{op: opRemove, text: "two"},
		{op: opAdd, text: "2"},
		{op: opEqual, text: "three"},
	}, lines)
}

func TestDiffHandlesEmptySides(t *testing.T) {
	require.Empty(t, diffLines(nil, nil))

	lines := diffLines(nil, []string{"x"})
	require.Equal(t, []diffLine{{op: opAdd, text: "x"}}, lines)

	lines = diffLines([]string{"x"}, nil)
	require.Equal(t, []diffLine{{op: opRemove, text: "x"}}, lines)
}
