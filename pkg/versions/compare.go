package versions

import (
	"github.com/go-go-golems/thoughtsitory/pkg/nodes"
)

type CompareMode string

const (
	// CompareFull diffs the rendered message content of the two versions.
	CompareFull CompareMode = "full"
	// CompareSummaries diffs only the two versions' summary lines.
	CompareSummaries CompareMode = "summaries"
	// CompareBrief reports only counts, no line-level output.
	CompareBrief CompareMode = "brief"
)

func ParseCompareMode(s string) (CompareMode, error) {
	switch CompareMode(s) {
	case CompareFull, CompareSummaries, CompareBrief:
		return CompareMode(s), nil
	default:
		return "", nodes.NewValidationError("mode", "compare mode must be full, summaries or brief, got %q", s)
	}
}

// CompareResult reports a line diff between two versions of one node.
// Lines carry unified-style prefixes ("  " unchanged, "- " removed,
// "+ " added) and are empty in brief mode and when the versions are
// identical.
type CompareResult struct {
	NodeID    nodes.NodeID
	VersionA  int
	VersionB  int
	Mode      CompareMode
	Identical bool
	Added     int
	Removed   int
	Unchanged int
	Lines     []string
}

// Compare diffs two versions of a node. Both version numbers must exist;
// the node is never modified.
func Compare(node *nodes.Node, a int, b int, mode CompareMode) (*CompareResult, error) {
	if node == nil {
		return nil, nodes.NewValidationError("node", "node is nil")
	}

	versionA, ok := node.FindVersion(a)
	if !ok {
		return nil, &VersionNotFoundError{NodeID: node.ID, Version: a}
	}
	versionB, ok := node.FindVersion(b)
	if !ok {
		return nil, &VersionNotFoundError{NodeID: node.ID, Version: b}
	}

	var linesA, linesB []string
	switch mode {
	case CompareSummaries:
		linesA = []string{versionA.Summary}
		linesB = []string{versionB.Summary}
	case CompareFull, CompareBrief:
		linesA = renderContent(versionA.Content)
		linesB = renderContent(versionB.Content)
	default:
		return nil, nodes.NewValidationError("mode", "compare mode must be full, summaries or brief, got %q", mode)
	}

	result := &CompareResult{
		NodeID:   node.ID,
		VersionA: a,
		VersionB: b,
		Mode:     mode,
	}

	for _, line := range diffLines(linesA, linesB) {
		switch line.op {
		case opEqual:
			result.Unchanged++
			if mode != CompareBrief {
				result.Lines = append(result.Lines, "  "+line.text)
			}
		case opRemove:
			result.Removed++
			if mode != CompareBrief {
				result.Lines = append(result.Lines, "- "+line.text)
			}
		case opAdd:
			result.Added++
			if mode != CompareBrief {
				result.Lines = append(result.Lines, "+ "+line.text)
			}
		}
	}

	if result.Added == 0 && result.Removed == 0 {
		result.Identical = true
		result.Lines = nil
	}

	return result, nil
}

func renderContent(content []nodes.Message) []string {
	lines := make([]string, 0, len(content))
	for _, msg := range content {
		lines = append(lines, msg.View())
	}
	return lines
}
