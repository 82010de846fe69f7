package search

import (
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/go-go-golems/thoughtsitory/pkg/nodes"
)

// ErrEmptyQuery is returned when no search criterion is supplied. An empty
// query is an error, not a request for everything.
var ErrEmptyQuery = errors.New("no search criteria supplied")

const DefaultLimit = 10

// Query is a set of AND-combined criteria. All matching is
// case-insensitive.
type Query struct {
	// Title matches as a substring of the node title.
	Title string
	// Tags must all be present among the node's tags.
	Tags []string
	// MessageText matches as a substring of any message's text.
	MessageText string
	// Limit caps the number of results; DefaultLimit when zero.
	Limit int
}

func (q Query) isEmpty() bool {
	return q.Title == "" && len(q.Tags) == 0 && q.MessageText == ""
}

// Result pairs a matching node with the labels of the criteria it matched,
// for display.
type Result struct {
	Node    *nodes.Node
	Matched []string
}

// Search scans the given nodes and returns those matching every supplied
// criterion, most recently updated first, truncated to the query limit.
func Search(all []*nodes.Node, query Query) ([]Result, error) {
	if query.isEmpty() {
		return nil, ErrEmptyQuery
	}
	limit := query.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	var results []Result
	for _, node := range all {
		matched, ok := match(node, query)
		if ok {
			results = append(results, Result{Node: node, Matched: matched})
		}
	}

	sort.Slice(results, func(i, j int) bool {
		a, b := results[i].Node, results[j].Node
		if a.UpdatedAt.Equal(b.UpdatedAt) {
			return a.ID.String() < b.ID.String()
		}
		return a.UpdatedAt.After(b.UpdatedAt)
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

func match(node *nodes.Node, query Query) ([]string, bool) {
	var matched []string

	if query.Title != "" {
		if !strings.Contains(strings.ToLower(node.Title), strings.ToLower(query.Title)) {
			return nil, false
		}
		matched = append(matched, "title")
	}

	if len(query.Tags) > 0 {
		for _, tag := range query.Tags {
			if !node.HasTag(tag) {
				return nil, false
			}
		}
		matched = append(matched, "tags")
	}

	if query.MessageText != "" {
		needle := strings.ToLower(query.MessageText)
		found := false
		for _, msg := range node.Content {
			if strings.Contains(strings.ToLower(msg.Text), needle) {
				found = true
				break
			}
		}
		if !found {
			return nil, false
		}
		matched = append(matched, "message")
	}

	return matched, true
}
