package search

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/go-go-golems/thoughtsitory/pkg/nodes"
)

func TestEmptyQueryIsAnError(t *testing.T) {
	_, err := Search([]*nodes.Node{nodes.NewNode("A")}, Query{})
	require.ErrorIs(t, err, ErrEmptyQuery)
}

func TestTitleMatchIsCaseInsensitiveSubstring(t *testing.T) {
	a := nodes.NewNode("Planning the Release")
	b := nodes.NewNode("Retro")

	results, err := Search([]*nodes.Node{a, b}, Query{Title: "release"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, a.ID, results[0].Node.ID)
	require.Equal(t, []string{"title"}, results[0].Matched)
}

func TestAllTagsMustMatch(t *testing.T) {
	both := nodes.NewNode("both", nodes.WithTags("A", "b"))
	one := nodes.NewNode("one", nodes.WithTags("a"))

	results, err := Search([]*nodes.Node{both, one}, Query{Tags: []string{"a", "B"}})
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, both.ID, results[0].Node.ID)
}

func TestMessageTextMatchesAnyMessage(t *testing.T) {
	a := nodes.NewNode("A")
	a.AddMessage(nodes.RoleUser, "let's talk about Go generics")
	b := nodes.NewNode("B")
	b.AddMessage(nodes.RoleUser, "unrelated")

	results, err := Search([]*nodes.Node{a, b}, Query{MessageText: "GENERICS"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, []string{"message"}, results[0].Matched)
}

func TestCriteriaAreANDCombined(t *testing.T) {
	a := nodes.NewNode("Planning", nodes.WithTags("go"))
	a.AddMessage(nodes.RoleUser, "generics")
	b := nodes.NewNode("Planning", nodes.WithTags("rust"))
	b.AddMessage(nodes.RoleUser, "generics")

	results, err := Search([]*nodes.Node{a, b}, Query{Title: "plan", Tags: []string{"go"}, MessageText: "gener"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, a.ID, results[0].Node.ID)
	require.Equal(t, []string{"title", "tags", "message"}, results[0].Matched)
}

func TestResultsAreOrderedAndLimited(t *testing.T) {
	var all []*nodes.Node
	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < 15; i++ {
		node := nodes.NewNode(fmt.Sprintf("match %d", i),
			nodes.WithCreatedAt(base.Add(time.Duration(i)*time.Minute)))
		all = append(all, node)
	}

	results, err := Search(all, Query{Title: "match"})
	require.NoError(t, err)
	require.Len(t, results, DefaultLimit)
	require.Equal(t, "match 14", results[0].Node.Title)

	results, err = Search(all, Query{Title: "match", Limit: 3})
	require.NoError(t, err)
	require.Len(t, results, 3)
}
