package links

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/go-go-golems/thoughtsitory/pkg/nodes"
)

// Fork creates a new node seeded from source: fresh id, deep-copied
// content, copied tags, empty version history. The two nodes are linked
// reciprocally (source becomes a parent of the fork, the fork is recorded
// in source's forks). Fork never snapshots.
func Fork(source *nodes.Node, title string, reason string) (*nodes.Node, error) {
	if source == nil {
		return nil, nodes.NewValidationError("source", "source node is nil")
	}
	if title == "" {
		return nil, nodes.NewValidationError("title", "title cannot be empty")
	}

	summary := fmt.Sprintf("Forked from %s", source.Title)
	if reason != "" {
		summary = fmt.Sprintf("%s. Reason: %s", summary, reason)
	}

	forked := nodes.NewNode(title,
		nodes.WithTags(source.Tags...),
		nodes.WithSummary(summary),
	)
	forked.Content = source.CloneContent()

	forked.AddParent(source.ID)
	source.AddFork(forked.ID)

	log.Debug().
		Str("source_id", source.ID.String()).
		Str("fork_id", forked.ID.String()).
		Int("messages", len(forked.Content)).
		Msg("forked node")

	return forked, nil
}

// Relate links two nodes symmetrically through their related sets.
func Relate(a *nodes.Node, b *nodes.Node) error {
	if a == nil || b == nil {
		return nodes.NewValidationError("node", "both nodes must be loaded")
	}
	if a.ID == b.ID {
		return nodes.NewValidationError("node", "cannot relate a node to itself")
	}
	a.AddRelated(b.ID)
	b.AddRelated(a.ID)
	return nil
}
