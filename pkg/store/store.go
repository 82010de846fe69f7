package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/go-go-golems/thoughtsitory/pkg/nodes"
)

const DefaultDir = "data"

// NotFoundError reports a node id that does not resolve to a stored node.
type NotFoundError struct {
	ID nodes.NodeID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("node %s not found", e.ID)
}

// Store persists one JSON file per node under a root directory. Writes are
// whole-file overwrites; there is no multi-writer coordination.
type Store struct {
	dir string
}

func New(dir string) *Store {
	if dir == "" {
		dir = DefaultDir
	}
	return &Store{dir: dir}
}

func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) path(id nodes.NodeID) string {
	return filepath.Join(s.dir, id.String()+".json")
}

func (s *Store) Load(id nodes.NodeID) (*nodes.Node, error) {
	data, err := os.ReadFile(s.path(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{ID: id}
		}
		return nil, errors.Wrapf(err, "failed to read node %s", id)
	}

	node := &nodes.Node{}
	if err := json.Unmarshal(data, node); err != nil {
		return nil, errors.Wrapf(err, "failed to parse node %s", id)
	}

	return node, nil
}

func (s *Store) Save(node *nodes.Node) error {
	if err := node.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return errors.Wrapf(err, "failed to create data directory %s", s.dir)
	}

	data, err := json.MarshalIndent(node, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "failed to serialize node %s", node.ID)
	}

	if err := os.WriteFile(s.path(node.ID), data, 0644); err != nil {
		return errors.Wrapf(err, "failed to write node %s", node.ID)
	}

	log.Debug().
		Str("node_id", node.ID.String()).
		Str("path", s.path(node.ID)).
		Msg("saved node")

	return nil
}

func (s *Store) Delete(id nodes.NodeID) error {
	err := os.Remove(s.path(id))
	if os.IsNotExist(err) {
		return &NotFoundError{ID: id}
	}
	return errors.Wrapf(err, "failed to delete node %s", id)
}

// Summary is the listing view of a stored node.
type Summary struct {
	ID           nodes.NodeID
	Title        string
	Tags         []string
	MessageCount int
	VersionCount int
	UpdatedAt    time.Time
}

// List returns summaries of all stored nodes, most recently updated first.
// Files that fail to parse are logged and skipped rather than failing the
// whole listing.
func (s *Store) List() ([]Summary, error) {
	all, err := s.LoadAll()
	if err != nil {
		return nil, err
	}

	summaries := make([]Summary, 0, len(all))
	for _, node := range all {
		summaries = append(summaries, Summary{
			ID:           node.ID,
			Title:        node.Title,
			Tags:         node.Tags,
			MessageCount: len(node.Content),
			VersionCount: len(node.Versions),
			UpdatedAt:    node.UpdatedAt,
		})
	}

	return summaries, nil
}

// LoadAll loads every node in the store, most recently updated first.
func (s *Store) LoadAll() ([]*nodes.Node, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "failed to read data directory %s", s.dir)
	}

	var all []*nodes.Node
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		id, err := nodes.ParseNodeID(strings.TrimSuffix(entry.Name(), ".json"))
		if err != nil {
			log.Warn().Str("file", entry.Name()).Msg("skipping file with non-id name")
			continue
		}
		node, err := s.Load(id)
		if err != nil {
			log.Warn().Err(err).Str("file", entry.Name()).Msg("skipping unreadable node file")
			continue
		}
		all = append(all, node)
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].UpdatedAt.Equal(all[j].UpdatedAt) {
			return all[i].ID.String() < all[j].ID.String()
		}
		return all[i].UpdatedAt.After(all[j].UpdatedAt)
	})

	return all, nil
}

// Resolve adapts the store to the link graph's resolver interface. Load
// failures degrade to "not found" so traversal can emit its missing-node
// marker instead of aborting.
func (s *Store) Resolve(id nodes.NodeID) (*nodes.Node, bool) {
	node, err := s.Load(id)
	if err != nil {
		return nil, false
	}
	return node, true
}
