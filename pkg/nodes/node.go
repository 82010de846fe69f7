package nodes

import (
	"strings"
	"time"

	"github.com/huandu/go-clone"
)

// Version is a frozen snapshot of a node's content at a point in time.
// Version numbers start at 1 and increase by exactly one per snapshot
// taken on the node; the records themselves are never edited.
type Version struct {
	Version   int       `json:"version"`
	Timestamp time.Time `json:"timestamp"`
	Summary   string    `json:"summary"`
	Notes     string    `json:"notes,omitempty"`
	Content   []Message `json:"content"`
}

// Links holds the adjacency of a node as identifier sets rather than live
// object references. A's forks containing B implies B's parents contain A;
// that reciprocity is maintained by the link graph operations, not by the
// raw data.
type Links struct {
	Parents []NodeID `json:"parents"`
	Forks   []NodeID `json:"forks"`
	Related []NodeID `json:"related"`
}

// Node is a versioned, linkable conversation unit.
type Node struct {
	ID        NodeID    `json:"id"`
	Title     string    `json:"title"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Content   []Message `json:"content"`
	Links     Links     `json:"links"`
	Versions  []Version `json:"versions"`
	Summary   string    `json:"summary"`
}

type NodeOption func(*Node)

func WithID(id NodeID) NodeOption {
	return func(n *Node) {
		n.ID = id
	}
}

func WithTags(tags ...string) NodeOption {
	return func(n *Node) {
		for _, tag := range tags {
			n.AddTag(tag)
		}
	}
}

func WithSummary(summary string) NodeOption {
	return func(n *Node) {
		n.Summary = summary
	}
}

func WithCreatedAt(t time.Time) NodeOption {
	return func(n *Node) {
		n.CreatedAt = t
		n.UpdatedAt = t
	}
}

func NewNode(title string, options ...NodeOption) *Node {
	now := time.Now().UTC()
	ret := &Node{
		ID:        NewNodeID(),
		Title:     title,
		Tags:      []string{},
		CreatedAt: now,
		UpdatedAt: now,
		Content:   []Message{},
		Links: Links{
			Parents: []NodeID{},
			Forks:   []NodeID{},
			Related: []NodeID{},
		},
		Versions: []Version{},
	}

	for _, option := range options {
		option(ret)
	}

	return ret
}

// Touch refreshes the updated_at timestamp. Every content-affecting
// mutation goes through it.
func (n *Node) Touch() {
	n.UpdatedAt = time.Now().UTC()
}

func (n *Node) AddMessage(role Role, text string) Message {
	msg := NewMessage(role, text)
	n.Content = append(n.Content, msg)
	n.Touch()
	return msg
}

// HasTag reports tag membership. Matching is case-insensitive, storage
// preserves the original case.
func (n *Node) HasTag(tag string) bool {
	for _, t := range n.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

func (n *Node) AddTag(tag string) bool {
	if tag == "" || n.HasTag(tag) {
		return false
	}
	n.Tags = append(n.Tags, tag)
	n.Touch()
	return true
}

func (n *Node) RemoveTag(tag string) bool {
	for i, t := range n.Tags {
		if strings.EqualFold(t, tag) {
			n.Tags = append(n.Tags[:i], n.Tags[i+1:]...)
			n.Touch()
			return true
		}
	}
	return false
}

func containsID(ids []NodeID, id NodeID) bool {
	for _, existing := range ids {
		if existing == id {
			return true
		}
	}
	return false
}

func (n *Node) AddParent(id NodeID) bool {
	if containsID(n.Links.Parents, id) {
		return false
	}
	n.Links.Parents = append(n.Links.Parents, id)
	n.Touch()
	return true
}

func (n *Node) AddFork(id NodeID) bool {
	if containsID(n.Links.Forks, id) {
		return false
	}
	n.Links.Forks = append(n.Links.Forks, id)
	n.Touch()
	return true
}

func (n *Node) AddRelated(id NodeID) bool {
	if containsID(n.Links.Related, id) {
		return false
	}
	n.Links.Related = append(n.Links.Related, id)
	n.Touch()
	return true
}

// NextVersionNumber computes the number the next snapshot will get:
// max of the existing version numbers plus one, 1 for a fresh node.
func (n *Node) NextVersionNumber() int {
	max := 0
	for _, v := range n.Versions {
		if v.Version > max {
			max = v.Version
		}
	}
	return max + 1
}

// FindVersion returns the version record with the given number.
func (n *Node) FindVersion(number int) (*Version, bool) {
	for i := range n.Versions {
		if n.Versions[i].Version == number {
			return &n.Versions[i], true
		}
	}
	return nil, false
}

// Clone returns a structural deep copy of the node. No mutable
// substructure is shared with the original.
func (n *Node) Clone() *Node {
	return clone.Clone(n).(*Node)
}

// CloneContent returns a deep copy of the message log, for snapshots and
// forks.
func (n *Node) CloneContent() []Message {
	return clone.Clone(n.Content).([]Message)
}
