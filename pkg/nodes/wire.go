package nodes

import (
	"encoding/json"
	"time"

	"github.com/pkg/errors"
)

// Lenient decoding for node files written by earlier tools. Their
// timestamps come from isoformat() without a timezone suffix, and their
// version records carry {id, description, content, summary} with no
// integer version number. We read both shapes; writing always produces
// the canonical form (RFC 3339 UTC, numbered versions).

type wireTime struct {
	time.Time
}

var wireTimeLayouts = []string{
	time.RFC3339,
	// zone-less isoformat, interpreted as UTC
	"2006-01-02T15:04:05",
}

func (t *wireTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range wireTimeLayouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			t.Time = parsed.UTC()
			return nil
		}
	}
	return errors.Errorf("unrecognized timestamp %q", s)
}

type versionWire struct {
	Version     int       `json:"version"`
	Timestamp   wireTime  `json:"timestamp"`
	Summary     string    `json:"summary"`
	Notes       string    `json:"notes"`
	Description string    `json:"description"`
	Content     []Message `json:"content"`
}

func (v *Version) UnmarshalJSON(data []byte) error {
	var vw versionWire
	if err := json.Unmarshal(data, &vw); err != nil {
		return err
	}
	v.Version = vw.Version
	v.Timestamp = vw.Timestamp.Time
	v.Summary = vw.Summary
	v.Notes = vw.Notes
	v.Content = vw.Content
	// unnumbered records label the snapshot through "description"
	if vw.Version == 0 && vw.Description != "" {
		v.Summary = vw.Description
	}
	return nil
}

type nodeWire struct {
	ID        NodeID    `json:"id"`
	Title     string    `json:"title"`
	Tags      []string  `json:"tags"`
	CreatedAt wireTime  `json:"created_at"`
	UpdatedAt wireTime  `json:"updated_at"`
	Content   []Message `json:"content"`
	Links     Links     `json:"links"`
	Versions  []Version `json:"versions"`
	Summary   string    `json:"summary"`
}

func (n *Node) UnmarshalJSON(data []byte) error {
	var nw nodeWire
	if err := json.Unmarshal(data, &nw); err != nil {
		return err
	}
	*n = Node{
		ID:        nw.ID,
		Title:     nw.Title,
		Tags:      nw.Tags,
		CreatedAt: nw.CreatedAt.Time,
		UpdatedAt: nw.UpdatedAt.Time,
		Content:   nw.Content,
		Links:     nw.Links,
		Versions:  nw.Versions,
		Summary:   nw.Summary,
	}

	// version records without numbers get them assigned in file order,
	// so the no-gaps invariant holds from the first save onwards
	for _, v := range n.Versions {
		if v.Version == 0 {
			for i := range n.Versions {
				n.Versions[i].Version = i + 1
			}
			break
		}
	}

	return nil
}
