package versions

import (
	"fmt"
	"time"

	"github.com/huandu/go-clone"
	"github.com/rs/zerolog/log"

	"github.com/go-go-golems/thoughtsitory/pkg/nodes"
)

// PreRevertSummary labels the automatic backup snapshot taken before a
// revert overwrites content.
const PreRevertSummary = "Pre-revert snapshot"

// VersionNotFoundError reports a version number that does not exist on a
// node.
type VersionNotFoundError struct {
	NodeID  nodes.NodeID
	Version int
}

func (e *VersionNotFoundError) Error() string {
	return fmt.Sprintf("version %d not found on node %s", e.Version, e.NodeID)
}

// Snapshot freezes the node's current content as a new version. Numbers
// are monotonic per node: max of the existing numbers plus one, with no
// gaps or reuse regardless of what happens to other nodes.
func Snapshot(node *nodes.Node, summary string, notes string) (*nodes.Version, error) {
	if node == nil {
		return nil, nodes.NewValidationError("node", "node is nil")
	}
	if summary == "" {
		return nil, nodes.NewValidationError("summary", "summary cannot be empty")
	}

	version := nodes.Version{
		Version:   node.NextVersionNumber(),
		Timestamp: time.Now().UTC(),
		Summary:   summary,
		Notes:     notes,
		Content:   node.CloneContent(),
	}
	node.Versions = append(node.Versions, version)
	node.Touch()

	log.Debug().
		Str("node_id", node.ID.String()).
		Int("version", version.Version).
		Int("messages", len(version.Content)).
		Msg("created snapshot")

	return &node.Versions[len(node.Versions)-1], nil
}

// RevertResult reports what a revert did: the backup taken beforehand (nil
// when auto-backup was disabled) and the version whose content was
// restored.
type RevertResult struct {
	Backup   *nodes.Version
	Restored *nodes.Version
}

// Revert replaces the node's content with a deep copy of the target
// version's snapshot. Unless autoBackup is disabled it first snapshots the
// current state, even when that state already equals the target, so the
// history always records what existed immediately before the revert. The
// target is validated before anything is written; on failure the node is
// unmodified.
func Revert(node *nodes.Node, target int, autoBackup bool) (*RevertResult, error) {
	if node == nil {
		return nil, nodes.NewValidationError("node", "node is nil")
	}
	if target < 1 {
		return nil, nodes.NewValidationError("version", "version number must be positive, got %d", target)
	}

	targetIdx := -1
	for i := range node.Versions {
		if node.Versions[i].Version == target {
			targetIdx = i
			break
		}
	}
	if targetIdx < 0 {
		return nil, &VersionNotFoundError{NodeID: node.ID, Version: target}
	}

	result := &RevertResult{}
	if autoBackup {
		backup, err := Snapshot(node, PreRevertSummary, "")
		if err != nil {
			return nil, err
		}
		result.Backup = backup
	}

	// re-take the pointer, the snapshot append may have grown the slice
	result.Restored = &node.Versions[targetIdx]
	node.Content = clone.Clone(result.Restored.Content).([]nodes.Message)
	node.Touch()

	log.Debug().
		Str("node_id", node.ID.String()).
		Int("restored_version", target).
		Bool("backup", result.Backup != nil).
		Msg("reverted node content")

	return result, nil
}
