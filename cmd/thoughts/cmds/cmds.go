package cmds

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/go-go-golems/thoughtsitory/pkg/nodes"
	"github.com/go-go-golems/thoughtsitory/pkg/store"
)

// AddCommands registers every subcommand on the root.
func AddCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(
		createCmd,
		listCmd,
		viewCmd,
		deleteCmd,
		setSummaryCmd,
		addMessageCmd,
		addTagCmd,
		removeTagCmd,
		relateCmd,
		forkCmd,
		snapshotCmd,
		historyCmd,
		revertCmd,
		compareCmd,
		searchCmd,
		treeCmd,
		exportCmd,
		chatCmd,
	)
}

func openStore() *store.Store {
	return store.New(viper.GetString("data-dir"))
}

func parseID(arg string) (nodes.NodeID, error) {
	id, err := nodes.ParseNodeID(arg)
	if err != nil {
		return nodes.NilNode, fmt.Errorf("invalid node id %q: %w", arg, err)
	}
	return id, nil
}

func loadNode(s *store.Store, arg string) (*nodes.Node, error) {
	id, err := parseID(arg)
	if err != nil {
		return nil, err
	}
	return s.Load(id)
}

func splitTags(tags string) []string {
	var out []string
	for _, tag := range strings.Split(tags, ",") {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			out = append(out, tag)
		}
	}
	return out
}

func printNodeSummary(node *nodes.Node) {
	fmt.Printf("ID: %s\n", node.ID)
	fmt.Printf("Title: %s\n", node.Title)
	fmt.Printf("Created: %s\n", node.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Updated: %s\n", node.UpdatedAt.Format("2006-01-02 15:04:05"))
	if len(node.Tags) > 0 {
		fmt.Printf("Tags: %s\n", strings.Join(node.Tags, ", "))
	}
	if node.Summary != "" {
		fmt.Printf("Summary: %s\n", node.Summary)
	}
	fmt.Printf("Messages: %d\n", len(node.Content))
	fmt.Printf("Versions: %d\n", len(node.Versions))

	var links []string
	if n := len(node.Links.Parents); n > 0 {
		links = append(links, fmt.Sprintf("Parents: %d", n))
	}
	if n := len(node.Links.Forks); n > 0 {
		links = append(links, fmt.Sprintf("Forks: %d", n))
	}
	if n := len(node.Links.Related); n > 0 {
		links = append(links, fmt.Sprintf("Related: %d", n))
	}
	if len(links) > 0 {
		fmt.Printf("Links: %s\n", strings.Join(links, ", "))
	}
}
