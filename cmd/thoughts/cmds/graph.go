package cmds

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-go-golems/thoughtsitory/pkg/links"
	"github.com/go-go-golems/thoughtsitory/pkg/nodes"
)

var treeCmd = &cobra.Command{
	Use:   "tree [root-id]",
	Short: "Show the link graph as a tree, starting from a node or from all roots",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		relationsStr, _ := cmd.Flags().GetString("relations")
		depth, _ := cmd.Flags().GetInt("depth")

		var relations []links.Relation
		for _, r := range splitTags(relationsStr) {
			switch links.Relation(r) {
			case links.RelationParent, links.RelationFork, links.RelationRelated:
				relations = append(relations, links.Relation(r))
			default:
				cobra.CheckErr(fmt.Errorf("unknown relation %q (want parent, fork or related)", r))
			}
		}

		s := openStore()
		all, err := s.LoadAll()
		cobra.CheckErr(err)

		var rootIDs []nodes.NodeID
		if len(args) == 1 {
			node, err := loadNode(s, args[0])
			cobra.CheckErr(err)
			rootIDs = []nodes.NodeID{node.ID}
		} else {
			rootIDs = links.Roots(all)
			if len(rootIDs) == 0 {
				fmt.Println("No root nodes found")
				return
			}
		}

		trees := links.Traverse(links.NewMapResolver(all), rootIDs, links.TraverseOptions{
			Relations: relations,
			MaxDepth:  depth,
		})
		for _, tree := range trees {
			printTree(tree, 0)
		}
	},
}

func printTree(entry *links.TreeNode, indent int) {
	prefix := strings.Repeat("  ", indent)
	label := entry.Title
	if label == "" {
		label = entry.ID.String()
	}
	if entry.Relation != links.RelationRoot {
		label = fmt.Sprintf("[%s] %s", entry.Relation, label)
	}
	if entry.Marker != links.MarkerNone {
		fmt.Printf("%s%s (%s)\n", prefix, label, entry.Marker)
		return
	}
	fmt.Printf("%s%s (%s)\n", prefix, label, entry.ID)
	for _, child := range entry.Children {
		printTree(child, indent+1)
	}
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the node graph as a JSON document of nodes and edges",
	Run: func(cmd *cobra.Command, args []string) {
		output, _ := cmd.Flags().GetString("output")

		s := openStore()
		all, err := s.LoadAll()
		cobra.CheckErr(err)

		graph := links.Export(all)
		data, err := json.MarshalIndent(graph, "", "  ")
		cobra.CheckErr(err)

		if output == "" || output == "-" {
			fmt.Println(string(data))
			return
		}
		cobra.CheckErr(os.WriteFile(output, data, 0644))
		fmt.Printf("Exported %d nodes and %d edges to %s\n", len(graph.Nodes), len(graph.Edges), output)
	},
}

func init() {
	treeCmd.Flags().String("relations", "", "Comma-separated relations to follow (parent, fork, related); default all")
	treeCmd.Flags().Int("depth", links.DefaultMaxDepth, "Maximum traversal depth")

	exportCmd.Flags().StringP("output", "o", "", "Output file (default: stdout)")
}
