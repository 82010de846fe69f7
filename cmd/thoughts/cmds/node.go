package cmds

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-go-golems/thoughtsitory/pkg/nodes"
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new thought node",
	Run: func(cmd *cobra.Command, args []string) {
		title, _ := cmd.Flags().GetString("title")
		tags, _ := cmd.Flags().GetString("tags")
		summary, _ := cmd.Flags().GetString("summary")

		if strings.TrimSpace(title) == "" {
			cobra.CheckErr(fmt.Errorf("title cannot be empty"))
		}

		node := nodes.NewNode(strings.TrimSpace(title),
			nodes.WithTags(splitTags(tags)...),
			nodes.WithSummary(summary),
		)

		s := openStore()
		cobra.CheckErr(s.Save(node))

		fmt.Println("Node created")
		printNodeSummary(node)
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all thought nodes",
	Run: func(cmd *cobra.Command, args []string) {
		s := openStore()
		summaries, err := s.List()
		cobra.CheckErr(err)

		if len(summaries) == 0 {
			fmt.Println("No nodes found. Create one with 'thoughts create'")
			return
		}

		for i, summary := range summaries {
			fmt.Printf("%d. %s\n", i+1, summary.Title)
			fmt.Printf("   ID: %s\n", summary.ID)
			if len(summary.Tags) > 0 {
				fmt.Printf("   Tags: %s\n", strings.Join(summary.Tags, ", "))
			}
			fmt.Printf("   Messages: %d  Versions: %d\n", summary.MessageCount, summary.VersionCount)
			fmt.Printf("   Updated: %s\n", summary.UpdatedAt.Format("2006-01-02 15:04:05"))
		}
	},
}

var viewCmd = &cobra.Command{
	Use:   "view <node-id>",
	Short: "View a thought node and its conversation",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s := openStore()
		node, err := loadNode(s, args[0])
		cobra.CheckErr(err)

		printNodeSummary(node)

		if len(node.Content) == 0 {
			fmt.Println("\nNo messages yet. Add some with 'thoughts add-message'")
			return
		}

		fmt.Println("\nConversation:")
		for i, msg := range node.Content {
			role := "User"
			if msg.Role == nodes.RoleAssistant {
				role = "AI"
			}
			fmt.Printf("%d. [%s] %s\n", i+1, role, msg.Text)
		}
	},
}

var setSummaryCmd = &cobra.Command{
	Use:   "set-summary <node-id>",
	Short: "Set the summary of a thought node",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		summary, _ := cmd.Flags().GetString("summary")

		s := openStore()
		node, err := loadNode(s, args[0])
		cobra.CheckErr(err)

		node.Summary = summary
		node.Touch()
		cobra.CheckErr(s.Save(node))

		fmt.Printf("Summary updated for node %s\n", node.ID)
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <node-id>",
	Short: "Delete a thought node",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := parseID(args[0])
		cobra.CheckErr(err)

		s := openStore()
		cobra.CheckErr(s.Delete(id))
		fmt.Printf("Deleted node %s\n", id)
	},
}

func init() {
	createCmd.Flags().StringP("title", "t", "", "Title for the new node")
	createCmd.Flags().String("tags", "", "Comma-separated tags")
	createCmd.Flags().StringP("summary", "s", "", "Optional summary")

	setSummaryCmd.Flags().StringP("summary", "s", "", "New summary text")
	_ = setSummaryCmd.MarkFlagRequired("summary")
}
