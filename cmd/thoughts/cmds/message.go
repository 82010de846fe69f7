package cmds

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-go-golems/thoughtsitory/pkg/nodes"
)

var addMessageCmd = &cobra.Command{
	Use:   "add-message <node-id>",
	Short: "Append a message to a node's conversation",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		roleStr, _ := cmd.Flags().GetString("role")
		text, _ := cmd.Flags().GetString("text")

		role, err := nodes.ParseRole(roleStr)
		cobra.CheckErr(err)
		if strings.TrimSpace(text) == "" {
			cobra.CheckErr(fmt.Errorf("message text cannot be empty"))
		}

		s := openStore()
		node, err := loadNode(s, args[0])
		cobra.CheckErr(err)

		node.AddMessage(role, strings.TrimSpace(text))
		cobra.CheckErr(s.Save(node))

		fmt.Printf("Message added to %q\n", node.Title)
	},
}

var addTagCmd = &cobra.Command{
	Use:   "add-tag <node-id> <tag>",
	Short: "Add a tag to a node",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		s := openStore()
		node, err := loadNode(s, args[0])
		cobra.CheckErr(err)

		if !node.AddTag(args[1]) {
			fmt.Printf("Node %q already has tag %q\n", node.Title, args[1])
			return
		}
		cobra.CheckErr(s.Save(node))
		fmt.Printf("Tag %q added to %q\n", args[1], node.Title)
	},
}

var removeTagCmd = &cobra.Command{
	Use:   "remove-tag <node-id> <tag>",
	Short: "Remove a tag from a node",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		s := openStore()
		node, err := loadNode(s, args[0])
		cobra.CheckErr(err)

		if !node.RemoveTag(args[1]) {
			fmt.Printf("Node %q has no tag %q\n", node.Title, args[1])
			return
		}
		cobra.CheckErr(s.Save(node))
		fmt.Printf("Tag %q removed from %q\n", args[1], node.Title)
	},
}

func init() {
	addMessageCmd.Flags().StringP("role", "r", "user", "Message role (user or ai)")
	addMessageCmd.Flags().String("text", "", "Message text")
	_ = addMessageCmd.MarkFlagRequired("text")
}
