package cmds

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-go-golems/thoughtsitory/pkg/links"
)

var forkCmd = &cobra.Command{
	Use:   "fork <node-id>",
	Short: "Fork a node into a new one linked to its source",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		title, _ := cmd.Flags().GetString("title")
		reason, _ := cmd.Flags().GetString("reason")

		s := openStore()
		source, err := loadNode(s, args[0])
		cobra.CheckErr(err)

		forked, err := links.Fork(source, strings.TrimSpace(title), strings.TrimSpace(reason))
		cobra.CheckErr(err)

		cobra.CheckErr(s.Save(source))
		cobra.CheckErr(s.Save(forked))

		fmt.Println("Node forked")
		fmt.Println("\nOriginal:")
		printNodeSummary(source)
		fmt.Println("\nFork:")
		printNodeSummary(forked)
	},
}

var relateCmd = &cobra.Command{
	Use:   "relate <node-id> <other-node-id>",
	Short: "Link two nodes as related (symmetric)",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		s := openStore()
		a, err := loadNode(s, args[0])
		cobra.CheckErr(err)
		b, err := loadNode(s, args[1])
		cobra.CheckErr(err)

		cobra.CheckErr(links.Relate(a, b))
		cobra.CheckErr(s.Save(a))
		cobra.CheckErr(s.Save(b))

		fmt.Printf("Linked %q and %q as related\n", a.Title, b.Title)
	},
}

func init() {
	forkCmd.Flags().StringP("title", "t", "", "Title for the forked node")
	forkCmd.Flags().StringP("reason", "n", "", "Reason for the fork")
	_ = forkCmd.MarkFlagRequired("title")
}
