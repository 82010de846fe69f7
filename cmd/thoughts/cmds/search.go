package cmds

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-go-golems/thoughtsitory/pkg/search"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search nodes by title, tags and message text",
	Run: func(cmd *cobra.Command, args []string) {
		title, _ := cmd.Flags().GetString("title")
		tags, _ := cmd.Flags().GetString("tags")
		text, _ := cmd.Flags().GetString("text")
		limit, _ := cmd.Flags().GetInt("limit")

		s := openStore()
		all, err := s.LoadAll()
		cobra.CheckErr(err)

		results, err := search.Search(all, search.Query{
			Title:       title,
			Tags:        splitTags(tags),
			MessageText: text,
			Limit:       limit,
		})
		cobra.CheckErr(err)

		if len(results) == 0 {
			fmt.Println("No matching nodes")
			return
		}

		for i, result := range results {
			fmt.Printf("%d. %s\n", i+1, result.Node.Title)
			fmt.Printf("   ID: %s\n", result.Node.ID)
			fmt.Printf("   Matched: %s\n", strings.Join(result.Matched, ", "))
			fmt.Printf("   Updated: %s\n", result.Node.UpdatedAt.Format("2006-01-02 15:04:05"))
		}
	},
}

func init() {
	searchCmd.Flags().StringP("title", "t", "", "Substring to match in titles")
	searchCmd.Flags().String("tags", "", "Comma-separated tags that must all be present")
	searchCmd.Flags().String("text", "", "Substring to match in message text")
	searchCmd.Flags().IntP("limit", "l", search.DefaultLimit, "Maximum number of results")
}
