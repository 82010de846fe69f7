package cmds

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-go-golems/thoughtsitory/pkg/versions"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot <node-id>",
	Short: "Freeze the node's current content as a new version",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		summary, _ := cmd.Flags().GetString("summary")
		notes, _ := cmd.Flags().GetString("notes")

		s := openStore()
		node, err := loadNode(s, args[0])
		cobra.CheckErr(err)

		version, err := versions.Snapshot(node, strings.TrimSpace(summary), strings.TrimSpace(notes))
		cobra.CheckErr(err)
		cobra.CheckErr(s.Save(node))

		fmt.Println("Snapshot created")
		fmt.Printf("Node: %s\n", node.Title)
		fmt.Printf("Version: %d\n", version.Version)
		fmt.Printf("Summary: %s\n", version.Summary)
		if version.Notes != "" {
			fmt.Printf("Notes: %s\n", version.Notes)
		}
		fmt.Printf("Messages in snapshot: %d\n", len(version.Content))
	},
}

var historyCmd = &cobra.Command{
	Use:   "history <node-id>",
	Short: "List a node's version history",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s := openStore()
		node, err := loadNode(s, args[0])
		cobra.CheckErr(err)

		if len(node.Versions) == 0 {
			fmt.Printf("Node %q has no versions yet. Create one with 'thoughts snapshot'\n", node.Title)
			return
		}

		fmt.Printf("History of %q:\n", node.Title)
		for _, v := range node.Versions {
			fmt.Printf("v%d  %s  %s (%d messages)\n",
				v.Version, v.Timestamp.Format("2006-01-02 15:04:05"), v.Summary, len(v.Content))
			if v.Notes != "" {
				fmt.Printf("    %s\n", v.Notes)
			}
		}
	},
}

var revertCmd = &cobra.Command{
	Use:   "revert <node-id> <version>",
	Short: "Restore the node's content from a version, backing up the current state first",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		noBackup, _ := cmd.Flags().GetBool("no-backup")

		target, err := strconv.Atoi(args[1])
		cobra.CheckErr(err)

		s := openStore()
		node, err := loadNode(s, args[0])
		cobra.CheckErr(err)

		result, err := versions.Revert(node, target, !noBackup)
		cobra.CheckErr(err)
		cobra.CheckErr(s.Save(node))

		if result.Backup != nil {
			fmt.Printf("Backed up current state as v%d\n", result.Backup.Version)
		}
		fmt.Printf("Restored %q to v%d (%s)\n", node.Title, result.Restored.Version, result.Restored.Summary)
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare <node-id> <version-a> <version-b>",
	Short: "Diff two versions of a node",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		modeStr, _ := cmd.Flags().GetString("mode")
		mode, err := versions.ParseCompareMode(modeStr)
		cobra.CheckErr(err)

		a, err := strconv.Atoi(args[1])
		cobra.CheckErr(err)
		b, err := strconv.Atoi(args[2])
		cobra.CheckErr(err)

		s := openStore()
		node, err := loadNode(s, args[0])
		cobra.CheckErr(err)

		result, err := versions.Compare(node, a, b, mode)
		cobra.CheckErr(err)

		fmt.Printf("Comparing v%d and v%d of %q (%s)\n", a, b, node.Title, mode)
		if result.Identical {
			fmt.Println("no changes")
			return
		}

		fmt.Printf("%d added, %d removed, %d unchanged\n", result.Added, result.Removed, result.Unchanged)
		for _, line := range result.Lines {
			fmt.Println(line)
		}
	},
}

func init() {
	snapshotCmd.Flags().StringP("summary", "s", "", "Summary label for this version")
	snapshotCmd.Flags().StringP("notes", "n", "", "Notes explaining this version's purpose")
	_ = snapshotCmd.MarkFlagRequired("summary")

	revertCmd.Flags().Bool("no-backup", false, "Skip the automatic pre-revert backup snapshot")

	compareCmd.Flags().StringP("mode", "m", "full", "Diff mode: full, summaries or brief")
}
