package cli

import (
	"github.com/spf13/cobra"
)

var progressLine int

var progressCmd = &cobra.Command{
	Use:   "progress <file>",
	Short: "Archive the task at a line as in-progress",
	Long: `Archive the checklist task on the given line without completing it.

The archived copy is marked in-progress ([/]) and filed under today's
date in the document's History section; the original line stays in place,
still unchecked. Running "complete" on the same task later updates the
archived entry in place, so the two operations converge on a single
checked entry.

Examples:
  obsidian-brain progress notes.md --line 12
  obsidian-brain progress todo.md -l 3`,
	Args: cobra.ExactArgs(1),
	RunE: runProgress,
}

func init() {
	progressCmd.Flags().IntVarP(&progressLine, "line", "l", 0, "1-indexed line of the task")
	progressCmd.MarkFlagRequired("line")
	rootCmd.AddCommand(progressCmd)
}

func runProgress(cmd *cobra.Command, args []string) error {
	return runArchive(args[0], progressLine, true)
}
