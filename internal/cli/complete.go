package cli

import (
	"fmt"

	"github.com/raelum/obsidian-brain/internal/archive"
	"github.com/raelum/obsidian-brain/internal/buffer"
	"github.com/raelum/obsidian-brain/internal/config"
	"github.com/raelum/obsidian-brain/internal/log"
	"github.com/raelum/obsidian-brain/internal/notify"
	"github.com/spf13/cobra"
)

var completeLine int

var completeCmd = &cobra.Command{
	Use:   "complete <file>",
	Short: "Archive the task at a line and mark it done",
	Long: `Archive the checklist task on the given line of a document.

The task is marked checked ([x]), filed under today's date in the
document's History section together with the ancestor bullets needed to
disambiguate it, and removed from its original position. If the task was
already archived today (for example via "progress"), its existing entry
is updated in place instead of duplicated.

A line that does not hold a task is left alone.

Examples:
  obsidian-brain complete notes.md --line 12
  obsidian-brain complete todo.md -l 3`,
	Args: cobra.ExactArgs(1),
	RunE: runComplete,
}

func init() {
	completeCmd.Flags().IntVarP(&completeLine, "line", "l", 0, "1-indexed line of the task")
	completeCmd.MarkFlagRequired("line")
	rootCmd.AddCommand(completeCmd)
}

func runComplete(cmd *cobra.Command, args []string) error {
	return runArchive(args[0], completeLine, false)
}

// runArchive loads the document, runs one archive operation at the given
// 1-indexed line, and saves the result atomically when anything changed.
func runArchive(path string, line int, progress bool) error {
	cfg, err := config.LoadWithDefaults(GetConfigPath())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	doc, err := buffer.Load(path)
	if err != nil {
		return fmt.Errorf("opening document: %w", err)
	}

	if line < 1 || line > doc.LineCount() {
		return fmt.Errorf("line %d out of range (valid range 1-%d)", line, doc.LineCount())
	}
	doc.SetCursor(buffer.Position{Line: line - 1})

	opts := archive.Options{
		Heading:    cfg.Archive.Heading,
		DateFormat: cfg.Archive.DateFormat,
	}

	var res archive.Result
	if progress {
		res = archive.Progress(doc, opts)
	} else {
		res = archive.Complete(doc, opts)
	}

	if !res.Archived {
		log.Warn("line %d of %s is not a task; nothing archived", line, path)
		return nil
	}

	if err := doc.Save(path); err != nil {
		return fmt.Errorf("saving document: %w", err)
	}

	if progress {
		log.Success("archived %q as in-progress", res.Task)
	} else {
		log.Success("completed %q", res.Task)
	}

	sendNotification(cfg, notify.Event{
		File:       path,
		Task:       res.Task,
		InProgress: progress,
		Replaced:   res.Replaced,
	})

	return nil
}

// sendNotification fires the configured notifier when the event type is
// enabled. Notification failures never fail the archive.
func sendNotification(cfg *config.Config, e notify.Event) {
	if e.InProgress && !cfg.Slack.NotifyProgress {
		return
	}
	if !e.InProgress && !cfg.Slack.NotifyComplete {
		return
	}

	n := notify.New(notify.Config{
		BotToken:   cfg.Slack.BotToken,
		Channel:    cfg.Slack.Channel,
		WebhookURL: cfg.Slack.WebhookURL,
	})
	if err := n.Archived(e); err != nil {
		log.Debug("notification failed: %v", err)
	}
}
