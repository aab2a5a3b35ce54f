// Package task models one checklist task together with the ancestor
// context needed to file it under the right branch of an archive list.
package task

import (
	"strings"

	"github.com/raelum/obsidian-brain/internal/outline"
)

// Task is a single checklist line plus its enclosing context. A Task is
// built transiently for one archive operation and discarded once the edits
// are computed; it has no persisted identity.
type Task struct {
	// Parents holds the ancestor lines, outermost first, each demoted
	// from checklist to plain bullet form. Indentation strictly
	// increases along the chain.
	Parents []string

	// Text is the raw task line itself, checklist marker included.
	Text string

	// Children is reserved for subtasks nested directly under this
	// task. Nothing populates it yet.
	Children []string
}

// New builds a Task from raw document lines. Checklist ancestors are
// demoted to bare bullets at construction; other ancestor lines pass
// through unchanged.
func New(parents []string, text string, children []string) *Task {
	demoted := make([]string, len(parents))
	for i, p := range parents {
		demoted[i] = outline.Demote(p)
	}
	return &Task{Parents: demoted, Text: text, Children: children}
}

// MarkCompleted rewrites the task marker to checked form. A task not in
// unchecked form is left as it is.
func (t *Task) MarkCompleted() {
	t.Text = outline.Check(t.Text)
}

// MarkInProgress rewrites the task marker to the in-progress form. A task
// not in unchecked form is left as it is.
func (t *Task) MarkInProgress() {
	t.Text = outline.Progress(t.Text)
}

// Render returns the task as insertable text: the ancestors from the
// given index onward, one per line, followed by the task line. With no
// ancestors included it is just the task line.
func (t *Task) Render(from int) string {
	if from < 0 {
		from = 0
	}
	if from >= len(t.Parents) {
		return t.Text
	}
	lines := make([]string, 0, len(t.Parents)-from+1)
	lines = append(lines, t.Parents[from:]...)
	lines = append(lines, t.Text)
	return strings.Join(lines, "\n")
}
