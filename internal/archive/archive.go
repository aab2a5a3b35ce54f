// Package archive files checklist tasks under a dated History section,
// merging each into the nested list already archived for the day.
package archive

import (
	"strings"
	"time"

	"github.com/raelum/obsidian-brain/internal/buffer"
	"github.com/raelum/obsidian-brain/internal/outline"
	"github.com/raelum/obsidian-brain/internal/task"
)

// Defaults for Options fields left empty.
const (
	DefaultHeading    = "# History"
	DefaultDateFormat = "2006-01-02"
)

// Options configures where and how tasks are archived.
type Options struct {
	// Heading is the top-level archive heading.
	Heading string

	// DateFormat is the reference-time layout for date subsections.
	DateFormat string

	// Now supplies the clock; nil means time.Now.
	Now func() time.Time
}

func (o Options) heading() string {
	if o.Heading == "" {
		return DefaultHeading
	}
	return o.Heading
}

func (o Options) date() string {
	format := o.DateFormat
	if format == "" {
		format = DefaultDateFormat
	}
	now := o.Now
	if now == nil {
		now = time.Now
	}
	return now().Format(format)
}

// Result reports what an archive operation did.
type Result struct {
	// Archived is false when the cursor was not on a task and the
	// document was left untouched.
	Archived bool

	// Task is the normalized text of the archived task.
	Task string

	// Replaced is true when an earlier archived copy was overwritten in
	// place instead of a new entry being inserted.
	Replaced bool
}

// Complete archives the task under the cursor: the archived copy is
// checked and the source line is removed from its original position.
func Complete(doc buffer.Surface, opts Options) Result {
	return run(doc, opts, completeOp)
}

// Progress archives the task under the cursor as in-progress. The source
// line stays in place in unchecked form, so a later Complete still
// recognizes it and converges on the archived copy.
func Progress(doc buffer.Surface, opts Options) Result {
	return run(doc, opts, progressOp)
}

type operation int

const (
	completeOp operation = iota
	progressOp
)

// run performs one archive operation as a single transaction and restores
// the cursor afterwards. A cursor that is not on a task is a silent no-op.
func run(doc buffer.Surface, opts Options, op operation) Result {
	cur := doc.Cursor()
	if !outline.IsTask(doc, cur.Line) {
		return Result{}
	}

	raw := doc.Line(cur.Line)
	parents := outline.Ancestors(doc, cur.Line, outline.IndentDepth(raw))
	t := task.New(parents, raw, nil)
	if op == completeOp {
		t.MarkCompleted()
	} else {
		t.MarkInProgress()
	}

	b := buffer.NewBatch(doc)
	res := Result{Archived: true, Task: outline.Normalize(t.Text)}

	sec := findSection(doc, opts)
	if sec.fresh {
		// A brand-new heading or date subsection has nothing to merge
		// against; append it with the fully rendered task below it.
		b.InsertBefore(doc.LineCount(), sec.prefix+t.Render(0))
	} else {
		loc := locate(doc, t, sec.start)
		if loc.replace {
			b.ReplaceLine(loc.line, t.Text)
			res.Replaced = true
		} else {
			b.InsertBefore(loc.line, t.Render(loc.depth))
		}
	}

	if op == completeOp {
		b.DeleteLine(cur.Line)
	}
	b.Commit()
	doc.SetCursor(cur)
	return res
}

// section points at today's date subsection within the archive.
type section struct {
	// start is the first line after the date heading; meaningful only
	// when fresh is false.
	start int

	// fresh marks a subsection that does not exist yet. prefix carries
	// the heading lines that must precede the first archived task. New
	// headings always append at the end of the document: dates are kept
	// in archive order, never sorted.
	fresh  bool
	prefix string
}

func findSection(doc buffer.Surface, opts Options) section {
	date := "## " + opts.date()
	heading, ok := findLine(doc, 0, opts.heading())
	if !ok {
		return section{fresh: true, prefix: opts.heading() + "\n" + date + "\n"}
	}
	dateLine, ok := findLine(doc, heading+1, date)
	if !ok {
		return section{fresh: true, prefix: date + "\n"}
	}
	return section{start: dateLine + 1}
}

// findLine returns the first line at or after start whose trimmed text
// equals want.
func findLine(doc buffer.Surface, start int, want string) (int, bool) {
	for n := start; n <= doc.LastLine(); n++ {
		if strings.TrimSpace(doc.Line(n)) == want {
			return n, true
		}
	}
	return 0, false
}
