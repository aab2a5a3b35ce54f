package archive

import (
	"github.com/raelum/obsidian-brain/internal/buffer"
	"github.com/raelum/obsidian-brain/internal/outline"
	"github.com/raelum/obsidian-brain/internal/task"
)

// mergeState names the phases of the locator walk.
type mergeState int

const (
	// matchingAncestors consumes the task's ancestor chain against the
	// subsection's existing structure, depth by depth.
	matchingAncestors mergeState = iota

	// scanningToInsertionPoint skips past the existing run of entries at
	// or below the final matched depth, stopping early on a previously
	// archived copy of the task itself.
	scanningToInsertionPoint

	done
)

// location is the outcome of the walk: either a line to insert the
// rendered task before, or an existing archived copy to overwrite in
// place.
type location struct {
	line    int
	replace bool

	// depth counts the ancestors already present in the archive;
	// rendering starts with the first ancestor after them.
	depth int
}

// locate walks the date subsection beginning at start, the line after the
// date heading, and decides where the task belongs. New entries always
// land after the existing run of same-or-deeper lines at their depth:
// siblings append in archive order, never alphabetically or by recency.
func locate(doc buffer.Surface, t *task.Task, start int) location {
	want := outline.Normalize(t.Text)
	line := start
	depth := 0
	state := matchingAncestors

	for state != done {
		switch state {
		case matchingAncestors:
			if depth == len(t.Parents) {
				state = scanningToInsertionPoint
				break
			}
			parent := outline.Normalize(t.Parents[depth])
			for skipsAncestor(doc, line, depth, parent) {
				line++
			}
			if !outline.IsArchivable(doc, line) || outline.IndentDepth(doc.Line(line)) < depth {
				// This ancestor is absent from the archive; the
				// insertion will create the rest of the chain.
				state = scanningToInsertionPoint
				break
			}
			// Matched: step past the ancestor and descend a level.
			line++
			depth++

		case scanningToInsertionPoint:
			for outline.IsArchivable(doc, line) && outline.IndentDepth(doc.Line(line)) >= depth {
				if outline.IndentDepth(doc.Line(line)) == depth && outline.Normalize(doc.Line(line)) == want {
					break
				}
				line++
			}
			state = done
		}
	}

	if outline.IsArchivable(doc, line) &&
		outline.IndentDepth(doc.Line(line)) == depth &&
		outline.Normalize(doc.Line(line)) == want {
		return location{line: line, replace: true, depth: depth}
	}
	return location{line: line, depth: depth}
}

// skipsAncestor reports whether the line must be stepped over while
// matching an ancestor at the given depth: a deeper descendant of some
// other branch, or a non-matching sibling at the same depth.
func skipsAncestor(doc buffer.Surface, line, depth int, parent string) bool {
	if !outline.IsArchivable(doc, line) {
		return false
	}
	d := outline.IndentDepth(doc.Line(line))
	if d > depth {
		return true
	}
	return d == depth && outline.Normalize(doc.Line(line)) != parent
}
