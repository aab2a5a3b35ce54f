package outline

import "github.com/raelum/obsidian-brain/internal/buffer"

// Ancestors reconstructs the ancestor chain of the task at the given line,
// ordered outermost first. depth is the task's own indent depth; the chain
// covers depths depth-1 down to 0.
//
// For each target depth the scan walks upward, skipping lines indented at
// or beyond the current level (deeper siblings and their descendants), and
// considers the first shallower line. That line is accepted only when it
// is a task indented at exactly the target depth. Anything else ends the
// resolution early: a ragged outline yields a partial chain, not an error.
func Ancestors(doc buffer.Surface, line, depth int) []string {
	var parents []string
	level := depth
	scan := line
	for target := depth - 1; target >= 0; target-- {
		scan--
		for scan >= 0 && IndentDepth(doc.Line(scan)) >= level {
			scan--
		}
		if scan < 0 || !IsTask(doc, scan) {
			break
		}
		text := doc.Line(scan)
		if IndentDepth(text) != target {
			break
		}
		// Found innermost-first, stored outer-first.
		parents = append([]string{text}, parents...)
		level = target
	}
	return parents
}
