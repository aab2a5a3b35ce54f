// Package outline classifies lines of an indented checklist document and
// resolves ancestor chains from indentation alone.
//
// The grammar of a line is a run of leading tabs, one fixed marker token,
// then the remainder. Marker rewriting works by explicit prefix match and
// replace so the indentation and remainder always survive untouched.
package outline

import (
	"strings"

	"github.com/raelum/obsidian-brain/internal/buffer"
)

// Marker tokens of the checklist grammar.
const (
	BulletMarker     = "- "
	UncheckedMarker  = "- [ ] "
	CheckedMarker    = "- [x] "
	InProgressMarker = "- [/] "
)

// IsBullet reports whether the line at n contains a bullet marker.
// Out-of-bounds lines are not bullets.
func IsBullet(doc buffer.Surface, n int) bool {
	if n < 0 || n > doc.LastLine() {
		return false
	}
	return strings.Contains(doc.Line(n), BulletMarker)
}

// IsTask reports whether the line at n is a checklist task, checked or
// unchecked. Out-of-bounds lines are not tasks.
func IsTask(doc buffer.Surface, n int) bool {
	if n < 0 || n > doc.LastLine() {
		return false
	}
	line := doc.Line(n)
	return strings.Contains(line, UncheckedMarker) || strings.Contains(line, CheckedMarker)
}

// IsArchivable reports whether the line is structural content of an
// archive list: a plain bullet or a task. Walking the archive treats both
// as siblings.
func IsArchivable(doc buffer.Surface, n int) bool {
	return IsBullet(doc, n) || IsTask(doc, n)
}

// IndentDepth counts the leading tabs of a line. Zero for a top-level
// bullet.
func IndentDepth(text string) int {
	return len(text) - len(strings.TrimLeft(text, "\t"))
}

// splitIndent separates the leading tab run from the rest of the line.
func splitIndent(text string) (indent, rest string) {
	rest = strings.TrimLeft(text, "\t")
	return text[:len(text)-len(rest)], rest
}

// Demote rewrites a checklist marker to a bare bullet, preserving
// indentation. An archived task's ancestors are structural context, not
// something to check off again. Non-task lines pass through unchanged.
func Demote(text string) string {
	indent, rest := splitIndent(text)
	for _, m := range []string{UncheckedMarker, CheckedMarker, InProgressMarker} {
		if strings.HasPrefix(rest, m) {
			return indent + BulletMarker + rest[len(m):]
		}
	}
	return text
}

// Check rewrites an unchecked task to checked form, preserving
// indentation. Lines not in unchecked form are returned unchanged.
func Check(text string) string {
	return rewriteMarker(text, CheckedMarker)
}

// Progress rewrites an unchecked task to the in-progress form, preserving
// indentation. Lines not in unchecked form are returned unchanged.
func Progress(text string) string {
	return rewriteMarker(text, InProgressMarker)
}

func rewriteMarker(text, marker string) string {
	indent, rest := splitIndent(text)
	if !strings.HasPrefix(rest, UncheckedMarker) {
		return text
	}
	return indent + marker + rest[len(UncheckedMarker):]
}

// Normalize strips surrounding whitespace and at most one leading bullet
// or checkbox marker, so a task's live form compares equal to its archived
// form whatever state the checkbox is in.
func Normalize(text string) string {
	t := strings.TrimSpace(text)
	for _, m := range []string{UncheckedMarker, CheckedMarker, InProgressMarker, BulletMarker} {
		if strings.HasPrefix(t, m) {
			t = t[len(m):]
			break
		}
	}
	return strings.TrimSpace(t)
}
