package buffer

import (
	"os"
	"sort"
	"strings"

	"github.com/natefinch/atomic"
)

// Document is an in-memory Surface backed by a slice of lines.
type Document struct {
	lines  []string
	cursor Position

	// transactions counts Apply calls. Archive operations must batch all
	// their edits into exactly one transaction.
	transactions int
}

// NewDocument creates a Document from raw content, split on newlines.
func NewDocument(content string) *Document {
	return &Document{lines: strings.Split(content, "\n")}
}

// Load reads the file at path into a Document.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return NewDocument(string(data)), nil
}

// Save writes the document back to path, replacing the file atomically.
func (d *Document) Save(path string) error {
	return atomic.WriteFile(path, strings.NewReader(d.Content()))
}

// Content returns the full document text.
func (d *Document) Content() string {
	return strings.Join(d.lines, "\n")
}

// Line returns the text of the given line, or "" when out of bounds.
func (d *Document) Line(n int) string {
	if n < 0 || n >= len(d.lines) {
		return ""
	}
	return d.lines[n]
}

// LineCount returns the number of lines.
func (d *Document) LineCount() int { return len(d.lines) }

// LastLine returns the index of the final line.
func (d *Document) LastLine() int { return len(d.lines) - 1 }

// Cursor returns the current cursor position.
func (d *Document) Cursor() Position { return d.cursor }

// SetCursor moves the cursor.
func (d *Document) SetCursor(pos Position) { d.cursor = pos }

// Transactions returns how many Apply calls the document has seen.
func (d *Document) Transactions() int { return d.transactions }

// Apply applies all edits as one transaction. Edits are applied bottom-up
// so that every coordinate keeps referring to the pre-transaction document
// even as earlier lines grow or shrink.
func (d *Document) Apply(edits []Edit) {
	ordered := make([]Edit, len(edits))
	copy(ordered, edits)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].From.Line != ordered[j].From.Line {
			return ordered[i].From.Line > ordered[j].From.Line
		}
		return ordered[i].From.Ch > ordered[j].From.Ch
	})
	for _, e := range ordered {
		d.splice(e)
	}
	d.transactions++
}

// splice replaces the range [From, To) with the edit text.
func (d *Document) splice(e Edit) {
	from := d.clamp(e.From)
	to := from
	if e.To != nil {
		to = d.clamp(*e.To)
	}
	prefix := d.lines[from.Line][:from.Ch]
	suffix := d.lines[to.Line][to.Ch:]
	repl := strings.Split(prefix+e.Text+suffix, "\n")

	tail := make([]string, len(d.lines[to.Line+1:]))
	copy(tail, d.lines[to.Line+1:])
	d.lines = append(d.lines[:from.Line], append(repl, tail...)...)
}

// clamp bounds a position to addressable document content.
func (d *Document) clamp(p Position) Position {
	if p.Line < 0 {
		p.Line = 0
	}
	if p.Line > d.LastLine() {
		p.Line = d.LastLine()
		p.Ch = len(d.lines[p.Line])
		return p
	}
	if p.Ch < 0 {
		p.Ch = 0
	}
	if p.Ch > len(d.lines[p.Line]) {
		p.Ch = len(d.lines[p.Line])
	}
	return p
}
