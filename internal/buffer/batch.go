package buffer

// Batch accumulates line-level edits and commits them as one transaction.
// Deletions are queued separately and always ordered after every other
// edit: the rest of the batch is planned against line numbers that
// removing the source line would shift.
type Batch struct {
	doc     Surface
	edits   []Edit
	deletes []Edit
}

// NewBatch creates an empty batch against the given surface.
func NewBatch(doc Surface) *Batch {
	return &Batch{doc: doc}
}

// InsertBefore inserts text as whole new lines immediately before the
// given line. A line past the end of the document appends after the last
// line instead.
func (b *Batch) InsertBefore(line int, text string) {
	if line > b.doc.LastLine() {
		last := b.doc.LastLine()
		b.edits = append(b.edits, Edit{
			From: Position{Line: last, Ch: len(b.doc.Line(last))},
			Text: "\n" + text,
		})
		return
	}
	b.edits = append(b.edits, Edit{
		From: Position{Line: line},
		Text: text + "\n",
	})
}

// ReplaceLine replaces the full text of a line, leaving its position
// untouched.
func (b *Batch) ReplaceLine(line int, text string) {
	to := Position{Line: line, Ch: len(b.doc.Line(line))}
	b.edits = append(b.edits, Edit{
		From: Position{Line: line},
		To:   &to,
		Text: text,
	})
}

// DeleteLine queues removal of a whole line, including one adjacent
// newline. Deletions are held back until Commit and applied last.
func (b *Batch) DeleteLine(line int) {
	if line == b.doc.LastLine() {
		// The final line has no trailing newline; consume the
		// preceding one instead.
		from := Position{Line: line}
		if line > 0 {
			from = Position{Line: line - 1, Ch: len(b.doc.Line(line - 1))}
		}
		to := Position{Line: line, Ch: len(b.doc.Line(line))}
		b.deletes = append(b.deletes, Edit{From: from, To: &to})
		return
	}
	to := Position{Line: line + 1}
	b.deletes = append(b.deletes, Edit{From: Position{Line: line}, To: &to})
}

// Len reports the number of queued edits.
func (b *Batch) Len() int {
	return len(b.edits) + len(b.deletes)
}

// Commit applies every queued edit, deletions last, as a single atomic
// transaction. An empty batch applies nothing.
func (b *Batch) Commit() {
	if b.Len() == 0 {
		return
	}
	b.doc.Apply(append(b.edits, b.deletes...))
}
