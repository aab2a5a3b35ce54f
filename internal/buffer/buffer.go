// Package buffer models the host text-editing surface: a line-addressable
// document with a cursor and atomic multi-edit transactions.
package buffer

// Position is a zero-based line/character address in a document.
type Position struct {
	Line int
	Ch   int
}

// Edit replaces the range [From, To) with Text. A nil To inserts at From.
type Edit struct {
	From Position
	To   *Position
	Text string
}

// Surface is the editing contract the archiving core consumes. Any
// implementation must apply all edits passed to Apply as one all-or-nothing
// transaction forming a single undo step, with every edit's coordinates
// interpreted against the document as it was before the call.
type Surface interface {
	// Line returns the text of the given zero-based line. Out-of-bounds
	// indices return the empty string rather than erroring.
	Line(n int) string

	// LineCount returns the number of lines in the document.
	LineCount() int

	// LastLine returns the index of the final line.
	LastLine() int

	// Cursor returns the current cursor position.
	Cursor() Position

	// SetCursor moves the cursor.
	SetCursor(pos Position)

	// Apply applies all edits as one atomic transaction.
	Apply(edits []Edit)
}
