package outline

import (
	"reflect"
	"testing"

	"github.com/raelum/obsidian-brain/internal/buffer"
)

func TestAncestors_FullChain(t *testing.T) {
	doc := buffer.NewDocument(
		"- [ ] P\n" +
			"\t- [ ] Q\n" +
			"\t\t- [ ] R\n" +
			"\t\t\t- [ ] S")

	got := Ancestors(doc, 3, 3)
	want := []string{"- [ ] P", "\t- [ ] Q", "\t\t- [ ] R"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected full outer-first chain %v, got %v", want, got)
	}
}

func TestAncestors_SkipsDeeperSiblings(t *testing.T) {
	doc := buffer.NewDocument(
		"- [ ] P\n" +
			"\t- [ ] other branch\n" +
			"\t\t- [ ] deep descendant\n" +
			"\t- [ ] Q\n" +
			"\t\t- [ ] S")

	got := Ancestors(doc, 4, 2)
	want := []string{"- [ ] P", "\t- [ ] Q"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected chain through nearest ancestors %v, got %v", want, got)
	}
}

func TestAncestors_TopLevelTaskHasNone(t *testing.T) {
	doc := buffer.NewDocument("- [ ] alone")

	if got := Ancestors(doc, 0, 0); len(got) != 0 {
		t.Errorf("expected no ancestors for a top-level task, got %v", got)
	}
}

func TestAncestors_TruncatesOnNonTaskParent(t *testing.T) {
	doc := buffer.NewDocument(
		"- [ ] P\n" +
			"\t- plain bullet, not a task\n" +
			"\t\t- [ ] S")

	// The depth-1 candidate is not a task, so resolution stops there:
	// the chain is partial, not an error.
	if got := Ancestors(doc, 2, 2); len(got) != 0 {
		t.Errorf("expected truncated chain, got %v", got)
	}
}

func TestAncestors_TruncatesOnBlankLine(t *testing.T) {
	doc := buffer.NewDocument(
		"- [ ] P\n" +
			"\n" +
			"\t- [ ] S")

	// The blank line is shallower than the task and not a task itself.
	if got := Ancestors(doc, 2, 1); len(got) != 0 {
		t.Errorf("expected truncated chain, got %v", got)
	}
}

func TestAncestors_TruncatesOnIndentationJump(t *testing.T) {
	doc := buffer.NewDocument(
		"- [ ] P\n" +
			"\t\t\t- [ ] S")

	// The first shallower line is at depth 0, not the expected depth 2.
	if got := Ancestors(doc, 1, 3); len(got) != 0 {
		t.Errorf("expected truncated chain on irregular outline, got %v", got)
	}
}

func TestAncestors_PartialChainKeepsInnerAncestors(t *testing.T) {
	doc := buffer.NewDocument(
		"- not a task\n" +
			"\t- [ ] Q\n" +
			"\t\t- [ ] S")

	// Depth 1 resolves; depth 0 hits a non-task line and stops.
	got := Ancestors(doc, 2, 2)
	want := []string{"\t- [ ] Q"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected partial chain %v, got %v", want, got)
	}
}
