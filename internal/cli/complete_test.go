package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// runArchive uses the real clock, so tests derive the expected date
// heading the same way.
func today() string {
	return time.Now().Format("2006-01-02")
}

func writeDoc(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "notes.md")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunArchive_Complete(t *testing.T) {
	path := writeDoc(t, "- [ ] A\n\t- [ ] B")

	if err := runArchive(path, 2, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "- [ ] A\n# History\n## " + today() + "\n- A\n\t- [x] B"
	if string(data) != want {
		t.Errorf("expected %q, got %q", want, string(data))
	}
}

func TestRunArchive_Progress(t *testing.T) {
	path := writeDoc(t, "- [ ] A")

	if err := runArchive(path, 1, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "- [ ] A\n# History\n## " + today() + "\n- [/] A"
	if string(data) != want {
		t.Errorf("expected %q, got %q", want, string(data))
	}
}

func TestRunArchive_NotATaskLeavesFileUntouched(t *testing.T) {
	path := writeDoc(t, "plain text\n- [ ] A")

	if err := runArchive(path, 1, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "plain text\n- [ ] A" {
		t.Errorf("expected file untouched, got %q", string(data))
	}
}

func TestRunArchive_LineOutOfRange(t *testing.T) {
	path := writeDoc(t, "- [ ] A")

	err := runArchive(path, 5, false)
	if err == nil || !strings.Contains(err.Error(), "out of range") {
		t.Errorf("expected out-of-range error, got %v", err)
	}
	if err := runArchive(path, 0, false); err == nil {
		t.Error("expected error for line 0")
	}
}

func TestRunArchive_MissingFile(t *testing.T) {
	err := runArchive(filepath.Join(t.TempDir(), "missing.md"), 1, false)
	if err == nil || !strings.Contains(err.Error(), "opening document") {
		t.Errorf("expected opening error, got %v", err)
	}
}
