package task

import (
	"reflect"
	"testing"
)

func TestNew_DemotesChecklistParents(t *testing.T) {
	tk := New([]string{"- [ ] P", "\t- [x] Q", "\t\t- plain"}, "\t\t\t- [ ] S", nil)

	want := []string{"- P", "\t- Q", "\t\t- plain"}
	if !reflect.DeepEqual(tk.Parents, want) {
		t.Errorf("expected demoted parents %v, got %v", want, tk.Parents)
	}
	if tk.Text != "\t\t\t- [ ] S" {
		t.Errorf("expected task line untouched, got %q", tk.Text)
	}
	if len(tk.Children) != 0 {
		t.Errorf("expected no children, got %v", tk.Children)
	}
}

func TestMarkCompleted(t *testing.T) {
	tk := New(nil, "\t- [ ] Buy milk", nil)
	tk.MarkCompleted()
	if tk.Text != "\t- [x] Buy milk" {
		t.Errorf("expected checked task, got %q", tk.Text)
	}

	// Already checked: no-op.
	tk.MarkCompleted()
	if tk.Text != "\t- [x] Buy milk" {
		t.Errorf("expected second mark to leave text unchanged, got %q", tk.Text)
	}
}

func TestMarkInProgress(t *testing.T) {
	tk := New(nil, "- [ ] Buy milk", nil)
	tk.MarkInProgress()
	if tk.Text != "- [/] Buy milk" {
		t.Errorf("expected in-progress task, got %q", tk.Text)
	}
}

func TestRender(t *testing.T) {
	tk := New([]string{"- [ ] P", "\t- [ ] Q"}, "\t\t- [ ] S", nil)

	tests := []struct {
		from int
		want string
	}{
		{0, "- P\n\t- Q\n\t\t- [ ] S"},
		{1, "\t- Q\n\t\t- [ ] S"},
		{2, "\t\t- [ ] S"},
		{5, "\t\t- [ ] S"},
		{-1, "- P\n\t- Q\n\t\t- [ ] S"},
	}

	for _, tt := range tests {
		if got := tk.Render(tt.from); got != tt.want {
			t.Errorf("Render(%d) = %q, want %q", tt.from, got, tt.want)
		}
	}
}

func TestRender_NoParents(t *testing.T) {
	tk := New(nil, "- [ ] alone", nil)
	if got := tk.Render(0); got != "- [ ] alone" {
		t.Errorf("expected just the task line, got %q", got)
	}
}
