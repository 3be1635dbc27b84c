package marks

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"splitdiff/internal/config"
	"splitdiff/internal/diffmodel"
	"splitdiff/internal/pane"
	"splitdiff/internal/widget"
)

func TestStoreRoundTrip(t *testing.T) {
	root := t.TempDir()
	store := NewStore(root)

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load() on missing file error = %v", err)
	}
	if len(loaded) != 0 {
		t.Fatalf("expected no marks, got %d", len(loaded))
	}

	in := []Mark{
		{Path: "a.go", Line: 3, Note: "check this", CreatedAt: time.Now().UTC()},
		{Path: "b.go", Line: 10, CreatedAt: time.Now().UTC()},
	}
	if err := store.Save(in); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err = store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(loaded) != 2 || loaded[0].Path != "a.go" || loaded[1].Line != 10 {
		t.Fatalf("round trip mismatch: %+v", loaded)
	}

	if _, err := os.Stat(filepath.Join(root, ".splitdiff", "marks.json")); err != nil {
		t.Fatalf("marks file not written: %v", err)
	}
}

func TestStoreRejectsBrokenFile(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, ".splitdiff")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "marks.json"), []byte("{"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	if _, err := NewStore(root).Load(); err == nil {
		t.Fatalf("expected error for broken marks file")
	}
}

func intp(v int) *int { return &v }

func sampleModel(path string, n int) *diffmodel.Model {
	m := &diffmodel.Model{Path: path}
	for i := 1; i <= n; i++ {
		m.Rows = append(m.Rows, diffmodel.Row{
			Kind:    diffmodel.RowContext,
			OldLine: intp(i),
			NewLine: intp(i),
			OldText: "line",
			NewText: "line",
		})
	}
	return m
}

func TestToggleCommandMarksAndUnmarks(t *testing.T) {
	store := NewStore(t.TempDir())
	w := widget.New(widget.Services{
		Contributions: []widget.ContributionDescriptor{Descriptor(store)},
	}, config.Options{})
	defer w.Dispose()

	w.Layout(80, 10)
	w.SetModel(sampleModel("sample.go", 20))

	if err := w.Trigger("test", ToggleCommand, 3); err != nil {
		t.Fatalf("toggle error = %v", err)
	}
	if decs := w.Modified().LineDecorations(3); len(decs) != 1 || decs[0].Glyph != markGlyph {
		t.Fatalf("line 3 not decorated: %+v", decs)
	}

	saved, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(saved) != 1 || saved[0].Path != "sample.go" || saved[0].Line != 3 {
		t.Fatalf("mark not persisted: %+v", saved)
	}

	if err := w.Trigger("test", ToggleCommand, 3); err != nil {
		t.Fatalf("second toggle error = %v", err)
	}
	if decs := w.Modified().LineDecorations(3); len(decs) != 0 {
		t.Fatalf("mark not removed: %+v", decs)
	}
}

func TestToggleUsesCaretLineWithoutPayload(t *testing.T) {
	store := NewStore(t.TempDir())
	w := widget.New(widget.Services{
		Contributions: []widget.ContributionDescriptor{Descriptor(store)},
	}, config.Options{})
	defer w.Dispose()

	w.Layout(80, 10)
	w.SetModel(sampleModel("sample.go", 20))
	w.SetPosition(pane.Position{Line: 7, Column: 1})

	if err := w.Trigger("test", ToggleCommand, nil); err != nil {
		t.Fatalf("toggle error = %v", err)
	}
	if decs := w.Modified().LineDecorations(7); len(decs) != 1 {
		t.Fatalf("caret line not marked: %+v", decs)
	}
}

func TestToggleWithoutModelFails(t *testing.T) {
	store := NewStore(t.TempDir())
	w := widget.New(widget.Services{
		Contributions: []widget.ContributionDescriptor{Descriptor(store)},
	}, config.Options{})
	defer w.Dispose()

	if err := w.Trigger("test", ToggleCommand, 1); err == nil {
		t.Fatalf("expected error with no model held")
	}
}

func TestMarksFollowModelSwitch(t *testing.T) {
	store := NewStore(t.TempDir())
	w := widget.New(widget.Services{
		Contributions: []widget.ContributionDescriptor{Descriptor(store)},
	}, config.Options{})
	defer w.Dispose()

	w.Layout(80, 10)
	w.SetModel(sampleModel("a.go", 20))
	if err := w.Trigger("test", ToggleCommand, 5); err != nil {
		t.Fatalf("toggle error = %v", err)
	}

	w.SetModel(sampleModel("b.go", 20))
	if decs := w.Modified().LineDecorations(5); len(decs) != 0 {
		t.Fatalf("a.go mark leaked into b.go: %+v", decs)
	}

	w.SetModel(sampleModel("a.go", 20))
	if decs := w.Modified().LineDecorations(5); len(decs) != 1 {
		t.Fatalf("mark lost after switching back: %+v", decs)
	}
}
