package pane

import (
	"strings"
	"testing"
)

func contentLines(n int) []string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = strings.Repeat("x", 10)
	}
	return lines
}

func TestSetPositionClampsIntoDocument(t *testing.T) {
	p := New(Options{})
	p.SetSize(20, 5)
	p.SetContent(contentLines(10))

	p.SetPosition(Position{Line: 99, Column: 0})
	got := p.Position()
	if got.Line != 10 || got.Column != 1 {
		t.Fatalf("Position() = %+v, want line 10 col 1", got)
	}

	p.SetPosition(Position{Line: -5, Column: 3})
	if got := p.Position(); got.Line != 1 || got.Column != 3 {
		t.Fatalf("Position() = %+v, want line 1 col 3", got)
	}
}

func TestSetPositionCollapsesSelectionToCaret(t *testing.T) {
	p := New(Options{})
	p.SetSize(20, 5)
	p.SetContent(contentLines(10))

	p.SetSelection(Range{Start: Position{2, 1}, End: Position{4, 5}})
	p.SetPosition(Position{Line: 7, Column: 1})

	sel := p.Selection()
	if sel.Start != sel.End || sel.Start.Line != 7 {
		t.Fatalf("expected caret selection at line 7, got %+v", sel)
	}
}

func TestRevealLineModes(t *testing.T) {
	p := New(Options{})
	p.SetSize(20, 10)
	p.SetContent(contentLines(100))

	p.RevealLine(50, RevealTop, false)
	if p.ScrollTop() != 49 {
		t.Fatalf("RevealTop scroll = %d, want 49", p.ScrollTop())
	}

	p.RevealLine(50, RevealCenter, false)
	if p.ScrollTop() != 44 {
		t.Fatalf("RevealCenter scroll = %d, want 44", p.ScrollTop())
	}

	p.RevealLine(50, RevealNearTop, false)
	if p.ScrollTop() != 47 {
		t.Fatalf("RevealNearTop scroll = %d, want 47", p.ScrollTop())
	}
}

func TestRevealCenterIfOutsideViewportKeepsVisibleLines(t *testing.T) {
	p := New(Options{})
	p.SetSize(20, 10)
	p.SetContent(contentLines(100))

	p.SetScrollTop(40)
	p.RevealLine(45, RevealCenterIfOutsideViewport, false)
	if p.ScrollTop() != 40 {
		t.Fatalf("visible line should not scroll, got top %d", p.ScrollTop())
	}

	p.RevealLine(90, RevealCenterIfOutsideViewport, false)
	if p.ScrollTop() != 84 {
		t.Fatalf("outside line should center, got top %d want 84", p.ScrollTop())
	}
}

func TestScrollClampsAtDocumentEdges(t *testing.T) {
	p := New(Options{})
	p.SetSize(20, 10)
	p.SetContent(contentLines(30))

	p.ScrollBy(-5)
	if p.ScrollTop() != 0 {
		t.Fatalf("scroll above top = %d, want 0", p.ScrollTop())
	}

	p.ScrollBy(1000)
	if p.ScrollTop() != 20 {
		t.Fatalf("scroll past bottom = %d, want 20", p.ScrollTop())
	}
}

func TestTriggerRunsRegisteredCommand(t *testing.T) {
	p := New(Options{})
	var got any
	p.RegisterCommand("copy-line", func(_ *Pane, payload any) error {
		got = payload
		return nil
	})

	if err := p.Trigger("test", "copy-line", 42); err != nil {
		t.Fatalf("Trigger() error = %v", err)
	}
	if got != 42 {
		t.Fatalf("payload = %v, want 42", got)
	}
}

func TestTriggerUnknownCommandFails(t *testing.T) {
	p := New(Options{})
	if err := p.Trigger("test", "does-not-exist", nil); err == nil {
		t.Fatalf("expected error for unknown command")
	}
}

func TestDecorationsCollectionsMergePerLine(t *testing.T) {
	p := New(Options{})
	dc1 := p.NewDecorationsCollection(Decoration{Line: 3, Glyph: "●", Class: "mark"})
	dc2 := p.NewDecorationsCollection()
	dc2.Set([]Decoration{{Line: 3, Glyph: "▶", Class: "revert"}, {Line: 5, Glyph: "▶", Class: "revert"}})

	if got := p.LineDecorations(3); len(got) != 2 {
		t.Fatalf("line 3 decorations = %d, want 2", len(got))
	}
	if got := p.LineDecorations(5); len(got) != 1 {
		t.Fatalf("line 5 decorations = %d, want 1", len(got))
	}

	dc1.Clear()
	if got := p.LineDecorations(3); len(got) != 1 {
		t.Fatalf("after clear, line 3 decorations = %d, want 1", len(got))
	}
}

func TestViewStateRoundTrip(t *testing.T) {
	p := New(Options{})
	p.SetSize(20, 5)
	p.SetContent(contentLines(50))
	p.SetScrollTop(12)
	p.SetSelection(Range{Start: Position{13, 1}, End: Position{14, 3}})

	blob, err := MarshalViewState(p.SaveViewState())
	if err != nil {
		t.Fatalf("MarshalViewState() error = %v", err)
	}

	q := New(Options{})
	q.SetSize(20, 5)
	q.SetContent(contentLines(50))

	state, err := UnmarshalViewState(blob)
	if err != nil {
		t.Fatalf("UnmarshalViewState() error = %v", err)
	}
	q.RestoreViewState(state)

	if q.ScrollTop() != 12 {
		t.Fatalf("restored scroll = %d, want 12", q.ScrollTop())
	}
	if sel := q.Selection(); sel.Start.Line != 13 || sel.End.Line != 14 {
		t.Fatalf("restored selection = %+v", sel)
	}
}

func TestRestoreViewStateClampsAgainstShorterContent(t *testing.T) {
	p := New(Options{})
	p.SetSize(20, 5)
	p.SetContent(contentLines(10))

	p.RestoreViewState(ViewState{ScrollTop: 100, Position: Position{Line: 80, Column: 1}})
	if p.ScrollTop() != 5 {
		t.Fatalf("restored scroll = %d, want clamped 5", p.ScrollTop())
	}
	if p.Position().Line != 10 {
		t.Fatalf("restored position = %+v, want line 10", p.Position())
	}
}

func TestDisposeIsIdempotent(t *testing.T) {
	p := New(Options{})
	p.NewDecorationsCollection(Decoration{Line: 1})
	p.Dispose()
	p.Dispose()
	if !p.Disposed() {
		t.Fatalf("expected disposed pane")
	}
	if got := p.LineDecorations(1); len(got) != 0 {
		t.Fatalf("decorations should be gone after dispose, got %v", got)
	}
}
