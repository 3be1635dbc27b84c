package app

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"splitdiff/internal/config"
	"splitdiff/internal/widget"
)

func testModel(t *testing.T) Model {
	t.Helper()
	w := widget.New(widget.Services{Contributions: []widget.ContributionDescriptor{}}, config.Options{})
	t.Cleanup(w.Dispose)
	return Model{keys: defaultKeyMap(), widget: w}
}

func TestWindowSizeLaysOutWidget(t *testing.T) {
	m := testModel(t)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = updated.(Model)

	g := m.widget.Geometry()
	if g.ContainerWidth != 100-filePaneWidth-2 {
		t.Fatalf("widget container width = %d, want %d", g.ContainerWidth, 100-filePaneWidth-2)
	}
	if g.ContentHeight != 28 {
		t.Fatalf("widget content height = %d, want 28", g.ContentHeight)
	}
	if g.OriginalWidth+g.ModifiedWidth+g.RulerWidth != g.ContainerWidth {
		t.Fatalf("geometry invariant broken: %+v", g)
	}
}

func TestFilesLoadedClampsCursor(t *testing.T) {
	m := testModel(t)
	m.cursor = 10

	updated, _ := m.Update(filesLoadedMsg{paths: []string{"a.go", "b.go"}})
	m = updated.(Model)

	if m.cursor != 1 {
		t.Fatalf("cursor = %d, want clamp to 1", m.cursor)
	}

	updated, _ = m.Update(filesLoadedMsg{paths: nil})
	m = updated.(Model)
	if m.cursor != 0 {
		t.Fatalf("cursor = %d with no files, want 0", m.cursor)
	}
}

func TestOverRulerUsesWidgetGeometry(t *testing.T) {
	m := testModel(t)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = updated.(Model)

	g := m.widget.Geometry()
	if g.RulerWidth == 0 {
		t.Fatalf("expected visible ruler at width 100")
	}
	start := filePaneWidth + 2 + g.ContainerWidth - g.RulerWidth

	if !m.overRuler(start) || !m.overRuler(start + g.RulerWidth - 1) {
		t.Fatalf("ruler columns not recognized at %d", start)
	}
	if m.overRuler(start - 1) {
		t.Fatalf("pane column misread as ruler")
	}
	if m.overRuler(start + g.RulerWidth) {
		t.Fatalf("column past window misread as ruler")
	}
}

func TestStatusLineWinsOverHelp(t *testing.T) {
	m := testModel(t)
	if m.helpText() == "" {
		t.Fatalf("default help text empty")
	}
	m.statusLine = "Copied line to clipboard."
	if m.helpText() != "Copied line to clipboard." {
		t.Fatalf("status line not shown: %q", m.helpText())
	}
}
