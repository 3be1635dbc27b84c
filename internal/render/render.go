package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"splitdiff/internal/diffmodel"
	"splitdiff/internal/theme"
)

// Context carries everything row rendering needs besides the model.
// Gutter, when set, supplies an extra one-cell glyph per line and side
// (decorations, revert icons); nil means no gutter glyphs.
type Context struct {
	Theme            theme.Theme
	RenderIndicators bool
	Highlighter      *Highlighter
	Gutter           func(side diffmodel.Side, line int) string
}

// SideBySide renders the model into two row-aligned line slices, one per
// pane. Both slices always have exactly one entry per model row so the
// panes scroll in lockstep.
func SideBySide(m *diffmodel.Model, origWidth, modWidth int, ctx Context) ([]string, []string) {
	if origWidth < 1 {
		origWidth = 1
	}
	if modWidth < 1 {
		modWidth = 1
	}

	numW := numberWidth(m)
	orig := make([]string, 0, m.LineCount())
	mod := make([]string, 0, m.LineCount())
	for _, row := range m.Rows {
		orig = append(orig, renderSide(row, diffmodel.SideOriginal, origWidth, numW, ctx))
		mod = append(mod, renderSide(row, diffmodel.SideModified, modWidth, numW, ctx))
	}
	return orig, mod
}

// Inline renders the model as a single unified column for the modified
// pane; the original pane shows nothing in inline mode.
func Inline(m *diffmodel.Model, width int, ctx Context) []string {
	if width < 1 {
		width = 1
	}

	numW := numberWidth(m)
	out := make([]string, 0, m.LineCount())
	for _, row := range m.Rows {
		switch row.Kind {
		case diffmodel.RowChange:
			// A paired change renders as its two halves stacked would in a
			// unified diff, but row alignment with the (hidden) original
			// pane requires one line per row: show the modified side.
			out = append(out, renderSide(row, diffmodel.SideModified, width, numW, ctx))
		case diffmodel.RowDelete:
			out = append(out, renderSide(row, diffmodel.SideOriginal, width, numW, ctx))
		default:
			out = append(out, renderSide(row, diffmodel.SideModified, width, numW, ctx))
		}
	}
	return out
}

func renderSide(row diffmodel.Row, side diffmodel.Side, width, numW int, ctx Context) string {
	gutter := " "
	if ctx.Gutter != nil {
		if lineNo := sideLine(row, side); lineNo != nil {
			if g := ctx.Gutter(side, *lineNo); g != "" {
				gutter = g
			}
		}
	}
	lineWidth := width - lipgloss.Width(gutter)
	if lineWidth < 1 {
		lineWidth = 1
	}

	switch row.Kind {
	case diffmodel.RowHunkHeader, diffmodel.RowFileHeader:
		header := row.OldText
		if header == "" {
			header = row.NewText
		}
		return gutter + ctx.Theme.RowHunkHeader.Render(fit(header, lineWidth))
	}

	lineNo, text, marker, styled := sideCell(row, side, ctx.Theme)
	if lineNo == nil {
		return gutter + strings.Repeat(" ", lineWidth)
	}

	if ctx.Highlighter != nil && row.Kind == diffmodel.RowContext {
		text = ctx.Highlighter.Line(text)
	}

	num := ctx.Theme.LineNumber.Render(fmt.Sprintf("%*d", numW, *lineNo))
	indicator := ""
	if ctx.RenderIndicators {
		indicator = ctx.Theme.Indicator.Render(string(marker)) + " "
	}
	return gutter + fit(num+" "+indicator+styled.Render(text), lineWidth)
}

// sideCell picks the line number, text, change marker and style for one
// side of a row.
func sideCell(row diffmodel.Row, side diffmodel.Side, th theme.Theme) (*int, string, rune, lipgloss.Style) {
	switch side {
	case diffmodel.SideOriginal:
		switch row.Kind {
		case diffmodel.RowDelete:
			return row.OldLine, row.OldText, '-', th.RowDelete
		case diffmodel.RowChange:
			return row.OldLine, row.OldText, '~', th.RowChange
		}
		return row.OldLine, row.OldText, ' ', th.RowContext

	default:
		switch row.Kind {
		case diffmodel.RowAdd:
			return row.NewLine, row.NewText, '+', th.RowAdd
		case diffmodel.RowChange:
			return row.NewLine, row.NewText, '~', th.RowChange
		}
		return row.NewLine, row.NewText, ' ', th.RowContext
	}
}

func sideLine(row diffmodel.Row, side diffmodel.Side) *int {
	if side == diffmodel.SideOriginal {
		return row.OldLine
	}
	return row.NewLine
}

// fit truncates ANSI-styled text to width and pads it with spaces so
// every rendered line has identical display width.
func fit(s string, width int) string {
	s = ansi.Truncate(s, width, "")
	if pad := width - lipgloss.Width(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

func numberWidth(m *diffmodel.Model) int {
	maxLine := 0
	for _, row := range m.Rows {
		if row.OldLine != nil && *row.OldLine > maxLine {
			maxLine = *row.OldLine
		}
		if row.NewLine != nil && *row.NewLine > maxLine {
			maxLine = *row.NewLine
		}
	}
	w := len(fmt.Sprintf("%d", maxLine))
	if w < 3 {
		w = 3
	}
	return w
}
