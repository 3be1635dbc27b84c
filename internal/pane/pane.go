package pane

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
)

// Position is a 1-based line/column document coordinate.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// Range is an inclusive start/end pair of positions. Selections are
// ranges; a caret is an empty range.
type Range struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// RevealMode controls where a revealed line lands in the viewport.
type RevealMode int

const (
	RevealTop RevealMode = iota
	RevealCenter
	RevealCenterIfOutsideViewport
	RevealNearTop
)

// nearTopMargin is the row offset RevealNearTop leaves above the target.
const nearTopMargin = 2

// Command is a named operation a pane can execute with a payload.
type Command func(p *Pane, payload any) error

// Options configures a single pane at construction.
type Options struct {
	ReadOnly bool
	WordWrap bool
}

// Pane is one editing surface of the diff widget: a scrollable content
// window plus a cursor/selection layer and a command table. The widget
// composes two of these and forwards its delegation surface to one.
type Pane struct {
	view     viewport.Model
	readOnly bool
	wordWrap bool
	focused  bool

	position    Position
	selections  []Range
	decorations []*DecorationsCollection
	commands    map[string]Command

	disposed bool
}

func New(opts Options) *Pane {
	return &Pane{
		view:       viewport.New(1, 1),
		readOnly:   opts.ReadOnly,
		wordWrap:   opts.WordWrap,
		position:   Position{Line: 1, Column: 1},
		selections: []Range{{Start: Position{1, 1}, End: Position{1, 1}}},
		commands:   make(map[string]Command),
	}
}

func (p *Pane) ReadOnly() bool { return p.readOnly }

// SetReadOnly flips editability; the original pane uses this when the
// originalEditable option changes after construction.
func (p *Pane) SetReadOnly(v bool) { p.readOnly = v }

// SetContent replaces the pane's visible lines. Content is row-aligned
// with the peer pane; the caller guarantees equal line counts.
func (p *Pane) SetContent(lines []string) {
	p.view.SetContent(strings.Join(lines, "\n"))
	p.clampScroll()
}

func (p *Pane) SetSize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	p.view.Width = width
	p.view.Height = height
	p.clampScroll()
}

func (p *Pane) Width() int  { return p.view.Width }
func (p *Pane) Height() int { return p.view.Height }

func (p *Pane) View() string { return p.view.View() }

func (p *Pane) LineCount() int { return p.view.TotalLineCount() }

func (p *Pane) ScrollTop() int { return p.view.YOffset }

func (p *Pane) SetScrollTop(top int) {
	p.view.SetYOffset(top)
	p.clampScroll()
}

// ScrollBy applies a relative scroll delta, as wheel gestures do.
func (p *Pane) ScrollBy(delta int) {
	p.SetScrollTop(p.view.YOffset + delta)
}

func (p *Pane) clampScroll() {
	maxTop := p.view.TotalLineCount() - p.view.Height
	if maxTop < 0 {
		maxTop = 0
	}
	if p.view.YOffset > maxTop {
		p.view.SetYOffset(maxTop)
	}
	if p.view.YOffset < 0 {
		p.view.SetYOffset(0)
	}
}

// Position returns the caret position.
func (p *Pane) Position() Position { return p.position }

// SetPosition moves the caret, clamping the line into the document.
func (p *Pane) SetPosition(pos Position) {
	p.position = p.clampPosition(pos)
	p.selections = []Range{{Start: p.position, End: p.position}}
}

func (p *Pane) clampPosition(pos Position) Position {
	if pos.Line < 1 {
		pos.Line = 1
	}
	if n := p.LineCount(); n > 0 && pos.Line > n {
		pos.Line = n
	}
	if pos.Column < 1 {
		pos.Column = 1
	}
	return pos
}

// Selection returns the primary selection.
func (p *Pane) Selection() Range { return p.selections[0] }

// Selections returns all selections; the first is primary.
func (p *Pane) Selections() []Range {
	out := make([]Range, len(p.selections))
	copy(out, p.selections)
	return out
}

func (p *Pane) SetSelection(r Range) {
	p.SetSelections([]Range{r})
}

// SetSelections replaces all selections. An empty slice resets to a
// caret at the current position.
func (p *Pane) SetSelections(rs []Range) {
	if len(rs) == 0 {
		p.selections = []Range{{Start: p.position, End: p.position}}
		return
	}
	clamped := make([]Range, len(rs))
	for i, r := range rs {
		clamped[i] = Range{Start: p.clampPosition(r.Start), End: p.clampPosition(r.End)}
	}
	p.selections = clamped
	p.position = clamped[0].End
}

// RevealLine scrolls so the 1-based line lands per mode. The smooth flag
// mirrors an animated reveal; terminal cells apply it immediately.
func (p *Pane) RevealLine(line int, mode RevealMode, smooth bool) {
	_ = smooth
	row := line - 1
	if row < 0 {
		row = 0
	}

	h := p.view.Height
	switch mode {
	case RevealTop:
		p.SetScrollTop(row)
	case RevealCenter:
		p.SetScrollTop(row - h/2)
	case RevealCenterIfOutsideViewport:
		if row < p.view.YOffset || row >= p.view.YOffset+h {
			p.SetScrollTop(row - h/2)
		}
	case RevealNearTop:
		p.SetScrollTop(row - nearTopMargin)
	}
}

// RevealPosition reveals the position's line and moves the caret there.
func (p *Pane) RevealPosition(pos Position, mode RevealMode, smooth bool) {
	p.SetPosition(pos)
	p.RevealLine(p.position.Line, mode, smooth)
}

// RevealRange reveals the start of the range and selects it.
func (p *Pane) RevealRange(r Range, mode RevealMode, smooth bool) {
	p.SetSelection(r)
	p.RevealLine(p.selections[0].Start.Line, mode, smooth)
}

func (p *Pane) Focus()             { p.focused = true }
func (p *Pane) Blur()              { p.focused = false }
func (p *Pane) HasTextFocus() bool { return p.focused }

// RegisterCommand installs a named command. Re-registering replaces the
// previous handler.
func (p *Pane) RegisterCommand(id string, cmd Command) {
	p.commands[id] = cmd
}

// Trigger runs a named command with a payload. Unknown commands and
// handler failures surface unchanged to the caller.
func (p *Pane) Trigger(source, id string, payload any) error {
	cmd, ok := p.commands[id]
	if !ok {
		return fmt.Errorf("pane: unknown command %q (source %s)", id, source)
	}
	return cmd(p, payload)
}

// Actions enumerates the registered command ids in no particular order.
func (p *Pane) Actions() []string {
	out := make([]string, 0, len(p.commands))
	for id := range p.commands {
		out = append(out, id)
	}
	return out
}

// Dispose clears decorations and the command table. Panes are disposed
// with their widget, never reused.
func (p *Pane) Dispose() {
	if p.disposed {
		return
	}
	p.disposed = true
	for _, dc := range p.decorations {
		dc.items = nil
	}
	p.decorations = nil
	p.commands = nil
}

func (p *Pane) Disposed() bool { return p.disposed }
