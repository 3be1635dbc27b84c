// Package widget implements the dual-pane diff widget: two aligned
// editor panes, an overview ruler, a held diff model, and a contribution
// host, wired together in a fixed construction order and torn down in
// reverse.
package widget

import (
	"log/slog"

	"github.com/charmbracelet/lipgloss"

	"splitdiff/internal/config"
	"splitdiff/internal/diffmodel"
	"splitdiff/internal/pane"
	"splitdiff/internal/registry"
	"splitdiff/internal/render"
	"splitdiff/internal/theme"
)

// editorType tags widget ids in the registry; instances are
// "diffEditor:<n>".
const editorType = "diffEditor"

// highlightStyle is the chroma style used for context-line syntax colors.
const highlightStyle = "monokai"

// Services are the injected collaborators. Nil Registry or Themes get a
// private instance; a nil Reporter logs through slog. Contributions nil
// means "use the process-wide descriptor set"; an explicit empty slice
// means none.
type Services struct {
	Registry      *registry.Service
	Themes        *theme.Service
	Reporter      func(error)
	Contributions []ContributionDescriptor
}

// ViewState is the widget's restorable snapshot: one opaque blob per
// pane.
type ViewState struct {
	Original pane.ViewState `json:"original"`
	Modified pane.ViewState `json:"modified"`
}

type disposeListener struct {
	fn      func()
	removed bool
}

// Widget is the dual-pane diff editor. The modified pane is the primary
// surface: the widget's delegation methods forward to it, and the
// original pane follows its scroll position.
type Widget struct {
	id       string
	services Services
	reporter func(error)

	opts       config.Resolved
	splitRatio float64

	holder   *diffmodel.Holder
	original *pane.Pane
	modified *pane.Pane

	geometry    Geometry
	lastWidth   int
	lastHeight  int
	theme       theme.Theme
	highlighter *render.Highlighter

	contributions    []Contribution
	unsubModel       func()
	unsubTheme       func()
	disposeListeners []*disposeListener

	constructed bool
	visible     bool
	disposed    bool
}

// New builds a widget from partial options. Construction order is fixed:
// normalize options, build panes, subscribe to model and theme changes,
// instantiate contributions, then announce the widget to the registry.
func New(services Services, partial config.Options) *Widget {
	if services.Registry == nil {
		services.Registry = registry.NewService()
	}
	if services.Themes == nil {
		services.Themes = theme.NewService(theme.Default())
	}
	reporter := services.Reporter
	if reporter == nil {
		reporter = func(err error) {
			slog.Error("diff widget error", "err", err)
		}
	}

	opts := config.Normalize(partial, config.Defaults())

	w := &Widget{
		id:         registry.FormatID(editorType, services.Registry.NextInstanceID()),
		services:   services,
		reporter:   reporter,
		opts:       opts,
		splitRatio: opts.SplitViewDefaultRatio,
		holder:     diffmodel.NewHolder(),
		theme:      services.Themes.Current(),
		visible:    true,
	}

	wrap := opts.DiffWordWrap == config.WordWrapOn
	w.original = pane.New(pane.Options{ReadOnly: !opts.OriginalEditable, WordWrap: wrap})
	w.modified = pane.New(pane.Options{WordWrap: wrap})

	w.unsubModel = w.holder.Subscribe(w.onModelReplaced)
	w.unsubTheme = services.Themes.OnChange(func(t theme.Theme) {
		w.theme = t
		w.refreshContent()
	})

	// The delegation surface is live from here; contributions may use it.
	w.constructed = true

	descs := services.Contributions
	if descs == nil {
		descs = RegisteredContributions()
	}
	w.instantiateContributions(descs)

	services.Registry.Register(w)
	return w
}

// ID returns the registry identifier, "diffEditor:<n>".
func (w *Widget) ID() string { return w.id }

// Original returns the left (original) pane.
func (w *Widget) Original() *pane.Pane { return w.original }

// Modified returns the right (modified) pane, the delegation target.
func (w *Widget) Modified() *pane.Pane { return w.modified }

// Model returns the held diff model, which may be nil.
func (w *Widget) Model() *diffmodel.Model { return w.holder.Get() }

// SetModel replaces the held model. The replacement always notifies,
// including setting nil or re-setting the same model.
func (w *Widget) SetModel(m *diffmodel.Model) { w.holder.Set(m) }

// OnModelChange subscribes to model replacements alongside the widget's
// own refresh; the returned function unsubscribes.
func (w *Widget) OnModelChange(fn func(*diffmodel.Model)) func() {
	return w.holder.Subscribe(fn)
}

// LineChanges returns the held model's changed regions; nil model means
// nil changes.
func (w *Widget) LineChanges() []diffmodel.LineChange {
	return w.holder.Get().LineChanges()
}

func (w *Widget) onModelReplaced(m *diffmodel.Model) {
	w.highlighter = nil
	if m != nil {
		w.highlighter = render.NewHighlighter(m.Path, highlightStyle)
	}
	w.refreshContent()
}

// Layout applies a container size: geometry for both panes and the ruler
// is computed once and applied atomically, then content re-renders.
func (w *Widget) Layout(width, height int) {
	if w.disposed {
		return
	}
	w.lastWidth, w.lastHeight = width, height
	w.geometry = computeGeometry(
		width, height,
		w.opts.RenderSideBySide,
		w.opts.EnableSplitViewResizing,
		w.splitRatio,
		w.opts.SplitViewDefaultRatio,
		w.opts.RenderOverviewRuler,
	)

	w.original.SetSize(max1(w.geometry.OriginalWidth), w.geometry.ContentHeight)
	w.modified.SetSize(max1(w.geometry.ModifiedWidth), w.geometry.ContentHeight)
	w.refreshContent()
}

// Geometry returns the last computed split.
func (w *Widget) Geometry() Geometry { return w.geometry }

// SetSplitRatio moves the pane boundary. The ratio clamps into
// [0.1, 0.9]; while split-view resizing is disabled this is a no-op.
func (w *Widget) SetSplitRatio(r float64) {
	if w.disposed || !w.opts.EnableSplitViewResizing {
		return
	}
	if r < 0.1 {
		r = 0.1
	}
	if r > 0.9 {
		r = 0.9
	}
	w.splitRatio = r
	if w.lastWidth > 0 {
		w.Layout(w.lastWidth, w.lastHeight)
	}
}

// SplitRatio returns the current boundary ratio.
func (w *Widget) SplitRatio() float64 { return w.splitRatio }

// UpdateOptions re-normalizes a partial option set against the current
// resolved record and re-applies it. Layout-affecting changes re-run the
// layout; everything else just re-renders.
func (w *Widget) UpdateOptions(partial config.Options) {
	if w.disposed {
		return
	}
	prev := w.opts
	next := config.Normalize(partial, prev)
	w.opts = next

	w.original.SetReadOnly(!next.OriginalEditable)
	if !next.EnableSplitViewResizing {
		w.splitRatio = next.SplitViewDefaultRatio
	}

	relayout := prev.RenderSideBySide != next.RenderSideBySide ||
		prev.EnableSplitViewResizing != next.EnableSplitViewResizing ||
		prev.RenderOverviewRuler != next.RenderOverviewRuler ||
		prev.SplitViewDefaultRatio != next.SplitViewDefaultRatio
	if relayout && w.lastWidth > 0 {
		w.Layout(w.lastWidth, w.lastHeight)
		return
	}
	w.refreshContent()
}

// Options returns the current resolved record.
func (w *Widget) Options() config.Resolved { return w.opts }

// refreshContent re-renders the held model into both panes and keeps the
// original pane's scroll locked to the modified pane's.
func (w *Widget) refreshContent() {
	if w.disposed {
		return
	}

	m := w.holder.Get()
	if m == nil {
		w.original.SetContent(nil)
		w.modified.SetContent(nil)
		return
	}

	ctx := render.Context{
		Theme:            w.theme,
		RenderIndicators: w.opts.RenderIndicators,
		Highlighter:      w.highlighter,
		Gutter:           w.gutterGlyph,
	}

	if w.opts.RenderSideBySide {
		orig, mod := render.SideBySide(m, w.geometry.OriginalWidth, w.geometry.ModifiedWidth, ctx)
		w.original.SetContent(orig)
		w.modified.SetContent(mod)
	} else {
		w.original.SetContent(nil)
		w.modified.SetContent(render.Inline(m, w.geometry.ModifiedWidth, ctx))
	}

	w.original.SetScrollTop(w.modified.ScrollTop())
}

// gutterGlyph surfaces pane decorations in the rendered gutter column.
func (w *Widget) gutterGlyph(side diffmodel.Side, line int) string {
	p := w.modified
	if side == diffmodel.SideOriginal {
		p = w.original
	}
	decs := p.LineDecorations(line)
	if len(decs) == 0 {
		return ""
	}
	return decs[0].Glyph
}

// View composes the original pane, the overview ruler and the modified
// pane into one block.
func (w *Widget) View() string {
	if w.disposed || !w.visible {
		return ""
	}

	var parts []string
	if w.opts.RenderSideBySide && w.geometry.OriginalWidth > 0 {
		parts = append(parts, w.original.View())
	}
	parts = append(parts, w.modified.View())
	if w.geometry.RulerWidth > 0 {
		lines := renderRuler(
			w.LineChanges(),
			w.holder.Get().LineCount(),
			w.geometry.ContentHeight,
			w.modified.ScrollTop(),
			w.modified.Height(),
			w.theme,
		)
		parts = append(parts, joinColumns(lines, w.geometry.ContentHeight, "  "))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// RulerHit handles a pointer press at ruler row y: the proportional
// document position is revealed centered in the modified pane. Returns
// false when the ruler is hidden or there is nothing to scroll.
func (w *Widget) RulerHit(y int) bool {
	if w.disposed || w.geometry.RulerWidth == 0 {
		return false
	}
	m := w.holder.Get()
	if m == nil || m.LineCount() == 0 {
		return false
	}

	target := rulerTargetLine(y, w.geometry.ContentHeight, m.LineCount())
	w.modified.RevealLine(target, pane.RevealCenter, false)
	w.syncScroll()
	return true
}

// RulerWheel forwards a wheel delta over the ruler to the modified pane.
// A true result means the gesture was consumed and must not fall through.
func (w *Widget) RulerWheel(delta int) bool {
	if w.disposed || w.geometry.RulerWidth == 0 {
		return false
	}
	w.modified.ScrollBy(delta)
	w.syncScroll()
	return true
}

// Scroll applies a wheel delta over either pane; both stay aligned.
func (w *Widget) Scroll(delta int) {
	w.ensureReady()
	w.modified.ScrollBy(delta)
	w.syncScroll()
}

func (w *Widget) syncScroll() {
	w.original.SetScrollTop(w.modified.ScrollTop())
}

// SaveViewState captures both panes' restorable state.
func (w *Widget) SaveViewState() ViewState {
	w.ensureReady()
	return ViewState{
		Original: w.original.SaveViewState(),
		Modified: w.modified.SaveViewState(),
	}
}

// RestoreViewState re-applies a snapshot, clamping against current
// content.
func (w *Widget) RestoreViewState(s ViewState) {
	w.ensureReady()
	w.original.RestoreViewState(s.Original)
	w.modified.RestoreViewState(s.Modified)
}

func (w *Widget) SetVisible(v bool) { w.visible = v }
func (w *Widget) IsVisible() bool   { return w.visible }

// OnDispose registers fn to run when the widget is disposed and returns
// its removal function.
func (w *Widget) OnDispose(fn func()) func() {
	l := &disposeListener{fn: fn}
	w.disposeListeners = append(w.disposeListeners, l)
	return func() { l.removed = true }
}

// Dispose releases everything exactly once, in reverse construction
// order: registry entry, contributions, subscriptions, panes, then the
// dispose listeners fire.
func (w *Widget) Dispose() {
	if w.disposed {
		return
	}
	w.disposed = true

	w.services.Registry.Unregister(w.id)
	for _, c := range w.contributions {
		c.Dispose()
	}
	w.contributions = nil

	w.unsubTheme()
	w.unsubModel()

	w.original.Dispose()
	w.modified.Dispose()

	snapshot := make([]*disposeListener, len(w.disposeListeners))
	copy(snapshot, w.disposeListeners)
	w.disposeListeners = nil
	for _, l := range snapshot {
		if !l.removed {
			l.fn()
		}
	}
}

// Disposed reports whether Dispose has run.
func (w *Widget) Disposed() bool { return w.disposed }

// Contributions returns the live contribution instances, in construction
// order.
func (w *Widget) Contributions() []Contribution {
	out := make([]Contribution, len(w.contributions))
	copy(out, w.contributions)
	return out
}

// ensureReady guards the delegation surface. Using it before New has
// finished wiring the panes is a programming error.
func (w *Widget) ensureReady() {
	if !w.constructed {
		panic("widget: delegation surface used before construction completed")
	}
}

// Delegation surface. Every call forwards to the modified pane; errors
// propagate unchanged.

func (w *Widget) Position() pane.Position {
	w.ensureReady()
	return w.modified.Position()
}

func (w *Widget) SetPosition(pos pane.Position) {
	w.ensureReady()
	w.modified.SetPosition(pos)
}

func (w *Widget) Selection() pane.Range {
	w.ensureReady()
	return w.modified.Selection()
}

func (w *Widget) Selections() []pane.Range {
	w.ensureReady()
	return w.modified.Selections()
}

func (w *Widget) SetSelection(r pane.Range) {
	w.ensureReady()
	w.modified.SetSelection(r)
}

func (w *Widget) SetSelections(rs []pane.Range) {
	w.ensureReady()
	w.modified.SetSelections(rs)
}

func (w *Widget) RevealLine(line int) {
	w.revealLine(line, pane.RevealTop)
}

func (w *Widget) RevealLineInCenter(line int) {
	w.revealLine(line, pane.RevealCenter)
}

func (w *Widget) RevealLineInCenterIfOutsideViewport(line int) {
	w.revealLine(line, pane.RevealCenterIfOutsideViewport)
}

func (w *Widget) RevealLineNearTop(line int) {
	w.revealLine(line, pane.RevealNearTop)
}

func (w *Widget) revealLine(line int, mode pane.RevealMode) {
	w.ensureReady()
	w.modified.RevealLine(line, mode, false)
	w.syncScroll()
}

func (w *Widget) RevealPosition(pos pane.Position) {
	w.revealPosition(pos, pane.RevealTop)
}

func (w *Widget) RevealPositionInCenter(pos pane.Position) {
	w.revealPosition(pos, pane.RevealCenter)
}

func (w *Widget) RevealPositionInCenterIfOutsideViewport(pos pane.Position) {
	w.revealPosition(pos, pane.RevealCenterIfOutsideViewport)
}

func (w *Widget) revealPosition(pos pane.Position, mode pane.RevealMode) {
	w.ensureReady()
	w.modified.RevealPosition(pos, mode, false)
	w.syncScroll()
}

func (w *Widget) RevealRange(r pane.Range) {
	w.revealRange(r, pane.RevealTop)
}

func (w *Widget) RevealRangeInCenter(r pane.Range) {
	w.revealRange(r, pane.RevealCenter)
}

func (w *Widget) RevealRangeInCenterIfOutsideViewport(r pane.Range) {
	w.revealRange(r, pane.RevealCenterIfOutsideViewport)
}

func (w *Widget) revealRange(r pane.Range, mode pane.RevealMode) {
	w.ensureReady()
	w.modified.RevealRange(r, mode, false)
	w.syncScroll()
}

// Trigger runs a named command on the modified pane.
func (w *Widget) Trigger(source, command string, payload any) error {
	w.ensureReady()
	return w.modified.Trigger(source, command, payload)
}

// Actions enumerates the modified pane's registered command ids.
func (w *Widget) Actions() []string {
	w.ensureReady()
	return w.modified.Actions()
}

// NewDecorationsCollection creates a decoration collection on the
// modified pane.
func (w *Widget) NewDecorationsCollection(items ...pane.Decoration) *pane.DecorationsCollection {
	w.ensureReady()
	return w.modified.NewDecorationsCollection(items...)
}

func (w *Widget) Focus() {
	w.ensureReady()
	w.modified.Focus()
}

func (w *Widget) HasTextFocus() bool {
	w.ensureReady()
	return w.original.HasTextFocus() || w.modified.HasTextFocus()
}

func max1(v int) int {
	if v < 1 {
		return 1
	}
	return v
}
