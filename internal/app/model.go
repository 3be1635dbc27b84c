// Package app is the demo TUI around the diff widget: a changed-file
// list on the left, the dual-pane widget on the right, and a file
// watcher that live-replaces the diff model when the worktree changes.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fsnotify/fsnotify"

	"splitdiff/internal/clipboard"
	"splitdiff/internal/config"
	"splitdiff/internal/diffmodel"
	gitint "splitdiff/internal/git"
	"splitdiff/internal/marks"
	"splitdiff/internal/pane"
	"splitdiff/internal/registry"
	"splitdiff/internal/theme"
	"splitdiff/internal/widget"
)

type focusArea int

const (
	focusFiles focusArea = iota
	focusDiff
)

const filePaneWidth = 36

// copyLineCommand copies the modified side of the caret line.
const copyLineCommand = "copy.line"

type filesLoadedMsg struct {
	paths []string
	err   error
}

type diffLoadedMsg struct {
	path  string
	model *diffmodel.Model
	err   error
}

type fsEventMsg struct{}

type copyResultMsg struct{ err error }

// Model is the Bubble Tea state container for the app.
type Model struct {
	keys  KeyMap
	focus focusArea

	cwd     string
	src     gitint.Source
	watcher *fsnotify.Watcher

	themes *theme.Service
	widget *widget.Widget

	width  int
	height int
	ready  bool

	files      []string
	cursor     int
	scroll     int
	selected   string
	helpOpen   bool
	statusLine string

	loadingFiles bool
	loadingDiff  bool
	err          error
}

// NewModel wires the widget and its collaborators for a worktree.
func NewModel(cwd string, opts config.Options) (Model, error) {
	root, err := gitint.DiscoverRepoRoot(context.Background(), cwd)
	if err != nil {
		return Model{}, fmt.Errorf("not inside a git repository: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return Model{}, fmt.Errorf("start file watcher: %w", err)
	}
	if err := watcher.Add(root); err != nil {
		slog.Warn("cannot watch worktree root", "path", root, "err", err)
	}

	themes := theme.NewService(theme.Default())
	w := widget.New(widget.Services{
		Registry: registry.NewService(),
		Themes:   themes,
		Reporter: func(err error) {
			slog.Error("diff widget error", "err", err)
		},
		Contributions: []widget.ContributionDescriptor{
			marks.Descriptor(marks.NewStore(root)),
		},
	}, opts)

	m := Model{
		keys:    defaultKeyMap(),
		focus:   focusFiles,
		cwd:     root,
		src:     gitint.NewSource(),
		watcher: watcher,
		themes:  themes,
		widget:  w,
	}
	m.registerCopyCommand()
	return m, nil
}

// registerCopyCommand installs the clipboard command on the widget's
// modified pane.
func (m Model) registerCopyCommand() {
	w := m.widget
	w.Modified().RegisterCommand(copyLineCommand, func(p *pane.Pane, payload any) error {
		dm := w.Model()
		if dm == nil {
			return errors.New("no diff loaded")
		}

		line := p.Position().Line
		if n, ok := payload.(int); ok {
			line = n
		}
		for _, row := range dm.Rows {
			if row.NewLine != nil && *row.NewLine == line {
				return clipboard.CopyText(context.Background(), row.NewText)
			}
		}
		return fmt.Errorf("no modified line %d", line)
	})
}

// Close releases the widget and the watcher. Safe to call more than
// once.
func (m *Model) Close() {
	m.widget.Dispose()
	if m.watcher != nil {
		m.watcher.Close()
		m.watcher = nil
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadFilesCmd(), m.waitForFsEventCmd())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.widget.Layout(m.diffAreaWidth(), m.contentHeight())
		return m, nil

	case filesLoadedMsg:
		m.loadingFiles = false
		m.err = msg.err
		m.files = msg.paths
		if m.cursor >= len(m.files) {
			m.cursor = len(m.files) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		// Keep the open diff fresh across refreshes.
		if m.selected != "" {
			m.loadingDiff = true
			return m, m.loadDiffCmd(m.selected)
		}
		return m, nil

	case diffLoadedMsg:
		m.loadingDiff = false
		if msg.err != nil {
			m.err = msg.err
			m.widget.SetModel(nil)
			return m, nil
		}
		m.err = nil
		m.selected = msg.path
		m.widget.SetModel(msg.model)
		return m, nil

	case fsEventMsg:
		m.loadingFiles = true
		return m, tea.Batch(m.loadFilesCmd(), m.waitForFsEventCmd())

	case copyResultMsg:
		if msg.err != nil {
			m.statusLine = fmt.Sprintf("copy failed: %v", msg.err)
		} else {
			m.statusLine = "Copied line to clipboard."
		}
		return m, nil

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Close()
		return m, tea.Quit

	case key.Matches(msg, m.keys.ToggleFocus):
		if m.focus == focusFiles {
			m.focus = focusDiff
			m.widget.Focus()
		} else {
			m.focus = focusFiles
			m.widget.Modified().Blur()
		}
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.helpOpen = !m.helpOpen
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		m.loadingFiles = true
		return m, m.loadFilesCmd()

	case key.Matches(msg, m.keys.ToggleMode):
		sbs := !m.widget.Options().RenderSideBySide
		m.widget.UpdateOptions(config.Options{RenderSideBySide: &sbs})
		return m, nil

	case key.Matches(msg, m.keys.ToggleTheme):
		next := theme.Light()
		if m.themes.Current().Name == "light" {
			next = theme.Default()
		}
		m.themes.SetTheme(next)
		return m, nil

	case key.Matches(msg, m.keys.SplitNarrow):
		m.widget.SetSplitRatio(m.widget.SplitRatio() - 0.05)
		return m, nil

	case key.Matches(msg, m.keys.SplitWiden):
		m.widget.SetSplitRatio(m.widget.SplitRatio() + 0.05)
		return m, nil
	}

	if m.focus == focusFiles {
		return m.updateFilesKeys(msg)
	}
	return m.updateDiffKeys(msg)
}

func (m Model) updateFilesKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if len(m.files) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		m.ensureCursorVisible()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.files)-1 {
			m.cursor++
		}
		m.ensureCursorVisible()
		return m, nil

	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
		m.ensureCursorVisible()
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		m.cursor = len(m.files) - 1
		m.ensureCursorVisible()
		return m, nil

	case key.Matches(msg, m.keys.Open):
		m.loadingDiff = true
		m.focus = focusDiff
		m.widget.Focus()
		return m, m.loadDiffCmd(m.files[m.cursor])
	}

	return m, nil
}

func (m Model) updateDiffKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.widget.Scroll(-1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.widget.Scroll(1)
		return m, nil

	case key.Matches(msg, m.keys.Top):
		m.widget.RevealLine(1)
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		if dm := m.widget.Model(); dm != nil {
			m.widget.RevealLine(dm.LineCount())
		}
		return m, nil

	case key.Matches(msg, m.keys.Mark):
		line := m.widget.Modified().ScrollTop() + 1
		if err := m.widget.Trigger("app", marks.ToggleCommand, line); err != nil {
			m.statusLine = fmt.Sprintf("mark failed: %v", err)
		}
		return m, nil

	case key.Matches(msg, m.keys.CopyLine):
		line := m.widget.Modified().ScrollTop() + 1
		return m, m.copyLineCmd(line)
	}

	return m, nil
}

func (m Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	overRuler := m.overRuler(msg.X)

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if overRuler && m.widget.RulerWheel(-3) {
			return m, nil
		}
		m.widget.Scroll(-3)
		return m, nil

	case tea.MouseButtonWheelDown:
		if overRuler && m.widget.RulerWheel(3) {
			return m, nil
		}
		m.widget.Scroll(3)
		return m, nil

	case tea.MouseButtonLeft:
		// Press and motion-while-pressed both land here, so dragging the
		// ruler reads as repeated presses.
		if overRuler {
			m.widget.RulerHit(msg.Y)
		}
		return m, nil
	}

	return m, nil
}

// overRuler reports whether column x falls on the widget's ruler strip,
// which occupies the last columns of the window.
func (m Model) overRuler(x int) bool {
	g := m.widget.Geometry()
	if g.RulerWidth == 0 {
		return false
	}
	start := filePaneWidth + 2 + g.ContainerWidth - g.RulerWidth
	return x >= start && x < start+g.RulerWidth
}

func (m Model) diffAreaWidth() int {
	w := m.width - filePaneWidth - 2
	if w < 1 {
		w = 1
	}
	return w
}

func (m Model) contentHeight() int {
	h := m.height - 2
	if h < 1 {
		h = 1
	}
	return h
}

func (m *Model) ensureCursorVisible() {
	page := m.contentHeight() - 2
	if page < 1 {
		page = 1
	}
	if m.cursor < m.scroll {
		m.scroll = m.cursor
	}
	if m.cursor >= m.scroll+page {
		m.scroll = m.cursor - page + 1
	}
	if m.scroll < 0 {
		m.scroll = 0
	}
}

func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	files := m.renderFilesPane()
	body := lipgloss.JoinHorizontal(lipgloss.Top, files, m.widget.View())
	footer := lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Render(m.helpText())
	return lipgloss.JoinVertical(lipgloss.Left, body, footer)
}

func (m Model) helpText() string {
	if m.statusLine != "" {
		return m.statusLine
	}
	if !m.helpOpen {
		return "tab focus | j/k move | enter open | t inline | T theme | [/] split | m mark | y copy | r refresh | ? help | q quit"
	}
	return strings.Join([]string{
		"Files: j/k move, g/G top/bottom, enter open diff, r refresh",
		"Diff: j/k scroll, g/G top/bottom, t inline toggle, [/] split ratio, m toggle mark, y copy line",
		"Mouse: wheel scrolls, wheel/click on the right strip drives the overview ruler",
	}, "\n")
}

func (m Model) renderFilesPane() string {
	borderColor := lipgloss.Color("245")
	if m.focus == focusFiles {
		borderColor = lipgloss.Color("39")
	}
	paneStyle := lipgloss.NewStyle().
		Width(filePaneWidth).
		Height(m.contentHeight()).
		Border(lipgloss.NormalBorder()).
		BorderForeground(borderColor)

	title := fmt.Sprintf("Files (%d)", len(m.files))
	if m.loadingFiles {
		title += " (loading...)"
	}

	lines := []string{title, ""}
	if len(m.files) == 0 {
		lines = append(lines, "No changed files")
	}

	page := m.contentHeight() - 2
	if page < 1 {
		page = 1
	}
	end := m.scroll + page
	if end > len(m.files) {
		end = len(m.files)
	}
	for i := m.scroll; i < end; i++ {
		prefix := "  "
		if i == m.cursor {
			prefix = "> "
		}
		style := lipgloss.NewStyle().MaxWidth(filePaneWidth)
		if i == m.cursor {
			style = style.Foreground(lipgloss.Color("39")).Bold(true)
		}
		lines = append(lines, style.Render(prefix+m.files[i]))
	}

	if m.err != nil {
		lines = append(lines, "", fmt.Sprintf("error: %v", m.err))
	}
	return paneStyle.Render(strings.Join(lines, "\n"))
}

func (m Model) loadFilesCmd() tea.Cmd {
	cwd, src := m.cwd, m.src
	return func() tea.Msg {
		paths, err := src.ChangedPaths(context.Background(), cwd)
		return filesLoadedMsg{paths: paths, err: err}
	}
}

func (m Model) loadDiffCmd(path string) tea.Cmd {
	cwd, src := m.cwd, m.src
	return func() tea.Msg {
		raw, err := src.UnifiedDiff(context.Background(), cwd, path)
		if err != nil {
			return diffLoadedMsg{path: path, err: err}
		}
		models, err := diffmodel.Parse([]byte(raw))
		if err != nil {
			return diffLoadedMsg{path: path, err: err}
		}
		if len(models) == 0 {
			return diffLoadedMsg{path: path, model: nil}
		}
		return diffLoadedMsg{path: path, model: models[0]}
	}
}

func (m Model) copyLineCmd(line int) tea.Cmd {
	w := m.widget
	return func() tea.Msg {
		return copyResultMsg{err: w.Trigger("app", copyLineCommand, line)}
	}
}

// waitForFsEventCmd blocks on the next worktree event. Errors from the
// watcher are logged, not surfaced; the watcher keeps running.
func (m Model) waitForFsEventCmd() tea.Cmd {
	watcher := m.watcher
	if watcher == nil {
		return nil
	}
	return func() tea.Msg {
		for {
			select {
			case ev, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if strings.Contains(ev.Name, "/.git") || strings.Contains(ev.Name, "/.splitdiff") {
					continue
				}
				return fsEventMsg{}
			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				slog.Warn("file watcher error", "err", err)
			}
		}
	}
}
