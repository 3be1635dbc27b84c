package theme

import "github.com/charmbracelet/lipgloss"

// Theme is a fully-determined set of styles for the diff widget. Values
// are resolved once and shared read-only; swapping themes goes through a
// Service so every widget re-styles on the same event.
type Theme struct {
	Name string

	PaneBorder        lipgloss.Style
	PaneBorderFocused lipgloss.Style
	PaneTitle         lipgloss.Style

	RowContext    lipgloss.Style
	RowAdd        lipgloss.Style
	RowDelete     lipgloss.Style
	RowChange     lipgloss.Style
	RowHunkHeader lipgloss.Style
	LineNumber    lipgloss.Style
	Indicator     lipgloss.Style

	RulerTrack  lipgloss.Style
	RulerMark   lipgloss.Style
	RulerWindow lipgloss.Style
}

// Default returns the stock dark theme.
func Default() Theme {
	border := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Theme{
		Name:              "default",
		PaneBorder:        border,
		PaneBorderFocused: lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
		PaneTitle:         lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		RowContext:        lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		RowAdd:            lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		RowDelete:         lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		RowChange:         lipgloss.NewStyle().Foreground(lipgloss.Color("179")),
		RowHunkHeader:     lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
		LineNumber:        lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
		Indicator:         lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		RulerTrack:        lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		RulerMark:         lipgloss.NewStyle().Foreground(lipgloss.Color("179")),
		RulerWindow:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	}
}

// Light returns a variant for light terminals.
func Light() Theme {
	t := Default()
	t.Name = "light"
	t.RowContext = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	t.RowAdd = lipgloss.NewStyle().Foreground(lipgloss.Color("28"))
	t.RowDelete = lipgloss.NewStyle().Foreground(lipgloss.Color("124"))
	t.RowChange = lipgloss.NewStyle().Foreground(lipgloss.Color("94"))
	t.LineNumber = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	return t
}

// Resolve maps a theme name to a Theme, defaulting on unknown names.
func Resolve(name string) Theme {
	switch name {
	case "light":
		return Light()
	default:
		return Default()
	}
}

// Service hands out the current theme and notifies subscribers when it is
// replaced. Delivery is synchronous and in subscription order.
type Service struct {
	current   Theme
	listeners []*listener
}

type listener struct {
	fn      func(Theme)
	removed bool
}

func NewService(initial Theme) *Service {
	return &Service{current: initial}
}

func (s *Service) Current() Theme {
	return s.current
}

// SetTheme replaces the current theme and fires the change event before
// returning.
func (s *Service) SetTheme(t Theme) {
	s.current = t
	snapshot := make([]*listener, len(s.listeners))
	copy(snapshot, s.listeners)
	for _, l := range snapshot {
		if l.removed {
			continue
		}
		l.fn(t)
	}
}

// OnChange registers fn for theme replacements and returns the
// unsubscribe function.
func (s *Service) OnChange(fn func(Theme)) func() {
	l := &listener{fn: fn}
	s.listeners = append(s.listeners, l)
	return func() {
		if l.removed {
			return
		}
		l.removed = true
		for i, cand := range s.listeners {
			if cand == l {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				break
			}
		}
	}
}
