package marks

import (
	"errors"
	"fmt"
	"time"

	"splitdiff/internal/diffmodel"
	"splitdiff/internal/pane"
	"splitdiff/internal/widget"
)

const (
	// ContributionID names this extension in the widget's host.
	ContributionID = "lineMarks"
	// ToggleCommand flips a mark on the modified pane's caret line. An
	// int payload overrides the line.
	ToggleCommand = "marks.toggle"

	markGlyph = "●"
)

// Contribution surfaces stored marks as gutter decorations on the
// modified pane and installs the toggle command.
type Contribution struct {
	store  Store
	widget *widget.Widget
	decs   *pane.DecorationsCollection
	unsub  func()
	marks  []Mark

	disposed bool
}

// Descriptor returns the registrable descriptor for a store.
func Descriptor(store Store) widget.ContributionDescriptor {
	return widget.ContributionDescriptor{
		ID: ContributionID,
		Ctor: func(w *widget.Widget) (widget.Contribution, error) {
			loaded, err := store.Load()
			if err != nil {
				return nil, fmt.Errorf("load marks: %w", err)
			}

			c := &Contribution{store: store, widget: w, marks: loaded}
			c.decs = w.NewDecorationsCollection()
			c.unsub = w.OnModelChange(c.apply)
			c.apply(w.Model())
			w.Modified().RegisterCommand(ToggleCommand, c.toggle)
			return c, nil
		},
	}
}

func (c *Contribution) ID() string { return ContributionID }

// Marks returns the current marks, all files included.
func (c *Contribution) Marks() []Mark {
	out := make([]Mark, len(c.marks))
	copy(out, c.marks)
	return out
}

func (c *Contribution) toggle(p *pane.Pane, payload any) error {
	m := c.widget.Model()
	if m == nil {
		return errors.New("marks: no file to mark")
	}

	line := p.Position().Line
	if n, ok := payload.(int); ok {
		line = n
	}

	key := Key(m.Path, line)
	for i, mk := range c.marks {
		if Key(mk.Path, mk.Line) == key {
			c.marks = append(c.marks[:i], c.marks[i+1:]...)
			c.apply(m)
			return c.store.Save(c.marks)
		}
	}

	c.marks = append(c.marks, Mark{Path: m.Path, Line: line, CreatedAt: time.Now()})
	c.apply(m)
	return c.store.Save(c.marks)
}

// apply projects the marks for the current file into the decoration
// collection.
func (c *Contribution) apply(m *diffmodel.Model) {
	if m == nil {
		c.decs.Clear()
		return
	}

	var items []pane.Decoration
	for _, mk := range c.marks {
		if mk.Path == m.Path {
			items = append(items, pane.Decoration{Line: mk.Line, Glyph: markGlyph, Class: "mark"})
		}
	}
	c.decs.Set(items)
}

func (c *Contribution) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	c.unsub()
	c.decs.Clear()
}
