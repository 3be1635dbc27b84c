package pane

// Decoration marks a single line with a gutter glyph and a style class.
type Decoration struct {
	Line  int
	Glyph string
	Class string
}

// DecorationsCollection is an owned, alterable set of decorations. The
// pane tracks every collection it hands out so rendering can merge them.
type DecorationsCollection struct {
	pane  *Pane
	items []Decoration
}

// NewDecorationsCollection creates a collection seeded with the given
// decorations.
func (p *Pane) NewDecorationsCollection(items ...Decoration) *DecorationsCollection {
	dc := &DecorationsCollection{pane: p, items: append([]Decoration(nil), items...)}
	p.decorations = append(p.decorations, dc)
	return dc
}

// Set replaces the collection's contents.
func (dc *DecorationsCollection) Set(items []Decoration) {
	dc.items = append(dc.items[:0], items...)
}

// Clear removes all decorations from the collection.
func (dc *DecorationsCollection) Clear() {
	dc.items = dc.items[:0]
}

// Items returns a copy of the current decorations.
func (dc *DecorationsCollection) Items() []Decoration {
	out := make([]Decoration, len(dc.items))
	copy(out, dc.items)
	return out
}

// LineDecorations merges all collections' decorations for one line.
func (p *Pane) LineDecorations(line int) []Decoration {
	var out []Decoration
	for _, dc := range p.decorations {
		for _, d := range dc.items {
			if d.Line == line {
				out = append(out, d)
			}
		}
	}
	return out
}
