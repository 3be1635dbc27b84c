package widget

// Geometry is the computed horizontal split of the widget's container.
// Invariant: OriginalWidth + ModifiedWidth + RulerWidth == ContainerWidth
// for every value this package produces.
type Geometry struct {
	ContainerWidth int
	ContentHeight  int
	OriginalWidth  int
	ModifiedWidth  int
	RulerWidth     int
}

const (
	// rulerWidth is the overview ruler strip width in cells when enabled.
	rulerWidth = 2
	// minPaneWidth is the narrowest a visible pane may get before the
	// split clamps instead of shrinking further.
	minPaneWidth = 10
)

// computeGeometry splits containerW between the two panes and the ruler.
// Inline mode hides the original pane entirely. When split-view resizing
// is disabled the ratio is pinned to defaultRatio.
func computeGeometry(containerW, containerH int, sideBySide, resizingEnabled bool, ratio, defaultRatio float64, showRuler bool) Geometry {
	if containerW < 1 {
		containerW = 1
	}
	if containerH < 1 {
		containerH = 1
	}

	g := Geometry{ContainerWidth: containerW, ContentHeight: containerH}
	if showRuler && containerW > rulerWidth {
		g.RulerWidth = rulerWidth
	}

	avail := containerW - g.RulerWidth
	if !sideBySide {
		g.ModifiedWidth = avail
		return g
	}

	if !resizingEnabled {
		ratio = defaultRatio
	}

	orig := int(float64(avail)*ratio + 0.5)
	switch {
	case avail < 2*minPaneWidth:
		// Too narrow for the clamp to hold on both sides; split evenly.
		orig = avail / 2
	case orig < minPaneWidth:
		orig = minPaneWidth
	case orig > avail-minPaneWidth:
		orig = avail - minPaneWidth
	}
	if orig < 0 {
		orig = 0
	}

	g.OriginalWidth = orig
	g.ModifiedWidth = avail - orig
	return g
}
