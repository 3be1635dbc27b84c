package widget

import (
	"strings"

	"splitdiff/internal/diffmodel"
	"splitdiff/internal/theme"
)

// Ruler glyphs. The strip is two cells wide: change marks in the first
// column, the visible-window indicator in the second.
const (
	rulerTrackGlyph  = "·"
	rulerMarkGlyph   = "▐"
	rulerWindowGlyph = "█"
)

// renderRuler draws the overview strip: one terminal row per output
// line, each summarizing a slice of the modified document. totalLines
// is the document height, scrollTop/viewHeight describe the modified
// pane's viewport.
func renderRuler(changes []diffmodel.LineChange, totalLines, height, scrollTop, viewHeight int, th theme.Theme) []string {
	if height < 1 {
		return nil
	}

	out := make([]string, height)
	for y := 0; y < height; y++ {
		mark := th.RulerTrack.Render(rulerTrackGlyph)
		window := " "

		if totalLines > 0 {
			// 1-based document lines covered by this ruler row.
			lo := y*totalLines/height + 1
			hi := (y + 1) * totalLines / height
			if hi < lo {
				hi = lo
			}

			if anyChangeIntersects(changes, lo, hi) {
				mark = th.RulerMark.Render(rulerMarkGlyph)
			}
			if intersects(lo, hi, scrollTop+1, scrollTop+viewHeight) {
				window = th.RulerWindow.Render(rulerWindowGlyph)
			}
		}

		out[y] = mark + window
	}
	return out
}

// anyChangeIntersects reports whether any changed region of the modified
// side touches the 1-based line range [lo, hi].
func anyChangeIntersects(changes []diffmodel.LineChange, lo, hi int) bool {
	for _, c := range changes {
		if c.ModStart > c.ModEnd {
			// Pure deletion: show it at the insertion point.
			if c.ModEnd+1 >= lo && c.ModEnd+1 <= hi {
				return true
			}
			continue
		}
		if intersects(c.ModStart, c.ModEnd, lo, hi) {
			return true
		}
	}
	return false
}

func intersects(aLo, aHi, bLo, bHi int) bool {
	return aLo <= bHi && bLo <= aHi
}

// rulerTargetLine maps a press at ruler row y to the 1-based document
// line at the proportional position. Presses carry no state, so a drag
// is just a sequence of presses.
func rulerTargetLine(y, height, totalLines int) int {
	if totalLines < 1 {
		return 1
	}
	if height < 1 {
		height = 1
	}
	if y < 0 {
		y = 0
	}
	if y >= height {
		y = height - 1
	}

	line := int((float64(y)+0.5)/float64(height)*float64(totalLines)) + 1
	if line < 1 {
		line = 1
	}
	if line > totalLines {
		line = totalLines
	}
	return line
}

// joinColumns stacks per-row strings into one multi-line block, padding
// short inputs with blanks so every block has exactly height rows.
func joinColumns(lines []string, height int, blank string) string {
	var sb strings.Builder
	for i := 0; i < height; i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		if i < len(lines) {
			sb.WriteString(lines[i])
		} else {
			sb.WriteString(blank)
		}
	}
	return sb.String()
}
