// Package marks persists per-file line annotations and exposes them to
// the diff widget as a contribution: marked lines get a gutter glyph and
// a toggle command.
package marks

import (
	"fmt"
	"time"
)

// Mark anchors a note to one line of the modified side of a file.
type Mark struct {
	Path      string    `json:"path"`
	Line      int       `json:"line"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Key identifies a mark's anchor; one mark per anchor.
func Key(path string, line int) string {
	return fmt.Sprintf("%s:%d", path, line)
}
