package diffmodel

// Side identifies one of the two documents in a diff.
type Side int

const (
	SideOriginal Side = iota
	SideModified
)

type RowKind int

const (
	RowContext RowKind = iota
	RowDelete
	RowAdd
	RowChange
	RowHunkHeader
	RowFileHeader
)

// Row is one aligned line pair of a computed diff. OldLine/NewLine are nil
// on the side that has no counterpart for this row.
type Row struct {
	Kind    RowKind
	OldLine *int
	NewLine *int
	OldText string
	NewText string
	Path    string
	HunkID  int
}

// LineChange is a contiguous changed region expressed in both coordinate
// spaces. A pure insertion has OrigStart > OrigEnd; a pure deletion has
// ModStart > ModEnd.
type LineChange struct {
	OrigStart int
	OrigEnd   int
	ModStart  int
	ModEnd    int
}

// Model is the diff computation result the widget holds but does not own.
// It is produced by an external collaborator (here: a unified-diff parser)
// and replaced wholesale, never mutated in place.
type Model struct {
	Path string
	Rows []Row
}

// LineChanges derives the changed regions from the rows. Consecutive
// non-context rows inside one hunk collapse into a single change.
func (m *Model) LineChanges() []LineChange {
	if m == nil {
		return nil
	}

	var changes []LineChange
	var cur *LineChange
	lastOrig, lastMod := 0, 0

	flush := func() {
		if cur != nil {
			changes = append(changes, *cur)
			cur = nil
		}
	}

	for _, row := range m.Rows {
		if row.OldLine != nil {
			lastOrig = *row.OldLine
		}
		if row.NewLine != nil {
			lastMod = *row.NewLine
		}

		switch row.Kind {
		case RowContext, RowHunkHeader, RowFileHeader:
			flush()
			continue
		}

		if cur == nil {
			cur = &LineChange{
				OrigStart: lastOrig + 1,
				OrigEnd:   lastOrig,
				ModStart:  lastMod + 1,
				ModEnd:    lastMod,
			}
			if row.OldLine != nil {
				cur.OrigStart = *row.OldLine
			}
			if row.NewLine != nil {
				cur.ModStart = *row.NewLine
			}
		}
		if row.OldLine != nil {
			cur.OrigEnd = *row.OldLine
		}
		if row.NewLine != nil {
			cur.ModEnd = *row.NewLine
		}
	}
	flush()
	return changes
}

// LineCount reports how many rows the model renders to; both panes share
// this row space so their viewports stay aligned.
func (m *Model) LineCount() int {
	if m == nil {
		return 0
	}
	return len(m.Rows)
}
