package diffmodel

import (
	"fmt"
	"strings"

	sgdiff "github.com/sourcegraph/go-diff/diff"
)

// Parse turns unified-diff text into one Model per changed file. Deleted
// and inserted runs inside a hunk are paired positionally into Change
// rows so both panes render the same number of rows.
func Parse(raw []byte) ([]*Model, error) {
	fileDiffs, err := sgdiff.ParseMultiFileDiff(raw)
	if err != nil {
		return nil, err
	}

	models := make([]*Model, 0, len(fileDiffs))
	for _, fd := range fileDiffs {
		m, err := parseFile(fd)
		if err != nil {
			return nil, err
		}
		models = append(models, m)
	}
	return models, nil
}

func parseFile(fd *sgdiff.FileDiff) (*Model, error) {
	path := displayPath(fd)
	m := &Model{Path: path}

	for hunkID, h := range fd.Hunks {
		m.Rows = append(m.Rows, Row{
			Kind:    RowHunkHeader,
			OldText: hunkHeader(h),
			Path:    path,
			HunkID:  hunkID,
		})

		oldLn := int(h.OrigStartLine)
		newLn := int(h.NewStartLine)
		lines := hunkLines(h.Body)
		for i := 0; i < len(lines); {
			line := lines[i]
			if line == "" {
				i++
				continue
			}
			switch line[0] {
			case ' ':
				m.Rows = append(m.Rows, Row{
					Kind:    RowContext,
					OldLine: lineRef(oldLn),
					NewLine: lineRef(newLn),
					OldText: line[1:],
					NewText: line[1:],
					Path:    path,
					HunkID:  hunkID,
				})
				oldLn++
				newLn++
				i++

			case '-', '+':
				var dels, adds []string
				for i < len(lines) && len(lines[i]) > 0 && lines[i][0] == '-' {
					dels = append(dels, lines[i][1:])
					i++
				}
				for i < len(lines) && len(lines[i]) > 0 && lines[i][0] == '+' {
					adds = append(adds, lines[i][1:])
					i++
				}
				m.Rows = append(m.Rows, pairRuns(path, hunkID, &oldLn, &newLn, dels, adds)...)

			case '\\':
				// "\ No newline at end of file" marker.
				i++

			default:
				return nil, fmt.Errorf("unexpected hunk line prefix %q", line)
			}
		}
	}
	return m, nil
}

// pairRuns aligns a deleted run against the inserted run that follows it,
// row by row. Leftover rows on either side become one-sided Delete/Add rows.
func pairRuns(path string, hunkID int, oldLn, newLn *int, dels, adds []string) []Row {
	count := len(dels)
	if len(adds) > count {
		count = len(adds)
	}

	out := make([]Row, 0, count)
	for i := 0; i < count; i++ {
		row := Row{Path: path, HunkID: hunkID}

		if i < len(dels) {
			row.OldLine = lineRef(*oldLn)
			row.OldText = dels[i]
			*oldLn++
		}
		if i < len(adds) {
			row.NewLine = lineRef(*newLn)
			row.NewText = adds[i]
			*newLn++
		}

		switch {
		case row.OldLine != nil && row.NewLine != nil:
			row.Kind = RowChange
		case row.OldLine != nil:
			row.Kind = RowDelete
		default:
			row.Kind = RowAdd
		}
		out = append(out, row)
	}
	return out
}

func hunkHeader(h *sgdiff.Hunk) string {
	header := fmt.Sprintf("@@ -%d,%d +%d,%d @@", h.OrigStartLine, h.OrigLines, h.NewStartLine, h.NewLines)
	if h.Section != "" {
		header += " " + h.Section
	}
	return header
}

func displayPath(fd *sgdiff.FileDiff) string {
	path := fd.NewName
	if path == "" || path == "/dev/null" {
		path = fd.OrigName
	}
	path = strings.TrimSpace(path)
	path = strings.TrimPrefix(path, "a/")
	path = strings.TrimPrefix(path, "b/")
	return path
}

func hunkLines(body []byte) []string {
	lines := strings.Split(strings.ReplaceAll(string(body), "\r\n", "\n"), "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func lineRef(n int) *int {
	v := n
	return &v
}
