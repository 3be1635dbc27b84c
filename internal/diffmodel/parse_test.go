package diffmodel

import "testing"

const sampleDiff = `diff --git a/greet.go b/greet.go
index 83db48f..bf269f4 100644
--- a/greet.go
+++ b/greet.go
@@ -1,5 +1,6 @@ package main
 package main
 
-func greet() string {
-	return "hi"
+func greet(name string) string {
+	return "hi " + name
 }
+
`

func TestParseSingleFile(t *testing.T) {
	models, err := Parse([]byte(sampleDiff))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(models) != 1 {
		t.Fatalf("expected 1 model, got %d", len(models))
	}

	m := models[0]
	if m.Path != "greet.go" {
		t.Fatalf("Path = %q, want greet.go", m.Path)
	}
	if len(m.Rows) == 0 || m.Rows[0].Kind != RowHunkHeader {
		t.Fatalf("expected leading hunk header, got %+v", m.Rows[0])
	}
}

func TestParsePairsEditRunsPositionally(t *testing.T) {
	models, err := Parse([]byte(sampleDiff))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	var changes, adds, dels int
	for _, row := range models[0].Rows {
		switch row.Kind {
		case RowChange:
			changes++
			if row.OldLine == nil || row.NewLine == nil {
				t.Fatalf("change row missing a side: %+v", row)
			}
		case RowAdd:
			adds++
			if row.OldLine != nil {
				t.Fatalf("add row has an old line: %+v", row)
			}
		case RowDelete:
			dels++
		}
	}
	if changes != 2 {
		t.Fatalf("expected 2 paired change rows, got %d", changes)
	}
	if adds != 1 {
		t.Fatalf("expected 1 one-sided add row, got %d", adds)
	}
	if dels != 0 {
		t.Fatalf("expected no one-sided delete rows, got %d", dels)
	}
}

func TestLineChangesCollapsesRuns(t *testing.T) {
	models, err := Parse([]byte(sampleDiff))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	changes := models[0].LineChanges()
	if len(changes) != 2 {
		t.Fatalf("expected 2 change regions, got %d: %+v", len(changes), changes)
	}

	first := changes[0]
	if first.OrigStart != 3 || first.OrigEnd != 4 {
		t.Fatalf("first region original range = [%d,%d], want [3,4]", first.OrigStart, first.OrigEnd)
	}
	if first.ModStart != 3 || first.ModEnd != 4 {
		t.Fatalf("first region modified range = [%d,%d], want [3,4]", first.ModStart, first.ModEnd)
	}

	second := changes[1]
	if second.OrigStart <= second.OrigEnd {
		t.Fatalf("pure insertion should have empty original range, got [%d,%d]", second.OrigStart, second.OrigEnd)
	}
	if second.ModStart != 6 || second.ModEnd != 6 {
		t.Fatalf("second region modified range = [%d,%d], want [6,6]", second.ModStart, second.ModEnd)
	}
}

func TestLineChangesNilModel(t *testing.T) {
	var m *Model
	if got := m.LineChanges(); got != nil {
		t.Fatalf("nil model should have nil changes, got %v", got)
	}
	if m.LineCount() != 0 {
		t.Fatalf("nil model should have 0 lines")
	}
}

func TestParseRejectsGarbageHunkLines(t *testing.T) {
	bad := `--- a/x
+++ b/x
@@ -1,1 +1,1 @@
*boom
`
	if _, err := Parse([]byte(bad)); err == nil {
		t.Fatalf("expected error for unknown hunk prefix")
	}
}
