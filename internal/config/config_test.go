package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromPathMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.json")
	opts, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath() error = %v", err)
	}
	if opts != (Options{}) {
		t.Fatalf("expected zero options, got %+v", opts)
	}
}

func TestLoadFromPathParsesPartialOptions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	blob := `{"renderSideBySide":false,"splitViewDefaultRatio":0.25,"diffAlgorithm":"smart"}`
	if err := os.WriteFile(path, []byte(blob), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	opts, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath() error = %v", err)
	}
	if opts.RenderSideBySide == nil || *opts.RenderSideBySide {
		t.Fatalf("expected renderSideBySide=false, got %v", opts.RenderSideBySide)
	}
	if opts.SplitViewDefaultRatio == nil || *opts.SplitViewDefaultRatio != 0.25 {
		t.Fatalf("expected ratio=0.25, got %v", opts.SplitViewDefaultRatio)
	}
	if opts.RenderOverviewRuler != nil {
		t.Fatalf("unspecified field should stay nil, got %v", *opts.RenderOverviewRuler)
	}

	resolved := Normalize(opts, Defaults())
	if resolved.DiffAlgorithm != AlgorithmLegacy {
		t.Fatalf("expected smart alias to resolve to legacy, got %q", resolved.DiffAlgorithm)
	}
}

func TestLoadFromPathRejectsBrokenJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, []byte(`{"renderSideBySide":`), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if _, err := LoadFromPath(path); err == nil {
		t.Fatalf("expected error for broken JSON")
	}
}

func TestDefaultPathUsesXDGConfigHome(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	got, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath() error = %v", err)
	}

	want := filepath.Join(xdg, "splitdiff", "config.json")
	if got != want {
		t.Fatalf("DefaultPath()=%q want %q", got, want)
	}
}
