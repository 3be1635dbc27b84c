package git

import (
	"context"
	"errors"
	"os/exec"
	"sort"
	"strings"

	"splitdiff/internal/util"
)

// Source produces unified-diff text and the list of changed paths for a
// worktree. It is the external diff-computation collaborator the widget
// holds results from; the widget itself never invokes it.
type Source interface {
	ChangedPaths(ctx context.Context, cwd string) ([]string, error)
	UnifiedDiff(ctx context.Context, cwd, path string) (string, error)
}

type source struct{}

func NewSource() Source {
	return source{}
}

func (source) ChangedPaths(ctx context.Context, cwd string) ([]string, error) {
	out, err := util.Run(ctx, cwd, "git", "status", "--porcelain", "--untracked-files=all")
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var paths []string
	for _, line := range strings.Split(out, "\n") {
		if len(line) < 4 {
			continue
		}
		path := strings.TrimSpace(line[3:])
		// Rename records are "old -> new"; the new side is what we diff.
		if idx := strings.Index(path, " -> "); idx >= 0 {
			path = path[idx+4:]
		}
		if path == "" || seen[path] {
			continue
		}
		seen[path] = true
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths, nil
}

func (source) UnifiedDiff(ctx context.Context, cwd, path string) (string, error) {
	out, err := util.Run(ctx, cwd, "git", "diff", "HEAD", "-U3", "--", path)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(out) != "" {
		return out, nil
	}

	// Untracked paths need --no-index, which exits 1 when a diff exists.
	cmd := exec.CommandContext(ctx, "git", "diff", "--no-index", "--", "/dev/null", path)
	if cwd != "" {
		cmd.Dir = cwd
	}
	noIndexOut, noIndexErr := cmd.CombinedOutput()
	if noIndexErr == nil {
		return string(noIndexOut), nil
	}

	var exitErr *exec.ExitError
	if errors.As(noIndexErr, &exitErr) && exitErr.ExitCode() == 1 {
		return string(noIndexOut), nil
	}

	return "", nil
}
