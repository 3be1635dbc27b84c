package marks

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// Store reads and writes the marks file under a repository root.
type Store struct {
	path string
}

func NewStore(rootDir string) Store {
	return Store{path: filepath.Join(rootDir, ".splitdiff", "marks.json")}
}

func (s Store) Load() ([]Mark, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []Mark{}, nil
		}
		return nil, err
	}

	var out []Mark
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s Store) Save(marks []Mark) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}

	b, err := json.MarshalIndent(marks, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, b, 0o644)
}
