// Package registry implements the process-wide code-editor service the
// diff widget announces itself to. It is an injected collaborator, not a
// hidden static: callers construct one Service and thread it through
// widget construction.
package registry

import (
	"fmt"
	"sort"
	"sync"
)

// Editor is the minimal surface the registry needs from a registered
// widget.
type Editor interface {
	ID() string
	OnDispose(func()) func()
}

// Service tracks live editor widgets and hands out instance ids.
type Service struct {
	mu      sync.Mutex
	nextID  int
	editors map[string]Editor
}

func NewService() *Service {
	return &Service{editors: make(map[string]Editor)}
}

// NextInstanceID returns the next process-wide instance counter value.
// Counters are never reused within a process.
func (s *Service) NextInstanceID() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	return s.nextID
}

// FormatID renders the canonical "<type>:<id>" editor identifier.
func FormatID(editorType string, instance int) string {
	return fmt.Sprintf("%s:%d", editorType, instance)
}

// Register announces an editor. Registering the same id twice is a
// programming error.
func (s *Service) Register(e Editor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.editors[e.ID()]; exists {
		panic(fmt.Sprintf("registry: editor %q registered twice", e.ID()))
	}
	s.editors[e.ID()] = e
}

// Unregister removes an editor; unknown ids are ignored so disposal
// paths can call it unconditionally.
func (s *Service) Unregister(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.editors, id)
}

// Lookup returns the registered editor for id, if any.
func (s *Service) Lookup(id string) (Editor, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.editors[id]
	return e, ok
}

// IDs lists registered editor ids in sorted order.
func (s *Service) IDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.editors))
	for id := range s.editors {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
