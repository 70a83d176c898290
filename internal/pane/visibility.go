package pane

import (
	"github.com/bark-log/bark/internal/logline"
	"github.com/bark-log/bark/internal/store"
)

// ToggleSource flips id's visibility (defaulting to visible) and clears
// any active solo, then rebuilds the visible list.
func (s *Session) ToggleSource(st *store.Store, id logline.SourceID) {
	s.soloSource = nil
	current, ok := s.SourceVisibility[id]
	if !ok {
		current = true
	}
	s.SourceVisibility[id] = !current
	s.RebuildVisible(st)
}

// SoloSource shows only id, hiding every other source, until ShowAll is
// called.
func (s *Session) SoloSource(st *store.Store, id logline.SourceID) {
	s.soloSource = &id
	s.RebuildVisible(st)
}

// ShowAll clears solo and any per-source hides, making every source
// visible again.
func (s *Session) ShowAll(st *store.Store) {
	s.soloSource = nil
	s.SourceVisibility = make(map[logline.SourceID]bool)
	s.RebuildVisible(st)
}
