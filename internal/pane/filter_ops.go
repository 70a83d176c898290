package pane

import (
	"github.com/bark-log/bark/internal/filter"
	"github.com/bark-log/bark/internal/store"
)

// StartEdit enters FilterEdit mode, seeding EditBuffer from the
// currently committed filter text.
func (s *Session) StartEdit() {
	s.Mode = ModeFilterEdit
	s.EditBuffer = s.Filter.Text
	s.editMode = s.Filter.Mode
	s.historyIndex = -1
}

// Commit installs EditBuffer as the pane's live filter, recompiles and
// rebuilds the engine against st, and returns to Normal mode.
func (s *Session) Commit(st *store.Store) {
	s.Filter = filter.NewSpec(s.EditBuffer, s.editMode)
	s.engine.SetSpec(s.Filter)
	s.engine.Rebuild(lineSource{st}, allSeqs(st))
	s.MatchCursor = -1
	s.Mode = ModeNormal
	s.historyIndex = -1
	s.RebuildVisible(st)
}

// Cancel discards any in-progress edit (including a history-browse
// rollback) and returns to Normal mode without touching the live filter.
func (s *Session) Cancel() {
	if s.historyIndex != -1 {
		s.EditBuffer = s.preBrowseBuffer
		s.historyIndex = -1
	}
	s.Mode = ModeNormal
}

// ToggleRegex flips the edit-in-progress filter mode between Substring
// and Regex.
func (s *Session) ToggleRegex() {
	if s.editMode == filter.Substring {
		s.editMode = filter.Regex
	} else {
		s.editMode = filter.Substring
	}
}

// EditMode returns the filter mode currently being edited (distinct from
// Filter.Mode, the last committed value).
func (s *Session) EditMode() filter.Mode { return s.editMode }

// HistoryPrev cycles to the previous (older) entry of history, snapshotting
// the pre-browse EditBuffer on first use so Cancel can roll back to it.
func (s *Session) HistoryPrev(history []string) {
	if len(history) == 0 {
		return
	}
	if s.historyIndex == -1 {
		s.preBrowseBuffer = s.EditBuffer
		s.historyIndex = 0
	} else if s.historyIndex < len(history)-1 {
		s.historyIndex++
	}
	s.EditBuffer = history[len(history)-1-s.historyIndex]
}

// HistoryNext cycles to the next (newer) entry of history; moving past
// the newest entry restores the pre-browse buffer and exits browsing.
func (s *Session) HistoryNext(history []string) {
	if s.historyIndex == -1 {
		return
	}
	if s.historyIndex == 0 {
		s.historyIndex = -1
		s.EditBuffer = s.preBrowseBuffer
		return
	}
	s.historyIndex--
	s.EditBuffer = history[len(history)-1-s.historyIndex]
}

// ClearFilter deactivates the filter and rebuilds against st.
func (s *Session) ClearFilter(st *store.Store) {
	s.Filter = filter.Spec{}
	s.engine.SetSpec(s.Filter)
	s.engine.Rebuild(lineSource{st}, allSeqs(st))
	s.MatchCursor = -1
	s.RebuildVisible(st)
}

// FilterDead reports whether the active filter is a regex that failed
// to compile.
func (s *Session) FilterDead() bool { return s.engine.Dead() }
