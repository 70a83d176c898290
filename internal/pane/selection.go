package pane

import (
	"github.com/bark-log/bark/internal/logline"
	"github.com/bark-log/bark/internal/store"
)

// SelectLine sets the selected seq, as done by a mouse click.
func (s *Session) SelectLine(seq logline.Seq) {
	s.SelectedSeq = &seq
}

// HandleEscape implements spec.md §4.6's two-stage Esc: the first press
// clears selection (if any); otherwise it clears the filter.
func (s *Session) HandleEscape(st *store.Store) {
	if s.SelectedSeq != nil {
		s.SelectedSeq = nil
		return
	}
	s.ClearFilter(st)
}
