package pane

import "github.com/bark-log/bark/internal/logline"

// currentIndex finds where ScrollTopSeq sits in the visible list, for
// operations that move relative to it. When ScrollTopSeq isn't (or is no
// longer) present — e.g. it was evicted — it falls back to the nearest
// following entry.
func (s *Session) currentIndex() int {
	if len(s.visible) == 0 {
		return -1
	}
	i := sortedSearch(s.visible, s.ScrollTopSeq)
	if i >= len(s.visible) {
		i = len(s.visible) - 1
	}
	return i
}

func (s *Session) setScrollIndex(i int) {
	if len(s.visible) == 0 {
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= len(s.visible) {
		i = len(s.visible) - 1
	}
	s.ScrollTopSeq = s.visible[i]
}

// ScrollBy moves the viewport by delta logical rows. A negative delta
// clears follow, per spec.md §4.6.
func (s *Session) ScrollBy(delta int) {
	if delta < 0 {
		s.Follow = false
	}
	i := s.currentIndex()
	if i < 0 {
		return
	}
	s.setScrollIndex(i + delta)
}

// PageUp scrolls back a full page of visibleRows.
func (s *Session) PageUp(visibleRows int) { s.ScrollBy(-visibleRows) }

// PageDown scrolls forward a full page of visibleRows.
func (s *Session) PageDown(visibleRows int) { s.ScrollBy(visibleRows) }

// HalfPageUp scrolls back half a page.
func (s *Session) HalfPageUp(visibleRows int) { s.ScrollBy(-(visibleRows / 2)) }

// HalfPageDown scrolls forward half a page.
func (s *Session) HalfPageDown(visibleRows int) { s.ScrollBy(visibleRows / 2) }

// GotoTop jumps to the first visible line and clears follow.
func (s *Session) GotoTop() {
	s.Follow = false
	s.setScrollIndex(0)
}

// GotoBottom jumps to the last visible line and re-enables follow.
func (s *Session) GotoBottom(visibleRows int) {
	s.Follow = true
	s.Reanchor(visibleRows)
}

// Reanchor recomputes ScrollTopSeq from the tail of the visible list so
// that the last visibleRows lines are shown. It is the render
// scheduler's follow-mode policy (spec.md §4.9), exposed here so
// GotoBottom and a viewport resize can both invoke it.
func (s *Session) Reanchor(visibleRows int) {
	if len(s.visible) == 0 {
		return
	}
	idx := len(s.visible) - visibleRows
	if idx < 0 {
		idx = 0
	}
	s.ScrollTopSeq = s.visible[idx]
}

// HScrollBy shifts horizontal scroll by delta columns. A no-op when line
// wrap is enabled.
func (s *Session) HScrollBy(delta int32) {
	if s.Toggles.Wrap {
		return
	}
	next := s.HScroll + delta
	if next < 0 {
		next = 0
	}
	s.HScroll = next
}

// HScrollLarge shifts horizontal scroll by a large jump in the given
// direction (positive or negative sign of delta only matters).
func (s *Session) HScrollLarge(delta int32) {
	const largeJump = 20
	if delta < 0 {
		s.HScrollBy(-largeJump)
		return
	}
	s.HScrollBy(largeJump)
}

// HScrollZero resets horizontal scroll to the left edge.
func (s *Session) HScrollZero() {
	if s.Toggles.Wrap {
		return
	}
	s.HScroll = 0
}

// NextMatch moves match_cursor forward through the filter's MatchIndex,
// wrapping around, and scrolls to the targeted seq.
func (s *Session) NextMatch() (logline.Seq, bool) {
	return s.stepMatch(1)
}

// PrevMatch moves match_cursor backward, wrapping around.
func (s *Session) PrevMatch() (logline.Seq, bool) {
	return s.stepMatch(-1)
}

func (s *Session) stepMatch(step int) (logline.Seq, bool) {
	matches := s.engine.MatchIndex()
	if len(matches) == 0 {
		s.MatchCursor = -1
		return 0, false
	}
	if s.MatchCursor < 0 {
		if step > 0 {
			s.MatchCursor = 0
		} else {
			s.MatchCursor = len(matches) - 1
		}
	} else {
		s.MatchCursor = ((s.MatchCursor+step)%len(matches) + len(matches)) % len(matches)
	}
	seq := matches[s.MatchCursor]
	s.ScrollTopSeq = seq
	return seq, true
}
