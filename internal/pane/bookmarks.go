package pane

import "github.com/bark-log/bark/internal/logline"

// ToggleBookmark adds seq to the bookmark set if absent, or removes it
// if present, keeping the set sorted ascending. O(log k) lookup via
// binary search, O(k) insertion/removal.
func (s *Session) ToggleBookmark(seq logline.Seq) {
	i := sortedSearch(s.bookmarks, seq)
	if i < len(s.bookmarks) && s.bookmarks[i] == seq {
		s.bookmarks = append(s.bookmarks[:i], s.bookmarks[i+1:]...)
		return
	}
	s.bookmarks = append(s.bookmarks, 0)
	copy(s.bookmarks[i+1:], s.bookmarks[i:])
	s.bookmarks[i] = seq
}

// NextBookmark moves to the nearest bookmark strictly after ScrollTopSeq,
// wrapping around to the first bookmark if already at or past the last.
func (s *Session) NextBookmark() (logline.Seq, bool) {
	if len(s.bookmarks) == 0 {
		return 0, false
	}
	i := sort0Above(s.bookmarks, s.ScrollTopSeq)
	if i >= len(s.bookmarks) {
		i = 0
	}
	s.ScrollTopSeq = s.bookmarks[i]
	return s.bookmarks[i], true
}

// PrevBookmark moves to the nearest bookmark strictly before
// ScrollTopSeq, wrapping around to the last bookmark if already at or
// before the first.
func (s *Session) PrevBookmark() (logline.Seq, bool) {
	if len(s.bookmarks) == 0 {
		return 0, false
	}
	i := sortedSearch(s.bookmarks, s.ScrollTopSeq) - 1
	if i < 0 {
		i = len(s.bookmarks) - 1
	}
	s.ScrollTopSeq = s.bookmarks[i]
	return s.bookmarks[i], true
}

// sort0Above returns the index of the first bookmark strictly greater
// than seq.
func sort0Above(seqs []logline.Seq, seq logline.Seq) int {
	i := sortedSearch(seqs, seq)
	if i < len(seqs) && seqs[i] == seq {
		i++
	}
	return i
}
