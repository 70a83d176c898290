// Package pane implements PaneSession (spec.md §4.6): the per-pane
// scroll/follow/filter/bookmark/visibility/selection state plus the
// navigation, filter-editing, and bookmark operations the input
// dispatcher applies to it.
//
// Grounded on eviltik-docker-tui's model.go, which holds the equivalent
// per-view scroll/follow/filter fields directly on the bubbletea model;
// bark factors that state out into its own Session type, one per pane,
// since spec.md §4.7 allows up to two panes sharing one Application
// State.
package pane

import (
	"sort"

	"github.com/bark-log/bark/internal/decorate"
	"github.com/bark-log/bark/internal/filter"
	"github.com/bark-log/bark/internal/logline"
	"github.com/bark-log/bark/internal/store"
)

// Mode is the pane's input-mode state machine (spec.md §4.6).
type Mode int

const (
	ModeNormal Mode = iota
	ModeFilterEdit
	ModePickerOpen
	ModeSettingsOpen
	ModeHelpOpen
)

// Toggles are the per-pane rendering switches.
type Toggles struct {
	Wrap         bool
	LevelColors  bool
	RelativeTime bool
	JSONPretty   bool
	LineNumbers  bool
}

// Session is one pane's full state.
type Session struct {
	ScrollTopSeq logline.Seq
	Follow       bool

	Mode            Mode
	EditBuffer      string
	editMode        filter.Mode
	historyIndex    int // -1 when not browsing filter_history
	preBrowseBuffer string

	Filter filter.Spec
	engine *filter.Engine

	MatchCursor int // index into engine.MatchIndex(), -1 = none

	bookmarks []logline.Seq // kept sorted ascending

	SourceVisibility map[logline.SourceID]bool
	soloSource       *logline.SourceID

	SelectedSeq *logline.Seq
	HScroll     int32

	Toggles Toggles

	visible []logline.Seq // filter ∩ source-visibility, ascending
}

// lineSource adapts a Store to filter.LineSource by stripping ANSI
// escapes before matching, per spec.md §4.4 ("a match hit is on the
// visible text").
type lineSource struct{ st *store.Store }

func (s lineSource) VisibleText(seq logline.Seq) (string, bool) {
	l, ok := s.st.Get(seq)
	if !ok {
		return "", false
	}
	return decorate.StripANSI(string(l.Raw)), true
}

// New creates an empty pane session with an inactive filter and every
// source visible by default.
func New() *Session {
	s := &Session{
		historyIndex:     -1,
		MatchCursor:      -1,
		SourceVisibility: make(map[logline.SourceID]bool),
		Toggles: Toggles{
			LevelColors: true,
		},
	}
	s.engine = filter.New(filter.Spec{})
	return s
}

// Clone creates a new pane session seeded from s's toggles and source
// visibility, per spec.md §4.7 ("cloned from the active pane's toggles
// and source visibility but starts with empty filter and bookmarks").
func (s *Session) Clone() *Session {
	c := New()
	c.Toggles = s.Toggles
	c.Follow = s.Follow
	for id, v := range s.SourceVisibility {
		c.SourceVisibility[id] = v
	}
	return c
}

// RebuildVisible recomputes the pane's visible seq list: the filter
// engine's MatchIndex (or the full store range when the filter is
// inactive) narrowed by SourceVisibility. Callers must call this after
// any operation that can change either input: filter commit/cancel,
// Toggle/Solo/ShowAll, or a store eviction (Trim).
func (s *Session) RebuildVisible(st *store.Store) {
	var base []logline.Seq
	if s.Filter.Active {
		base = s.engine.MatchIndex()
	} else {
		base = allSeqs(st)
	}

	s.visible = s.visible[:0]
	for _, seq := range base {
		if s.isSourceVisible(st, seq) {
			s.visible = append(s.visible, seq)
		}
	}
}

func allSeqs(st *store.Store) []logline.Seq {
	if st.Len() == 0 {
		return nil
	}
	out := make([]logline.Seq, 0, st.Len())
	st.Range(st.FirstSeq(), st.Len(), store.Forward, func(l logline.LogLine) bool {
		out = append(out, l.Seq)
		return true
	})
	return out
}

func (s *Session) isSourceVisible(st *store.Store, seq logline.Seq) bool {
	l, ok := st.Get(seq)
	if !ok {
		return false
	}
	if s.soloSource != nil {
		return l.SourceID == *s.soloSource
	}
	if v, ok := s.SourceVisibility[l.SourceID]; ok {
		return v
	}
	return true
}

// Visible returns the pane's currently visible, ascending seq list.
func (s *Session) Visible() []logline.Seq { return s.visible }

// Ingest feeds newly appended seqs into the pane's filter engine and
// then refreshes the visible list. Called by the render scheduler after
// draining the ingest channel (spec.md §4.9 step 1).
func (s *Session) Ingest(st *store.Store, newSeqs []logline.Seq) {
	s.engine.Extend(lineSource{st}, newSeqs)
	s.RebuildVisible(st)
}

// Trim drops evicted seqs from the filter's MatchIndex and from
// bookmarks, clears a selection that was evicted (spec.md's "selection
// on an evicted line auto-clears" boundary behavior), then refreshes
// the visible list.
func (s *Session) Trim(st *store.Store) {
	s.engine.Trim(st.FirstSeq())
	s.trimBookmarks(st.FirstSeq())
	if s.SelectedSeq != nil && *s.SelectedSeq < st.FirstSeq() {
		s.SelectedSeq = nil
	}
	s.RebuildVisible(st)
}

func (s *Session) trimBookmarks(firstSeq logline.Seq) {
	i := 0
	for i < len(s.bookmarks) && s.bookmarks[i] < firstSeq {
		i++
	}
	if i > 0 {
		s.bookmarks = append(s.bookmarks[:0], s.bookmarks[i:]...)
	}
}

// Bookmarks returns the pane's sorted bookmark seqs. The returned slice
// must not be mutated by the caller.
func (s *Session) Bookmarks() []logline.Seq { return s.bookmarks }

// sortedSearch returns the index of the first element >= seq.
func sortedSearch(seqs []logline.Seq, seq logline.Seq) int {
	return sort.Search(len(seqs), func(i int) bool { return seqs[i] >= seq })
}
