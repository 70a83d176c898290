// Package app implements ApplicationState and the split-pane operations
// of spec.md §4.7: the shared Line Store, Multiplexer, and theme; the
// list of 1..=2 pane sessions; and the saved-filter, filter-history,
// picker, settings, and help overlay state that sits above any one pane.
//
// Grounded on eviltik-docker-tui's model.go, which owns the equivalent
// top-level fields (containers, logBroker, viewport state) directly on
// the bubbletea model; bark factors the per-pane pieces into
// internal/pane and keeps only what's genuinely shared here.
package app

import (
	"github.com/pkg/errors"

	"github.com/bark-log/bark/internal/logline"
	"github.com/bark-log/bark/internal/mux"
	"github.com/bark-log/bark/internal/pane"
	"github.com/bark-log/bark/internal/store"
)

// SplitDirection describes how the (at most two) panes are laid out.
type SplitDirection int

const (
	SplitNone SplitDirection = iota
	SplitVertical           // side-by-side
	SplitHorizontal         // stacked
)

// sourcePaletteSize bounds the round-robin color-slot assignment in
// RegisterSource. The active theme (internal/theme) owns the actual
// colors; this only needs the palette's cardinality.
const sourcePaletteSize = 8

// State is ApplicationState.
type State struct {
	Store *store.Store
	Mux   *mux.Multiplexer

	Sources map[logline.SourceID]logline.SourceDescriptor

	Panes           []*pane.Session
	ActivePaneIndex int
	SplitDir        SplitDirection

	Theme string

	SavedFilters  []string
	FilterHistory FilterHistory

	Picker       *PickerOverlay
	SettingsOpen bool
	HelpOpen     bool

	RateMeter *RateMeter

	nextSourceID logline.SourceID
}

// New creates an ApplicationState with a single pane and no sources.
func New(st *store.Store, mx *mux.Multiplexer, theme string) *State {
	return &State{
		Store:     st,
		Mux:       mx,
		Sources:   make(map[logline.SourceID]logline.SourceDescriptor),
		Panes:     []*pane.Session{pane.New()},
		Theme:     theme,
		RateMeter: NewRateMeter(),
	}
}

// ActivePane returns the currently focused pane session.
func (a *State) ActivePane() *pane.Session { return a.Panes[a.ActivePaneIndex] }

// RegisterSource assigns a new SourceID and a round-robin color slot,
// never renumbered once assigned (spec.md §3).
func (a *State) RegisterSource(kind logline.SourceKind, label string) logline.SourceDescriptor {
	id := a.nextSourceID
	a.nextSourceID++

	desc := logline.SourceDescriptor{
		ID:        id,
		Kind:      kind,
		Label:     label,
		ColorSlot: uint8(int(id) % sourcePaletteSize),
	}
	a.Sources[id] = desc
	return desc
}

// RemoveSource cancels id's adapter and forgets its descriptor. Pane
// source-visibility entries for id are left in place (harmless: a
// visibility entry for an absent source simply never matches anything).
func (a *State) RemoveSource(id logline.SourceID) {
	delete(a.Sources, id)
	a.Mux.Remove(id)
}

// Split adds a second pane cloned from the active one's toggles and
// source visibility, laid out in dir. If two panes already exist it
// returns an error and changes nothing (spec.md §4.7 caps panes at 2).
func (a *State) Split(dir SplitDirection) error {
	if len(a.Panes) >= 2 {
		return errors.New("app: at most 2 panes are supported")
	}
	clone := a.ActivePane().Clone()
	a.Panes = append(a.Panes, clone)
	a.SplitDir = dir
	a.ActivePaneIndex = len(a.Panes) - 1
	return nil
}

// ClosePane removes the active pane. Rejected when only one pane
// remains, per spec.md §4.7.
func (a *State) ClosePane() error {
	if len(a.Panes) <= 1 {
		return errors.New("app: cannot close the last pane")
	}
	a.Panes = append(a.Panes[:a.ActivePaneIndex], a.Panes[a.ActivePaneIndex+1:]...)
	a.ActivePaneIndex = 0
	a.SplitDir = SplitNone
	return nil
}

// CyclePanes rotates the active pane index.
func (a *State) CyclePanes() {
	if len(a.Panes) < 2 {
		return
	}
	a.ActivePaneIndex = (a.ActivePaneIndex + 1) % len(a.Panes)
}

// NavigateDirection moves focus toward the neighbor whose layout edge is
// adjacent to key ('h'/'j'/'k'/'l'), falling back to cycling through
// panes when the key doesn't correspond to the current split axis.
func (a *State) NavigateDirection(key rune) {
	if len(a.Panes) < 2 {
		return
	}
	switch a.SplitDir {
	case SplitVertical:
		switch key {
		case 'l':
			a.ActivePaneIndex = 1
			return
		case 'h':
			a.ActivePaneIndex = 0
			return
		}
	case SplitHorizontal:
		switch key {
		case 'j':
			a.ActivePaneIndex = 1
			return
		case 'k':
			a.ActivePaneIndex = 0
			return
		}
	}
	a.CyclePanes()
}

// SaveCurrentFilter appends the active pane's live filter text to
// SavedFilters, ignoring an inactive (empty) filter.
func (a *State) SaveCurrentFilter() {
	text := a.ActivePane().Filter.Text
	if text == "" {
		return
	}
	a.SavedFilters = append(a.SavedFilters, text)
}

// OpenPicker opens the source auto-discovery overlay with the given
// already-fetched candidate list.
func (a *State) OpenPicker(kind PickerKind, candidates []string) {
	a.Picker = &PickerOverlay{Kind: kind, Candidates: candidates}
}

// ClosePicker dismisses the picker overlay without selecting anything.
func (a *State) ClosePicker() { a.Picker = nil }
