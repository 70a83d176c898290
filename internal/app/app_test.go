package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bark-log/bark/internal/logline"
	"github.com/bark-log/bark/internal/mux"
	"github.com/bark-log/bark/internal/store"
)

func newState(t *testing.T) *State {
	t.Helper()
	st, err := store.New(100)
	require.NoError(t, err)
	return New(st, mux.New(16), "dark")
}

func TestNewStateStartsWithOnePane(t *testing.T) {
	a := newState(t)
	assert.Len(t, a.Panes, 1)
	assert.Equal(t, 0, a.ActivePaneIndex)
}

func TestRegisterSourceAssignsRoundRobinColorSlots(t *testing.T) {
	a := newState(t)
	d0 := a.RegisterSource(logline.KindFile, "a.log")
	d1 := a.RegisterSource(logline.KindFile, "b.log")
	assert.Equal(t, logline.SourceID(0), d0.ID)
	assert.Equal(t, logline.SourceID(1), d1.ID)
	assert.Equal(t, uint8(0), d0.ColorSlot)
	assert.Equal(t, uint8(1), d1.ColorSlot)
}

func TestSplitRejectedBeyondTwoPanes(t *testing.T) {
	a := newState(t)
	require.NoError(t, a.Split(SplitVertical))
	assert.Len(t, a.Panes, 2)

	err := a.Split(SplitHorizontal)
	assert.Error(t, err)
	assert.Len(t, a.Panes, 2)
}

func TestClosePaneRejectedAtOnePane(t *testing.T) {
	a := newState(t)
	err := a.ClosePane()
	assert.Error(t, err)
	assert.Len(t, a.Panes, 1)
}

func TestClosePaneRemovesActiveAndResetsSplit(t *testing.T) {
	a := newState(t)
	require.NoError(t, a.Split(SplitVertical))
	require.NoError(t, a.ClosePane())
	assert.Len(t, a.Panes, 1)
	assert.Equal(t, SplitNone, a.SplitDir)
}

func TestCyclePanesRotatesActiveIndex(t *testing.T) {
	a := newState(t)
	require.NoError(t, a.Split(SplitVertical))
	a.ActivePaneIndex = 0
	a.CyclePanes()
	assert.Equal(t, 1, a.ActivePaneIndex)
	a.CyclePanes()
	assert.Equal(t, 0, a.ActivePaneIndex)
}

func TestNavigateDirectionFollowsSplitAxis(t *testing.T) {
	a := newState(t)
	require.NoError(t, a.Split(SplitVertical))
	a.ActivePaneIndex = 0
	a.NavigateDirection('l')
	assert.Equal(t, 1, a.ActivePaneIndex)
	a.NavigateDirection('h')
	assert.Equal(t, 0, a.ActivePaneIndex)
}

func TestNavigateDirectionFallsBackToCycleOffAxis(t *testing.T) {
	a := newState(t)
	require.NoError(t, a.Split(SplitVertical))
	a.ActivePaneIndex = 0
	a.NavigateDirection('j') // not the vertical-split axis
	assert.Equal(t, 1, a.ActivePaneIndex)
}

func TestSplitClonesActivePaneTogglesNotFilter(t *testing.T) {
	a := newState(t)
	a.ActivePane().Toggles.Wrap = true
	require.NoError(t, a.Split(SplitVertical))
	clone := a.Panes[1]
	assert.True(t, clone.Toggles.Wrap)
	assert.False(t, clone.Filter.Active)
}

func TestSaveCurrentFilterIgnoresEmpty(t *testing.T) {
	a := newState(t)
	a.SaveCurrentFilter()
	assert.Empty(t, a.SavedFilters)
}

func TestOpenPickerAndClosePicker(t *testing.T) {
	a := newState(t)
	a.OpenPicker(PickerDocker, []string{"web", "db"})
	require.NotNil(t, a.Picker)
	sel, ok := a.Picker.Selected()
	assert.True(t, ok)
	assert.Equal(t, "web", sel)

	a.Picker.MoveSelection(1)
	sel, _ = a.Picker.Selected()
	assert.Equal(t, "db", sel)

	a.Picker.MoveSelection(10) // clamps
	sel, _ = a.Picker.Selected()
	assert.Equal(t, "db", sel)

	a.ClosePicker()
	assert.Nil(t, a.Picker)
}

func TestFilterHistoryPushEvictsOldestAtCapacity(t *testing.T) {
	var h FilterHistory
	for i := 0; i < FilterHistoryCapacity+10; i++ {
		h.Push(string(rune('a' + i%26)))
	}
	assert.LessOrEqual(t, len(h.Entries()), FilterHistoryCapacity)
}

func TestFilterHistoryPushIgnoresConsecutiveDuplicate(t *testing.T) {
	var h FilterHistory
	h.Push("x")
	h.Push("x")
	assert.Equal(t, []string{"x"}, h.Entries())
}

func TestRateMeterCountsWithinOneSecondWindow(t *testing.T) {
	r := NewRateMeter()
	base := time.Unix(1000, 0)
	for i := 0; i < 5; i++ {
		r.Record(base.Add(time.Duration(i) * 100 * time.Millisecond))
	}
	assert.Equal(t, float64(5), r.Rate(base.Add(400*time.Millisecond)))
}

func TestRateMeterDropsOutOfWindowEntries(t *testing.T) {
	r := NewRateMeter()
	base := time.Unix(1000, 0)
	r.Record(base)
	assert.Equal(t, float64(1), r.Rate(base.Add(500*time.Millisecond)))
	assert.Equal(t, float64(0), r.Rate(base.Add(1500*time.Millisecond)))
}

func TestRateMeterGoesIdleAfterTwoSeconds(t *testing.T) {
	r := NewRateMeter()
	base := time.Unix(1000, 0)
	r.Record(base)
	assert.Equal(t, float64(0), r.Rate(base.Add(3*time.Second)))
}
