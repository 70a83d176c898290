package input

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bark-log/bark/internal/pane"
)

func TestModalPrecedencePickerBeatsEverything(t *testing.T) {
	ctx := Context{PickerOpen: true, SettingsOpen: true, HelpOpen: true, PaneMode: pane.ModeFilterEdit}
	act := Dispatch(RuneEvent('j'), ctx)
	assert.Equal(t, ActionPickerMoveDown, act.Kind)
}

func TestModalPrecedenceSettingsBeatsFilterEdit(t *testing.T) {
	ctx := Context{SettingsOpen: true, PaneMode: pane.ModeFilterEdit}
	act := Dispatch(SpecialEvent(KeyEsc), ctx)
	assert.Equal(t, ActionSettingsClose, act.Kind)
}

func TestFilterEditCapturesPlainRunesAsInput(t *testing.T) {
	ctx := Context{PaneMode: pane.ModeFilterEdit}
	act := Dispatch(RuneEvent('a'), ctx)
	assert.Equal(t, ActionFilterInputChar, act.Kind)
	assert.Equal(t, 'a', act.Rune)
}

func TestFilterEditEnterCommitsEscCancels(t *testing.T) {
	ctx := Context{PaneMode: pane.ModeFilterEdit}
	assert.Equal(t, ActionCommitFilter, Dispatch(SpecialEvent(KeyEnter), ctx).Kind)
	assert.Equal(t, ActionCancelFilter, Dispatch(SpecialEvent(KeyEsc), ctx).Kind)
}

func TestFilterEditCtrlRTogglesRegex(t *testing.T) {
	ctx := Context{PaneMode: pane.ModeFilterEdit}
	act := Dispatch(CtrlEvent('r'), ctx)
	assert.Equal(t, ActionToggleRegex, act.Kind)
}

func TestNormalModeScrollAndGoto(t *testing.T) {
	ctx := Context{}
	assert.Equal(t, ActionScrollBy, Dispatch(RuneEvent('j'), ctx).Kind)
	assert.Equal(t, 1, Dispatch(RuneEvent('j'), ctx).Delta)
	assert.Equal(t, -1, Dispatch(RuneEvent('k'), ctx).Delta)
	assert.Equal(t, ActionGotoTop, Dispatch(RuneEvent('g'), ctx).Kind)
	assert.Equal(t, ActionGotoBottom, Dispatch(RuneEvent('G'), ctx).Kind)
}

func TestNormalModeCtrlUDHalfPage(t *testing.T) {
	ctx := Context{}
	assert.Equal(t, ActionHalfPageUp, Dispatch(CtrlEvent('u'), ctx).Kind)
	assert.Equal(t, ActionHalfPageDown, Dispatch(CtrlEvent('d'), ctx).Kind)
}

func TestHorizontalScrollDisabledWhenWrapEnabled(t *testing.T) {
	ctx := Context{WrapEnabled: true}
	assert.Equal(t, ActionNone, Dispatch(RuneEvent('h'), ctx).Kind)
	assert.Equal(t, ActionNone, Dispatch(RuneEvent('l'), ctx).Kind)
}

func TestHorizontalScrollEnabledWhenWrapDisabled(t *testing.T) {
	ctx := Context{WrapEnabled: false}
	assert.Equal(t, ActionHScrollBy, Dispatch(RuneEvent('h'), ctx).Kind)
	assert.Equal(t, ActionHScrollBy, Dispatch(RuneEvent('l'), ctx).Kind)
}

func TestCtrlWEntersSplitPendingThenRoutesNextKey(t *testing.T) {
	ctx := Context{}
	act := Dispatch(CtrlEvent('w'), ctx)
	assert.Equal(t, ActionEnterSplitPending, act.Kind)

	ctx.SplitPending = true
	assert.Equal(t, ActionSplitVertical, Dispatch(RuneEvent('v'), ctx).Kind)
	assert.Equal(t, ActionSplitHorizontal, Dispatch(RuneEvent('s'), ctx).Kind)
	assert.Equal(t, ActionClosePane, Dispatch(RuneEvent('q'), ctx).Kind)
	act = Dispatch(RuneEvent('x'), ctx)
	assert.Equal(t, ActionCancelSplitPending, act.Kind)
}

func TestMouseWheelScrollsThreeRows(t *testing.T) {
	ctx := Context{}
	act := Dispatch(MouseEvent(Mouse{Kind: MouseWheelDown}), ctx)
	assert.Equal(t, ActionScrollBy, act.Kind)
	assert.Equal(t, 3, act.Delta)
}

func TestMouseClickSelectsLine(t *testing.T) {
	ctx := Context{}
	act := Dispatch(MouseEvent(Mouse{Kind: MouseLeftClick, Row: 4, Col: 2}), ctx)
	assert.Equal(t, ActionMouseSelect, act.Kind)
	assert.Equal(t, 4, act.Row)
}

func TestUnknownKeyIsNoop(t *testing.T) {
	ctx := Context{}
	act := Dispatch(RuneEvent('Z'), ctx)
	assert.Equal(t, ActionNone, act.Kind)
}

func TestEscapeInNormalModeEmitsEscapeAction(t *testing.T) {
	ctx := Context{}
	act := Dispatch(SpecialEvent(KeyEsc), ctx)
	assert.Equal(t, ActionEscape, act.Kind)
}
