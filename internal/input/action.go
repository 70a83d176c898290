package input

// ActionKind enumerates every effect the dispatcher can request. Most
// carry no payload; a few (ScrollBy, HScrollBy, HScrollLarge,
// FilterInputChar, NavigatePane, MouseSelect) carry one via Action's
// extra fields.
type ActionKind int

const (
	ActionNone ActionKind = iota

	// Navigation (Normal mode).
	ActionScrollBy
	ActionPageUp
	ActionPageDown
	ActionHalfPageUp
	ActionHalfPageDown
	ActionGotoTop
	ActionGotoBottom
	ActionHScrollBy
	ActionHScrollLarge
	ActionHScrollZero

	// Filter editing.
	ActionStartFilterEdit
	ActionFilterInputChar
	ActionFilterBackspace
	ActionCommitFilter
	ActionCancelFilter
	ActionToggleRegex
	ActionHistoryPrev
	ActionHistoryNext

	// Search navigation.
	ActionNextMatch
	ActionPrevMatch

	// Bookmarks.
	ActionToggleBookmark
	ActionNextBookmark
	ActionPrevBookmark

	// Per-pane toggles.
	ActionToggleWrap
	ActionToggleLevelColors
	ActionToggleRelativeTime
	ActionToggleJSONPretty
	ActionToggleLineNumbers
	ActionToggleSidePanel

	// Selection and follow.
	ActionMouseSelect
	ActionEscape
	ActionToggleFollow

	// Whole-application actions.
	ActionYank
	ActionExport
	ActionSaveFilter
	ActionOpenSettings
	ActionOpenHelp
	ActionQuit
	ActionOpenDockerPicker
	ActionOpenK8sPicker

	// Panes and splits.
	ActionCyclePanes
	ActionEnterSplitPending
	ActionCancelSplitPending
	ActionSplitVertical
	ActionSplitHorizontal
	ActionClosePane
	ActionNavigatePane

	// Overlay dismissal.
	ActionPickerMoveUp
	ActionPickerMoveDown
	ActionPickerConfirm
	ActionPickerCancel
	ActionSettingsClose
	ActionHelpClose
)

// Action is the dispatcher's single output: what the render loop should
// apply to ApplicationState this tick.
type Action struct {
	Kind  ActionKind
	Delta int  // ScrollBy/HScrollBy magnitude and sign
	Rune  rune // FilterInputChar payload, or NavigatePane direction ('h'/'j'/'k'/'l')
	Row   int  // MouseSelect target row
	Col   int
}
