package input

import "github.com/bark-log/bark/internal/pane"

// Context is the slice of ApplicationState the dispatcher needs to
// resolve modal precedence. It is deliberately narrow (no *app.State
// dependency) so Dispatch stays a pure function of two small values.
type Context struct {
	PickerOpen   bool
	SettingsOpen bool
	HelpOpen     bool
	SplitPending bool // a Ctrl+W chord is awaiting its second key
	PaneMode     pane.Mode
	WrapEnabled  bool // gates h/l/H/L/0 per spec.md §6
}

// Dispatch resolves ev against ctx, honoring modal precedence Picker >
// Settings > Help > SplitPending > FilterEdit > Normal (spec.md §4.8).
// Unknown keys in any mode are no-ops (ActionNone).
func Dispatch(ev Event, ctx Context) Action {
	switch {
	case ctx.PickerOpen:
		return dispatchPicker(ev)
	case ctx.SettingsOpen:
		return dispatchSettings(ev)
	case ctx.HelpOpen:
		return dispatchHelp(ev)
	case ctx.SplitPending:
		return dispatchSplitPending(ev)
	case ctx.PaneMode == pane.ModeFilterEdit:
		return dispatchFilterEdit(ev)
	default:
		return dispatchNormal(ev, ctx)
	}
}

func dispatchPicker(ev Event) Action {
	if ev.Type != EventKey {
		return Action{}
	}
	k := ev.Key
	switch {
	case k.Special == KeyEsc:
		return Action{Kind: ActionPickerCancel}
	case k.Special == KeyEnter:
		return Action{Kind: ActionPickerConfirm}
	case k.Special == KeyUp || k.Rune == 'k':
		return Action{Kind: ActionPickerMoveUp}
	case k.Special == KeyDown || k.Rune == 'j':
		return Action{Kind: ActionPickerMoveDown}
	}
	return Action{}
}

func dispatchSettings(ev Event) Action {
	if ev.Type == EventKey && ev.Key.Special == KeyEsc {
		return Action{Kind: ActionSettingsClose}
	}
	return Action{}
}

func dispatchHelp(ev Event) Action {
	if ev.Type != EventKey {
		return Action{}
	}
	if ev.Key.Special == KeyEsc || ev.Key.Rune == '?' {
		return Action{Kind: ActionHelpClose}
	}
	return Action{}
}

// dispatchSplitPending handles the second key of a Ctrl+W chord:
// v/s open a vertical/horizontal split, q closes the active pane, w
// cycles panes, h/j/k/l navigate by layout adjacency. Any other key
// cancels the pending chord.
func dispatchSplitPending(ev Event) Action {
	if ev.Type != EventKey || ev.Key.Special != KeyNone {
		return Action{Kind: ActionCancelSplitPending}
	}
	switch ev.Key.Rune {
	case 'v':
		return Action{Kind: ActionSplitVertical}
	case 's':
		return Action{Kind: ActionSplitHorizontal}
	case 'q':
		return Action{Kind: ActionClosePane}
	case 'w':
		return Action{Kind: ActionCyclePanes}
	case 'h', 'j', 'k', 'l':
		return Action{Kind: ActionNavigatePane, Rune: ev.Key.Rune}
	}
	return Action{Kind: ActionCancelSplitPending}
}

func dispatchFilterEdit(ev Event) Action {
	if ev.Type != EventKey {
		return Action{}
	}
	k := ev.Key
	switch {
	case k.Special == KeyEnter:
		return Action{Kind: ActionCommitFilter}
	case k.Special == KeyEsc:
		return Action{Kind: ActionCancelFilter}
	case k.Special == KeyBackspace:
		return Action{Kind: ActionFilterBackspace}
	case k.Special == KeyUp:
		return Action{Kind: ActionHistoryPrev}
	case k.Special == KeyDown:
		return Action{Kind: ActionHistoryNext}
	case k.Ctrl && k.Rune == 'r':
		return Action{Kind: ActionToggleRegex}
	case k.Special == KeyNone && !k.Ctrl:
		return Action{Kind: ActionFilterInputChar, Rune: k.Rune}
	}
	return Action{}
}

func dispatchNormal(ev Event, ctx Context) Action {
	if ev.Type == EventMouse {
		return dispatchMouse(ev.Mouse)
	}
	k := ev.Key
	if k.Ctrl {
		return dispatchNormalCtrl(k)
	}
	switch k.Special {
	case KeyPgUp:
		return Action{Kind: ActionPageUp}
	case KeyPgDn:
		return Action{Kind: ActionPageDown}
	case KeyTab:
		return Action{Kind: ActionCyclePanes}
	case KeyEsc:
		return Action{Kind: ActionEscape}
	}
	switch k.Rune {
	case 'j':
		return Action{Kind: ActionScrollBy, Delta: 1}
	case 'k':
		return Action{Kind: ActionScrollBy, Delta: -1}
	case 'g':
		return Action{Kind: ActionGotoTop}
	case 'G':
		return Action{Kind: ActionGotoBottom}
	case '/':
		return Action{Kind: ActionStartFilterEdit}
	case 'r':
		return Action{Kind: ActionToggleRegex}
	case 'n':
		return Action{Kind: ActionNextMatch}
	case 'N':
		return Action{Kind: ActionPrevMatch}
	case 'm':
		return Action{Kind: ActionToggleBookmark}
	case '[':
		return Action{Kind: ActionPrevBookmark}
	case ']':
		return Action{Kind: ActionNextBookmark}
	case 'w':
		return Action{Kind: ActionToggleWrap}
	case 'c':
		return Action{Kind: ActionToggleLevelColors}
	case 't':
		return Action{Kind: ActionToggleRelativeTime}
	case 'J':
		return Action{Kind: ActionToggleJSONPretty}
	case '#':
		return Action{Kind: ActionToggleLineNumbers}
	case 'b':
		return Action{Kind: ActionToggleSidePanel}
	case 'p':
		return Action{Kind: ActionToggleFollow}
	case 'y':
		return Action{Kind: ActionYank}
	case 'e':
		return Action{Kind: ActionExport}
	case 's':
		return Action{Kind: ActionSaveFilter}
	case 'S':
		return Action{Kind: ActionOpenSettings}
	case '?':
		return Action{Kind: ActionOpenHelp}
	case 'q':
		return Action{Kind: ActionQuit}
	case 'D':
		return Action{Kind: ActionOpenDockerPicker}
	case 'K':
		return Action{Kind: ActionOpenK8sPicker}
	}
	if !ctx.WrapEnabled {
		switch k.Rune {
		case 'h':
			return Action{Kind: ActionHScrollBy, Delta: -1}
		case 'l':
			return Action{Kind: ActionHScrollBy, Delta: 1}
		case 'H':
			return Action{Kind: ActionHScrollLarge, Delta: -1}
		case 'L':
			return Action{Kind: ActionHScrollLarge, Delta: 1}
		case '0':
			return Action{Kind: ActionHScrollZero}
		}
	}
	return Action{}
}

func dispatchNormalCtrl(k Key) Action {
	switch k.Rune {
	case 'u':
		return Action{Kind: ActionHalfPageUp}
	case 'd':
		return Action{Kind: ActionHalfPageDown}
	case 'w':
		return Action{Kind: ActionEnterSplitPending}
	}
	return Action{}
}

func dispatchMouse(m Mouse) Action {
	const wheelRows = 3
	switch m.Kind {
	case MouseWheelUp:
		return Action{Kind: ActionScrollBy, Delta: -wheelRows}
	case MouseWheelDown:
		return Action{Kind: ActionScrollBy, Delta: wheelRows}
	case MouseLeftClick:
		return Action{Kind: ActionMouseSelect, Row: m.Row, Col: m.Col}
	}
	return Action{}
}
