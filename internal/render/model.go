// Package render implements the Render Scheduler (spec.md §4.9) as a
// bubbletea tea.Model: it drains the ingest multiplexer in bounded
// batches, applies at most one dispatched Action per tick, updates the
// rate meter, and redraws at a capped ~60 Hz.
//
// Grounded on eviltik-docker-tui's model.go (the bubbletea Model/Update
// loop structure, its tea.Tick-driven periodic messages) and render.go
// (view composition); bark's ingest/input handling is reshaped around
// spec.md's explicit per-tick ordering instead of eviltik-docker-tui's
// message-type-per-concern switch.
package render

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/atotto/clipboard"

	"github.com/bark-log/bark/internal/app"
	"github.com/bark-log/bark/internal/config"
	"github.com/bark-log/bark/internal/decorate"
	"github.com/bark-log/bark/internal/diag"
	"github.com/bark-log/bark/internal/input"
	"github.com/bark-log/bark/internal/logline"
	"github.com/bark-log/bark/internal/pane"
	"github.com/bark-log/bark/internal/theme"
)

// frameInterval is the render scheduler's tick period, ~60 Hz (spec.md
// §4.9).
const frameInterval = 16 * time.Millisecond

// ingestBatchSize bounds how many lines are drained from the
// multiplexer per tick (spec.md §4.9 step 1).
const ingestBatchSize = 500

// reservedRows is the number of terminal rows the status bar, the pane's
// top/bottom border and its title row consume, left out of each pane's
// visible row count.
const reservedRows = 4

// SourceRequest is emitted when the user confirms a picker selection.
// Building the actual adapter (which command to spawn) is cmd/bark's
// job, since it alone knows how to turn a bare container/pod name into
// a source.ContainerAdapter/PodAdapter; render only records the intent.
type SourceRequest struct {
	Kind app.PickerKind
	Name string
}

type frameTickMsg time.Time

func frameTickCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameTickMsg(t) })
}

// Model is bark's bubbletea model.
type Model struct {
	State *app.State
	Theme theme.Theme
	Cfg   config.Config
	Diag  *diag.Ring

	Width, Height int

	pendingEvents []input.Event
	splitPending  bool

	StatusMessage string
	StatusIsError bool

	PendingSourceRequests []SourceRequest

	// SourceStarter, if set, is invoked once per tick for every pending
	// SourceRequest instead of leaving it for an external poller to call
	// DrainSourceRequests. cmd/bark sets this so picker confirmations take
	// effect on the very next frame without render importing internal/source.
	SourceStarter func(SourceRequest)

	Quit bool
}

// New creates a Model. th and cfg are resolved once at startup by
// cmd/bark; the Model keeps its own copy of cfg, whose ShowSidePanel the
// side-panel toggle flips at runtime (the settings overlay only shows it).
func New(state *app.State, th theme.Theme, cfg config.Config) *Model {
	return &Model{
		State: state,
		Theme: th,
		Cfg:   cfg,
		Diag:  diag.NewRing(120),
	}
}

// Init starts the frame tick; ingest and input are drained from it
// rather than from their own tea.Cmd loops, so every tick sees both in
// the order spec.md §4.9 specifies.
func (m *Model) Init() tea.Cmd { return frameTickCmd() }

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		m.pendingEvents = append(m.pendingEvents, translateKey(msg))
		return m, nil

	case tea.MouseMsg:
		ev := translateMouse(msg)
		m.pendingEvents = append(m.pendingEvents, ev)
		return m, nil

	case frameTickMsg:
		m.tick(time.Time(msg))
		if m.Quit {
			return m, tea.Quit
		}
		return m, frameTickCmd()
	}
	return m, nil
}

// tick runs one render-scheduler loop body: drain ingest, apply at most
// one action, refresh the rate meter and debug ring.
func (m *Model) tick(now time.Time) {
	m.drainIngest(now)

	if len(m.pendingEvents) > 0 {
		ev := m.pendingEvents[0]
		m.pendingEvents = m.pendingEvents[1:]
		m.applyAction(input.Dispatch(ev, m.buildContext()), now)
	}

	m.Diag.Push(diag.Sample(m.State.RateMeter.Rate(now), m.State.Store.Len(), m.State.Store.Capacity()))

	if m.SourceStarter != nil {
		for _, req := range m.DrainSourceRequests() {
			m.SourceStarter(req)
		}
	}
}

func (m *Model) buildContext() input.Context {
	p := m.State.ActivePane()
	return input.Context{
		PickerOpen:   m.State.Picker != nil,
		SettingsOpen: m.State.SettingsOpen,
		HelpOpen:     m.State.HelpOpen,
		SplitPending: m.splitPending,
		PaneMode:     p.Mode,
		WrapEnabled:  p.Toggles.Wrap,
	}
}

// drainIngest pulls up to ingestBatchSize events off the multiplexer,
// appends them to the Store, classifies level/timestamp, and feeds the
// new seqs into every pane's filter engine.
func (m *Model) drainIngest(now time.Time) {
	ch := m.State.Mux.Events()
	var newSeqs []logline.Seq

loop:
	for i := 0; i < ingestBatchSize; i++ {
		select {
		case evt, ok := <-ch:
			if !ok {
				break loop
			}
			line := logline.LogLine{SourceID: evt.SourceID, ReceivedAt: evt.ReceivedAt, Raw: []byte(evt.Raw)}
			if lvl, ok := decorate.ClassifyLevel(decorate.StripANSI(evt.Raw)); ok {
				line.ParsedLevel, line.HasLevel = lvl, true
			}
			if ts, _, _, ok := decorate.ExtractTimestamp(decorate.StripANSI(evt.Raw), now); ok {
				line.ParsedTime, line.HasTime = ts, true
			}
			seq := m.State.Store.Append(line)
			newSeqs = append(newSeqs, seq)
			m.State.RateMeter.Record(now)
		default:
			break loop
		}
	}

	if len(newSeqs) == 0 {
		return
	}
	for _, p := range m.State.Panes {
		p.Ingest(m.State.Store, newSeqs)
		p.Trim(m.State.Store)
		if p.Follow {
			p.Reanchor(m.visibleRows())
		}
	}
}

func (m *Model) visibleRows() int {
	rows := m.Height - reservedRows
	if rows < 1 {
		rows = 1
	}
	return rows
}

func sortedIndexOf(seqs []logline.Seq, seq logline.Seq) int {
	return sort.Search(len(seqs), func(i int) bool { return seqs[i] >= seq })
}

// seqAtRow maps a pane-local screen row to the seq currently rendered
// there, using the pane's visible list and its scroll anchor.
func seqAtRow(p *pane.Session, row int) (logline.Seq, bool) {
	visible := p.Visible()
	if len(visible) == 0 {
		return 0, false
	}
	start := sortedIndexOf(visible, p.ScrollTopSeq)
	idx := start + row
	if idx < 0 || idx >= len(visible) {
		return 0, false
	}
	return visible[idx], true
}

// paneAtPoint maps an absolute screen coordinate to the pane rendered
// there (per view.go's split geometry) and the row within that pane's
// content area, accounting for the border and title rows renderPane
// draws above the first content line.
func (m *Model) paneAtPoint(row, col int) (idx, contentRow int, ok bool) {
	paneHeight := m.Height - statusBarHeight
	if paneHeight < 1 {
		paneHeight = 1
	}

	switch {
	case len(m.State.Panes) < 2:
		idx, contentRow = 0, row
	case m.State.SplitDir == app.SplitHorizontal:
		half := paneHeight / 2
		if row < half {
			idx, contentRow = 0, row
		} else {
			idx, contentRow = 1, row-half
		}
	default:
		half := m.Width / 2
		contentRow = row
		if col < half {
			idx = 0
		} else {
			idx = 1
		}
	}

	if idx >= len(m.State.Panes) {
		return 0, 0, false
	}
	contentRow -= 2 // border top + title row
	if contentRow < 0 {
		return idx, 0, false
	}
	return idx, contentRow, true
}

// applyAction applies a single dispatched Action to ApplicationState.
func (m *Model) applyAction(act input.Action, now time.Time) {
	p := m.State.ActivePane()

	switch act.Kind {
	case input.ActionScrollBy:
		p.ScrollBy(act.Delta)
	case input.ActionPageUp:
		p.PageUp(m.visibleRows())
	case input.ActionPageDown:
		p.PageDown(m.visibleRows())
	case input.ActionHalfPageUp:
		p.HalfPageUp(m.visibleRows())
	case input.ActionHalfPageDown:
		p.HalfPageDown(m.visibleRows())
	case input.ActionGotoTop:
		p.GotoTop()
	case input.ActionGotoBottom:
		p.GotoBottom(m.visibleRows())
	case input.ActionHScrollBy:
		p.HScrollBy(int32(act.Delta))
	case input.ActionHScrollLarge:
		p.HScrollLarge(int32(act.Delta))
	case input.ActionHScrollZero:
		p.HScrollZero()

	case input.ActionStartFilterEdit:
		p.StartEdit()
	case input.ActionFilterInputChar:
		p.EditBuffer += string(act.Rune)
	case input.ActionFilterBackspace:
		if p.EditBuffer != "" {
			_, size := utf8.DecodeLastRuneInString(p.EditBuffer)
			p.EditBuffer = p.EditBuffer[:len(p.EditBuffer)-size]
		}
	case input.ActionCommitFilter:
		p.Commit(m.State.Store)
		m.State.FilterHistory.Push(p.Filter.Text)
	case input.ActionCancelFilter:
		p.Cancel()
	case input.ActionToggleRegex:
		p.ToggleRegex()
	case input.ActionHistoryPrev:
		p.HistoryPrev(m.State.FilterHistory.Entries())
	case input.ActionHistoryNext:
		p.HistoryNext(m.State.FilterHistory.Entries())

	case input.ActionNextMatch:
		p.NextMatch()
	case input.ActionPrevMatch:
		p.PrevMatch()

	case input.ActionToggleBookmark:
		p.ToggleBookmark(bookmarkTarget(p))
	case input.ActionNextBookmark:
		p.NextBookmark()
	case input.ActionPrevBookmark:
		p.PrevBookmark()

	case input.ActionToggleWrap:
		p.Toggles.Wrap = !p.Toggles.Wrap
	case input.ActionToggleLevelColors:
		p.Toggles.LevelColors = !p.Toggles.LevelColors
	case input.ActionToggleRelativeTime:
		p.Toggles.RelativeTime = !p.Toggles.RelativeTime
	case input.ActionToggleJSONPretty:
		p.Toggles.JSONPretty = !p.Toggles.JSONPretty
	case input.ActionToggleLineNumbers:
		p.Toggles.LineNumbers = !p.Toggles.LineNumbers
	case input.ActionToggleSidePanel:
		m.Cfg.ShowSidePanel = !m.Cfg.ShowSidePanel

	case input.ActionMouseSelect:
		if idx, contentRow, ok := m.paneAtPoint(act.Row, act.Col); ok {
			m.State.ActivePaneIndex = idx
			clicked := m.State.Panes[idx]
			if seq, ok := seqAtRow(clicked, contentRow); ok {
				clicked.SelectLine(seq)
			}
		}
	case input.ActionEscape:
		p.HandleEscape(m.State.Store)
	case input.ActionToggleFollow:
		p.Follow = !p.Follow
		if p.Follow {
			p.Reanchor(m.visibleRows())
		}

	case input.ActionYank:
		m.yank(p)
	case input.ActionExport:
		m.export(p)
	case input.ActionSaveFilter:
		m.State.SaveCurrentFilter()
	case input.ActionOpenSettings:
		m.State.SettingsOpen = true
	case input.ActionOpenHelp:
		m.State.HelpOpen = true
	case input.ActionQuit:
		m.Quit = true
	case input.ActionOpenDockerPicker:
		m.State.OpenPicker(app.PickerDocker, nil)
	case input.ActionOpenK8sPicker:
		m.State.OpenPicker(app.PickerKubernetes, nil)

	case input.ActionCyclePanes:
		m.State.CyclePanes()
	case input.ActionEnterSplitPending:
		m.splitPending = true
	case input.ActionCancelSplitPending:
		m.splitPending = false
	case input.ActionSplitVertical:
		m.State.Split(app.SplitVertical)
		m.splitPending = false
	case input.ActionSplitHorizontal:
		m.State.Split(app.SplitHorizontal)
		m.splitPending = false
	case input.ActionClosePane:
		m.State.ClosePane()
		m.splitPending = false
	case input.ActionNavigatePane:
		m.State.NavigateDirection(act.Rune)
		m.splitPending = false

	case input.ActionPickerMoveUp:
		if m.State.Picker != nil {
			m.State.Picker.MoveSelection(-1)
		}
	case input.ActionPickerMoveDown:
		if m.State.Picker != nil {
			m.State.Picker.MoveSelection(1)
		}
	case input.ActionPickerConfirm:
		m.confirmPicker()
	case input.ActionPickerCancel:
		m.State.ClosePicker()
	case input.ActionSettingsClose:
		m.State.SettingsOpen = false
	case input.ActionHelpClose:
		m.State.HelpOpen = false
	}
}

// bookmarkTarget is the selected line if one exists, otherwise the
// top-visible line, per the `m` keymap entry in spec.md §6.
func bookmarkTarget(p *pane.Session) logline.Seq {
	if p.SelectedSeq != nil {
		return *p.SelectedSeq
	}
	return p.ScrollTopSeq
}

func (m *Model) confirmPicker() {
	picker := m.State.Picker
	if picker == nil {
		return
	}
	if sel, ok := picker.Selected(); ok {
		m.PendingSourceRequests = append(m.PendingSourceRequests, SourceRequest{Kind: picker.Kind, Name: sel})
	}
	m.State.ClosePicker()
}

// DrainSourceRequests returns and clears any picker selections cmd/bark
// still needs to turn into a running source adapter.
func (m *Model) DrainSourceRequests() []SourceRequest {
	reqs := m.PendingSourceRequests
	m.PendingSourceRequests = nil
	return reqs
}

func (m *Model) yank(p *pane.Session) {
	target := bookmarkTarget(p)
	line, ok := m.State.Store.Get(target)
	if !ok {
		return
	}
	if err := clipboard.WriteAll(decorate.StripANSI(string(line.Raw))); err != nil {
		m.StatusMessage, m.StatusIsError = "yank failed: "+err.Error(), true
		return
	}
	m.StatusMessage, m.StatusIsError = "yanked line to clipboard", false
}

func (m *Model) export(p *pane.Session) {
	path := filepath.Join(m.Cfg.ExportDir, fmt.Sprintf("bark-export-%d.log", time.Now().UnixMilli()))
	f, err := os.Create(path)
	if err != nil {
		m.StatusMessage, m.StatusIsError = "export failed: "+err.Error(), true
		return
	}
	defer f.Close()

	for _, seq := range p.Visible() {
		line, ok := m.State.Store.Get(seq)
		if !ok {
			continue
		}
		f.Write(line.Raw)
		f.Write([]byte("\n"))
	}
	m.StatusMessage, m.StatusIsError = "exported to "+path, false
}
