package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/bark-log/bark/internal/app"
	"github.com/bark-log/bark/internal/decorate"
	"github.com/bark-log/bark/internal/filter"
	"github.com/bark-log/bark/internal/logline"
	"github.com/bark-log/bark/internal/pane"
)

// statusBarHeight is the status bar's one row, counted among the rows
// reservedRows in model.go leaves out of visibleRows.
const statusBarHeight = 1

// View implements tea.Model. Grounded on eviltik-docker-tui's render.go
// (per-view composition via lipgloss.JoinVertical/JoinHorizontal, the
// getContainerLogColor per-source tint idea generalized here into
// Theme.Sources), reshaped around panes instead of a single scroll view.
func (m *Model) View() string {
	if m.State.Picker != nil {
		return m.renderOverlay(m.renderPicker())
	}
	if m.State.SettingsOpen {
		return m.renderOverlay(m.renderSettings())
	}
	if m.State.HelpOpen {
		return m.renderOverlay(m.renderHelp())
	}

	paneHeight := m.Height - statusBarHeight
	if paneHeight < 1 {
		paneHeight = 1
	}

	var body string
	switch {
	case len(m.State.Panes) < 2:
		body = m.renderPane(m.State.Panes[0], 0, m.Width, paneHeight)
	case m.State.SplitDir == app.SplitHorizontal:
		half := paneHeight / 2
		top := m.renderPane(m.State.Panes[0], 0, m.Width, half)
		bottom := m.renderPane(m.State.Panes[1], 1, m.Width, paneHeight-half)
		body = lipgloss.JoinVertical(lipgloss.Left, top, bottom)
	default:
		half := m.Width / 2
		left := m.renderPane(m.State.Panes[0], 0, half, paneHeight)
		right := m.renderPane(m.State.Panes[1], 1, m.Width-half, paneHeight)
		body = lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, m.renderStatusBar())
}

func (m *Model) renderPane(p *pane.Session, idx, width, height int) string {
	border := m.Theme.Border.Border(lipgloss.RoundedBorder())
	if idx == m.State.ActivePaneIndex {
		border = border.BorderForeground(lipgloss.Color("#ffffff"))
	}

	innerWidth := width - 2 // border left/right
	contentRows := height - 3 // border top/bottom, title row
	if innerWidth < 1 {
		innerWidth = 1
	}
	if contentRows < 1 {
		contentRows = 1
	}

	var lines []string
	visible := p.Visible()
	if len(visible) > 0 {
		start := sortedIndexOf(visible, p.ScrollTopSeq)
		for i := start; i < len(visible) && len(lines) < contentRows; i++ {
			line, ok := m.State.Store.Get(visible[i])
			if !ok {
				continue
			}
			lines = append(lines, m.renderLine(p, line, innerWidth))
		}
	}
	for len(lines) < contentRows {
		lines = append(lines, "")
	}

	body := m.paneTitle(p) + "\n" + strings.Join(lines, "\n")
	return border.Width(innerWidth).Height(contentRows + 1).Render(body)
}

func (m *Model) paneTitle(p *pane.Session) string {
	var b strings.Builder
	if p.Follow {
		b.WriteString("[follow] ")
	}
	if p.Filter.Active {
		kind := "substr"
		if p.Filter.Mode == filter.Regex {
			kind = "regex"
		}
		fmt.Fprintf(&b, "filter(%s): %s ", kind, p.Filter.Text)
		if p.FilterDead() {
			b.WriteString("(invalid) ")
		}
	}
	if p.Mode == pane.ModeFilterEdit {
		fmt.Fprintf(&b, "/%s_", p.EditBuffer)
	}
	return m.Theme.StatusBar.Render(b.String())
}

func (m *Model) renderLine(p *pane.Session, l logline.LogLine, width int) string {
	text := decorate.StripANSI(string(l.Raw))
	if p.Toggles.JSONPretty {
		if pretty, ok := decorate.PrettyJSON(text); ok {
			text = pretty
		}
	}

	desc, hasSource := m.State.Sources[l.SourceID]

	var prefix strings.Builder
	if p.Toggles.LineNumbers {
		fmt.Fprintf(&prefix, "%6d ", l.Seq)
	}
	if hasSource {
		fmt.Fprintf(&prefix, "%-10s ", truncate(desc.Label, 10))
	}
	if p.Toggles.RelativeTime && l.HasTime {
		fmt.Fprintf(&prefix, "[%s] ", decorate.RelativeTime(l.ParsedTime, time.Now()))
	}

	line := prefix.String() + text
	if !p.Toggles.Wrap {
		line = clipHScroll(line, int(p.HScroll), width)
	}

	style := m.Theme.Background
	if hasSource {
		style = m.Theme.Sources[int(desc.ColorSlot)%len(m.Theme.Sources)]
	}
	if p.Toggles.LevelColors && l.HasLevel {
		style = m.Theme.ForLevel(l.ParsedLevel)
	}
	if p.SelectedSeq != nil && *p.SelectedSeq == l.Seq {
		style = m.Theme.Selected
	}

	for _, b := range p.Bookmarks() {
		if b == l.Seq {
			line = "★ " + line
			break
		}
	}

	return style.Render(line)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// clipHScroll drops the first scroll runes of line and truncates to width,
// a no-op for a line shorter than the scroll offset.
func clipHScroll(line string, scroll, width int) string {
	r := []rune(line)
	if scroll >= len(r) {
		return ""
	}
	r = r[scroll:]
	if width > 0 && len(r) > width {
		r = r[:width]
	}
	return string(r)
}

func (m *Model) renderStatusBar() string {
	p := m.State.ActivePane()
	rate := m.State.RateMeter.Rate(time.Now())

	parts := []string{
		"bark",
		fmt.Sprintf("%d/%d lines", m.State.Store.Len(), m.State.Store.Capacity()),
		fmt.Sprintf("%.1f/s", rate),
		fmt.Sprintf("%d bookmarks", len(p.Bookmarks())),
	}
	if m.StatusMessage != "" {
		parts = append(parts, m.StatusMessage)
	}
	style := m.Theme.StatusBar
	if m.StatusIsError {
		style = m.Theme.Error
	}
	return style.Width(m.Width).Render(strings.Join(parts, "  |  "))
}

func (m *Model) renderOverlay(content string) string {
	box := lipgloss.NewStyle().
		Width(m.Width - 4).
		Height(m.Height - 4).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#ffffff")).
		Padding(1, 2)
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, box.Render(content))
}

func (m *Model) renderPicker() string {
	if m.State.Picker == nil {
		return ""
	}
	var b strings.Builder
	title := "Docker containers"
	if m.State.Picker.Kind == app.PickerKubernetes {
		title = "Kubernetes pods"
	}
	fmt.Fprintf(&b, "%s\n\n", title)
	for i, c := range m.State.Picker.Candidates {
		cursor := "  "
		if i == m.State.Picker.SelectedIndex {
			cursor = "> "
		}
		fmt.Fprintf(&b, "%s%s\n", cursor, c)
	}
	return b.String()
}

func (m *Model) renderSettings() string {
	var b strings.Builder
	b.WriteString("Settings\n\n")
	fmt.Fprintf(&b, "theme: %s\n", m.Theme.Name)
	fmt.Fprintf(&b, "export dir: %s\n", m.Cfg.ExportDir)
	fmt.Fprintf(&b, "side panel: %v\n", m.Cfg.ShowSidePanel)

	if snap, ok := m.Diag.Latest(); ok {
		b.WriteString("\ndebug\n")
		fmt.Fprintf(&b, "goroutines: %d\n", snap.Goroutines)
		fmt.Fprintf(&b, "open fds: %d\n", snap.OpenFDs)
		fmt.Fprintf(&b, "mem: %d/%d MB (alloc/sys)\n", snap.AllocMB, snap.SysMB)
		fmt.Fprintf(&b, "ingest rate: %.1f/s\n", snap.IngestRate)
		fmt.Fprintf(&b, "store: %d/%d lines\n", snap.StoreLen, snap.StoreCap)
	}

	b.WriteString("\nEsc to close")
	return b.String()
}

func (m *Model) renderHelp() string {
	var b strings.Builder
	b.WriteString("Keymap\n\n")
	entries := [][2]string{
		{"j/k", "scroll"}, {"g/G", "top/bottom"}, {"Ctrl+u/Ctrl+d", "half page"},
		{"/", "filter"}, {"r", "toggle regex"}, {"n/N", "next/prev match"},
		{"m", "toggle bookmark"}, {"[ / ]", "prev/next bookmark"},
		{"w", "wrap"}, {"c", "level colors"}, {"t", "relative time"},
		{"J", "JSON pretty"}, {"#", "line numbers"}, {"b", "side panel"},
		{"p", "follow"}, {"y", "yank line"}, {"e", "export"},
		{"s", "save filter"}, {"S", "settings"}, {"?", "help"}, {"q", "quit"},
		{"Ctrl+W then v/s", "split vertical/horizontal"},
		{"Ctrl+W then h/j/k/l", "navigate panes"}, {"Ctrl+W then q", "close pane"},
		{"D / K", "docker/kubernetes picker"},
	}
	for _, e := range entries {
		fmt.Fprintf(&b, "%-20s %s\n", e[0], e[1])
	}
	b.WriteString("\nEsc or ? to close")
	return b.String()
}
