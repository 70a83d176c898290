// Package theme provides bark's named color palettes: background,
// foreground, borders, per-Level colors, an 8-slot source palette, and
// selection/bookmark accents, all as lipgloss styles.
//
// Grounded on eviltik-docker-tui's styles.go, which hardcodes one VSCode
// palette as package-level lipgloss.Style values; bark generalizes that
// single palette into a table of named Themes selected at startup by
// BARK_THEME or the config file's theme key (spec.md §6).
package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bark-log/bark/internal/logline"
)

// Palette is the set of raw colors a Theme is built from.
type Palette struct {
	Background string
	Foreground string
	Dim        string
	Border     string
	Selection  string
	Bookmark   string

	Error string
	Warn  string
	Info  string
	Debug string
	Trace string

	Sources [8]string
}

// Theme is a Palette realized as ready-to-use lipgloss styles.
type Theme struct {
	Name string

	Background lipgloss.Style
	StatusBar  lipgloss.Style
	Border     lipgloss.Style
	Selected   lipgloss.Style
	Bookmarked lipgloss.Style

	Error lipgloss.Style
	Warn  lipgloss.Style
	Info  lipgloss.Style
	Debug lipgloss.Style
	Trace lipgloss.Style

	Sources [8]lipgloss.Style
}

func build(name string, p Palette) Theme {
	t := Theme{
		Name:       name,
		Background: lipgloss.NewStyle().Foreground(lipgloss.Color(p.Foreground)).Background(lipgloss.Color(p.Background)),
		StatusBar:  lipgloss.NewStyle().Foreground(lipgloss.Color(p.Dim)),
		Border:     lipgloss.NewStyle().BorderForeground(lipgloss.Color(p.Border)),
		Selected:   lipgloss.NewStyle().Background(lipgloss.Color(p.Selection)),
		Bookmarked: lipgloss.NewStyle().Foreground(lipgloss.Color(p.Bookmark)).Bold(true),
		Error:      lipgloss.NewStyle().Foreground(lipgloss.Color(p.Error)).Bold(true),
		Warn:       lipgloss.NewStyle().Foreground(lipgloss.Color(p.Warn)),
		Info:       lipgloss.NewStyle().Foreground(lipgloss.Color(p.Info)),
		Debug:      lipgloss.NewStyle().Foreground(lipgloss.Color(p.Debug)),
		Trace:      lipgloss.NewStyle().Foreground(lipgloss.Color(p.Trace)),
	}
	for i, c := range p.Sources {
		t.Sources[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	}
	return t
}

// DefaultName is used when BARK_THEME and the config file's theme key
// are both absent or invalid.
const DefaultName = "dark"

// registry holds the 11 built-in named themes.
var registry = map[string]Theme{}

func register(name string, p Palette) { registry[name] = build(name, p) }

func init() {
	register("dark", Palette{
		Background: "#1e1e1e", Foreground: "#cccccc", Dim: "#808080", Border: "#3c3c3c",
		Selection: "#264f78", Bookmark: "#dcdcaa",
		Error: "#f48771", Warn: "#dcdcaa", Info: "#4fc1ff", Debug: "#808080", Trace: "#5a5a5a",
		Sources: [8]string{"#4ec9b0", "#4fc1ff", "#dcdcaa", "#c586c0", "#89d185", "#f48771", "#d7ba7d", "#9cdcfe"},
	})
	register("light", Palette{
		Background: "#ffffff", Foreground: "#1e1e1e", Dim: "#6e6e6e", Border: "#d4d4d4",
		Selection: "#add6ff", Bookmark: "#795e26",
		Error: "#cd3131", Warn: "#795e26", Info: "#1a85ff", Debug: "#6e6e6e", Trace: "#a0a0a0",
		Sources: [8]string{"#0e7490", "#1a85ff", "#795e26", "#af00db", "#008000", "#cd3131", "#b5860b", "#0070c1"},
	})
	register("solarized-dark", Palette{
		Background: "#002b36", Foreground: "#839496", Dim: "#586e75", Border: "#073642",
		Selection: "#073642", Bookmark: "#b58900",
		Error: "#dc322f", Warn: "#b58900", Info: "#268bd2", Debug: "#586e75", Trace: "#073642",
		Sources: [8]string{"#2aa198", "#268bd2", "#b58900", "#6c71c4", "#859900", "#dc322f", "#cb4b16", "#d33682"},
	})
	register("solarized-light", Palette{
		Background: "#fdf6e3", Foreground: "#657b83", Dim: "#93a1a1", Border: "#eee8d5",
		Selection: "#eee8d5", Bookmark: "#b58900",
		Error: "#dc322f", Warn: "#b58900", Info: "#268bd2", Debug: "#93a1a1", Trace: "#eee8d5",
		Sources: [8]string{"#2aa198", "#268bd2", "#b58900", "#6c71c4", "#859900", "#dc322f", "#cb4b16", "#d33682"},
	})
	register("dracula", Palette{
		Background: "#282a36", Foreground: "#f8f8f2", Dim: "#6272a4", Border: "#44475a",
		Selection: "#44475a", Bookmark: "#f1fa8c",
		Error: "#ff5555", Warn: "#f1fa8c", Info: "#8be9fd", Debug: "#6272a4", Trace: "#44475a",
		Sources: [8]string{"#50fa7b", "#8be9fd", "#f1fa8c", "#bd93f9", "#ff79c6", "#ff5555", "#ffb86c", "#f8f8f2"},
	})
	register("nord", Palette{
		Background: "#2e3440", Foreground: "#d8dee9", Dim: "#4c566a", Border: "#3b4252",
		Selection: "#434c5e", Bookmark: "#ebcb8b",
		Error: "#bf616a", Warn: "#ebcb8b", Info: "#88c0d0", Debug: "#4c566a", Trace: "#3b4252",
		Sources: [8]string{"#a3be8c", "#88c0d0", "#ebcb8b", "#b48ead", "#81a1c1", "#bf616a", "#d08770", "#8fbcbb"},
	})
	register("gruvbox-dark", Palette{
		Background: "#282828", Foreground: "#ebdbb2", Dim: "#928374", Border: "#3c3836",
		Selection: "#504945", Bookmark: "#d79921",
		Error: "#cc241d", Warn: "#d79921", Info: "#458588", Debug: "#928374", Trace: "#3c3836",
		Sources: [8]string{"#98971a", "#458588", "#d79921", "#b16286", "#689d6a", "#cc241d", "#d65d0e", "#a89984"},
	})
	register("gruvbox-light", Palette{
		Background: "#fbf1c7", Foreground: "#3c3836", Dim: "#7c6f64", Border: "#ebdbb2",
		Selection: "#d5c4a1", Bookmark: "#b57614",
		Error: "#9d0006", Warn: "#b57614", Info: "#076678", Debug: "#7c6f64", Trace: "#ebdbb2",
		Sources: [8]string{"#79740e", "#076678", "#b57614", "#8f3f71", "#427b58", "#9d0006", "#af3a03", "#7c6f64"},
	})
	register("monokai", Palette{
		Background: "#272822", Foreground: "#f8f8f2", Dim: "#75715e", Border: "#3e3d32",
		Selection: "#49483e", Bookmark: "#e6db74",
		Error: "#f92672", Warn: "#e6db74", Info: "#66d9ef", Debug: "#75715e", Trace: "#3e3d32",
		Sources: [8]string{"#a6e22e", "#66d9ef", "#e6db74", "#ae81ff", "#fd971f", "#f92672", "#f92672", "#a1efe4"},
	})
	register("one-dark", Palette{
		Background: "#282c34", Foreground: "#abb2bf", Dim: "#5c6370", Border: "#3e4451",
		Selection: "#3e4451", Bookmark: "#e5c07b",
		Error: "#e06c75", Warn: "#e5c07b", Info: "#61afef", Debug: "#5c6370", Trace: "#3e4451",
		Sources: [8]string{"#98c379", "#61afef", "#e5c07b", "#c678dd", "#56b6c2", "#e06c75", "#d19a66", "#abb2bf"},
	})
	register("high-contrast", Palette{
		Background: "#000000", Foreground: "#ffffff", Dim: "#a0a0a0", Border: "#ffffff",
		Selection: "#ffff00", Bookmark: "#ffff00",
		Error: "#ff0000", Warn: "#ffff00", Info: "#00ffff", Debug: "#a0a0a0", Trace: "#606060",
		Sources: [8]string{"#00ff00", "#00ffff", "#ffff00", "#ff00ff", "#ff8000", "#ff0000", "#8080ff", "#ffffff"},
	})
}

// Names returns the 11 built-in theme names.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	return names
}

// Get looks up a theme by name, reporting ok=false for an unknown name
// so callers can fall back to DefaultName without guessing.
func Get(name string) (Theme, bool) {
	t, ok := registry[name]
	return t, ok
}

// ForLevel returns the style for a classified log line level.
func (t Theme) ForLevel(l logline.Level) lipgloss.Style {
	switch l {
	case logline.LevelTrace:
		return t.Trace
	case logline.LevelDebug:
		return t.Debug
	case logline.LevelInfo:
		return t.Info
	case logline.LevelWarn:
		return t.Warn
	case logline.LevelError:
		return t.Error
	default:
		return t.StatusBar
	}
}
