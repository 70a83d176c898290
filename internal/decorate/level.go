package decorate

import (
	"regexp"

	"github.com/bark-log/bark/internal/logline"
)

// levelToken matches the first recognizable level token after optional
// bracketed prefixes (e.g. "[myapp] ERROR: boom" or "(worker) WARN retry"),
// case-insensitively, per spec.md §3.
var levelToken = regexp.MustCompile(`(?i)^(?:\[[^\]]*\]\s*|\([^)]*\)\s*)*(ERROR|WARN(?:ING)?|INFO|DEBUG|TRACE)\b`)

// ClassifyLevel scans the leading token of text (after stripping any
// bracketed prefixes) for a level keyword.
func ClassifyLevel(text string) (logline.Level, bool) {
	m := levelToken.FindStringSubmatch(text)
	if m == nil {
		return logline.LevelUnknown, false
	}
	switch toUpperASCII(m[1]) {
	case "ERROR":
		return logline.LevelError, true
	case "WARN", "WARNING":
		return logline.LevelWarn, true
	case "INFO":
		return logline.LevelInfo, true
	case "DEBUG":
		return logline.LevelDebug, true
	case "TRACE":
		return logline.LevelTrace, true
	default:
		return logline.LevelUnknown, false
	}
}

func toUpperASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
	}
	return string(b)
}
