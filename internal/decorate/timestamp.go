package decorate

import (
	"fmt"
	"regexp"
	"time"
)

// timestampPattern is one entry in the ordered list of recognized
// timestamp formats; first match wins, per spec.md §4.5.
type timestampPattern struct {
	re     *regexp.Regexp
	layout string
}

// Grounded on the same "ordered regex table, first match wins" shape as
// formatUptime in eviltik-docker-tui's formatters.go, generalized from shortening
// container uptimes to recognizing log-line timestamps.
var timestampPatterns = []timestampPattern{
	{regexp.MustCompile(`\d{4}-\d{2}-\d{2}[T ]\d{2}:\d{2}:\d{2}(?:\.\d+)?(?:Z|[+-]\d{2}:?\d{2})?`), ""},
	{regexp.MustCompile(`[A-Z][a-z]{2}\s+\d{1,2}\s+\d{2}:\d{2}:\d{2}`), "Jan _2 15:04:05"},
	{regexp.MustCompile(`\b\d{2}:\d{2}:\d{2}\b`), "15:04:05"},
}

var isoLayouts = []string{
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
}

// ExtractTimestamp finds the first recognized timestamp substring in text
// and parses it, returning the parsed time plus its [start, end) byte
// offsets in text. now is used as the reference year for formats (syslog)
// that omit one.
func ExtractTimestamp(text string, now time.Time) (t time.Time, start, end int, ok bool) {
	for i, p := range timestampPatterns {
		loc := p.re.FindStringIndex(text)
		if loc == nil {
			continue
		}
		match := text[loc[0]:loc[1]]

		var parsed time.Time
		var err error
		switch i {
		case 0: // ISO-8601 variants
			parsed, err = parseAny(match, isoLayouts)
		case 1: // syslog: no year in the string, assume current year
			parsed, err = time.Parse(p.layout, match)
			if err == nil {
				parsed = time.Date(now.Year(), parsed.Month(), parsed.Day(),
					parsed.Hour(), parsed.Minute(), parsed.Second(), 0, now.Location())
			}
		case 2: // bare HH:MM:SS: assume today
			parsed, err = time.Parse(p.layout, match)
			if err == nil {
				parsed = time.Date(now.Year(), now.Month(), now.Day(),
					parsed.Hour(), parsed.Minute(), parsed.Second(), 0, now.Location())
			}
		}
		if err != nil {
			continue
		}
		return parsed, loc[0], loc[1], true
	}
	return time.Time{}, 0, 0, false
}

func parseAny(s string, layouts []string) (time.Time, error) {
	var lastErr error
	for _, layout := range layouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// RelativeTime formats the duration between t and now as "{n}{unit} ago"
// using the closest single unit in {s, m, h, d}, floored. Negative
// durations (t in the future, e.g. clock skew) are floored to "0s ago".
func RelativeTime(t, now time.Time) string {
	d := now.Sub(t)
	if d < 0 {
		d = 0
	}

	switch {
	case d < time.Minute:
		return fmt.Sprintf("%ds ago", int(d/time.Second))
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d/time.Minute))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d/time.Hour))
	default:
		return fmt.Sprintf("%dd ago", int(d/(24*time.Hour)))
	}
}
