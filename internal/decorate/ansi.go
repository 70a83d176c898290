// Package decorate holds the pure, lazily-applied transforms over a raw
// log line: ANSI stripping/span parsing, level classification, timestamp
// extraction and relative-time formatting, single-line JSON pretty
// expansion, and search-term highlight overlays. None of it mutates the
// line store; everything here is computed on demand for the lines about
// to be rendered.
package decorate

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Attr is a bitset of SGR attributes carried by a Span.
type Attr uint32

const (
	AttrBold Attr = 1 << iota
	AttrUnderline
	AttrReverse
)

// Span is one run of runes in the ANSI-stripped text sharing the same
// foreground/background color and attribute bits. ParseANSI emits Spans
// only for styled runs; text in the default style has no Span.
type Span struct {
	Start, End int // rune offsets into the stripped text, [Start, End)
	Fg, Bg     int32
	Attrs      Attr
}

const colorDefault int32 = -1

// ParseANSI strips SGR escape sequences from raw and returns the visible
// text alongside the run-length spans describing its styling. Ported from
// peco's internal/ansi parser (run-length attribute spans over stripped
// text), adapted to rune-offset Span values so highlight overlays
// (HighlightSpans) can be expressed in the same coordinate space.
func ParseANSI(raw string) (text string, spans []Span) {
	if !strings.ContainsRune(raw, '\x1b') {
		return raw, nil
	}

	var out strings.Builder
	out.Grow(len(raw))

	curFg, curBg := colorDefault, colorDefault
	var curAttrs Attr
	spanStart := 0
	runeCount := 0

	flush := func(end int) {
		if end > spanStart && (curFg != colorDefault || curBg != colorDefault || curAttrs != 0) {
			spans = append(spans, Span{Start: spanStart, End: end, Fg: curFg, Bg: curBg, Attrs: curAttrs})
		}
		spanStart = end
	}

	i := 0
	for i < len(raw) {
		if raw[i] == '\x1b' && i+1 < len(raw) && raw[i+1] == '[' {
			j := i + 2
			for j < len(raw) && raw[j] >= 0x20 && raw[j] <= 0x3f {
				j++
			}
			if j >= len(raw) {
				break
			}
			terminator := raw[j]
			if terminator == 'm' {
				flush(runeCount)
				parseSGR(raw[i+2:j], &curFg, &curBg, &curAttrs)
			}
			i = j + 1
			continue
		}

		r, size := utf8.DecodeRuneInString(raw[i:])
		if r == utf8.RuneError && size == 1 {
			r = '?'
		}
		out.WriteRune(r)
		runeCount++
		i += size
	}
	flush(runeCount)

	return out.String(), spans
}

// StripANSI removes SGR escape sequences, returning only the visible text.
// This is the function the filter engine and search use, since matching
// always operates on ANSI-stripped text per spec.
func StripANSI(raw string) string {
	text, _ := ParseANSI(raw)
	return text
}

func parseSGR(params string, fg, bg *int32, attrs *Attr) {
	if params == "" || params == "0" {
		*fg, *bg = colorDefault, colorDefault
		*attrs = 0
		return
	}

	parts := strings.Split(params, ";")
	for i := 0; i < len(parts); i++ {
		code, err := strconv.Atoi(parts[i])
		if err != nil {
			continue
		}
		switch {
		case code == 0:
			*fg, *bg = colorDefault, colorDefault
			*attrs = 0
		case code == 1:
			*attrs |= AttrBold
		case code == 4:
			*attrs |= AttrUnderline
		case code == 7:
			*attrs |= AttrReverse
		case code >= 30 && code <= 37:
			*fg = int32(code - 30)
		case code >= 40 && code <= 47:
			*bg = int32(code - 40)
		case code == 38 && i+1 < len(parts):
			mode, _ := strconv.Atoi(parts[i+1])
			switch mode {
			case 5:
				if i+2 < len(parts) {
					n, _ := strconv.Atoi(parts[i+2])
					*fg = int32(n)
					i += 2
				}
			case 2:
				if i+4 < len(parts) {
					r, _ := strconv.Atoi(parts[i+2])
					g, _ := strconv.Atoi(parts[i+3])
					b, _ := strconv.Atoi(parts[i+4])
					*fg = int32(r)<<16 | int32(g)<<8 | int32(b)
					i += 4
				}
			default:
				i++
			}
		case code == 48 && i+1 < len(parts):
			mode, _ := strconv.Atoi(parts[i+1])
			switch mode {
			case 5:
				if i+2 < len(parts) {
					n, _ := strconv.Atoi(parts[i+2])
					*bg = int32(n)
					i += 2
				}
			case 2:
				if i+4 < len(parts) {
					r, _ := strconv.Atoi(parts[i+2])
					g, _ := strconv.Atoi(parts[i+3])
					b, _ := strconv.Atoi(parts[i+4])
					*bg = int32(r)<<16 | int32(g)<<8 | int32(b)
					i += 4
				}
			default:
				i++
			}
		case code == 39:
			*fg = colorDefault
		case code == 49:
			*bg = colorDefault
		}
	}
}

// HighlightSpans returns the [Start, End) rune ranges in text where term
// occurs (case-insensitive ASCII fold), for layering a highlight overlay
// on top of any existing ANSI styling. An empty term yields no spans.
func HighlightSpans(text, term string) []Span {
	if term == "" {
		return nil
	}
	foldedText := toUpperASCII(text)
	foldedTerm := toUpperASCII(term)

	var spans []Span
	runeOffsets := runeByteOffsets(text)
	pos := 0
	for {
		idx := strings.Index(foldedText[pos:], foldedTerm)
		if idx < 0 {
			break
		}
		byteStart := pos + idx
		byteEnd := byteStart + len(term)
		spans = append(spans, Span{
			Start: byteToRuneOffset(runeOffsets, byteStart),
			End:   byteToRuneOffset(runeOffsets, byteEnd),
		})
		pos = byteEnd
		if pos >= len(foldedText) {
			break
		}
	}
	return spans
}

// runeByteOffsets returns, for each rune index, the byte offset at which
// it starts, plus a final sentinel entry for len(text).
func runeByteOffsets(text string) []int {
	offsets := make([]int, 0, len(text)+1)
	for i := range text {
		offsets = append(offsets, i)
	}
	offsets = append(offsets, len(text))
	return offsets
}

func byteToRuneOffset(offsets []int, byteOffset int) int {
	for i, o := range offsets {
		if o == byteOffset {
			return i
		}
		if o > byteOffset {
			return i
		}
	}
	return len(offsets) - 1
}
