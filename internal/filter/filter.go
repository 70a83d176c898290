// Package filter compiles a FilterSpec and maintains the ordered
// MatchIndex of sequence numbers currently matching it, incrementally.
//
// Grounded on peco's filter/regexp.go and matchers.go (compile-once
// matchers) and compileFilter/logLineMatchesFilter in eviltik-docker-tui's
// model.go, generalized from two special-cased code paths (container-name
// regex vs. log-line substring) into one engine; bark applies it to log
// lines only (the pickers list their candidates unfiltered).
package filter

import (
	"regexp"
	"strings"

	"github.com/bark-log/bark/internal/logline"
)

// Mode selects how FilterSpec.Text is interpreted.
type Mode int

const (
	Substring Mode = iota
	Regex
)

// Spec describes the active filter for a pane.
type Spec struct {
	Text   string
	Mode   Mode
	Active bool
}

// NewSpec builds a Spec, setting Active based on whether Text is empty.
func NewSpec(text string, mode Mode) Spec {
	return Spec{Text: text, Mode: mode, Active: text != ""}
}

// LineSource supplies the raw (ANSI-stripped) text for a seq, used by the
// engine to test matches without depending on the store package directly.
type LineSource interface {
	VisibleText(seq logline.Seq) (string, bool)
}

// Engine compiles a Spec and incrementally maintains its MatchIndex.
type Engine struct {
	spec Spec
	re   *regexp.Regexp // non-nil only when spec.Mode == Regex and it compiled
	dead bool           // regex mode with a compile error: matches nothing

	matches []logline.Seq
}

// New creates an engine for spec, immediately compiling it.
func New(spec Spec) *Engine {
	e := &Engine{}
	e.SetSpec(spec)
	return e
}

// SetSpec installs a new Spec, recompiling if Mode is Regex. The caller is
// responsible for calling Rebuild afterwards; SetSpec does not touch the
// existing MatchIndex on its own, since a spec change always implies a
// stale index.
func (e *Engine) SetSpec(spec Spec) {
	e.spec = spec
	e.re = nil
	e.dead = false

	if !spec.Active {
		return
	}
	if spec.Mode == Regex {
		re, err := regexp.Compile("(?i)" + spec.Text)
		if err != nil {
			e.dead = true
			return
		}
		e.re = re
	}
}

// Spec returns the currently installed spec.
func (e *Engine) Spec() Spec { return e.spec }

// Dead reports whether the current spec is a regex that failed to
// compile. A dead filter matches nothing until corrected.
func (e *Engine) Dead() bool { return e.dead }

// matchText reports whether text satisfies the current spec.
func (e *Engine) matchText(text string) bool {
	if !e.spec.Active {
		return true
	}
	if e.spec.Mode == Regex {
		if e.dead || e.re == nil {
			return false
		}
		return e.re.MatchString(text)
	}
	return containsFold(text, e.spec.Text)
}

// containsFold is a case-insensitive substring search that folds only the
// ASCII letters; non-ASCII bytes are compared byte-wise, per spec.md §4.4
// (strings.ToLower would over-fold non-ASCII Unicode case pairs).
func containsFold(haystack, needle string) bool {
	return strings.Contains(asciiLower(haystack), asciiLower(needle))
}

func asciiLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// MatchIndex returns the current ordered list of matching seqs. The
// returned slice must not be mutated by the caller.
func (e *Engine) MatchIndex() []logline.Seq { return e.matches }

// Rebuild recomputes the MatchIndex from scratch by scanning every
// resident record in src in ascending seq order. Cost O(n).
func (e *Engine) Rebuild(src LineSource, seqs []logline.Seq) {
	e.matches = e.matches[:0]
	e.extendSeqs(src, seqs)
}

// Extend tests each of the newly appended seqs (in ascending order) and
// appends matches to MatchIndex. Cost O(m).
func (e *Engine) Extend(src LineSource, newSeqs []logline.Seq) {
	e.extendSeqs(src, newSeqs)
}

func (e *Engine) extendSeqs(src LineSource, seqs []logline.Seq) {
	for _, seq := range seqs {
		text, ok := src.VisibleText(seq)
		if !ok {
			continue
		}
		if e.matchText(text) {
			e.matches = append(e.matches, seq)
		}
	}
}

// Trim pops matches with seq < firstSeq from the front. Cost O(k).
func (e *Engine) Trim(firstSeq logline.Seq) {
	i := 0
	for i < len(e.matches) && e.matches[i] < firstSeq {
		i++
	}
	if i > 0 {
		e.matches = append(e.matches[:0], e.matches[i:]...)
	}
}
