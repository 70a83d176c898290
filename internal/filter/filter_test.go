package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bark-log/bark/internal/logline"
)

// fakeSource implements LineSource over a plain slice of strings indexed
// by position, simulating a resident store.
type fakeSource struct {
	lines map[logline.Seq]string
}

func newFakeSource(lines ...string) *fakeSource {
	fs := &fakeSource{lines: make(map[logline.Seq]string)}
	for i, l := range lines {
		fs.lines[logline.Seq(i)] = l
	}
	return fs
}

func (f *fakeSource) VisibleText(seq logline.Seq) (string, bool) {
	s, ok := f.lines[seq]
	return s, ok
}

func allSeqs(n int) []logline.Seq {
	out := make([]logline.Seq, n)
	for i := range out {
		out[i] = logline.Seq(i)
	}
	return out
}

// S2 from spec.md §8.
func TestSubstringFilterMatchesCaseInsensitive(t *testing.T) {
	src := newFakeSource("info ok", "ERR boom", "warn", "error x")
	e := New(NewSpec("err", Substring))
	e.Rebuild(src, allSeqs(4))

	assert.Equal(t, []logline.Seq{1, 3}, e.MatchIndex())
}

func TestEmptyFilterMatchesAll(t *testing.T) {
	src := newFakeSource("a", "b", "c")
	e := New(NewSpec("", Substring))
	e.Rebuild(src, allSeqs(3))
	assert.Equal(t, []logline.Seq{0, 1, 2}, e.MatchIndex())
}

// Invariant 2: rebuild(S) == extend(rebuild(S[:k]), S[k:]) for every k.
func TestRebuildExtendEquivalence(t *testing.T) {
	src := newFakeSource("foo", "bar", "foobar", "baz", "foo2")
	all := allSeqs(5)

	full := New(NewSpec("foo", Substring))
	full.Rebuild(src, all)

	for k := 0; k <= len(all); k++ {
		split := New(NewSpec("foo", Substring))
		split.Rebuild(src, all[:k])
		split.Extend(src, all[k:])
		assert.Equal(t, full.MatchIndex(), split.MatchIndex(), "k=%d", k)
	}
}

// S4 from spec.md §8.
func TestInvalidRegexIsDeadUntilCorrected(t *testing.T) {
	src := newFakeSource("a[b", "plain", "c[d")
	e := New(NewSpec("[", Regex))
	require.True(t, e.Dead())

	e.Rebuild(src, allSeqs(3))
	assert.Empty(t, e.MatchIndex())

	e.SetSpec(NewSpec("[", Substring))
	e.Rebuild(src, allSeqs(3))
	assert.Equal(t, []logline.Seq{0, 2}, e.MatchIndex())
}

func TestRegexFilterAgreesWithGoRegexp(t *testing.T) {
	src := newFakeSource("req id=1", "req id=22", "noise", "req id=333")
	e := New(NewSpec(`id=\d{2,}`, Regex))
	e.Rebuild(src, allSeqs(4))
	assert.Equal(t, []logline.Seq{1, 3}, e.MatchIndex())
}

// Invariant 6: after trim, remaining match seqs are exactly those >= firstSeq.
func TestTrimDropsEvictedMatches(t *testing.T) {
	src := newFakeSource("err", "ok", "err", "err", "ok")
	e := New(NewSpec("err", Substring))
	e.Rebuild(src, allSeqs(5))
	require.Equal(t, []logline.Seq{0, 2, 3}, e.MatchIndex())

	e.Trim(2)
	assert.Equal(t, []logline.Seq{2, 3}, e.MatchIndex())

	e.Trim(4)
	assert.Empty(t, e.MatchIndex())
}

func TestNonASCIIComparedByteWise(t *testing.T) {
	// "İ" (U+0130) lowercases to "i̇" under full Unicode folding but must
	// not match plain "i" under bark's byte-wise-for-non-ASCII rule.
	src := newFakeSource("Error: İstanbul")
	e := New(NewSpec("istanbul", Substring))
	e.Rebuild(src, allSeqs(1))
	assert.Empty(t, e.MatchIndex())
}
