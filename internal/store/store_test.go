package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bark-log/bark/internal/logline"
)

func line(raw string) logline.LogLine {
	return logline.LogLine{Raw: []byte(raw)}
}

func TestNewRejectsNonPositiveCapacity(t *testing.T) {
	_, err := New(0)
	assert.Error(t, err)
	_, err = New(-1)
	assert.Error(t, err)
}

// S1 from spec.md §8: appending 3 lines to a capacity-2 store evicts the
// oldest, leaving seq 1 and 2 resident with first_seq=1, last_seq=2.
func TestAppendEvictsOldestFIFO(t *testing.T) {
	s, err := New(2)
	require.NoError(t, err)

	s.Append(line("A"))
	s.Append(line("B"))
	s.Append(line("C"))

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, logline.Seq(1), s.FirstSeq())
	assert.Equal(t, logline.Seq(2), s.LastSeq())

	b, ok := s.Get(1)
	require.True(t, ok)
	assert.Equal(t, "B", string(b.Raw))

	c, ok := s.Get(2)
	require.True(t, ok)
	assert.Equal(t, "C", string(c.Raw))

	_, ok = s.Get(0)
	assert.False(t, ok, "evicted seq must not resolve")
}

// Invariant 1: for |S| > C, len == C, records are exactly the last C of S
// in order, with seq strictly increasing.
func TestAppendSequenceInvariant(t *testing.T) {
	const capacity = 5
	s, err := New(capacity)
	require.NoError(t, err)

	total := 17
	for i := 0; i < total; i++ {
		s.Append(line(string(rune('a' + i))))
	}

	assert.Equal(t, capacity, s.Len())
	snap := s.Snapshot()
	require.Len(t, snap, capacity)

	var prev logline.Seq
	for i, l := range snap {
		if i > 0 {
			assert.Greater(t, l.Seq, prev)
		}
		prev = l.Seq
		expected := total - capacity + i
		assert.Equal(t, string(rune('a'+expected)), string(l.Raw))
	}
}

func TestCapacityOneEveryAppendEvicts(t *testing.T) {
	s, err := New(1)
	require.NoError(t, err)

	s.Append(line("A"))
	s.Append(line("B"))

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, s.FirstSeq(), s.LastSeq())
	got, ok := s.Get(s.LastSeq())
	require.True(t, ok)
	assert.Equal(t, "B", string(got.Raw))
}

func TestGenerationBumpsOnAppend(t *testing.T) {
	s, err := New(4)
	require.NoError(t, err)

	g0 := s.Generation()
	s.Append(line("x"))
	assert.Greater(t, s.Generation(), g0)
}

func TestRangeForwardAndBackward(t *testing.T) {
	s, err := New(10)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		s.Append(line(string(rune('a' + i))))
	}

	var fwd []string
	s.Range(s.FirstSeq(), 3, Forward, func(l logline.LogLine) bool {
		fwd = append(fwd, string(l.Raw))
		return true
	})
	assert.Equal(t, []string{"a", "b", "c"}, fwd)

	var back []string
	s.Range(s.LastSeq(), 3, Backward, func(l logline.LogLine) bool {
		back = append(back, string(l.Raw))
		return true
	})
	assert.Equal(t, []string{"e", "d", "c"}, back)
}

func TestRangeOnEmptyStoreIsNoop(t *testing.T) {
	s, err := New(4)
	require.NoError(t, err)
	called := false
	s.Range(0, 10, Forward, func(logline.LogLine) bool {
		called = true
		return true
	})
	assert.False(t, called)
}
