package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(s *SeqSet) []uint64 {
	var out []uint64
	for v := range s.Values() {
		out = append(out, v)
	}
	return out
}

func TestInsertMergesRuns(t *testing.T) {
	var s SeqSet

	for _, v := range []uint64{10, 11, 12, 20, 21, 13} {
		s.Insert(v)
	}

	assert.Equal(t, []uint64{10, 11, 12, 13, 20, 21}, collect(&s))
	assert.Len(t, s.spans, 2, "contiguous values must share a span")
}

func TestInsertBridgesGap(t *testing.T) {
	var s SeqSet

	s.Insert(10)
	s.Insert(12)
	require.Len(t, s.spans, 2)

	s.Insert(11)
	assert.Len(t, s.spans, 1, "filling the gap must merge both runs")
	assert.Equal(t, []uint64{10, 11, 12}, collect(&s))
}

func TestInsertIdempotent(t *testing.T) {
	var s SeqSet

	s.Insert(5)
	s.Insert(5)
	s.Insert(5)

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, []uint64{5}, collect(&s))
}

func TestInsertOutOfOrder(t *testing.T) {
	var s SeqSet

	for _, v := range []uint64{7, 3, 9, 4, 8} {
		s.Insert(v)
	}

	assert.Equal(t, []uint64{3, 4, 7, 8, 9}, collect(&s))
	assert.Len(t, s.spans, 2)
}

func TestContains(t *testing.T) {
	var s SeqSet

	for v := uint64(10); v < 15; v++ {
		s.Insert(v)
	}
	s.Insert(20)

	for v := uint64(10); v < 15; v++ {
		assert.True(t, s.Contains(v), "expected %d present", v)
	}
	assert.True(t, s.Contains(20))
	assert.False(t, s.Contains(9))
	assert.False(t, s.Contains(15))
	assert.False(t, s.Contains(19))
	assert.False(t, s.Contains(21))
}

func TestRemoveBelow(t *testing.T) {
	var s SeqSet

	for v := uint64(10); v < 20; v++ {
		s.Insert(v)
	}
	s.Insert(30)

	s.RemoveBelow(14)
	assert.Equal(t, []uint64{14, 15, 16, 17, 18, 19, 30}, collect(&s))

	s.RemoveBelow(25)
	assert.Equal(t, []uint64{30}, collect(&s))

	s.RemoveBelow(31)
	assert.Empty(t, collect(&s))
	assert.Equal(t, 0, s.Len())
}

func TestRemoveBelowNoop(t *testing.T) {
	var s SeqSet

	s.Insert(10)
	s.Insert(11)
	s.RemoveBelow(5)

	assert.Equal(t, []uint64{10, 11}, collect(&s))
}

func TestSpanBoundSplitsRun(t *testing.T) {
	var s SeqSet

	// Fill one span to its bound, then keep going: the run must
	// split rather than grow past 16 bits.
	for v := uint64(0); v < maxSpanCount+10; v++ {
		s.Insert(v)
	}

	require.Len(t, s.spans, 2)
	assert.Equal(t, uint16(maxSpanCount), s.spans[0].count)
	assert.Equal(t, uint64(maxSpanCount), s.spans[1].start)
	assert.Equal(t, maxSpanCount+10, s.Len())
	assert.True(t, s.Contains(maxSpanCount-1))
	assert.True(t, s.Contains(maxSpanCount))
	assert.True(t, s.Contains(maxSpanCount+9))
	assert.False(t, s.Contains(maxSpanCount+10))
}

func TestInsertBeforeFullSpan(t *testing.T) {
	var s SeqSet

	// Build a single full span {1..maxSpanCount} by prepending.
	for v := uint64(maxSpanCount); v >= 1; v-- {
		s.Insert(v)
	}
	require.Len(t, s.spans, 1)
	require.Equal(t, uint16(maxSpanCount), s.spans[0].count)

	// A full right neighbor must not grow; the new value gets its
	// own span touching it.
	s.Insert(0)
	require.Len(t, s.spans, 2)
	assert.Equal(t, span{start: 0, count: 1}, s.spans[0])
	assert.Equal(t, maxSpanCount+1, s.Len())
	assert.True(t, s.Contains(0))
	assert.True(t, s.Contains(1))
}

func TestValuesStopsEarly(t *testing.T) {
	var s SeqSet

	for v := uint64(0); v < 100; v++ {
		s.Insert(v)
	}

	n := 0
	for range s.Values() {
		n++
		if n == 5 {
			break
		}
	}
	assert.Equal(t, 5, n)
}
