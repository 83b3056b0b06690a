package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shohag-mia/strck/pkg/manifest"
)

func segments(nums ...uint64) []manifest.Segment {
	segs := make([]manifest.Segment, 0, len(nums))
	for _, n := range nums {
		segs = append(segs, manifest.Segment{Number: n})
	}
	return segs
}

func tracked(t *Timeline) []uint64 {
	var out []uint64
	for v := range t.Numbers() {
		out = append(out, v)
	}
	return out
}

func TestAppendAndEvict(t *testing.T) {
	tl := New()

	tl.AppendNewSegments(segments(10, 11, 12, 13, 14, 15))
	assert.Equal(t, 6, tl.Len())

	tl.RemoveOlderThan(12)
	tl.AppendNewSegments(segments(16, 17))

	assert.Equal(t, []uint64{12, 13, 14, 15, 16, 17}, tracked(tl))
	assert.False(t, tl.Contains(11))
	assert.True(t, tl.Contains(12))
	assert.True(t, tl.Contains(17))
}

func TestAppendIdempotent(t *testing.T) {
	tl := New()

	tl.AppendNewSegments(segments(10, 11, 12))
	tl.AppendNewSegments(segments(11, 12, 13))

	assert.Equal(t, []uint64{10, 11, 12, 13}, tracked(tl))
}

func TestEvictEverything(t *testing.T) {
	tl := New()

	tl.AppendNewSegments(segments(10, 11, 12))
	tl.RemoveOlderThan(100)

	assert.Equal(t, 0, tl.Len())
	assert.Empty(t, tracked(tl))
}
