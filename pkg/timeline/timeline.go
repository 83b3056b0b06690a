package timeline

import (
	"iter"

	"github.com/shohag-mia/strck/pkg/manifest"
)

// Timeline is the rolling window of segments known for one stream.
// Both operations are idempotent with respect to already-tracked data;
// the caller is responsible for computing the correct non-overlapping
// subset before appending, and no validation is performed here.
type Timeline struct {
	known SeqSet
}

// New returns an empty timeline.
func New() *Timeline {
	return &Timeline{}
}

// AppendNewSegments records segs as tracked. Ordering of segs does not
// matter.
func (t *Timeline) AppendNewSegments(segs []manifest.Segment) {
	for _, seg := range segs {
		t.known.Insert(seg.Number)
	}
}

// RemoveOlderThan evicts every tracked segment whose number is below
// msn.
func (t *Timeline) RemoveOlderThan(msn uint64) {
	t.known.RemoveBelow(msn)
}

// Contains reports whether the segment numbered msn is tracked.
func (t *Timeline) Contains(msn uint64) bool {
	return t.known.Contains(msn)
}

// Len returns the number of tracked segments.
func (t *Timeline) Len() int {
	return t.known.Len()
}

// Numbers yields the tracked segment numbers in ascending order.
func (t *Timeline) Numbers() iter.Seq[uint64] {
	return t.known.Values()
}
