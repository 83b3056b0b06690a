// Package timeline tracks the sliding window of segments currently
// relevant to one monitored stream. Presence bookkeeping is done with
// SeqSet, which stores long contiguous runs of sequence numbers in
// memory proportional to the number of gaps rather than the number of
// values.
package timeline

import (
	"iter"
	"math"
	"sort"
)

// maxSpanCount bounds the length of a single span. Inserting next to a
// full span starts a new one instead of growing it, so two spans may
// touch exactly when the span on either side of the join is full.
const maxSpanCount = math.MaxUint16

// span is one contiguous run of sequence numbers, [start, start+count).
// count is never zero.
type span struct {
	start uint64
	count uint16
}

func (s span) end() uint64 {
	return s.start + uint64(s.count)
}

// SeqSet is a set of non-negative sequence numbers held as sorted,
// non-overlapping spans. The zero value is an empty set.
type SeqSet struct {
	spans []span
}

// Insert adds v to the set. Inserting a present value is a no-op.
func (s *SeqSet) Insert(v uint64) {
	// First span whose end is past v; v can only live there or in
	// the gap before it.
	i := sort.Search(len(s.spans), func(i int) bool {
		return s.spans[i].end() > v
	})
	if i < len(s.spans) && s.spans[i].start <= v {
		return
	}

	extendedLeft := false
	if i > 0 {
		left := &s.spans[i-1]
		if left.end() == v && left.count < maxSpanCount {
			left.count++
			extendedLeft = true
		}
	}
	if i < len(s.spans) {
		right := &s.spans[i]
		if extendedLeft {
			s.mergeAt(i - 1)
			return
		}
		if right.start == v+1 && right.count < maxSpanCount {
			right.start = v
			right.count++
			return
		}
	}
	if extendedLeft {
		return
	}

	s.spans = append(s.spans, span{})
	copy(s.spans[i+1:], s.spans[i:])
	s.spans[i] = span{start: v, count: 1}
}

// mergeAt folds spans[i+1] into spans[i] when they touch and the
// combined run still fits the span bound. Runs that would exceed the
// bound stay split.
func (s *SeqSet) mergeAt(i int) {
	if i+1 >= len(s.spans) {
		return
	}
	a, b := s.spans[i], s.spans[i+1]
	if a.end() != b.start {
		return
	}
	total := uint64(a.count) + uint64(b.count)
	if total > maxSpanCount {
		return
	}
	s.spans[i].count = uint16(total)
	s.spans = append(s.spans[:i+1], s.spans[i+2:]...)
}

// Contains reports whether v is in the set.
func (s *SeqSet) Contains(v uint64) bool {
	i := sort.Search(len(s.spans), func(i int) bool {
		return s.spans[i].end() > v
	})
	return i < len(s.spans) && s.spans[i].start <= v
}

// RemoveBelow drops every value less than cutoff, trimming the span
// that straddles it.
func (s *SeqSet) RemoveBelow(cutoff uint64) {
	i := sort.Search(len(s.spans), func(i int) bool {
		return s.spans[i].end() > cutoff
	})
	s.spans = s.spans[i:]
	if len(s.spans) > 0 && s.spans[0].start < cutoff {
		trimmed := cutoff - s.spans[0].start
		s.spans[0].start = cutoff
		s.spans[0].count -= uint16(trimmed)
	}
}

// Len returns the number of values in the set.
func (s *SeqSet) Len() int {
	n := 0
	for _, sp := range s.spans {
		n += int(sp.count)
	}
	return n
}

// Values yields the contained sequence numbers in ascending order,
// lazily.
func (s *SeqSet) Values() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for _, sp := range s.spans {
			for v := sp.start; v < sp.end(); v++ {
				if !yield(v) {
					return
				}
			}
		}
	}
}
