// Package manifest holds the structured form of a fetched HLS media
// playlist, as consumed by the conformance checker. Parsing raw
// manifest text into this shape is the caller's job; see the ashls
// subpackage for a ready-made bridge.
package manifest

import "time"

// MediaPlaylist is one decoded media playlist snapshot.
type MediaPlaylist struct {
	// TargetDuration is the EXT-X-TARGETDURATION value.
	TargetDuration time.Duration

	// MediaSequence is the sequence number of the first listed
	// segment (EXT-X-MEDIA-SEQUENCE).
	MediaSequence uint64

	// HasEndList is true when EXT-X-ENDLIST is present.
	HasEndList bool

	// HasIFramesOnly is true when EXT-X-I-FRAMES-ONLY is present.
	HasIFramesOnly bool

	// HasIndependentSegments is true when
	// EXT-X-INDEPENDENT-SEGMENTS is present.
	HasIndependentSegments bool

	// Segments lists the published segments in playlist order.
	// Segment numbers are absolute: Segments[i].Number must equal
	// MediaSequence+i.
	Segments []Segment
}

// LastSegment returns the final listed segment. ok is false for an
// empty playlist.
func (p *MediaPlaylist) LastSegment() (seg Segment, ok bool) {
	if len(p.Segments) == 0 {
		return Segment{}, false
	}
	return p.Segments[len(p.Segments)-1], true
}

// Segment is one media segment entry.
type Segment struct {
	// Number is the absolute media sequence number of this segment.
	Number uint64

	// URI locates the segment media, as written in the playlist.
	URI string

	// Discontinuity is true when the segment is preceded by
	// EXT-X-DISCONTINUITY.
	Discontinuity bool

	// Duration is the EXTINF duration.
	Duration time.Duration

	// ByteRange is the EXT-X-BYTERANGE value in its "length@offset"
	// string form. Empty means the segment has no byte range, which
	// is itself a comparable value.
	ByteRange string
}
