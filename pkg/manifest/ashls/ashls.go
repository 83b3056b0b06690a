// Package ashls bridges media playlists decoded by the
// github.com/as/hls codec into the checker's input model. Parsing is
// delegated entirely to the codec; this package only maps shapes and
// assigns absolute segment numbers.
package ashls

import (
	"io"

	"github.com/as/hls"

	"github.com/shohag-mia/strck/pkg/manifest"
)

// Decode parses one media playlist from r and maps it. It returns
// hls.ErrType when r holds a master playlist.
func Decode(r io.Reader) (*manifest.MediaPlaylist, error) {
	tags, master, err := hls.Decode(r)
	if err != nil {
		return nil, err
	}
	if master {
		return nil, hls.ErrType
	}
	var m hls.Media
	if err := m.DecodeTag(tags...); err != nil {
		return nil, err
	}
	pl := FromMedia(&m)
	// hls.Media does not carry EXT-X-I-FRAMES-ONLY; recover it from
	// the raw tag stream.
	for _, t := range tags {
		if t.Name == "EXT-X-I-FRAMES-ONLY" {
			pl.HasIFramesOnly = true
			break
		}
	}
	return pl, nil
}

// FromMedia maps an already-decoded playlist. The HasIFramesOnly flag
// is left false because hls.Media does not expose it; prefer Decode
// when that flag matters.
func FromMedia(m *hls.Media) *manifest.MediaPlaylist {
	pl := &manifest.MediaPlaylist{
		TargetDuration:         m.Target,
		MediaSequence:          uint64(m.Sequence),
		HasEndList:             m.End,
		HasIndependentSegments: m.Independent,
		Segments:               make([]manifest.Segment, 0, len(m.File)),
	}
	for i, f := range m.File {
		pl.Segments = append(pl.Segments, manifest.Segment{
			Number:        pl.MediaSequence + uint64(i),
			URI:           f.Inf.URL,
			Discontinuity: f.Discontinuous,
			Duration:      f.Inf.Duration,
			ByteRange:     f.Range.V,
		})
	}
	return pl
}
