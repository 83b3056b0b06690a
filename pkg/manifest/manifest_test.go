package manifest

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLastSegment(t *testing.T) {
	pl := &MediaPlaylist{
		TargetDuration: 6 * time.Second,
		MediaSequence:  100,
		Segments: []Segment{
			{Number: 100, URI: "a.ts"},
			{Number: 101, URI: "b.ts"},
		},
	}

	seg, ok := pl.LastSegment()
	require.True(t, ok)
	assert.Equal(t, uint64(101), seg.Number)
	assert.Equal(t, "b.ts", seg.URI)
}

func TestLastSegmentEmpty(t *testing.T) {
	pl := &MediaPlaylist{}

	_, ok := pl.LastSegment()
	assert.False(t, ok)
}

func TestNewExchange(t *testing.T) {
	a := NewExchange(200, http.Header{})
	b := NewExchange(200, http.Header{})

	assert.NotEmpty(t, a.RequestID)
	assert.NotEqual(t, a.RequestID, b.RequestID)
	assert.Equal(t, 200, a.StatusCode)
}

func TestContentType(t *testing.T) {
	tests := []struct {
		name   string
		exch   *Exchange
		want   string
		wantOK bool
	}{
		{
			name:   "present",
			exch:   NewExchange(200, http.Header{"Content-Type": []string{"application/vnd.apple.mpegurl"}}),
			want:   "application/vnd.apple.mpegurl",
			wantOK: true,
		},
		{
			name: "absent",
			exch: NewExchange(200, http.Header{}),
		},
		{
			name: "nil header",
			exch: NewExchange(504, nil),
		},
		{
			name: "nil exchange",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.exch.ContentType()
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}
