package check

import (
	"net/http"
	"strconv"
	"time"

	"github.com/shohag-mia/strck/pkg/event"
)

func (c *MediaPlaylistCheck) checkHeaders(this *playlistInfo) {
	if this.exch == nil || this.exch.Header == nil {
		return
	}
	h := this.exch.Header
	if age, ok := headerUint(h, "Age"); ok {
		// Compare in whole seconds; converting age to a Duration
		// would overflow for large header values.
		if age > uint64(this.playlist.TargetDuration/time.Second) {
			c.log.Warning(event.CachedTooLong{
				RequestID:             this.exch.RequestID,
				AgeSeconds:            age,
				TargetDurationSeconds: uint64(this.playlist.TargetDuration / time.Second),
			})
		}
	}
	// A Last-Modified ahead of Date is a cache causality anomaly.
	// Reporting it is disabled pending a decision on false-positive
	// rates; event.LastModifiedInFuture stays in the vocabulary.
	_ = lastModifiedAfterDate(h)
}

// lastModifiedAfterDate reports whether both Date and Last-Modified
// are present, parse as HTTP dates, and Last-Modified is the later of
// the two.
func lastModifiedAfterDate(h http.Header) bool {
	date, lastModified := h.Get("Date"), h.Get("Last-Modified")
	if date == "" || lastModified == "" {
		return false
	}
	dateTime, err := http.ParseTime(date)
	if err != nil {
		return false
	}
	lastModifiedTime, err := http.ParseTime(lastModified)
	if err != nil {
		return false
	}
	return lastModifiedTime.After(dateTime)
}

func headerUint(h http.Header, key string) (uint64, bool) {
	raw := h.Get(key)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
