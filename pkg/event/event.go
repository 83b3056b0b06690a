// Package event defines the vocabulary of findings produced while
// checking a live HLS media playlist, and the sink interface they are
// delivered through.
package event

// Severity classifies how seriously a finding should be treated.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

func (s Severity) String() string {
	return string(s)
}

// Kind identifies one variant of the event vocabulary. The set is
// closed: downstream consumers may switch over it exhaustively.
type Kind string

const (
	KindEnd                         Kind = "end"
	KindPlaylistPropertyAdded       Kind = "unexpected_playlist_property_addition"
	KindPlaylistPropertyRemoved     Kind = "unexpected_playlist_property_removal"
	KindTargetDurationChanged       Kind = "target_duration_changed"
	KindContentTypeChanged          Kind = "content_type_changed"
	KindIncorrectContentType        Kind = "incorrect_content_type"
	KindCachedTooLong               Kind = "cached_too_long"
	KindSlowManifestResponse        Kind = "slow_media_manifest_response"
	KindEndListTagRemoved           Kind = "end_list_tag_removed"
	KindMSNGoneBackwards            Kind = "msn_gone_backwards"
	KindLiveSegmentsRemoved         Kind = "live_segments_removed"
	KindManifestStale               Kind = "manifest_stale"
	KindHistoryChangedURI           Kind = "manifest_history_changed_uri"
	KindHistoryAddedDiscontinuity   Kind = "manifest_history_added_discontinuity"
	KindHistoryRemovedDiscontinuity Kind = "manifest_history_removed_discontinuity"
	KindHistoryChangedDuration      Kind = "manifest_history_changed_segment_duration"
	KindHistoryChangedByteRange     Kind = "manifest_history_changed_segment_byterange"
	KindHTTPErrorStatus             Kind = "http_error_status"
	KindHTTPTimeout                 Kind = "http_timeout"
	KindLastModifiedInFuture        Kind = "last_modified_in_future"
	KindHistoryPairingBroken        Kind = "history_pairing_broken"
)

// Event is one structured finding. Implementations carry only typed
// fields, never free text.
type Event interface {
	Kind() Kind
}

// ManifestRef points at one observed HTTP exchange, optionally at a
// specific line of the fetched manifest body.
type ManifestRef struct {
	RequestID string `json:"req_id"`
	Line      int    `json:"line,omitempty"`
}

// Delta pairs the two exchanges a cross-snapshot finding compared, so
// downstream tooling can pull up both responses.
type Delta struct {
	Before ManifestRef `json:"before"`
	After  ManifestRef `json:"after"`
}
