package event

// End reports the first observation of the end-of-stream marker.
type End struct {
	RequestID string `json:"req_id"`
}

func (End) Kind() Kind { return KindEnd }

// PlaylistPropertyAdded reports a playlist property that is supposed
// to stay fixed for the stream lifetime appearing mid-stream.
type PlaylistPropertyAdded struct {
	Delta Delta  `json:"delta"`
	Name  string `json:"name"`
}

func (PlaylistPropertyAdded) Kind() Kind { return KindPlaylistPropertyAdded }

// PlaylistPropertyRemoved is the counterpart of PlaylistPropertyAdded.
type PlaylistPropertyRemoved struct {
	Delta Delta  `json:"delta"`
	Name  string `json:"name"`
}

func (PlaylistPropertyRemoved) Kind() Kind { return KindPlaylistPropertyRemoved }

// TargetDurationChanged reports a mid-stream EXT-X-TARGETDURATION change.
type TargetDurationChanged struct {
	Delta                    Delta  `json:"delta"`
	LastTargetDurationMillis uint64 `json:"last_target_duration_millis"`
	ThisTargetDurationMillis uint64 `json:"this_target_duration_millis"`
}

func (TargetDurationChanged) Kind() Kind { return KindTargetDurationChanged }

// ContentTypeChanged reports the Content-Type header changing between
// two fetches of the same playlist. Empty strings mean the header was
// absent on that side.
type ContentTypeChanged struct {
	Delta           Delta  `json:"delta"`
	LastContentType string `json:"last_content_type,omitempty"`
	ThisContentType string `json:"this_content_type,omitempty"`
}

func (ContentTypeChanged) Kind() Kind { return KindContentTypeChanged }

// IncorrectContentType reports the very first response not carrying
// the HLS media playlist MIME type.
type IncorrectContentType struct {
	RequestID   string `json:"req_id"`
	ContentType string `json:"content_type,omitempty"`
}

func (IncorrectContentType) Kind() Kind { return KindIncorrectContentType }

// CachedTooLong reports an Age header exceeding the playlist target
// duration, i.e. a manifest served from cache past its freshness window.
type CachedTooLong struct {
	RequestID             string `json:"req_id"`
	AgeSeconds            uint64 `json:"age"`
	TargetDurationSeconds uint64 `json:"target_duration"`
}

func (CachedTooLong) Kind() Kind { return KindCachedTooLong }

// SlowManifestResponse reports a manifest fetch that took at least one
// target duration, meaning the origin cannot keep up with live cadence.
type SlowManifestResponse struct {
	RequestID            string `json:"req_id"`
	ResponseTimeMillis   uint64 `json:"response_time_millis"`
	TargetDurationMillis uint64 `json:"target_duration_millis"`
}

func (SlowManifestResponse) Kind() Kind { return KindSlowManifestResponse }

// EndListTagRemoved reports EXT-X-ENDLIST disappearing after having
// been published; a live stream must not un-end.
type EndListTagRemoved struct {
	Delta Delta `json:"delta"`
}

func (EndListTagRemoved) Kind() Kind { return KindEndListTagRemoved }

// MSNGoneBackwards reports the media sequence number decreasing.
type MSNGoneBackwards struct {
	Delta   Delta  `json:"delta"`
	LastMSN uint64 `json:"last_msn"`
	ThisMSN uint64 `json:"this_msn"`
}

func (MSNGoneBackwards) Kind() Kind { return KindMSNGoneBackwards }

// LiveSegmentsRemoved reports segments vanishing from the live edge.
type LiveSegmentsRemoved struct {
	Delta        Delta  `json:"delta"`
	LastMSN      uint64 `json:"last_msn"`
	ThisMSN      uint64 `json:"this_msn"`
	RemovedCount uint64 `json:"removed_count"`
}

func (LiveSegmentsRemoved) Kind() Kind { return KindLiveSegmentsRemoved }

// ManifestStale reports repeated fetches without forward progress.
// The delta spans from the last exchange that did show progress to the
// current one.
type ManifestStale struct {
	Delta           Delta `json:"delta"`
	SinceLastUpdate int   `json:"since_last_update"`
}

func (ManifestStale) Kind() Kind { return KindManifestStale }

// HistoryChangedURI reports a previously published segment being
// re-published under a different URI.
type HistoryChangedURI struct {
	Delta   Delta  `json:"delta"`
	MSN     uint64 `json:"msn"`
	LastURI string `json:"last_uri"`
	ThisURI string `json:"this_uri"`
}

func (HistoryChangedURI) Kind() Kind { return KindHistoryChangedURI }

// HistoryAddedDiscontinuity reports a discontinuity marker appearing
// on a previously published segment.
type HistoryAddedDiscontinuity struct {
	Delta Delta  `json:"delta"`
	MSN   uint64 `json:"msn"`
}

func (HistoryAddedDiscontinuity) Kind() Kind { return KindHistoryAddedDiscontinuity }

// HistoryRemovedDiscontinuity reports a discontinuity marker vanishing
// from a previously published segment.
type HistoryRemovedDiscontinuity struct {
	Delta Delta  `json:"delta"`
	MSN   uint64 `json:"msn"`
}

func (HistoryRemovedDiscontinuity) Kind() Kind { return KindHistoryRemovedDiscontinuity }

// HistoryChangedDuration reports the duration of a previously
// published segment changing.
type HistoryChangedDuration struct {
	Delta              Delta  `json:"delta"`
	MSN                uint64 `json:"msn"`
	LastDurationMillis uint64 `json:"last_duration_millis"`
	ThisDurationMillis uint64 `json:"this_duration_millis"`
}

func (HistoryChangedDuration) Kind() Kind { return KindHistoryChangedDuration }

// HistoryChangedByteRange reports the byte range of a previously
// published segment changing. Empty strings mean no byte range was
// attached on that side.
type HistoryChangedByteRange struct {
	Delta         Delta  `json:"delta"`
	MSN           uint64 `json:"msn"`
	LastByteRange string `json:"last_byterange,omitempty"`
	ThisByteRange string `json:"this_byterange,omitempty"`
}

func (HistoryChangedByteRange) Kind() Kind { return KindHistoryChangedByteRange }

// HTTPErrorStatus reports a playlist fetch answered with a non-success
// status code.
type HTTPErrorStatus struct {
	RequestID  string `json:"req_id"`
	StatusCode int    `json:"status_code"`
}

func (HTTPErrorStatus) Kind() Kind { return KindHTTPErrorStatus }

// HTTPTimeout reports a playlist fetch that timed out.
type HTTPTimeout struct {
	RequestID string `json:"req_id"`
}

func (HTTPTimeout) Kind() Kind { return KindHTTPTimeout }

// LastModifiedInFuture reports a Last-Modified header ahead of the
// response Date header. The checker computes the condition but does
// not emit it; the variant is kept so the emission can be switched on
// without a vocabulary change.
type LastModifiedInFuture struct {
	RequestID    string `json:"req_id"`
	Date         string `json:"date"`
	LastModified string `json:"last_modified"`
}

func (LastModifiedInFuture) Kind() Kind { return KindLastModifiedInFuture }

// HistoryPairingBroken reports a defect in the checker's own skip
// arithmetic: two segments paired for comparison did not carry the
// same absolute number. It is not a stream finding.
type HistoryPairingBroken struct {
	Delta      Delta  `json:"delta"`
	LastNumber uint64 `json:"last_number"`
	ThisNumber uint64 `json:"this_number"`
}

func (HistoryPairingBroken) Kind() Kind { return KindHistoryPairingBroken }
