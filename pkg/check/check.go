// Package check validates successive snapshots of a live HLS media
// playlist. A MediaPlaylistCheck is fed the outcome of every HTTP
// exchange the external driver performs for one stream and emits
// severity-classified events plus a media-sequence regression metric.
//
// The checker is purely computational and performs no I/O. Calls for a
// single instance must be serialized in exchange completion order; use
// one instance per monitored stream.
package check

import (
	"time"

	"github.com/shohag-mia/strck/pkg/event"
	"github.com/shohag-mia/strck/pkg/manifest"
	"github.com/shohag-mia/strck/pkg/timeline"
)

// Metric receives one regression sample per evaluated playlist update:
// zero for a healthy update, or the size of the media sequence
// regression. Implementations shared between checker instances must be
// safe for concurrent use.
type Metric interface {
	Put(v uint64)
}

// Timeline is the rolling window of segments known for the stream.
// The checker computes the correct skip/overlap subset before calling
// either method.
type Timeline interface {
	AppendNewSegments(segs []manifest.Segment)
	RemoveOlderThan(msn uint64)
}

// playlistInfo pairs one parsed playlist snapshot with the exchange
// that produced it.
type playlistInfo struct {
	playlist *manifest.MediaPlaylist
	exch     *manifest.Exchange
}

// MediaPlaylistCheck is the per-stream conformance state machine.
type MediaPlaylistCheck struct {
	log           event.Sink
	msnRegression Metric
	cfg           Config
	timeline      Timeline

	last            *playlistInfo
	sinceLastUpdate int
	lastFreshReq    *manifest.Exchange
	finalMSN        uint64
	hasFinalMSN     bool
	ended           bool
	lastFault       fault
}

// Option adjusts checker construction.
type Option func(*MediaPlaylistCheck)

// WithConfig replaces the default thresholds. cfg should have passed
// Validate.
func WithConfig(cfg Config) Option {
	return func(c *MediaPlaylistCheck) { c.cfg = cfg }
}

// WithTimeline replaces the default timeline implementation.
func WithTimeline(t Timeline) Option {
	return func(c *MediaPlaylistCheck) { c.timeline = t }
}

// New returns a checker for one stream, reporting findings to log and
// regression samples to msnRegression. A nil msnRegression discards
// samples.
func New(log event.Sink, msnRegression Metric, opts ...Option) *MediaPlaylistCheck {
	c := &MediaPlaylistCheck{
		log:           log,
		msnRegression: msnRegression,
		cfg:           DefaultConfig(),
		timeline:      timeline.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NotModified records a fetch answered with 304 Not Modified. Only the
// staleness counter advances; fault escalation is untouched.
func (c *MediaPlaylistCheck) NotModified() {
	c.sinceLastUpdate++
}

// ErrorStatus records a fetch answered with a failure status code.
func (c *MediaPlaylistCheck) ErrorStatus(exch *manifest.Exchange, statusCode int) {
	next := fault{kind: faultHTTPStatus, status: statusCode}
	c.emit(faultSeverity(c.lastFault, next), event.HTTPErrorStatus{
		RequestID:  requestID(exch),
		StatusCode: statusCode,
	})
	c.lastFault = next
}

// Timeout records a fetch that timed out.
func (c *MediaPlaylistCheck) Timeout(exch *manifest.Exchange) {
	next := fault{kind: faultTimeout}
	c.emit(faultSeverity(c.lastFault, next), event.HTTPTimeout{
		RequestID: requestID(exch),
	})
	c.lastFault = next
}

// NextPlaylist records a successful fetch that returned playlist
// content, compares it against the previous snapshot, and replaces the
// stored snapshot unconditionally. totalTime is the complete fetch
// duration including body download.
func (c *MediaPlaylistCheck) NextPlaylist(exch *manifest.Exchange, playlist *manifest.MediaPlaylist, totalTime time.Duration) {
	c.lastFault = fault{}
	this := &playlistInfo{playlist: playlist, exch: exch}
	if last := c.last; last != nil {
		c.checkInvariantProperties(last, this)
		c.checkUpdate(last, this)
	} else {
		c.checkInitialConfiguration(this)
		c.timeline.AppendNewSegments(playlist.Segments)
		// The first copy of the playlist we've seen cannot be stale.
		c.lastFreshReq = exch
	}
	c.checkHeaders(this)
	if totalTime >= playlist.TargetDuration {
		c.log.Error(event.SlowManifestResponse{
			RequestID:            requestID(exch),
			ResponseTimeMillis:   millis(totalTime),
			TargetDurationMillis: millis(playlist.TargetDuration),
		})
	}
	if playlist.HasEndList && !c.ended {
		c.log.Info(event.End{RequestID: requestID(exch)})
		// Remember that EXT-X-ENDLIST was observed so later
		// snapshots carrying it stay silent.
		c.ended = true
	}
	c.last = this
}

// checkInvariantProperties emits errors when properties that are
// supposed to be fixed for the stream lifetime change between two
// snapshots.
func (c *MediaPlaylistCheck) checkInvariantProperties(last, this *playlistInfo) {
	if last.playlist.HasIFramesOnly != this.playlist.HasIFramesOnly {
		if last.playlist.HasIFramesOnly {
			c.log.Error(event.PlaylistPropertyRemoved{
				Delta: snapshotDelta(last, this),
				Name:  "EXT-X-I-FRAMES-ONLY",
			})
		} else {
			c.log.Error(event.PlaylistPropertyAdded{
				Delta: snapshotDelta(last, this),
				Name:  "EXT-X-I-FRAMES-ONLY",
			})
		}
	}
	if last.playlist.HasIndependentSegments != this.playlist.HasIndependentSegments {
		if last.playlist.HasIndependentSegments {
			c.log.Error(event.PlaylistPropertyRemoved{
				Delta: snapshotDelta(last, this),
				Name:  "EXT-X-INDEPENDENT-SEGMENTS",
			})
		} else {
			c.log.Error(event.PlaylistPropertyAdded{
				Delta: snapshotDelta(last, this),
				Name:  "EXT-X-INDEPENDENT-SEGMENTS",
			})
		}
	}
	if last.playlist.TargetDuration != this.playlist.TargetDuration {
		c.log.Error(event.TargetDurationChanged{
			Delta:                    snapshotDelta(last, this),
			LastTargetDurationMillis: millis(last.playlist.TargetDuration),
			ThisTargetDurationMillis: millis(this.playlist.TargetDuration),
		})
	}
	lastCT, lastOK := last.exch.ContentType()
	thisCT, thisOK := this.exch.ContentType()
	if lastCT != thisCT || lastOK != thisOK {
		c.log.Warning(event.ContentTypeChanged{
			Delta:           snapshotDelta(last, this),
			LastContentType: lastCT,
			ThisContentType: thisCT,
		})
	}
}

func (c *MediaPlaylistCheck) checkUpdate(last, this *playlistInfo) {
	// Once the stream ends it doesn't make sense for it to start again.
	if last.playlist.HasEndList && !this.playlist.HasEndList {
		c.log.Warning(event.EndListTagRemoved{Delta: snapshotDelta(last, this)})
	}
	// If the MSN changes, it should only ever increase.
	if last.playlist.MediaSequence > this.playlist.MediaSequence {
		regression := last.playlist.MediaSequence - this.playlist.MediaSequence
		c.putRegression(regression)
		c.log.Error(event.MSNGoneBackwards{
			Delta:   snapshotDelta(last, this),
			LastMSN: last.playlist.MediaSequence,
			ThisMSN: this.playlist.MediaSequence,
		})
		return
	}
	c.putRegression(0)
	lastSeg, lastOK := last.playlist.LastSegment()
	thisSeg, thisOK := this.playlist.LastSegment()
	if lastOK && thisOK && lastSeg.Number > thisSeg.Number {
		removed := lastSeg.Number - thisSeg.Number
		evt := event.LiveSegmentsRemoved{
			Delta:        snapshotDelta(last, this),
			LastMSN:      lastSeg.Number,
			ThisMSN:      thisSeg.Number,
			RemovedCount: removed,
		}
		if removed > c.cfg.BenignSegmentTrim {
			c.log.Error(evt)
		} else {
			c.log.Warning(evt)
		}
		return
	}
	// The MSN values are sane; the deeper checks are meaningful.
	c.checkManifestHistoryInvariant(last, this)
	c.checkStale(this)
	c.updateTimeline(last, this)
}

func (c *MediaPlaylistCheck) checkStale(this *playlistInfo) {
	thisSeg, thisOK := this.playlist.LastSegment()
	if c.hasFinalMSN && thisOK {
		if c.finalMSN >= thisSeg.Number {
			if c.sinceLastUpdate > c.cfg.StaleWarningAfter {
				evt := event.ManifestStale{
					Delta: event.Delta{
						Before: exchangeRef(c.lastFreshReq),
						After:  exchangeRef(this.exch),
					},
					SinceLastUpdate: c.sinceLastUpdate,
				}
				if c.sinceLastUpdate > c.cfg.StaleErrorAfter {
					c.log.Error(evt)
				} else {
					c.log.Warning(evt)
				}
			}
		} else {
			c.sinceLastUpdate = 0
			c.lastFreshReq = this.exch
		}
	}
	c.sinceLastUpdate++
	if thisOK {
		c.finalMSN, c.hasFinalMSN = thisSeg.Number, true
	} else {
		c.hasFinalMSN = false
	}
}

func (c *MediaPlaylistCheck) updateTimeline(last, this *playlistInfo) {
	c.timeline.RemoveOlderThan(this.playlist.MediaSequence)
	skip := 0
	if lastSeg, ok := last.playlist.LastSegment(); ok {
		if lastSeg.Number >= this.playlist.MediaSequence {
			skip = int(1 + lastSeg.Number - this.playlist.MediaSequence)
		}
	}
	if skip > len(this.playlist.Segments) {
		skip = len(this.playlist.Segments)
	}
	c.timeline.AppendNewSegments(this.playlist.Segments[skip:])
}

func (c *MediaPlaylistCheck) checkManifestHistoryInvariant(last, this *playlistInfo) {
	// Non-negative because checkUpdate already rejected regressions.
	skip := this.playlist.MediaSequence - last.playlist.MediaSequence
	lastSegs := last.playlist.Segments
	if skip >= uint64(len(lastSegs)) {
		return
	}
	lastSegs = lastSegs[skip:]
	thisSegs := this.playlist.Segments
	n := min(len(lastSegs), len(thisSegs))
	for i := 0; i < n; i++ {
		lastSeg, thisSeg := lastSegs[i], thisSegs[i]
		if lastSeg.Number != thisSeg.Number {
			// The skip arithmetic itself is broken; comparing
			// further pairs would be meaningless.
			c.log.Error(event.HistoryPairingBroken{
				Delta:      snapshotDelta(last, this),
				LastNumber: lastSeg.Number,
				ThisNumber: thisSeg.Number,
			})
			return
		}
		c.checkSegmentInvariant(last, this, lastSeg, thisSeg)
	}
}

func (c *MediaPlaylistCheck) checkSegmentInvariant(last, this *playlistInfo, lastSeg, thisSeg manifest.Segment) {
	if lastSeg.URI != thisSeg.URI {
		c.log.Error(event.HistoryChangedURI{
			Delta:   snapshotDelta(last, this),
			MSN:     thisSeg.Number,
			LastURI: lastSeg.URI,
			ThisURI: thisSeg.URI,
		})
		// Once the identity changed, the other properties belong to
		// a different media segment.
		return
	}
	if lastSeg.Discontinuity != thisSeg.Discontinuity {
		if thisSeg.Discontinuity {
			c.log.Error(event.HistoryAddedDiscontinuity{
				Delta: snapshotDelta(last, this),
				MSN:   thisSeg.Number,
			})
		} else {
			c.log.Error(event.HistoryRemovedDiscontinuity{
				Delta: snapshotDelta(last, this),
				MSN:   thisSeg.Number,
			})
		}
	}
	if lastSeg.Duration != thisSeg.Duration {
		c.log.Error(event.HistoryChangedDuration{
			Delta:              snapshotDelta(last, this),
			MSN:                thisSeg.Number,
			LastDurationMillis: millis(lastSeg.Duration),
			ThisDurationMillis: millis(thisSeg.Duration),
		})
	}
	if lastSeg.ByteRange != thisSeg.ByteRange {
		c.log.Error(event.HistoryChangedByteRange{
			Delta:         snapshotDelta(last, this),
			MSN:           thisSeg.Number,
			LastByteRange: lastSeg.ByteRange,
			ThisByteRange: thisSeg.ByteRange,
		})
	}
}

func (c *MediaPlaylistCheck) checkInitialConfiguration(this *playlistInfo) {
	ct, ok := this.exch.ContentType()
	if !ok || ct != c.cfg.ExpectedContentType {
		c.log.Error(event.IncorrectContentType{
			RequestID:   requestID(this.exch),
			ContentType: ct,
		})
	}
}

func (c *MediaPlaylistCheck) emit(sev event.Severity, e event.Event) {
	switch sev {
	case event.SeverityError:
		c.log.Error(e)
	case event.SeverityWarning:
		c.log.Warning(e)
	default:
		c.log.Info(e)
	}
}

func (c *MediaPlaylistCheck) putRegression(v uint64) {
	if c.msnRegression != nil {
		c.msnRegression.Put(v)
	}
}

func snapshotDelta(before, after *playlistInfo) event.Delta {
	return event.Delta{
		Before: exchangeRef(before.exch),
		After:  exchangeRef(after.exch),
	}
}

func exchangeRef(e *manifest.Exchange) event.ManifestRef {
	if e == nil {
		return event.ManifestRef{}
	}
	return event.ManifestRef{RequestID: e.RequestID}
}

func requestID(e *manifest.Exchange) string {
	if e == nil {
		return ""
	}
	return e.RequestID
}

func millis(d time.Duration) uint64 {
	return uint64(d / time.Millisecond)
}
