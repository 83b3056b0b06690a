package check

import "github.com/shohag-mia/strck/pkg/event"

// faultKind tags the kind of the most recently reported fetch failure.
type faultKind int

const (
	faultNone faultKind = iota
	faultHTTPStatus
	faultTimeout
)

// fault is the last reported fetch failure. status is meaningful only
// for faultHTTPStatus.
type fault struct {
	kind   faultKind
	status int
}

// faultSeverity classifies a new failure against the previous one. An
// exact repeat of the previous failure downgrades to a warning so that
// a sustained outage does not produce an alert storm; any new failure
// kind reports at error severity.
func faultSeverity(prev, next fault) event.Severity {
	if prev.kind != next.kind {
		return event.SeverityError
	}
	switch next.kind {
	case faultTimeout:
		return event.SeverityWarning
	case faultHTTPStatus:
		if prev.status == next.status {
			return event.SeverityWarning
		}
	}
	return event.SeverityError
}
