package event

import (
	"context"
	"log/slog"
)

// Sink receives findings at one of three severities. Implementations
// shared between checker instances must be safe for concurrent use.
type Sink interface {
	Info(e Event)
	Warning(e Event)
	Error(e Event)
}

// SlogSink delivers findings as structured log records.
type SlogSink struct {
	log *slog.Logger
}

// NewSlogSink returns a sink writing through log. A nil log uses
// slog.Default.
func NewSlogSink(log *slog.Logger) *SlogSink {
	if log == nil {
		log = slog.Default()
	}
	return &SlogSink{log: log}
}

func (s *SlogSink) Info(e Event)    { s.emit(slog.LevelInfo, SeverityInfo, e) }
func (s *SlogSink) Warning(e Event) { s.emit(slog.LevelWarn, SeverityWarning, e) }
func (s *SlogSink) Error(e Event)   { s.emit(slog.LevelError, SeverityError, e) }

func (s *SlogSink) emit(level slog.Level, sev Severity, e Event) {
	s.log.LogAttrs(context.Background(), level, string(e.Kind()),
		slog.String("severity", sev.String()),
		slog.Any("event", e),
	)
}

// MultiSink fans every finding out to each wrapped sink in order.
type MultiSink []Sink

func (m MultiSink) Info(e Event) {
	for _, s := range m {
		s.Info(e)
	}
}

func (m MultiSink) Warning(e Event) {
	for _, s := range m {
		s.Warning(e)
	}
}

func (m MultiSink) Error(e Event) {
	for _, s := range m {
		s.Error(e)
	}
}
