// Package events records emailpro activity as structured events.
package events

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Outcome is the result of a copy attempt.
type Outcome string

const (
	OutcomeCopied Outcome = "copied"
	OutcomeFailed Outcome = "failed"
)

// CopyEvent describes one copy attempt. The rendered text itself is never
// recorded, only its length.
type CopyEvent struct {
	ID         string    `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	TemplateID string    `json:"template_id"`
	Outcome    Outcome   `json:"outcome"`
	Length     int       `json:"length"`
	Unfilled   int       `json:"unfilled"`
	Error      string    `json:"error,omitempty"`
}

// Sink is the minimal interface needed to record events.
type Sink interface {
	Record(ctx context.Context, event *CopyEvent) error
}

// LogSink writes events to a zerolog logger.
type LogSink struct {
	logger zerolog.Logger
}

// NewLogSink creates a LogSink.
func NewLogSink(logger zerolog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

// Record implements Sink.
func (s *LogSink) Record(ctx context.Context, event *CopyEvent) error {
	level := zerolog.InfoLevel
	if event.Outcome == OutcomeFailed {
		level = zerolog.WarnLevel
	}
	e := s.logger.WithLevel(level).
		Str("event_id", event.ID).
		Time("at", event.Timestamp).
		Str("template_id", event.TemplateID).
		Str("outcome", string(event.Outcome)).
		Int("length", event.Length).
		Int("unfilled", event.Unfilled)
	if event.Error != "" {
		e = e.Str("error", event.Error)
	}
	e.Msg("copy")
	return nil
}

// LogCopy records a copy attempt for a template. A nil copyErr means success.
func LogCopy(ctx context.Context, sink Sink, templateID string, length, unfilled int, copyErr error) error {
	if sink == nil {
		return fmt.Errorf("event sink is required")
	}
	if templateID == "" {
		return fmt.Errorf("template id is required")
	}

	event := &CopyEvent{
		ID:         uuid.New().String(),
		Timestamp:  time.Now().UTC(),
		TemplateID: templateID,
		Outcome:    OutcomeCopied,
		Length:     length,
		Unfilled:   unfilled,
	}
	if copyErr != nil {
		event.Outcome = OutcomeFailed
		event.Error = copyErr.Error()
	}

	return sink.Record(ctx, event)
}
