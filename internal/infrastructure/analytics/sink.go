// Package analytics ships storefront events to wherever the deployment
// wants them. The default sink writes structured log lines that the log
// pipeline forwards.
package analytics

import (
	"context"

	"go.uber.org/zap"
)

// ZapSink logs every event as a structured entry.
type ZapSink struct {
	logger *zap.Logger
}

// NewZapSink creates a sink writing to the given logger
func NewZapSink(logger *zap.Logger) *ZapSink {
	return &ZapSink{logger: logger.Named("analytics")}
}

// Track records one event with its properties
func (s *ZapSink) Track(_ context.Context, event string, props map[string]any) {
	fields := make([]zap.Field, 0, len(props)+1)
	fields = append(fields, zap.String("event", event))
	for k, v := range props {
		fields = append(fields, zap.Any(k, v))
	}
	s.logger.Info("track", fields...)
}

// NopSink drops every event.
type NopSink struct{}

// Track implements the sink interface and does nothing
func (NopSink) Track(context.Context, string, map[string]any) {}
