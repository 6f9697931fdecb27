package progress

import (
	"context"

	"go.trai.ch/patchwork/internal/core/domain"
	"go.trai.ch/patchwork/internal/core/ports"
)

// Discard is a sink that drops every event.
var Discard ports.ProgressSink = noopSink{}

type noopSink struct{}

func (noopSink) Report(context.Context, string, domain.Percent) {}

func (noopSink) Log(context.Context, domain.LogLevel, string) {}

func (noopSink) Error(context.Context, error, string) {}

// OrDiscard returns sink, or Discard when sink is nil.
func OrDiscard(sink ports.ProgressSink) ports.ProgressSink {
	if sink == nil {
		return Discard
	}
	return sink
}
