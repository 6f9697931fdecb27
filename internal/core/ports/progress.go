package ports

import (
	"context"

	"go.trai.ch/patchwork/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=progress.go -destination=mocks/mock_progress.go -package=mocks

// ProgressSink receives status events from work running on the pool.
// Implementations must never block the caller.
type ProgressSink interface {
	// Report publishes a ProgressUpdate for the worker ctx is running on.
	Report(ctx context.Context, msg string, fraction domain.Percent)
	// Log publishes a LogLine.
	Log(ctx context.Context, level domain.LogLevel, text string)
	// Error publishes an ErrorEvent.
	Error(ctx context.Context, err error, msg string)
}

// ProgressSubscriber consumes status events fanned out by a sink.
type ProgressSubscriber interface {
	// Handle is called sequentially for every delivered event.
	Handle(ev domain.StatusEvent)
	// Close is called once after the last event has been delivered.
	Close() error
}
