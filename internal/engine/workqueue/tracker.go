package workqueue

import (
	"context"
	"fmt"
	"sync"

	"go.trai.ch/patchwork/internal/adapters/progress" //nolint:depguard // Discard sink default
	"go.trai.ch/patchwork/internal/core/domain"
	"go.trai.ch/patchwork/internal/core/ports"
)

// Tracker reports "<name> (<done>/<total>)" progress for a fixed batch of items.
type Tracker struct {
	sink  ports.ProgressSink
	name  string
	total int64

	mu   sync.Mutex
	done int64
}

// NewTracker creates a tracker for total items. A nil sink discards updates.
func NewTracker(sink ports.ProgressSink, name string, total int) *Tracker {
	return &Tracker{
		sink:  progress.OrDiscard(sink),
		name:  name,
		total: int64(total),
	}
}

// Completed records one finished item and reports the new count.
// Counting and reporting happen under one lock so reported counts never go backwards.
func (t *Tracker) Completed(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.done++
	t.sink.Report(ctx, fmt.Sprintf("%s (%d/%d)", t.name, t.done, t.total), domain.FromRatio(t.done, t.total))
}

// Done returns the number of completed items.
func (t *Tracker) Done() int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.done
}

// Total returns the batch size.
func (t *Tracker) Total() int64 {
	return t.total
}
