package domain

import (
	"context"
	"strconv"
)

// WorkerID identifies a pool worker. The zero value means "not a pool worker".
type WorkerID int

// NoWorker is the ID reported for code running outside the pool.
const NoWorker WorkerID = 0

// String returns "worker-<n>" or "main".
func (w WorkerID) String() string {
	if w == NoWorker {
		return "main"
	}
	return "worker-" + strconv.Itoa(int(w))
}

type workerKey struct{}

// workerMark binds a worker ID to the queue that owns it, so helping only
// happens on the worker's own queue.
type workerMark struct {
	id    WorkerID
	owner any
}

// ContextWithWorker marks ctx as running on worker id of the given queue.
func ContextWithWorker(ctx context.Context, owner any, id WorkerID) context.Context {
	return context.WithValue(ctx, workerKey{}, workerMark{id: id, owner: owner})
}

// WorkerFromContext returns the worker ID ctx is running on, or NoWorker.
func WorkerFromContext(ctx context.Context) WorkerID {
	if m, ok := ctx.Value(workerKey{}).(workerMark); ok {
		return m.id
	}
	return NoWorker
}

// IsWorkerOf reports whether ctx is running on a worker owned by owner.
func IsWorkerOf(ctx context.Context, owner any) bool {
	m, ok := ctx.Value(workerKey{}).(workerMark)
	return ok && m.owner == owner
}
