// Package workqueue implements the fixed-size worker pool every parallel operation runs on.
//
// Work submitted from a pool worker may wait on other work submitted to the same
// pool. While waiting, the worker takes further items from the shared queue and
// runs them inline, so nested parallel maps make progress even when every worker
// is blocked in a wait.
package workqueue

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"go.trai.ch/patchwork/internal/adapters/progress" //nolint:depguard // Discard sink default
	"go.trai.ch/patchwork/internal/core/domain"
	"go.trai.ch/patchwork/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// IdleMessage is reported by a worker that found no work for one poll interval.
const IdleMessage = "Idle"

// item is one unit of work. run is called at most once; abandon resolves the
// item's future when run never gets to, or panics.
type item struct {
	ctx     context.Context
	run     func(ctx context.Context)
	abandon func(err error)
}

// Queue is a fixed-size pool of workers draining one shared FIFO.
type Queue struct {
	workers      int
	pollInterval time.Duration
	logger       ports.Logger
	sink         ports.ProgressSink

	in       chan *item
	out      chan *item
	stop     chan struct{}
	pumpDone chan struct{}

	mu        sync.RWMutex
	closed    bool
	closeOnce sync.Once
	closeErr  error
	g         errgroup.Group

	pending atomic.Int64
}

// Option configures a Queue.
type Option func(*Queue)

// WithPollInterval sets how long a worker waits for work before reporting itself idle.
func WithPollInterval(d time.Duration) Option {
	return func(q *Queue) {
		if d > 0 {
			q.pollInterval = d
		}
	}
}

// WithLogger sets the logger used to report panicking work items.
func WithLogger(l ports.Logger) Option {
	return func(q *Queue) {
		q.logger = l
	}
}

// WithSink sets the sink workers report their idle state to.
func WithSink(s ports.ProgressSink) Option {
	return func(q *Queue) {
		q.sink = progress.OrDiscard(s)
	}
}

// New starts a pool of workers. A non-positive count means one worker per CPU.
func New(workers int, opts ...Option) *Queue {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	q := &Queue{
		workers:      workers,
		pollInterval: domain.DefaultPollInterval,
		sink:         progress.Discard,
		in:           make(chan *item),
		out:          make(chan *item),
		stop:         make(chan struct{}),
		pumpDone:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(q)
	}

	go q.pump()
	for i := 1; i <= workers; i++ {
		id := domain.WorkerID(i)
		q.g.Go(func() error {
			q.worker(id)
			return nil
		})
	}

	return q
}

// Workers returns the pool size.
func (q *Queue) Workers() int {
	return q.workers
}

// Pending returns the number of items queued but not yet taken by a worker.
func (q *Queue) Pending() int {
	return int(q.pending.Load())
}

// Enqueue schedules fn and returns a future that resolves once fn has returned.
func (q *Queue) Enqueue(ctx context.Context, fn func(ctx context.Context)) *domain.Future[struct{}] {
	return Submit(ctx, q, func(ctx context.Context) (struct{}, error) {
		fn(ctx)
		return struct{}{}, nil
	})
}

// Close stops accepting work, lets workers finish the item they are running and
// fails everything still queued with domain.ErrQueueClosed. It must not be called
// from a work item.
func (q *Queue) Close() error {
	q.closeOnce.Do(func() {
		q.mu.Lock()
		q.closed = true
		close(q.stop)
		q.mu.Unlock()

		<-q.pumpDone
		q.closeErr = q.g.Wait()
	})
	return q.closeErr
}

// Submit schedules fn on q and returns its future immediately. An error or panic
// in fn fails the future; the worker carries on with the next item.
func Submit[T any](ctx context.Context, q *Queue, fn func(ctx context.Context) (T, error)) *domain.Future[T] {
	fut := domain.NewFuture[T]()
	q.enqueue(ctx, func(ctx context.Context) {
		v, err := fn(ctx)
		fut.Resolve(v, err)
	}, func(err error) {
		fut.Fail(err)
	})
	return fut
}

// Await returns the outcome of fut. Called from a worker of q, it runs other
// queued items while the future is unresolved.
func Await[T any](ctx context.Context, q *Queue, fut *domain.Future[T]) (T, error) {
	if err := q.wait(ctx, fut.Done()); err != nil {
		var zero T
		return zero, err
	}
	return fut.Result()
}

// AwaitAll waits for every future in futs, helping like Await.
// It returns only the context error; per-future outcomes are left to the caller.
func AwaitAll[T any](ctx context.Context, q *Queue, futs []*domain.Future[T]) error {
	for _, fut := range futs {
		if err := q.wait(ctx, fut.Done()); err != nil {
			return err
		}
	}
	return nil
}

// WaitAll blocks until done is closed, helping like Await.
func WaitAll(ctx context.Context, q *Queue, done <-chan struct{}) error {
	return q.wait(ctx, done)
}

func (q *Queue) enqueue(ctx context.Context, run func(context.Context), abandon func(error)) {
	if ctx == nil {
		ctx = context.Background()
	}
	it := &item{ctx: ctx, run: run, abandon: abandon}
	if !q.push(it) {
		abandon(domain.ErrQueueClosed)
	}
}

func (q *Queue) push(it *item) bool {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		return false
	}
	q.pending.Add(1)
	q.in <- it
	return true
}

// pump moves items from in to out through an unbounded FIFO buffer.
func (q *Queue) pump() {
	defer close(q.pumpDone)

	var buf []*item
	for {
		var out chan *item
		var next *item
		if len(buf) > 0 {
			out = q.out
			next = buf[0]
		}

		select {
		case it := <-q.in:
			buf = append(buf, it)
		case out <- next:
			buf[0] = nil
			buf = buf[1:]
		case <-q.stop:
			for _, it := range buf {
				q.pending.Add(-1)
				it.abandon(domain.ErrQueueClosed)
			}
			return
		}
	}
}

func (q *Queue) worker(id domain.WorkerID) {
	ctx := domain.ContextWithWorker(context.Background(), q, id)
	idle := time.NewTimer(q.pollInterval)
	defer idle.Stop()

	for {
		select {
		case it := <-q.out:
			q.execute(id, it)
			idle.Reset(q.pollInterval)
		case <-idle.C:
			q.sink.Report(ctx, IdleMessage, 0)
		case <-q.stop:
			return
		}
	}
}

// wait blocks until done is closed. On a worker of q it keeps taking items from
// the queue in the meantime. After Close it degrades to a plain wait, since
// every queued item has been failed by then.
func (q *Queue) wait(ctx context.Context, done <-chan struct{}) error {
	helping := domain.IsWorkerOf(ctx, q)
	id := domain.WorkerFromContext(ctx)

	for {
		if !helping {
			select {
			case <-done:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		select {
		case <-done:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		case it := <-q.out:
			q.execute(id, it)
		case <-q.stop:
			helping = false
		}
	}
}

func (q *Queue) execute(id domain.WorkerID, it *item) {
	q.pending.Add(-1)

	defer func() {
		if r := recover(); r != nil {
			err := zerr.With(domain.ErrWorkItemPanicked, "panic", fmt.Sprint(r))
			err = zerr.With(err, "worker", id.String())
			if q.logger != nil {
				q.logger.Error(err)
			}
			it.abandon(err)
		}
	}()

	it.run(domain.ContextWithWorker(it.ctx, q, id))
}
