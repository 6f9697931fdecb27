// Package progress implements the status sink that work items report into.
package progress

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"go.trai.ch/patchwork/internal/core/domain"
	"go.trai.ch/patchwork/internal/core/ports"
)

// DefaultBufferSize is the per-subscriber event buffer.
const DefaultBufferSize = 256

var _ ports.ProgressSink = (*Broker)(nil)

// Broker fans status events out to subscribers. Publishing never blocks:
// when a subscriber's buffer is full the event is dropped for that subscriber.
type Broker struct {
	bufferSize int

	mu     sync.RWMutex
	subs   []*subscription
	closed bool

	wg      sync.WaitGroup
	dropped atomic.Int64
}

type subscription struct {
	sub ports.ProgressSubscriber
	ch  chan domain.StatusEvent
	err error
}

// Option configures a Broker.
type Option func(*Broker)

// WithBufferSize sets the per-subscriber buffer size.
func WithBufferSize(n int) Option {
	return func(b *Broker) {
		if n > 0 {
			b.bufferSize = n
		}
	}
}

// NewBroker creates a Broker without subscribers.
func NewBroker(opts ...Option) *Broker {
	b := &Broker{bufferSize: DefaultBufferSize}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Subscribe registers sub. Events are delivered to it sequentially on its own goroutine.
// Subscribing to a closed broker closes sub immediately.
func (b *Broker) Subscribe(sub ports.ProgressSubscriber) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		_ = sub.Close()
		return
	}

	s := &subscription{sub: sub, ch: make(chan domain.StatusEvent, b.bufferSize)}
	b.subs = append(b.subs, s)

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		for ev := range s.ch {
			sub.Handle(ev)
		}
		s.err = sub.Close()
	}()
}

// Report publishes a ProgressUpdate tagged with the worker ctx runs on.
func (b *Broker) Report(ctx context.Context, msg string, fraction domain.Percent) {
	b.publish(domain.ProgressUpdate{
		Worker:   domain.WorkerFromContext(ctx),
		Message:  msg,
		Fraction: fraction,
	})
}

// Log publishes a LogLine.
func (b *Broker) Log(_ context.Context, level domain.LogLevel, text string) {
	b.publish(domain.LogLine{Level: level, Text: text})
}

// Error publishes an ErrorEvent.
func (b *Broker) Error(_ context.Context, err error, msg string) {
	b.publish(domain.ErrorEvent{Err: err, Message: msg})
}

// Dropped returns the number of events discarded because a subscriber was behind.
func (b *Broker) Dropped() int64 {
	return b.dropped.Load()
}

// Close stops delivery, waits for subscribers to drain and closes them.
// It is safe to call more than once.
func (b *Broker) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	for _, s := range b.subs {
		close(s.ch)
	}
	b.mu.Unlock()

	b.wg.Wait()

	var errs error
	for _, s := range b.subs {
		errs = errors.Join(errs, s.err)
	}
	return errs
}

func (b *Broker) publish(ev domain.StatusEvent) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return
	}

	for _, s := range b.subs {
		select {
		case s.ch <- ev:
		default:
			b.dropped.Add(1)
		}
	}
}
