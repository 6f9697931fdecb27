package workqueue_test

import (
	"context"
	"sync"

	"go.trai.ch/patchwork/internal/core/domain"
)

// recordingSink keeps every event in the order it was reported.
type recordingSink struct {
	mu     sync.Mutex
	events []domain.StatusEvent
}

func (s *recordingSink) Report(ctx context.Context, msg string, fraction domain.Percent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, domain.ProgressUpdate{
		Worker:   domain.WorkerFromContext(ctx),
		Message:  msg,
		Fraction: fraction,
	})
}

func (s *recordingSink) Log(_ context.Context, level domain.LogLevel, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, domain.LogLine{Level: level, Text: text})
}

func (s *recordingSink) Error(_ context.Context, err error, msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, domain.ErrorEvent{Err: err, Message: msg})
}

func (s *recordingSink) updates() []domain.ProgressUpdate {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.ProgressUpdate
	for _, ev := range s.events {
		if u, ok := ev.(domain.ProgressUpdate); ok {
			out = append(out, u)
		}
	}
	return out
}
