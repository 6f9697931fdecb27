package progress

import (
	"fmt"
	"time"

	"go.trai.ch/patchwork/internal/core/domain"
	"go.trai.ch/patchwork/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/time/rate"
)

// DefaultLogInterval is the minimum gap between two logged progress updates.
const DefaultLogInterval = 250 * time.Millisecond

var _ ports.ProgressSubscriber = (*LogSubscriber)(nil)

// LogSubscriber writes status events to a logger. Progress updates are
// logged at debug level and throttled; log lines and errors always pass.
type LogSubscriber struct {
	logger   ports.Logger
	throttle *rate.Sometimes
}

// NewLogSubscriber creates a LogSubscriber. A non-positive interval logs every update.
func NewLogSubscriber(logger ports.Logger, interval time.Duration) *LogSubscriber {
	s := &LogSubscriber{logger: logger}
	if interval > 0 {
		s.throttle = &rate.Sometimes{First: 1, Interval: interval}
	}
	return s
}

// Handle logs ev.
func (s *LogSubscriber) Handle(ev domain.StatusEvent) {
	switch ev := ev.(type) {
	case domain.ProgressUpdate:
		line := fmt.Sprintf("[%s] %s %3.0f%%", ev.Worker, ev.Message, ev.Fraction.Float()*100)
		if s.throttle == nil {
			s.logger.Debug(line)
			return
		}
		s.throttle.Do(func() { s.logger.Debug(line) })
	case domain.LogLine:
		switch {
		case ev.Level >= domain.LogLevelError:
			s.logger.Error(zerr.New(ev.Text))
		case ev.Level >= domain.LogLevelWarn:
			s.logger.Warn(ev.Text)
		case ev.Level >= domain.LogLevelInfo:
			s.logger.Info(ev.Text)
		default:
			s.logger.Debug(ev.Text)
		}
	case domain.ErrorEvent:
		if ev.Err == nil {
			s.logger.Error(zerr.New(ev.Message))
			return
		}
		s.logger.Error(zerr.Wrap(ev.Err, ev.Message))
	}
}

// Close does nothing; the logger outlives the subscription.
func (s *LogSubscriber) Close() error {
	return nil
}
