package domain

import (
	"math"
	"strings"
)

// LogLevel represents the severity of a log message, mirroring the standard slog levels.
type LogLevel int

const (
	// LogLevelDebug represents debug-level verbosity.
	LogLevelDebug LogLevel = -4
	// LogLevelInfo represents informational verbosity.
	LogLevelInfo LogLevel = 0
	// LogLevelWarn represents warning verbosity.
	LogLevelWarn LogLevel = 4
	// LogLevelError represents error verbosity.
	LogLevelError LogLevel = 8
)

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// ParseLogLevel converts a config string to a LogLevel, defaulting to info if unknown.
func ParseLogLevel(s string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LogLevelDebug
	case "warn", "warning":
		return LogLevelWarn
	case "error":
		return LogLevelError
	default:
		return LogLevelInfo
	}
}

// Percent is a completion fraction clamped to [0, 1].
type Percent float64

// NewPercent clamps f into [0, 1].
func NewPercent(f float64) Percent {
	switch {
	case f < 0 || math.IsNaN(f):
		return 0
	case f > 1:
		return 1
	default:
		return Percent(f)
	}
}

// FromRatio returns done/total. A total of zero is treated as one.
func FromRatio(done, total int64) Percent {
	if total <= 0 {
		total = 1
	}
	return NewPercent(float64(done) / float64(total))
}

// Float returns the fraction as a float64.
func (p Percent) Float() float64 {
	return float64(p)
}

// StatusEvent is one of ProgressUpdate, LogLine or ErrorEvent.
type StatusEvent interface {
	isStatusEvent()
}

// ProgressUpdate reports progress of the work running on one worker.
type ProgressUpdate struct {
	// Worker is the pool worker that emitted the update, or NoWorker outside the pool.
	Worker   WorkerID
	Message  string
	Fraction Percent
}

// LogLine is a free-form log message routed through the sink.
type LogLine struct {
	Level LogLevel
	Text  string
}

// ErrorEvent reports a failure that the emitter handled itself.
type ErrorEvent struct {
	Err     error
	Message string
}

func (ProgressUpdate) isStatusEvent() {}
func (LogLine) isStatusEvent()        {}
func (ErrorEvent) isStatusEvent()     {}
