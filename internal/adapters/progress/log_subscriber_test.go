package progress_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/patchwork/internal/adapters/progress"
	"go.trai.ch/patchwork/internal/core/domain"
	"go.trai.ch/patchwork/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestLogSubscriber_Levels(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	sub := progress.NewLogSubscriber(log, 0)

	log.EXPECT().Debug("[worker-1] Hashing a.bin  50%")
	log.EXPECT().Debug("verbose")
	log.EXPECT().Info("hello")
	log.EXPECT().Warn("careful")
	log.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.Equal(t, "broken", err.Error())
	})

	sub.Handle(domain.ProgressUpdate{Worker: 1, Message: "Hashing a.bin", Fraction: 0.5})
	sub.Handle(domain.LogLine{Level: domain.LogLevelDebug, Text: "verbose"})
	sub.Handle(domain.LogLine{Level: domain.LogLevelInfo, Text: "hello"})
	sub.Handle(domain.LogLine{Level: domain.LogLevelWarn, Text: "careful"})
	sub.Handle(domain.LogLine{Level: domain.LogLevelError, Text: "broken"})

	assert.NoError(t, sub.Close())
}

func TestLogSubscriber_ErrorEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	sub := progress.NewLogSubscriber(log, 0)

	cause := errors.New("disk full")
	log.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.Contains(t, err.Error(), "publish failed")
	})
	log.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.Equal(t, "no cause", err.Error())
	})

	sub.Handle(domain.ErrorEvent{Err: cause, Message: "publish failed"})
	sub.Handle(domain.ErrorEvent{Message: "no cause"})
}

func TestLogSubscriber_ThrottlesProgress(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	sub := progress.NewLogSubscriber(log, progress.DefaultLogInterval)

	// Only the first of a burst passes the throttle.
	log.EXPECT().Debug(gomock.Any()).Times(1)
	for range 50 {
		sub.Handle(domain.ProgressUpdate{Message: "tick"})
	}

	// Log lines are never throttled.
	log.EXPECT().Info("kept").Times(3)
	for range 3 {
		sub.Handle(domain.LogLine{Level: domain.LogLevelInfo, Text: "kept"})
	}
}
