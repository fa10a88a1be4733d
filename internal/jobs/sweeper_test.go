package jobs

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/EconLab-ReservationService/internal/testfixtures"
)

type countingSweeper struct {
	calls atomic.Int32
	err   error
}

func (s *countingSweeper) SweepExpired(context.Context) (int, error) {
	s.calls.Add(1)
	return 1, s.err
}

func TestSessionExpiryJob_SweepsUntilStopped(t *testing.T) {
	sweeper := &countingSweeper{}
	job := NewSessionExpiryJob(sweeper, &SweeperConfig{Interval: 5 * time.Millisecond}, &testfixtures.Logger{})

	job.Start(context.Background())
	assert.Eventually(t, func() bool { return sweeper.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)

	job.Stop()
	stopped := sweeper.calls.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, stopped, sweeper.calls.Load())

	job.Stop()
}

func TestSessionExpiryJob_StopsOnContextCancel(t *testing.T) {
	sweeper := &countingSweeper{err: errors.New("store down")}
	logger := &testfixtures.Logger{}
	job := NewSessionExpiryJob(sweeper, &SweeperConfig{Interval: 5 * time.Millisecond}, logger)

	ctx, cancel := context.WithCancel(context.Background())
	job.Start(ctx)
	assert.Eventually(t, func() bool { return sweeper.calls.Load() >= 1 }, time.Second, 5*time.Millisecond)

	cancel()
	job.Stop()
}

func TestNewSessionExpiryJob_DefaultInterval(t *testing.T) {
	job := NewSessionExpiryJob(&countingSweeper{}, &SweeperConfig{}, &testfixtures.Logger{})
	assert.Equal(t, 30*time.Second, job.config.Interval)
}
