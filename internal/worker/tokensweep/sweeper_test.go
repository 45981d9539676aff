package tokensweep

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeSweeper struct {
	calls atomic.Int64
}

func (f *fakeSweeper) SweepExpired(_ context.Context) (int64, error) {
	f.calls.Add(1)
	return 1, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestWorker_SweepsPeriodically(t *testing.T) {
	sweeper := &fakeSweeper{}
	worker := NewWorker(sweeper, 10*time.Millisecond, time.Second, nopLogger{})

	worker.Start()
	time.Sleep(100 * time.Millisecond)
	worker.Stop()

	assert.Greater(t, sweeper.calls.Load(), int64(2))
}

func TestWorker_StopPreventsFurtherSweeps(t *testing.T) {
	sweeper := &fakeSweeper{}
	worker := NewWorker(sweeper, 10*time.Millisecond, time.Second, nopLogger{})

	worker.Start()
	time.Sleep(35 * time.Millisecond)
	worker.Stop()

	after := sweeper.calls.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, after, sweeper.calls.Load())
}
