package conflictguard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentora/RIA-SchedulingService/internal/domain"
)

type fakeLedger struct {
	overlapping []*domain.Appointment
	err         error
}

func (f *fakeLedger) FindOverlapping(_ context.Context, _ int64, _ time.Time, _ int) ([]*domain.Appointment, error) {
	return f.overlapping, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestIsBookable_FreeInterval(t *testing.T) {
	guard := NewGuard(&fakeLedger{}, nopLogger{})

	bookable, err := guard.IsBookable(context.Background(), 1, time.Now(), 30)
	require.NoError(t, err)
	assert.True(t, bookable)
}

func TestIsBookable_Occupied(t *testing.T) {
	guard := NewGuard(&fakeLedger{
		overlapping: []*domain.Appointment{{ID: 1, Status: domain.StatusScheduled}},
	}, nopLogger{})

	bookable, err := guard.IsBookable(context.Background(), 1, time.Now(), 30)
	require.NoError(t, err)
	assert.False(t, bookable)
}

func TestIsBookable_LedgerError(t *testing.T) {
	guard := NewGuard(&fakeLedger{err: errors.New("connection refused")}, nopLogger{})

	_, err := guard.IsBookable(context.Background(), 1, time.Now(), 30)
	assert.ErrorIs(t, err, ErrInternal)
}
