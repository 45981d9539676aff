package slotgen

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentora/RIA-SchedulingService/internal/domain"
	availabilityRepo "github.com/rentora/RIA-SchedulingService/internal/infra/storage/availability"
	"github.com/rentora/RIA-SchedulingService/pkg/types"
)

type fakeAvailabilityRepo struct {
	window *domain.AvailabilityWindow
	err    error
}

func (f *fakeAvailabilityRepo) GetByManagerAndKind(_ context.Context, _ int64, _ domain.AppointmentKind) (*domain.AvailabilityWindow, error) {
	return f.window, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func mustTime(t *testing.T, s string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return ts
}

// Понедельник
var monday = time.Date(2025, time.June, 9, 0, 0, 0, 0, time.UTC)

func windowWithBlocks(blocks ...domain.TimeBlock) *domain.AvailabilityWindow {
	return &domain.AvailabilityWindow{
		ManagerID: 1,
		Kind:      domain.KindVideoCall,
		WeeklyBlocks: domain.WeeklyBlocks{
			domain.WeekdayMonday: blocks,
		},
	}
}

func TestGenerateSlots_FullDay(t *testing.T) {
	repo := &fakeAvailabilityRepo{
		window: windowWithBlocks(domain.TimeBlock{
			Start: mustTime(t, "09:00"),
			End:   mustTime(t, "17:00"),
		}),
	}
	gen := NewGenerator(repo, nopLogger{})

	slots, err := gen.GenerateSlots(context.Background(), 1, domain.KindVideoCall, monday, 30)
	require.NoError(t, err)

	// 8 часов по 30 минут = 16 слотов
	require.Len(t, slots, 16)
	assert.Equal(t, monday.Add(9*time.Hour), slots[0].StartAt)
	assert.Equal(t, monday.Add(9*time.Hour+30*time.Minute), slots[0].EndAt)
	assert.Equal(t, monday.Add(16*time.Hour+30*time.Minute), slots[15].StartAt)
	assert.Equal(t, monday.Add(17*time.Hour), slots[15].EndAt)
}

func TestGenerateSlots_NoPartialTrailingSlot(t *testing.T) {
	repo := &fakeAvailabilityRepo{
		window: windowWithBlocks(domain.TimeBlock{
			Start: mustTime(t, "09:00"),
			End:   mustTime(t, "10:45"),
		}),
	}
	gen := NewGenerator(repo, nopLogger{})

	slots, err := gen.GenerateSlots(context.Background(), 1, domain.KindVideoCall, monday, 30)
	require.NoError(t, err)

	// 09:00-10:45 вмещает только три полных получасовых слота
	require.Len(t, slots, 3)
	assert.Equal(t, monday.Add(10*time.Hour+30*time.Minute), slots[2].EndAt)
}

func TestGenerateSlots_MultipleBlocksConcatenated(t *testing.T) {
	repo := &fakeAvailabilityRepo{
		window: windowWithBlocks(
			domain.TimeBlock{Start: mustTime(t, "09:00"), End: mustTime(t, "12:00")},
			domain.TimeBlock{Start: mustTime(t, "14:00"), End: mustTime(t, "16:00")},
		),
	}
	gen := NewGenerator(repo, nopLogger{})

	slots, err := gen.GenerateSlots(context.Background(), 1, domain.KindVideoCall, monday, 60)
	require.NoError(t, err)

	require.Len(t, slots, 5)
	// Обеденный перерыв не порождает слотов
	assert.Equal(t, monday.Add(11*time.Hour), slots[2].StartAt)
	assert.Equal(t, monday.Add(14*time.Hour), slots[3].StartAt)
}

func TestGenerateSlots_BlackoutDay(t *testing.T) {
	window := windowWithBlocks(domain.TimeBlock{
		Start: mustTime(t, "09:00"),
		End:   mustTime(t, "17:00"),
	})
	window.BlackoutRanges = []domain.BlackoutRange{
		{StartDate: monday, EndDate: monday.AddDate(0, 0, 2)},
	}
	gen := NewGenerator(&fakeAvailabilityRepo{window: window}, nopLogger{})

	slots, err := gen.GenerateSlots(context.Background(), 1, domain.KindVideoCall, monday, 30)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateSlots_NoWindowConfigured(t *testing.T) {
	gen := NewGenerator(&fakeAvailabilityRepo{err: availabilityRepo.ErrWindowNotFound}, nopLogger{})

	slots, err := gen.GenerateSlots(context.Background(), 1, domain.KindVideoCall, monday, 30)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateSlots_DayWithoutBlocks(t *testing.T) {
	// Окно есть, но на воскресенье блоки не настроены
	repo := &fakeAvailabilityRepo{
		window: windowWithBlocks(domain.TimeBlock{
			Start: mustTime(t, "09:00"),
			End:   mustTime(t, "17:00"),
		}),
	}
	gen := NewGenerator(repo, nopLogger{})

	sunday := monday.AddDate(0, 0, 6)
	slots, err := gen.GenerateSlots(context.Background(), 1, domain.KindVideoCall, sunday, 30)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateSlots_InvalidDuration(t *testing.T) {
	gen := NewGenerator(&fakeAvailabilityRepo{}, nopLogger{})

	_, err := gen.GenerateSlots(context.Background(), 1, domain.KindVideoCall, monday, 0)
	assert.ErrorIs(t, err, ErrInvalidDuration)

	_, err = gen.GenerateSlots(context.Background(), 1, domain.KindVideoCall, monday, 10000)
	assert.ErrorIs(t, err, ErrInvalidDuration)
}

func TestGenerateSlots_BlockEndingBeforeMidnight(t *testing.T) {
	repo := &fakeAvailabilityRepo{
		window: windowWithBlocks(domain.TimeBlock{
			Start: mustTime(t, "23:00"),
			End:   mustTime(t, "23:59"),
		}),
	}
	gen := NewGenerator(repo, nopLogger{})

	slots, err := gen.GenerateSlots(context.Background(), 1, domain.KindVideoCall, monday, 30)
	require.NoError(t, err)

	// Только 23:00-23:30; следующий слот вышел бы за границу блока
	require.Len(t, slots, 1)
	assert.Equal(t, monday.Add(23*time.Hour), slots[0].StartAt)
}

func TestGenerateSlots_BlockEndingAtMidnight(t *testing.T) {
	repo := &fakeAvailabilityRepo{
		window: windowWithBlocks(domain.TimeBlock{
			Start: mustTime(t, "23:00"),
			End:   mustTime(t, "24:00"),
		}),
	}
	gen := NewGenerator(repo, nopLogger{})

	slots, err := gen.GenerateSlots(context.Background(), 1, domain.KindVideoCall, monday, 30)
	require.NoError(t, err)

	// Граница "24:00" позволяет занять сутки целиком:
	// последний слот заканчивается в полночь следующего дня
	require.Len(t, slots, 2)
	assert.Equal(t, monday.Add(23*time.Hour+30*time.Minute), slots[1].StartAt)
	assert.Equal(t, monday.AddDate(0, 0, 1), slots[1].EndAt)
}
