package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid morning time", input: "09:30"},
		{name: "midnight", input: "00:00"},
		{name: "end of day", input: "23:59"},
		{name: "end of day bound", input: "24:00"},
		{name: "missing leading zero", input: "9:30", wantErr: true},
		{name: "past end of day bound", input: "24:01", wantErr: true},
		{name: "out of range hour", input: "25:00", wantErr: true},
		{name: "garbage", input: "abc", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, ts.String())
		})
	}
}

func TestTimeString_Minutes(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)

	minutes, err := ts.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 9*60+30, minutes)
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)

	shifted, err := ts.AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, "10:15", shifted.String())
}

func TestTimeString_AddMinutes_ToEndOfDay(t *testing.T) {
	ts, err := NewTimeStringFromString("23:30")
	require.NoError(t, err)

	shifted, err := ts.AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, "24:00", shifted.String())

	minutes, err := shifted.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 24*60, minutes)
}

func TestTimeString_AddMinutes_OutOfRange(t *testing.T) {
	ts, err := NewTimeStringFromString("23:45")
	require.NoError(t, err)

	_, err = ts.AddMinutes(30)
	assert.ErrorIs(t, err, ErrMinutesOutOfRange)
}

func TestTimeString_Ordering(t *testing.T) {
	early, err := NewTimeStringFromString("09:00")
	require.NoError(t, err)
	late, err := NewTimeStringFromString("17:00")
	require.NoError(t, err)

	assert.True(t, early.IsBefore(late))
	assert.False(t, late.IsBefore(early))
	assert.True(t, late.IsAfter(early))
	assert.False(t, early.IsAfter(early))
}

func TestTimeString_OnDate(t *testing.T) {
	ts, err := NewTimeStringFromString("14:30")
	require.NoError(t, err)

	loc := time.FixedZone("MSK", 3*60*60)
	date := time.Date(2025, time.June, 9, 0, 0, 0, 0, loc)

	at, err := ts.OnDate(date)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, time.June, 9, 14, 30, 0, 0, loc), at)
	assert.Equal(t, loc, at.Location())
}

func TestTimeString_OnDate_EndOfDay(t *testing.T) {
	ts, err := NewTimeStringFromString("24:00")
	require.NoError(t, err)

	date := time.Date(2025, time.June, 9, 0, 0, 0, 0, time.UTC)

	at, err := ts.OnDate(date)
	require.NoError(t, err)

	// Конец суток - это полночь следующего дня
	assert.Equal(t, time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC), at)
}
