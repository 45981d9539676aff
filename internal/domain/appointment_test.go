package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAppointment_Overlaps(t *testing.T) {
	base := time.Date(2025, time.June, 9, 10, 0, 0, 0, time.UTC)
	appt := &Appointment{
		ScheduledAt:     base,
		DurationMinutes: 30,
		Status:          StatusScheduled,
	}

	tests := []struct {
		name     string
		start    time.Time
		duration int
		want     bool
	}{
		{name: "identical interval", start: base, duration: 30, want: true},
		{name: "starts inside", start: base.Add(15 * time.Minute), duration: 30, want: true},
		{name: "ends inside", start: base.Add(-15 * time.Minute), duration: 30, want: true},
		{name: "fully contains", start: base.Add(-15 * time.Minute), duration: 60, want: true},
		{name: "touching end does not overlap", start: base.Add(30 * time.Minute), duration: 30, want: false},
		{name: "touching start does not overlap", start: base.Add(-30 * time.Minute), duration: 30, want: false},
		{name: "disjoint", start: base.Add(2 * time.Hour), duration: 30, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, appt.Overlaps(tt.start, tt.duration))
		})
	}
}

func TestAppointment_Lifecycle(t *testing.T) {
	appt := &Appointment{Status: StatusScheduled}
	assert.True(t, appt.IsActive())
	assert.True(t, appt.CanBeCancelled())

	appt.Status = StatusCancelled
	assert.False(t, appt.IsActive())
	assert.False(t, appt.CanBeCancelled())

	appt.Status = StatusCompleted
	assert.True(t, appt.IsActive())
	assert.False(t, appt.CanBeCancelled())
}

func TestBlackoutRange_Contains(t *testing.T) {
	r := BlackoutRange{
		StartDate: time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, time.June, 12, 0, 0, 0, 0, time.UTC),
	}

	assert.True(t, r.Contains(time.Date(2025, time.June, 10, 23, 0, 0, 0, time.UTC)), "start bound inclusive")
	assert.True(t, r.Contains(time.Date(2025, time.June, 12, 0, 30, 0, 0, time.UTC)), "end bound inclusive")
	assert.True(t, r.Contains(time.Date(2025, time.June, 11, 12, 0, 0, 0, time.UTC)))
	assert.False(t, r.Contains(time.Date(2025, time.June, 9, 23, 59, 0, 0, time.UTC)))
	assert.False(t, r.Contains(time.Date(2025, time.June, 13, 0, 0, 0, 0, time.UTC)))
}

func TestToken_IsExpired(t *testing.T) {
	now := time.Date(2025, time.June, 9, 12, 0, 0, 0, time.UTC)
	slotStart := now.Add(48 * time.Hour)

	tok := &Token{
		Kind:      TokenKindBooking,
		ExpiresAt: now.Add(7 * 24 * time.Hour),
		Booking: &SlotBinding{
			StartAt:         slotStart,
			DurationMinutes: 30,
		},
	}

	assert.False(t, tok.IsExpired(now))
	assert.True(t, tok.IsExpired(tok.ExpiresAt.Add(time.Minute)), "wall clock expiry")
	assert.True(t, tok.IsExpired(slotStart), "booking token expires at slot start")
	assert.True(t, tok.IsExpired(slotStart.Add(time.Minute)))
}

func TestToken_IsExpired_QuestionnaireIgnoresSlotRule(t *testing.T) {
	now := time.Date(2025, time.June, 9, 12, 0, 0, 0, time.UTC)

	tok := &Token{
		Kind:      TokenKindQuestionnaire,
		ExpiresAt: now.Add(7 * 24 * time.Hour),
	}

	assert.False(t, tok.IsExpired(now.Add(24*time.Hour)))
	assert.True(t, tok.IsExpired(now.Add(8*24*time.Hour)))
}
