package domain

import (
	"time"

	"github.com/rentora/RIA-SchedulingService/pkg/types"
)

// AppointmentKind represents the kind of appointment a prospect can book
type AppointmentKind string

const (
	KindVideoCall AppointmentKind = "video_call"
	KindTour      AppointmentKind = "tour"
)

// IsValid returns true if the kind is one of the supported appointment kinds
func (k AppointmentKind) IsValid() bool {
	return k == KindVideoCall || k == KindTour
}

// TimeBlock is a single contiguous window within a day, e.g. 09:00-17:00
type TimeBlock struct {
	Start types.TimeString
	End   types.TimeString
}

// WeeklyBlocks maps a weekday key ("monday".."sunday") to its ordered time blocks
type WeeklyBlocks map[string][]TimeBlock

// Weekday keys used in WeeklyBlocks
const (
	WeekdayMonday    = "monday"
	WeekdayTuesday   = "tuesday"
	WeekdayWednesday = "wednesday"
	WeekdayThursday  = "thursday"
	WeekdayFriday    = "friday"
	WeekdaySaturday  = "saturday"
	WeekdaySunday    = "sunday"
)

// WeekdayKeys all valid weekday keys in calendar order
var WeekdayKeys = []string{
	WeekdayMonday,
	WeekdayTuesday,
	WeekdayWednesday,
	WeekdayThursday,
	WeekdayFriday,
	WeekdaySaturday,
	WeekdaySunday,
}

// WeekdayKey converts time.Weekday into the key used in WeeklyBlocks
func WeekdayKey(d time.Weekday) string {
	switch d {
	case time.Monday:
		return WeekdayMonday
	case time.Tuesday:
		return WeekdayTuesday
	case time.Wednesday:
		return WeekdayWednesday
	case time.Thursday:
		return WeekdayThursday
	case time.Friday:
		return WeekdayFriday
	case time.Saturday:
		return WeekdaySaturday
	default:
		return WeekdaySunday
	}
}

// IsValidWeekdayKey returns true if the key is one of WeekdayKeys
func IsValidWeekdayKey(key string) bool {
	for _, k := range WeekdayKeys {
		if k == key {
			return true
		}
	}
	return false
}

// BlackoutRange is an inclusive whole-day date range during which no slots
// may be generated, regardless of weekly blocks. Only the calendar date of
// the bounds is significant.
type BlackoutRange struct {
	StartDate time.Time
	EndDate   time.Time
}

// Contains returns true if the given date falls within the range.
// Comparison is on calendar date only, both bounds inclusive.
func (r BlackoutRange) Contains(date time.Time) bool {
	d := truncateToDate(date)
	return !d.Before(truncateToDate(r.StartDate)) && !d.After(truncateToDate(r.EndDate))
}

// AvailabilityWindow is the recurring weekly availability of a manager for
// one appointment kind. Exactly one window exists per (manager, kind) pair;
// it is always replaced wholesale, never patched.
type AvailabilityWindow struct {
	ID             int64
	ManagerID      int64
	Kind           AppointmentKind
	WeeklyBlocks   WeeklyBlocks
	BlackoutRanges []BlackoutRange

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BlocksFor returns the ordered time blocks configured for the given weekday
func (w *AvailabilityWindow) BlocksFor(day time.Weekday) []TimeBlock {
	return w.WeeklyBlocks[WeekdayKey(day)]
}

// IsBlackedOut returns true if the given date falls within any blackout range
func (w *AvailabilityWindow) IsBlackedOut(date time.Time) bool {
	for _, r := range w.BlackoutRanges {
		if r.Contains(date) {
			return true
		}
	}
	return false
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
