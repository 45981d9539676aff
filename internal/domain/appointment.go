package domain

import "time"

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusCompleted AppointmentStatus = "completed"
)

// Appointment represents a confirmed appointment between a prospect and a
// property manager. Appointments are created by redeeming a booking link and
// are never physically deleted; cancellation is a status transition.
type Appointment struct {
	ID              int64
	InquiryID       int64
	ManagerID       int64
	Kind            AppointmentKind
	ScheduledAt     time.Time
	DurationMinutes int

	// MeetingLink is set for video calls. It may hold PlaceholderMeetingLink
	// when the external provider was unavailable at booking time.
	MeetingLink     *string
	PropertyAddress *string

	Status             AppointmentStatus
	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EndAt returns the exclusive end of the appointment interval
func (a *Appointment) EndAt() time.Time {
	return a.ScheduledAt.Add(time.Duration(a.DurationMinutes) * time.Minute)
}

// IsActive returns true if the appointment still occupies its time interval
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled
}

// CanBeCancelled returns true if the appointment can be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusScheduled
}

// Overlaps reports whether the appointment interval intersects
// [start, start+duration). Half-open intervals: touching bounds do not overlap.
func (a *Appointment) Overlaps(start time.Time, durationMinutes int) bool {
	end := start.Add(time.Duration(durationMinutes) * time.Minute)
	return a.ScheduledAt.Before(end) && start.Before(a.EndAt())
}
