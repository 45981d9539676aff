package redeem_booking

import (
	"time"

	"github.com/rentora/RIA-SchedulingService/internal/domain"
)

// Response модель результата подтверждения брони
type Response struct {
	AppointmentID   int64
	InquiryID       int64
	ManagerID       int64
	Kind            domain.AppointmentKind
	ScheduledAt     time.Time
	DurationMinutes int
	MeetingLink     *string
	PropertyAddress *string
}
