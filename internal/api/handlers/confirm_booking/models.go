package confirm_booking

import (
	"time"

	redeemBooking "github.com/rentora/RIA-SchedulingService/internal/usecase/redeem_booking"
)

// ConfirmBookingResponse HTTP response model
type ConfirmBookingResponse struct {
	Success       bool    `json:"success"`
	AppointmentID int64   `json:"appointmentId"`
	Kind          string  `json:"kind"`
	ScheduledAt   string  `json:"scheduledAt"` // RFC 3339
	MeetingLink   *string `json:"meetingLink,omitempty"`
	Message       string  `json:"message"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *redeemBooking.Response, message string) *ConfirmBookingResponse {
	return &ConfirmBookingResponse{
		Success:       true,
		AppointmentID: resp.AppointmentID,
		Kind:          string(resp.Kind),
		ScheduledAt:   resp.ScheduledAt.Format(time.RFC3339),
		MeetingLink:   resp.MeetingLink,
		Message:       message,
	}
}
