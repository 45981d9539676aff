package get_booking_info

import (
	"time"

	"github.com/rentora/RIA-SchedulingService/internal/domain"
)

// BookingInfoResponse данные слота для страницы подтверждения
// humanDate/humanTime дублируют машинные поля для прямого показа посетителю
type BookingInfoResponse struct {
	Kind            string  `json:"kind"`
	StartAt         string  `json:"startAt"` // RFC 3339
	EndAt           string  `json:"endAt"`   // RFC 3339
	DurationMinutes int     `json:"durationMinutes"`
	PropertyAddress *string `json:"propertyAddress,omitempty"`
	ExpiresAt       string  `json:"expiresAt"` // RFC 3339

	HumanDate string `json:"humanDate"` // "Monday, 02 January 2006"
	HumanTime string `json:"humanTime"` // "15:04"
}

// FromToken строит ответ по booking-токену
func FromToken(tok *domain.Token) *BookingInfoResponse {
	binding := tok.Booking

	return &BookingInfoResponse{
		Kind:            string(binding.Kind),
		StartAt:         binding.StartAt.Format(time.RFC3339),
		EndAt:           binding.EndAt().Format(time.RFC3339),
		DurationMinutes: binding.DurationMinutes,
		PropertyAddress: binding.PropertyAddress,
		ExpiresAt:       tok.ExpiresAt.Format(time.RFC3339),
		HumanDate:       binding.StartAt.Format("Monday, 02 January 2006"),
		HumanTime:       binding.StartAt.Format(domain.TimeFormat),
	}
}
