package meetlink

import "time"

// CreateMeetingRequest запрос на создание видеовстречи у внешнего провайдера
type CreateMeetingRequest struct {
	Topic           string    `json:"topic"`
	StartAt         time.Time `json:"start_at"`
	DurationMinutes int       `json:"duration_minutes"`
}

// Meeting созданная видеовстреча
type Meeting struct {
	ID      string `json:"id"`
	JoinURL string `json:"join_url"`
}

// ErrorResponse модель ошибки от провайдера
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
