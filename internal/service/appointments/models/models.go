package models

import (
	"time"

	"github.com/rentora/RIA-SchedulingService/internal/domain"
)

// CancelAppointmentRequest запрос на отмену встречи
type CancelAppointmentRequest struct {
	ManagerID          int64
	CancellationReason string
}

// AppointmentResponse ответ с данными встречи
type AppointmentResponse struct {
	ID              int64   `json:"id"`
	InquiryID       int64   `json:"inquiryId"`
	ManagerID       int64   `json:"managerId"`
	Kind            string  `json:"kind"`
	ScheduledAt     string  `json:"scheduledAt"` // RFC 3339
	DurationMinutes int     `json:"durationMinutes"`
	MeetingLink     *string `json:"meetingLink,omitempty"`
	PropertyAddress *string `json:"propertyAddress,omitempty"`
	Status          string  `json:"status"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // RFC 3339

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком встреч
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// FromDomainAppointment конвертирует доменную модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	resp := &AppointmentResponse{
		ID:                 a.ID,
		InquiryID:          a.InquiryID,
		ManagerID:          a.ManagerID,
		Kind:               string(a.Kind),
		ScheduledAt:        a.ScheduledAt.Format(time.RFC3339),
		DurationMinutes:    a.DurationMinutes,
		MeetingLink:        a.MeetingLink,
		PropertyAddress:    a.PropertyAddress,
		Status:             string(a.Status),
		CancellationReason: a.CancellationReason,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}

	if a.CancelledAt != nil {
		cancelledStr := a.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainAppointmentList конвертирует список доменных моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
	}

	for _, a := range appointments {
		if apptResp := FromDomainAppointment(a); apptResp != nil {
			resp.Appointments = append(resp.Appointments, *apptResp)
		}
	}

	return resp
}
