package models

import (
	"time"

	"github.com/rentora/RIA-SchedulingService/internal/domain"
)

// TimeBlockDTO блок времени в запросе/ответе, время строками "HH:MM"
type TimeBlockDTO struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// BlackoutRangeDTO период недоступности, даты строками "YYYY-MM-DD"
// Границы включительные, целыми днями
type BlackoutRangeDTO struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// SetAvailabilityRequest запрос на установку окна доступности
// Окно заменяется целиком, частичное обновление не поддерживается
type SetAvailabilityRequest struct {
	ManagerID      int64
	Kind           string
	WeeklyBlocks   map[string][]TimeBlockDTO
	BlackoutRanges []BlackoutRangeDTO
}

// AvailabilityResponse ответ с окном доступности
type AvailabilityResponse struct {
	ManagerID      int64                     `json:"managerId"`
	Kind           string                    `json:"kind"`
	WeeklyBlocks   map[string][]TimeBlockDTO `json:"weeklyBlocks"`
	BlackoutRanges []BlackoutRangeDTO        `json:"blackoutRanges"`
	UpdatedAt      time.Time                 `json:"updatedAt"`
}

// FromDomainWindow конвертирует доменную модель в DTO
func FromDomainWindow(w *domain.AvailabilityWindow) *AvailabilityResponse {
	if w == nil {
		return nil
	}

	weekly := make(map[string][]TimeBlockDTO, len(w.WeeklyBlocks))
	for day, blocks := range w.WeeklyBlocks {
		dayBlocks := make([]TimeBlockDTO, len(blocks))
		for i, b := range blocks {
			dayBlocks[i] = TimeBlockDTO{Start: b.Start.String(), End: b.End.String()}
		}
		weekly[day] = dayBlocks
	}

	blackouts := make([]BlackoutRangeDTO, len(w.BlackoutRanges))
	for i, br := range w.BlackoutRanges {
		blackouts[i] = BlackoutRangeDTO{
			StartDate: br.StartDate.Format(domain.DateFormat),
			EndDate:   br.EndDate.Format(domain.DateFormat),
		}
	}

	return &AvailabilityResponse{
		ManagerID:      w.ManagerID,
		Kind:           string(w.Kind),
		WeeklyBlocks:   weekly,
		BlackoutRanges: blackouts,
		UpdatedAt:      w.UpdatedAt,
	}
}
