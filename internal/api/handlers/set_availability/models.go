package set_availability

import (
	"github.com/rentora/RIA-SchedulingService/internal/service/availability/models"
)

// SetAvailabilityRequest HTTP request model
type SetAvailabilityRequest struct {
	WeeklyBlocks   map[string][]models.TimeBlockDTO `json:"weeklyBlocks"`
	BlackoutRanges []models.BlackoutRangeDTO        `json:"blackoutRanges,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *SetAvailabilityRequest) ToServiceRequest(managerID int64, kind string) *models.SetAvailabilityRequest {
	return &models.SetAvailabilityRequest{
		ManagerID:      managerID,
		Kind:           kind,
		WeeklyBlocks:   r.WeeklyBlocks,
		BlackoutRanges: r.BlackoutRanges,
	}
}
