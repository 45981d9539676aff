package get_availability

import (
	"context"

	"github.com/rentora/RIA-SchedulingService/internal/service/availability/models"
)

type AvailabilityService interface {
	GetAvailability(ctx context.Context, managerID int64, kind string) (*models.AvailabilityResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
