package get_appointments

import (
	"context"
	"time"

	"github.com/rentora/RIA-SchedulingService/internal/service/appointments/models"
)

type AppointmentService interface {
	GetByManagerAndPeriod(ctx context.Context, managerID int64, from, to time.Time, includeCancelled bool) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
