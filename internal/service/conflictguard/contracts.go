package conflictguard

import (
	"context"
	"time"

	"github.com/rentora/RIA-SchedulingService/internal/domain"
)

// AppointmentLedger интерфейс реестра встреч
type AppointmentLedger interface {
	FindOverlapping(ctx context.Context, managerID int64, start time.Time, durationMinutes int) ([]*domain.Appointment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
