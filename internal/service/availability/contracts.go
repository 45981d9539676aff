package availability

import (
	"context"

	"github.com/rentora/RIA-SchedulingService/internal/domain"
)

// AvailabilityRepository интерфейс репозитория окон доступности
type AvailabilityRepository interface {
	Upsert(ctx context.Context, window *domain.AvailabilityWindow) (*domain.AvailabilityWindow, error)
	GetByManagerAndKind(ctx context.Context, managerID int64, kind domain.AppointmentKind) (*domain.AvailabilityWindow, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
