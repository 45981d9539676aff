package appointments

import (
	"context"
	"time"

	"github.com/rentora/RIA-SchedulingService/internal/domain"
)

// AppointmentRepository интерфейс репозитория встреч
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	GetByManagerAndPeriod(ctx context.Context, managerID int64, from, to time.Time, includeCancelled bool) ([]*domain.Appointment, error)
	Cancel(ctx context.Context, id int64, reason string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
