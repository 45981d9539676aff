package redeem_booking

import (
	"context"
	"time"

	"github.com/rentora/RIA-SchedulingService/internal/domain"
	"github.com/rentora/RIA-SchedulingService/internal/integrations/meetlink"
)

// TokenService интерфейс сервиса одноразовых токенов
type TokenService interface {
	Validate(ctx context.Context, secret string) (*domain.Token, error)
	Consume(ctx context.Context, secret string) error
}

// ConflictGuard интерфейс проверки занятости интервала
type ConflictGuard interface {
	IsBookable(ctx context.Context, managerID int64, start time.Time, durationMinutes int) (bool, error)
}

// AppointmentRepository интерфейс репозитория встреч
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	UpdateMeetingLink(ctx context.Context, id int64, meetingLink string) error
}

// MeetLinkClient интерфейс клиента провайдера видеовстреч
type MeetLinkClient interface {
	CreateMeetingWithGracefulDegradation(ctx context.Context, req *meetlink.CreateMeetingRequest) (*meetlink.Meeting, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
