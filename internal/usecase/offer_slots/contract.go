package offer_slots

import (
	"context"
	"time"

	"github.com/rentora/RIA-SchedulingService/internal/domain"
)

// SlotGenerator интерфейс генератора кандидатных слотов
type SlotGenerator interface {
	GenerateSlots(ctx context.Context, managerID int64, kind domain.AppointmentKind, date time.Time, slotDurationMinutes int) ([]domain.CandidateSlot, error)
}

// ConflictGuard интерфейс проверки занятости интервала
type ConflictGuard interface {
	IsBookable(ctx context.Context, managerID int64, start time.Time, durationMinutes int) (bool, error)
}

// TokenIssuer интерфейс выпуска booking-токенов
type TokenIssuer interface {
	IssueBooking(ctx context.Context, inquiryID int64, binding domain.SlotBinding, ttlDays int) (*domain.Token, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
