package tokens

import (
	"context"
	"time"

	"github.com/rentora/RIA-SchedulingService/internal/domain"
)

// TokenRepository интерфейс репозитория токенов
type TokenRepository interface {
	Create(ctx context.Context, tok *domain.Token) (*domain.Token, error)
	GetBySecret(ctx context.Context, secret string) (*domain.Token, error)
	MarkUsed(ctx context.Context, secret string, usedAt time.Time) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
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
