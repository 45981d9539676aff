package get_booking_info

import (
	"context"

	"github.com/rentora/RIA-SchedulingService/internal/domain"
)

type TokenService interface {
	Validate(ctx context.Context, secret string) (*domain.Token, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
