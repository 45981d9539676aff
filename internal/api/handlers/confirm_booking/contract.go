package confirm_booking

import (
	"context"

	redeemBooking "github.com/rentora/RIA-SchedulingService/internal/usecase/redeem_booking"
)

type RedeemBookingUseCase interface {
	Execute(ctx context.Context, secret string) (*redeemBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
