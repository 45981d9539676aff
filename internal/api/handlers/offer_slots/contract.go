package offer_slots

import (
	"context"

	offerSlots "github.com/rentora/RIA-SchedulingService/internal/usecase/offer_slots"
)

type OfferSlotsUseCase interface {
	Execute(ctx context.Context, req *offerSlots.Request) (*offerSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
