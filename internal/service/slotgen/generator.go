package slotgen

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rentora/RIA-SchedulingService/internal/domain"
	availabilityRepo "github.com/rentora/RIA-SchedulingService/internal/infra/storage/availability"
)

// Generator разворачивает недельное расписание менеджера в дискретные слоты
// на конкретную дату. Детерминирован: единственное I/O - одно чтение окна
// доступности, дальше чистое вычисление
type Generator struct {
	availabilityRepo AvailabilityRepository
	logger           Logger
}

// NewGenerator создает новый генератор слотов
func NewGenerator(availabilityRepo AvailabilityRepository, logger Logger) *Generator {
	return &Generator{
		availabilityRepo: availabilityRepo,
		logger:           logger,
	}
}

// GenerateSlots возвращает упорядоченные кандидатные слоты на дату
// Отсутствующее окно доступности и дата внутри blackout-периода дают
// пустой результат, не ошибку
func (g *Generator) GenerateSlots(ctx context.Context, managerID int64, kind domain.AppointmentKind, date time.Time, slotDurationMinutes int) ([]domain.CandidateSlot, error) {
	if slotDurationMinutes < domain.MinSlotDurationMinutes || slotDurationMinutes > domain.MaxSlotDurationMinutes {
		return nil, fmt.Errorf("%w: %d minutes", ErrInvalidDuration, slotDurationMinutes)
	}

	window, err := g.availabilityRepo.GetByManagerAndKind(ctx, managerID, kind)
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrWindowNotFound) {
			return []domain.CandidateSlot{}, nil
		}
		g.logger.Error("GenerateSlots: failed to get availability window for manager=%d, kind=%s: %v", managerID, kind, err)
		return nil, fmt.Errorf("%w: failed to get availability window: %v", ErrInternal, err)
	}

	// Blackout закрывает весь календарный день независимо от недельных блоков
	if window.IsBlackedOut(date) {
		return []domain.CandidateSlot{}, nil
	}

	slots, err := expandBlocks(window.BlocksFor(date.Weekday()), date, slotDurationMinutes)
	if err != nil {
		g.logger.Error("GenerateSlots: failed to expand blocks for manager=%d, kind=%s, date=%s: %v",
			managerID, kind, date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to expand blocks: %v", ErrInternal, err)
	}

	return slots, nil
}
