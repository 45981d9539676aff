package offer_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/rentora/RIA-SchedulingService/internal/domain"
)

// UseCase use case подготовки предложений слотов для заявки на аренду
type UseCase struct {
	slotGenerator SlotGenerator
	conflictGuard ConflictGuard
	tokenIssuer   TokenIssuer
	defaults      Defaults
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotGenerator SlotGenerator,
	conflictGuard ConflictGuard,
	tokenIssuer TokenIssuer,
	defaults Defaults,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotGenerator: slotGenerator,
		conflictGuard: conflictGuard,
		tokenIssuer:   tokenIssuer,
		defaults:      defaults,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case подготовки предложений
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("OfferSlots: inquiry=%d, manager=%d, kind=%s",
		req.InquiryID, req.ManagerID, req.Kind)

	// 1. Подстановка deployment-дефолтов и валидация входных данных
	applyDefaults(req, uc.defaults)
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("OfferSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Собираем свободные кандидатные слоты по дням окна просмотра.
	// Собираем с запасом, чтобы часть предложений пережила гонку за слот
	collectLimit := req.MinSlotsToOffer * domain.OfferOverCollectFactor
	candidates, err := uc.collectBookableSlots(ctx, req, now, collectLimit)
	if err != nil {
		return nil, err
	}

	// 4. Пустой результат - отдельная ошибка, менеджеру нужно расширить окна
	if len(candidates) == 0 {
		uc.logger.Warn("OfferSlots: no availability for manager=%d, kind=%s in %d days",
			req.ManagerID, req.Kind, req.DaysAhead)
		return nil, ErrNoAvailability
	}

	// 5. Выпускаем одноразовый booking-токен на каждый предложенный слот.
	// Срок жизни ссылок в ответе - из фактического срока токенов: сервис
	// токенов ставит expiresAt по своим часам, второе чтение часов здесь
	// могло бы разойтись с ним на границе суток
	var linkExpiresAt time.Time
	offered := make([]OfferedSlot, 0, len(candidates))
	for _, candidate := range candidates {
		binding := domain.SlotBinding{
			ManagerID:       req.ManagerID,
			Kind:            req.Kind,
			StartAt:         candidate.StartAt,
			DurationMinutes: candidate.DurationMinutes(),
			PropertyAddress: req.PropertyAddress,
		}

		token, err := uc.tokenIssuer.IssueBooking(ctx, req.InquiryID, binding, req.LinkTTLDays)
		if err != nil {
			uc.logger.Error("OfferSlots: failed to issue token for inquiry=%d, slot=%s: %v",
				req.InquiryID, candidate.StartAt.Format(time.RFC3339), err)
			return nil, fmt.Errorf("%w: failed to issue booking token: %v", ErrInternal, err)
		}

		linkExpiresAt = token.ExpiresAt
		offered = append(offered, OfferedSlot{
			StartAt:      candidate.StartAt,
			EndAt:        candidate.EndAt,
			RedeemSecret: token.Secret,
		})
	}

	uc.logger.Info("OfferSlots: offered %d slots for inquiry=%d, manager=%d",
		len(offered), req.InquiryID, req.ManagerID)

	return &Response{
		Slots:         offered,
		LinkExpiresAt: linkExpiresAt,
	}, nil
}

// collectBookableSlots проходит по дням окна просмотра и собирает слоты,
// прошедшие проверку на конфликт, пока не наберется limit штук
func (uc *UseCase) collectBookableSlots(ctx context.Context, req *Request, now time.Time, limit int) ([]domain.CandidateSlot, error) {
	collected := make([]domain.CandidateSlot, 0, limit)

	for dayOffset := 0; dayOffset < req.DaysAhead && len(collected) < limit; dayOffset++ {
		date := now.AddDate(0, 0, dayOffset)

		slots, err := uc.slotGenerator.GenerateSlots(ctx, req.ManagerID, req.Kind, date, req.SlotDurationMinutes)
		if err != nil {
			uc.logger.Error("OfferSlots: failed to generate slots for manager=%d, date=%s: %v",
				req.ManagerID, date.Format(domain.DateFormat), err)
			return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
		}

		for _, slot := range slots {
			if len(collected) >= limit {
				break
			}
			// Слоты сегодняшнего дня, начало которых уже прошло, не предлагаем
			if !slot.StartAt.After(now) {
				continue
			}

			bookable, err := uc.conflictGuard.IsBookable(ctx, req.ManagerID, slot.StartAt, slot.DurationMinutes())
			if err != nil {
				uc.logger.Error("OfferSlots: conflict check failed for manager=%d, start=%s: %v",
					req.ManagerID, slot.StartAt.Format(time.RFC3339), err)
				return nil, fmt.Errorf("%w: failed to check slot availability: %v", ErrInternal, err)
			}
			if !bookable {
				continue
			}

			collected = append(collected, slot)
		}
	}

	return collected, nil
}
