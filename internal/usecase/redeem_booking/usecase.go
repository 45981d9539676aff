package redeem_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/rentora/RIA-SchedulingService/internal/domain"
	"github.com/rentora/RIA-SchedulingService/internal/integrations/meetlink"
	"github.com/rentora/RIA-SchedulingService/internal/service/tokens"
	"github.com/rentora/RIA-SchedulingService/pkg/ptr"
)

// Коды Postgres, которыми сервер прерывает транзакцию,
// проигравшую конкурентный доступ
const (
	pqSerializationFailure = "40001"
	pqDeadlockDetected     = "40P01"
)

// UseCase use case подтверждения брони по одноразовой ссылке
type UseCase struct {
	tokenService   TokenService
	conflictGuard  ConflictGuard
	apptRepo       AppointmentRepository
	meetLinkClient MeetLinkClient
	txManager      TransactionManager
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	tokenService TokenService,
	conflictGuard ConflictGuard,
	apptRepo AppointmentRepository,
	meetLinkClient MeetLinkClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		tokenService:   tokenService,
		conflictGuard:  conflictGuard,
		apptRepo:       apptRepo,
		meetLinkClient: meetLinkClient,
		txManager:      txManager,
		logger:         logger,
	}
}

// Execute выполняет use case подтверждения брони
// Проверка токена, проверка конфликта, вставка встречи и потребление токена
// идут в одной сериализуемой транзакции - проигравший гонку участник получает
// ErrSchedulingConflict, его токен остается действительным
func (uc *UseCase) Execute(ctx context.Context, secret string) (*Response, error) {
	uc.logger.Info("RedeemBooking: redeem attempt")

	var result *domain.Appointment

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Валидируем токен внутри транзакции
		tok, err := uc.tokenService.Validate(txCtx, secret)
		if err != nil {
			return uc.mapTokenError("Validate", err)
		}

		// 2. Подтверждать бронь можно только booking-токеном
		if tok.Kind != domain.TokenKindBooking || tok.Booking == nil {
			uc.logger.Warn("RedeemBooking: token id=%d has kind=%s, booking required", tok.ID, tok.Kind)
			return ErrNotBookingToken
		}

		binding := tok.Booking

		// 3. Перепроверяем конфликт; чтение блокирует пересекающиеся
		// строки реестра до конца транзакции
		bookable, err := uc.conflictGuard.IsBookable(txCtx, binding.ManagerID, binding.StartAt, binding.DurationMinutes)
		if err != nil {
			uc.logger.Error("RedeemBooking: conflict check failed for manager=%d: %v", binding.ManagerID, err)
			return fmt.Errorf("%w: failed to check slot availability: %v", ErrInternal, err)
		}
		if !bookable {
			uc.logger.Warn("RedeemBooking: slot manager=%d, start=%s already taken",
				binding.ManagerID, binding.StartAt.Format(time.RFC3339))
			return ErrSchedulingConflict
		}

		// 4. Создаем встречу в реестре
		appt := &domain.Appointment{
			InquiryID:       tok.InquiryID,
			ManagerID:       binding.ManagerID,
			Kind:            binding.Kind,
			ScheduledAt:     binding.StartAt,
			DurationMinutes: binding.DurationMinutes,
			PropertyAddress: binding.PropertyAddress,
			Status:          domain.StatusScheduled,
		}

		created, err := uc.apptRepo.Create(txCtx, appt)
		if err != nil {
			uc.logger.Error("RedeemBooking: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		// 5. Потребляем токен; CAS-обновление гарантирует ровно одно потребление
		if err := uc.tokenService.Consume(txCtx, secret); err != nil {
			return uc.mapTokenError("Consume", err)
		}

		result = created
		return nil
	})

	if err != nil {
		// FOR UPDATE не блокирует фантомные вставки: если обе транзакции
		// проверили пересечения до чужого коммита, Postgres прерывает
		// проигравшую на коммите. Для клиента это тот же занятый слот,
		// его токен остается действительным
		if isSerializationFailure(err) {
			uc.logger.Warn("RedeemBooking: transaction aborted, slot contested by concurrent redeem: %v", err)
			return nil, ErrSchedulingConflict
		}
		return nil, err
	}

	uc.logger.Info("RedeemBooking: created appointment id=%d for inquiry=%d", result.ID, result.InquiryID)

	// 6. Для видеозвонков запрашиваем ссылку у провайдера уже после коммита:
	// бронь не должна теряться из-за недоступности внешнего сервиса
	if result.Kind == domain.KindVideoCall {
		uc.attachMeetingLink(ctx, result)
	}

	return &Response{
		AppointmentID:   result.ID,
		InquiryID:       result.InquiryID,
		ManagerID:       result.ManagerID,
		Kind:            result.Kind,
		ScheduledAt:     result.ScheduledAt,
		DurationMinutes: result.DurationMinutes,
		MeetingLink:     result.MeetingLink,
		PropertyAddress: result.PropertyAddress,
	}, nil
}

// attachMeetingLink получает ссылку на видеовстречу и сохраняет её.
// При недоступности провайдера пишется placeholder; ошибки сохранения
// только логируются - встреча уже создана
func (uc *UseCase) attachMeetingLink(ctx context.Context, appt *domain.Appointment) {
	link := domain.PlaceholderMeetingLink

	meeting, err := uc.meetLinkClient.CreateMeetingWithGracefulDegradation(ctx, &meetlink.CreateMeetingRequest{
		Topic:           fmt.Sprintf("Rental inquiry #%d", appt.InquiryID),
		StartAt:         appt.ScheduledAt,
		DurationMinutes: appt.DurationMinutes,
	})
	if err != nil {
		uc.logger.Warn("RedeemBooking: meetlink degraded for appointment id=%d, using placeholder: %v", appt.ID, err)
	} else {
		link = meeting.JoinURL
	}

	if err := uc.apptRepo.UpdateMeetingLink(ctx, appt.ID, link); err != nil {
		uc.logger.Error("RedeemBooking: failed to store meeting link for appointment id=%d: %v", appt.ID, err)
		return
	}

	appt.MeetingLink = ptr.Ptr(link)
}

// isSerializationFailure распознает прерывание транзакции из-за
// сериализационного сбоя или дедлока
func isSerializationFailure(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == pqSerializationFailure || pqErr.Code == pqDeadlockDetected
}

// mapTokenError транслирует ошибки сервиса токенов в ошибки usecase
func (uc *UseCase) mapTokenError(step string, err error) error {
	switch {
	case errors.Is(err, tokens.ErrTokenNotFound):
		uc.logger.Warn("RedeemBooking: %s: token not found", step)
		return ErrTokenNotFound
	case errors.Is(err, tokens.ErrTokenUsed):
		uc.logger.Warn("RedeemBooking: %s: token already used", step)
		return ErrTokenUsed
	case errors.Is(err, tokens.ErrTokenExpired):
		uc.logger.Warn("RedeemBooking: %s: token expired", step)
		return ErrTokenExpired
	default:
		uc.logger.Error("RedeemBooking: %s: token service error: %v", step, err)
		return fmt.Errorf("%w: %s failed: %v", ErrInternal, step, err)
	}
}
