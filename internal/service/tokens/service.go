package tokens

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/rentora/RIA-SchedulingService/internal/domain"
	tokenRepo "github.com/rentora/RIA-SchedulingService/internal/infra/storage/token"
)

// secretByteLength длина секрета в байтах до кодирования
// 32 байта из crypto/rand дают 256 бит энтропии - коллизии и перебор
// исключены на всём времени жизни системы
const secretByteLength = 32

// Service сервис одноразовых токенов
// Секрет токена - единственный credential анонимного получателя ссылки
type Service struct {
	repo         TokenRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса токенов
func NewService(repo TokenRepository, logger Logger) *Service {
	return &Service{
		repo:         repo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// IssueBooking выпускает booking-токен, привязанный к конкретному слоту
func (s *Service) IssueBooking(ctx context.Context, inquiryID int64, binding domain.SlotBinding, ttlDays int) (*domain.Token, error) {
	return s.issue(ctx, domain.TokenKindBooking, inquiryID, &binding, ttlDays)
}

// IssueQuestionnaire выпускает токен доступа к анкете по заявке
// Привязки к слоту нет, правило истечения по началу слота не применяется
func (s *Service) IssueQuestionnaire(ctx context.Context, inquiryID int64, ttlDays int) (*domain.Token, error) {
	return s.issue(ctx, domain.TokenKindQuestionnaire, inquiryID, nil, ttlDays)
}

func (s *Service) issue(ctx context.Context, kind domain.TokenKind, inquiryID int64, binding *domain.SlotBinding, ttlDays int) (*domain.Token, error) {
	if ttlDays < domain.MinLinkTTLDays || ttlDays > domain.MaxLinkTTLDays {
		return nil, fmt.Errorf("%w: %d days", ErrInvalidTTL, ttlDays)
	}

	secret, err := generateSecret()
	if err != nil {
		s.logger.Error("issue: failed to generate secret: %v", err)
		return nil, fmt.Errorf("%w: failed to generate secret: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()
	tok := &domain.Token{
		Secret:    secret,
		Kind:      kind,
		InquiryID: inquiryID,
		Booking:   binding,
		ExpiresAt: now.AddDate(0, 0, ttlDays),
	}

	created, err := s.repo.Create(ctx, tok)
	if err != nil {
		s.logger.Error("issue: failed to store %s token for inquiry=%d: %v", kind, inquiryID, err)
		return nil, fmt.Errorf("%w: failed to store token: %v", ErrInternal, err)
	}

	s.logger.Info("issue: issued %s token id=%d for inquiry=%d, expires=%s",
		kind, created.ID, inquiryID, created.ExpiresAt.Format(time.RFC3339))
	return created, nil
}

// Validate проверяет токен по секрету без его потребления
// Возвращает ErrTokenNotFound / ErrTokenUsed / ErrTokenExpired
// Для booking-токенов прошедшее начало слота равносильно истечению
func (s *Service) Validate(ctx context.Context, secret string) (*domain.Token, error) {
	tok, err := s.repo.GetBySecret(ctx, secret)
	if err != nil {
		if errors.Is(err, tokenRepo.ErrTokenNotFound) {
			return nil, ErrTokenNotFound
		}
		s.logger.Error("Validate: failed to get token: %v", err)
		return nil, fmt.Errorf("%w: failed to get token: %v", ErrInternal, err)
	}

	if tok.IsUsed {
		return nil, ErrTokenUsed
	}

	if tok.IsExpired(s.timeProvider.Now()) {
		return nil, ErrTokenExpired
	}

	return tok, nil
}

// Consume помечает токен использованным
// Идемпотентность не предполагается: повторный вызов возвращает ErrTokenUsed,
// а не тихий успех. Вызывающий обязан провалидировать токен перед потреблением
// и держать обе операции в одной транзакции
func (s *Service) Consume(ctx context.Context, secret string) error {
	err := s.repo.MarkUsed(ctx, secret, s.timeProvider.Now())
	if err != nil {
		if errors.Is(err, tokenRepo.ErrTokenAlreadyUsed) {
			return ErrTokenUsed
		}
		s.logger.Error("Consume: failed to mark token used: %v", err)
		return fmt.Errorf("%w: failed to mark token used: %v", ErrInternal, err)
	}

	return nil
}

// SweepExpired пакетно удаляет истекшие токены
// Запускается периодической фоновой задачей, не на пути запроса
func (s *Service) SweepExpired(ctx context.Context) (int64, error) {
	count, err := s.repo.DeleteExpired(ctx, s.timeProvider.Now())
	if err != nil {
		s.logger.Error("SweepExpired: failed to delete expired tokens: %v", err)
		return 0, fmt.Errorf("%w: failed to delete expired tokens: %v", ErrInternal, err)
	}

	if count > 0 {
		s.logger.Info("SweepExpired: deleted %d expired tokens", count)
	}
	return count, nil
}

// generateSecret генерирует криптографически стойкий URL-safe секрет
func generateSecret() (string, error) {
	buf := make([]byte, secretByteLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
