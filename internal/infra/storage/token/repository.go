package token

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/rentora/RIA-SchedulingService/internal/domain"
	"github.com/rentora/RIA-SchedulingService/pkg/dbmetrics"
	"github.com/rentora/RIA-SchedulingService/pkg/psqlbuilder"
)

// pgUniqueViolation код ошибки PostgreSQL для нарушения уникального индекса
const pgUniqueViolation = "23505"

// tokenColumns полный список колонок таблицы tokens
var tokenColumns = []string{
	"id",
	"secret",
	"kind",
	"inquiry_id",
	"slot_manager_id",
	"slot_kind",
	"slot_start_at",
	"slot_duration_minutes",
	"slot_property_address",
	"expires_at",
	"is_used",
	"used_at",
	"created_at",
}

// Repository репозиторий для работы с одноразовыми токенами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория токенов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новый токен
// Колонки slot_* заполнены только для booking-токенов
func (r *Repository) Create(ctx context.Context, tok *domain.Token) (*domain.Token, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	var slotManagerID, slotDuration *int64
	var slotKind, slotAddress *string
	var slotStartAt *time.Time

	if tok.Booking != nil {
		slotManagerID = &tok.Booking.ManagerID
		kind := string(tok.Booking.Kind)
		slotKind = &kind
		slotStartAt = &tok.Booking.StartAt
		duration := int64(tok.Booking.DurationMinutes)
		slotDuration = &duration
		slotAddress = tok.Booking.PropertyAddress
	}

	query, args, err := psqlbuilder.Insert("tokens").
		Columns(
			"secret",
			"kind",
			"inquiry_id",
			"slot_manager_id",
			"slot_kind",
			"slot_start_at",
			"slot_duration_minutes",
			"slot_property_address",
			"expires_at",
		).
		Values(
			tok.Secret,
			tok.Kind,
			tok.InquiryID,
			slotManagerID,
			slotKind,
			slotStartAt,
			slotDuration,
			slotAddress,
			tok.ExpiresAt,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&tok.ID,
		&createdAt,
	)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == pgUniqueViolation {
			return nil, ErrDuplicateSecret
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	tok.CreatedAt = createdAt.Time

	return tok, nil
}

// GetBySecret получает токен по секрету
func (r *Repository) GetBySecret(ctx context.Context, secret string) (*domain.Token, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(tokenColumns...).
		From("tokens").
		Where(squirrel.Eq{"secret": secret}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBySecret - build select query: %v", ErrBuildQuery, err)
	}

	var tok domain.Token
	var slotManagerID, slotDuration sql.NullInt64
	var slotKind, slotAddress sql.NullString
	var slotStartAt, usedAt, createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&tok.ID,
		&tok.Secret,
		&tok.Kind,
		&tok.InquiryID,
		&slotManagerID,
		&slotKind,
		&slotStartAt,
		&slotDuration,
		&slotAddress,
		&tok.ExpiresAt,
		&tok.IsUsed,
		&usedAt,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrTokenNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySecret - scan token: %v", ErrScanRow, err)
	}

	if tok.Kind == domain.TokenKindBooking && slotManagerID.Valid {
		tok.Booking = &domain.SlotBinding{
			ManagerID:       slotManagerID.Int64,
			Kind:            domain.AppointmentKind(slotKind.String),
			StartAt:         slotStartAt.Time,
			DurationMinutes: int(slotDuration.Int64),
		}
		if slotAddress.Valid {
			tok.Booking.PropertyAddress = &slotAddress.String
		}
	}

	if usedAt.Valid {
		tok.UsedAt = &usedAt.Time
	}
	tok.CreatedAt = createdAt.Time

	return &tok, nil
}

// MarkUsed помечает токен использованным через compare-and-set
// Условие is_used = FALSE гарантирует ровно один успешный переход
// unused -> used; повторная пометка возвращает ErrTokenAlreadyUsed
// Вызывающий обязан предварительно проверить существование токена
func (r *Repository) MarkUsed(ctx context.Context, secret string, usedAt time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("tokens").
		Set("is_used", true).
		Set("used_at", usedAt).
		Where(squirrel.Eq{"secret": secret, "is_used": false}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkUsed - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkUsed - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkUsed - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrTokenAlreadyUsed
	}

	return nil
}

// DeleteExpired пакетно удаляет токены с истекшим сроком действия
// Вызывается фоновой задачей, не на пути запроса. Удаляются только строки
// с expires_at < now - такие токены любая параллельная операция уже отвергла
// бы на этапе валидации, гонки с активным подтверждением быть не может
func (r *Repository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("tokens").
		Where(squirrel.Lt{"expires_at": now}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpired - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpired - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpired - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}
