package availability

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/rentora/RIA-SchedulingService/internal/domain"
	"github.com/rentora/RIA-SchedulingService/pkg/dbmetrics"
	"github.com/rentora/RIA-SchedulingService/pkg/psqlbuilder"
	"github.com/rentora/RIA-SchedulingService/pkg/types"
)

// Repository репозиторий для работы с окнами доступности менеджеров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория окон доступности
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// jsonTimeBlock модель блока времени для хранения в JSONB
type jsonTimeBlock struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// jsonBlackoutRange модель периода недоступности для хранения в JSONB
// Даты хранятся строками YYYY-MM-DD, время суток не значимо
type jsonBlackoutRange struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// Upsert создает или полностью заменяет окно доступности для пары (менеджер, тип встречи)
// Для пары существует не более одной записи, поэтому конфликт по уникальному
// индексу (manager_id, kind) разрешается заменой расписания на месте
func (r *Repository) Upsert(ctx context.Context, window *domain.AvailabilityWindow) (*domain.AvailabilityWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	weeklyJSON, blackoutsJSON, err := marshalSchedule(window)
	if err != nil {
		return nil, err
	}

	query, args, err := psqlbuilder.Insert("availability_windows").
		Columns(
			"manager_id",
			"kind",
			"weekly_blocks",
			"blackout_ranges",
		).
		Values(
			window.ManagerID,
			window.Kind,
			weeklyJSON,
			blackoutsJSON,
		).
		Suffix(`ON CONFLICT (manager_id, kind) DO UPDATE SET
			weekly_blocks = EXCLUDED.weekly_blocks,
			blackout_ranges = EXCLUDED.blackout_ranges,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&window.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	window.CreatedAt = createdAt.Time
	window.UpdatedAt = updatedAt.Time

	return window, nil
}

// GetByManagerAndKind получает окно доступности менеджера для типа встречи
// Читается на каждую генерацию слотов - изменения менеджера видны немедленно
func (r *Repository) GetByManagerAndKind(ctx context.Context, managerID int64, kind domain.AppointmentKind) (*domain.AvailabilityWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"manager_id",
		"kind",
		"weekly_blocks",
		"blackout_ranges",
		"created_at",
		"updated_at",
	).
		From("availability_windows").
		Where(squirrel.Eq{"manager_id": managerID, "kind": kind}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByManagerAndKind - build select query: %v", ErrBuildQuery, err)
	}

	var window domain.AvailabilityWindow
	var weeklyJSON, blackoutsJSON []byte
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&window.ID,
		&window.ManagerID,
		&window.Kind,
		&weeklyJSON,
		&blackoutsJSON,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrWindowNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByManagerAndKind - scan window: %v", ErrScanRow, err)
	}

	if err := unmarshalSchedule(weeklyJSON, blackoutsJSON, &window); err != nil {
		return nil, err
	}

	window.CreatedAt = createdAt.Time
	window.UpdatedAt = updatedAt.Time

	return &window, nil
}

// marshalSchedule сериализует расписание и периоды недоступности в JSONB
func marshalSchedule(window *domain.AvailabilityWindow) ([]byte, []byte, error) {
	weekly := make(map[string][]jsonTimeBlock, len(window.WeeklyBlocks))
	for day, blocks := range window.WeeklyBlocks {
		dayBlocks := make([]jsonTimeBlock, len(blocks))
		for i, b := range blocks {
			dayBlocks[i] = jsonTimeBlock{Start: b.Start.String(), End: b.End.String()}
		}
		weekly[day] = dayBlocks
	}

	blackouts := make([]jsonBlackoutRange, len(window.BlackoutRanges))
	for i, br := range window.BlackoutRanges {
		blackouts[i] = jsonBlackoutRange{
			StartDate: br.StartDate.Format(domain.DateFormat),
			EndDate:   br.EndDate.Format(domain.DateFormat),
		}
	}

	weeklyJSON, err := json.Marshal(weekly)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: weekly blocks: %v", ErrMarshal, err)
	}

	blackoutsJSON, err := json.Marshal(blackouts)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: blackout ranges: %v", ErrMarshal, err)
	}

	return weeklyJSON, blackoutsJSON, nil
}

// unmarshalSchedule десериализует расписание из JSONB в доменную модель
func unmarshalSchedule(weeklyJSON, blackoutsJSON []byte, window *domain.AvailabilityWindow) error {
	var weekly map[string][]jsonTimeBlock
	if err := json.Unmarshal(weeklyJSON, &weekly); err != nil {
		return fmt.Errorf("%w: weekly blocks: %v", ErrUnmarshal, err)
	}

	window.WeeklyBlocks = make(domain.WeeklyBlocks, len(weekly))
	for day, blocks := range weekly {
		dayBlocks := make([]domain.TimeBlock, len(blocks))
		for i, b := range blocks {
			start, err := types.NewTimeStringFromString(b.Start)
			if err != nil {
				return fmt.Errorf("%w: block start: %v", ErrUnmarshal, err)
			}
			end, err := types.NewTimeStringFromString(b.End)
			if err != nil {
				return fmt.Errorf("%w: block end: %v", ErrUnmarshal, err)
			}
			dayBlocks[i] = domain.TimeBlock{Start: start, End: end}
		}
		window.WeeklyBlocks[day] = dayBlocks
	}

	var blackouts []jsonBlackoutRange
	if err := json.Unmarshal(blackoutsJSON, &blackouts); err != nil {
		return fmt.Errorf("%w: blackout ranges: %v", ErrUnmarshal, err)
	}

	window.BlackoutRanges = make([]domain.BlackoutRange, len(blackouts))
	for i, br := range blackouts {
		start, err := time.Parse(domain.DateFormat, br.StartDate)
		if err != nil {
			return fmt.Errorf("%w: blackout start date: %v", ErrUnmarshal, err)
		}
		end, err := time.Parse(domain.DateFormat, br.EndDate)
		if err != nil {
			return fmt.Errorf("%w: blackout end date: %v", ErrUnmarshal, err)
		}
		window.BlackoutRanges[i] = domain.BlackoutRange{StartDate: start, EndDate: end}
	}

	return nil
}
