package availability

import (
	"fmt"
	"time"

	"github.com/rentora/RIA-SchedulingService/internal/domain"
	"github.com/rentora/RIA-SchedulingService/internal/service/availability/models"
	"github.com/rentora/RIA-SchedulingService/pkg/types"
)

// toDomainWindow валидирует запрос и собирает доменную модель
// Любая ошибка возвращается до записи в хранилище
func toDomainWindow(req *models.SetAvailabilityRequest) (*domain.AvailabilityWindow, error) {
	kind := domain.AppointmentKind(req.Kind)
	if !kind.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidKind, req.Kind)
	}

	weekly, err := toDomainWeeklyBlocks(req.WeeklyBlocks)
	if err != nil {
		return nil, err
	}

	blackouts, err := toDomainBlackouts(req.BlackoutRanges)
	if err != nil {
		return nil, err
	}

	return &domain.AvailabilityWindow{
		ManagerID:      req.ManagerID,
		Kind:           kind,
		WeeklyBlocks:   weekly,
		BlackoutRanges: blackouts,
	}, nil
}

// toDomainWeeklyBlocks валидирует блоки: ключи дней, формат HH:MM, start < end
func toDomainWeeklyBlocks(weekly map[string][]models.TimeBlockDTO) (domain.WeeklyBlocks, error) {
	result := make(domain.WeeklyBlocks, len(weekly))

	for day, blocks := range weekly {
		if !domain.IsValidWeekdayKey(day) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidWeekday, day)
		}

		dayBlocks := make([]domain.TimeBlock, len(blocks))
		for i, b := range blocks {
			start, err := types.NewTimeStringFromString(b.Start)
			if err != nil {
				return nil, fmt.Errorf("%w: %s block %d start %q", ErrInvalidTimeFormat, day, i, b.Start)
			}
			end, err := types.NewTimeStringFromString(b.End)
			if err != nil {
				return nil, fmt.Errorf("%w: %s block %d end %q", ErrInvalidTimeFormat, day, i, b.End)
			}
			if !start.IsBefore(end) {
				return nil, fmt.Errorf("%w: %s block %d (%s-%s)", ErrInvalidBlock, day, i, b.Start, b.End)
			}
			dayBlocks[i] = domain.TimeBlock{Start: start, End: end}
		}
		result[day] = dayBlocks
	}

	return result, nil
}

// toDomainBlackouts валидирует периоды недоступности: формат дат, start <= end
func toDomainBlackouts(blackouts []models.BlackoutRangeDTO) ([]domain.BlackoutRange, error) {
	result := make([]domain.BlackoutRange, len(blackouts))

	for i, br := range blackouts {
		start, err := time.Parse(domain.DateFormat, br.StartDate)
		if err != nil {
			return nil, fmt.Errorf("%w: blackout %d start %q", ErrInvalidDateFormat, i, br.StartDate)
		}
		end, err := time.Parse(domain.DateFormat, br.EndDate)
		if err != nil {
			return nil, fmt.Errorf("%w: blackout %d end %q", ErrInvalidDateFormat, i, br.EndDate)
		}
		if start.After(end) {
			return nil, fmt.Errorf("%w: blackout %d (%s - %s)", ErrInvalidBlackout, i, br.StartDate, br.EndDate)
		}
		result[i] = domain.BlackoutRange{StartDate: start, EndDate: end}
	}

	return result, nil
}
