package slotgen

import (
	"errors"
	"time"

	"github.com/rentora/RIA-SchedulingService/internal/domain"
	"github.com/rentora/RIA-SchedulingService/pkg/types"
)

// expandBlocks разворачивает блоки одного дня в последовательность слотов
// Блоки обрабатываются в порядке хранения, слоты разных блоков конкатенируются
func expandBlocks(blocks []domain.TimeBlock, date time.Time, slotDurationMinutes int) ([]domain.CandidateSlot, error) {
	slots := make([]domain.CandidateSlot, 0)

	for _, block := range blocks {
		blockSlots, err := expandBlock(block, date, slotDurationMinutes)
		if err != nil {
			return nil, err
		}
		slots = append(slots, blockSlots...)
	}

	return slots, nil
}

// expandBlock идет от начала блока с фиксированным шагом slotDuration,
// выпуская слоты [t, t+duration), пока t+duration <= конец блока
// Непрерывно, без пропусков, без неполного хвостового слота
func expandBlock(block domain.TimeBlock, date time.Time, slotDurationMinutes int) ([]domain.CandidateSlot, error) {
	slots := make([]domain.CandidateSlot, 0)

	current := block.Start
	for {
		slotEnd, err := current.AddMinutes(slotDurationMinutes)
		if err != nil {
			// Следующий слот вышел бы за пределы суток
			if errors.Is(err, types.ErrMinutesOutOfRange) {
				break
			}
			return nil, err
		}
		if slotEnd.IsAfter(block.End) {
			break
		}

		startAt, err := current.OnDate(date)
		if err != nil {
			return nil, err
		}
		endAt, err := slotEnd.OnDate(date)
		if err != nil {
			return nil, err
		}

		slots = append(slots, domain.CandidateSlot{StartAt: startAt, EndAt: endAt})
		current = slotEnd
	}

	return slots, nil
}
