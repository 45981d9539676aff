package conflictguard

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrInternal возвращается при внутренних ошибках проверки
var ErrInternal = errors.New("conflictguard: internal error")

// Guard решает, свободен ли кандидатный интервал у менеджера
//
// Вне транзакции результат носит рекомендательный характер (для фильтрации
// предложений). Авторитетным он становится только внутри сериализуемой
// транзакции подтверждения, где чтение реестра блокирует пересекающиеся
// строки до вставки
type Guard struct {
	ledger AppointmentLedger
	logger Logger
}

// NewGuard создает новую проверку конфликтов
func NewGuard(ledger AppointmentLedger, logger Logger) *Guard {
	return &Guard{
		ledger: ledger,
		logger: logger,
	}
}

// IsBookable возвращает true, если интервал [start, start+duration)
// не пересекается ни с одной неотменённой встречей менеджера
func (g *Guard) IsBookable(ctx context.Context, managerID int64, start time.Time, durationMinutes int) (bool, error) {
	overlapping, err := g.ledger.FindOverlapping(ctx, managerID, start, durationMinutes)
	if err != nil {
		g.logger.Error("IsBookable: failed to find overlapping appointments for manager=%d: %v", managerID, err)
		return false, fmt.Errorf("%w: failed to find overlapping appointments: %v", ErrInternal, err)
	}

	return len(overlapping) == 0, nil
}
