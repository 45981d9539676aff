package tokensweep

import (
	"context"
	"time"
)

// TokenSweeper интерфейс сервиса, умеющего удалять истекшие токены
type TokenSweeper interface {
	SweepExpired(ctx context.Context) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Worker периодически удаляет истекшие токены из хранилища
// Истекший токен и без того отклоняется при валидации, чистка только
// сдерживает рост таблицы
type Worker struct {
	sweeper  TokenSweeper
	interval time.Duration
	timeout  time.Duration
	logger   Logger
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// NewWorker создает новый экземпляр фоновой чистки токенов
func NewWorker(sweeper TokenSweeper, interval, timeout time.Duration, logger Logger) *Worker {
	return &Worker{
		sweeper:  sweeper,
		interval: interval,
		timeout:  timeout,
		logger:   logger,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start запускает фоновую горутину чистки
func (w *Worker) Start() {
	go w.run()
}

// Stop останавливает чистку и дожидается завершения текущего прохода
func (w *Worker) Stop() {
	close(w.stopCh)
	<-w.doneCh
}

func (w *Worker) run() {
	defer close(w.doneCh)

	w.logger.Info("tokensweep: started, interval=%s", w.interval)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.sweep()
		case <-w.stopCh:
			w.logger.Info("tokensweep: stopped")
			return
		}
	}
}

func (w *Worker) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()

	if _, err := w.sweeper.SweepExpired(ctx); err != nil {
		w.logger.Error("tokensweep: sweep failed: %v", err)
	}
}
