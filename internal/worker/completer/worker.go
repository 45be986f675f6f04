package completer

import (
	"context"
	"time"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	CompletePast(ctx context.Context, now time.Time) (int64, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time {
	return time.Now()
}

// Worker периодически переводит прошедшие бронирования из booked в completed
type Worker struct {
	repo         BookingRepository
	interval     time.Duration
	timeProvider TimeProvider
	logger       Logger
}

// NewWorker создает воркер
func NewWorker(repo BookingRepository, interval time.Duration, logger Logger) *Worker {
	return &Worker{
		repo:         repo,
		interval:     interval,
		timeProvider: realTimeProvider{},
		logger:       logger,
	}
}

// Run запускает цикл до отмены контекста; первый проход выполняется сразу
func (w *Worker) Run(ctx context.Context) {
	w.logger.Info("Completer: started, interval=%s", w.interval)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.RunOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Completer: stopped")
			return
		case <-ticker.C:
			w.RunOnce(ctx)
		}
	}
}

// RunOnce выполняет один проход и возвращает количество завершённых бронирований
func (w *Worker) RunOnce(ctx context.Context) int64 {
	completed, err := w.repo.CompletePast(ctx, w.timeProvider.Now())
	if err != nil {
		w.logger.Error("Completer: failed to complete past bookings: %v", err)
		return 0
	}
	if completed > 0 {
		w.logger.Info("Completer: %d bookings marked as completed", completed)
	}
	return completed
}
