package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sony/gobreaker"

	"github.com/denmor86/order-confirm/internal/logger"
	"github.com/denmor86/order-confirm/internal/services"
)

func InitCircuitBreaker() *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "mail-server",
		Timeout: 30 * time.Second, // через 30 сек пробуем подключиться
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			// 5 попыток достучаться до сервера
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Infof("Circuit Breaker '%s': %s -> %s", name, from, to)
		},
	})
}

// Runner - однопроходный обработчик: нумерация заказов, отправка
// подтверждений, уведомление о запуске
type Runner struct {
	Numbering *services.Numbering
	Notify    *services.Notify
	Breaker   *gobreaker.CircuitBreaker
}

// Создание обработчика
func NewRunner(numbering *services.Numbering, notify *services.Notify) *Runner {
	return &Runner{
		Numbering: numbering,
		Notify:    notify,
		Breaker:   InitCircuitBreaker(),
	}
}

// Run - один проход обработки. Уведомление о запуске отправляется в любом
// случае, его ошибка не влияет на результат
func (w *Runner) Run(ctx context.Context) error {
	runID := uuid.NewString()
	logger.Infof("Processing run %s", runID)

	err := w.process(ctx)

	if notifyErr := w.Notify.SendRunNotification(runID); notifyErr != nil {
		logger.Error("Failed to send run notification", notifyErr)
	} else {
		logger.Infof("Run notification sent for run %s", runID)
	}
	return err
}

func (w *Runner) process(ctx context.Context) error {
	if _, err := w.Numbering.AssignNumbers(ctx); err != nil {
		return fmt.Errorf("failed to assign order numbers: %w", err)
	}
	return w.SendConfirmations(ctx)
}

// SendConfirmations - отправка подтверждений по всем необработанным записям.
// Ошибка одной записи логируется и не прерывает обработку остальных
func (w *Runner) SendConfirmations(ctx context.Context) error {
	records, err := w.Notify.Pending(ctx)
	if err != nil {
		return fmt.Errorf("failed to get pending orders: %w", err)
	}

	for _, record := range records {
		if w.Breaker.State() == gobreaker.StateOpen {
			logger.Warnf("%s unavailable, skipping remaining orders", w.Breaker.Name())
			return nil
		}
		_, err := w.Breaker.Execute(func() (interface{}, error) {
			return nil, w.Notify.Deliver(ctx, record)
		})
		if err != nil {
			logger.Error("Error order delivery", err)
		}
	}
	return nil
}
