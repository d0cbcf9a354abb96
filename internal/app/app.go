package app

import (
	"context"

	"github.com/denmor86/order-confirm/internal/config"
	"github.com/denmor86/order-confirm/internal/logger"
	"github.com/denmor86/order-confirm/internal/mail"
	"github.com/denmor86/order-confirm/internal/services"
	"github.com/denmor86/order-confirm/internal/storage"
	"github.com/denmor86/order-confirm/internal/worker"
)

// Run - сборка зависимостей и один проход обработки. Возвращает код выхода
// процесса: ошибки до первой записи в таблицу фатальны
func Run(config config.Config) int {
	ctx := context.Background()

	if err := config.Validate(); err != nil {
		logger.Error("Invalid configuration:", err)
		return 1
	}

	sheets, err := storage.NewSpreadsheets(ctx, config.Sheets)
	if err != nil {
		logger.Error("Failed to create sheets client:", err)
		return 1
	}
	if err := sheets.Initialize(ctx); err != nil {
		logger.Error("Failed to validate sheet headers:", err)
		return 1
	}

	store := storage.NewStorage(sheets)
	sender := mail.NewClient(config.Mail)

	numbering := services.NewNumbering(store.Orders)
	pricing := services.NewPricing(store.Orders, store.Discounts)
	notify := services.NewNotify(store.Orders, pricing, sender,
		config.Mail.VerificationEmail, config.Mail.NotifyEmail)

	runner := worker.NewRunner(numbering, notify)
	if err := runner.Run(ctx); err != nil {
		logger.Error("Run failed:", err)
		return 1
	}
	return 0
}
