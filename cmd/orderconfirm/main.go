package main

import (
	"fmt"
	"os"

	"github.com/denmor86/order-confirm/internal/app"
	"github.com/denmor86/order-confirm/internal/config"
	"github.com/denmor86/order-confirm/internal/logger"
)

func main() {
	// загрузка конфига
	config := config.NewConfig()
	// инициализация логгера
	if err := logger.Initialize(config.LogLevel); err != nil {
		panic(fmt.Sprintf("can't initialize logger: %s ", err.Error()))
	}
	// один проход обработки заказов
	code := app.Run(config)
	logger.Sync()
	os.Exit(code)
}
