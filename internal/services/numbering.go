package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/denmor86/order-confirm/internal/logger"
	"github.com/denmor86/order-confirm/internal/storage"
)

const (
	SubmittedColumn   = "A"
	OrderNumberColumn = "J"

	// Начальный номер заказа после сброса нумерации
	StartOrderNumber = "00001"
	orderNumberWidth = 5
)

type Numbering struct {
	Storage storage.OrdersStorage
}

// Создание сервиса
func NewNumbering(storage storage.OrdersStorage) *Numbering {
	return &Numbering{Storage: storage}
}

// AssignNumbers - присвоение номеров заказам без номера. Количество новых
// заказов - разница заполненных строк колонок A и J. Возвращает номера
// обработанных строк листа
func (s *Numbering) AssignNumbers(ctx context.Context) ([]int, error) {
	submitted, err := s.Storage.ColumnValues(ctx, SubmittedColumn)
	if err != nil {
		return nil, fmt.Errorf("failed to read submissions column: %w", err)
	}
	numbers, err := s.Storage.ColumnValues(ctx, OrderNumberColumn)
	if err != nil {
		return nil, fmt.Errorf("failed to read order numbers column: %w", err)
	}

	missing := len(submitted) - len(numbers)
	logger.Infof("Missing orders: %d", missing)
	if missing <= 0 {
		logger.Info("No new orders. No update necessary")
		return nil, nil
	}

	last := ""
	if len(numbers) > 0 {
		last = numbers[len(numbers)-1]
	}
	next := NextOrderNumber(last)

	rows := make([]int, 0, missing)
	for i := 0; i < missing; i++ {
		row := len(numbers) + 1 + i
		if err := s.Storage.UpdateCell(ctx, row, OrderNumberColumn, next); err != nil {
			return rows, fmt.Errorf("failed to write order number %s to row %d: %w", next, row, err)
		}
		logger.Infof("Updated order number %s at %s%d", next, OrderNumberColumn, row)
		rows = append(rows, row)
		next = NextOrderNumber(next)
	}
	return rows, nil
}

// NextOrderNumber - следующий номер заказа. Не число (пустая ячейка или
// значение с буквенным суффиксом) сбрасывает нумерацию на начальную
func NextOrderNumber(last string) string {
	value, err := strconv.Atoi(strings.TrimSpace(last))
	if err != nil {
		return StartOrderNumber
	}
	return fmt.Sprintf("%0*d", orderNumberWidth, value+1)
}

// FormatOrderNumber - дополнение номера заказа нулями слева до пяти знаков
func FormatOrderNumber(number string) string {
	if len(number) >= orderNumberWidth {
		return number
	}
	return strings.Repeat("0", orderNumberWidth-len(number)) + number
}
