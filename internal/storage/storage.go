package storage

import (
	"context"
	"errors"

	"github.com/denmor86/order-confirm/internal/models"
)

// OrdersStorage - доступ к листу заказов
type OrdersStorage interface {
	// ColumnValues читает колонку сверху вниз, хвостовые пустые ячейки не возвращаются
	ColumnValues(ctx context.Context, column string) ([]string, error)
	// RowCells читает диапазон ячеек одной строки
	RowCells(ctx context.Context, row int, fromColumn string, toColumn string) ([]string, error)
	// Records читает таблицу целиком, поля выбираются по заголовкам
	Records(ctx context.Context) ([]models.OrderRecord, error)
	// UpdateCell записывает значение в одну ячейку
	UpdateCell(ctx context.Context, row int, column string, value string) error
}

// DiscountsStorage - доступ к листу промокодов
type DiscountsStorage interface {
	Discounts(ctx context.Context) ([]models.DiscountRecord, error)
}

type Storage struct {
	Orders    OrdersStorage
	Discounts DiscountsStorage
}

// Создание хранилища
func NewStorage(sheets *Spreadsheets) Storage {
	return Storage{Orders: NewOrdersStorage(sheets), Discounts: NewDiscountsStorage(sheets)}
}

var (
	ErrMissingHeader   = errors.New("missing header")
	ErrMalformedRecord = errors.New("malformed discount record")
)
