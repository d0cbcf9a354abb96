package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/denmor86/order-confirm/internal/models"
)

// Обязательные заголовки листа заказов и их позиции (индекс с нуля).
// Колонки заказа: A - дата отправки формы, D-E - товары, F - промокод,
// J - номер заказа, K - флаг отправки письма
var ordersHeaders = map[string]int{
	"submitted on": 0,
	"name":         1,
	"email":        2,
	"promo code":   5,
	"order number": 9,
	"send email":   10,
}

type OrdersSheet struct {
	Sheets *Spreadsheets
}

// Создание хранилища заказов
func NewOrdersStorage(sheets *Spreadsheets) OrdersStorage {
	return &OrdersSheet{Sheets: sheets}
}

// ColumnValues - чтение колонки листа заказов сверху вниз
func (s *OrdersSheet) ColumnValues(ctx context.Context, column string) ([]string, error) {
	rows, err := s.Sheets.getRange(ctx, s.Sheets.OrdersSheetID, fmt.Sprintf("%s:%s", column, column))
	if err != nil {
		return nil, err
	}
	values := make([]string, len(rows))
	for i, row := range rows {
		if len(row) > 0 {
			values[i] = cellString(row[0])
		}
	}
	return values, nil
}

// RowCells - чтение диапазона ячеек одной строки
func (s *OrdersSheet) RowCells(ctx context.Context, row int, fromColumn string, toColumn string) ([]string, error) {
	readRange := fmt.Sprintf("%s%d:%s%d", fromColumn, row, toColumn, row)
	rows, err := s.Sheets.getRange(ctx, s.Sheets.OrdersSheetID, readRange)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	cells := make([]string, len(rows[0]))
	for i, value := range rows[0] {
		cells[i] = cellString(value)
	}
	return cells, nil
}

// Records - чтение листа заказов целиком, записи начинаются со второй строки
func (s *OrdersSheet) Records(ctx context.Context) ([]models.OrderRecord, error) {
	rows, err := s.Sheets.getRange(ctx, s.Sheets.OrdersSheetID, "A1:K")
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("orders sheet: %w", ErrMissingHeader)
	}
	records := make([]models.OrderRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		records = append(records, models.OrderRecord{
			Row:         i + 2,
			SubmittedOn: field(row, ordersHeaders["submitted on"]),
			Name:        field(row, ordersHeaders["name"]),
			Email:       field(row, ordersHeaders["email"]),
			PromoCode:   field(row, ordersHeaders["promo code"]),
			OrderNumber: field(row, ordersHeaders["order number"]),
			EmailSent:   isSent(field(row, ordersHeaders["send email"])),
		})
	}
	return records, nil
}

// UpdateCell - запись значения в ячейку листа заказов
func (s *OrdersSheet) UpdateCell(ctx context.Context, row int, column string, value string) error {
	return s.Sheets.updateCell(ctx, s.Sheets.OrdersSheetID, fmt.Sprintf("%s%d", column, row), value)
}

// field - значение колонки строки, пустая строка для коротких строк
func field(row []interface{}, index int) string {
	if index >= len(row) {
		return ""
	}
	return cellString(row[index])
}

// isSent - разбор флага отправки письма
func isSent(value string) bool {
	value = strings.TrimSpace(value)
	return strings.EqualFold(value, "TRUE") || value == "1"
}
