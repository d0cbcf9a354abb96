package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/denmor86/order-confirm/internal/models"
)

// Обязательные заголовки листа промокодов и их позиции (индекс с нуля)
var discountsHeaders = map[string]int{
	"discount code": 0,
	"% discount":    1,
	"status":        2,
}

type DiscountsSheet struct {
	Sheets *Spreadsheets
}

// Создание хранилища промокодов
func NewDiscountsStorage(sheets *Spreadsheets) DiscountsStorage {
	return &DiscountsSheet{Sheets: sheets}
}

// Discounts - чтение листа промокодов целиком. Некорректная запись - жёсткая
// ошибка: молчаливый пропуск мог бы неверно применить или не применить скидку
func (s *DiscountsSheet) Discounts(ctx context.Context) ([]models.DiscountRecord, error) {
	rows, err := s.Sheets.getRange(ctx, s.Sheets.DiscountsSheetID, "A1:C")
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("discounts sheet: %w", ErrMissingHeader)
	}
	records := make([]models.DiscountRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		record, err := parseDiscountRow(row)
		if err != nil {
			return nil, fmt.Errorf("discounts row %d: %w", i+2, err)
		}
		records = append(records, record)
	}
	return records, nil
}

var percentLimit = decimal.NewFromInt(100)

// parseDiscountRow - разбор одной записи промокода
func parseDiscountRow(row []interface{}) (models.DiscountRecord, error) {
	if len(row) < len(discountsHeaders) {
		return models.DiscountRecord{}, ErrMalformedRecord
	}
	code := strings.TrimSpace(field(row, discountsHeaders["discount code"]))
	percentText := strings.TrimSpace(field(row, discountsHeaders["% discount"]))
	status := strings.TrimSpace(field(row, discountsHeaders["status"]))
	if code == "" || percentText == "" || status == "" {
		return models.DiscountRecord{}, ErrMalformedRecord
	}
	percent, err := decimal.NewFromString(percentText)
	if err != nil {
		return models.DiscountRecord{}, fmt.Errorf("%w: bad percent %q", ErrMalformedRecord, percentText)
	}
	if percent.IsNegative() || percent.GreaterThan(percentLimit) {
		return models.DiscountRecord{}, fmt.Errorf("%w: percent %s out of range", ErrMalformedRecord, percent)
	}
	return models.DiscountRecord{Code: code, Percent: percent, Status: status}, nil
}
