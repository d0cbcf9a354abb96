package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Статус действующего промокода
const DiscountStatusActive = "active"

// DiscountRecord - запись листа промокодов
type DiscountRecord struct {
	Code    string
	Percent decimal.Decimal
	Status  string
}

// Active проверяет, действует ли промокод
func (d DiscountRecord) Active() bool {
	return strings.EqualFold(strings.TrimSpace(d.Status), DiscountStatusActive)
}

// Matches сравнивает код записи с промокодом покупателя без учёта регистра
func (d DiscountRecord) Matches(code string) bool {
	return strings.EqualFold(strings.TrimSpace(d.Code), strings.TrimSpace(code))
}
