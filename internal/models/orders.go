package models

import "github.com/shopspring/decimal"

// OrderRecord - строка листа заказов, поля выбираются по заголовкам таблицы
type OrderRecord struct {
	Row         int // номер строки листа (нумерация с единицы, первая строка - заголовки)
	SubmittedOn string
	Name        string
	Email       string
	PromoCode   string
	OrderNumber string
	EmailSent   bool
}

// SummaryLine - строка сводной таблицы заказа. Отсутствующее значение
// (Valid=false) выводится пустой ячейкой и не участвует в итогах
type SummaryLine struct {
	Name     string
	Quantity decimal.NullDecimal
	Price    decimal.NullDecimal
}

// OrderSummary - сводка заказа, строится заново при каждой отправке
type OrderSummary struct {
	Lines         []SummaryLine
	TotalQuantity decimal.NullDecimal
	TotalPrice    decimal.NullDecimal
}
