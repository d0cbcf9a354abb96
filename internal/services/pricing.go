package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/denmor86/order-confirm/internal/models"
	"github.com/denmor86/order-confirm/internal/storage"
)

const (
	// Диапазон D..F строки заказа: два товара и промокод
	productFromColumn = "D"
	promoToColumn     = "F"
	orderCellCount    = 3

	shippingPrice = 15
)

// Товары в порядке колонок D, E
var productNames = []string{"Anxiety Reset", "Immune Harmony"}

var (
	quantityPattern = regexp.MustCompile(`^(\d+)`)
	pricePattern    = regexp.MustCompile(`\$(\d+)`)
)

type Pricing struct {
	Orders    storage.OrdersStorage
	Discounts storage.DiscountsStorage
}

// Создание сервиса
func NewPricing(orders storage.OrdersStorage, discounts storage.DiscountsStorage) *Pricing {
	return &Pricing{Orders: orders, Discounts: discounts}
}

// BuildSummary - сводка заказа по строке листа: товары, скидка по промокоду,
// строка доставки и итоги
func (s *Pricing) BuildSummary(ctx context.Context, row int) (*models.OrderSummary, error) {
	cells, err := s.Orders.RowCells(ctx, row, productFromColumn, promoToColumn)
	if err != nil {
		return nil, fmt.Errorf("failed to read order row %d: %w", row, err)
	}
	// пустые ячейки в конце диапазона не возвращаются, дополняем
	for len(cells) < orderCellCount {
		cells = append(cells, "")
	}

	lines := make([]models.SummaryLine, 0, len(productNames)+1)
	for i, name := range productNames {
		quantity, price := ParseProduct(cells[i])
		lines = append(lines, models.SummaryLine{Name: name, Quantity: quantity, Price: price})
	}

	discount, err := s.findDiscount(ctx, cells[2])
	if err != nil {
		return nil, err
	}
	if discount != nil {
		factor := decimal.NewFromInt(1).Sub(discount.Percent.Div(decimal.NewFromInt(100)))
		for i := range lines {
			if lines[i].Price.Valid {
				lines[i].Price.Decimal = lines[i].Price.Decimal.Mul(factor)
			}
		}
	}

	lines = append(lines, models.SummaryLine{
		Name:  "Shipping",
		Price: decimal.NewNullDecimal(decimal.NewFromInt(shippingPrice)),
	})

	summary := &models.OrderSummary{Lines: lines}
	summary.TotalQuantity = sumLines(lines, func(line models.SummaryLine) decimal.NullDecimal { return line.Quantity })
	summary.TotalPrice = sumLines(lines, func(line models.SummaryLine) decimal.NullDecimal { return line.Price })
	return summary, nil
}

// ParseProduct - разбор поля товара вида "2 x $20". Количество - ведущее
// целое, цена - целое после знака доллара. Без полного совпадения оба
// значения считаются отсутствующими
func ParseProduct(text string) (quantity decimal.NullDecimal, price decimal.NullDecimal) {
	if text == "" {
		return
	}
	quantityMatch := quantityPattern.FindStringSubmatch(text)
	priceMatch := pricePattern.FindStringSubmatch(text)
	if quantityMatch == nil || priceMatch == nil {
		return
	}
	// шаблоны допускают только цифры, ошибки разбора невозможны
	quantityValue, _ := decimal.NewFromString(quantityMatch[1])
	priceValue, _ := decimal.NewFromString(priceMatch[1])
	return decimal.NewNullDecimal(quantityValue), decimal.NewNullDecimal(priceValue)
}

// findDiscount - поиск первой действующей записи с совпадающим кодом.
// Отсутствие совпадения - не ошибка
func (s *Pricing) findDiscount(ctx context.Context, promoCode string) (*models.DiscountRecord, error) {
	code := strings.ToLower(strings.TrimSpace(promoCode))
	if code == "" {
		return nil, nil
	}
	records, err := s.Discounts.Discounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read discounts: %w", err)
	}
	for _, record := range records {
		if record.Matches(code) && record.Active() {
			return &record, nil
		}
	}
	return nil, nil
}

// sumLines - сумма значений без учёта отсутствующих. Если отсутствуют все,
// итог тоже отсутствует (пустая ячейка, а не ноль)
func sumLines(lines []models.SummaryLine, pick func(models.SummaryLine) decimal.NullDecimal) decimal.NullDecimal {
	var total decimal.NullDecimal
	for _, line := range lines {
		value := pick(line)
		if !value.Valid {
			continue
		}
		if !total.Valid {
			total = decimal.NewNullDecimal(value.Decimal)
			continue
		}
		total.Decimal = total.Decimal.Add(value.Decimal)
	}
	return total
}

const summaryTemplate = `<table border="1" class="dataframe">
  <thead>
    <tr style="text-align: right;">
      <th></th>
      <th>Quantity</th>
      <th>Price</th>
    </tr>
  </thead>
  <tbody>
{{- range .}}
    <tr>
      <th>{{.Name}}</th>
      <td>{{.Quantity}}</td>
      <td>{{.Price}}</td>
    </tr>
{{- end}}
  </tbody>
</table>`

var summaryTmpl = template.Must(template.New("summary").Parse(summaryTemplate))

type summaryRow struct {
	Name     string
	Quantity string
	Price    string
}

// RenderHTML - сводка заказа в виде HTML таблицы, отсутствующие значения
// выводятся пустыми ячейками, итоговая цена - в формате валюты
func RenderHTML(summary *models.OrderSummary) (string, error) {
	rows := make([]summaryRow, 0, len(summary.Lines)+1)
	for _, line := range summary.Lines {
		rows = append(rows, summaryRow{
			Name:     line.Name,
			Quantity: formatCell(line.Quantity),
			Price:    formatCell(line.Price),
		})
	}
	rows = append(rows, summaryRow{
		Name:     "Total",
		Quantity: formatCell(summary.TotalQuantity),
		Price:    formatTotalPrice(summary.TotalPrice),
	})

	var buffer bytes.Buffer
	if err := summaryTmpl.Execute(&buffer, rows); err != nil {
		return "", fmt.Errorf("failed to render order table: %w", err)
	}
	return buffer.String(), nil
}

func formatCell(value decimal.NullDecimal) string {
	if !value.Valid {
		return ""
	}
	return value.Decimal.String()
}

func formatTotalPrice(value decimal.NullDecimal) string {
	if !value.Valid {
		return ""
	}
	return "$" + value.Decimal.StringFixed(2)
}
