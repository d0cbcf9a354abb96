package storage

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/api/option"
	sheets "google.golang.org/api/sheets/v4"

	"github.com/denmor86/order-confirm/internal/config"
)

// Квота Sheets API на запись - 60 запросов в минуту на пользователя
const requestsPerMinute = 60

type Spreadsheets struct {
	Service          *sheets.Service
	Limiter          *rate.Limiter
	OrdersSheetID    string
	DiscountsSheetID string
}

// Создание хранилища. Учётные данные сервисного аккаунта передаются в base64
func NewSpreadsheets(ctx context.Context, cfg config.SheetsConfig) (*Spreadsheets, error) {
	credentials, err := base64.StdEncoding.DecodeString(cfg.EncodedCredentials)
	if err != nil {
		return nil, fmt.Errorf("unable to decode credentials: %w", err)
	}
	service, err := sheets.NewService(ctx,
		option.WithCredentialsJSON(credentials),
		option.WithScopes(sheets.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("unable to create sheets service: %w", err)
	}
	return &Spreadsheets{
		Service:          service,
		Limiter:          rate.NewLimiter(rate.Every(time.Minute/requestsPerMinute), 1),
		OrdersSheetID:    cfg.OrdersSheetID,
		DiscountsSheetID: cfg.DiscountsSheetID,
	}, nil
}

// Initialize - проверка заголовков обеих таблиц до начала обработки
func (s *Spreadsheets) Initialize(ctx context.Context) error {
	header, err := s.getRange(ctx, s.OrdersSheetID, "1:1")
	if err != nil {
		return fmt.Errorf("error read orders header: %w", err)
	}
	if err := validateHeaders(header, ordersHeaders); err != nil {
		return fmt.Errorf("orders sheet: %w", err)
	}
	header, err = s.getRange(ctx, s.DiscountsSheetID, "1:1")
	if err != nil {
		return fmt.Errorf("error read discounts header: %w", err)
	}
	if err := validateHeaders(header, discountsHeaders); err != nil {
		return fmt.Errorf("discounts sheet: %w", err)
	}
	return nil
}

// getRange - чтение диапазона значений с учётом лимита запросов
func (s *Spreadsheets) getRange(ctx context.Context, sheetID string, readRange string) ([][]interface{}, error) {
	if err := s.Limiter.Wait(ctx); err != nil {
		return nil, err
	}
	response, err := s.Service.Spreadsheets.Values.Get(sheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read range %s: %w", readRange, err)
	}
	return response.Values, nil
}

// updateCell - запись одного значения. RAW сохраняет ведущие нули номера заказа
func (s *Spreadsheets) updateCell(ctx context.Context, sheetID string, cell string, value string) error {
	if err := s.Limiter.Wait(ctx); err != nil {
		return err
	}
	body := &sheets.ValueRange{Values: [][]interface{}{{value}}}
	_, err := s.Service.Spreadsheets.Values.Update(sheetID, cell, body).
		ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to update cell %s: %w", cell, err)
	}
	return nil
}

// cellString - значение ячейки в виде строки
func cellString(value interface{}) string {
	if value == nil {
		return ""
	}
	if text, ok := value.(string); ok {
		return text
	}
	return fmt.Sprint(value)
}

// validateHeaders - проверка имён заголовков на ожидаемых позициях
func validateHeaders(rows [][]interface{}, expected map[string]int) error {
	if len(rows) == 0 {
		return fmt.Errorf("%w: empty header row", ErrMissingHeader)
	}
	header := rows[0]
	for name, index := range expected {
		if index >= len(header) || !strings.EqualFold(strings.TrimSpace(cellString(header[index])), name) {
			return fmt.Errorf("%w: %q expected at column %d", ErrMissingHeader, name, index+1)
		}
	}
	return nil
}
