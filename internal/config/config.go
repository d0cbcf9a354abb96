package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

type Arguments struct {
	EncodedCredentials string `env:"ENCODED_CREDENTIALS" envDefault:""`
	OrdersSheetID      string `env:"ORDERS_SHEET_ID" envDefault:""`
	DiscountsSheetID   string `env:"DISCOUNTS_SHEET_ID" envDefault:""`
	EmailAddress       string `env:"EMAIL_ADDRESS" envDefault:""`
	EmailPassword      string `env:"EMAIL_PASSWORD" envDefault:""`
	EmailServer        string `env:"EMAIL_SERVER" envDefault:""`
	EmailPort          int    `env:"EMAIL_PORT" envDefault:"465"`
	SenderName         string `env:"SENDER_NAME" envDefault:"Small Business"`
	VerificationEmail  string `env:"VERIFICATION_EMAIL" envDefault:""`
	NotifyEmail        string `env:"NOTIFY_EMAIL" envDefault:""`
	LogLevel           string `env:"LOG_LEVEL" envDefault:"info"`
}

// SheetsConfig модель настроек доступа к таблицам Google Sheets
type SheetsConfig struct {
	EncodedCredentials string
	OrdersSheetID      string
	DiscountsSheetID   string
}

// MailConfig модель настроек почтового сервера и адресатов
type MailConfig struct {
	Server            string
	Port              int
	Address           string
	Password          string
	SenderName        string
	VerificationEmail string
	NotifyEmail       string
}

// Config модель настроек сервиса
type Config struct {
	Sheets   SheetsConfig
	Mail     MailConfig
	LogLevel string
}

func NewConfig() Config {

	// файл .env необязателен, переменные окружения имеют приоритет
	_ = godotenv.Load()

	var args Arguments
	if err := env.Parse(&args); err != nil {
		panic(fmt.Sprintf("Failed to parse enviroment var: %s", err.Error()))
	}

	var (
		credentials  = pflag.StringP("credentials", "c", args.EncodedCredentials, "Base64-encoded Google service account credentials.")
		ordersID     = pflag.StringP("orders", "o", args.OrdersSheetID, "Orders spreadsheet identifier.")
		discountsID  = pflag.StringP("discounts", "i", args.DiscountsSheetID, "Discounts spreadsheet identifier.")
		mailServer   = pflag.StringP("mail_server", "m", args.EmailServer, "SMTP server address.")
		mailPort     = pflag.IntP("mail_port", "p", args.EmailPort, "SMTP server port (implicit SSL).")
		mailAddress  = pflag.StringP("mail_address", "a", args.EmailAddress, "Sender mail address.")
		mailPassword = pflag.StringP("mail_password", "w", args.EmailPassword, "Sender mail password.")
		senderName   = pflag.StringP("sender_name", "n", args.SenderName, "Sender display name.")
		verification = pflag.StringP("verification", "v", args.VerificationEmail, "Audit address copied on every confirmation.")
		notify       = pflag.StringP("notify", "r", args.NotifyEmail, "Recipient of the run notification.")
		logLevel     = pflag.StringP("log_level", "l", args.LogLevel, "Log level.")
	)
	pflag.Parse()

	return Config{
		Sheets: SheetsConfig{
			EncodedCredentials: *credentials,
			OrdersSheetID:      *ordersID,
			DiscountsSheetID:   *discountsID,
		},
		Mail: MailConfig{
			Server:            *mailServer,
			Port:              *mailPort,
			Address:           *mailAddress,
			Password:          *mailPassword,
			SenderName:        *senderName,
			VerificationEmail: *verification,
			NotifyEmail:       *notify,
		},
		LogLevel: *logLevel,
	}
}

// Validate - проверка обязательных параметров до обращения к внешним сервисам
func (c Config) Validate() error {
	if c.Sheets.EncodedCredentials == "" {
		return errors.New("ENCODED_CREDENTIALS is not set")
	}
	if c.Sheets.OrdersSheetID == "" {
		return errors.New("ORDERS_SHEET_ID is not set")
	}
	if c.Sheets.DiscountsSheetID == "" {
		return errors.New("DISCOUNTS_SHEET_ID is not set")
	}
	if c.Mail.Server == "" {
		return errors.New("EMAIL_SERVER is not set")
	}
	if c.Mail.Address == "" {
		return errors.New("EMAIL_ADDRESS is not set")
	}
	if c.Mail.Password == "" {
		return errors.New("EMAIL_PASSWORD is not set")
	}
	return nil
}

func DefaultConfig() Config {
	return Config{
		Sheets: SheetsConfig{
			EncodedCredentials: "e30=",
			OrdersSheetID:      "orders",
			DiscountsSheetID:   "discounts",
		},
		Mail: MailConfig{
			Server:            "localhost",
			Port:              465,
			Address:           "orders@smallbusiness.ca",
			Password:          "secret",
			SenderName:        "Small Business",
			VerificationEmail: "audit@smallbusiness.ca",
			NotifyEmail:       "owner@smallbusiness.ca",
		},
		LogLevel: "info",
	}
}
