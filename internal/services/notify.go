package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/denmor86/order-confirm/internal/logger"
	"github.com/denmor86/order-confirm/internal/mail"
	"github.com/denmor86/order-confirm/internal/models"
	"github.com/denmor86/order-confirm/internal/storage"
)

const (
	SentFlagColumn = "K"
	SentFlagValue  = "TRUE"

	confirmationSubject = "Order Confirmation"
	notificationSubject = "Order Confirmation Run Notification"

	// Формат даты из Google Forms: 4/27/2024 10:31:22
	submittedTimeLayout = "1/2/2006 15:04:05"
	orderDateLayout     = "01/02/2006"
)

const confirmationTemplate = `<html>
    <body>
        <p>Hi {{.Name}},</p>
        <p>Thank you for supporting a small business. We have confirmed your order number <b>{{.OrderNumber}}</b> on <b>{{.OrderDate}}</b>. Below are the details of your purchase:</p>
        {{.Table}}
        {{if .PromoCode}}<p>Promo code: {{.PromoCode}}</p>{{end}}
        <p>Once we confirm your payment, we will process your order and send you your tracking number in less than 24hrs.</p>
        <p><b>Payment steps:</b></p>
        <ol>
            <li>Send the full amount via Interac e-transfer to <b><a href="mailto:confirmation@smallbusiness.ca">confirmation@smallbusiness.ca</a></b></li>
            <li>Use the name <b>Small Business</b> as the payee name in your e-transfer setup.</li>
            <li>In the e-transfer message include your <b>order number</b>.</li>
            <li>This email is registered for auto-deposit. This means you should not need to add in a secret question and answer. If your bank requires a secret question and answer please use the secret question: <b>what do you support?</b> and secret answer: <b>small business</b></li>
        </ol>
        <p>If you have any questions or concerns about your order, please don't hesitate to reply to this email and we will get back to you as soon as possible.</p>
        <p>--</p>
        <p><b>Small Business Team</b></p>
        <p><a href="www.smallbusiness.ca">www.smallbusiness.ca</a></p>
        <p><a href="www.instagram.com">@smallbusiness</a></p>
    </body>
</html>`

var confirmationTmpl = template.Must(template.New("confirmation").Parse(confirmationTemplate))

type confirmationData struct {
	Name        string
	OrderNumber string
	OrderDate   string
	PromoCode   string
	Table       template.HTML
}

type Notify struct {
	Orders       storage.OrdersStorage
	Pricing      *Pricing
	Sender       mail.Sender
	Verification string
	NotifyEmail  string
}

// Создание сервиса
func NewNotify(orders storage.OrdersStorage, pricing *Pricing, sender mail.Sender, verification string, notifyEmail string) *Notify {
	return &Notify{
		Orders:       orders,
		Pricing:      pricing,
		Sender:       sender,
		Verification: verification,
		NotifyEmail:  notifyEmail,
	}
}

// Pending - записи с номером заказа и без отправленного письма. Флаг отправки -
// единственная защита от повторной доставки
func (s *Notify) Pending(ctx context.Context) ([]models.OrderRecord, error) {
	records, err := s.Orders.Records(ctx)
	if err != nil {
		return nil, err
	}
	pending := make([]models.OrderRecord, 0, len(records))
	for _, record := range records {
		if record.OrderNumber == "" || record.EmailSent {
			continue
		}
		pending = append(pending, record)
	}
	return pending, nil
}

// Deliver - сводка заказа, письмо покупателю и контрольному адресу, установка
// флага отправки. Флаг ставится только после успешной доставки
func (s *Notify) Deliver(ctx context.Context, record models.OrderRecord) error {
	summary, err := s.Pricing.BuildSummary(ctx, record.Row)
	if err != nil {
		return fmt.Errorf("failed to build summary for row %d: %w", record.Row, err)
	}
	table, err := RenderHTML(summary)
	if err != nil {
		return err
	}

	number := FormatOrderNumber(record.OrderNumber)
	body, err := confirmationBody(record, number, table)
	if err != nil {
		return err
	}

	message := mail.Message{
		To:      []string{s.Verification, record.Email},
		Subject: confirmationSubject,
		HTML:    body,
	}
	if err := s.Sender.Send(message); err != nil {
		return fmt.Errorf("failed to send confirmation to %s for order %s: %w", record.Email, number, err)
	}

	if err := s.Orders.UpdateCell(ctx, record.Row, SentFlagColumn, SentFlagValue); err != nil {
		return fmt.Errorf("failed to mark row %d as sent: %w", record.Row, err)
	}
	logger.Infof("Email sent to %s for order %s, row %d marked as sent", record.Email, number, record.Row)
	return nil
}

// SendRunNotification - уведомление о завершении запуска, отправляется при
// каждом вызове независимо от наличия заказов
func (s *Notify) SendRunNotification(runID string) error {
	message := mail.Message{
		To:      []string{s.NotifyEmail},
		Subject: notificationSubject,
		Text:    fmt.Sprintf("The order confirmation run %s has finished.", runID),
	}
	return s.Sender.Send(message)
}

// confirmationBody - тело письма подтверждения заказа
func confirmationBody(record models.OrderRecord, number string, table string) (string, error) {
	date := record.SubmittedOn
	if parsed, err := time.Parse(submittedTimeLayout, record.SubmittedOn); err == nil {
		date = parsed.Format(orderDateLayout)
	} else {
		logger.Warnf("Unexpected submission time %q at row %d, using raw value", record.SubmittedOn, record.Row)
	}

	var buffer bytes.Buffer
	err := confirmationTmpl.Execute(&buffer, confirmationData{
		Name:        record.Name,
		OrderNumber: number,
		OrderDate:   date,
		PromoCode:   record.PromoCode,
		Table:       template.HTML(table),
	})
	if err != nil {
		return "", fmt.Errorf("failed to render confirmation body: %w", err)
	}
	return buffer.String(), nil
}
