package mail

import (
	"gopkg.in/gomail.v2"

	"github.com/denmor86/order-confirm/internal/config"
)

// Message - письмо для отправки. HTML имеет приоритет над текстом
type Message struct {
	To      []string
	Subject string
	HTML    string
	Text    string
}

// Sender - отправка писем, блокирующий вызов без повторов
type Sender interface {
	Send(message Message) error
}

type Client struct {
	Address    string
	SenderName string
	dialer     *gomail.Dialer
}

// Создание почтового клиента, соединение устанавливается при каждой отправке
func NewClient(cfg config.MailConfig) *Client {
	dialer := gomail.NewDialer(cfg.Server, cfg.Port, cfg.Address, cfg.Password)
	// неявный TLS (SMTPS), а не STARTTLS
	dialer.SSL = true
	return &Client{
		Address:    cfg.Address,
		SenderName: cfg.SenderName,
		dialer:     dialer,
	}
}

// Send - аутентификация на сервере и отправка одного письма
func (c *Client) Send(message Message) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(c.Address, c.SenderName))
	m.SetHeader("To", message.To...)
	m.SetHeader("Subject", message.Subject)
	if message.HTML != "" {
		m.SetBody("text/html", message.HTML)
	} else {
		m.SetBody("text/plain", message.Text)
	}
	return c.dialer.DialAndSend(m)
}
