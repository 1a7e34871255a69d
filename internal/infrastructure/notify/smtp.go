package notify

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/jhoicas/Armazem-api/internal/application/dto"
	"github.com/jhoicas/Armazem-api/internal/application/ports"
)

var _ ports.AlertDispatcher = (*SMTPDispatcher)(nil)

// SMTPConfig servidor de saída.
type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
}

// sender abstrai o gomail.Dialer para os testes.
type sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPDispatcher envia os alertas por SMTP.
type SMTPDispatcher struct {
	dialer    sender
	from      string
	recipient string
}

// NewSMTPDispatcher constrói o adaptador.
func NewSMTPDispatcher(cfg SMTPConfig, from, recipient string) *SMTPDispatcher {
	return &SMTPDispatcher{
		dialer:    gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:      from,
		recipient: recipient,
	}
}

// Dispatch monta a mensagem e envia. SMTP não devolve id de entrega.
func (d *SMTPDispatcher) Dispatch(_ context.Context, notices []dto.AlertNotice) (ports.DispatchResult, error) {
	body, err := RenderAlertEmail(notices)
	if err != nil {
		return ports.DispatchResult{}, err
	}
	m := gomail.NewMessage()
	m.SetHeader("From", d.from)
	m.SetHeader("To", d.recipient)
	m.SetHeader("Subject", Subject(len(notices)))
	m.SetBody("text/html", body)

	if err := d.dialer.DialAndSend(m); err != nil {
		return ports.DispatchResult{}, fmt.Errorf("smtp: %w", err)
	}
	return ports.DispatchResult{Sent: true}, nil
}
