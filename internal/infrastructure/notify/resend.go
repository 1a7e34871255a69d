package notify

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"

	"github.com/jhoicas/Armazem-api/internal/application/dto"
	"github.com/jhoicas/Armazem-api/internal/application/ports"
)

var _ ports.AlertDispatcher = (*ResendDispatcher)(nil)

// ResendDispatcher envia os alertas pela API da Resend.
type ResendDispatcher struct {
	client    *resend.Client
	sender    string
	recipient string
}

// NewResendDispatcher constrói o adaptador.
func NewResendDispatcher(apiKey, sender, recipient string) *ResendDispatcher {
	return &ResendDispatcher{
		client:    resend.NewClient(apiKey),
		sender:    sender,
		recipient: recipient,
	}
}

// Dispatch envia um único email com todos os alertas. DeliveryID = id devolvido pela Resend.
func (d *ResendDispatcher) Dispatch(ctx context.Context, notices []dto.AlertNotice) (ports.DispatchResult, error) {
	body, err := RenderAlertEmail(notices)
	if err != nil {
		return ports.DispatchResult{}, err
	}
	sent, err := d.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    d.sender,
		To:      []string{d.recipient},
		Subject: Subject(len(notices)),
		Html:    body,
	})
	if err != nil {
		return ports.DispatchResult{}, fmt.Errorf("resend: %w", err)
	}
	return ports.DispatchResult{Sent: true, DeliveryID: sent.Id}, nil
}
