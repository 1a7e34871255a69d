package ports

import (
	"context"

	"github.com/jhoicas/Armazem-api/internal/application/dto"
)

// DispatchResult resultado de um envio de alertas. Sent=false sem erro significa
// que o transporte não está configurado e nada foi enviado.
type DispatchResult struct {
	Sent       bool
	DeliveryID string
}

// AlertDispatcher define o porto de saída para entrega de alertas (Resend, SMTP, noop).
// Implementações não repetem tentativas: uma falha é devolvida tal como aconteceu.
type AlertDispatcher interface {
	Dispatch(ctx context.Context, alerts []dto.AlertNotice) (DispatchResult, error)
}
