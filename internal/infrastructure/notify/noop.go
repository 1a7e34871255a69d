package notify

import (
	"context"

	"github.com/jhoicas/Armazem-api/internal/application/dto"
	"github.com/jhoicas/Armazem-api/internal/application/ports"
	"github.com/jhoicas/Armazem-api/pkg/logger"
)

var _ ports.AlertDispatcher = (*NoopDispatcher)(nil)

// NoopDispatcher usado quando não há transporte configurado: regista e não envia.
type NoopDispatcher struct {
	log *logger.Logger
}

// NewNoopDispatcher constrói o adaptador.
func NewNoopDispatcher(log *logger.Logger) *NoopDispatcher {
	return &NoopDispatcher{log: log}
}

func (d *NoopDispatcher) Dispatch(_ context.Context, notices []dto.AlertNotice) (ports.DispatchResult, error) {
	d.log.Warn().Int("alertas", len(notices)).Msg("Email alerts not configured")
	return ports.DispatchResult{Sent: false}, nil
}
