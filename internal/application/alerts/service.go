// Package alerts expõe o motor de alertas aos consumidores: verificação, envio e dashboard.
package alerts

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Armazem-api/internal/application/dto"
	"github.com/jhoicas/Armazem-api/internal/application/ports"
	"github.com/jhoicas/Armazem-api/internal/domain"
	"github.com/jhoicas/Armazem-api/internal/domain/alert"
	"github.com/jhoicas/Armazem-api/internal/domain/repository"
	"github.com/jhoicas/Armazem-api/pkg/logger"
)

// Estados devolvidos por Send.
const (
	SendStatusSuccess = "success"
	SendStatusSkipped = "skipped"
)

// Service lê viaturas e materiais e corre o motor de alertas sobre eles.
type Service struct {
	vehicles   repository.VehicleRepository
	materials  repository.MaterialRepository
	dispatcher ports.AlertDispatcher
	daysBefore int
	log        *logger.Logger
	now        func() time.Time
}

// NewService constrói o serviço. daysBefore é a janela por omissão (ALERT_DAYS_BEFORE).
func NewService(
	vehicles repository.VehicleRepository,
	materials repository.MaterialRepository,
	dispatcher ports.AlertDispatcher,
	daysBefore int,
	log *logger.Logger,
) *Service {
	return &Service{
		vehicles:   vehicles,
		materials:  materials,
		dispatcher: dispatcher,
		daysBefore: daysBefore,
		log:        log,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// DaysBefore janela configurada.
func (s *Service) DaysBefore() int { return s.daysBefore }

// Scan lê as coleções e devolve os alertas internos. days < 0 é rejeitado.
// As duas leituras não são transacionais entre si.
func (s *Service) Scan(ctx context.Context, days int) ([]alert.Alert, error) {
	if days < 0 {
		return nil, fmt.Errorf("%w: days não pode ser negativo", domain.ErrInvalidInput)
	}
	vehicles, err := s.vehicles.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("alertas: listar viaturas: %w", err)
	}
	materials, err := s.materials.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("alertas: listar materiais: %w", err)
	}
	return alert.Scan(vehicles, materials, days, s.now()), nil
}

// Check devolve os alertas na forma estruturada. days nil = janela configurada.
func (s *Service) Check(ctx context.Context, days *int) (*dto.AlertCheckResponse, error) {
	window := s.daysBefore
	if days != nil {
		window = *days
	}
	list, err := s.Scan(ctx, window)
	if err != nil {
		return nil, err
	}
	notices := ToNotices(list)
	return &dto.AlertCheckResponse{Alerts: notices, Total: len(notices)}, nil
}

// Send corre a verificação com a janela configurada e envia os alertas se houver algum.
// Uma falha de envio é registada e devolvida como domain.ErrDispatchFailed; nada é repetido.
func (s *Service) Send(ctx context.Context) (*dto.AlertSendResponse, error) {
	list, err := s.Scan(ctx, s.daysBefore)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return &dto.AlertSendResponse{
			Status:  SendStatusSuccess,
			Message: "Não há alertas para enviar",
		}, nil
	}

	result, err := s.dispatcher.Dispatch(ctx, ToNotices(list))
	if err != nil {
		s.log.Error().Err(err).Int("alertas", len(list)).Msg("falha no envio de alertas")
		return nil, fmt.Errorf("%w: %v", domain.ErrDispatchFailed, err)
	}
	if !result.Sent {
		s.log.Warn().Int("alertas", len(list)).Msg("envio de alertas não configurado")
		return &dto.AlertSendResponse{
			Status:      SendStatusSkipped,
			Message:     "Envio de email não configurado",
			AlertsCount: len(list),
		}, nil
	}
	s.log.Info().Int("alertas", len(list)).Str("delivery_id", result.DeliveryID).Msg("alertas enviados")
	return &dto.AlertSendResponse{
		Status:      SendStatusSuccess,
		Message:     fmt.Sprintf("Email enviado com %d alerta(s)", len(list)),
		AlertsCount: len(list),
		DeliveryID:  result.DeliveryID,
	}, nil
}
