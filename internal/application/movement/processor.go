// Package movement regista movimentos (ativos, stock, viaturas) e aplica os seus efeitos.
package movement

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Armazem-api/internal/application/dto"
	"github.com/jhoicas/Armazem-api/internal/domain"
	"github.com/jhoicas/Armazem-api/internal/domain/entity"
	"github.com/jhoicas/Armazem-api/internal/domain/repository"
	"github.com/jhoicas/Armazem-api/pkg/logger"
)

// Limites das listagens de movimentos.
const (
	DefaultListLimit = 1000
	MaxListLimit     = 1000
)

// Repos agrupa os repositórios que o processador usa. Tx grava movimento e efeito
// (relocalização, ajuste de stock) na mesma transação; os restantes servem as listagens.
type Repos struct {
	Assets repository.AssetMovementRepository
	Stock  repository.StockMovementRepository
	Usage  repository.VehicleUsageRepository
	Tx     repository.MovementTxRunner
}

// Processor grava movimentos e aplica os efeitos derivados:
// relocalização de equipamento e ajuste atómico de stock.
// As referências dos movimentos não são validadas: o registo é sempre gravado.
type Processor struct {
	repos Repos
	log   *logger.Logger
	now   func() time.Time
}

// NewProcessor constrói o processador.
func NewProcessor(repos Repos, log *logger.Logger) *Processor {
	return &Processor{repos: repos, log: log, now: func() time.Time { return time.Now().UTC() }}
}

// RecordAssetMovement grava o movimento e, com destino, muda o local_id do equipamento.
// Só a coleção de equipamentos é atualizada, mesmo quando tipo_ativo é "viatura".
// Um equipamento inexistente não é erro.
func (p *Processor) RecordAssetMovement(ctx context.Context, in dto.AssetMovementRequest) (*dto.AssetMovementResponse, error) {
	if strings.TrimSpace(in.AssetID) == "" || strings.TrimSpace(in.MovementType) == "" {
		return nil, fmt.Errorf("%w: ativo_id e tipo_movimento são obrigatórios", domain.ErrInvalidInput)
	}
	kind := in.AssetKind
	if kind == "" {
		kind = entity.AssetKindEquipment
	}
	m := &entity.AssetMovement{
		ID:            uuid.New().String(),
		AssetID:       entity.UncheckedRef(in.AssetID),
		AssetKind:     kind,
		MovementType:  in.MovementType,
		OriginID:      entity.NewUncheckedRef(in.OriginID),
		DestinationID: entity.NewUncheckedRef(in.DestinationID),
		Responsible:   in.Responsible,
		Notes:         in.Notes,
		OccurredAt:    p.now(),
	}
	moved := false
	err := p.repos.Tx.RunMovements(ctx, func(tx repository.MovementTx) error {
		if err := tx.Assets.Create(ctx, m); err != nil {
			return err
		}
		if m.DestinationID == nil {
			return nil
		}
		var err error
		moved, err = tx.Equipment.SetLocation(ctx, string(m.AssetID), *m.DestinationID)
		return err
	})
	if err != nil {
		p.log.Error().Err(err).Str("ativo_id", string(m.AssetID)).Msg("movimento de ativo não gravado")
		return nil, err
	}
	if m.DestinationID != nil && !moved {
		p.log.Debug().Str("ativo_id", string(m.AssetID)).Str("tipo_ativo", kind).
			Msg("movimento sem equipamento correspondente; local não alterado")
	}

	out := dto.FromAssetMovement(m)
	return &out, nil
}

// RecordStockMovement grava o movimento e aplica stock_atual += delta (Entrada soma, resto subtrai)
// num único update atómico, na mesma transação. A quantidade é aplicada tal como vem
// (zero ou negativa incluídas). Material inexistente: movimento fica gravado, stock não muda.
func (p *Processor) RecordStockMovement(ctx context.Context, in dto.StockMovementRequest) (*dto.StockMovementResponse, error) {
	if strings.TrimSpace(in.MaterialID) == "" || strings.TrimSpace(in.MovementType) == "" {
		return nil, fmt.Errorf("%w: material_id e tipo_movimento são obrigatórios", domain.ErrInvalidInput)
	}
	m := &entity.StockMovement{
		ID:           uuid.New().String(),
		MaterialID:   entity.UncheckedRef(in.MaterialID),
		MovementType: in.MovementType,
		Quantity:     in.Quantity,
		SiteID:       entity.NewUncheckedRef(in.SiteID),
		Supplier:     in.Supplier,
		Document:     in.Document,
		Responsible:  in.Responsible,
		Notes:        in.Notes,
		OccurredAt:   p.now(),
	}
	adjusted := false
	err := p.repos.Tx.RunMovements(ctx, func(tx repository.MovementTx) error {
		if err := tx.Stock.Create(ctx, m); err != nil {
			return err
		}
		var err error
		adjusted, err = tx.Materials.AdjustStock(ctx, string(m.MaterialID), m.Delta())
		return err
	})
	if err != nil {
		p.log.Error().Err(err).Str("material_id", string(m.MaterialID)).Msg("movimento de stock não gravado")
		return nil, err
	}
	if !adjusted {
		p.log.Debug().Str("material_id", string(m.MaterialID)).Msg("movimento de stock sem material correspondente")
	}

	out := dto.FromStockMovement(m)
	return &out, nil
}

// RecordVehicleUsage grava o registo de utilização; não altera a viatura.
func (p *Processor) RecordVehicleUsage(ctx context.Context, in dto.VehicleUsageRequest) (*dto.VehicleUsageResponse, error) {
	if strings.TrimSpace(in.VehicleID) == "" {
		return nil, fmt.Errorf("%w: viatura_id é obrigatório", domain.ErrInvalidInput)
	}
	m := &entity.VehicleUsage{
		ID:          uuid.New().String(),
		VehicleID:   entity.UncheckedRef(in.VehicleID),
		SiteID:      entity.NewUncheckedRef(in.SiteID),
		Driver:      in.Driver,
		OdometerIn:  in.OdometerIn,
		OdometerOut: in.OdometerOut,
		Date:        in.Date,
		Notes:       in.Notes,
		CreatedAt:   p.now(),
	}
	if err := p.repos.Usage.Create(ctx, m); err != nil {
		return nil, err
	}
	out := dto.FromVehicleUsage(m)
	return &out, nil
}

func normalizeFilter(f repository.MovementFilter) repository.MovementFilter {
	if f.Limit <= 0 {
		f.Limit = DefaultListLimit
	}
	if f.Limit > MaxListLimit {
		f.Limit = MaxListLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return f
}

// ListAssetMovements lista movimentos de ativos, mais recentes primeiro.
func (p *Processor) ListAssetMovements(ctx context.Context, f repository.MovementFilter) ([]dto.AssetMovementResponse, error) {
	list, err := p.repos.Assets.List(ctx, normalizeFilter(f))
	if err != nil {
		return nil, err
	}
	return dto.FromAssetMovementList(list), nil
}

// ListStockMovements lista movimentos de stock, mais recentes primeiro.
func (p *Processor) ListStockMovements(ctx context.Context, f repository.MovementFilter) ([]dto.StockMovementResponse, error) {
	list, err := p.repos.Stock.List(ctx, normalizeFilter(f))
	if err != nil {
		return nil, err
	}
	return dto.FromStockMovementList(list), nil
}

// ListVehicleUsages lista utilizações de viaturas, mais recentes primeiro.
func (p *Processor) ListVehicleUsages(ctx context.Context, f repository.MovementFilter) ([]dto.VehicleUsageResponse, error) {
	list, err := p.repos.Usage.List(ctx, normalizeFilter(f))
	if err != nil {
		return nil, err
	}
	return dto.FromVehicleUsageList(list), nil
}
