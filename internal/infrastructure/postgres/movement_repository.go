package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Armazem-api/internal/domain/entity"
	"github.com/jhoicas/Armazem-api/internal/domain/repository"
)

var (
	_ repository.AssetMovementRepository = (*AssetMovementRepo)(nil)
	_ repository.StockMovementRepository = (*StockMovementRepo)(nil)
	_ repository.VehicleUsageRepository  = (*VehicleUsageRepo)(nil)
)

// AssetMovementRepo diário movimentos_ativos (só inserções).
type AssetMovementRepo struct {
	q Querier
}

// NewAssetMovementRepository constrói o adaptador do diário de movimentos de ativos.
func NewAssetMovementRepository(q Querier) *AssetMovementRepo {
	return &AssetMovementRepo{q: q}
}

// Create grava o movimento.
func (r *AssetMovementRepo) Create(ctx context.Context, m *entity.AssetMovement) error {
	query := `
		INSERT INTO movimentos_ativos (id, ativo_id, tipo_ativo, tipo_movimento, origem_id, destino_id, responsavel, observacoes, data_hora)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		m.ID, string(m.AssetID), m.AssetKind, m.MovementType, entity.RefString(m.OriginID),
		entity.RefString(m.DestinationID), m.Responsible, m.Notes, m.OccurredAt,
	)
	if err != nil {
		return fmt.Errorf("insert movimento de ativo: %w", err)
	}
	return nil
}

// List devolve os movimentos mais recentes primeiro, filtrados por ativo se RefID vier preenchido.
func (r *AssetMovementRepo) List(ctx context.Context, f repository.MovementFilter) ([]*entity.AssetMovement, error) {
	limit, offset := pageArgs(f.Limit, f.Offset)
	query := `
		SELECT id, ativo_id, tipo_ativo, tipo_movimento, origem_id, destino_id, responsavel, observacoes, data_hora
		FROM movimentos_ativos WHERE ($1 = '' OR ativo_id = $1)
		ORDER BY data_hora DESC, id DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, f.RefID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movimentos de ativos: %w", err)
	}
	return collect(rows, func(row pgx.Rows) (*entity.AssetMovement, error) {
		var m entity.AssetMovement
		var assetID string
		var origin, dest *string
		if err := row.Scan(&m.ID, &assetID, &m.AssetKind, &m.MovementType, &origin, &dest,
			&m.Responsible, &m.Notes, &m.OccurredAt); err != nil {
			return nil, fmt.Errorf("scan movimento de ativo: %w", err)
		}
		m.AssetID = entity.UncheckedRef(assetID)
		m.OriginID = entity.NewUncheckedRef(origin)
		m.DestinationID = entity.NewUncheckedRef(dest)
		return &m, nil
	})
}

// StockMovementRepo diário movimentos_stock.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository constrói o adaptador do diário de movimentos de stock.
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create grava o movimento.
func (r *StockMovementRepo) Create(ctx context.Context, m *entity.StockMovement) error {
	query := `
		INSERT INTO movimentos_stock (id, material_id, tipo_movimento, quantidade, obra_id, fornecedor, documento, responsavel, observacoes, data_hora)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		m.ID, string(m.MaterialID), m.MovementType, m.Quantity, entity.RefString(m.SiteID),
		m.Supplier, m.Document, m.Responsible, m.Notes, m.OccurredAt,
	)
	if err != nil {
		return fmt.Errorf("insert movimento de stock: %w", err)
	}
	return nil
}

// List devolve os movimentos mais recentes primeiro, filtrados por material se RefID vier preenchido.
func (r *StockMovementRepo) List(ctx context.Context, f repository.MovementFilter) ([]*entity.StockMovement, error) {
	limit, offset := pageArgs(f.Limit, f.Offset)
	query := `
		SELECT id, material_id, tipo_movimento, quantidade, obra_id, fornecedor, documento, responsavel, observacoes, data_hora
		FROM movimentos_stock WHERE ($1 = '' OR material_id = $1)
		ORDER BY data_hora DESC, id DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, f.RefID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movimentos de stock: %w", err)
	}
	return collect(rows, func(row pgx.Rows) (*entity.StockMovement, error) {
		var m entity.StockMovement
		var materialID string
		var siteID *string
		if err := row.Scan(&m.ID, &materialID, &m.MovementType, &m.Quantity, &siteID, &m.Supplier,
			&m.Document, &m.Responsible, &m.Notes, &m.OccurredAt); err != nil {
			return nil, fmt.Errorf("scan movimento de stock: %w", err)
		}
		m.MaterialID = entity.UncheckedRef(materialID)
		m.SiteID = entity.NewUncheckedRef(siteID)
		return &m, nil
	})
}

// VehicleUsageRepo diário movimentos_viaturas.
type VehicleUsageRepo struct {
	q Querier
}

// NewVehicleUsageRepository constrói o adaptador do diário de utilização de viaturas.
func NewVehicleUsageRepository(q Querier) *VehicleUsageRepo {
	return &VehicleUsageRepo{q: q}
}

// Create grava o registo.
func (r *VehicleUsageRepo) Create(ctx context.Context, m *entity.VehicleUsage) error {
	query := `
		INSERT INTO movimentos_viaturas (id, viatura_id, obra_id, condutor, km_inicial, km_final, data, observacoes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		m.ID, string(m.VehicleID), entity.RefString(m.SiteID), m.Driver, m.OdometerIn, m.OdometerOut,
		m.Date, m.Notes, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert utilização de viatura: %w", err)
	}
	return nil
}

// List devolve os registos mais recentes primeiro, filtrados por viatura se RefID vier preenchido.
func (r *VehicleUsageRepo) List(ctx context.Context, f repository.MovementFilter) ([]*entity.VehicleUsage, error) {
	limit, offset := pageArgs(f.Limit, f.Offset)
	query := `
		SELECT id, viatura_id, obra_id, condutor, km_inicial, km_final, data, observacoes, created_at
		FROM movimentos_viaturas WHERE ($1 = '' OR viatura_id = $1)
		ORDER BY created_at DESC, id DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, f.RefID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list utilizações de viaturas: %w", err)
	}
	return collect(rows, func(row pgx.Rows) (*entity.VehicleUsage, error) {
		var m entity.VehicleUsage
		var vehicleID string
		var siteID *string
		if err := row.Scan(&m.ID, &vehicleID, &siteID, &m.Driver, &m.OdometerIn, &m.OdometerOut,
			&m.Date, &m.Notes, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan utilização de viatura: %w", err)
		}
		m.VehicleID = entity.UncheckedRef(vehicleID)
		m.SiteID = entity.NewUncheckedRef(siteID)
		return &m, nil
	})
}
