package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Armazem-api/internal/domain/entity"
	"github.com/jhoicas/Armazem-api/internal/domain/repository"
)

var _ repository.SummaryRepository = (*SummaryRepo)(nil)

// SummaryRepo agregações de leitura para o dashboard.
type SummaryRepo struct {
	q Querier
}

// NewSummaryRepository constrói o adaptador de resumo.
func NewSummaryRepository(q Querier) *SummaryRepo {
	return &SummaryRepo{q: q}
}

// Totals conta equipamentos, viaturas, materiais, locais e obras numa só ida à base de dados.
func (r *SummaryRepo) Totals(ctx context.Context) (*repository.InventoryTotals, error) {
	const query = `
	SELECT
	    (SELECT COUNT(*) FROM equipamentos)                                  AS equipment_total,
	    (SELECT COUNT(*) FROM equipamentos WHERE ativo)                      AS equipment_active,
	    (SELECT COUNT(*) FROM viaturas)                                      AS vehicle_total,
	    (SELECT COUNT(*) FROM viaturas WHERE ativa)                          AS vehicle_active,
	    (SELECT COUNT(*) FROM materiais)                                     AS material_total,
	    (SELECT COALESCE(SUM(stock_atual), 0) FROM materiais)                AS stock_total,
	    (SELECT COUNT(*) FROM locais)                                        AS location_total,
	    (SELECT COUNT(*) FROM locais WHERE tipo = $1)                        AS warehouses,
	    (SELECT COUNT(*) FROM locais WHERE tipo = $2)                        AS workshops,
	    (SELECT COUNT(*) FROM locais WHERE tipo = $3)                        AS site_locations,
	    (SELECT COUNT(*) FROM obras)                                         AS site_total,
	    (SELECT COUNT(*) FROM obras WHERE estado = $4)                       AS sites_active,
	    (SELECT COUNT(*) FROM obras WHERE estado = $5)                       AS sites_completed,
	    (SELECT COUNT(*) FROM obras WHERE estado = $6)                       AS sites_paused`

	var t repository.InventoryTotals
	err := r.q.QueryRow(ctx, query,
		entity.LocationTypeWarehouse, entity.LocationTypeWorkshop, entity.LocationTypeSite,
		entity.SiteStatusActive, entity.SiteStatusCompleted, entity.SiteStatusPaused,
	).Scan(
		&t.EquipmentTotal,
		&t.EquipmentActive,
		&t.VehicleTotal,
		&t.VehicleActive,
		&t.MaterialTotal,
		&t.StockTotal,
		&t.LocationTotal,
		&t.Warehouses,
		&t.Workshops,
		&t.SiteLocations,
		&t.SiteTotal,
		&t.SitesActive,
		&t.SitesCompleted,
		&t.SitesPaused,
	)
	if err != nil {
		return nil, fmt.Errorf("summary.Totals: %w", err)
	}
	return &t, nil
}
