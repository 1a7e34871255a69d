package memory

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Armazem-api/internal/domain/entity"
	"github.com/jhoicas/Armazem-api/internal/domain/repository"
)

var _ repository.SummaryRepository = (*SummaryRepo)(nil)

// SummaryRepo contagens sobre as coleções em memória.
type SummaryRepo struct {
	s *Store
}

// Totals percorre as coleções sob o lock de leitura.
func (r *SummaryRepo) Totals(_ context.Context) (*repository.InventoryTotals, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	t := &repository.InventoryTotals{StockTotal: decimal.Zero}
	t.EquipmentTotal = len(r.s.equipment)
	for _, e := range r.s.equipment {
		if e.Active {
			t.EquipmentActive++
		}
	}
	t.VehicleTotal = len(r.s.vehicles)
	for _, v := range r.s.vehicles {
		if v.Active {
			t.VehicleActive++
		}
	}
	t.MaterialTotal = len(r.s.materials)
	for _, m := range r.s.materials {
		t.StockTotal = t.StockTotal.Add(m.StockCurrent)
	}
	t.LocationTotal = len(r.s.locations)
	for _, l := range r.s.locations {
		switch l.Type {
		case entity.LocationTypeWarehouse:
			t.Warehouses++
		case entity.LocationTypeWorkshop:
			t.Workshops++
		case entity.LocationTypeSite:
			t.SiteLocations++
		}
	}
	t.SiteTotal = len(r.s.sites)
	for _, s := range r.s.sites {
		switch s.Status {
		case entity.SiteStatusActive:
			t.SitesActive++
		case entity.SiteStatusCompleted:
			t.SitesCompleted++
		case entity.SiteStatusPaused:
			t.SitesPaused++
		}
	}
	return t, nil
}
