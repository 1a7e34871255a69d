package memory

import (
	"context"

	"github.com/jhoicas/Armazem-api/internal/domain/entity"
	"github.com/jhoicas/Armazem-api/internal/domain/repository"
)

var (
	_ repository.AssetMovementRepository = (*AssetMovementRepo)(nil)
	_ repository.StockMovementRepository = (*StockMovementRepo)(nil)
	_ repository.VehicleUsageRepository  = (*VehicleUsageRepo)(nil)
)

// newestFirst filtra e devolve cópias do mais recente para o mais antigo.
func newestFirst[T any](rows []*T, keep func(*T) bool, f repository.MovementFilter) []*T {
	out := make([]*T, 0)
	for i := len(rows) - 1; i >= 0; i-- {
		if f.RefID == "" || keep(rows[i]) {
			c := *rows[i]
			out = append(out, &c)
		}
	}
	return page(out, f.Limit, f.Offset)
}

// AssetMovementRepo diário de movimentos de ativos em memória.
type AssetMovementRepo struct {
	s    *Store
	undo *journal
}

// Create acrescenta o movimento.
func (r *AssetMovementRepo) Create(_ context.Context, m *entity.AssetMovement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c := *m
	c.OriginID = clonePtr(m.OriginID)
	c.DestinationID = clonePtr(m.DestinationID)
	r.s.assetMovements = append(r.s.assetMovements, &c)
	r.undo.record(func() {
		r.s.assetMovements = removeWhere(r.s.assetMovements, func(x *entity.AssetMovement) bool { return x.ID == c.ID })
	})
	return nil
}

// List devolve os movimentos, mais recentes primeiro.
func (r *AssetMovementRepo) List(_ context.Context, f repository.MovementFilter) ([]*entity.AssetMovement, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return newestFirst(r.s.assetMovements, func(m *entity.AssetMovement) bool {
		return string(m.AssetID) == f.RefID
	}, f), nil
}

// StockMovementRepo diário de movimentos de stock em memória.
type StockMovementRepo struct {
	s    *Store
	undo *journal
}

// Create acrescenta o movimento.
func (r *StockMovementRepo) Create(_ context.Context, m *entity.StockMovement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c := *m
	c.SiteID = clonePtr(m.SiteID)
	r.s.stockMovements = append(r.s.stockMovements, &c)
	r.undo.record(func() {
		r.s.stockMovements = removeWhere(r.s.stockMovements, func(x *entity.StockMovement) bool { return x.ID == c.ID })
	})
	return nil
}

// List devolve os movimentos, mais recentes primeiro.
func (r *StockMovementRepo) List(_ context.Context, f repository.MovementFilter) ([]*entity.StockMovement, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return newestFirst(r.s.stockMovements, func(m *entity.StockMovement) bool {
		return string(m.MaterialID) == f.RefID
	}, f), nil
}

// VehicleUsageRepo diário de utilização de viaturas em memória.
type VehicleUsageRepo struct {
	s *Store
}

// Create acrescenta o registo.
func (r *VehicleUsageRepo) Create(_ context.Context, m *entity.VehicleUsage) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c := *m
	c.SiteID = clonePtr(m.SiteID)
	r.s.vehicleUsages = append(r.s.vehicleUsages, &c)
	return nil
}

// List devolve os registos, mais recentes primeiro.
func (r *VehicleUsageRepo) List(_ context.Context, f repository.MovementFilter) ([]*entity.VehicleUsage, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return newestFirst(r.s.vehicleUsages, func(m *entity.VehicleUsage) bool {
		return string(m.VehicleID) == f.RefID
	}, f), nil
}
