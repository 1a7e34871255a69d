package memory

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Armazem-api/internal/domain"
	"github.com/jhoicas/Armazem-api/internal/domain/entity"
	"github.com/jhoicas/Armazem-api/internal/domain/repository"
)

var _ repository.MaterialRepository = (*MaterialRepo)(nil)

// MaterialRepo materiais em memória.
type MaterialRepo struct {
	s    *Store
	undo *journal
}

func (r *MaterialRepo) codeTaken(code, exceptID string) bool {
	return indexOf(r.s.materials, func(x *entity.Material) bool { return x.Code == code && x.ID != exceptID }) >= 0
}

// Create grava o material; código repetido devolve ErrDuplicate.
func (r *MaterialRepo) Create(_ context.Context, m *entity.Material) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.codeTaken(m.Code, "") {
		return domain.ErrDuplicate
	}
	r.s.materials = append(r.s.materials, cloneMaterial(m))
	return nil
}

// GetByID obtém por id.
func (r *MaterialRepo) GetByID(_ context.Context, id string) (*entity.Material, error) {
	return r.find(func(x *entity.Material) bool { return x.ID == id }), nil
}

// GetByCode obtém pelo código.
func (r *MaterialRepo) GetByCode(_ context.Context, code string) (*entity.Material, error) {
	return r.find(func(x *entity.Material) bool { return x.Code == code }), nil
}

func (r *MaterialRepo) find(match func(*entity.Material) bool) *entity.Material {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if i := indexOf(r.s.materials, match); i >= 0 {
		return cloneMaterial(r.s.materials[i])
	}
	return nil
}

// List devolve todos por ordem de inserção.
func (r *MaterialRepo) List(_ context.Context) ([]*entity.Material, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return cloneAll(r.s.materials, cloneMaterial), nil
}

// ListByLocations devolve os que estão num dos locais indicados.
func (r *MaterialRepo) ListByLocations(_ context.Context, locationIDs []string) ([]*entity.Material, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return filterClone(r.s.materials, func(x *entity.Material) bool { return inLocations(x.LocationID, locationIDs) }, cloneMaterial), nil
}

// Update substitui os campos editáveis, mantendo stock_atual e created_at.
func (r *MaterialRepo) Update(_ context.Context, m *entity.Material) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := indexOf(r.s.materials, func(x *entity.Material) bool { return x.ID == m.ID })
	if i < 0 {
		return domain.ErrNotFound
	}
	if r.codeTaken(m.Code, m.ID) {
		return domain.ErrDuplicate
	}
	cur := r.s.materials[i]
	next := cloneMaterial(m)
	next.StockCurrent = cur.StockCurrent
	next.CreatedAt = cur.CreatedAt
	r.s.materials[i] = next
	return nil
}

// AdjustStock soma delta ao stock sob o lock de escrita.
func (r *MaterialRepo) AdjustStock(_ context.Context, id string, delta decimal.Decimal) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := indexOf(r.s.materials, func(x *entity.Material) bool { return x.ID == id })
	if i < 0 {
		return false, nil
	}
	r.s.materials[i].StockCurrent = r.s.materials[i].StockCurrent.Add(delta)
	r.undo.record(func() {
		if j := indexOf(r.s.materials, func(x *entity.Material) bool { return x.ID == id }); j >= 0 {
			r.s.materials[j].StockCurrent = r.s.materials[j].StockCurrent.Sub(delta)
		}
	})
	return true, nil
}

// Delete elimina por id.
func (r *MaterialRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := indexOf(r.s.materials, func(x *entity.Material) bool { return x.ID == id })
	if i < 0 {
		return domain.ErrNotFound
	}
	r.s.materials = append(r.s.materials[:i], r.s.materials[i+1:]...)
	return nil
}
