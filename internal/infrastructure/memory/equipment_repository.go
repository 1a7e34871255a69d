package memory

import (
	"context"

	"github.com/jhoicas/Armazem-api/internal/domain"
	"github.com/jhoicas/Armazem-api/internal/domain/entity"
	"github.com/jhoicas/Armazem-api/internal/domain/repository"
)

var _ repository.EquipmentRepository = (*EquipmentRepo)(nil)

// EquipmentRepo equipamentos em memória.
type EquipmentRepo struct {
	s    *Store
	undo *journal
}

func (r *EquipmentRepo) codeTaken(code, exceptID string) bool {
	return indexOf(r.s.equipment, func(x *entity.Equipment) bool { return x.Code == code && x.ID != exceptID }) >= 0
}

// Create grava o equipamento; código repetido devolve ErrDuplicate.
func (r *EquipmentRepo) Create(_ context.Context, e *entity.Equipment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.codeTaken(e.Code, "") {
		return domain.ErrDuplicate
	}
	r.s.equipment = append(r.s.equipment, cloneEquipment(e))
	return nil
}

// GetByID obtém por id.
func (r *EquipmentRepo) GetByID(_ context.Context, id string) (*entity.Equipment, error) {
	return r.find(func(x *entity.Equipment) bool { return x.ID == id }), nil
}

// GetByCode obtém pelo código.
func (r *EquipmentRepo) GetByCode(_ context.Context, code string) (*entity.Equipment, error) {
	return r.find(func(x *entity.Equipment) bool { return x.Code == code }), nil
}

func (r *EquipmentRepo) find(match func(*entity.Equipment) bool) *entity.Equipment {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if i := indexOf(r.s.equipment, match); i >= 0 {
		return cloneEquipment(r.s.equipment[i])
	}
	return nil
}

// List devolve todos por ordem de inserção.
func (r *EquipmentRepo) List(_ context.Context) ([]*entity.Equipment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return cloneAll(r.s.equipment, cloneEquipment), nil
}

// ListByLocations devolve os que estão num dos locais indicados.
func (r *EquipmentRepo) ListByLocations(_ context.Context, locationIDs []string) ([]*entity.Equipment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return filterClone(r.s.equipment, func(x *entity.Equipment) bool { return inLocations(x.LocationID, locationIDs) }, cloneEquipment), nil
}

// Update substitui os campos editáveis, mantendo local_id, tipo e created_at.
func (r *EquipmentRepo) Update(_ context.Context, e *entity.Equipment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := indexOf(r.s.equipment, func(x *entity.Equipment) bool { return x.ID == e.ID })
	if i < 0 {
		return domain.ErrNotFound
	}
	if r.codeTaken(e.Code, e.ID) {
		return domain.ErrDuplicate
	}
	cur := r.s.equipment[i]
	next := cloneEquipment(e)
	next.LocationID = cur.LocationID
	next.Kind = cur.Kind
	next.CreatedAt = cur.CreatedAt
	r.s.equipment[i] = next
	return nil
}

// SetLocation altera só local_id.
func (r *EquipmentRepo) SetLocation(_ context.Context, id string, locationID entity.UncheckedRef) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := indexOf(r.s.equipment, func(x *entity.Equipment) bool { return x.ID == id })
	if i < 0 {
		return false, nil
	}
	prev := r.s.equipment[i]
	next := cloneEquipment(prev)
	next.LocationID = &locationID
	r.s.equipment[i] = next
	r.undo.record(func() {
		if j := indexOf(r.s.equipment, func(x *entity.Equipment) bool { return x == next }); j >= 0 {
			r.s.equipment[j] = prev
		}
	})
	return true, nil
}

// Delete elimina por id.
func (r *EquipmentRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := indexOf(r.s.equipment, func(x *entity.Equipment) bool { return x.ID == id })
	if i < 0 {
		return domain.ErrNotFound
	}
	r.s.equipment = append(r.s.equipment[:i], r.s.equipment[i+1:]...)
	return nil
}
