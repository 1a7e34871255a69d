package memory

import (
	"context"

	"github.com/jhoicas/Armazem-api/internal/domain"
	"github.com/jhoicas/Armazem-api/internal/domain/entity"
	"github.com/jhoicas/Armazem-api/internal/domain/repository"
)

var _ repository.VehicleRepository = (*VehicleRepo)(nil)

// VehicleRepo viaturas em memória.
type VehicleRepo struct {
	s *Store
}

func (r *VehicleRepo) plateTaken(plate, exceptID string) bool {
	return indexOf(r.s.vehicles, func(x *entity.Vehicle) bool { return x.Plate == plate && x.ID != exceptID }) >= 0
}

// Create grava a viatura; matrícula repetida devolve ErrDuplicate.
func (r *VehicleRepo) Create(_ context.Context, v *entity.Vehicle) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.plateTaken(v.Plate, "") {
		return domain.ErrDuplicate
	}
	r.s.vehicles = append(r.s.vehicles, cloneVehicle(v))
	return nil
}

// GetByID obtém por id.
func (r *VehicleRepo) GetByID(_ context.Context, id string) (*entity.Vehicle, error) {
	return r.find(func(x *entity.Vehicle) bool { return x.ID == id }), nil
}

// GetByPlate obtém pela matrícula.
func (r *VehicleRepo) GetByPlate(_ context.Context, plate string) (*entity.Vehicle, error) {
	return r.find(func(x *entity.Vehicle) bool { return x.Plate == plate }), nil
}

func (r *VehicleRepo) find(match func(*entity.Vehicle) bool) *entity.Vehicle {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if i := indexOf(r.s.vehicles, match); i >= 0 {
		return cloneVehicle(r.s.vehicles[i])
	}
	return nil
}

// List devolve todas por ordem de inserção.
func (r *VehicleRepo) List(_ context.Context) ([]*entity.Vehicle, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return cloneAll(r.s.vehicles, cloneVehicle), nil
}

// ListByLocations devolve as que estão num dos locais indicados.
func (r *VehicleRepo) ListByLocations(_ context.Context, locationIDs []string) ([]*entity.Vehicle, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return filterClone(r.s.vehicles, func(x *entity.Vehicle) bool { return inLocations(x.LocationID, locationIDs) }, cloneVehicle), nil
}

// Update substitui os campos editáveis.
func (r *VehicleRepo) Update(_ context.Context, v *entity.Vehicle) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := indexOf(r.s.vehicles, func(x *entity.Vehicle) bool { return x.ID == v.ID })
	if i < 0 {
		return domain.ErrNotFound
	}
	if r.plateTaken(v.Plate, v.ID) {
		return domain.ErrDuplicate
	}
	next := cloneVehicle(v)
	next.CreatedAt = r.s.vehicles[i].CreatedAt
	r.s.vehicles[i] = next
	return nil
}

// Delete elimina por id.
func (r *VehicleRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := indexOf(r.s.vehicles, func(x *entity.Vehicle) bool { return x.ID == id })
	if i < 0 {
		return domain.ErrNotFound
	}
	r.s.vehicles = append(r.s.vehicles[:i], r.s.vehicles[i+1:]...)
	return nil
}
