package memory

import (
	"context"

	"github.com/jhoicas/Armazem-api/internal/domain"
	"github.com/jhoicas/Armazem-api/internal/domain/entity"
	"github.com/jhoicas/Armazem-api/internal/domain/repository"
)

var _ repository.LocationRepository = (*LocationRepo)(nil)

// LocationRepo locais em memória.
type LocationRepo struct {
	s    *Store
	undo *journal
}

func (r *LocationRepo) codeTaken(code, exceptID string) bool {
	return indexOf(r.s.locations, func(x *entity.Location) bool { return x.Code == code && x.ID != exceptID }) >= 0
}

// Create grava o local; código repetido devolve ErrDuplicate.
func (r *LocationRepo) Create(_ context.Context, l *entity.Location) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.codeTaken(l.Code, "") {
		return domain.ErrDuplicate
	}
	r.s.locations = append(r.s.locations, cloneLocation(l))
	id := l.ID
	r.undo.record(func() {
		r.s.locations = removeWhere(r.s.locations, func(x *entity.Location) bool { return x.ID == id })
	})
	return nil
}

// GetByID obtém por id.
func (r *LocationRepo) GetByID(_ context.Context, id string) (*entity.Location, error) {
	return r.find(func(x *entity.Location) bool { return x.ID == id }), nil
}

// GetByCode obtém pelo código.
func (r *LocationRepo) GetByCode(_ context.Context, code string) (*entity.Location, error) {
	return r.find(func(x *entity.Location) bool { return x.Code == code }), nil
}

func (r *LocationRepo) find(match func(*entity.Location) bool) *entity.Location {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if i := indexOf(r.s.locations, match); i >= 0 {
		return cloneLocation(r.s.locations[i])
	}
	return nil
}

// List devolve todos por ordem de inserção.
func (r *LocationRepo) List(_ context.Context) ([]*entity.Location, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return cloneAll(r.s.locations, cloneLocation), nil
}

// ListBySite devolve os locais associados à obra.
func (r *LocationRepo) ListBySite(_ context.Context, siteID string) ([]*entity.Location, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return filterClone(r.s.locations, func(x *entity.Location) bool {
		return x.SiteID != nil && string(*x.SiteID) == siteID
	}, cloneLocation), nil
}

// Update substitui os campos editáveis.
func (r *LocationRepo) Update(_ context.Context, l *entity.Location) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := indexOf(r.s.locations, func(x *entity.Location) bool { return x.ID == l.ID })
	if i < 0 {
		return domain.ErrNotFound
	}
	if r.codeTaken(l.Code, l.ID) {
		return domain.ErrDuplicate
	}
	prev := r.s.locations[i]
	next := cloneLocation(l)
	next.CreatedAt = prev.CreatedAt
	r.s.locations[i] = next
	r.undo.record(func() {
		if j := indexOf(r.s.locations, func(x *entity.Location) bool { return x == next }); j >= 0 {
			r.s.locations[j] = prev
		}
	})
	return nil
}

// ClearSite anula obra_id nos locais que apontavam para siteID.
func (r *LocationRepo) ClearSite(_ context.Context, siteID string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var cleared []*entity.Location
	for i, l := range r.s.locations {
		if l.SiteID != nil && string(*l.SiteID) == siteID {
			next := cloneLocation(l)
			next.SiteID = nil
			r.s.locations[i] = next
			cleared = append(cleared, l)
		}
	}
	r.undo.record(func() {
		for _, prev := range cleared {
			if j := indexOf(r.s.locations, func(x *entity.Location) bool { return x.ID == prev.ID && x.SiteID == nil }); j >= 0 {
				r.s.locations[j] = prev
			}
		}
	})
	return int64(len(cleared)), nil
}

// Delete elimina por id.
func (r *LocationRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := indexOf(r.s.locations, func(x *entity.Location) bool { return x.ID == id })
	if i < 0 {
		return domain.ErrNotFound
	}
	prev := r.s.locations[i]
	r.s.locations = append(r.s.locations[:i], r.s.locations[i+1:]...)
	r.undo.record(func() {
		if indexOf(r.s.locations, func(x *entity.Location) bool { return x.ID == id }) < 0 {
			r.s.locations = reinsert(r.s.locations, i, prev)
		}
	})
	return nil
}
