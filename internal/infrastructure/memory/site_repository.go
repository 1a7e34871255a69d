package memory

import (
	"context"

	"github.com/jhoicas/Armazem-api/internal/domain"
	"github.com/jhoicas/Armazem-api/internal/domain/entity"
	"github.com/jhoicas/Armazem-api/internal/domain/repository"
)

var _ repository.SiteRepository = (*SiteRepo)(nil)

// SiteRepo obras em memória.
type SiteRepo struct {
	s    *Store
	undo *journal
}

func (r *SiteRepo) codeTaken(code, exceptID string) bool {
	return indexOf(r.s.sites, func(x *entity.Site) bool { return x.Code == code && x.ID != exceptID }) >= 0
}

// Create grava a obra; código repetido devolve ErrDuplicate.
func (r *SiteRepo) Create(_ context.Context, site *entity.Site) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.codeTaken(site.Code, "") {
		return domain.ErrDuplicate
	}
	r.s.sites = append(r.s.sites, cloneSite(site))
	id := site.ID
	r.undo.record(func() {
		r.s.sites = removeWhere(r.s.sites, func(x *entity.Site) bool { return x.ID == id })
	})
	return nil
}

// GetByID obtém por id.
func (r *SiteRepo) GetByID(_ context.Context, id string) (*entity.Site, error) {
	return r.find(func(x *entity.Site) bool { return x.ID == id }), nil
}

// GetByCode obtém pelo código.
func (r *SiteRepo) GetByCode(_ context.Context, code string) (*entity.Site, error) {
	return r.find(func(x *entity.Site) bool { return x.Code == code }), nil
}

func (r *SiteRepo) find(match func(*entity.Site) bool) *entity.Site {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if i := indexOf(r.s.sites, match); i >= 0 {
		return cloneSite(r.s.sites[i])
	}
	return nil
}

// List devolve todas por ordem de inserção.
func (r *SiteRepo) List(_ context.Context) ([]*entity.Site, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return cloneAll(r.s.sites, cloneSite), nil
}

// Update substitui os campos editáveis.
func (r *SiteRepo) Update(_ context.Context, site *entity.Site) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := indexOf(r.s.sites, func(x *entity.Site) bool { return x.ID == site.ID })
	if i < 0 {
		return domain.ErrNotFound
	}
	if r.codeTaken(site.Code, site.ID) {
		return domain.ErrDuplicate
	}
	prev := r.s.sites[i]
	next := cloneSite(site)
	next.CreatedAt = prev.CreatedAt
	r.s.sites[i] = next
	r.undo.record(func() {
		if j := indexOf(r.s.sites, func(x *entity.Site) bool { return x == next }); j >= 0 {
			r.s.sites[j] = prev
		}
	})
	return nil
}

// Delete elimina por id.
func (r *SiteRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := indexOf(r.s.sites, func(x *entity.Site) bool { return x.ID == id })
	if i < 0 {
		return domain.ErrNotFound
	}
	prev := r.s.sites[i]
	r.s.sites = append(r.s.sites[:i], r.s.sites[i+1:]...)
	r.undo.record(func() {
		if indexOf(r.s.sites, func(x *entity.Site) bool { return x.ID == id }) < 0 {
			r.s.sites = reinsert(r.s.sites, i, prev)
		}
	})
	return nil
}
