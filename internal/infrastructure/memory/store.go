// Package memory guarda as coleções em memória (STORE_DRIVER=memory e testes).
// Cada repositório devolve cópias: quem chama nunca partilha ponteiros com o armazenamento.
package memory

import (
	"slices"
	"sync"

	"github.com/jhoicas/Armazem-api/internal/domain/entity"
	"github.com/jhoicas/Armazem-api/internal/domain/repository"
)

// Store contém todas as coleções atrás de um único RWMutex. A ordem dos slices é a ordem de inserção.
type Store struct {
	mu sync.RWMutex

	users          []*entity.User
	equipment      []*entity.Equipment
	vehicles       []*entity.Vehicle
	materials      []*entity.Material
	locations      []*entity.Location
	sites          []*entity.Site
	assetMovements []*entity.AssetMovement
	stockMovements []*entity.StockMovement
	vehicleUsages  []*entity.VehicleUsage

	// txMu serializa as transações (RunSites, RunMovements).
	txMu sync.Mutex
}

// NewStore cria um armazenamento vazio.
func NewStore() *Store {
	return &Store{}
}

func (s *Store) Users() *UserRepo                   { return &UserRepo{s: s} }
func (s *Store) Equipment() *EquipmentRepo          { return &EquipmentRepo{s: s} }
func (s *Store) Vehicles() *VehicleRepo             { return &VehicleRepo{s: s} }
func (s *Store) Materials() *MaterialRepo           { return &MaterialRepo{s: s} }
func (s *Store) Locations() *LocationRepo           { return &LocationRepo{s: s} }
func (s *Store) Sites() *SiteRepo                   { return &SiteRepo{s: s} }
func (s *Store) AssetMovements() *AssetMovementRepo { return &AssetMovementRepo{s: s} }
func (s *Store) StockMovements() *StockMovementRepo { return &StockMovementRepo{s: s} }
func (s *Store) VehicleUsages() *VehicleUsageRepo   { return &VehicleUsageRepo{s: s} }
func (s *Store) Summary() *SummaryRepo              { return &SummaryRepo{s: s} }

var (
	_ repository.SiteTxRunner     = (*Store)(nil)
	_ repository.MovementTxRunner = (*Store)(nil)
)

func indexOf[T any](rows []*T, match func(*T) bool) int {
	return slices.IndexFunc(rows, match)
}

func cloneAll[T any](rows []*T, clone func(*T) *T) []*T {
	out := make([]*T, 0, len(rows))
	for _, r := range rows {
		out = append(out, clone(r))
	}
	return out
}

func filterClone[T any](rows []*T, keep func(*T) bool, clone func(*T) *T) []*T {
	out := make([]*T, 0)
	for _, r := range rows {
		if keep(r) {
			out = append(out, clone(r))
		}
	}
	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneUser(u *entity.User) *entity.User {
	c := *u
	return &c
}

func cloneEquipment(e *entity.Equipment) *entity.Equipment {
	c := *e
	c.AcquisitionDate = clonePtr(e.AcquisitionDate)
	c.LocationID = clonePtr(e.LocationID)
	return &c
}

func cloneVehicle(v *entity.Vehicle) *entity.Vehicle {
	c := *v
	c.InspectionDue = clonePtr(v.InspectionDue)
	c.InsuranceDue = clonePtr(v.InsuranceDue)
	c.LocationID = clonePtr(v.LocationID)
	return &c
}

func cloneMaterial(m *entity.Material) *entity.Material {
	c := *m
	c.LocationID = clonePtr(m.LocationID)
	return &c
}

func cloneLocation(l *entity.Location) *entity.Location {
	c := *l
	c.SiteID = clonePtr(l.SiteID)
	return &c
}

func cloneSite(s *entity.Site) *entity.Site {
	c := *s
	return &c
}

func inLocations(ref *entity.UncheckedRef, ids []string) bool {
	return ref != nil && slices.Contains(ids, string(*ref))
}

// page aplica offset/limit (limit <= 0 = sem limite).
func page[T any](rows []*T, limit, offset int) []*T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(rows) {
		return make([]*T, 0)
	}
	rows = rows[offset:]
	if limit > 0 && limit < len(rows) {
		rows = rows[:limit]
	}
	return rows
}
