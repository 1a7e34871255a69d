package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Armazem-api/internal/application/dto"
	"github.com/jhoicas/Armazem-api/internal/domain"
	"github.com/jhoicas/Armazem-api/internal/domain/entity"
	"github.com/jhoicas/Armazem-api/internal/infrastructure/memory"
	"github.com/jhoicas/Armazem-api/pkg/logger"
)

func strPtr(s string) *string { return &s }

type fixture struct {
	store     *memory.Store
	equipment *EquipmentUseCase
	vehicles  *VehicleUseCase
	materials *MaterialUseCase
	locations *LocationUseCase
	sites     *SiteUseCase
}

func newFixture() *fixture {
	s := memory.NewStore()
	return &fixture{
		store:     s,
		equipment: NewEquipmentUseCase(s.Equipment()),
		vehicles:  NewVehicleUseCase(s.Vehicles()),
		materials: NewMaterialUseCase(s.Materials()),
		locations: NewLocationUseCase(s.Locations(), s.Sites()),
		sites:     NewSiteUseCase(s.Sites(), s.Locations(), s.Equipment(), s.Vehicles(), s.Materials(), s, logger.Nop()),
	}
}

func TestCreate_ChaveDuplicadaEmTodasAsColecoes(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	first, err := f.equipment.Create(ctx, dto.EquipmentRequest{Code: "EQ-1", Description: "Betoneira"})
	require.NoError(t, err)
	_, err = f.equipment.Create(ctx, dto.EquipmentRequest{Code: "EQ-1", Description: "Outra"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	kept, err := f.equipment.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Betoneira", kept.Description)

	_, err = f.vehicles.Create(ctx, dto.VehicleRequest{Plate: "AA-11-BB", Brand: "Renault", Model: "Master"})
	require.NoError(t, err)
	_, err = f.vehicles.Create(ctx, dto.VehicleRequest{Plate: "AA-11-BB", Brand: "Iveco", Model: "Daily"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = f.materials.Create(ctx, dto.MaterialRequest{Code: "CIM", Description: "Cimento"})
	require.NoError(t, err)
	_, err = f.materials.Create(ctx, dto.MaterialRequest{Code: "CIM", Description: "Cimento 2"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = f.sites.Create(ctx, dto.SiteRequest{Code: "OB-1", Name: "Escola"})
	require.NoError(t, err)
	_, err = f.sites.Create(ctx, dto.SiteRequest{Code: "OB-1", Name: "Outra"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = f.locations.Create(ctx, dto.LocationRequest{Code: "ARM-1", Name: "Central"})
	require.NoError(t, err)
	_, err = f.locations.Create(ctx, dto.LocationRequest{Code: "ARM-1", Name: "Outro"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCreate_ValoresPorOmissao(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	e, err := f.equipment.Create(ctx, dto.EquipmentRequest{Code: "EQ-1", Description: "Rebarbadora"})
	require.NoError(t, err)
	assert.True(t, e.Active)
	assert.Equal(t, entity.DefaultCondition, e.Condition)
	assert.Equal(t, entity.EquipmentKind, e.Kind)

	v, err := f.vehicles.Create(ctx, dto.VehicleRequest{Plate: "AA-11-BB", Brand: "Renault", Model: "Master"})
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultFuel, v.Fuel)

	m, err := f.materials.Create(ctx, dto.MaterialRequest{Code: "CIM", Description: "Cimento"})
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultUnit, m.Unit)

	l, err := f.locations.Create(ctx, dto.LocationRequest{Code: "ARM-1", Name: "Central"})
	require.NoError(t, err)
	assert.Equal(t, entity.LocationTypeWarehouse, l.Type)

	s, err := f.sites.Create(ctx, dto.SiteRequest{Code: "OB-1", Name: "Escola"})
	require.NoError(t, err)
	assert.Equal(t, entity.SiteStatusActive, s.Status)
}

func TestCreate_CamposObrigatorios(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	_, err := f.equipment.Create(ctx, dto.EquipmentRequest{Code: " ", Description: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = f.vehicles.Create(ctx, dto.VehicleRequest{Plate: "AA-11-BB"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = f.sites.Create(ctx, dto.SiteRequest{Code: "OB"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateDelete_IdDesconhecido(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	_, err := f.equipment.Update(ctx, "nao-existe", dto.EquipmentRequest{Code: "EQ", Description: "x"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, f.vehicles.Delete(ctx, "nao-existe"), domain.ErrNotFound)
	assert.ErrorIs(t, f.sites.Delete(ctx, "nao-existe"), domain.ErrNotFound)
	_, err = f.materials.GetByID(ctx, "nao-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLocation_ObraTemDeExistir(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	_, err := f.locations.Create(ctx, dto.LocationRequest{Code: "OBR-1", Name: "Estaleiro", SiteID: strPtr("fantasma")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	site, err := f.sites.Create(ctx, dto.SiteRequest{Code: "OB-1", Name: "Escola"})
	require.NoError(t, err)
	l, err := f.locations.Create(ctx, dto.LocationRequest{Code: "OBR-1", Name: "Estaleiro", SiteID: &site.ID})
	require.NoError(t, err)
	require.NotNil(t, l.SiteID)
	assert.Equal(t, site.ID, *l.SiteID)

	_, err = f.locations.Update(ctx, l.ID, dto.LocationRequest{Code: "OBR-1", Name: "Estaleiro", SiteID: strPtr("fantasma")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSiteDelete_LimpaLocaisSemOsApagar(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	site, err := f.sites.Create(ctx, dto.SiteRequest{Code: "OB-1", Name: "Escola"})
	require.NoError(t, err)
	a, err := f.locations.Create(ctx, dto.LocationRequest{Code: "L-A", Name: "A", SiteID: &site.ID})
	require.NoError(t, err)
	b, err := f.locations.Create(ctx, dto.LocationRequest{Code: "L-B", Name: "B", SiteID: &site.ID})
	require.NoError(t, err)

	require.NoError(t, f.sites.Delete(ctx, site.ID))

	_, err = f.sites.GetByID(ctx, site.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	for _, id := range []string{a.ID, b.ID} {
		l, err := f.locations.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Nil(t, l.SiteID)
	}
}

func TestEquipmentUpdate_NaoMudaLocal(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	e, err := f.equipment.Create(ctx, dto.EquipmentRequest{Code: "EQ-1", Description: "Betoneira", LocationID: strPtr("L1")})
	require.NoError(t, err)

	up, err := f.equipment.Update(ctx, e.ID, dto.EquipmentRequest{Code: "EQ-1", Description: "Betoneira 350L", LocationID: strPtr("L2")})
	require.NoError(t, err)
	assert.Equal(t, "Betoneira 350L", up.Description)
	require.NotNil(t, up.LocationID)
	assert.Equal(t, "L1", *up.LocationID)
}

func TestMaterialUpdate_IgnoraStockEnviado(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	m, err := f.materials.Create(ctx, dto.MaterialRequest{Code: "CIM", Description: "Cimento", StockCurrent: decimal.NewFromInt(5)})
	require.NoError(t, err)

	up, err := f.materials.Update(ctx, m.ID, dto.MaterialRequest{Code: "CIM", Description: "Cimento", StockCurrent: decimal.NewFromInt(500), StockMinimum: decimal.NewFromInt(2)})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(5).Equal(up.StockCurrent))
	assert.True(t, decimal.NewFromInt(2).Equal(up.StockMinimum))
}

func TestList_FiltroSemAcentos(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	_, err := f.materials.Create(ctx, dto.MaterialRequest{Code: "VAR-12", Description: "Varão de aço 12mm"})
	require.NoError(t, err)
	_, err = f.materials.Create(ctx, dto.MaterialRequest{Code: "CIM", Description: "Cimento"})
	require.NoError(t, err)

	all, err := f.materials.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, "VAR-12", all[0].Code)

	hit, err := f.materials.List(ctx, "ACO")
	require.NoError(t, err)
	require.Len(t, hit, 1)
	assert.Equal(t, "VAR-12", hit[0].Code)
}

func TestSiteResources(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	site, err := f.sites.Create(ctx, dto.SiteRequest{Code: "OB-1", Name: "Escola"})
	require.NoError(t, err)
	loc, err := f.locations.Create(ctx, dto.LocationRequest{Code: "OBR-1", Name: "Estaleiro", Type: entity.LocationTypeSite, SiteID: &site.ID})
	require.NoError(t, err)
	_, err = f.locations.Create(ctx, dto.LocationRequest{Code: "ARM-1", Name: "Central"})
	require.NoError(t, err)

	_, err = f.equipment.Create(ctx, dto.EquipmentRequest{Code: "EQ-1", Description: "Grua", LocationID: &loc.ID})
	require.NoError(t, err)
	_, err = f.equipment.Create(ctx, dto.EquipmentRequest{Code: "EQ-2", Description: "Martelo"})
	require.NoError(t, err)
	_, err = f.vehicles.Create(ctx, dto.VehicleRequest{Plate: "AA-11-BB", Brand: "Renault", Model: "Master", LocationID: &loc.ID})
	require.NoError(t, err)
	_, err = f.materials.Create(ctx, dto.MaterialRequest{Code: "CIM", Description: "Cimento", LocationID: &loc.ID})
	require.NoError(t, err)

	res, err := f.sites.Resources(ctx, site.ID)
	require.NoError(t, err)
	assert.Equal(t, site.ID, res.Site.ID)
	require.Len(t, res.Locations, 1)
	require.Len(t, res.Equipment, 1)
	assert.Equal(t, "EQ-1", res.Equipment[0].Code)
	assert.Len(t, res.Vehicles, 1)
	assert.Len(t, res.Materials, 1)

	_, err = f.sites.Resources(ctx, "nao-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
