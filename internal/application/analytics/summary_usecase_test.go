package analytics

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Armazem-api/internal/domain/alert"
	"github.com/jhoicas/Armazem-api/internal/domain/entity"
	"github.com/jhoicas/Armazem-api/internal/infrastructure/memory"
)

type stubScanner struct {
	list []alert.Alert
	err  error
	days int
}

func (s *stubScanner) Scan(_ context.Context, days int) ([]alert.Alert, error) {
	s.days = days
	return s.list, s.err
}

func (s *stubScanner) DaysBefore() int { return 30 }

func seed(t *testing.T, s *memory.Store) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, s.Equipment().Create(ctx, &entity.Equipment{ID: "e1", Code: "EQ-1", Active: true}))
	require.NoError(t, s.Equipment().Create(ctx, &entity.Equipment{ID: "e2", Code: "EQ-2", Active: false}))
	require.NoError(t, s.Vehicles().Create(ctx, &entity.Vehicle{ID: "v1", Plate: "AA-11-BB", Active: true}))
	require.NoError(t, s.Materials().Create(ctx, &entity.Material{ID: "m1", Code: "M1", StockCurrent: decimal.RequireFromString("2.5")}))
	require.NoError(t, s.Materials().Create(ctx, &entity.Material{ID: "m2", Code: "M2", StockCurrent: decimal.NewFromInt(4)}))
	require.NoError(t, s.Locations().Create(ctx, &entity.Location{ID: "l1", Code: "ARM-1", Type: entity.LocationTypeWarehouse}))
	require.NoError(t, s.Locations().Create(ctx, &entity.Location{ID: "l2", Code: "OBR-1", Type: entity.LocationTypeSite}))
	require.NoError(t, s.Sites().Create(ctx, &entity.Site{ID: "s1", Code: "OB-1", Status: entity.SiteStatusActive}))
	require.NoError(t, s.Sites().Create(ctx, &entity.Site{ID: "s2", Code: "OB-2", Status: entity.SiteStatusPaused}))
}

func TestGetSummary(t *testing.T) {
	s := memory.NewStore()
	seed(t, s)
	scanner := &stubScanner{list: []alert.Alert{
		{Kind: alert.KindStock, MaterialCode: "M1", Description: "Areia", Unit: "m3",
			StockCurrent: decimal.Zero, StockMinimum: decimal.NewFromInt(1)},
	}}

	out, err := NewSummaryUseCase(s.Summary(), scanner).GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 30, scanner.days)
	assert.Equal(t, 2, out.Equipment.Total)
	assert.Equal(t, 1, out.Equipment.Active)
	assert.Equal(t, 1, out.Equipment.Inactive)
	assert.Equal(t, 1, out.Vehicles.Active)
	assert.Equal(t, 0, out.Vehicles.Inactive)
	assert.Equal(t, "6.5", out.Materials.StockTotal.String())
	assert.Equal(t, 1, out.Locations.Warehouses)
	assert.Equal(t, 1, out.Locations.Sites)
	assert.Equal(t, 0, out.Locations.Workshops)
	assert.Equal(t, 2, out.Sites.Total)
	assert.Equal(t, 1, out.Sites.Paused)

	require.Len(t, out.Alerts, 1)
	assert.Equal(t, "M1 - Areia", out.Alerts[0].Item)
	assert.True(t, out.Alerts[0].Urgent)
}

func TestGetSummary_BaseVazia(t *testing.T) {
	out, err := NewSummaryUseCase(memory.NewStore().Summary(), &stubScanner{}).GetSummary(context.Background())
	require.NoError(t, err)
	assert.Zero(t, out.Equipment.Total)
	assert.True(t, out.Materials.StockTotal.IsZero())
	assert.NotNil(t, out.Alerts)
}

func TestGetSummary_ErroNosAlertas(t *testing.T) {
	_, err := NewSummaryUseCase(memory.NewStore().Summary(), &stubScanner{err: errors.New("boom")}).GetSummary(context.Background())
	assert.Error(t, err)
}
