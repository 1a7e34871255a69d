package movement

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Armazem-api/internal/application/dto"
	"github.com/jhoicas/Armazem-api/internal/domain"
	"github.com/jhoicas/Armazem-api/internal/domain/entity"
	"github.com/jhoicas/Armazem-api/internal/domain/repository"
	"github.com/jhoicas/Armazem-api/internal/infrastructure/memory"
	"github.com/jhoicas/Armazem-api/pkg/logger"
)

func strPtr(s string) *string { return &s }

func newProcessor() (*Processor, *memory.Store) {
	s := memory.NewStore()
	p := NewProcessor(Repos{
		Assets: s.AssetMovements(),
		Stock:  s.StockMovements(),
		Usage:  s.VehicleUsages(),
		Tx:     s,
	}, logger.Nop())
	return p, s
}

// failingTx usa as transações do store mas com um efeito que falha.
type failingTx struct {
	s   *memory.Store
	err error
}

func (f failingTx) RunMovements(ctx context.Context, fn func(tx repository.MovementTx) error) error {
	return f.s.RunMovements(ctx, func(tx repository.MovementTx) error {
		tx.Materials = failingEffect{f.err}
		tx.Equipment = failingEffect{f.err}
		return fn(tx)
	})
}

type failingEffect struct{ err error }

func (f failingEffect) AdjustStock(context.Context, string, decimal.Decimal) (bool, error) {
	return false, f.err
}

func (f failingEffect) SetLocation(context.Context, string, entity.UncheckedRef) (bool, error) {
	return false, f.err
}

func seedMaterial(t *testing.T, s *memory.Store, stock int64) {
	t.Helper()
	require.NoError(t, s.Materials().Create(context.Background(), &entity.Material{
		ID: "mat-1", Code: "CIM", Description: "Cimento", StockCurrent: decimal.NewFromInt(stock),
	}))
}

func stockOf(t *testing.T, s *memory.Store) decimal.Decimal {
	t.Helper()
	m, err := s.Materials().GetByID(context.Background(), "mat-1")
	require.NoError(t, err)
	return m.StockCurrent
}

func TestRecordStockMovement_EntradaSoma(t *testing.T) {
	ctx := context.Background()
	p, s := newProcessor()
	seedMaterial(t, s, 5)

	_, err := p.RecordStockMovement(ctx, dto.StockMovementRequest{MaterialID: "mat-1", MovementType: "Entrada", Quantity: decimal.NewFromInt(10)})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(15).Equal(stockOf(t, s)))

	_, err = p.RecordStockMovement(ctx, dto.StockMovementRequest{MaterialID: "mat-1", MovementType: "Saida", Quantity: decimal.NewFromInt(3)})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(12).Equal(stockOf(t, s)))
}

func TestRecordStockMovement_QualquerOutroTipoSubtrai(t *testing.T) {
	ctx := context.Background()
	p, s := newProcessor()
	seedMaterial(t, s, 5)

	_, err := p.RecordStockMovement(ctx, dto.StockMovementRequest{MaterialID: "mat-1", MovementType: "Transferência", Quantity: decimal.RequireFromString("1.5")})
	require.NoError(t, err)
	assert.Equal(t, "3.5", stockOf(t, s).String())
}

func TestRecordStockMovement_MaterialInexistenteGravaNaMesma(t *testing.T) {
	ctx := context.Background()
	p, s := newProcessor()

	out, err := p.RecordStockMovement(ctx, dto.StockMovementRequest{MaterialID: "fantasma", MovementType: "Entrada", Quantity: decimal.NewFromInt(1)})
	require.NoError(t, err)
	assert.Equal(t, "fantasma", out.MaterialID)

	list, err := s.StockMovements().List(ctx, repository.MovementFilter{})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestRecordStockMovement_Validacao(t *testing.T) {
	p, _ := newProcessor()
	_, err := p.RecordStockMovement(context.Background(), dto.StockMovementRequest{MovementType: "Entrada", Quantity: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = p.RecordStockMovement(context.Background(), dto.StockMovementRequest{MaterialID: "m", Quantity: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRecordStockMovement_QuantidadeZeroENegativaGravadas(t *testing.T) {
	ctx := context.Background()
	p, s := newProcessor()
	seedMaterial(t, s, 5)

	_, err := p.RecordStockMovement(ctx, dto.StockMovementRequest{MaterialID: "mat-1", MovementType: "Ajuste", Quantity: decimal.Zero})
	require.NoError(t, err)
	assert.Equal(t, "5", stockOf(t, s).String())

	// -(-3) = +3
	_, err = p.RecordStockMovement(ctx, dto.StockMovementRequest{MaterialID: "mat-1", MovementType: "Ajuste", Quantity: decimal.NewFromInt(-3)})
	require.NoError(t, err)
	assert.Equal(t, "8", stockOf(t, s).String())

	_, err = p.RecordStockMovement(ctx, dto.StockMovementRequest{MaterialID: "mat-1", MovementType: "Entrada", Quantity: decimal.NewFromInt(-2)})
	require.NoError(t, err)
	assert.Equal(t, "6", stockOf(t, s).String())

	list, err := s.StockMovements().List(ctx, repository.MovementFilter{})
	require.NoError(t, err)
	assert.Len(t, list, 3)
}

func TestRecordStockMovement_FalhaNoAjusteNaoGravaMovimento(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	seedMaterial(t, s, 5)
	boom := errors.New("db down")
	p := NewProcessor(Repos{
		Assets: s.AssetMovements(), Stock: s.StockMovements(), Usage: s.VehicleUsages(),
		Tx: failingTx{s: s, err: boom},
	}, logger.Nop())

	_, err := p.RecordStockMovement(ctx, dto.StockMovementRequest{MaterialID: "mat-1", MovementType: "Entrada", Quantity: decimal.NewFromInt(10)})
	assert.ErrorIs(t, err, boom)

	list, err := s.StockMovements().List(ctx, repository.MovementFilter{})
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.Equal(t, "5", stockOf(t, s).String())
}

func TestRecordAssetMovement_FalhaNaRelocalizacaoNaoGravaMovimento(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	boom := errors.New("db down")
	p := NewProcessor(Repos{
		Assets: s.AssetMovements(), Stock: s.StockMovements(), Usage: s.VehicleUsages(),
		Tx: failingTx{s: s, err: boom},
	}, logger.Nop())

	_, err := p.RecordAssetMovement(ctx, dto.AssetMovementRequest{AssetID: "eq-1", MovementType: "Transferência", DestinationID: strPtr("L2")})
	assert.ErrorIs(t, err, boom)

	list, err := s.AssetMovements().List(ctx, repository.MovementFilter{})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestRecordStockMovement_ConcorrenteSemPerdas(t *testing.T) {
	ctx := context.Background()
	p, s := newProcessor()
	seedMaterial(t, s, 0)

	var wg sync.WaitGroup
	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := p.RecordStockMovement(ctx, dto.StockMovementRequest{MaterialID: "mat-1", MovementType: "Entrada", Quantity: decimal.NewFromInt(1)})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	assert.True(t, decimal.NewFromInt(40).Equal(stockOf(t, s)))
}

func TestRecordAssetMovement_RelocalizaSoOLocal(t *testing.T) {
	ctx := context.Background()
	p, s := newProcessor()
	orig := entity.UncheckedRef("L1")
	before := &entity.Equipment{
		ID: "eq-1", Code: "EQ-1", Description: "Betoneira", Brand: "Imer", Active: true,
		Condition: "Bom", LocationID: &orig, Kind: entity.EquipmentKind,
		CreatedAt: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, s.Equipment().Create(ctx, before))

	out, err := p.RecordAssetMovement(ctx, dto.AssetMovementRequest{
		AssetID: "eq-1", MovementType: "Transferência", OriginID: strPtr("L1"), DestinationID: strPtr("L2"),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.AssetKindEquipment, out.AssetKind)

	after, err := s.Equipment().GetByID(ctx, "eq-1")
	require.NoError(t, err)
	require.NotNil(t, after.LocationID)
	assert.Equal(t, entity.UncheckedRef("L2"), *after.LocationID)

	after.LocationID = before.LocationID
	assert.Equal(t, before, after)
}

func TestRecordAssetMovement_SemDestinoNaoMexe(t *testing.T) {
	ctx := context.Background()
	p, s := newProcessor()
	orig := entity.UncheckedRef("L1")
	require.NoError(t, s.Equipment().Create(ctx, &entity.Equipment{ID: "eq-1", Code: "EQ-1", LocationID: &orig}))

	_, err := p.RecordAssetMovement(ctx, dto.AssetMovementRequest{AssetID: "eq-1", MovementType: "Manutenção"})
	require.NoError(t, err)

	after, _ := s.Equipment().GetByID(ctx, "eq-1")
	assert.Equal(t, orig, *after.LocationID)
}

func TestRecordAssetMovement_ViaturaNaoAlteraViaturas(t *testing.T) {
	ctx := context.Background()
	p, s := newProcessor()
	loc := entity.UncheckedRef("L1")
	require.NoError(t, s.Vehicles().Create(ctx, &entity.Vehicle{ID: "v-1", Plate: "AA-11-BB", LocationID: &loc}))

	_, err := p.RecordAssetMovement(ctx, dto.AssetMovementRequest{
		AssetID: "v-1", AssetKind: entity.AssetKindVehicle, MovementType: "Atribuição", DestinationID: strPtr("L9"),
	})
	require.NoError(t, err)

	v, _ := s.Vehicles().GetByID(ctx, "v-1")
	assert.Equal(t, loc, *v.LocationID)
	movs, _ := s.AssetMovements().List(ctx, repository.MovementFilter{RefID: "v-1"})
	assert.Len(t, movs, 1)
}

func TestRecordAssetMovement_AtivoInexistenteGrava(t *testing.T) {
	ctx := context.Background()
	p, s := newProcessor()

	_, err := p.RecordAssetMovement(ctx, dto.AssetMovementRequest{AssetID: "fantasma", MovementType: "X", DestinationID: strPtr("L1")})
	require.NoError(t, err)
	movs, _ := s.AssetMovements().List(ctx, repository.MovementFilter{})
	assert.Len(t, movs, 1)
}

func TestRecordVehicleUsage_SoRegista(t *testing.T) {
	ctx := context.Background()
	p, _ := newProcessor()

	out, err := p.RecordVehicleUsage(ctx, dto.VehicleUsageRequest{
		VehicleID: "v-1", Driver: "Rui", OdometerIn: decimal.NewFromInt(1000), OdometerOut: decimal.NewFromInt(1120), Date: "2026-03-01",
	})
	require.NoError(t, err)
	assert.Equal(t, "v-1", out.VehicleID)

	list, err := p.ListVehicleUsages(ctx, repository.MovementFilter{RefID: "v-1"})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = p.RecordVehicleUsage(ctx, dto.VehicleUsageRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
