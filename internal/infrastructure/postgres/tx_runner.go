package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Armazem-api/internal/domain/repository"
)

var (
	_ repository.SiteTxRunner     = (*TxRunner)(nil)
	_ repository.MovementTxRunner = (*TxRunner)(nil)
)

// TxRunner executa callbacks dentro de uma transação PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner constrói o runner com o pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia uma transação, executa fn e faz Commit; qualquer erro faz Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunSites executa fn com repos de obras e locais atados à tx.
func (r *TxRunner) RunSites(ctx context.Context, fn func(
	sites repository.SiteRepository,
	locations repository.LocationRepository,
) error) error {
	return r.Run(ctx, func(tx pgx.Tx) error {
		return fn(NewSiteRepository(tx), NewLocationRepository(tx))
	})
}

// RunMovements grava movimento e efeito (local do equipamento, stock) na mesma tx.
func (r *TxRunner) RunMovements(ctx context.Context, fn func(tx repository.MovementTx) error) error {
	return r.Run(ctx, func(tx pgx.Tx) error {
		return fn(repository.MovementTx{
			Assets:    NewAssetMovementRepository(tx),
			Stock:     NewStockMovementRepository(tx),
			Equipment: NewEquipmentRepository(tx),
			Materials: NewMaterialRepository(tx),
		})
	})
}
