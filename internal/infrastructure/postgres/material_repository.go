package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Armazem-api/internal/domain"
	"github.com/jhoicas/Armazem-api/internal/domain/entity"
	"github.com/jhoicas/Armazem-api/internal/domain/repository"
)

var _ repository.MaterialRepository = (*MaterialRepo)(nil)

// MaterialRepo implementação do porto MaterialRepository sobre PostgreSQL.
type MaterialRepo struct {
	q Querier
}

// NewMaterialRepository constrói o adaptador de persistência de materiais.
func NewMaterialRepository(q Querier) *MaterialRepo {
	return &MaterialRepo{q: q}
}

const materialColumns = `id, codigo, descricao, unidade, stock_atual, stock_minimo, ativo, local_id, created_at`

func scanMaterial(row pgx.Row) (*entity.Material, error) {
	var m entity.Material
	var localID *string
	if err := row.Scan(&m.ID, &m.Code, &m.Description, &m.Unit, &m.StockCurrent, &m.StockMinimum,
		&m.Active, &localID, &m.CreatedAt); err != nil {
		return nil, err
	}
	m.LocationID = entity.NewUncheckedRef(localID)
	return &m, nil
}

func scanMaterialRows(rows pgx.Rows) (*entity.Material, error) {
	m, err := scanMaterial(rows)
	if err != nil {
		return nil, fmt.Errorf("scan material: %w", err)
	}
	return m, nil
}

// Create persiste um novo material com o stock inicial indicado.
func (r *MaterialRepo) Create(ctx context.Context, m *entity.Material) error {
	query := `INSERT INTO materiais (` + materialColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.Code, m.Description, m.Unit, m.StockCurrent, m.StockMinimum, m.Active,
		entity.RefString(m.LocationID), m.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert material: %w", err)
	}
	return nil
}

// GetByID obtém um material por id.
func (r *MaterialRepo) GetByID(ctx context.Context, id string) (*entity.Material, error) {
	m, err := scanMaterial(r.q.QueryRow(ctx, `SELECT `+materialColumns+` FROM materiais WHERE id::text = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get material: %w", err)
	}
	return m, nil
}

// GetByCode obtém um material pelo código.
func (r *MaterialRepo) GetByCode(ctx context.Context, code string) (*entity.Material, error) {
	m, err := scanMaterial(r.q.QueryRow(ctx, `SELECT `+materialColumns+` FROM materiais WHERE codigo = $1`, code))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get material por código: %w", err)
	}
	return m, nil
}

// List devolve todos os materiais por ordem de inserção.
func (r *MaterialRepo) List(ctx context.Context) ([]*entity.Material, error) {
	rows, err := r.q.Query(ctx, `SELECT `+materialColumns+` FROM materiais ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list materiais: %w", err)
	}
	return collect(rows, scanMaterialRows)
}

// ListByLocations devolve os materiais cujo local_id está em locationIDs.
func (r *MaterialRepo) ListByLocations(ctx context.Context, locationIDs []string) ([]*entity.Material, error) {
	if len(locationIDs) == 0 {
		return []*entity.Material{}, nil
	}
	rows, err := r.q.Query(ctx,
		`SELECT `+materialColumns+` FROM materiais WHERE local_id = ANY($1) ORDER BY created_at ASC, id ASC`,
		locationIDs)
	if err != nil {
		return nil, fmt.Errorf("list materiais por local: %w", err)
	}
	return collect(rows, scanMaterialRows)
}

// Update substitui os campos editáveis. stock_atual fica de fora (só AdjustStock o altera).
func (r *MaterialRepo) Update(ctx context.Context, m *entity.Material) error {
	query := `
		UPDATE materiais SET codigo = $2, descricao = $3, unidade = $4, stock_minimo = $5, ativo = $6, local_id = $7
		WHERE id::text = $1`
	cmd, err := r.q.Exec(ctx, query,
		m.ID, m.Code, m.Description, m.Unit, m.StockMinimum, m.Active, entity.RefString(m.LocationID),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update material: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AdjustStock incrementa stock_atual no servidor; movimentos concorrentes nunca se perdem.
func (r *MaterialRepo) AdjustStock(ctx context.Context, id string, delta decimal.Decimal) (bool, error) {
	cmd, err := r.q.Exec(ctx, `UPDATE materiais SET stock_atual = stock_atual + $2 WHERE id::text = $1`, id, delta)
	if err != nil {
		return false, fmt.Errorf("ajustar stock: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Delete elimina um material por id.
func (r *MaterialRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM materiais WHERE id::text = $1`, id)
	if err != nil {
		return fmt.Errorf("delete material: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
