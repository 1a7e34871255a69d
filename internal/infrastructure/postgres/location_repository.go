package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Armazem-api/internal/domain"
	"github.com/jhoicas/Armazem-api/internal/domain/entity"
	"github.com/jhoicas/Armazem-api/internal/domain/repository"
)

var _ repository.LocationRepository = (*LocationRepo)(nil)

// LocationRepo implementação do porto LocationRepository sobre PostgreSQL.
type LocationRepo struct {
	q Querier
}

// NewLocationRepository constrói o adaptador de persistência de locais.
func NewLocationRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q}
}

const locationColumns = `id, codigo, nome, tipo, obra_id, ativo, created_at`

func scanLocation(row pgx.Row) (*entity.Location, error) {
	var l entity.Location
	var siteID *string
	if err := row.Scan(&l.ID, &l.Code, &l.Name, &l.Type, &siteID, &l.Active, &l.CreatedAt); err != nil {
		return nil, err
	}
	l.SiteID = entity.NewRef(siteID)
	return &l, nil
}

func scanLocationRows(rows pgx.Rows) (*entity.Location, error) {
	l, err := scanLocation(rows)
	if err != nil {
		return nil, fmt.Errorf("scan local: %w", err)
	}
	return l, nil
}

// Create persiste um novo local.
func (r *LocationRepo) Create(ctx context.Context, l *entity.Location) error {
	_, err := r.q.Exec(ctx, `INSERT INTO locais (`+locationColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		l.ID, l.Code, l.Name, l.Type, entity.RefString(l.SiteID), l.Active, l.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert local: %w", err)
	}
	return nil
}

// GetByID obtém um local por id.
func (r *LocationRepo) GetByID(ctx context.Context, id string) (*entity.Location, error) {
	l, err := scanLocation(r.q.QueryRow(ctx, `SELECT `+locationColumns+` FROM locais WHERE id::text = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get local: %w", err)
	}
	return l, nil
}

// GetByCode obtém um local pelo código.
func (r *LocationRepo) GetByCode(ctx context.Context, code string) (*entity.Location, error) {
	l, err := scanLocation(r.q.QueryRow(ctx, `SELECT `+locationColumns+` FROM locais WHERE codigo = $1`, code))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get local por código: %w", err)
	}
	return l, nil
}

// List devolve todos os locais por ordem de inserção.
func (r *LocationRepo) List(ctx context.Context) ([]*entity.Location, error) {
	rows, err := r.q.Query(ctx, `SELECT `+locationColumns+` FROM locais ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list locais: %w", err)
	}
	return collect(rows, scanLocationRows)
}

// ListBySite devolve os locais associados a uma obra.
func (r *LocationRepo) ListBySite(ctx context.Context, siteID string) ([]*entity.Location, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+locationColumns+` FROM locais WHERE obra_id = $1 ORDER BY created_at ASC, id ASC`, siteID)
	if err != nil {
		return nil, fmt.Errorf("list locais da obra: %w", err)
	}
	return collect(rows, scanLocationRows)
}

// Update substitui todos os campos editáveis.
func (r *LocationRepo) Update(ctx context.Context, l *entity.Location) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE locais SET codigo = $2, nome = $3, tipo = $4, obra_id = $5, ativo = $6 WHERE id::text = $1`,
		l.ID, l.Code, l.Name, l.Type, entity.RefString(l.SiteID), l.Active)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update local: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ClearSite anula obra_id nos locais da obra.
func (r *LocationRepo) ClearSite(ctx context.Context, siteID string) (int64, error) {
	cmd, err := r.q.Exec(ctx, `UPDATE locais SET obra_id = NULL WHERE obra_id = $1`, siteID)
	if err != nil {
		return 0, fmt.Errorf("limpar obra dos locais: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// Delete elimina um local por id.
func (r *LocationRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM locais WHERE id::text = $1`, id)
	if err != nil {
		return fmt.Errorf("delete local: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
