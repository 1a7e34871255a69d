package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Armazem-api/internal/domain"
	"github.com/jhoicas/Armazem-api/internal/domain/entity"
	"github.com/jhoicas/Armazem-api/internal/domain/repository"
)

var _ repository.SiteRepository = (*SiteRepo)(nil)

// SiteRepo implementação do porto SiteRepository sobre PostgreSQL.
type SiteRepo struct {
	q Querier
}

// NewSiteRepository constrói o adaptador de persistência de obras.
func NewSiteRepository(q Querier) *SiteRepo {
	return &SiteRepo{q: q}
}

const siteColumns = `id, codigo, nome, endereco, cliente, estado, created_at`

func scanSite(row pgx.Row) (*entity.Site, error) {
	var s entity.Site
	if err := row.Scan(&s.ID, &s.Code, &s.Name, &s.Address, &s.Client, &s.Status, &s.CreatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

func scanSiteRows(rows pgx.Rows) (*entity.Site, error) {
	s, err := scanSite(rows)
	if err != nil {
		return nil, fmt.Errorf("scan obra: %w", err)
	}
	return s, nil
}

// Create persiste uma nova obra.
func (r *SiteRepo) Create(ctx context.Context, s *entity.Site) error {
	_, err := r.q.Exec(ctx, `INSERT INTO obras (`+siteColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		s.ID, s.Code, s.Name, s.Address, s.Client, s.Status, s.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert obra: %w", err)
	}
	return nil
}

// GetByID obtém uma obra por id.
func (r *SiteRepo) GetByID(ctx context.Context, id string) (*entity.Site, error) {
	s, err := scanSite(r.q.QueryRow(ctx, `SELECT `+siteColumns+` FROM obras WHERE id::text = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get obra: %w", err)
	}
	return s, nil
}

// GetByCode obtém uma obra pelo código.
func (r *SiteRepo) GetByCode(ctx context.Context, code string) (*entity.Site, error) {
	s, err := scanSite(r.q.QueryRow(ctx, `SELECT `+siteColumns+` FROM obras WHERE codigo = $1`, code))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get obra por código: %w", err)
	}
	return s, nil
}

// List devolve todas as obras por ordem de inserção.
func (r *SiteRepo) List(ctx context.Context) ([]*entity.Site, error) {
	rows, err := r.q.Query(ctx, `SELECT `+siteColumns+` FROM obras ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list obras: %w", err)
	}
	return collect(rows, scanSiteRows)
}

// Update substitui todos os campos editáveis.
func (r *SiteRepo) Update(ctx context.Context, s *entity.Site) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE obras SET codigo = $2, nome = $3, endereco = $4, cliente = $5, estado = $6 WHERE id::text = $1`,
		s.ID, s.Code, s.Name, s.Address, s.Client, s.Status)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update obra: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina uma obra por id.
func (r *SiteRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM obras WHERE id::text = $1`, id)
	if err != nil {
		return fmt.Errorf("delete obra: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
