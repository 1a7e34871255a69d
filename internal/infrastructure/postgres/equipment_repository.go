package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Armazem-api/internal/domain"
	"github.com/jhoicas/Armazem-api/internal/domain/entity"
	"github.com/jhoicas/Armazem-api/internal/domain/repository"
)

var _ repository.EquipmentRepository = (*EquipmentRepo)(nil)

// EquipmentRepo implementação do porto EquipmentRepository sobre PostgreSQL (pool ou tx).
type EquipmentRepo struct {
	q Querier
}

// NewEquipmentRepository constrói o adaptador de persistência de equipamentos.
func NewEquipmentRepository(q Querier) *EquipmentRepo {
	return &EquipmentRepo{q: q}
}

const equipmentColumns = `id, codigo, descricao, marca, modelo, data_aquisicao, ativo, categoria, numero_serie,
	responsavel, estado_conservacao, foto, local_id, tipo, created_at`

func scanEquipment(row pgx.Row) (*entity.Equipment, error) {
	var e entity.Equipment
	var localID *string
	if err := row.Scan(&e.ID, &e.Code, &e.Description, &e.Brand, &e.Model, &e.AcquisitionDate, &e.Active,
		&e.Category, &e.SerialNumber, &e.Responsible, &e.Condition, &e.Photo, &localID, &e.Kind, &e.CreatedAt); err != nil {
		return nil, err
	}
	e.LocationID = entity.NewUncheckedRef(localID)
	return &e, nil
}

func scanEquipmentRows(rows pgx.Rows) (*entity.Equipment, error) {
	e, err := scanEquipment(rows)
	if err != nil {
		return nil, fmt.Errorf("scan equipamento: %w", err)
	}
	return e, nil
}

// Create persiste um novo equipamento.
func (r *EquipmentRepo) Create(ctx context.Context, e *entity.Equipment) error {
	query := `INSERT INTO equipamentos (` + equipmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.Code, e.Description, e.Brand, e.Model, e.AcquisitionDate, e.Active, e.Category,
		e.SerialNumber, e.Responsible, e.Condition, e.Photo, entity.RefString(e.LocationID), e.Kind, e.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert equipamento: %w", err)
	}
	return nil
}

// GetByID obtém um equipamento por id. (nil, nil) se não existir.
func (r *EquipmentRepo) GetByID(ctx context.Context, id string) (*entity.Equipment, error) {
	e, err := scanEquipment(r.q.QueryRow(ctx, `SELECT `+equipmentColumns+` FROM equipamentos WHERE id::text = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get equipamento: %w", err)
	}
	return e, nil
}

// GetByCode obtém um equipamento pelo código.
func (r *EquipmentRepo) GetByCode(ctx context.Context, code string) (*entity.Equipment, error) {
	e, err := scanEquipment(r.q.QueryRow(ctx, `SELECT `+equipmentColumns+` FROM equipamentos WHERE codigo = $1`, code))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get equipamento por código: %w", err)
	}
	return e, nil
}

// List devolve todos os equipamentos por ordem de inserção.
func (r *EquipmentRepo) List(ctx context.Context) ([]*entity.Equipment, error) {
	rows, err := r.q.Query(ctx, `SELECT `+equipmentColumns+` FROM equipamentos ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list equipamentos: %w", err)
	}
	return collect(rows, scanEquipmentRows)
}

// ListByLocations devolve os equipamentos cujo local_id está em locationIDs.
func (r *EquipmentRepo) ListByLocations(ctx context.Context, locationIDs []string) ([]*entity.Equipment, error) {
	if len(locationIDs) == 0 {
		return []*entity.Equipment{}, nil
	}
	rows, err := r.q.Query(ctx,
		`SELECT `+equipmentColumns+` FROM equipamentos WHERE local_id = ANY($1) ORDER BY created_at ASC, id ASC`,
		locationIDs)
	if err != nil {
		return nil, fmt.Errorf("list equipamentos por local: %w", err)
	}
	return collect(rows, scanEquipmentRows)
}

// Update substitui os campos editáveis. local_id não é tocado: muda apenas por movimentos.
func (r *EquipmentRepo) Update(ctx context.Context, e *entity.Equipment) error {
	query := `
		UPDATE equipamentos SET codigo = $2, descricao = $3, marca = $4, modelo = $5, data_aquisicao = $6, ativo = $7,
			categoria = $8, numero_serie = $9, responsavel = $10, estado_conservacao = $11, foto = $12
		WHERE id::text = $1`
	cmd, err := r.q.Exec(ctx, query,
		e.ID, e.Code, e.Description, e.Brand, e.Model, e.AcquisitionDate, e.Active,
		e.Category, e.SerialNumber, e.Responsible, e.Condition, e.Photo,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update equipamento: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetLocation altera só o local_id.
func (r *EquipmentRepo) SetLocation(ctx context.Context, id string, locationID entity.UncheckedRef) (bool, error) {
	cmd, err := r.q.Exec(ctx, `UPDATE equipamentos SET local_id = $2 WHERE id::text = $1`, id, string(locationID))
	if err != nil {
		return false, fmt.Errorf("update local do equipamento: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Delete elimina um equipamento por id.
func (r *EquipmentRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM equipamentos WHERE id::text = $1`, id)
	if err != nil {
		return fmt.Errorf("delete equipamento: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
