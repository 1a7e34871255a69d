package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Armazem-api/internal/domain"
	"github.com/jhoicas/Armazem-api/internal/domain/entity"
	"github.com/jhoicas/Armazem-api/internal/domain/repository"
)

var _ repository.VehicleRepository = (*VehicleRepo)(nil)

// VehicleRepo implementação do porto VehicleRepository sobre PostgreSQL.
type VehicleRepo struct {
	q Querier
}

// NewVehicleRepository constrói o adaptador de persistência de viaturas.
func NewVehicleRepository(q Querier) *VehicleRepo {
	return &VehicleRepo{q: q}
}

const vehicleColumns = `id, matricula, marca, modelo, combustivel, ativa, foto, data_vistoria, data_seguro,
	documento_unico, apolice_seguro, observacoes, local_id, created_at`

func scanVehicle(row pgx.Row) (*entity.Vehicle, error) {
	var v entity.Vehicle
	var localID *string
	if err := row.Scan(&v.ID, &v.Plate, &v.Brand, &v.Model, &v.Fuel, &v.Active, &v.Photo, &v.InspectionDue,
		&v.InsuranceDue, &v.RegistrationDoc, &v.InsurancePolicy, &v.Notes, &localID, &v.CreatedAt); err != nil {
		return nil, err
	}
	v.LocationID = entity.NewUncheckedRef(localID)
	return &v, nil
}

func scanVehicleRows(rows pgx.Rows) (*entity.Vehicle, error) {
	v, err := scanVehicle(rows)
	if err != nil {
		return nil, fmt.Errorf("scan viatura: %w", err)
	}
	return v, nil
}

// Create persiste uma nova viatura.
func (r *VehicleRepo) Create(ctx context.Context, v *entity.Vehicle) error {
	query := `INSERT INTO viaturas (` + vehicleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		v.ID, v.Plate, v.Brand, v.Model, v.Fuel, v.Active, v.Photo, v.InspectionDue, v.InsuranceDue,
		v.RegistrationDoc, v.InsurancePolicy, v.Notes, entity.RefString(v.LocationID), v.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert viatura: %w", err)
	}
	return nil
}

// GetByID obtém uma viatura por id.
func (r *VehicleRepo) GetByID(ctx context.Context, id string) (*entity.Vehicle, error) {
	v, err := scanVehicle(r.q.QueryRow(ctx, `SELECT `+vehicleColumns+` FROM viaturas WHERE id::text = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get viatura: %w", err)
	}
	return v, nil
}

// GetByPlate obtém uma viatura pela matrícula.
func (r *VehicleRepo) GetByPlate(ctx context.Context, plate string) (*entity.Vehicle, error) {
	v, err := scanVehicle(r.q.QueryRow(ctx, `SELECT `+vehicleColumns+` FROM viaturas WHERE matricula = $1`, plate))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get viatura por matrícula: %w", err)
	}
	return v, nil
}

// List devolve todas as viaturas por ordem de inserção.
func (r *VehicleRepo) List(ctx context.Context) ([]*entity.Vehicle, error) {
	rows, err := r.q.Query(ctx, `SELECT `+vehicleColumns+` FROM viaturas ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list viaturas: %w", err)
	}
	return collect(rows, scanVehicleRows)
}

// ListByLocations devolve as viaturas cujo local_id está em locationIDs.
func (r *VehicleRepo) ListByLocations(ctx context.Context, locationIDs []string) ([]*entity.Vehicle, error) {
	if len(locationIDs) == 0 {
		return []*entity.Vehicle{}, nil
	}
	rows, err := r.q.Query(ctx,
		`SELECT `+vehicleColumns+` FROM viaturas WHERE local_id = ANY($1) ORDER BY created_at ASC, id ASC`,
		locationIDs)
	if err != nil {
		return nil, fmt.Errorf("list viaturas por local: %w", err)
	}
	return collect(rows, scanVehicleRows)
}

// Update substitui todos os campos editáveis, incluindo local_id.
func (r *VehicleRepo) Update(ctx context.Context, v *entity.Vehicle) error {
	query := `
		UPDATE viaturas SET matricula = $2, marca = $3, modelo = $4, combustivel = $5, ativa = $6, foto = $7,
			data_vistoria = $8, data_seguro = $9, documento_unico = $10, apolice_seguro = $11, observacoes = $12,
			local_id = $13
		WHERE id::text = $1`
	cmd, err := r.q.Exec(ctx, query,
		v.ID, v.Plate, v.Brand, v.Model, v.Fuel, v.Active, v.Photo, v.InspectionDue, v.InsuranceDue,
		v.RegistrationDoc, v.InsurancePolicy, v.Notes, entity.RefString(v.LocationID),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update viatura: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina uma viatura por id.
func (r *VehicleRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM viaturas WHERE id::text = $1`, id)
	if err != nil {
		return fmt.Errorf("delete viatura: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
