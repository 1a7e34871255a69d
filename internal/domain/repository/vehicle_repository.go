package repository

import (
	"context"

	"github.com/jhoicas/Armazem-api/internal/domain/entity"
)

// VehicleRepository define o porto de persistência de viaturas (coleção viaturas).
type VehicleRepository interface {
	Create(ctx context.Context, v *entity.Vehicle) error
	GetByID(ctx context.Context, id string) (*entity.Vehicle, error)
	GetByPlate(ctx context.Context, plate string) (*entity.Vehicle, error)
	List(ctx context.Context) ([]*entity.Vehicle, error)
	ListByLocations(ctx context.Context, locationIDs []string) ([]*entity.Vehicle, error)
	Update(ctx context.Context, v *entity.Vehicle) error
	Delete(ctx context.Context, id string) error
}
