package repository

import (
	"context"

	"github.com/jhoicas/Armazem-api/internal/domain/entity"
)

// MovementFilter filtro dos diários de movimentos. RefID vazio = todos;
// conforme o diário refere-se ao ativo, ao material ou à viatura.
type MovementFilter struct {
	RefID  string
	Limit  int
	Offset int
}

// Os diários de movimentos só aceitam inserções: não há Update nem Delete.

// AssetMovementRepository coleção movimentos_ativos.
type AssetMovementRepository interface {
	Create(ctx context.Context, m *entity.AssetMovement) error
	List(ctx context.Context, f MovementFilter) ([]*entity.AssetMovement, error)
}

// StockMovementRepository coleção movimentos_stock.
type StockMovementRepository interface {
	Create(ctx context.Context, m *entity.StockMovement) error
	List(ctx context.Context, f MovementFilter) ([]*entity.StockMovement, error)
}

// VehicleUsageRepository coleção movimentos_viaturas.
type VehicleUsageRepository interface {
	Create(ctx context.Context, m *entity.VehicleUsage) error
	List(ctx context.Context, f MovementFilter) ([]*entity.VehicleUsage, error)
}
