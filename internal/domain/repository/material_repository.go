package repository

import (
	"context"

	"github.com/jhoicas/Armazem-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// MaterialRepository define o porto de persistência de materiais (coleção materiais).
type MaterialRepository interface {
	Create(ctx context.Context, m *entity.Material) error
	GetByID(ctx context.Context, id string) (*entity.Material, error)
	GetByCode(ctx context.Context, code string) (*entity.Material, error)
	List(ctx context.Context) ([]*entity.Material, error)
	ListByLocations(ctx context.Context, locationIDs []string) ([]*entity.Material, error)
	Update(ctx context.Context, m *entity.Material) error
	Delete(ctx context.Context, id string) error
	// AdjustStock aplica stock_atual += delta no próprio armazenamento (sem ler-modificar-escrever).
	// false = material inexistente; nesse caso nada é alterado.
	AdjustStock(ctx context.Context, id string, delta decimal.Decimal) (bool, error)
}
