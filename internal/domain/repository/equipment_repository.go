package repository

import (
	"context"

	"github.com/jhoicas/Armazem-api/internal/domain/entity"
)

// EquipmentRepository define o porto de persistência de equipamentos (coleção equipamentos).
// Create/Update devolvem domain.ErrDuplicate se o código já existir; Update/Delete devolvem
// domain.ErrNotFound se o id não existir.
type EquipmentRepository interface {
	Create(ctx context.Context, e *entity.Equipment) error
	GetByID(ctx context.Context, id string) (*entity.Equipment, error)
	GetByCode(ctx context.Context, code string) (*entity.Equipment, error)
	List(ctx context.Context) ([]*entity.Equipment, error)
	ListByLocations(ctx context.Context, locationIDs []string) ([]*entity.Equipment, error)
	Update(ctx context.Context, e *entity.Equipment) error
	Delete(ctx context.Context, id string) error
	// SetLocation altera só local_id num único update atómico. false = equipamento inexistente.
	SetLocation(ctx context.Context, id string, locationID entity.UncheckedRef) (bool, error)
}
