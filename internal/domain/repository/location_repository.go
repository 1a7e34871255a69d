package repository

import (
	"context"

	"github.com/jhoicas/Armazem-api/internal/domain/entity"
)

// LocationRepository define o porto de persistência de locais (coleção locais).
type LocationRepository interface {
	Create(ctx context.Context, l *entity.Location) error
	GetByID(ctx context.Context, id string) (*entity.Location, error)
	GetByCode(ctx context.Context, code string) (*entity.Location, error)
	List(ctx context.Context) ([]*entity.Location, error)
	ListBySite(ctx context.Context, siteID string) ([]*entity.Location, error)
	Update(ctx context.Context, l *entity.Location) error
	Delete(ctx context.Context, id string) error
	// ClearSite anula obra_id em todos os locais que apontavam para siteID. Devolve quantos mudaram.
	ClearSite(ctx context.Context, siteID string) (int64, error)
}
