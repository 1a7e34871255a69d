package repository

import (
	"context"

	"github.com/jhoicas/Armazem-api/internal/domain/entity"
)

// SiteRepository define o porto de persistência de obras (coleção obras).
type SiteRepository interface {
	Create(ctx context.Context, s *entity.Site) error
	GetByID(ctx context.Context, id string) (*entity.Site, error)
	GetByCode(ctx context.Context, code string) (*entity.Site, error)
	List(ctx context.Context) ([]*entity.Site, error)
	Update(ctx context.Context, s *entity.Site) error
	Delete(ctx context.Context, id string) error
}
