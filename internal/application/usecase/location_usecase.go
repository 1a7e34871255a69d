package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/Armazem-api/internal/application/dto"
	"github.com/jhoicas/Armazem-api/internal/domain"
	"github.com/jhoicas/Armazem-api/internal/domain/entity"
	"github.com/jhoicas/Armazem-api/internal/domain/repository"
)

// LocationUseCase casos de uso CRUD de locais. obra_id é validado na escrita.
type LocationUseCase struct {
	repo  repository.LocationRepository
	sites repository.SiteRepository
	now   Clock
}

// NewLocationUseCase constrói o caso de uso.
func NewLocationUseCase(repo repository.LocationRepository, sites repository.SiteRepository) *LocationUseCase {
	return &LocationUseCase{repo: repo, sites: sites, now: systemClock}
}

func (uc *LocationUseCase) build(ctx context.Context, id string, in dto.LocationRequest) (*entity.Location, error) {
	if err := required([2]string{"codigo", in.Code}, [2]string{"nome", in.Name}); err != nil {
		return nil, err
	}
	siteID := entity.NewRef(in.SiteID)
	if siteID != nil {
		site, err := uc.sites.GetByID(ctx, string(*siteID))
		if err != nil {
			return nil, err
		}
		if site == nil {
			return nil, fmt.Errorf("%w: obra %s não existe", domain.ErrInvalidInput, *siteID)
		}
	}
	return &entity.Location{
		ID:     id,
		Code:   strings.TrimSpace(in.Code),
		Name:   in.Name,
		Type:   in.TypeOrDefault(entity.LocationTypeWarehouse),
		SiteID: siteID,
		Active: in.IsActive(),
	}, nil
}

// Create cria um local.
func (uc *LocationUseCase) Create(ctx context.Context, in dto.LocationRequest) (*dto.LocationResponse, error) {
	l, err := uc.build(ctx, uuid.New().String(), in)
	if err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByCode(ctx, l.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	l.CreatedAt = uc.now()
	if err := uc.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	out := dto.FromLocation(l)
	return &out, nil
}

// GetByID obtém um local.
func (uc *LocationUseCase) GetByID(ctx context.Context, id string) (*dto.LocationResponse, error) {
	l, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.FromLocation(l)
	return &out, nil
}

// List lista locais; q filtra por código e nome.
func (uc *LocationUseCase) List(ctx context.Context, q string) ([]dto.LocationResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	list = filter(list, q, func(l *entity.Location) []string { return []string{l.Code, l.Name} })
	return dto.FromLocationList(list), nil
}

// Update substitui o registo.
func (uc *LocationUseCase) Update(ctx context.Context, id string, in dto.LocationRequest) (*dto.LocationResponse, error) {
	l, err := uc.build(ctx, id, in)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, l); err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, id)
}

// Delete elimina um local. Ativos que o referenciam ficam com local_id pendurado.
func (uc *LocationUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}
