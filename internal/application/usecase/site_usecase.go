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
	"github.com/jhoicas/Armazem-api/pkg/logger"
)

// SiteUseCase casos de uso de obras, incluindo os recursos alocados a cada obra.
type SiteUseCase struct {
	repo      repository.SiteRepository
	locations repository.LocationRepository
	equipment repository.EquipmentRepository
	vehicles  repository.VehicleRepository
	materials repository.MaterialRepository
	tx        repository.SiteTxRunner
	log       *logger.Logger
	now       Clock
}

// NewSiteUseCase constrói o caso de uso.
func NewSiteUseCase(
	repo repository.SiteRepository,
	locations repository.LocationRepository,
	equipment repository.EquipmentRepository,
	vehicles repository.VehicleRepository,
	materials repository.MaterialRepository,
	tx repository.SiteTxRunner,
	log *logger.Logger,
) *SiteUseCase {
	return &SiteUseCase{
		repo:      repo,
		locations: locations,
		equipment: equipment,
		vehicles:  vehicles,
		materials: materials,
		tx:        tx,
		log:       log,
		now:       systemClock,
	}
}

func (uc *SiteUseCase) build(id string, in dto.SiteRequest) (*entity.Site, error) {
	if err := required([2]string{"codigo", in.Code}, [2]string{"nome", in.Name}); err != nil {
		return nil, err
	}
	return &entity.Site{
		ID:      id,
		Code:    strings.TrimSpace(in.Code),
		Name:    in.Name,
		Address: in.Address,
		Client:  in.Client,
		Status:  in.StatusOrDefault(entity.SiteStatusActive),
	}, nil
}

// Create cria uma obra.
func (uc *SiteUseCase) Create(ctx context.Context, in dto.SiteRequest) (*dto.SiteResponse, error) {
	s, err := uc.build(uuid.New().String(), in)
	if err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByCode(ctx, s.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	s.CreatedAt = uc.now()
	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	out := dto.FromSite(s)
	return &out, nil
}

// GetByID obtém uma obra.
func (uc *SiteUseCase) GetByID(ctx context.Context, id string) (*dto.SiteResponse, error) {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.FromSite(s)
	return &out, nil
}

// List lista obras; q filtra por código, nome e cliente.
func (uc *SiteUseCase) List(ctx context.Context, q string) ([]dto.SiteResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	list = filter(list, q, func(s *entity.Site) []string { return []string{s.Code, s.Name, s.Client} })
	return dto.FromSiteList(list), nil
}

// Update substitui o registo.
func (uc *SiteUseCase) Update(ctx context.Context, id string, in dto.SiteRequest) (*dto.SiteResponse, error) {
	s, err := uc.build(id, in)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, id)
}

// Delete elimina a obra e, na mesma transação, anula obra_id nos locais que a referenciavam.
// Os locais não são apagados.
func (uc *SiteUseCase) Delete(ctx context.Context, id string) error {
	var cleared int64
	err := uc.tx.RunSites(ctx, func(sites repository.SiteRepository, locations repository.LocationRepository) error {
		if err := sites.Delete(ctx, id); err != nil {
			return err
		}
		n, err := locations.ClearSite(ctx, id)
		if err != nil {
			return fmt.Errorf("limpar locais da obra: %w", err)
		}
		cleared = n
		return nil
	})
	if err != nil {
		return err
	}
	uc.log.Info().Str("obra_id", id).Int64("locais_desassociados", cleared).Msg("obra eliminada")
	return nil
}

// Resources devolve a obra, os locais associados e os equipamentos, viaturas e materiais nesses locais.
func (uc *SiteUseCase) Resources(ctx context.Context, id string) (*dto.SiteResourcesResponse, error) {
	site, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if site == nil {
		return nil, domain.ErrNotFound
	}
	locations, err := uc.locations.ListBySite(ctx, id)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(locations))
	for _, l := range locations {
		ids = append(ids, l.ID)
	}
	equipment, err := uc.equipment.ListByLocations(ctx, ids)
	if err != nil {
		return nil, err
	}
	vehicles, err := uc.vehicles.ListByLocations(ctx, ids)
	if err != nil {
		return nil, err
	}
	materials, err := uc.materials.ListByLocations(ctx, ids)
	if err != nil {
		return nil, err
	}
	return &dto.SiteResourcesResponse{
		Site:      dto.FromSite(site),
		Locations: dto.FromLocationList(locations),
		Equipment: dto.FromEquipmentList(equipment),
		Vehicles:  dto.FromVehicleList(vehicles),
		Materials: dto.FromMaterialList(materials),
	}, nil
}
