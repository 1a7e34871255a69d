package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/Armazem-api/internal/application/dto"
	"github.com/jhoicas/Armazem-api/internal/domain"
	"github.com/jhoicas/Armazem-api/internal/domain/entity"
	"github.com/jhoicas/Armazem-api/internal/domain/repository"
)

// MaterialUseCase casos de uso CRUD de materiais. stock_atual só muda por movimentos de stock.
type MaterialUseCase struct {
	repo repository.MaterialRepository
	now  Clock
}

// NewMaterialUseCase constrói o caso de uso.
func NewMaterialUseCase(repo repository.MaterialRepository) *MaterialUseCase {
	return &MaterialUseCase{repo: repo, now: systemClock}
}

func (uc *MaterialUseCase) build(id string, in dto.MaterialRequest) (*entity.Material, error) {
	if err := required([2]string{"codigo", in.Code}, [2]string{"descricao", in.Description}); err != nil {
		return nil, err
	}
	return &entity.Material{
		ID:           id,
		Code:         strings.TrimSpace(in.Code),
		Description:  in.Description,
		Unit:         in.UnitOrDefault(entity.DefaultUnit),
		StockCurrent: in.StockCurrent,
		StockMinimum: in.StockMinimum,
		Active:       in.IsActive(),
		LocationID:   entity.NewUncheckedRef(in.LocationID),
	}, nil
}

// Create cria um material com stock_atual inicial.
func (uc *MaterialUseCase) Create(ctx context.Context, in dto.MaterialRequest) (*dto.MaterialResponse, error) {
	m, err := uc.build(uuid.New().String(), in)
	if err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByCode(ctx, m.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	m.CreatedAt = uc.now()
	if err := uc.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	out := dto.FromMaterial(m)
	return &out, nil
}

// GetByID obtém um material.
func (uc *MaterialUseCase) GetByID(ctx context.Context, id string) (*dto.MaterialResponse, error) {
	m, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.FromMaterial(m)
	return &out, nil
}

// List lista materiais; q filtra por código e descrição.
func (uc *MaterialUseCase) List(ctx context.Context, q string) ([]dto.MaterialResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	list = filter(list, q, func(m *entity.Material) []string { return []string{m.Code, m.Description} })
	return dto.FromMaterialList(list), nil
}

// Update substitui o registo exceto stock_atual (o valor enviado é ignorado).
func (uc *MaterialUseCase) Update(ctx context.Context, id string, in dto.MaterialRequest) (*dto.MaterialResponse, error) {
	m, err := uc.build(id, in)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, id)
}

// Delete elimina um material. Os movimentos históricos ficam.
func (uc *MaterialUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}
