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

// EquipmentUseCase casos de uso CRUD de equipamentos. O local muda por movimentos de ativos.
type EquipmentUseCase struct {
	repo repository.EquipmentRepository
	now  Clock
}

// NewEquipmentUseCase constrói o caso de uso.
func NewEquipmentUseCase(repo repository.EquipmentRepository) *EquipmentUseCase {
	return &EquipmentUseCase{repo: repo, now: systemClock}
}

func (uc *EquipmentUseCase) validate(in dto.EquipmentRequest) error {
	return required([2]string{"codigo", in.Code}, [2]string{"descricao", in.Description})
}

// Create cria um equipamento. O local_id inicial é aceite sem validação.
func (uc *EquipmentUseCase) Create(ctx context.Context, in dto.EquipmentRequest) (*dto.EquipmentResponse, error) {
	if err := uc.validate(in); err != nil {
		return nil, err
	}
	code := strings.TrimSpace(in.Code)
	existing, err := uc.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	e := &entity.Equipment{
		ID:              uuid.New().String(),
		Code:            code,
		Description:     in.Description,
		Brand:           in.Brand,
		Model:           in.Model,
		AcquisitionDate: in.AcquisitionDate,
		Active:          in.IsActive(),
		Category:        in.Category,
		SerialNumber:    in.SerialNumber,
		Responsible:     in.Responsible,
		Condition:       in.ConditionOrDefault(entity.DefaultCondition),
		Photo:           in.Photo,
		LocationID:      entity.NewUncheckedRef(in.LocationID),
		Kind:            entity.EquipmentKind,
		CreatedAt:       uc.now(),
	}
	if err := uc.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	out := dto.FromEquipment(e)
	return &out, nil
}

// GetByID obtém um equipamento. ErrNotFound se não existir.
func (uc *EquipmentUseCase) GetByID(ctx context.Context, id string) (*dto.EquipmentResponse, error) {
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.FromEquipment(e)
	return &out, nil
}

// List lista equipamentos; q filtra por código, descrição, marca, modelo e nº de série.
func (uc *EquipmentUseCase) List(ctx context.Context, q string) ([]dto.EquipmentResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	list = filter(list, q, func(e *entity.Equipment) []string {
		return []string{e.Code, e.Description, e.Brand, e.Model, e.SerialNumber}
	})
	return dto.FromEquipmentList(list), nil
}

// Update substitui o registo. local_id é ignorado: só movimentos o alteram.
func (uc *EquipmentUseCase) Update(ctx context.Context, id string, in dto.EquipmentRequest) (*dto.EquipmentResponse, error) {
	if err := uc.validate(in); err != nil {
		return nil, err
	}
	e := &entity.Equipment{
		ID:              id,
		Code:            strings.TrimSpace(in.Code),
		Description:     in.Description,
		Brand:           in.Brand,
		Model:           in.Model,
		AcquisitionDate: in.AcquisitionDate,
		Active:          in.IsActive(),
		Category:        in.Category,
		SerialNumber:    in.SerialNumber,
		Responsible:     in.Responsible,
		Condition:       in.ConditionOrDefault(entity.DefaultCondition),
		Photo:           in.Photo,
	}
	if err := uc.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, id)
}

// Delete elimina um equipamento.
func (uc *EquipmentUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}
