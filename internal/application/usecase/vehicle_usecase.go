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

// VehicleUseCase casos de uso CRUD de viaturas.
type VehicleUseCase struct {
	repo repository.VehicleRepository
	now  Clock
}

// NewVehicleUseCase constrói o caso de uso.
func NewVehicleUseCase(repo repository.VehicleRepository) *VehicleUseCase {
	return &VehicleUseCase{repo: repo, now: systemClock}
}

func (uc *VehicleUseCase) build(id string, in dto.VehicleRequest) (*entity.Vehicle, error) {
	if err := required([2]string{"matricula", in.Plate}, [2]string{"marca", in.Brand}, [2]string{"modelo", in.Model}); err != nil {
		return nil, err
	}
	return &entity.Vehicle{
		ID:              id,
		Plate:           strings.TrimSpace(in.Plate),
		Brand:           in.Brand,
		Model:           in.Model,
		Fuel:            in.FuelOrDefault(entity.DefaultFuel),
		Active:          in.IsActive(),
		Photo:           in.Photo,
		InspectionDue:   in.InspectionDue,
		InsuranceDue:    in.InsuranceDue,
		RegistrationDoc: in.RegistrationDoc,
		InsurancePolicy: in.InsurancePolicy,
		Notes:           in.Notes,
		LocationID:      entity.NewUncheckedRef(in.LocationID),
	}, nil
}

// Create cria uma viatura. Datas de vistoria/seguro ficam como texto; o motor de alertas faz o parse.
func (uc *VehicleUseCase) Create(ctx context.Context, in dto.VehicleRequest) (*dto.VehicleResponse, error) {
	v, err := uc.build(uuid.New().String(), in)
	if err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByPlate(ctx, v.Plate)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	v.CreatedAt = uc.now()
	if err := uc.repo.Create(ctx, v); err != nil {
		return nil, err
	}
	out := dto.FromVehicle(v)
	return &out, nil
}

// GetByID obtém uma viatura.
func (uc *VehicleUseCase) GetByID(ctx context.Context, id string) (*dto.VehicleResponse, error) {
	v, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.FromVehicle(v)
	return &out, nil
}

// List lista viaturas; q filtra por matrícula, marca e modelo.
func (uc *VehicleUseCase) List(ctx context.Context, q string) ([]dto.VehicleResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	list = filter(list, q, func(v *entity.Vehicle) []string {
		return []string{v.Plate, v.Brand, v.Model}
	})
	return dto.FromVehicleList(list), nil
}

// Update substitui o registo (incluindo local_id).
func (uc *VehicleUseCase) Update(ctx context.Context, id string, in dto.VehicleRequest) (*dto.VehicleResponse, error) {
	v, err := uc.build(id, in)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, v); err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, id)
}

// Delete elimina uma viatura.
func (uc *VehicleUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}
