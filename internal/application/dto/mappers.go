package dto

import "github.com/jhoicas/Armazem-api/internal/domain/entity"

// FromUser converte a entidade na resposta pública (sem hash).
func FromUser(u *entity.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email, CreatedAt: u.CreatedAt}
}

// FromEquipment converte a entidade na resposta HTTP.
func FromEquipment(e *entity.Equipment) EquipmentResponse {
	return EquipmentResponse{
		ID:              e.ID,
		Code:            e.Code,
		Description:     e.Description,
		Brand:           e.Brand,
		Model:           e.Model,
		AcquisitionDate: e.AcquisitionDate,
		Active:          e.Active,
		Category:        e.Category,
		SerialNumber:    e.SerialNumber,
		Responsible:     e.Responsible,
		Condition:       e.Condition,
		Photo:           e.Photo,
		LocationID:      entity.RefString(e.LocationID),
		Kind:            e.Kind,
		CreatedAt:       e.CreatedAt,
	}
}

// FromVehicle converte a entidade na resposta HTTP.
func FromVehicle(v *entity.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:              v.ID,
		Plate:           v.Plate,
		Brand:           v.Brand,
		Model:           v.Model,
		Fuel:            v.Fuel,
		Active:          v.Active,
		Photo:           v.Photo,
		InspectionDue:   v.InspectionDue,
		InsuranceDue:    v.InsuranceDue,
		RegistrationDoc: v.RegistrationDoc,
		InsurancePolicy: v.InsurancePolicy,
		Notes:           v.Notes,
		LocationID:      entity.RefString(v.LocationID),
		CreatedAt:       v.CreatedAt,
	}
}

// FromMaterial converte a entidade na resposta HTTP.
func FromMaterial(m *entity.Material) MaterialResponse {
	return MaterialResponse{
		ID:           m.ID,
		Code:         m.Code,
		Description:  m.Description,
		Unit:         m.Unit,
		StockCurrent: m.StockCurrent,
		StockMinimum: m.StockMinimum,
		Active:       m.Active,
		LocationID:   entity.RefString(m.LocationID),
		CreatedAt:    m.CreatedAt,
	}
}

// FromLocation converte a entidade na resposta HTTP.
func FromLocation(l *entity.Location) LocationResponse {
	return LocationResponse{
		ID:        l.ID,
		Code:      l.Code,
		Name:      l.Name,
		Type:      l.Type,
		SiteID:    entity.RefString(l.SiteID),
		Active:    l.Active,
		CreatedAt: l.CreatedAt,
	}
}

// FromSite converte a entidade na resposta HTTP.
func FromSite(s *entity.Site) SiteResponse {
	return SiteResponse{
		ID:        s.ID,
		Code:      s.Code,
		Name:      s.Name,
		Address:   s.Address,
		Client:    s.Client,
		Status:    s.Status,
		CreatedAt: s.CreatedAt,
	}
}

// FromAssetMovement converte o registo na resposta HTTP.
func FromAssetMovement(m *entity.AssetMovement) AssetMovementResponse {
	return AssetMovementResponse{
		ID:            m.ID,
		AssetID:       string(m.AssetID),
		AssetKind:     m.AssetKind,
		MovementType:  m.MovementType,
		OriginID:      entity.RefString(m.OriginID),
		DestinationID: entity.RefString(m.DestinationID),
		Responsible:   m.Responsible,
		Notes:         m.Notes,
		OccurredAt:    m.OccurredAt,
	}
}

// FromStockMovement converte o registo na resposta HTTP.
func FromStockMovement(m *entity.StockMovement) StockMovementResponse {
	return StockMovementResponse{
		ID:           m.ID,
		MaterialID:   string(m.MaterialID),
		MovementType: m.MovementType,
		Quantity:     m.Quantity,
		SiteID:       entity.RefString(m.SiteID),
		Supplier:     m.Supplier,
		Document:     m.Document,
		Responsible:  m.Responsible,
		Notes:        m.Notes,
		OccurredAt:   m.OccurredAt,
	}
}

// FromVehicleUsage converte o registo na resposta HTTP.
func FromVehicleUsage(m *entity.VehicleUsage) VehicleUsageResponse {
	return VehicleUsageResponse{
		ID:          m.ID,
		VehicleID:   string(m.VehicleID),
		SiteID:      entity.RefString(m.SiteID),
		Driver:      m.Driver,
		OdometerIn:  m.OdometerIn,
		OdometerOut: m.OdometerOut,
		Date:        m.Date,
		Notes:       m.Notes,
		CreatedAt:   m.CreatedAt,
	}
}

// mapAll aplica f a cada elemento; devolve slice vazio (nunca nil) para JSON [].
func mapAll[E any, R any](list []*E, f func(*E) R) []R {
	out := make([]R, 0, len(list))
	for _, e := range list {
		out = append(out, f(e))
	}
	return out
}

// FromEquipmentList converte uma lista de equipamentos.
func FromEquipmentList(list []*entity.Equipment) []EquipmentResponse {
	return mapAll(list, FromEquipment)
}

// FromVehicleList converte uma lista de viaturas.
func FromVehicleList(list []*entity.Vehicle) []VehicleResponse { return mapAll(list, FromVehicle) }

// FromMaterialList converte uma lista de materiais.
func FromMaterialList(list []*entity.Material) []MaterialResponse { return mapAll(list, FromMaterial) }

// FromLocationList converte uma lista de locais.
func FromLocationList(list []*entity.Location) []LocationResponse { return mapAll(list, FromLocation) }

// FromSiteList converte uma lista de obras.
func FromSiteList(list []*entity.Site) []SiteResponse { return mapAll(list, FromSite) }

// FromAssetMovementList converte uma lista de movimentos de ativos.
func FromAssetMovementList(list []*entity.AssetMovement) []AssetMovementResponse {
	return mapAll(list, FromAssetMovement)
}

// FromStockMovementList converte uma lista de movimentos de stock.
func FromStockMovementList(list []*entity.StockMovement) []StockMovementResponse {
	return mapAll(list, FromStockMovement)
}

// FromVehicleUsageList converte uma lista de utilizações de viaturas.
func FromVehicleUsageList(list []*entity.VehicleUsage) []VehicleUsageResponse {
	return mapAll(list, FromVehicleUsage)
}
