package dto

import "time"

// VehicleRequest corpo de criação e de substituição de uma viatura.
type VehicleRequest struct {
	Plate           string  `json:"matricula"`
	Brand           string  `json:"marca"`
	Model           string  `json:"modelo"`
	Fuel            string  `json:"combustivel"`
	Active          *bool   `json:"ativa"`
	Photo           string  `json:"foto"`
	InspectionDue   *string `json:"data_vistoria"`
	InsuranceDue    *string `json:"data_seguro"`
	RegistrationDoc string  `json:"documento_unico"`
	InsurancePolicy string  `json:"apolice_seguro"`
	Notes           string  `json:"observacoes"`
	LocationID      *string `json:"local_id"`
}

// IsActive ativa por omissão.
func (r VehicleRequest) IsActive() bool { return boolOr(r.Active, true) }

// FuelOrDefault combustível, def se vazio.
func (r VehicleRequest) FuelOrDefault(def string) string { return stringOr(r.Fuel, def) }

// VehicleResponse saída de uma viatura.
type VehicleResponse struct {
	ID              string    `json:"id"`
	Plate           string    `json:"matricula"`
	Brand           string    `json:"marca"`
	Model           string    `json:"modelo"`
	Fuel            string    `json:"combustivel"`
	Active          bool      `json:"ativa"`
	Photo           string    `json:"foto"`
	InspectionDue   *string   `json:"data_vistoria"`
	InsuranceDue    *string   `json:"data_seguro"`
	RegistrationDoc string    `json:"documento_unico"`
	InsurancePolicy string    `json:"apolice_seguro"`
	Notes           string    `json:"observacoes"`
	LocationID      *string   `json:"local_id"`
	CreatedAt       time.Time `json:"created_at"`
}
