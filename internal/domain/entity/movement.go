package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de ativo num movimento.
const (
	AssetKindEquipment = "equipamento"
	AssetKindVehicle   = "viatura"
)

// StockMovementEntry é o único tipo que soma ao stock; qualquer outro subtrai.
const StockMovementEntry = "Entrada"

// AssetMovement transferência/registo de um equipamento ou viatura.
// Nenhuma referência é validada: o registo é gravado sempre.
type AssetMovement struct {
	ID            string
	AssetID       UncheckedRef
	AssetKind     string
	MovementType  string
	OriginID      *UncheckedRef
	DestinationID *UncheckedRef
	Responsible   string
	Notes         string
	OccurredAt    time.Time
}

// StockMovement entrada/saída de material.
type StockMovement struct {
	ID           string
	MaterialID   UncheckedRef
	MovementType string
	Quantity     decimal.Decimal
	SiteID       *UncheckedRef
	Supplier     string
	Document     string
	Responsible  string
	Notes        string
	OccurredAt   time.Time
}

// Delta devolve o efeito do movimento no stock: +quantidade para Entrada, -quantidade nos restantes.
func (m *StockMovement) Delta() decimal.Decimal {
	if m.MovementType == StockMovementEntry {
		return m.Quantity
	}
	return m.Quantity.Neg()
}

// VehicleUsage registo de utilização de uma viatura (diário de bordo). Sem efeitos secundários.
type VehicleUsage struct {
	ID          string
	VehicleID   UncheckedRef
	SiteID      *UncheckedRef
	Driver      string
	OdometerIn  decimal.Decimal
	OdometerOut decimal.Decimal
	Date        string
	Notes       string
	CreatedAt   time.Time
}
