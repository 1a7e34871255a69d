package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// InventoryTotals contagens agregadas para o dashboard.
type InventoryTotals struct {
	EquipmentTotal  int
	EquipmentActive int
	VehicleTotal    int
	VehicleActive   int
	MaterialTotal   int
	StockTotal      decimal.Decimal
	LocationTotal   int
	Warehouses      int
	Workshops       int
	SiteLocations   int
	SiteTotal       int
	SitesActive     int
	SitesCompleted  int
	SitesPaused     int
}

// SummaryRepository consultas só de leitura para o resumo.
type SummaryRepository interface {
	Totals(ctx context.Context) (*InventoryTotals, error)
}
