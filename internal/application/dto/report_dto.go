package dto

import "time"

// InventoryReport dados do relatório exportado (PDF e Excel).
type InventoryReport struct {
	GeneratedAt time.Time
	Summary     SummaryResponse
	Equipment   []EquipmentResponse
	Vehicles    []VehicleResponse
	Materials   []MaterialResponse
}
