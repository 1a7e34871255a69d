package dto

import "github.com/shopspring/decimal"

// SummaryResponse resposta de GET /api/summary.
type SummaryResponse struct {
	Equipment EquipmentCounts `json:"equipamentos"`
	Vehicles  VehicleCounts   `json:"viaturas"`
	Materials MaterialTotals  `json:"materiais"`
	Locations LocationCounts  `json:"locais"`
	Sites     SiteCounts      `json:"obras"`
	Alerts    []SummaryAlert  `json:"alerts"`
}

// EquipmentCounts totais de equipamentos.
type EquipmentCounts struct {
	Total    int `json:"total"`
	Active   int `json:"ativos"`
	Inactive int `json:"inativos"`
}

// VehicleCounts totais de viaturas.
type VehicleCounts struct {
	Total    int `json:"total"`
	Active   int `json:"ativas"`
	Inactive int `json:"inativas"`
}

// MaterialTotals total de materiais e soma do stock.
type MaterialTotals struct {
	Total      int             `json:"total"`
	StockTotal decimal.Decimal `json:"stock_total"`
}

// LocationCounts locais por tipo.
type LocationCounts struct {
	Total      int `json:"total"`
	Warehouses int `json:"armazens"`
	Workshops  int `json:"oficinas"`
	Sites      int `json:"obras"`
}

// SiteCounts obras por estado.
type SiteCounts struct {
	Total     int `json:"total"`
	Active    int `json:"ativas"`
	Completed int `json:"concluidas"`
	Paused    int `json:"pausadas"`
}
