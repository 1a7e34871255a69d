package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AssetMovementRequest corpo de POST /api/movimentos/ativos.
type AssetMovementRequest struct {
	AssetID       string  `json:"ativo_id"`
	AssetKind     string  `json:"tipo_ativo"`
	MovementType  string  `json:"tipo_movimento"`
	OriginID      *string `json:"origem_id"`
	DestinationID *string `json:"destino_id"`
	Responsible   string  `json:"responsavel"`
	Notes         string  `json:"observacoes"`
}

// AssetMovementResponse movimento de ativo gravado.
type AssetMovementResponse struct {
	ID            string    `json:"id"`
	AssetID       string    `json:"ativo_id"`
	AssetKind     string    `json:"tipo_ativo"`
	MovementType  string    `json:"tipo_movimento"`
	OriginID      *string   `json:"origem_id"`
	DestinationID *string   `json:"destino_id"`
	Responsible   string    `json:"responsavel"`
	Notes         string    `json:"observacoes"`
	OccurredAt    time.Time `json:"data_hora"`
}

// StockMovementRequest corpo de POST /api/movimentos/stock.
type StockMovementRequest struct {
	MaterialID   string          `json:"material_id"`
	MovementType string          `json:"tipo_movimento"`
	Quantity     decimal.Decimal `json:"quantidade"`
	SiteID       *string         `json:"obra_id"`
	Supplier     string          `json:"fornecedor"`
	Document     string          `json:"documento"`
	Responsible  string          `json:"responsavel"`
	Notes        string          `json:"observacoes"`
}

// StockMovementResponse movimento de stock gravado.
type StockMovementResponse struct {
	ID           string          `json:"id"`
	MaterialID   string          `json:"material_id"`
	MovementType string          `json:"tipo_movimento"`
	Quantity     decimal.Decimal `json:"quantidade"`
	SiteID       *string         `json:"obra_id"`
	Supplier     string          `json:"fornecedor"`
	Document     string          `json:"documento"`
	Responsible  string          `json:"responsavel"`
	Notes        string          `json:"observacoes"`
	OccurredAt   time.Time       `json:"data_hora"`
}

// VehicleUsageRequest corpo de POST /api/movimentos/viaturas.
type VehicleUsageRequest struct {
	VehicleID   string          `json:"viatura_id"`
	SiteID      *string         `json:"obra_id"`
	Driver      string          `json:"condutor"`
	OdometerIn  decimal.Decimal `json:"km_inicial"`
	OdometerOut decimal.Decimal `json:"km_final"`
	Date        string          `json:"data"`
	Notes       string          `json:"observacoes"`
}

// VehicleUsageResponse registo de utilização gravado.
type VehicleUsageResponse struct {
	ID          string          `json:"id"`
	VehicleID   string          `json:"viatura_id"`
	SiteID      *string         `json:"obra_id"`
	Driver      string          `json:"condutor"`
	OdometerIn  decimal.Decimal `json:"km_inicial"`
	OdometerOut decimal.Decimal `json:"km_final"`
	Date        string          `json:"data"`
	Notes       string          `json:"observacoes"`
	CreatedAt   time.Time       `json:"created_at"`
}
