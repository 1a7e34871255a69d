package dto

import "github.com/shopspring/decimal"

// AlertNotice forma estruturada de um alerta (GET /api/alerts/check e envio por email).
// Alertas de viatura preenchem os campos de viatura; alertas de stock os de material.
type AlertNotice struct {
	Kind string `json:"tipo_alerta"`

	VehicleID      string `json:"viatura_id,omitempty"`
	Plate          string `json:"matricula,omitempty"`
	Brand          string `json:"marca,omitempty"`
	Model          string `json:"modelo,omitempty"`
	ExpirationDate string `json:"data_expiracao,omitempty"`
	DaysRemaining  *int   `json:"dias_restantes,omitempty"`

	MaterialID   string           `json:"material_id,omitempty"`
	MaterialCode string           `json:"codigo,omitempty"`
	Description  string           `json:"descricao,omitempty"`
	Unit         string           `json:"unidade,omitempty"`
	StockCurrent *decimal.Decimal `json:"stock_atual,omitempty"`
	StockMinimum *decimal.Decimal `json:"stock_minimo,omitempty"`
	Urgent       bool             `json:"urgente"`
}

// AlertCheckResponse resposta de GET /api/alerts/check.
type AlertCheckResponse struct {
	Alerts []AlertNotice `json:"alerts"`
	Total  int           `json:"total"`
}

// AlertSendResponse resposta de POST /api/alerts/send.
type AlertSendResponse struct {
	Status      string `json:"status"`
	Message     string `json:"message"`
	AlertsCount int    `json:"alerts_count"`
	DeliveryID  string `json:"delivery_id,omitempty"`
}

// SummaryAlert forma de alerta para o dashboard: mensagem legível e urgência.
type SummaryAlert struct {
	Type    string `json:"type"`
	Item    string `json:"item"`
	Message string `json:"message"`
	Urgent  bool   `json:"urgent"`
}
