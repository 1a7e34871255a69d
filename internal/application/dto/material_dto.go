package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaterialRequest corpo de criação e de substituição de um material.
// StockCurrent só é usado na criação (valor inicial); depois o stock muda apenas por movimentos.
type MaterialRequest struct {
	Code         string          `json:"codigo"`
	Description  string          `json:"descricao"`
	Unit         string          `json:"unidade"`
	StockCurrent decimal.Decimal `json:"stock_atual"`
	StockMinimum decimal.Decimal `json:"stock_minimo"`
	Active       *bool           `json:"ativo"`
	LocationID   *string         `json:"local_id"`
}

// IsActive ativo por omissão.
func (r MaterialRequest) IsActive() bool { return boolOr(r.Active, true) }

// UnitOrDefault unidade, def se vazia.
func (r MaterialRequest) UnitOrDefault(def string) string { return stringOr(r.Unit, def) }

// MaterialResponse saída de um material.
type MaterialResponse struct {
	ID           string          `json:"id"`
	Code         string          `json:"codigo"`
	Description  string          `json:"descricao"`
	Unit         string          `json:"unidade"`
	StockCurrent decimal.Decimal `json:"stock_atual"`
	StockMinimum decimal.Decimal `json:"stock_minimo"`
	Active       bool            `json:"ativo"`
	LocationID   *string         `json:"local_id"`
	CreatedAt    time.Time       `json:"created_at"`
}
