package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Unidade por omissão.
const DefaultUnit = "unidade"

// Material consumível com stock. Code é a chave de negócio.
// StockCurrent é estado derivado: valor inicial + soma dos movimentos de stock,
// mantido por incrementos atómicos (nunca recalculado fora do histórico).
type Material struct {
	ID           string
	Code         string
	Description  string
	Unit         string
	StockCurrent decimal.Decimal
	StockMinimum decimal.Decimal
	Active       bool
	LocationID   *UncheckedRef
	CreatedAt    time.Time
}
