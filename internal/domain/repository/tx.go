package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Armazem-api/internal/domain/entity"
)

// SiteTxRunner executa fn com repositórios de obras e locais atados à mesma transação.
// Usado ao apagar uma obra: delete + limpeza de obra_id nos locais.
type SiteTxRunner interface {
	RunSites(ctx context.Context, fn func(sites SiteRepository, locations LocationRepository) error) error
}

// EquipmentLocator relocaliza equipamento (efeito de um movimento de ativo).
type EquipmentLocator interface {
	SetLocation(ctx context.Context, id string, locationID entity.UncheckedRef) (bool, error)
}

// StockAdjuster aplica o delta de um movimento de stock.
type StockAdjuster interface {
	AdjustStock(ctx context.Context, id string, delta decimal.Decimal) (bool, error)
}

// MovementTx repositórios visíveis dentro da transação de um movimento:
// o registo e o seu efeito são gravados juntos ou nenhum é.
type MovementTx struct {
	Assets    AssetMovementRepository
	Stock     StockMovementRepository
	Equipment EquipmentLocator
	Materials StockAdjuster
}

// MovementTxRunner executa fn numa transação; erro de fn desfaz tudo o que fn escreveu.
type MovementTxRunner interface {
	RunMovements(ctx context.Context, fn func(tx MovementTx) error) error
}
