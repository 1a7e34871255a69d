package entity

import "time"

// Tipos de local.
const (
	LocationTypeWarehouse = "ARM" // armazém
	LocationTypeWorkshop  = "OFI" // oficina
	LocationTypeSite      = "OBR" // estaleiro de obra
)

// Location local físico onde estão ativos e materiais.
// SiteID é nulo ou aponta para uma obra existente; apagar a obra limpa-o.
type Location struct {
	ID        string
	Code      string
	Name      string
	Type      string
	SiteID    *Ref
	Active    bool
	CreatedAt time.Time
}
